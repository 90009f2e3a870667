/*
  MIT License
  Copyright (c) 2026 Keytone Authors
  Permission is hereby granted, free of charge, to any person obtaining a copy
  of this software and associated documentation files (the "Software"), to deal
  in the Software without restriction, including without limitation the rights
  to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
  copies of the Software, and to permit persons to whom the Software is
  furnished to do so, subject to the following conditions:
  The above copyright notice and this permission notice shall be included in
  all copies or substantial portions of the Software.
  THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
  IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
  FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
  AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
  LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
  OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
  SOFTWARE.
*/

// Package sshbeep plays notes on the PC speaker of a RouterOS-style
// device over SSH, using its ":beep" command. The device has a single
// beeper with fixed loudness, so the gain envelope is accepted but
// ignored.
package sshbeep

import (
	"bufio"
	"fmt"
	"io"
	"net"
	"strings"
	"sync"
	"time"

	"golang.org/x/crypto/ssh"
	"golang.org/x/crypto/ssh/knownhosts"

	"github.com/sorvik/keytone"
	"github.com/sorvik/keytone/diag"
)

const DefaultTimeout = 1 * time.Minute

// maxBeepLength caps the open-ended beep issued by Start; the player
// always schedules a Stop well before this.
const maxBeepLength = 60 * time.Second

// Config locates and authenticates one beeper device.
type Config struct {
	Name       string // display name for diagnostics; defaults to Host
	Host       string
	Port       string // defaults to "22"
	Username   string
	Password   string
	KnownHosts string // path to an OpenSSH known_hosts file
}

// Context is an open shell on one device.
type Context struct {
	name    string
	client  *ssh.Client
	session *ssh.Session
	stdin   *io.PipeWriter

	epoch time.Time

	mu         sync.Mutex
	stdoutDone sync.WaitGroup
}

var _ keytone.AudioContext = (*Context)(nil)

// Dial connects to the device, verifies its host key against the
// known_hosts file and opens a shell. Banner and shell output lines are
// forwarded to the diagnostic sink, tagged with the device name.
func Dial(conf Config) (*Context, error) {
	hostKeys, err := knownhosts.New(conf.KnownHosts)
	if err != nil {
		return nil, fmt.Errorf("cannot load known_hosts: %w", err)
	}
	name := conf.Name
	if name == "" {
		name = conf.Host
	}
	port := conf.Port
	if port == "" {
		port = "22"
	}
	addr := net.JoinHostPort(conf.Host, port)
	sshConf := &ssh.ClientConfig{
		User: conf.Username,
		Auth: []ssh.AuthMethod{
			ssh.Password(conf.Password),
		},
		HostKeyCallback: hostKeys,
		BannerCallback: func(message string) error {
			sc := bufio.NewScanner(strings.NewReader(message))
			for sc.Scan() {
				diag.Linef(name, "%s", sc.Text())
			}
			return nil
		},
		Timeout: DefaultTimeout,
	}

	diag.Linef(name, "connecting to %s", addr)
	client, err := ssh.Dial("tcp", addr, sshConf)
	if err != nil {
		return nil, err
	}
	session, err := client.NewSession()
	if err != nil {
		client.Close()
		return nil, err
	}

	c := &Context{
		name:    name,
		client:  client,
		session: session,
		epoch:   time.Now(),
	}
	stdout := c.pipeToDiag()
	session.Stdout = stdout
	session.Stderr = stdout
	session.Stdin, c.stdin = io.Pipe()

	if err := session.Shell(); err != nil {
		c.stdin.Close()
		session.Close()
		client.Close()
		return nil, err
	}
	diag.Linef(name, "connected to %s", addr)
	return c, nil
}

// CurrentTime is the number of seconds since the connection was opened.
func (c *Context) CurrentTime() float64 {
	return time.Since(c.epoch).Seconds()
}

func (c *Context) CreateOscillator() (keytone.Oscillator, error) {
	return &Oscillator{c: c}, nil
}

func (c *Context) CreateGain() (keytone.Gain, error) {
	return &Gain{}, nil
}

func (c *Context) Destination() keytone.Node {
	return &Destination{c: c}
}

// Close shuts the shell down and waits for its remaining output to be
// forwarded.
func (c *Context) Close() error {
	c.stdin.Close()
	c.session.Wait()
	err := c.session.Close()
	if cerr := c.client.Close(); err == nil {
		err = cerr
	}
	c.stdoutDone.Wait()
	return err
}

func (c *Context) beep(frequency float64, length time.Duration) error {
	lengthMilli := int64((length + 999999*time.Nanosecond) / time.Millisecond)
	c.mu.Lock()
	defer c.mu.Unlock()
	_, err := io.WriteString(c.stdin, formatBeep(frequency, lengthMilli))
	if err != nil {
		return err
	}
	diag.Beepf(c.name, frequency, lengthMilli)
	return nil
}

func formatBeep(frequency float64, lengthMilli int64) string {
	return fmt.Sprintf(":beep frequency=%.0f length=%dms as-value;\n", frequency, lengthMilli)
}

func (c *Context) pipeToDiag() *io.PipeWriter {
	r, w := io.Pipe()
	c.stdoutDone.Add(1)
	go func(r *io.PipeReader, name string) {
		sc := bufio.NewScanner(r)
		for sc.Scan() {
			diag.Linef(name, "%s", sc.Text())
		}
		r.Close()
		c.stdoutDone.Done()
	}(r, c.name)
	return w
}

// Destination is the device's beeper.
type Destination struct {
	c *Context
}

var _ keytone.Node = (*Destination)(nil)

func (d *Destination) Connect(keytone.Node) error {
	return fmt.Errorf("the beeper has no outputs to connect")
}

// Gain accepts the envelope schedule and ignores it; the beeper has one
// loudness.
type Gain struct {
	dest *Destination
}

var _ keytone.Gain = (*Gain)(nil)

func (g *Gain) Connect(n keytone.Node) error {
	d, ok := n.(*Destination)
	if !ok {
		return fmt.Errorf("a gain must feed the beeper destination")
	}
	g.dest = d
	return nil
}

func (g *Gain) SetValueAtTime(value, at float64)                    {}
func (g *Gain) LinearRampToValueAtTime(value, end float64)          {}
func (g *Gain) SetTargetAtTime(target, start, timeConstant float64) {}
func (g *Gain) Value() float64                                      { return 1 }

// Oscillator drives one beep.
type Oscillator struct {
	c        *Context
	freq     float64
	gain     *Gain
	ended    func()
	stopOnce sync.Once
}

var _ keytone.Oscillator = (*Oscillator)(nil)

func (o *Oscillator) SetFrequency(hz float64) {
	o.freq = hz
}

func (o *Oscillator) Connect(n keytone.Node) error {
	g, ok := n.(*Gain)
	if !ok {
		return fmt.Errorf("an oscillator must feed a gain node")
	}
	o.gain = g
	return nil
}

func (o *Oscillator) OnEnded(fn func()) {
	o.ended = fn
}

// Start issues an open-ended beep, relying on the scheduled Stop to end
// it.
func (o *Oscillator) Start() error {
	if o.gain == nil || o.gain.dest == nil {
		return fmt.Errorf("oscillator is not connected to the beeper")
	}
	return o.c.beep(substituteFrequency(o.freq), maxBeepLength)
}

// Stop ends the note. The device has no stop primitive, but a new beep
// replaces the running one, so a 1ms beep at the bottom of the device's
// range silences it.
func (o *Oscillator) Stop() error {
	var err error
	o.stopOnce.Do(func() {
		err = o.c.beep(minFrequency, time.Millisecond)
		if o.ended != nil {
			go o.ended()
		}
	})
	return err
}
