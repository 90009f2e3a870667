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

// Package otoaudio plays notes on the local machine's speakers. It
// implements the keytone audio capability with a sine oscillator rendered
// sample by sample through the connected gain's envelope schedule.
package otoaudio

import (
	"errors"
	"io"
	"math"
	"sync/atomic"
	"time"

	"github.com/hajimehoshi/oto/v2"

	"github.com/sorvik/keytone"
)

const (
	sampleRate = 44100
	channels   = 1 // mono
	bitDepth   = 2 // 16-bit little-endian samples
)

// readyTimeout bounds how long Start waits for the audio device.
const readyTimeout = 5 * time.Second

func init() {
	keytone.DefaultContext = func() (keytone.AudioContext, error) {
		return NewContext()
	}
}

// Context wraps one oto context. A process can hold only one.
type Context struct {
	ctx   *oto.Context
	ready <-chan struct{}
	epoch time.Time
}

var _ keytone.AudioContext = (*Context)(nil)

func NewContext() (*Context, error) {
	ctx, ready, err := oto.NewContext(sampleRate, channels, bitDepth)
	if err != nil {
		return nil, err
	}
	return &Context{ctx: ctx, ready: ready, epoch: time.Now()}, nil
}

// CurrentTime is the number of seconds since the context was created.
func (c *Context) CurrentTime() float64 {
	return time.Since(c.epoch).Seconds()
}

func (c *Context) CreateOscillator() (keytone.Oscillator, error) {
	return &Oscillator{c: c}, nil
}

func (c *Context) CreateGain() (keytone.Gain, error) {
	return &Gain{c: c}, nil
}

func (c *Context) Destination() keytone.Node {
	return &Destination{c: c}
}

// Close is a no-op: the oto context has no close and lives for the
// process.
func (c *Context) Close() error {
	return nil
}

// Destination is the context's speaker output.
type Destination struct {
	c *Context
}

var _ keytone.Node = (*Destination)(nil)

func (d *Destination) Connect(keytone.Node) error {
	return errors.New("the destination has no outputs to connect")
}

// Oscillator renders a sine tone through its connected gain until
// stopped.
type Oscillator struct {
	c       *Context
	freq    float64
	gain    *Gain
	ended   func()
	stopped int32
}

var _ keytone.Oscillator = (*Oscillator)(nil)

func (o *Oscillator) SetFrequency(hz float64) {
	o.freq = hz
}

func (o *Oscillator) Connect(n keytone.Node) error {
	g, ok := n.(*Gain)
	if !ok {
		return errors.New("an oscillator must feed a gain node")
	}
	o.gain = g
	return nil
}

func (o *Oscillator) OnEnded(fn func()) {
	o.ended = fn
}

// Start begins rendering. It returns once the tone is playing; rendering
// continues on the player's own goroutine until Stop, after which the
// buffered tail drains and the ended hook fires.
func (o *Oscillator) Start() error {
	if o.gain == nil {
		return errors.New("oscillator is not connected to a gain")
	}
	if o.gain.dest == nil {
		return errors.New("gain is not connected to the destination")
	}
	select {
	case <-o.c.ready:
	case <-time.After(readyTimeout):
		return errors.New("audio device did not become ready")
	}
	player := o.c.ctx.NewPlayer(&toneReader{osc: o, start: o.c.CurrentTime()})
	go func() {
		player.Play()
		for player.IsPlaying() {
			time.Sleep(10 * time.Millisecond)
		}
		player.Close()
		if o.ended != nil {
			o.ended()
		}
	}()
	return nil
}

// Stop cuts the sample stream; the next read returns EOF and the player
// drains whatever it has buffered.
func (o *Oscillator) Stop() error {
	atomic.StoreInt32(&o.stopped, 1)
	return nil
}

// toneReader produces the oscillator's 16-bit mono sample stream. Each
// sample is the sine carrier scaled by the gain envelope at that instant
// of context time.
type toneReader struct {
	osc   *Oscillator
	start float64 // context time at Start
	t     float64 // seconds rendered so far
	phase float64
}

func (r *toneReader) Read(p []byte) (int, error) {
	if atomic.LoadInt32(&r.osc.stopped) != 0 {
		return 0, io.EOF
	}
	n := len(p) / bitDepth
	for i := 0; i < n; i++ {
		v := math.Sin(r.phase) * r.osc.gain.valueAt(r.start+r.t)
		if v > 1 {
			v = 1
		} else if v < -1 {
			v = -1
		}
		s := int16(v * math.MaxInt16)
		p[bitDepth*i] = byte(s)
		p[bitDepth*i+1] = byte(s >> 8)
		r.phase += 2 * math.Pi * r.osc.freq / sampleRate
		r.t += 1.0 / sampleRate
	}
	return n * bitDepth, nil
}
