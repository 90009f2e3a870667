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

package sshbeep

import (
	"bufio"
	"bytes"
	"io"
	"testing"
	"time"

	"github.com/fatih/color"

	"github.com/sorvik/keytone/diag"
)

func quietDiag(t *testing.T) {
	t.Helper()
	color.NoColor = true
	diag.SetOutput(&bytes.Buffer{})
	t.Cleanup(func() {
		diag.SetOutput(&bytes.Buffer{})
	})
}

func TestFormatBeep(t *testing.T) {
	cases := []struct {
		frequency   float64
		lengthMilli int64
		want        string
	}{
		{440, 1500, ":beep frequency=440 length=1500ms as-value;\n"},
		{27.5, 1, ":beep frequency=28 length=1ms as-value;\n"},
		{4186.009, 60000, ":beep frequency=4186 length=60000ms as-value;\n"},
	}
	for _, c := range cases {
		if got := formatBeep(c.frequency, c.lengthMilli); got != c.want {
			t.Errorf("formatBeep(%v, %d) = %q, want %q", c.frequency, c.lengthMilli, got, c.want)
		}
	}
}

func TestBeepRoundsLengthUp(t *testing.T) {
	quietDiag(t)
	r, w := io.Pipe()
	c := &Context{name: "test", stdin: w}
	lines := make(chan string, 2)
	go func() {
		sc := bufio.NewScanner(r)
		for sc.Scan() {
			lines <- sc.Text()
		}
	}()

	if err := c.beep(440, 1500*time.Microsecond); err != nil {
		t.Fatalf("beep: %v", err)
	}
	if got, want := <-lines, ":beep frequency=440 length=2ms as-value;"; got != want {
		t.Errorf("sent %q, want %q", got, want)
	}
	if err := c.beep(20, time.Millisecond); err != nil {
		t.Fatalf("beep: %v", err)
	}
	if got, want := <-lines, ":beep frequency=20 length=1ms as-value;"; got != want {
		t.Errorf("sent %q, want %q", got, want)
	}
	w.Close()
}

func TestSubstituteFrequency(t *testing.T) {
	cases := []struct {
		in, want float64
	}{
		{440, 440},
		{20, 20},
		{20000, 20000},
		{10, 30},       // third harmonic
		{5, 25},        // fifth harmonic
		{3, 20},        // too low even for harmonics, clamp
		{25000, 25000.0 / 3},
		{70000, 14000}, // fifth subharmonic
		{150000, 20000},
	}
	for _, c := range cases {
		if got := substituteFrequency(c.in); got != c.want {
			t.Errorf("substituteFrequency(%v) = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestOscillatorRequiresConnection(t *testing.T) {
	o := &Oscillator{c: &Context{name: "test"}}
	o.SetFrequency(440)
	if err := o.Start(); err == nil {
		t.Error("Start on an unconnected oscillator should fail")
	}
	g := &Gain{}
	if err := o.Connect(g); err != nil {
		t.Fatalf("connecting oscillator to gain: %v", err)
	}
	// Still no destination behind the gain.
	if err := o.Start(); err == nil {
		t.Error("Start without a destination should fail")
	}
}

func TestConnectRules(t *testing.T) {
	o := &Oscillator{}
	if err := o.Connect(&Destination{}); err == nil {
		t.Error("an oscillator must not connect straight to the beeper")
	}
	g := &Gain{}
	if err := g.Connect(&Gain{}); err == nil {
		t.Error("a gain must not connect to another gain")
	}
	if err := g.Connect(&Destination{}); err != nil {
		t.Errorf("connecting gain to the beeper: %v", err)
	}
	d := &Destination{}
	if err := d.Connect(&Gain{}); err == nil {
		t.Error("the beeper has no outputs")
	}
}

func TestStopFiresEndedOnce(t *testing.T) {
	quietDiag(t)
	r, w := io.Pipe()
	go io.Copy(io.Discard, r)
	c := &Context{name: "test", stdin: w}
	g := &Gain{dest: &Destination{c: c}}
	o := &Oscillator{c: c, gain: g}

	ended := make(chan struct{}, 2)
	o.OnEnded(func() { ended <- struct{}{} })
	if err := o.Stop(); err != nil {
		t.Fatalf("Stop: %v", err)
	}
	select {
	case <-ended:
	case <-time.After(time.Second):
		t.Fatal("ended notification never fired")
	}
	if err := o.Stop(); err != nil {
		t.Fatalf("second Stop: %v", err)
	}
	select {
	case <-ended:
		t.Error("ended notification fired twice")
	case <-time.After(50 * time.Millisecond):
	}
	w.Close()
}
