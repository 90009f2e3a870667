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

package otoaudio

import (
	"math"
	"testing"
)

// attack/decay schedule the player programs: silence at t=1, ramp to 1.0
// by t=1.3, then decay toward 0 with a 0.1s time constant.
func noteEnvelope() *Gain {
	g := &Gain{}
	g.SetValueAtTime(0, 1)
	g.LinearRampToValueAtTime(1.0, 1.3)
	g.SetTargetAtTime(0, 1.3, 0.1)
	return g
}

func TestEnvelopeBeforeStart(t *testing.T) {
	g := noteEnvelope()
	if v := g.valueAt(0.5); v != 0 {
		t.Errorf("valueAt(0.5) = %v, want 0", v)
	}
}

func TestEnvelopeLinearRamp(t *testing.T) {
	g := noteEnvelope()
	cases := []struct {
		t, want float64
	}{
		{1.0, 0},
		{1.15, 0.5},
		{1.225, 0.75},
	}
	for _, c := range cases {
		if v := g.valueAt(c.t); math.Abs(v-c.want) > 1e-9 {
			t.Errorf("valueAt(%v) = %v, want %v", c.t, v, c.want)
		}
	}
}

func TestEnvelopeRampEndsAtPeak(t *testing.T) {
	g := noteEnvelope()
	if v := g.valueAt(1.3); math.Abs(v-1.0) > 1e-9 {
		t.Errorf("valueAt(1.3) = %v, want 1.0", v)
	}
}

func TestEnvelopeExponentialDecay(t *testing.T) {
	g := noteEnvelope()
	// One time constant after the peak the envelope sits at 1/e.
	want := math.Exp(-1)
	if v := g.valueAt(1.4); math.Abs(v-want) > 1e-9 {
		t.Errorf("valueAt(1.4) = %v, want %v", v, want)
	}
	// Far later it is practically silent.
	if v := g.valueAt(3); v > 1e-6 {
		t.Errorf("valueAt(3) = %v, want near 0", v)
	}
}

func TestEnvelopeScaledPeak(t *testing.T) {
	g := &Gain{}
	g.SetValueAtTime(0, 0)
	g.LinearRampToValueAtTime(0.8, 0.25)
	g.SetTargetAtTime(0, 0.25, 0.1)
	if v := g.valueAt(0.25); math.Abs(v-0.8) > 1e-9 {
		t.Errorf("valueAt(0.25) = %v, want the configured volume 0.8", v)
	}
	if v := g.valueAt(0.125); math.Abs(v-0.4) > 1e-9 {
		t.Errorf("valueAt(0.125) = %v, want 0.4", v)
	}
}

func TestEnvelopeEmptyGainIsSilent(t *testing.T) {
	g := &Gain{}
	if v := g.valueAt(12); v != 0 {
		t.Errorf("valueAt on an empty schedule = %v, want 0", v)
	}
}

func TestGainConnectRejectsNonDestination(t *testing.T) {
	g := &Gain{}
	if err := g.Connect(&Gain{}); err == nil {
		t.Error("connecting a gain to a gain should fail")
	}
	if err := g.Connect(&Destination{}); err != nil {
		t.Errorf("connecting a gain to the destination failed: %v", err)
	}
}

func TestOscillatorConnectRejectsNonGain(t *testing.T) {
	o := &Oscillator{}
	if err := o.Connect(&Destination{}); err == nil {
		t.Error("connecting an oscillator straight to the destination should fail")
	}
	if err := o.Connect(&Gain{}); err != nil {
		t.Errorf("connecting an oscillator to a gain failed: %v", err)
	}
}

func TestDestinationHasNoOutputs(t *testing.T) {
	d := &Destination{}
	if err := d.Connect(&Gain{}); err == nil {
		t.Error("the destination must reject outgoing connections")
	}
}
