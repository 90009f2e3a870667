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

package keytone

import "errors"

// AudioContext is the capability a Player needs from an audio backend.
// Implementations live in the otoaudio and sshbeep packages; tests use a
// fake one.
type AudioContext interface {
	CreateOscillator() (Oscillator, error)
	CreateGain() (Gain, error)
	// CurrentTime is the backend clock in seconds. Gain envelopes are
	// scheduled against this clock, not the wall clock.
	CurrentTime() float64
	// Destination is the backend's main output.
	Destination() Node
	Close() error
}

// Node is a connection point in the audio graph.
type Node interface {
	Connect(Node) error
}

// Oscillator produces a tone at a fixed frequency until stopped.
type Oscillator interface {
	Node
	SetFrequency(hz float64)
	Start() error
	Stop() error
	// OnEnded registers fn to run once playback has actually halted,
	// after Stop or after the backend drains its buffers.
	OnEnded(fn func())
}

// Gain shapes the amplitude of whatever feeds it. The scheduling
// primitives mirror what audio subsystems commonly provide; backends
// without amplitude control may accept and ignore the schedule.
type Gain interface {
	Node
	SetValueAtTime(value, at float64)
	LinearRampToValueAtTime(value, end float64)
	SetTargetAtTime(target, start, timeConstant float64)
	// Value is the gain at the backend's current time.
	Value() float64
}

// DefaultContext, when set, is used by the factories whenever no audio
// context is supplied. The otoaudio package registers itself here on
// import, so a plain `import _ ".../otoaudio"` is enough to get sound
// out of the local machine.
var DefaultContext func() (AudioContext, error)

func defaultContext() (AudioContext, error) {
	if DefaultContext == nil {
		return nil, errors.New("no audio context given and no default backend registered")
	}
	return DefaultContext()
}
