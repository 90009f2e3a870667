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

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/sorvik/keytone/diag"
)

// Player is one playable note. Identity comes from a NoteRecord; playback
// configuration is adjusted through the setters and read at Play time.
type Player struct {
	KeyNumber int
	Frequency float64
	Octave    int
	Name      string

	duration float64 // seconds
	volume   float64 // 0..1
	attack   float64 // seconds
	release  float64 // seconds
	verbose  bool

	ctx  AudioContext
	dest Node
}

// Enharmonic flat spellings and their sharp (or natural) equivalents.
var flatNames = map[string]string{
	"Cb": "B",
	"Db": "C#",
	"Eb": "D#",
	"Fb": "E",
	"Gb": "F#",
	"Ab": "G#",
	"Bb": "A#",
}

// randFloat feeds the default duration; swapped out in tests so
// construction stays deterministic.
var randFloat = rand.Float64

// NewFromName builds a Player for the named note, e.g. "A4" or "Bb3".
// Flat spellings are normalized to their sharp equivalents. If ctx is nil
// the registered default backend is used. On failure the error wraps one
// of the Err kinds and a report goes to the diagnostic sink.
func NewFromName(name string, ctx AudioContext) (*Player, error) {
	p, err := fromName(name, ctx)
	if err != nil {
		diag.Errorf("cannot build note from name %q: %v", name, err)
		diag.Hintf("note names look like A4, F#3 or Bb2, with octaves 1 to 8")
		return nil, err
	}
	return p, nil
}

func fromName(name string, ctx AudioContext) (*Player, error) {
	if name == "" {
		return nil, fmt.Errorf("%w: a note name is required", ErrInvalidInput)
	}
	last := name[len(name)-1]
	if last < '1' || last > '8' {
		return nil, fmt.Errorf("%w: %q is not an octave between 1 and 8", ErrInvalidRange, string(last))
	}
	class := name[:len(name)-1]
	if sharp, ok := flatNames[class]; ok {
		class = sharp
	}
	full := class + string(last)
	for _, rec := range Notes() {
		if rec.Name == full {
			return newPlayer(rec, ctx)
		}
	}
	return nil, fmt.Errorf("%w: %q is not on the keyboard", ErrNotFound, full)
}

// NewFromFrequency builds a Player for the note nearest to freq in hertz.
// On an exact tie the lower key wins. Frequencies outside the keyboard's
// 27.5-4186 Hz span are rejected.
func NewFromFrequency(freq float64, ctx AudioContext) (*Player, error) {
	rec, err := nearestNote(freq)
	if err != nil {
		diag.Errorf("cannot build note from frequency %v Hz: %v", freq, err)
		diag.Hintf("a piano spans 27.5 Hz (A0) to 4186 Hz (C8)")
		return nil, err
	}
	return NewFromName(rec.Name, ctx)
}

func nearestNote(freq float64) (NoteRecord, error) {
	if math.IsNaN(freq) || freq <= 0 {
		return NoteRecord{}, fmt.Errorf("%w: a positive frequency is required", ErrInvalidInput)
	}
	notes := Notes()
	lowest, highest := notes[0].Frequency, notes[len(notes)-1].Frequency
	if freq < lowest || freq > highest {
		return NoteRecord{}, fmt.Errorf("%w: %.2f Hz is outside %.2f-%.2f Hz", ErrOutOfRange, freq, lowest, highest)
	}
	best := notes[0]
	for _, rec := range notes[1:] {
		if math.Abs(rec.Frequency-freq) < math.Abs(best.Frequency-freq) {
			best = rec
		}
	}
	return best, nil
}

// NewFromKey builds a Player for a piano key number, 1 (A0) to 88 (C8).
// Unlike NewFromName this reaches every key, including the octave-0 notes.
func NewFromKey(key int, ctx AudioContext) (*Player, error) {
	for _, rec := range Notes() {
		if rec.KeyNumber == key {
			p, err := newPlayer(rec, ctx)
			if err != nil {
				diag.Errorf("cannot build note for key %d: %v", key, err)
				return nil, err
			}
			return p, nil
		}
	}
	err := fmt.Errorf("%w: there is no key %d", ErrNotFound, key)
	diag.Errorf("cannot build note for key %d: %v", key, err)
	diag.Hintf("piano keys are numbered 1 (A0) to 88 (C8)")
	return nil, err
}

func newPlayer(rec NoteRecord, ctx AudioContext) (*Player, error) {
	if ctx == nil {
		var err error
		ctx, err = defaultContext()
		if err != nil {
			return nil, err
		}
	}
	return &Player{
		KeyNumber: rec.KeyNumber,
		Frequency: rec.Frequency,
		Octave:    int(rec.Name[len(rec.Name)-1] - '0'),
		Name:      rec.Name,
		duration:  0.5 + 2.5*randFloat(),
		volume:    1,
		attack:    0.3,
		release:   0.1,
		verbose:   false,
		ctx:       ctx,
		dest:      ctx.Destination(),
	}, nil
}

// SetDuration sets how long the note sounds, in seconds. NaN or
// non-positive values keep the current duration.
func (p *Player) SetDuration(seconds float64) {
	if math.IsNaN(seconds) || seconds <= 0 {
		return
	}
	p.duration = seconds
}

// SetVolume sets the peak level, 0 to 1. Values outside that range keep
// the current volume.
func (p *Player) SetVolume(level float64) {
	if math.IsNaN(level) || level < 0 || level > 1 {
		return
	}
	p.volume = level
}

// SetVerbose turns playback logging on or off. With no argument it turns
// it on.
func (p *Player) SetVerbose(flag ...bool) {
	p.verbose = len(flag) == 0 || flag[0]
}

// SetAttack sets the ramp-up time in seconds. Whole-number values are
// ignored: envelope times are fractions of a second, and an integer here
// is taken for a unit mistake. Only fractional values update the field.
func (p *Player) SetAttack(seconds float64) {
	if math.IsNaN(seconds) || seconds <= 0 || seconds == math.Trunc(seconds) {
		return
	}
	p.attack = seconds
}

// SetRelease sets the decay time constant in seconds, with the same
// whole-number guard as SetAttack.
func (p *Player) SetRelease(seconds float64) {
	if math.IsNaN(seconds) || seconds <= 0 || seconds == math.Trunc(seconds) {
		return
	}
	p.release = seconds
}

// SetAudioContext replaces the audio backend. The destination node is
// left as is; pair with SetDestinationNode when switching backends.
func (p *Player) SetAudioContext(ctx AudioContext) {
	if ctx == nil {
		return
	}
	p.ctx = ctx
}

// SetDestinationNode routes playback somewhere other than the context's
// main output.
func (p *Player) SetDestinationNode(node Node) {
	if node == nil {
		return
	}
	p.dest = node
}
