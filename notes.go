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
	"math"
	"strconv"
)

// KeyCount is the number of keys on a standard piano keyboard.
const KeyCount = 88

// anchorFrequency is the frequency of the note one semitone below A0,
// i.e. 27.5 Hz / 2^(1/12). The table is generated by repeatedly stepping
// up from this anchor.
const anchorFrequency = 25.95654359874657

// Notes are tuned using Equal Temperament: each semitone step multiplies
// the frequency by 2^(1/12).
var semitoneRatio = math.Pow(2, 1.0/12)

// Pitch classes in keyboard order, starting from A. A piano starts on A0,
// so octaves are walked A-first; the printed octave number still increments
// at C, per scientific pitch notation.
var pitchClasses = [12]string{"A", "A#", "B", "C", "C#", "D", "D#", "E", "F", "F#", "G", "G#"}

// NoteRecord describes one key of the keyboard.
type NoteRecord struct {
	KeyNumber int     // 1 (A0) .. 88 (C8)
	Frequency float64 // hertz
	Name      string  // pitch class + octave, e.g. "A4"
}

// Notes returns the 88 notes of a standard piano keyboard in ascending
// order, from A0 (27.5 Hz) to C8 (4186 Hz). Every call computes a fresh
// slice; the result is safe to modify.
func Notes() []NoteRecord {
	notes := make([]NoteRecord, 0, 9*len(pitchClasses))
	key := 0
	freq := anchorFrequency
	for octave := 0; octave <= 8; octave++ {
		for i, class := range pitchClasses {
			key++
			freq *= semitoneRatio
			printed := octave
			if i >= 3 {
				printed++
			}
			notes = append(notes, NoteRecord{
				KeyNumber: key,
				Frequency: freq,
				Name:      class + strconv.Itoa(printed),
			})
		}
	}
	// The loop walks 9 full octaves (108 notes); only the first 88 exist
	// on a piano. The excess notes are all above C8, so they are dropped
	// from the top, never the bottom.
	return notes[:KeyCount]
}
