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
	"reflect"
	"testing"
)

func TestNotesCount(t *testing.T) {
	notes := Notes()
	if len(notes) != KeyCount {
		t.Fatalf("len(Notes()) = %d, want %d", len(notes), KeyCount)
	}
}

func TestNotesKeyNumbers(t *testing.T) {
	for i, rec := range Notes() {
		if rec.KeyNumber != i+1 {
			t.Errorf("notes[%d].KeyNumber = %d, want %d", i, rec.KeyNumber, i+1)
		}
	}
}

func TestNotesFrequenciesAscendBySemitone(t *testing.T) {
	notes := Notes()
	want := math.Pow(2, 1.0/12)
	for i := 1; i < len(notes); i++ {
		if notes[i].Frequency <= notes[i-1].Frequency {
			t.Fatalf("frequency of %s (%v) is not above %s (%v)",
				notes[i].Name, notes[i].Frequency, notes[i-1].Name, notes[i-1].Frequency)
		}
		ratio := notes[i].Frequency / notes[i-1].Frequency
		if math.Abs(ratio-want)/want > 1e-9 {
			t.Errorf("ratio %s/%s = %v, want %v", notes[i].Name, notes[i-1].Name, ratio, want)
		}
	}
}

func TestNotesLandmarks(t *testing.T) {
	notes := Notes()
	landmarks := []struct {
		index     int
		name      string
		frequency float64
		tolerance float64
	}{
		{0, "A0", 27.5, 0.01},
		{48, "A4", 440, 0.01},
		{87, "C8", 4186.0, 1.0},
	}
	for _, l := range landmarks {
		rec := notes[l.index]
		if rec.Name != l.name {
			t.Errorf("notes[%d].Name = %q, want %q", l.index, rec.Name, l.name)
		}
		if math.Abs(rec.Frequency-l.frequency) > l.tolerance {
			t.Errorf("notes[%d].Frequency = %v, want %v +- %v", l.index, rec.Frequency, l.frequency, l.tolerance)
		}
	}
}

func TestNotesNamesUnique(t *testing.T) {
	seen := make(map[string]int)
	for _, rec := range Notes() {
		if prev, ok := seen[rec.Name]; ok {
			t.Errorf("name %q appears at keys %d and %d", rec.Name, prev, rec.KeyNumber)
		}
		seen[rec.Name] = rec.KeyNumber
	}
}

func TestNotesIdempotent(t *testing.T) {
	first := Notes()
	second := Notes()
	if !reflect.DeepEqual(first, second) {
		t.Fatal("two calls to Notes() differ")
	}
	// Callers own the returned slice.
	first[0] = NoteRecord{KeyNumber: -1, Name: "corrupted"}
	if third := Notes(); third[0].Name != "A0" {
		t.Fatal("mutating a returned slice leaked into a later call")
	}
}
