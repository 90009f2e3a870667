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

// Factory failures wrap one of these kinds; match them with errors.Is.
// Factories never panic: a failure is always a (nil, error) pair plus a
// human-readable report on the diagnostic sink.
var (
	// ErrInvalidInput marks a missing or unusable required argument.
	ErrInvalidInput = errors.New("invalid input")
	// ErrInvalidRange marks an octave outside 1-8.
	ErrInvalidRange = errors.New("octave out of range")
	// ErrOutOfRange marks a frequency outside the keyboard's span.
	ErrOutOfRange = errors.New("frequency out of range")
	// ErrNotFound marks a name or key number with no matching note.
	ErrNotFound = errors.New("no matching note")
)
