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

const (
	minFrequency = 20
	maxFrequency = 20000
)

// The device restricts beep frequencies to 20 Hz - 20,000 Hz. The 88-key
// range fits comfortably, but arbitrary callers may retune the
// oscillator, so frequencies beyond the window are substituted using
// their harmonics.
func substituteFrequency(freq float64) float64 {
	if freq < minFrequency {
		if freq >= minFrequency/3 {
			return freq * 3
		}
		if freq >= minFrequency/5 {
			return freq * 5
		}
		return minFrequency
	}
	if freq > maxFrequency {
		if freq <= maxFrequency*3 {
			return freq / 3
		}
		if freq <= maxFrequency*5 {
			return freq / 5
		}
		return maxFrequency
	}
	return freq
}
