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

// Package diag is the diagnostic sink for keytone: failures and usage
// hints are reported here as colored human-readable lines instead of
// propagating as panics.
package diag

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/fatih/color"
)

var (
	mu  sync.Mutex
	out io.Writer = os.Stderr

	colorRed     = color.New(color.FgRed)
	colorYellow  = color.New(color.FgYellow)
	colorCyan    = color.New(color.FgCyan)
	colorGreen   = color.New(color.FgGreen)
	colorMagenta = color.New(color.FgMagenta)
)

// SetOutput redirects all diagnostics; the default is standard error.
func SetOutput(w io.Writer) {
	mu.Lock()
	out = w
	mu.Unlock()
}

// Errorf reports a failure.
func Errorf(format string, args ...interface{}) {
	printPrefixed(colorRed, "error: ", format, args)
}

// Warnf reports a suspicious but non-fatal condition.
func Warnf(format string, args ...interface{}) {
	printPrefixed(colorYellow, "warning: ", format, args)
}

// Hintf follows an Errorf with a usage hint.
func Hintf(format string, args ...interface{}) {
	printPrefixed(colorGreen, "hint: ", format, args)
}

// Notef reports progress; used for verbose playback logging.
func Notef(format string, args ...interface{}) {
	printPrefixed(colorCyan, "", format, args)
}

// Linef forwards a raw line from a remote device, prefixed with the
// device name.
func Linef(name, format string, args ...interface{}) {
	mu.Lock()
	defer mu.Unlock()
	if name != "" {
		fmt.Fprint(out, "[")
		colorCyan.Fprint(out, name)
		fmt.Fprint(out, "] ")
	}
	fmt.Fprintf(out, format, args...)
	fmt.Fprintln(out)
}

// Beepf echoes a beep command sent to a remote device.
func Beepf(name string, frequency float64, lengthMilli int64) {
	mu.Lock()
	defer mu.Unlock()
	if name != "" {
		fmt.Fprint(out, "[")
		colorCyan.Fprint(out, name)
		fmt.Fprint(out, "] ")
	}
	fmt.Fprint(out, "> ")
	colorCyan.Fprint(out, ":")
	colorMagenta.Fprint(out, "beep")
	fmt.Fprint(out, " ")
	colorGreen.Fprint(out, "frequency")
	colorYellow.Fprint(out, "=")
	fmt.Fprintf(out, "%-5.0f ", frequency)
	colorGreen.Fprint(out, "length")
	colorYellow.Fprint(out, "=")
	fmt.Fprintf(out, "%dms", lengthMilli)
	colorYellow.Fprint(out, ";")
	fmt.Fprintln(out)
}

func printPrefixed(c *color.Color, prefix, format string, args []interface{}) {
	mu.Lock()
	defer mu.Unlock()
	if prefix != "" {
		c.Fprint(out, prefix)
	}
	fmt.Fprintf(out, format, args...)
	fmt.Fprintln(out)
}
