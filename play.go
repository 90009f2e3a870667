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
	"time"

	"github.com/sorvik/keytone/diag"
)

// Play sounds the note: an oscillator tuned to the note's frequency feeds
// a gain node that ramps up to the configured volume over the attack time
// and then decays toward silence with the release time constant. A stop
// is scheduled after the configured duration; once the backend reports
// the tone has actually ended, done (if non-nil) is called exactly once.
//
// The oscillator handle is returned so the caller can cut the note short
// with its Stop method.
func (p *Player) Play(done func()) (Oscillator, error) {
	if p.verbose {
		diag.Notef("playing %s: key %d, %.2f Hz, %.2fs", p.Name, p.KeyNumber, p.Frequency, p.duration)
	}

	osc, err := p.ctx.CreateOscillator()
	if err != nil {
		diag.Errorf("cannot create oscillator: %v", err)
		return nil, err
	}
	gain, err := p.ctx.CreateGain()
	if err != nil {
		diag.Errorf("cannot create gain: %v", err)
		return nil, err
	}
	osc.SetFrequency(p.Frequency)

	now := p.ctx.CurrentTime()
	release := p.release
	if release == 0 {
		release = p.attack
	}
	gain.SetValueAtTime(gain.Value(), now)
	gain.LinearRampToValueAtTime(p.volume, now+p.attack)
	gain.SetTargetAtTime(0, now+p.attack, release)

	if err := osc.Connect(gain); err != nil {
		diag.Errorf("cannot connect oscillator: %v", err)
		return nil, err
	}
	dest := p.dest
	if dest == nil {
		dest = p.ctx.Destination()
	}
	if err := gain.Connect(dest); err != nil {
		diag.Errorf("cannot connect gain: %v", err)
		return nil, err
	}

	osc.OnEnded(func() {
		if p.verbose {
			diag.Notef("%s finished", p.Name)
		}
		if done != nil {
			done()
		}
	})
	if err := osc.Start(); err != nil {
		diag.Errorf("cannot start oscillator: %v", err)
		return nil, err
	}

	lengthMilli := int64(p.duration * 1000)
	time.AfterFunc(time.Duration(lengthMilli)*time.Millisecond, func() {
		if err := osc.Stop(); err != nil {
			diag.Warnf("stopping %s: %v", p.Name, err)
		}
	})
	return osc, nil
}
