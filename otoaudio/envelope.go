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
	"errors"
	"math"
	"sync"

	"github.com/sorvik/keytone"
)

const (
	evSetValue = iota
	evLinearRamp
	evSetTarget
)

type gainEvent struct {
	kind         int
	value        float64
	time         float64
	timeConstant float64
}

// Gain holds an envelope schedule and evaluates it at render time. Events
// must be appended in ascending time order, which is how the player
// programs them. A fresh gain is silent.
type Gain struct {
	c    *Context
	dest *Destination

	mu     sync.Mutex
	events []gainEvent
}

var _ keytone.Gain = (*Gain)(nil)

func (g *Gain) Connect(n keytone.Node) error {
	d, ok := n.(*Destination)
	if !ok {
		return errors.New("a gain must feed the context destination")
	}
	g.dest = d
	return nil
}

func (g *Gain) SetValueAtTime(value, at float64) {
	g.append(gainEvent{kind: evSetValue, value: value, time: at})
}

func (g *Gain) LinearRampToValueAtTime(value, end float64) {
	g.append(gainEvent{kind: evLinearRamp, value: value, time: end})
}

func (g *Gain) SetTargetAtTime(target, start, timeConstant float64) {
	g.append(gainEvent{kind: evSetTarget, value: target, time: start, timeConstant: timeConstant})
}

func (g *Gain) append(ev gainEvent) {
	g.mu.Lock()
	g.events = append(g.events, ev)
	g.mu.Unlock()
}

// Value is the gain at the current context time.
func (g *Gain) Value() float64 {
	return g.valueAt(g.c.CurrentTime())
}

// valueAt evaluates the schedule at time t. Linear ramps interpolate from
// the previous event's value; set-target decays exponentially from the
// value the schedule had reached when the segment began.
func (g *Gain) valueAt(t float64) float64 {
	g.mu.Lock()
	defer g.mu.Unlock()
	value := 0.0
	prevTime := 0.0
	for _, ev := range g.events {
		switch ev.kind {
		case evSetValue:
			if t < ev.time {
				return value
			}
			value, prevTime = ev.value, ev.time
		case evLinearRamp:
			if t >= ev.time {
				value, prevTime = ev.value, ev.time
				continue
			}
			if span := ev.time - prevTime; span > 0 && t > prevTime {
				value += (ev.value - value) * (t - prevTime) / span
			}
			return value
		case evSetTarget:
			if t < ev.time {
				return value
			}
			if ev.timeConstant <= 0 {
				value, prevTime = ev.value, ev.time
				continue
			}
			return ev.value + (value-ev.value)*math.Exp(-(t-ev.time)/ev.timeConstant)
		}
	}
	return value
}
