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

package main

import (
	"flag"
	"fmt"
	"os"
	"sync"

	"github.com/fatih/color"

	"github.com/sorvik/keytone"
	"github.com/sorvik/keytone/diag"
	"github.com/sorvik/keytone/otoaudio"
	"github.com/sorvik/keytone/sshbeep"
)

type application struct {
	conf config

	list    bool
	name    string
	freq    float64
	key     int
	dur     float64
	vol     float64
	attack  float64
	release float64
	remote  string
	verbose bool
}

func main() {
	app := &application{}
	flag.StringVar(&app.conf.ConfigFile, "conf", "", "configuration file path")
	flag.BoolVar(&app.list, "list", false, "print the 88-key note table and exit")
	flag.StringVar(&app.name, "note", "", "note name to play, e.g. A4 or Bb3")
	flag.Float64Var(&app.freq, "freq", 0, "play the note nearest this frequency in hertz")
	flag.IntVar(&app.key, "key", 0, "piano key number to play, 1 (A0) to 88 (C8)")
	flag.Float64Var(&app.dur, "dur", 0, "duration in seconds (default: random between 0.5 and 3)")
	flag.Float64Var(&app.vol, "vol", -1, "volume, 0 to 1")
	flag.Float64Var(&app.attack, "attack", 0, "attack ramp in seconds, must be fractional")
	flag.Float64Var(&app.release, "release", 0, "release time constant in seconds, must be fractional")
	flag.StringVar(&app.remote, "remote", "", "play on the named beeper from the configuration file")
	flag.BoolVar(&app.verbose, "verbose", false, "log playback progress")
	flag.Parse()
	os.Exit(app.run())
}

func (app *application) run() int {
	app.conf.Volume = -1 // distinguishable from a configured volume of 0
	if app.conf.ConfigFile != "" {
		if err := app.conf.parseConfigFile(); err != nil {
			fmt.Fprintf(os.Stderr, "failed to load config file: %v\n", err)
			return 1
		}
	}

	if app.list {
		printTable()
		return 0
	}

	ctx, err := app.audioContext()
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		return 1
	}
	defer ctx.Close()

	player, err := app.buildPlayer(ctx)
	if err != nil {
		return 1
	}

	// Config defaults first, then flags on top. Unset flags sit outside
	// the setters' domains, so they fall through to the defaults.
	player.SetVolume(app.conf.Volume)
	player.SetAttack(app.conf.Attack)
	player.SetRelease(app.conf.Release)
	player.SetDuration(app.conf.Duration)
	player.SetVolume(app.vol)
	player.SetAttack(app.attack)
	player.SetRelease(app.release)
	player.SetDuration(app.dur)
	player.SetVerbose(app.verbose)

	var onFinished sync.WaitGroup
	onFinished.Add(1)
	if _, err := player.Play(onFinished.Done); err != nil {
		return 1
	}
	onFinished.Wait()
	return 0
}

func (app *application) audioContext() (keytone.AudioContext, error) {
	if app.remote == "" {
		return otoaudio.NewContext()
	}
	conn := app.conf.findConnection(app.remote)
	if conn == nil {
		return nil, fmt.Errorf("no beeper named %q in the configuration file", app.remote)
	}
	return sshbeep.Dial(sshbeep.Config{
		Name:       conn.Name,
		Host:       conn.Host,
		Port:       conn.Port,
		Username:   conn.Username,
		Password:   conn.Password,
		KnownHosts: app.conf.KnownHosts,
	})
}

func (app *application) buildPlayer(ctx keytone.AudioContext) (*keytone.Player, error) {
	switch {
	case app.name != "":
		return keytone.NewFromName(app.name, ctx)
	case app.freq != 0:
		return keytone.NewFromFrequency(app.freq, ctx)
	case app.key != 0:
		return keytone.NewFromKey(app.key, ctx)
	}
	diag.Errorf("nothing to play")
	diag.Hintf("give one of -note, -freq or -key; see -list for the keyboard")
	return nil, fmt.Errorf("no note selected")
}

func printTable() {
	colorCyan := color.New(color.FgCyan)
	colorGreen := color.New(color.FgGreen)
	colorMagenta := color.New(color.FgMagenta)
	for _, rec := range keytone.Notes() {
		fmt.Print("key ")
		colorCyan.Printf("%2d", rec.KeyNumber)
		fmt.Print("  ")
		colorMagenta.Printf("%-3s", rec.Name)
		fmt.Print("  ")
		colorGreen.Printf("%9.3f", rec.Frequency)
		fmt.Println(" Hz")
	}
}
