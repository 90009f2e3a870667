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
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

type config struct {
	ConfigFile string
	KnownHosts string
	Volume     float64
	Attack     float64
	Release    float64
	Duration   float64

	Connections []*connConfig
}

type connConfig struct {
	Name string

	Host     string
	Port     string
	Username string
	Password string
}

func (conf *config) parseConfigFile() error {
	f, err := os.Open(conf.ConfigFile)
	if err != nil {
		return err
	}
	defer f.Close()
	buf := bufio.NewReader(f)

	currentConn := &connConfig{}
	currentConnValid := false

	for {
		line, lineerr := buf.ReadString('\n')
		if lineerr != nil && lineerr != io.EOF {
			return lineerr
		}
		if strings.HasPrefix(line, "#") {
			if lineerr == io.EOF {
				break
			}
			continue
		}
		fields := strings.Fields(line)
		if len(fields) == 0 {
			if lineerr == io.EOF {
				break
			}
			continue
		}
		// I do not want to use reflect.Value, they are too ugly
		switch fields[0] {
		case "KnownHosts":
			err = conf.parseConfigString(fields, &conf.KnownHosts)
			if err == nil {
				conf.KnownHosts = os.ExpandEnv(conf.KnownHosts)
			}
		case "Volume":
			err = conf.parseConfigFloat(fields, &conf.Volume)
		case "Attack":
			err = conf.parseConfigFloat(fields, &conf.Attack)
		case "Release":
			err = conf.parseConfigFloat(fields, &conf.Release)
		case "Duration":
			err = conf.parseConfigFloat(fields, &conf.Duration)
		case "Connection":
			if currentConnValid {
				err = conf.appendConnection(currentConn)
				if err != nil {
					return err
				}
				currentConn = &connConfig{}
			} else {
				currentConnValid = true
			}
			err = conf.parseConfigString(fields, &currentConn.Name)
		case "Host":
			currentConnValid = true
			err = conf.parseConfigString(fields, &currentConn.Host)
		case "Port":
			currentConnValid = true
			err = conf.parseConfigString(fields, &currentConn.Port)
		case "Username":
			currentConnValid = true
			err = conf.parseConfigString(fields, &currentConn.Username)
		case "Password":
			currentConnValid = true
			err = conf.parseConfigString(fields, &currentConn.Password)
		}
		if err != nil {
			return err
		}
		if lineerr == io.EOF {
			break
		}
	}

	if conf.KnownHosts == "" {
		home, ok := os.LookupEnv("HOME")
		if !ok {
			home, _ = os.LookupEnv("USERPROFILE")
		}
		conf.KnownHosts = filepath.Join(home, ".ssh", "known_hosts")
	}

	if currentConnValid {
		err = conf.appendConnection(currentConn)
		if err != nil {
			return err
		}
	}
	return nil
}

func (conf *config) appendConnection(currentConn *connConfig) error {
	if currentConn.Host == "" {
		if currentConn.Name == "" {
			return fmt.Errorf("Host not defined for connection (unnamed)")
		}
		return fmt.Errorf("Host not defined for connection %q", currentConn.Name)
	}
	if currentConn.Name == "" {
		currentConn.Name = currentConn.Host
	}
	conf.Connections = append(conf.Connections, currentConn)
	return nil
}

func (conf *config) findConnection(name string) *connConfig {
	for _, conn := range conf.Connections {
		if conn.Name == name {
			return conn
		}
	}
	return nil
}

func (conf *config) parseConfigFloat(fields []string, dest *float64) error {
	if len(fields) != 2 {
		return fmt.Errorf("syntax error in option %q", fields[0])
	}
	value, err := strconv.ParseFloat(fields[1], 64)
	if err != nil {
		return err
	}
	if value < 0 {
		return errors.New("value is negative")
	}
	*dest = value
	return nil
}

func (conf *config) parseConfigString(fields []string, dest *string) error {
	if len(fields) > 2 {
		return fmt.Errorf("space is not allowed in option %q", fields[0])
	}
	if len(fields) == 1 {
		*dest = ""
	} else {
		*dest = fields[1]
	}
	return nil
}
