/*
 * MIPS Decode - Single-cycle MIPS instruction decoder
 *
 * Copyright Flow Foundation
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *   http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package console

import (
	"fmt"
	"os"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"

	"github.com/onflow/mipsdecode/errors"
	"github.com/onflow/mipsdecode/mips"
	"github.com/onflow/mipsdecode/report"
)

// Config is the user configuration of the decoder console.
// All fields are optional, see DefaultConfig.
type Config struct {
	// Format is the report format, e.g. `text` or `json`
	Format string `yaml:"format"`
	// Color is `auto`, `always`, or `never`
	Color string `yaml:"color"`
	// Registers is the register naming, `numeric` or `conventional`
	Registers string `yaml:"registers"`
	// LogLevel is a zerolog level, e.g. `debug`
	LogLevel string `yaml:"log_level"`
}

func DefaultConfig() Config {
	return Config{
		Format:    report.FormatText.String(),
		Color:     ColorAuto.String(),
		Registers: mips.RegisterNamesNumeric.String(),
		LogLevel:  zerolog.WarnLevel.String(),
	}
}

// LoadConfig reads a YAML configuration file.
// Settings missing from the file keep their default value.
func LoadConfig(path string) (Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, &ConfigError{
			Path: path,
			Err:  err,
		}
	}

	if err := yaml.Unmarshal(data, &config); err != nil {
		return Config{}, &ConfigError{
			Path: path,
			Err:  fmt.Errorf("failed to parse YAML: %w", err),
		}
	}

	return config, nil
}

// Options are the validated settings of a Session.
type Options struct {
	Format         report.Format
	Colorize       bool
	RegisterNaming mips.RegisterNaming
	// Progress enables the progress bar of batch decoding
	Progress bool
}

// Options validates the configuration.
// Terminal reports whether the output is a terminal,
// which enables colors in the `auto` color mode.
func (c Config) Options(terminal bool) (Options, error) {
	format, err := report.ParseFormat(c.Format)
	if err != nil {
		return Options{}, err
	}

	colorMode, err := ParseColorMode(c.Color)
	if err != nil {
		return Options{}, err
	}

	naming, err := mips.ParseRegisterNaming(c.Registers)
	if err != nil {
		return Options{}, err
	}

	return Options{
		Format:         format,
		Colorize:       colorMode.Enabled(terminal),
		RegisterNaming: naming,
	}, nil
}

// Level returns the configured log level.
func (c Config) Level() (zerolog.Level, error) {
	level, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(c.LogLevel)))
	if err != nil {
		return zerolog.NoLevel, &InvalidLogLevelError{
			Level: c.LogLevel,
		}
	}
	return level, nil
}

type ColorMode uint8

const (
	ColorAuto ColorMode = iota
	ColorAlways
	ColorNever
)

func (m ColorMode) String() string {
	switch m {
	case ColorAuto:
		return "auto"
	case ColorAlways:
		return "always"
	case ColorNever:
		return "never"
	}

	panic(errors.NewUnreachableError())
}

func ParseColorMode(name string) (ColorMode, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "auto", "":
		return ColorAuto, nil
	case "always":
		return ColorAlways, nil
	case "never":
		return ColorNever, nil
	default:
		return 0, &UnknownColorModeError{
			Name: name,
		}
	}
}

func (m ColorMode) Enabled(terminal bool) bool {
	switch m {
	case ColorAuto:
		return terminal
	case ColorAlways:
		return true
	case ColorNever:
		return false
	}

	panic(errors.NewUnreachableError())
}

// IsTerminal reports whether the file is a terminal.
func IsTerminal(file *os.File) bool {
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
