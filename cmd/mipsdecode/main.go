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

// mipsdecode decodes 32-bit MIPS instruction words.
//
// Words given as arguments are decoded and reported.
// With -input, the words of a file are decoded, one per line.
// Otherwise words are read from standard input,
// interactively if standard input is a terminal.

package main

import (
	"flag"
	"os"

	"github.com/rs/zerolog"

	"github.com/onflow/mipsdecode/console"
)

func main() {

	configFlag := flag.String("config", "", "path of a YAML configuration file")
	formatFlag := flag.String("format", "", "report format: text, json, yaml, cbor, or dump")
	colorFlag := flag.String("color", "", "colors: auto, always, or never")
	registersFlag := flag.String("registers", "", "register naming: numeric or conventional")
	inputFlag := flag.String("input", "", "file of instruction words, one per line")
	logLevelFlag := flag.String("log-level", "", "log level, e.g. debug or info")

	flag.Parse()

	stderrIsTerminal := console.IsTerminal(os.Stderr)

	log := console.NewLogger(os.Stderr, zerolog.WarnLevel, stderrIsTerminal)

	config := console.DefaultConfig()
	if *configFlag != "" {
		var err error
		config, err = console.LoadConfig(*configFlag)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to load configuration")
		}
	}

	override(&config.Format, *formatFlag)
	override(&config.Color, *colorFlag)
	override(&config.Registers, *registersFlag)
	override(&config.LogLevel, *logLevelFlag)

	level, err := config.Level()
	if err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}
	log = log.Level(level)

	options, err := config.Options(console.IsTerminal(os.Stdout))
	if err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}
	options.Progress = stderrIsTerminal

	log.Info().
		Stringer("format", options.Format).
		Stringer("registers", options.RegisterNaming).
		Bool("color", options.Colorize).
		Msg("configured")

	session := console.NewSession(os.Stdout, os.Stderr, options, log)

	switch {
	case flag.NArg() > 0:
		failed := false
		for _, argument := range flag.Args() {
			err := session.Decode(argument)
			if err == nil {
				continue
			}
			if !session.ReportError(err) {
				panic(err)
			}
			failed = true
		}
		if failed {
			os.Exit(1)
		}

	case *inputFlag != "":
		err := session.RunBatch(*inputFlag)
		if err != nil {
			log.Fatal().Err(err).Msg("batch decoding failed")
		}

	case console.IsTerminal(os.Stdin):
		err := session.RunREPL()
		if err != nil {
			panic(err)
		}

	default:
		err := session.RunLoop(os.Stdin)
		if err != nil {
			panic(err)
		}
	}
}

func override(setting *string, flagValue string) {
	if flagValue != "" {
		*setting = flagValue
	}
}
