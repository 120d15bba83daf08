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
	"io"
	"slices"
	"strings"
	"text/tabwriter"

	"github.com/logrusorgru/aurora/v4"
	"github.com/rs/zerolog"

	"github.com/onflow/mipsdecode/errors"
	"github.com/onflow/mipsdecode/literal"
	"github.com/onflow/mipsdecode/mips"
	"github.com/onflow/mipsdecode/report"
)

const (
	commandExit      = ".exit"
	commandHelp      = ".help"
	commandFormat    = ".format"
	commandRegister  = ".register"
	commandRegisters = ".registers"
	commandSignals   = ".signals"
	commandNames     = ".names"
)

type command struct {
	name        string
	argument    string
	description string
}

var commands = []command{
	{commandExit, "", "Exit the decoder"},
	{commandFormat, "<format>", "Set the report format: text, json, yaml, cbor, or dump"},
	{commandHelp, "", "Print this help message"},
	{commandNames, "", "List the names of all known instructions"},
	{commandRegister, "<name>", "Print the index of a register, e.g. $t0 or $8"},
	{commandRegisters, "<naming>", "Set the register naming: numeric or conventional"},
	{commandSignals, "<instruction>", "Print the control signals of an instruction"},
}

var commandNameList = func() []string {
	names := make([]string, 0, len(commands))
	for _, command := range commands {
		names = append(names, command.name)
	}
	return names
}()

var registerNameList = func() []string {
	names := make([]string, 0, mips.RegisterCount)
	for index := range uint8(mips.RegisterCount) {
		names = append(names, mips.RegisterName(index))
	}
	slices.Sort(names)
	return names
}()

// Session decodes lines of user input and renders reports.
// It is not safe for concurrent use.
type Session struct {
	decoder *mips.Decoder
	out     io.Writer
	errOut  io.Writer
	options Options
	au      *aurora.Aurora
	log     zerolog.Logger
	exited  bool
}

func NewSession(out, errOut io.Writer, options Options, log zerolog.Logger) *Session {
	return &Session{
		decoder: mips.NewDecoder(mips.Config{
			RegisterNaming: options.RegisterNaming,
		}),
		out:     out,
		errOut:  errOut,
		options: options,
		au:      aurora.New(aurora.WithColors(options.Colorize)),
		log:     log,
	}
}

// Execute handles one line of input: an empty line ends the session,
// a line starting with a dot is a command, and any other line is
// an instruction word to decode.
func (s *Session) Execute(line string) (done bool, err error) {
	line = strings.TrimSpace(line)

	switch {
	case line == "":
		s.exited = true
		return true, nil

	case strings.HasPrefix(line, "."):
		done, err = s.handleCommand(line)
		if done {
			s.exited = true
		}
		return done, err

	default:
		return false, s.Decode(line)
	}
}

// Decode parses the token as an instruction word, decodes it, and renders the report.
func (s *Session) Decode(token string) error {
	word, err := ParseWord(token)
	if err != nil {
		s.log.Debug().Err(err).Str("input", token).Msg("invalid instruction word")
		return err
	}

	result := s.decoder.Decode(word)

	s.log.Debug().
		Str("word", word.String()).
		Str("instruction", result.Name).
		Msg("decoded instruction word")

	return report.Render(s.out, report.New(result), s.options.Format, s.options.Colorize)
}

// ParseWord parses a token of exactly 32 binary digits as a binary word,
// and any other token as an integer literal.
func ParseWord(token string) (mips.Word, error) {
	token = strings.TrimSpace(token)
	if len(token) == mips.WordBits && strings.Trim(token, "01") == "" {
		return mips.ParseBinaryWord(token)
	}
	return literal.ParseWord(token)
}

// ReportError prints a user error and reports whether the error was handled.
// Internal errors are not handled.
func (s *Session) ReportError(err error) bool {
	if err == nil {
		return true
	}
	if !errors.IsUserError(err) {
		return false
	}
	_, _ = fmt.Fprintln(s.errOut, s.au.Colorize(err.Error(), aurora.RedFg|aurora.BrightFg|aurora.BoldFm))
	return true
}

func (s *Session) handleCommand(line string) (bool, error) {
	name, argument, _ := strings.Cut(line, " ")
	argument = strings.TrimSpace(argument)

	switch name {
	case commandExit:
		return true, nil

	case commandHelp:
		return false, s.printHelp()

	case commandFormat:
		if argument == "" {
			return false, s.println(s.options.Format)
		}
		format, err := report.ParseFormat(argument)
		if err != nil {
			return false, err
		}
		s.options.Format = format
		s.log.Info().Stringer("format", format).Msg("changed report format")
		return false, nil

	case commandRegister:
		if argument == "" {
			return false, &MissingArgumentError{
				Command:  commandRegister,
				Argument: "a register name",
			}
		}
		index, ok := mips.RegisterIndex(argument)
		if !ok {
			return false, &UnknownRegisterError{
				Name:       argument,
				Suggestion: suggest(strings.ToLower(argument), registerNameList),
			}
		}
		return false, s.println(index)

	case commandRegisters:
		if argument == "" {
			return false, s.println(s.decoder.Config().RegisterNaming)
		}
		naming, err := mips.ParseRegisterNaming(argument)
		if err != nil {
			return false, err
		}
		s.options.RegisterNaming = naming
		s.decoder = mips.NewDecoder(mips.Config{
			RegisterNaming: naming,
		})
		s.log.Info().Stringer("registers", naming).Msg("changed register naming")
		return false, nil

	case commandSignals:
		if argument == "" {
			return false, &MissingArgumentError{
				Command:  commandSignals,
				Argument: "an instruction name",
			}
		}
		return false, s.printSignals(argument)

	case commandNames:
		return false, s.println(strings.Join(mips.Names(), " "))

	default:
		return false, &UnknownCommandError{
			Command:    name,
			Suggestion: suggest(name, commandNameList),
		}
	}
}

func (s *Session) println(value any) error {
	_, err := fmt.Fprintln(s.out, value)
	return err
}

const helpMessage = `Enter an instruction word to decode it, e.g. 0x00221820,
0b00000000001000100001100000100000, or 2236448.
Words of exactly 32 binary digits may omit the 0b prefix.
An empty line exits.

Commands are prefixed with a dot. Valid commands are:
`

func (s *Session) printHelp() error {
	if _, err := io.WriteString(s.out, helpMessage); err != nil {
		return err
	}

	tw := tabwriter.NewWriter(s.out, 0, 0, 2, ' ', 0)
	for _, command := range commands {
		_, err := fmt.Fprintf(tw, "%s %s\t%s\n", command.name, command.argument, command.description)
		if err != nil {
			return err
		}
	}
	return tw.Flush()
}

func (s *Session) printSignals(name string) error {
	if !mips.HasSignals(name) {
		return &UnknownInstructionError{
			Name:       name,
			Suggestion: suggest(strings.ToLower(name), mips.Names()),
		}
	}

	tw := tabwriter.NewWriter(s.out, 0, 0, 2, ' ', 0)
	var err error
	mips.Signals(name).Each(func(signal string, value bool) {
		if err != nil {
			return
		}
		bit := 0
		if value {
			bit = 1
		}
		_, err = fmt.Fprintf(tw, "%s\t%d\n", s.au.Cyan(signal), bit)
	})
	if err != nil {
		return err
	}
	return tw.Flush()
}
