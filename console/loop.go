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
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/c-bata/go-prompt"
	"github.com/schollz/progressbar/v3"

	"github.com/onflow/mipsdecode/errors"
	"github.com/onflow/mipsdecode/mips"
)

// RunLoop executes the lines read from r,
// until the end of the input or until the session is exited.
// User errors are reported and do not end the loop.
func (s *Session) RunLoop(r io.Reader) error {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		done, err := s.Execute(scanner.Text())
		if !s.ReportError(err) {
			return err
		}
		if done {
			return nil
		}
	}
	return scanner.Err()
}

const replAssistanceMessage = `Type '.help' for assistance.`

// RunREPL runs an interactive prompt on the terminal.
func (s *Session) RunREPL() error {
	_, err := fmt.Fprintf(s.out, "MIPS instruction decoder\n%s\n\n", replAssistanceMessage)
	if err != nil {
		return err
	}

	lineNumber := 1

	var executeErr error

	executor := func(line string) {
		defer func() {
			lineNumber++
		}()

		_, err := s.Execute(line)
		if !s.ReportError(err) {
			executeErr = err
			s.exited = true
		}
	}

	completer := func(d prompt.Document) []prompt.Suggest {
		word := d.GetWordBeforeCursor()
		if len(word) == 0 {
			return nil
		}

		var suggests []prompt.Suggest

		if strings.HasPrefix(word, ".") {
			for _, command := range commands {
				suggests = append(suggests, prompt.Suggest{
					Text:        command.name,
					Description: command.description,
				})
			}
		} else if strings.HasPrefix(d.TextBeforeCursor(), commandSignals) {
			for _, name := range mips.Names() {
				suggests = append(suggests, prompt.Suggest{
					Text: name,
				})
			}
		}

		return prompt.FilterHasPrefix(suggests, word, true)
	}

	changeLivePrefix := func() (string, bool) {
		return fmt.Sprintf("%d> ", lineNumber), true
	}

	exitChecker := func(_ string, breakline bool) bool {
		return breakline && s.exited
	}

	options := []prompt.Option{
		prompt.OptionLivePrefix(changeLivePrefix),
		prompt.OptionSetExitCheckerOnInput(exitChecker),
	}
	prompt.New(executor, completer, options...).Run()

	return executeErr
}

// RunBatch decodes the file at the given path, one instruction word per line.
// Blank lines and lines starting with `#` are skipped.
// Lines which cannot be decoded are reported, and decoding continues.
func (s *Session) RunBatch(path string) error {
	file, err := os.Open(path)
	if err != nil {
		return err
	}
	defer file.Close()

	var input io.Reader = file

	if s.options.Progress {
		stat, err := file.Stat()
		if err != nil {
			return err
		}

		bar := progressbar.DefaultBytes(stat.Size(), "decoding")
		defer func() {
			_ = bar.Finish()
		}()

		progressReader := progressbar.NewReader(file, bar)
		input = &progressReader
	}

	var lines, failures int

	scanner := bufio.NewScanner(input)
	for lineNumber := 1; scanner.Scan(); lineNumber++ {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		lines++

		err := s.Decode(line)
		if err == nil {
			continue
		}

		if !errors.IsUserError(err) {
			return err
		}
		s.ReportError(lineError(path, lineNumber, err))

		failures++
	}

	if err := scanner.Err(); err != nil {
		return err
	}

	s.log.Info().
		Str("path", path).
		Int("lines", lines).
		Int("failures", failures).
		Msg("decoded batch")

	if failures > 0 {
		return &BatchError{
			Path:     path,
			Failures: failures,
			Lines:    lines,
		}
	}

	return nil
}

// lineError locates a user error at a line of a batch file.
func lineError(path string, lineNumber int, err error) errors.DefaultUserError {
	return errors.NewDefaultUserError("%s:%d: %w", path, lineNumber, err)
}
