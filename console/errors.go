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

	"github.com/onflow/mipsdecode/errors"
)

// ConfigError is reported when a configuration file cannot be loaded.
type ConfigError struct {
	Path string
	Err  error
}

var _ errors.UserError = &ConfigError{}

func (*ConfigError) IsUserError() {}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("invalid configuration %s: %s", e.Path, e.Err)
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

// UnknownColorModeError

type UnknownColorModeError struct {
	Name string
}

var _ errors.UserError = &UnknownColorModeError{}

func (*UnknownColorModeError) IsUserError() {}

func (e *UnknownColorModeError) Error() string {
	return fmt.Sprintf(
		"unknown color mode %q: expected %q, %q, or %q",
		e.Name,
		ColorAuto,
		ColorAlways,
		ColorNever,
	)
}

// InvalidLogLevelError

type InvalidLogLevelError struct {
	Level string
}

var _ errors.UserError = &InvalidLogLevelError{}

func (*InvalidLogLevelError) IsUserError() {}

func (e *InvalidLogLevelError) Error() string {
	return fmt.Sprintf("invalid log level %q", e.Level)
}

// UnknownCommandError is reported for an unsupported console command.
type UnknownCommandError struct {
	Command    string
	Suggestion string
}

var _ errors.UserError = &UnknownCommandError{}

func (*UnknownCommandError) IsUserError() {}

func (e *UnknownCommandError) Error() string {
	message := fmt.Sprintf("unknown command %s", e.Command)
	if e.Suggestion != "" {
		message += fmt.Sprintf(". did you mean %s?", e.Suggestion)
	}
	return message
}

// UnknownInstructionError is reported when the control signals of
// an instruction which is not in the tables are requested.
type UnknownInstructionError struct {
	Name       string
	Suggestion string
}

var _ errors.UserError = &UnknownInstructionError{}

func (*UnknownInstructionError) IsUserError() {}

func (e *UnknownInstructionError) Error() string {
	message := fmt.Sprintf("unknown instruction %q", e.Name)
	if e.Suggestion != "" {
		message += fmt.Sprintf(". did you mean %q?", e.Suggestion)
	}
	return message
}

// UnknownRegisterError is reported when the index of
// a register which does not exist is requested.
type UnknownRegisterError struct {
	Name       string
	Suggestion string
}

var _ errors.UserError = &UnknownRegisterError{}

func (*UnknownRegisterError) IsUserError() {}

func (e *UnknownRegisterError) Error() string {
	message := fmt.Sprintf("unknown register %q", e.Name)
	if e.Suggestion != "" {
		message += fmt.Sprintf(". did you mean %q?", e.Suggestion)
	}
	return message
}

// MissingArgumentError is reported for a command invoked without its argument.
type MissingArgumentError struct {
	Command  string
	Argument string
}

var _ errors.UserError = &MissingArgumentError{}

func (*MissingArgumentError) IsUserError() {}

func (e *MissingArgumentError) Error() string {
	return fmt.Sprintf("missing argument of %s: expected %s", e.Command, e.Argument)
}

// BatchError is reported when some lines of a batch file could not be decoded.
type BatchError struct {
	Path     string
	Failures int
	Lines    int
}

var _ errors.UserError = &BatchError{}

func (*BatchError) IsUserError() {}

func (e *BatchError) Error() string {
	return fmt.Sprintf(
		"failed to decode %d of %d lines of %s",
		e.Failures,
		e.Lines,
		e.Path,
	)
}
