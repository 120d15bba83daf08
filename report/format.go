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

package report

import (
	"fmt"
	"strings"

	"github.com/onflow/mipsdecode/errors"
)

//go:generate go run golang.org/x/tools/cmd/stringer -type=Format -linecomment

type Format uint8

const (
	FormatText Format = iota // text
	FormatJSON               // json
	FormatYAML               // yaml
	FormatCBOR               // cbor
	FormatDump               // dump
	formatCount
)

// Formats returns all formats, in declaration order.
func Formats() []Format {
	formats := make([]Format, 0, formatCount)
	for format := range formatCount {
		formats = append(formats, format)
	}
	return formats
}

func ParseFormat(name string) (Format, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for _, format := range Formats() {
		if format.String() == name {
			return format, nil
		}
	}
	return 0, &UnknownFormatError{
		Name: name,
	}
}

// UnknownFormatError is reported for an unsupported report format.
type UnknownFormatError struct {
	Name string
}

var _ errors.UserError = &UnknownFormatError{}

func (*UnknownFormatError) IsUserError() {}

func (e *UnknownFormatError) Error() string {
	names := make([]string, 0, formatCount)
	for _, format := range Formats() {
		names = append(names, format.String())
	}
	return fmt.Sprintf(
		"unknown format %q: expected one of %s",
		e.Name,
		strings.Join(names, ", "),
	)
}
