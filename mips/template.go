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

package mips

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Template is the display form of an instruction,
// e.g. `<instr> <rt>, <imm>(<rs>)`.
type Template string

const (
	PlaceholderInstr = "<instr>"
	PlaceholderRd    = "<rd>"
	PlaceholderRs    = "<rs>"
	PlaceholderRt    = "<rt>"
	PlaceholderShamt = "<shamt>"
	PlaceholderImm   = "<imm>"
	PlaceholderLabel = "<label>"
)

// DefaultRegisterTemplate is used for register-shaped instructions
// which have no template of their own.
const DefaultRegisterTemplate Template = "<instr> <rd>, <rs>, <rt>"

// Operands are the values substituted into a template.
// Register operands are already rendered, e.g. `$3` or `$v1`.
type Operands struct {
	Instr string
	Rd    string
	Rs    string
	Rt    string
	Shamt uint32
	Imm   uint32
	Label uint32
}

// Format substitutes the operands into the template.
// Substitution is literal text replacement.
func (t Template) Format(operands Operands) string {
	replacer := strings.NewReplacer(
		PlaceholderInstr, operands.Instr,
		PlaceholderRd, operands.Rd,
		PlaceholderRs, operands.Rs,
		PlaceholderRt, operands.Rt,
		PlaceholderShamt, strconv.FormatUint(uint64(operands.Shamt), 10),
		PlaceholderImm, strconv.FormatUint(uint64(operands.Imm), 10),
		PlaceholderLabel, strconv.FormatUint(uint64(operands.Label), 10),
	)
	return replacer.Replace(string(t))
}

var placeholderPattern = regexp.MustCompile(`<[a-z]+>`)

var knownPlaceholders = map[string]struct{}{
	PlaceholderInstr: {},
	PlaceholderRd:    {},
	PlaceholderRs:    {},
	PlaceholderRt:    {},
	PlaceholderShamt: {},
	PlaceholderImm:   {},
	PlaceholderLabel: {},
}

// placeholders returns the placeholders used in the template, in order of appearance.
func (t Template) placeholders() []string {
	return placeholderPattern.FindAllString(string(t), -1)
}

func (t Template) validate() error {
	for _, placeholder := range t.placeholders() {
		if _, ok := knownPlaceholders[placeholder]; !ok {
			return fmt.Errorf("unknown placeholder %s", placeholder)
		}
	}
	return nil
}
