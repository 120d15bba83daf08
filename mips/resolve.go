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
	"github.com/onflow/mipsdecode/errors"
)

// Unknown is the identity of instructions which are not in the tables.
const Unknown = "unknown"

// Resolution is the identity of an instruction,
// its mnemonic, and its control signals.
type Resolution struct {
	Name     string
	Mnemonic string
	Signals  ControlSignals
}

// Resolve identifies the instruction with the given fields.
// Register-shaped instructions are identified by funct,
// all others by opcode.
//
// Instructions missing from the tables resolve to Unknown,
// with an Unknown mnemonic and all control signals disabled.
func Resolve(fields Fields, naming RegisterNaming) Resolution {
	name, template, ok := identify(fields)
	if !ok {
		return Resolution{
			Name:     Unknown,
			Mnemonic: Unknown,
		}
	}

	return Resolution{
		Name:     name,
		Mnemonic: template.Format(operands(name, fields, naming)),
		Signals:  Signals(name),
	}
}

func identify(fields Fields) (string, Template, bool) {
	switch fields := fields.(type) {
	case RegisterFields:
		name, ok := FunctName(fields.Funct)
		if !ok {
			return "", "", false
		}
		return name, RegisterTemplate(name), true

	case ImmediateFields:
		return lookupOpcode(fields.Opcode)

	case JumpFields:
		return lookupOpcode(fields.Opcode)

	default:
		panic(errors.NewUnreachableError())
	}
}

func operands(name string, fields Fields, naming RegisterNaming) Operands {
	switch fields := fields.(type) {
	case RegisterFields:
		return Operands{
			Instr: name,
			Rd:    naming.Name(fields.Rd),
			Rs:    naming.Name(fields.Rs),
			Rt:    naming.Name(fields.Rt),
			Shamt: uint32(fields.Shamt),
		}

	case ImmediateFields:
		// branches display the raw offset as their label
		return Operands{
			Instr: name,
			Rs:    naming.Name(fields.Rs),
			Rt:    naming.Name(fields.Rt),
			Imm:   uint32(fields.Immediate),
			Label: uint32(fields.Immediate),
		}

	case JumpFields:
		return Operands{
			Instr: name,
			Label: fields.Address,
		}

	default:
		panic(errors.NewUnreachableError())
	}
}
