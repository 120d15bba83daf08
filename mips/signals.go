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
	"strings"
)

const (
	SignalRegDst   = "RegDst"
	SignalALUSrc   = "ALUSrc"
	SignalMemToReg = "MemToReg"
	SignalRegWrite = "RegWrite"
	SignalMemRead  = "MemRead"
	SignalMemWrite = "MemWrite"
	SignalBranch   = "Branch"
	SignalJump     = "Jump"
)

// SignalNames are the names of the control signals, in datapath order.
var SignalNames = []string{
	SignalRegDst,
	SignalALUSrc,
	SignalMemToReg,
	SignalRegWrite,
	SignalMemRead,
	SignalMemWrite,
	SignalBranch,
	SignalJump,
}

// ControlSignals are the control lines of the single-cycle datapath
// for one instruction.
type ControlSignals struct {
	RegDst   bool
	ALUSrc   bool
	MemToReg bool
	RegWrite bool
	MemRead  bool
	MemWrite bool
	Branch   bool
	Jump     bool
}

// Each calls f for every signal, in the order of SignalNames.
func (s ControlSignals) Each(f func(name string, value bool)) {
	f(SignalRegDst, s.RegDst)
	f(SignalALUSrc, s.ALUSrc)
	f(SignalMemToReg, s.MemToReg)
	f(SignalRegWrite, s.RegWrite)
	f(SignalMemRead, s.MemRead)
	f(SignalMemWrite, s.MemWrite)
	f(SignalBranch, s.Branch)
	f(SignalJump, s.Jump)
}

// Bits packs the signals into a byte, RegDst being the most significant bit.
func (s ControlSignals) Bits() uint8 {
	var bits uint8
	s.Each(func(_ string, value bool) {
		bits <<= 1
		if value {
			bits |= 1
		}
	})
	return bits
}

// set enables the signal with the given name.
func (s *ControlSignals) set(name string) bool {
	switch name {
	case SignalRegDst:
		s.RegDst = true
	case SignalALUSrc:
		s.ALUSrc = true
	case SignalMemToReg:
		s.MemToReg = true
	case SignalRegWrite:
		s.RegWrite = true
	case SignalMemRead:
		s.MemRead = true
	case SignalMemWrite:
		s.MemWrite = true
	case SignalBranch:
		s.Branch = true
	case SignalJump:
		s.Jump = true
	default:
		return false
	}
	return true
}

// Signals returns the control signals of the instruction with the given name.
// The lookup is case-insensitive. Unknown instructions have all signals disabled.
func Signals(name string) ControlSignals {
	return tables.signals[strings.ToLower(name)]
}

// HasSignals reports whether the control table has an entry for the given name.
func HasSignals(name string) bool {
	_, ok := tables.signals[strings.ToLower(name)]
	return ok
}
