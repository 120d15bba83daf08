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

//go:generate go run golang.org/x/tools/cmd/stringer -type=Shape -trimprefix=Shape

// Shape is the encoding format of an instruction word.
type Shape uint8

const (
	ShapeRegister Shape = iota
	ShapeImmediate
	ShapeJump
)

const (
	opcodeSpecial = 0b000000
	opcodeJ       = 0b000010
	opcodeJAL     = 0b000011
)

// Classify returns the shape of the instruction with the given opcode.
// Every opcode maps to exactly one shape.
func Classify(opcode uint8) Shape {
	switch opcode {
	case opcodeSpecial:
		return ShapeRegister
	case opcodeJ, opcodeJAL:
		return ShapeJump
	default:
		return ShapeImmediate
	}
}
