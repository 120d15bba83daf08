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

// Field is a contiguous bit-slice of an instruction word.
// Bits are numbered from the most significant bit (bit 0),
// Start is inclusive and End is exclusive.
type Field struct {
	Name  string
	Start int
	End   int
}

var (
	FieldOpcode    = Field{Name: "opcode", Start: 0, End: 6}
	FieldRs        = Field{Name: "rs", Start: 6, End: 11}
	FieldRt        = Field{Name: "rt", Start: 11, End: 16}
	FieldRd        = Field{Name: "rd", Start: 16, End: 21}
	FieldShamt     = Field{Name: "shamt", Start: 21, End: 26}
	FieldFunct     = Field{Name: "funct", Start: 26, End: 32}
	FieldImmediate = Field{Name: "immediate", Start: 16, End: 32}
	FieldAddress   = Field{Name: "address", Start: 6, End: 32}
)

func (f Field) Width() int {
	return f.End - f.Start
}

func (f Field) mask() uint32 {
	return uint32(1)<<f.Width() - 1
}

func (f Field) shift() int {
	return WordBits - f.End
}

func (f Field) extract(word Word) uint32 {
	return uint32(word>>f.shift()) & f.mask()
}

func (f Field) insert(value uint32) Word {
	return Word(value&f.mask()) << f.shift()
}

// Layout returns the fields of the given shape, in word order.
func Layout(shape Shape) []Field {
	switch shape {
	case ShapeRegister:
		return []Field{
			FieldOpcode,
			FieldRs,
			FieldRt,
			FieldRd,
			FieldShamt,
			FieldFunct,
		}
	case ShapeImmediate:
		return []Field{
			FieldOpcode,
			FieldRs,
			FieldRt,
			FieldImmediate,
		}
	case ShapeJump:
		return []Field{
			FieldOpcode,
			FieldAddress,
		}
	default:
		panic(errors.NewUnreachableError())
	}
}

// FieldValue is the value of a field in a particular word.
type FieldValue struct {
	Field
	Value uint32
}

// layoutValues pairs the fields of the shape with the given values,
// which must be in the order of Layout.
func layoutValues(shape Shape, values ...uint32) []FieldValue {
	layout := Layout(shape)
	if len(values) != len(layout) {
		panic(errors.NewUnexpectedError(
			"expected %d values for %s, got %d",
			len(layout),
			shape,
			len(values),
		))
	}
	result := make([]FieldValue, len(layout))
	for i, field := range layout {
		result[i] = FieldValue{
			Field: field,
			Value: values[i],
		}
	}
	return result
}

// Fields is the set of fields of an instruction word.
// It is implemented by RegisterFields, ImmediateFields, and JumpFields.
type Fields interface {
	isFields()
	Shape() Shape
	// Values returns the values of the fields, in the order of Layout.
	Values() []FieldValue
}

// RegisterFields

type RegisterFields struct {
	Opcode uint8
	Rs     uint8
	Rt     uint8
	Rd     uint8
	Shamt  uint8
	Funct  uint8
}

var _ Fields = RegisterFields{}

func (RegisterFields) isFields() {}

func (RegisterFields) Shape() Shape {
	return ShapeRegister
}

func (f RegisterFields) Values() []FieldValue {
	return layoutValues(
		ShapeRegister,
		uint32(f.Opcode),
		uint32(f.Rs),
		uint32(f.Rt),
		uint32(f.Rd),
		uint32(f.Shamt),
		uint32(f.Funct),
	)
}

// ImmediateFields

type ImmediateFields struct {
	Opcode    uint8
	Rs        uint8
	Rt        uint8
	Immediate uint16
}

var _ Fields = ImmediateFields{}

func (ImmediateFields) isFields() {}

func (ImmediateFields) Shape() Shape {
	return ShapeImmediate
}

func (f ImmediateFields) Values() []FieldValue {
	return layoutValues(
		ShapeImmediate,
		uint32(f.Opcode),
		uint32(f.Rs),
		uint32(f.Rt),
		uint32(f.Immediate),
	)
}

// JumpFields

type JumpFields struct {
	Opcode  uint8
	Address uint32
}

var _ Fields = JumpFields{}

func (JumpFields) isFields() {}

func (JumpFields) Shape() Shape {
	return ShapeJump
}

func (f JumpFields) Values() []FieldValue {
	return layoutValues(
		ShapeJump,
		uint32(f.Opcode),
		f.Address,
	)
}

// Extract slices the word into the fields of the given shape.
func Extract(word Word, shape Shape) Fields {
	switch shape {
	case ShapeRegister:
		return RegisterFields{
			Opcode: uint8(FieldOpcode.extract(word)),
			Rs:     uint8(FieldRs.extract(word)),
			Rt:     uint8(FieldRt.extract(word)),
			Rd:     uint8(FieldRd.extract(word)),
			Shamt:  uint8(FieldShamt.extract(word)),
			Funct:  uint8(FieldFunct.extract(word)),
		}

	case ShapeImmediate:
		return ImmediateFields{
			Opcode:    uint8(FieldOpcode.extract(word)),
			Rs:        uint8(FieldRs.extract(word)),
			Rt:        uint8(FieldRt.extract(word)),
			Immediate: uint16(FieldImmediate.extract(word)),
		}

	case ShapeJump:
		return JumpFields{
			Opcode:  uint8(FieldOpcode.extract(word)),
			Address: FieldAddress.extract(word),
		}

	default:
		panic(errors.NewUnreachableError())
	}
}

// Encode packs the fields back into an instruction word.
// Values wider than their field are truncated to the field width.
func Encode(fields Fields) Word {
	switch fields := fields.(type) {
	case RegisterFields:
		return FieldOpcode.insert(uint32(fields.Opcode)) |
			FieldRs.insert(uint32(fields.Rs)) |
			FieldRt.insert(uint32(fields.Rt)) |
			FieldRd.insert(uint32(fields.Rd)) |
			FieldShamt.insert(uint32(fields.Shamt)) |
			FieldFunct.insert(uint32(fields.Funct))

	case ImmediateFields:
		return FieldOpcode.insert(uint32(fields.Opcode)) |
			FieldRs.insert(uint32(fields.Rs)) |
			FieldRt.insert(uint32(fields.Rt)) |
			FieldImmediate.insert(uint32(fields.Immediate))

	case JumpFields:
		return FieldOpcode.insert(uint32(fields.Opcode)) |
			FieldAddress.insert(fields.Address)

	default:
		panic(errors.NewUnreachableError())
	}
}
