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

	"github.com/onflow/mipsdecode/mips"
)

// Report is the serializable form of a decoded instruction.
type Report struct {
	Instruction string   `json:"instruction" yaml:"instruction" cbor:"instruction"`
	Known       bool     `json:"known" yaml:"known" cbor:"known"`
	Shape       string   `json:"shape" yaml:"shape" cbor:"shape"`
	Word        string   `json:"word" yaml:"word" cbor:"word"`
	Binary      string   `json:"binary" yaml:"binary" cbor:"binary"`
	Mnemonic    string   `json:"mnemonic" yaml:"mnemonic" cbor:"mnemonic"`
	Fields      []Field  `json:"fields" yaml:"fields" cbor:"fields"`
	Signals     []Signal `json:"signals" yaml:"signals" cbor:"signals"`
}

// Field is the value of one instruction field.
// Start and End are bit positions counted from the most significant bit,
// End is exclusive.
type Field struct {
	Name       string `json:"name" yaml:"name" cbor:"name"`
	Start      int    `json:"start" yaml:"start" cbor:"start"`
	End        int    `json:"end" yaml:"end" cbor:"end"`
	Binary     string `json:"binary" yaml:"binary" cbor:"binary"`
	Value      uint32 `json:"value" yaml:"value" cbor:"value"`
	Annotation string `json:"annotation,omitempty" yaml:"annotation,omitempty" cbor:"annotation,omitempty"`
}

type Signal struct {
	Name  string `json:"name" yaml:"name" cbor:"name"`
	Value uint8  `json:"value" yaml:"value" cbor:"value"`
}

func New(result mips.Result) Report {
	report := Report{
		Instruction: result.Name,
		Known:       result.Known(),
		Shape:       result.Shape.String(),
		Word:        result.Word.String(),
		Binary:      result.Word.Binary(),
		Mnemonic:    result.Mnemonic,
	}

	for _, value := range result.Fields.Values() {
		report.Fields = append(
			report.Fields,
			Field{
				Name:       value.Name,
				Start:      value.Start,
				End:        value.End,
				Binary:     fmt.Sprintf("%0*b", value.Width(), value.Value),
				Value:      value.Value,
				Annotation: annotate(result.Shape, value),
			},
		)
	}

	result.Signals.Each(func(name string, value bool) {
		var bit uint8
		if value {
			bit = 1
		}
		report.Signals = append(
			report.Signals,
			Signal{
				Name:  name,
				Value: bit,
			},
		)
	})

	return report
}

func annotate(shape mips.Shape, value mips.FieldValue) string {
	switch value.Field {
	case mips.FieldOpcode:
		// register-shaped instructions are identified by funct
		if shape == mips.ShapeRegister {
			return ""
		}
		name, ok := mips.OpcodeName(uint8(value.Value))
		if !ok {
			return mips.Unknown
		}
		return name

	case mips.FieldFunct:
		name, ok := mips.FunctName(uint8(value.Value))
		if !ok {
			return mips.Unknown
		}
		return name

	case mips.FieldRs, mips.FieldRt, mips.FieldRd:
		return mips.RegisterName(uint8(value.Value))
	}

	return ""
}
