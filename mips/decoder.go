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

// Config configures a Decoder.
type Config struct {
	// RegisterNaming is the style of register operands in mnemonics
	RegisterNaming RegisterNaming
}

// Result is the decoding of one instruction word.
type Result struct {
	Word     Word
	Shape    Shape
	Fields   Fields
	Name     string
	Mnemonic string
	Signals  ControlSignals
}

// Known reports whether the instruction was found in the tables.
func (r Result) Known() bool {
	return r.Name != Unknown
}

// Decoder decodes instruction words.
// It holds no mutable state and is safe for concurrent use.
type Decoder struct {
	config Config
}

func NewDecoder(config Config) *Decoder {
	return &Decoder{
		config: config,
	}
}

func (d *Decoder) Config() Config {
	return d.config
}

// Decode classifies the word, extracts its fields, and resolves
// its identity, mnemonic, and control signals.
// The opcode is derived once and used for all three steps.
func (d *Decoder) Decode(word Word) Result {
	opcode := word.Opcode()
	shape := Classify(opcode)
	fields := Extract(word, shape)
	resolution := Resolve(fields, d.config.RegisterNaming)

	return Result{
		Word:     word,
		Shape:    shape,
		Fields:   fields,
		Name:     resolution.Name,
		Mnemonic: resolution.Mnemonic,
		Signals:  resolution.Signals,
	}
}

var defaultDecoder = NewDecoder(Config{})

// Decode decodes the word with the default configuration,
// which renders registers numerically.
func Decode(word Word) Result {
	return defaultDecoder.Decode(word)
}
