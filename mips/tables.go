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
	_ "embed"
	"fmt"
	"maps"
	"slices"
	"strconv"

	"github.com/goccy/go-yaml"

	"github.com/onflow/mipsdecode/errors"
)

//go:embed instructions.yaml
var instructionsYAML []byte

type opcodeEntry struct {
	Opcode   string `yaml:"opcode"`
	Name     string `yaml:"name"`
	Template string `yaml:"template"`
}

type functEntry struct {
	Funct string `yaml:"funct"`
	Name  string `yaml:"name"`
}

type templateEntry struct {
	Name     string `yaml:"name"`
	Template string `yaml:"template"`
}

type signalsEntry struct {
	Names []string `yaml:"names"`
	Set   []string `yaml:"set"`
}

type tablesFile struct {
	Opcodes   []opcodeEntry   `yaml:"opcodes"`
	Functs    []functEntry    `yaml:"functs"`
	Templates []templateEntry `yaml:"templates"`
	Signals   []signalsEntry  `yaml:"signals"`
}

type opcodeInfo struct {
	name     string
	template Template
}

type instructionTables struct {
	opcodes   map[uint8]opcodeInfo
	functs    map[uint8]string
	templates map[string]Template
	signals   map[string]ControlSignals
}

// tables is initialized once, when the package is loaded, and never mutated afterwards
var tables = mustLoadTables(instructionsYAML)

func mustLoadTables(data []byte) *instructionTables {
	result, err := loadTables(data)
	if err != nil {
		panic(errors.NewUnexpectedErrorFromCause(err))
	}
	return result
}

func loadTables(data []byte) (*instructionTables, error) {
	var file tablesFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse instruction tables: %w", err)
	}

	result := &instructionTables{
		opcodes:   make(map[uint8]opcodeInfo, len(file.Opcodes)),
		functs:    make(map[uint8]string, len(file.Functs)),
		templates: make(map[string]Template, len(file.Templates)),
		signals:   make(map[string]ControlSignals),
	}

	for _, entry := range file.Opcodes {
		opcode, err := parseCode(entry.Opcode)
		if err != nil {
			return nil, fmt.Errorf("invalid opcode of %s: %w", entry.Name, err)
		}
		if Classify(opcode) == ShapeRegister {
			return nil, fmt.Errorf("opcode of %s selects register-shaped instructions", entry.Name)
		}
		if existing, ok := result.opcodes[opcode]; ok {
			return nil, fmt.Errorf("duplicate opcode %s: %s and %s", entry.Opcode, existing.name, entry.Name)
		}
		if entry.Name == "" || entry.Template == "" {
			return nil, fmt.Errorf("incomplete entry for opcode %s", entry.Opcode)
		}
		template := Template(entry.Template)
		if err := template.validate(); err != nil {
			return nil, fmt.Errorf("invalid template of %s: %w", entry.Name, err)
		}
		result.opcodes[opcode] = opcodeInfo{
			name:     entry.Name,
			template: template,
		}
	}

	for _, entry := range file.Functs {
		funct, err := parseCode(entry.Funct)
		if err != nil {
			return nil, fmt.Errorf("invalid funct of %s: %w", entry.Name, err)
		}
		if existing, ok := result.functs[funct]; ok {
			return nil, fmt.Errorf("duplicate funct %s: %s and %s", entry.Funct, existing, entry.Name)
		}
		if entry.Name == "" {
			return nil, fmt.Errorf("missing name for funct %s", entry.Funct)
		}
		result.functs[funct] = entry.Name
	}

	for _, entry := range file.Templates {
		if _, ok := result.templates[entry.Name]; ok {
			return nil, fmt.Errorf("duplicate template for %s", entry.Name)
		}
		template := Template(entry.Template)
		if err := template.validate(); err != nil {
			return nil, fmt.Errorf("invalid template of %s: %w", entry.Name, err)
		}
		result.templates[entry.Name] = template
	}

	for _, entry := range file.Signals {
		var signals ControlSignals
		for _, signal := range entry.Set {
			if !signals.set(signal) {
				return nil, fmt.Errorf("unknown control signal %s", signal)
			}
		}
		for _, name := range entry.Names {
			if _, ok := result.signals[name]; ok {
				return nil, fmt.Errorf("duplicate control signals for %s", name)
			}
			result.signals[name] = signals
		}
	}

	return result, nil
}

const codeBits = 6

func parseCode(code string) (uint8, error) {
	if len(code) != codeBits {
		return 0, fmt.Errorf("expected %d binary digits, got %q", codeBits, code)
	}
	value, err := strconv.ParseUint(code, 2, 8)
	if err != nil {
		return 0, err
	}
	return uint8(value), nil
}

// OpcodeName returns the name of the immediate- or jump-shaped
// instruction with the given opcode.
func OpcodeName(opcode uint8) (string, bool) {
	name, _, ok := lookupOpcode(opcode)
	return name, ok
}

func lookupOpcode(opcode uint8) (string, Template, bool) {
	info, ok := tables.opcodes[opcode]
	return info.name, info.template, ok
}

// FunctName returns the name of the register-shaped
// instruction with the given funct code.
func FunctName(funct uint8) (string, bool) {
	name, ok := tables.functs[funct]
	return name, ok
}

// RegisterTemplate returns the display template of the register-shaped
// instruction with the given name, or DefaultRegisterTemplate.
func RegisterTemplate(name string) Template {
	template, ok := tables.templates[name]
	if !ok {
		return DefaultRegisterTemplate
	}
	return template
}

// Names returns the names of all known instructions, sorted.
// Reserved instructions, which cannot be decoded, are included.
func Names() []string {
	names := make(map[string]struct{}, len(tables.signals))
	for _, info := range tables.opcodes {
		names[info.name] = struct{}{}
	}
	for _, name := range tables.functs {
		names[name] = struct{}{}
	}
	for name := range tables.templates {
		names[name] = struct{}{}
	}
	for name := range tables.signals {
		names[name] = struct{}{}
	}
	return slices.Sorted(maps.Keys(names))
}
