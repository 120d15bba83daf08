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
	"bytes"
	"encoding/json"
	"testing"

	"github.com/fxamacker/cbor/v2"
	"github.com/goccy/go-yaml"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/onflow/mipsdecode/errors"
	"github.com/onflow/mipsdecode/mips"
)

func addReport() Report {
	return New(mips.Decode(0b000000_00001_00010_00011_00000_100000))
}

func TestNew(t *testing.T) {
	t.Parallel()

	t.Run("register", func(t *testing.T) {
		t.Parallel()

		report := addReport()

		assert.Equal(t, "add", report.Instruction)
		assert.True(t, report.Known)
		assert.Equal(t, "Register", report.Shape)
		assert.Equal(t, "0x00221820", report.Word)
		assert.Equal(t, "00000000001000100001100000100000", report.Binary)
		assert.Equal(t, "add $3, $1, $2", report.Mnemonic)

		assert.Equal(t,
			[]Field{
				{Name: "opcode", Start: 0, End: 6, Binary: "000000", Value: 0},
				{Name: "rs", Start: 6, End: 11, Binary: "00001", Value: 1, Annotation: "$at"},
				{Name: "rt", Start: 11, End: 16, Binary: "00010", Value: 2, Annotation: "$v0"},
				{Name: "rd", Start: 16, End: 21, Binary: "00011", Value: 3, Annotation: "$v1"},
				{Name: "shamt", Start: 21, End: 26, Binary: "00000", Value: 0},
				{Name: "funct", Start: 26, End: 32, Binary: "100000", Value: 32, Annotation: "add"},
			},
			report.Fields,
		)

		assert.Equal(t,
			[]Signal{
				{Name: "RegDst", Value: 1},
				{Name: "ALUSrc", Value: 0},
				{Name: "MemToReg", Value: 0},
				{Name: "RegWrite", Value: 1},
				{Name: "MemRead", Value: 0},
				{Name: "MemWrite", Value: 0},
				{Name: "Branch", Value: 0},
				{Name: "Jump", Value: 0},
			},
			report.Signals,
		)
	})

	t.Run("immediate", func(t *testing.T) {
		t.Parallel()

		report := New(mips.Decode(0b100011_00001_00010_0000000000010100))

		assert.Equal(t, "lw $2, 20($1)", report.Mnemonic)
		require.Len(t, report.Fields, 4)
		assert.Equal(t, "lw", report.Fields[0].Annotation)
		assert.Equal(t, "0000000000010100", report.Fields[3].Binary)
		assert.Empty(t, report.Fields[3].Annotation)
	})

	t.Run("jump", func(t *testing.T) {
		t.Parallel()

		report := New(mips.Decode(0b000010_00000000000000000000000100))

		assert.Equal(t, "Jump", report.Shape)
		require.Len(t, report.Fields, 2)
		assert.Equal(t, "j", report.Fields[0].Annotation)
		assert.Equal(t, "address", report.Fields[1].Name)
		assert.Equal(t, uint32(4), report.Fields[1].Value)
	})

	t.Run("unknown", func(t *testing.T) {
		t.Parallel()

		report := New(mips.Decode(0b111111_00000_00000_0000000000000000))

		assert.False(t, report.Known)
		assert.Equal(t, mips.Unknown, report.Instruction)
		assert.Equal(t, mips.Unknown, report.Fields[0].Annotation)
		for _, signal := range report.Signals {
			assert.Equal(t, uint8(0), signal.Value, signal.Name)
		}
	})

	t.Run("unknown funct", func(t *testing.T) {
		t.Parallel()

		report := New(mips.Decode(0b000000_00001_00010_00011_00000_111111))

		assert.Equal(t, mips.Unknown, report.Fields[5].Annotation)
	})
}

func TestParseFormat(t *testing.T) {
	t.Parallel()

	for _, format := range Formats() {
		parsed, err := ParseFormat(format.String())
		require.NoError(t, err)
		assert.Equal(t, format, parsed)
	}

	parsed, err := ParseFormat(" JSON ")
	require.NoError(t, err)
	assert.Equal(t, FormatJSON, parsed)

	_, err = ParseFormat("xml")
	require.Error(t, err)

	var formatErr *UnknownFormatError
	require.ErrorAs(t, err, &formatErr)
	assert.True(t, errors.IsUserError(err))
	assert.Equal(t,
		`unknown format "xml": expected one of text, json, yaml, cbor, dump`,
		err.Error(),
	)

	_, err = ParseFormat("formatCount")
	require.Error(t, err)
}

func TestRenderText(t *testing.T) {
	t.Parallel()

	var buffer bytes.Buffer
	err := Render(&buffer, addReport(), FormatText, false)
	require.NoError(t, err)

	assert.Equal(t,
		"instruction  add\n"+
			"shape        Register\n"+
			"word         0x00221820\n"+
			"binary       00000000001000100001100000100000\n"+
			"mnemonic     add $3, $1, $2\n"+
			"\n"+
			"opcode  [0, 6)    000000  0   -\n"+
			"rs      [6, 11)   00001   1   $at\n"+
			"rt      [11, 16)  00010   2   $v0\n"+
			"rd      [16, 21)  00011   3   $v1\n"+
			"shamt   [21, 26)  00000   0   -\n"+
			"funct   [26, 32)  100000  32  add\n"+
			"\n"+
			"RegDst    1\n"+
			"ALUSrc    0\n"+
			"MemToReg  0\n"+
			"RegWrite  1\n"+
			"MemRead   0\n"+
			"MemWrite  0\n"+
			"Branch    0\n"+
			"Jump      0\n",
		buffer.String(),
	)
}

func TestRenderTextColorized(t *testing.T) {
	t.Parallel()

	var buffer bytes.Buffer
	err := Render(&buffer, addReport(), FormatText, true)
	require.NoError(t, err)

	assert.Contains(t, buffer.String(), "\x1b[")
	assert.Contains(t, buffer.String(), "add $3, $1, $2")
}

func TestRenderJSON(t *testing.T) {
	t.Parallel()

	var buffer bytes.Buffer
	err := Render(&buffer, addReport(), FormatJSON, false)
	require.NoError(t, err)

	assert.Contains(t, buffer.String(), "\n  \"instruction\": \"add\",\n")

	var decoded Report
	require.NoError(t, json.Unmarshal(buffer.Bytes(), &decoded))
	assert.Equal(t, addReport(), decoded)
}

func TestRenderYAML(t *testing.T) {
	t.Parallel()

	var buffer bytes.Buffer
	err := Render(&buffer, addReport(), FormatYAML, false)
	require.NoError(t, err)

	assert.Contains(t, buffer.String(), "instruction: add\n")

	var decoded Report
	require.NoError(t, yaml.Unmarshal(buffer.Bytes(), &decoded))
	assert.Equal(t, addReport(), decoded)
}

func TestRenderCBOR(t *testing.T) {
	t.Parallel()

	var buffer bytes.Buffer
	err := Render(&buffer, addReport(), FormatCBOR, false)
	require.NoError(t, err)

	var decoded Report
	require.NoError(t, cbor.Unmarshal(buffer.Bytes(), &decoded))
	assert.Equal(t, addReport(), decoded)
}

func TestRenderDump(t *testing.T) {
	t.Parallel()

	var buffer bytes.Buffer
	err := Render(&buffer, addReport(), FormatDump, false)
	require.NoError(t, err)

	assert.Contains(t, buffer.String(), "report.Report{")
	assert.Contains(t, buffer.String(), `"add $3, $1, $2"`)
	assert.NotContains(t, buffer.String(), "\x1b[")
}

func TestRenderInvalidFormat(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() {
		_ = Render(&bytes.Buffer{}, addReport(), Format(42), false)
	})
}
