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
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/onflow/mipsdecode/errors"
)

func TestParseBinaryWord(t *testing.T) {
	t.Parallel()

	t.Run("valid", func(t *testing.T) {
		t.Parallel()

		word, err := ParseBinaryWord("00000000001000100001100000100000")
		require.NoError(t, err)
		assert.Equal(t, Word(0x00221820), word)
	})

	t.Run("all ones", func(t *testing.T) {
		t.Parallel()

		word, err := ParseBinaryWord("11111111111111111111111111111111")
		require.NoError(t, err)
		assert.Equal(t, Word(0xFFFFFFFF), word)
	})

	t.Run("too short", func(t *testing.T) {
		t.Parallel()

		_, err := ParseBinaryWord("0000")
		require.Error(t, err)

		var lengthErr *InvalidWordLengthError
		require.ErrorAs(t, err, &lengthErr)
		assert.Equal(t, 4, lengthErr.Length)
		assert.True(t, errors.IsUserError(err))
	})

	t.Run("too long", func(t *testing.T) {
		t.Parallel()

		_, err := ParseBinaryWord("000000000010001000011000001000000")
		var lengthErr *InvalidWordLengthError
		require.ErrorAs(t, err, &lengthErr)
		assert.Equal(t, 33, lengthErr.Length)
	})

	t.Run("empty", func(t *testing.T) {
		t.Parallel()

		_, err := ParseBinaryWord("")
		var lengthErr *InvalidWordLengthError
		require.ErrorAs(t, err, &lengthErr)
		assert.Equal(t, 0, lengthErr.Length)
	})

	t.Run("invalid digit", func(t *testing.T) {
		t.Parallel()

		_, err := ParseBinaryWord("00000000001000100001100000102000")
		require.Error(t, err)

		var digitErr *InvalidBinaryDigitError
		require.ErrorAs(t, err, &digitErr)
		assert.Equal(t, 28, digitErr.Index)
		assert.Equal(t, '2', digitErr.Char)
		assert.True(t, errors.IsUserError(err))
		assert.Equal(t, `invalid binary digit '2' at position 28`, err.Error())
	})
}

func TestWordFormatting(t *testing.T) {
	t.Parallel()

	word := Word(0x20222020)
	assert.Equal(t, "0x20222020", word.String())
	assert.Equal(t, "00100000001000100010000000100000", word.Binary())
	assert.Equal(t, uint8(0b001000), word.Opcode())
}

func TestWordBinaryRoundTrip(t *testing.T) {
	t.Parallel()

	properties := gopter.NewProperties(nil)

	properties.Property("parsing the binary form yields the word", prop.ForAll(
		func(value uint32) bool {
			word := Word(value)
			parsed, err := ParseBinaryWord(word.Binary())
			return err == nil && parsed == word
		},
		gen.UInt32(),
	))

	properties.TestingRun(t)
}

func TestMustParseBinaryDigits(t *testing.T) {
	t.Parallel()

	assert.Equal(t, Word(0x00221820), mustParseBinaryDigits("00000000001000100001100000100000"))

	defer func() {
		r := recover()
		require.NotNil(t, r)

		err, ok := r.(error)
		require.True(t, ok)
		assert.True(t, errors.IsInternalError(err))
		assert.False(t, errors.IsUserError(err))
	}()

	mustParseBinaryDigits("2")
}
