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

package literal

import (
	"math"
	"strconv"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/onflow/mipsdecode/errors"
	"github.com/onflow/mipsdecode/mips"
)

func TestParse(t *testing.T) {
	t.Parallel()

	test := func(token string, expected uint64) {
		t.Run(token, func(t *testing.T) {
			t.Parallel()

			value, err := Parse(token)
			require.NoError(t, err)
			assert.Equal(t, expected, value)
		})
	}

	test("0", 0)
	test("42", 42)
	test("010", 10)
	test("0b101", 5)
	test("0B101", 5)
	test("0o17", 15)
	test("0O17", 15)
	test("0x1f", 31)
	test("0X1F", 31)
	test("0x20222020", 0x20222020)
	test("  0x10\t", 16)
	test("18446744073709551615", math.MaxUint64)
}

func TestParseInvalid(t *testing.T) {
	t.Parallel()

	test := func(token string, expectedKind Kind, expectedMessage string) {
		t.Run(token, func(t *testing.T) {
			t.Parallel()

			_, err := Parse(token)
			require.Error(t, err)

			var literalErr *InvalidLiteralError
			require.ErrorAs(t, err, &literalErr)
			assert.Equal(t, expectedKind, literalErr.Kind)
			assert.True(t, errors.IsUserError(err))
			assert.Equal(t, expectedMessage, err.Error())
		})
	}

	test("", KindDecimal, "invalid literal: empty input")
	test("   ", KindDecimal, "invalid literal: empty input")
	test("hello", KindDecimal, `invalid decimal literal "hello"`)
	test("-1", KindDecimal, `invalid decimal literal "-1"`)
	test("0b", KindBinary, `invalid binary literal "0b"`)
	test("0b102", KindBinary, `invalid binary literal "0b102"`)
	test("0o8", KindOctal, `invalid octal literal "0o8"`)
	test("0xZZ", KindHexadecimal, `invalid hexadecimal literal "0xZZ"`)
	test("0x1_0", KindHexadecimal, `invalid hexadecimal literal "0x1_0"`)
	test("18446744073709551616", KindDecimal, `invalid decimal literal "18446744073709551616"`)
}

func TestParseInvalidWrapsCause(t *testing.T) {
	t.Parallel()

	_, err := Parse("0xZZ")
	require.ErrorIs(t, err, strconv.ErrSyntax)

	_, err = Parse("18446744073709551616")
	require.ErrorIs(t, err, strconv.ErrRange)
}

func TestParseWord(t *testing.T) {
	t.Parallel()

	t.Run("hexadecimal", func(t *testing.T) {
		t.Parallel()

		word, err := ParseWord("0x20222020")
		require.NoError(t, err)
		assert.Equal(t, mips.Word(0x20222020), word)
	})

	t.Run("maximum", func(t *testing.T) {
		t.Parallel()

		word, err := ParseWord("4294967295")
		require.NoError(t, err)
		assert.Equal(t, mips.Word(math.MaxUint32), word)
	})

	t.Run("out of range", func(t *testing.T) {
		t.Parallel()

		_, err := ParseWord(" 0x100000000 ")
		require.Error(t, err)

		var rangeErr *WordOutOfRangeError
		require.ErrorAs(t, err, &rangeErr)
		assert.Equal(t, "0x100000000", rangeErr.Token)
		assert.Equal(t, uint64(1)<<32, rangeErr.Value)
		assert.True(t, errors.IsUserError(err))
		assert.Equal(t,
			`literal "0x100000000" is out of range: 4294967296 does not fit into 32 bits`,
			err.Error(),
		)
	})

	t.Run("invalid", func(t *testing.T) {
		t.Parallel()

		_, err := ParseWord("0x")
		var literalErr *InvalidLiteralError
		require.ErrorAs(t, err, &literalErr)
	})
}

func TestParseWordProperties(t *testing.T) {
	t.Parallel()

	properties := gopter.NewProperties(nil)

	properties.Property("all notations of a word parse to the same word", prop.ForAll(
		func(value uint32) bool {
			expected := mips.Word(value)
			for _, token := range []string{
				strconv.FormatUint(uint64(value), 10),
				"0b" + strconv.FormatUint(uint64(value), 2),
				"0o" + strconv.FormatUint(uint64(value), 8),
				"0x" + strconv.FormatUint(uint64(value), 16),
				expected.String(),
			} {
				word, err := ParseWord(token)
				if err != nil || word != expected {
					return false
				}
			}
			return true
		},
		gen.UInt32(),
	))

	properties.TestingRun(t)
}

func TestKind(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 2, KindBinary.Base())
	assert.Equal(t, 8, KindOctal.Base())
	assert.Equal(t, 10, KindDecimal.Base())
	assert.Equal(t, 16, KindHexadecimal.Base())

	assert.Equal(t, "hexadecimal", KindHexadecimal.String())
	assert.Equal(t, "Kind(9)", Kind(9).String())

	assert.Panics(t, func() {
		Kind(9).Base()
	})
}
