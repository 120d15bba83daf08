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

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	t.Parallel()

	for opcode := uint8(0); opcode < 1<<FieldOpcode.Width(); opcode++ {
		var expected Shape
		switch opcode {
		case 0:
			expected = ShapeRegister
		case 2, 3:
			expected = ShapeJump
		default:
			expected = ShapeImmediate
		}

		assert.Equal(t, expected, Classify(opcode), "opcode %06b", opcode)
	}
}

func TestShapeString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Register", ShapeRegister.String())
	assert.Equal(t, "Immediate", ShapeImmediate.String())
	assert.Equal(t, "Jump", ShapeJump.String())
	assert.Equal(t, "Shape(3)", Shape(3).String())
}
