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

package console

import (
	"github.com/texttheater/golang-levenshtein/levenshtein"
)

// suggest returns the candidate with the smallest edit distance to name,
// if that distance is small enough for the candidate to be a typo of name.
// Candidates are expected to be sorted, so ties are broken deterministically.
func suggest(name string, candidates []string) string {
	nameRunes := []rune(name)

	var closest string
	closestDistance := len(nameRunes)

	for _, candidate := range candidates {
		distance := levenshtein.DistanceForStrings(
			nameRunes,
			[]rune(candidate),
			levenshtein.DefaultOptions,
		)

		// a complete replacement of the candidate is no suggestion
		if distance < closestDistance && distance < len(candidate) {
			closest = candidate
			closestDistance = distance
		}
	}

	return closest
}
