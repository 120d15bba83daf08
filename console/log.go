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
	"io"
	"time"

	"github.com/rs/zerolog"
)

// NewLogger returns a logger writing human-readable lines to w.
func NewLogger(w io.Writer, level zerolog.Level, colorize bool) zerolog.Logger {
	consoleWriter := zerolog.ConsoleWriter{
		Out:        w,
		TimeFormat: time.DateTime,
		NoColor:    !colorize,
	}
	return zerolog.New(consoleWriter).
		Level(level).
		With().
		Timestamp().
		Logger()
}
