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

// A utility program that decodes CBOR-encoded instruction reports
// from their hex-encoded representation, e.g. produced by
// `mipsdecode -format cbor 0x00221820 | xxd -p`.

package main

import (
	"bytes"
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fxamacker/cbor/v2"

	"github.com/onflow/mipsdecode/report"
)

func decodeReports(data []byte) ([]report.Report, error) {
	decoder := cbor.NewDecoder(bytes.NewReader(data))

	var reports []report.Report
	for {
		var decoded report.Report
		err := decoder.Decode(&decoded)
		if err == io.EOF {
			return reports, nil
		}
		if err != nil {
			return nil, err
		}
		reports = append(reports, decoded)
	}
}

func main() {
	if len(os.Args) < 2 {
		panic("Usage: decode-report <data-hex> [<data-hex>]")
	}

	data, err := hex.DecodeString(strings.Join(strings.Fields(os.Args[1]), ""))
	if err != nil {
		panic(fmt.Errorf("failed to parse data of report: %w", err))
	}

	reports1, err := decodeReports(data)
	if err != nil {
		panic(fmt.Errorf("failed to decode report: %w", err))
	}

	for _, decoded := range reports1 {
		err := report.Render(os.Stdout, decoded, report.FormatDump, false)
		if err != nil {
			panic(err)
		}
	}

	if len(os.Args) > 2 {

		data2, err := hex.DecodeString(strings.Join(strings.Fields(os.Args[2]), ""))
		if err != nil {
			panic(fmt.Errorf("failed to parse data of report 2: %w", err))
		}

		reports2, err := decodeReports(data2)
		if err != nil {
			panic(fmt.Errorf("failed to decode report 2: %w", err))
		}

		compareReports(reports1, reports2)
	}
}

func compareReports(reports1, reports2 []report.Report) {
	if len(reports1) != len(reports2) {
		fmt.Printf("Different count: %d vs %d\n", len(reports1), len(reports2))
		os.Exit(1)
	}

	different := false
	for i, report1 := range reports1 {
		report2 := reports2[i]
		if report1.Word != report2.Word || report1.Mnemonic != report2.Mnemonic {
			fmt.Printf(
				"Report %d is different: %s (%s) vs %s (%s)\n",
				i,
				report1.Word,
				report1.Mnemonic,
				report2.Word,
				report2.Mnemonic,
			)
			different = true
		}
	}

	if different {
		os.Exit(1)
	}
}
