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
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/fxamacker/cbor/v2"
	"github.com/goccy/go-yaml"
	"github.com/k0kubun/pp/v3"
	"github.com/logrusorgru/aurora/v4"
	"github.com/tidwall/pretty"

	"github.com/onflow/mipsdecode/errors"
)

// Render writes the report to w in the given format.
// Colorize enables terminal colors for the text, json, and dump formats.
func Render(w io.Writer, report Report, format Format, colorize bool) error {
	switch format {
	case FormatText:
		return renderText(w, report, colorize)
	case FormatJSON:
		return renderJSON(w, report, colorize)
	case FormatYAML:
		return renderYAML(w, report)
	case FormatCBOR:
		return renderCBOR(w, report)
	case FormatDump:
		return renderDump(w, report, colorize)
	default:
		panic(errors.NewUnreachableError())
	}
}

func renderText(w io.Writer, report Report, colorize bool) error {
	au := aurora.New(aurora.WithColors(colorize))

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	// only the first and the last column are colored,
	// so escape sequences do not break the alignment

	instruction := au.Green(report.Instruction)
	if !report.Known {
		instruction = au.Red(report.Instruction)
	}

	header := []struct {
		label string
		value any
	}{
		{"instruction", au.Bold(instruction)},
		{"shape", report.Shape},
		{"word", report.Word},
		{"binary", report.Binary},
		{"mnemonic", au.Yellow(report.Mnemonic)},
	}
	for _, line := range header {
		_, err := fmt.Fprintf(tw, "%s\t%v\n", au.Cyan(line.label), line.value)
		if err != nil {
			return err
		}
	}

	if _, err := fmt.Fprintln(tw); err != nil {
		return err
	}

	for _, field := range report.Fields {
		annotation := field.Annotation
		if annotation == "" {
			annotation = "-"
		}
		_, err := fmt.Fprintf(
			tw,
			"%s\t[%d, %d)\t%s\t%d\t%s\n",
			au.Cyan(field.Name),
			field.Start,
			field.End,
			field.Binary,
			field.Value,
			au.Faint(annotation),
		)
		if err != nil {
			return err
		}
	}

	if _, err := fmt.Fprintln(tw); err != nil {
		return err
	}

	for _, signal := range report.Signals {
		value := au.Faint(signal.Value)
		if signal.Value != 0 {
			value = au.Green(signal.Value)
		}
		_, err := fmt.Fprintf(tw, "%s\t%v\n", au.Cyan(signal.Name), value)
		if err != nil {
			return err
		}
	}

	return tw.Flush()
}

func renderJSON(w io.Writer, report Report, colorize bool) error {
	data, err := json.Marshal(report)
	if err != nil {
		return err
	}

	data = pretty.Pretty(data)
	if colorize {
		data = pretty.Color(data, nil)
	}

	_, err = w.Write(data)
	return err
}

func renderYAML(w io.Writer, report Report) error {
	data, err := yaml.Marshal(report)
	if err != nil {
		return err
	}

	_, err = w.Write(data)
	return err
}

func renderCBOR(w io.Writer, report Report) error {
	data, err := cbor.Marshal(report)
	if err != nil {
		return err
	}

	_, err = w.Write(data)
	return err
}

func renderDump(w io.Writer, report Report, colorize bool) error {
	printer := pp.New()
	printer.SetColoringEnabled(colorize)
	_, err := printer.Fprintln(w, report)
	return err
}
