package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"
)

// Format selects the report encoding.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

const indent = 2

// ParseFormat accepts text, json or yaml (case-insensitive; "yml" is yaml).
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "text", "":
		return FormatText, nil
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("report: unknown format %q", s)
	}
}

// Write encodes r to w. withTable only affects FormatText; structured
// formats always carry the table.
func Write(w io.Writer, r Report, f Format, withTable bool) error {
	switch f {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", strings.Repeat(" ", indent))
		return enc.Encode(r)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(indent)
		if err := enc.Encode(r); err != nil {
			return err
		}
		return enc.Close()
	case FormatText:
		return writeText(w, r, withTable)
	default:
		return fmt.Errorf("report: unknown format %q", string(f))
	}
}

// writeText prints the optional table followed by the one-line verdict.
func writeText(w io.Writer, r Report, withTable bool) error {
	var b strings.Builder
	if withTable && len(r.Table) > 0 {
		b.WriteString("Routh-Hurwitz table:\n")
		for _, row := range r.Table {
			b.WriteString("[")
			for j, v := range row {
				if j > 0 {
					b.WriteString(", ")
				}
				fmt.Fprintf(&b, "%g", v)
			}
			b.WriteString("]\n")
		}
	}
	if r.SpecialCase {
		b.WriteString("Special case.\n")
	} else {
		fmt.Fprintf(&b, "The polynomial has %d unstable poles.\n", r.UnstablePoles)
	}
	_, err := io.WriteString(w, b.String())

	return err
}
