package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"strings"
	"text/tabwriter"

	"gopkg.in/yaml.v3"
)

const (
	formatTable = "table"
	formatJSON  = "json"
	formatYAML  = "yaml"
)

func checkFormat(format string) error {
	switch format {
	case formatTable, formatJSON, formatYAML:
		return nil
	default:
		return fmt.Errorf("unknown format %q: use table, json or yaml", format)
	}
}

// render writes v as JSON or YAML, or calls table with a tabwriter that is
// flushed afterwards.
func render(w io.Writer, format string, v any, table func(tw *tabwriter.Writer)) error {
	switch format {
	case formatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case formatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}
		return enc.Close()
	default:
		tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
		table(tw)
		return tw.Flush()
	}
}

// row writes tab-separated cells terminated by a newline.
func row(tw *tabwriter.Writer, cells ...any) {
	parts := make([]string, len(cells))
	for i, c := range cells {
		parts[i] = fmt.Sprint(c)
	}
	fmt.Fprintln(tw, strings.Join(parts, "\t"))
}

// bar draws pct (0..100) as a run of blocks out of width.
func bar(pct float64, width int) string {
	n := int(math.Round(pct / 100 * float64(width)))
	return strings.Repeat("█", max(0, min(n, width)))
}

// marker places a dot at pct along an axis of width characters.
func marker(pct float64, width int) string {
	if width < 1 {
		return ""
	}
	at := int(math.Round(pct / 100 * float64(width-1)))
	at = max(0, min(at, width-1))
	return strings.Repeat("·", at) + "●" + strings.Repeat("·", width-1-at)
}

func formatDuration(d float64) string {
	if d == math.Trunc(d) {
		return fmt.Sprintf("%.0f", d)
	}
	return fmt.Sprintf("%.1f", d)
}
