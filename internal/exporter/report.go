package exporter

import (
	"fmt"
	"io"
	"strings"

	"github.com/badele/wordstats/internal/stats"
)

// WriteReport writes the description as a header line followed by a
// values line. Integers are printed as is, floats with 4 decimals. The
// nse column comes last and reads NA when nse is nil.
func WriteReport(w io.Writer, d stats.Description, nse *float64) error {
	fields := d.Fields()

	names := make([]string, 0, len(fields)+1)
	values := make([]string, 0, len(fields)+1)
	for _, f := range fields {
		names = append(names, f.Name)
		values = append(values, formatField(f))
	}

	names = append(names, "nse")
	if nse != nil {
		values = append(values, fmt.Sprintf("%.4f", *nse))
	} else {
		values = append(values, "NA")
	}

	if _, err := fmt.Fprintln(w, strings.Join(names, " ")); err != nil {
		return fmt.Errorf("error writing report header: %w", err)
	}
	if _, err := fmt.Fprintln(w, strings.Join(values, " ")); err != nil {
		return fmt.Errorf("error writing report values: %w", err)
	}

	return nil
}

func formatField(f stats.Field) string {
	if f.Integer {
		return fmt.Sprintf("%d", int(f.Value))
	}
	return fmt.Sprintf("%.4f", f.Value)
}
