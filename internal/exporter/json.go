package exporter

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/badele/wordstats/internal/stats"
	"github.com/badele/wordstats/internal/types"
)

type TopTokens struct {
	Level  types.Level        `json:"level"`
	Tokens []stats.TokenCount `json:"tokens"`
}

type SummaryJSONOutput struct {
	Separator   types.Separator   `json:"separator"`
	Description stats.Description `json:"description"`
	NSE         *float64          `json:"nse,omitempty"`
	Top         *TopTokens        `json:"top,omitempty"`
}

func WriteJSON(w io.Writer, output SummaryJSONOutput) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(output); err != nil {
		return fmt.Errorf("JSON serialization error: %w", err)
	}
	return nil
}
