package exporter

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/badele/wordstats/internal/stats"
)

// ExportTokenized writes the corpus tokenized at each level to
// <base>.<level>, one utterance per line with space separated tokens.
// It returns the written paths.
func ExportTokenized(s *stats.CorpusStatistics, basePath string) ([]string, error) {
	// Remove ext if exists
	basePath = strings.TrimSuffix(basePath, filepath.Ext(basePath))

	var paths []string
	for _, level := range s.Levels() {
		tokens, err := s.Tokens(level)
		if err != nil {
			return paths, err
		}

		path := basePath + "." + level.String()
		if err := writeTokenized(path, tokens); err != nil {
			return paths, err
		}
		paths = append(paths, path)
	}

	return paths, nil
}

func writeTokenized(path string, utterances [][]string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("error creating %s: %w", path, err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	for _, utt := range utterances {
		if _, err := fmt.Fprintln(w, strings.Join(utt, " ")); err != nil {
			return fmt.Errorf("error writing %s: %w", path, err)
		}
	}

	if err := w.Flush(); err != nil {
		return fmt.Errorf("error writing %s: %w", path, err)
	}
	return f.Close()
}
