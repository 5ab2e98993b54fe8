// Package wordstats provides a public API for describing word segmentation
// corpora.
//
// This package provides functions to:
//   - Read a boundary-annotated corpus (phone, syllable and word markers)
//   - Tokenize utterances at each level
//   - Compute descriptive statistics (counts, hapax, MATTR, average word length)
//   - Compute the Normalized Segmentation Entropy (NSE)
//
// Example usage:
//
//	import "github.com/badele/wordstats/pkg/wordstats"
//
//	f, _ := os.Open("tags.txt")
//	corpus, _ := wordstats.ReadCorpus(f)
//	s, _ := wordstats.New(corpus, wordstats.DefaultSeparator())
//	desc := s.Describe()
//	nse, _ := s.NormalizedSegmentationEntropy()
package wordstats

import (
	"io"
	"log/slog"

	"github.com/badele/wordstats/internal/exporter"
	"github.com/badele/wordstats/internal/importer/corpus"
	"github.com/badele/wordstats/internal/stats"
	"github.com/badele/wordstats/internal/types"
)

// Type aliases for public API
type (
	// Level is a token granularity: phone, syllable or word
	Level = types.Level

	// Separator holds the boundary markers of each level
	Separator = types.Separator

	// Tokenizer is the interface for all tokenizers
	Tokenizer = types.Tokenizer

	// Corpus is a list of trimmed, non-empty utterances
	Corpus = corpus.Corpus

	// CorpusStatistics computes statistics over a tokenized corpus
	CorpusStatistics = stats.CorpusStatistics

	// Description is the basic description of a corpus
	Description = stats.Description

	// PhoneMetrics are the statistics requiring a phone separator
	PhoneMetrics = stats.PhoneMetrics

	// TokenCount is a token with its raw count
	TokenCount = stats.TokenCount

	// Unigram is a token frequency table
	Unigram = stats.Unigram
)

// Level constants
const (
	LevelPhone    = types.LevelPhone
	LevelSyllable = types.LevelSyllable
	LevelWord     = types.LevelWord
)

// Errors
var (
	ErrNoWordSeparator    = stats.ErrNoWordSeparator
	ErrEmptyCorpus        = stats.ErrEmptyCorpus
	ErrLevelNotConfigured = stats.ErrLevelNotConfigured
	ErrNoPhoneLevel       = stats.ErrNoPhoneLevel
	ErrTooFewPhones       = stats.ErrTooFewPhones
	ErrCorpusTooShort     = stats.ErrCorpusTooShort
)

// DefaultSeparator returns the wordseg markers: " " for phones, ";esyll"
// for syllables and ";eword" for words.
func DefaultSeparator() Separator {
	return types.DefaultSeparator()
}

// ParseLevel returns the level named "phone", "syllable" or "word".
func ParseLevel(s string) (Level, error) {
	return types.ParseLevel(s)
}

// ReadCorpus reads one utterance per line. encoding defaults to UTF-8
// ("latin1", "cp1252" and "utf16" are also supported).
func ReadCorpus(r io.Reader, encoding ...string) (Corpus, error) {
	var opts []corpus.Option
	if len(encoding) > 0 {
		opts = append(opts, corpus.WithEncoding(encoding[0]))
	}
	return corpus.Read(r, opts...)
}

// New tokenizes lines with tok and builds the statistics. Warnings are
// sent to logger when it is not nil.
func New(lines []string, tok Tokenizer, logger ...*slog.Logger) (*CorpusStatistics, error) {
	var opts []stats.Option
	if len(logger) > 0 {
		opts = append(opts, stats.WithLogger(logger[0]))
	}
	return stats.New(lines, tok, opts...)
}

// WriteReport writes the description and the NSE as a header line and a
// values line. A nil nse is printed as NA.
func WriteReport(w io.Writer, d Description, nse *float64) error {
	return exporter.WriteReport(w, d, nse)
}
