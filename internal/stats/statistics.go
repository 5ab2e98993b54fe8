// Package stats computes descriptive and entropy statistics over a
// boundary-annotated corpus.
package stats

import (
	"fmt"
	"io"
	"log/slog"
	"math"
	"strings"

	"github.com/badele/wordstats/internal/types"
)

// MATTRWindow is the number of word tokens in a MATTR window.
const MATTRWindow = 10

// CorpusStatistics holds a corpus tokenized at every defined level and
// its word unigram model. It is read-only once built.
type CorpusStatistics struct {
	utterances []string
	levels     []types.Level
	tokens     map[types.Level][][]string
	unigram    *Unigram
	logger     *slog.Logger
}

type Option func(*CorpusStatistics)

// WithLogger sets the logger used for warnings and progress messages.
func WithLogger(logger *slog.Logger) Option {
	return func(s *CorpusStatistics) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// New tokenizes corpus at each level defined by tok and builds the word
// unigram model.
func New(corpus []string, tok types.Tokenizer, opts ...Option) (*CorpusStatistics, error) {
	s := &CorpusStatistics{
		tokens: make(map[types.Level][][]string),
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(s)
	}

	s.levels = tok.Levels()
	if !s.hasLevel(types.LevelWord) {
		return nil, ErrNoWordSeparator
	}
	if !s.hasLevel(types.LevelPhone) {
		s.logger.Warn("phone separator not defined, some stats ignored")
	}
	s.logger.Info("token separator", "separator", tok)

	s.utterances = make([]string, 0, len(corpus))
	for _, utt := range corpus {
		utt = strings.TrimSpace(utt)
		if utt != "" {
			s.utterances = append(s.utterances, utt)
		}
	}
	s.logger.Info("loaded utterances", "count", len(s.utterances))

	for _, level := range s.levels {
		tokenized := make([][]string, len(s.utterances))
		for i, utt := range s.utterances {
			tokens, err := tok.Tokenize(utt, level, false)
			if err != nil {
				return nil, fmt.Errorf("tokenizing utterance %d at %s level: %w", i+1, level, err)
			}
			tokenized[i] = tokens
		}
		s.tokens[level] = tokenized
	}

	s.unigram = newUnigram(s.tokens[types.LevelWord])
	if s.unigram.Total() == 0 {
		return nil, ErrEmptyCorpus
	}

	return s, nil
}

func (s *CorpusStatistics) hasLevel(level types.Level) bool {
	for _, l := range s.levels {
		if l == level {
			return true
		}
	}
	return false
}

// Utterances returns the trimmed, non-empty utterances.
func (s *CorpusStatistics) Utterances() []string {
	return s.utterances
}

// Levels returns the tokenized levels.
func (s *CorpusStatistics) Levels() []types.Level {
	return s.levels
}

// Tokens returns the corpus tokenized at level, one slice per utterance.
// The result must not be modified.
func (s *CorpusStatistics) Tokens(level types.Level) ([][]string, error) {
	tokens, ok := s.tokens[level]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrLevelNotConfigured, level)
	}
	return tokens, nil
}

// Unigram returns the word unigram model.
func (s *CorpusStatistics) Unigram() *Unigram {
	return s.unigram
}

func (s *CorpusStatistics) words() []string {
	words := make([]string, 0, s.unigram.Total())
	for _, utt := range s.tokens[types.LevelWord] {
		words = append(words, utt...)
	}
	return words
}

func countAll(utterances [][]string) int {
	n := 0
	for _, utt := range utterances {
		n += len(utt)
	}
	return n
}

// Describe returns the basic description of the corpus. MATTR is left
// out on corpora shorter than a window, phone metrics when no phone
// separator is defined.
func (s *CorpusStatistics) Describe() Description {
	d := Description{
		NUtterances: len(s.utterances),
		NWordTokens: s.unigram.Total(),
		NWordTypes:  s.unigram.Len(),
		NWordHapax:  s.unigram.Hapax(),
	}

	for _, utt := range s.tokens[types.LevelWord] {
		if len(utt) == 1 {
			d.NUtterancesSingleWord++
		}
	}

	if mattr, err := s.MATTR(); err == nil {
		d.MATTR = &mattr
	} else {
		s.logger.Warn("mattr ignored", "error", err)
	}

	if phones, ok := s.tokens[types.LevelPhone]; ok {
		d.Phone = &PhoneMetrics{
			AWL: float64(countAll(phones)) / float64(d.NWordTokens),
		}
	}

	return d
}

// MATTR returns the moving-average type-token ratio over windows of
// MATTRWindow word tokens.
func (s *CorpusStatistics) MATTR() (float64, error) {
	words := s.words()
	nwindows := len(words) - MATTRWindow
	if nwindows < 1 {
		return 0, fmt.Errorf("%w: mattr needs more than %d word tokens, got %d",
			ErrCorpusTooShort, MATTRWindow, len(words))
	}

	var sum float64
	for start := 0; start < nwindows; start++ {
		uniques := make(map[string]struct{}, MATTRWindow)
		for _, w := range words[start : start+MATTRWindow] {
			uniques[w] = struct{}{}
		}
		sum += float64(len(uniques)) / MATTRWindow
	}

	return sum / float64(nwindows), nil
}

// TopFrequencyTokens returns the n most frequent tokens at level with
// their raw counts. All tokens are returned when n <= 0.
func (s *CorpusStatistics) TopFrequencyTokens(level types.Level, n int) ([]TokenCount, error) {
	tokens, err := s.Tokens(level)
	if err != nil {
		return nil, err
	}

	counts := countTokens(tokens)
	if n > 0 && n < len(counts) {
		counts = counts[:n]
	}
	return counts, nil
}

// NormalizedSegmentationEntropy returns the NSE of the corpus in bits:
//
//	NSE = -Σ P(w) log2 P(w) / (N - 1)
//
// summed over every word token w, P being the unigram probability and N
// the number of phones in the corpus.
func (s *CorpusStatistics) NormalizedSegmentationEntropy() (float64, error) {
	phones, ok := s.tokens[types.LevelPhone]
	if !ok {
		return 0, ErrNoPhoneLevel
	}

	n := countAll(phones)
	if n <= 1 {
		return 0, fmt.Errorf("%w: got %d", ErrTooFewPhones, n)
	}

	var sum float64
	for _, utt := range s.tokens[types.LevelWord] {
		for _, w := range utt {
			entry, _ := s.unigram.Lookup(w)
			sum += entry.Frequency * math.Log2(entry.Frequency)
		}
	}

	// sum is never positive, Abs avoids reporting -0
	return math.Abs(sum) / float64(n-1), nil
}
