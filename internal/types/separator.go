package types

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var (
	ErrNoWordSeparator    = errors.New("word separator not defined")
	ErrDuplicateSeparator = errors.New("separators must be distinct")
	ErrLevelNotDefined    = errors.New("level not defined in separator")
)

// Separator holds the boundary markers of each level. An empty marker
// means the level is not annotated in the corpus.
type Separator struct {
	Phone    string `json:"phone,omitempty"`
	Syllable string `json:"syllable,omitempty"`
	Word     string `json:"word"`
}

// DefaultSeparator returns the markers used by the wordseg corpora:
// "hh ax ;esyll l ow ;esyll ;eword"
func DefaultSeparator() Separator {
	return Separator{
		Phone:    " ",
		Syllable: ";esyll",
		Word:     ";eword",
	}
}

func (s Separator) String() string {
	return fmt.Sprintf("phone=%q syllable=%q word=%q", s.Phone, s.Syllable, s.Word)
}

// Validate checks the word marker is defined and the defined markers differ.
func (s Separator) Validate() error {
	if s.Word == "" {
		return ErrNoWordSeparator
	}

	seen := make(map[string]Level)
	for _, level := range s.Levels() {
		marker := s.Marker(level)
		if other, ok := seen[marker]; ok {
			return fmt.Errorf("%w: %s and %s both use %q", ErrDuplicateSeparator, other, level, marker)
		}
		seen[marker] = level
	}

	return nil
}

// Marker returns the boundary marker of level, empty if undefined.
func (s Separator) Marker(level Level) string {
	switch level {
	case LevelPhone:
		return s.Phone
	case LevelSyllable:
		return s.Syllable
	case LevelWord:
		return s.Word
	default:
		return ""
	}
}

// Levels returns the defined levels, finest first.
func (s Separator) Levels() []Level {
	var levels []Level
	for _, level := range AllLevels {
		if s.Marker(level) != "" {
			levels = append(levels, level)
		}
	}
	return levels
}

// HasLevel reports whether level has a marker.
func (s Separator) HasLevel(level Level) bool {
	return s.Marker(level) != ""
}

// Tokenize splits utterance into tokens at level. Without boundaries the
// markers of the finer levels are removed from each token, otherwise they
// are kept as is.
func (s Separator) Tokenize(utterance string, level Level, keepBoundaries bool) ([]string, error) {
	if !s.HasLevel(level) {
		return nil, fmt.Errorf("%w: %s", ErrLevelNotDefined, level)
	}
	if s.Word == "" {
		return nil, ErrNoWordSeparator
	}

	tokens := make([]string, 0)

	for _, word := range strings.Split(utterance, s.Word) {
		switch level {
		case LevelWord:
			tokens = s.appendUnit(tokens, word, keepBoundaries, s.Phone, s.Syllable)

		case LevelSyllable:
			for _, syllable := range strings.Split(word, s.Syllable) {
				tokens = s.appendUnit(tokens, syllable, keepBoundaries, s.Phone)
			}

		case LevelPhone:
			for _, syllable := range s.splitSyllables(word) {
				for _, phone := range strings.Split(syllable, s.Phone) {
					tokens = s.appendUnit(tokens, phone, false)
				}
			}
		}
	}

	return tokens, nil
}

func (s Separator) splitSyllables(word string) []string {
	if s.Syllable == "" {
		return []string{word}
	}
	return strings.Split(word, s.Syllable)
}

// appendUnit appends unit to tokens unless it is blank once the finer
// markers are stripped.
func (s Separator) appendUnit(tokens []string, unit string, keepBoundaries bool, finer ...string) []string {
	stripped := strings.TrimSpace(removeMarkers(unit, finer...))
	if stripped == "" {
		return tokens
	}

	if keepBoundaries {
		return append(tokens, strings.TrimSpace(unit))
	}
	return append(tokens, stripped)
}

// removeMarkers deletes markers from s, longest first so a marker that
// contains another one is removed whole.
func removeMarkers(s string, markers ...string) string {
	defined := make([]string, 0, len(markers))
	for _, m := range markers {
		if m != "" {
			defined = append(defined, m)
		}
	}
	sort.Slice(defined, func(i, j int) bool {
		return len(defined[i]) > len(defined[j])
	})

	for _, m := range defined {
		s = strings.ReplaceAll(s, m, "")
	}
	return s
}
