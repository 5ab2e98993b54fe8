package types

import (
	"errors"
	"reflect"
	"testing"
)

func TestSeparatorTokenize(t *testing.T) {
	sep := DefaultSeparator()
	utt := "hh ax ;esyll l ow ;esyll ;eword w er l d ;esyll ;eword"

	tests := []struct {
		name           string
		level          Level
		keepBoundaries bool
		expected       []string
	}{
		{
			name:     "Words",
			level:    LevelWord,
			expected: []string{"hhaxlow", "werld"},
		},
		{
			name:           "Words with boundaries",
			level:          LevelWord,
			keepBoundaries: true,
			expected:       []string{"hh ax ;esyll l ow ;esyll", "w er l d ;esyll"},
		},
		{
			name:     "Syllables",
			level:    LevelSyllable,
			expected: []string{"hhax", "low", "werld"},
		},
		{
			name:           "Syllables with boundaries",
			level:          LevelSyllable,
			keepBoundaries: true,
			expected:       []string{"hh ax", "l ow", "w er l d"},
		},
		{
			name:     "Phones",
			level:    LevelPhone,
			expected: []string{"hh", "ax", "l", "ow", "w", "er", "l", "d"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := sep.Tokenize(utt, tt.level, tt.keepBoundaries)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("expected %q, got %q", tt.expected, got)
			}
		})
	}
}

func TestSeparatorTokenizeCustomMarkers(t *testing.T) {
	sep := Separator{Phone: ";", Word: " "}

	words, err := sep.Tokenize("a;b;a", LevelWord, false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(words, []string{"aba"}) {
		t.Errorf("expected [aba], got %q", words)
	}

	phones, err := sep.Tokenize("a;b;a", LevelPhone, false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(phones, []string{"a", "b", "a"}) {
		t.Errorf("expected [a b a], got %q", phones)
	}
}

func TestSeparatorTokenizeEmptyUtterance(t *testing.T) {
	got, err := DefaultSeparator().Tokenize("", LevelWord, false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got == nil || len(got) != 0 {
		t.Errorf("expected empty non-nil slice, got %#v", got)
	}
}

func TestSeparatorTokenizeUndefinedLevel(t *testing.T) {
	sep := Separator{Word: " "}
	_, err := sep.Tokenize("a b", LevelPhone, false)
	if !errors.Is(err, ErrLevelNotDefined) {
		t.Fatalf("expected ErrLevelNotDefined, got %v", err)
	}
}

func TestSeparatorValidate(t *testing.T) {
	tests := []struct {
		name     string
		sep      Separator
		expected error
	}{
		{"Default", DefaultSeparator(), nil},
		{"Word only", Separator{Word: " "}, nil},
		{"No word", Separator{Phone: " ", Syllable: ";esyll"}, ErrNoWordSeparator},
		{"Duplicate", Separator{Phone: " ", Word: " "}, ErrDuplicateSeparator},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.sep.Validate()
			if tt.expected == nil && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if tt.expected != nil && !errors.Is(err, tt.expected) {
				t.Fatalf("expected %v, got %v", tt.expected, err)
			}
		})
	}
}

func TestSeparatorLevels(t *testing.T) {
	if got := DefaultSeparator().Levels(); !reflect.DeepEqual(got, AllLevels) {
		t.Errorf("expected %v, got %v", AllLevels, got)
	}

	got := Separator{Phone: ";", Word: " "}.Levels()
	if !reflect.DeepEqual(got, []Level{LevelPhone, LevelWord}) {
		t.Errorf("expected [phone word], got %v", got)
	}
}

func TestLevelJSON(t *testing.T) {
	data, err := LevelSyllable.MarshalJSON()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(data) != `"syllable"` {
		t.Errorf("expected \"syllable\", got %s", data)
	}

	var l Level
	if err := l.UnmarshalJSON([]byte(`"phone"`)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if l != LevelPhone {
		t.Errorf("expected phone, got %s", l)
	}

	if err := l.UnmarshalJSON([]byte(`"morpheme"`)); err == nil {
		t.Error("expected error for unknown level")
	}
}
