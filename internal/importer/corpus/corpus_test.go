package corpus

import (
	"reflect"
	"strings"
	"testing"
)

func TestRead(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected Corpus
	}{
		{
			name:     "Trims and drops blank lines",
			input:    "  a b \n\n\t\nc\n",
			expected: Corpus{"a b", "c"},
		},
		{
			name:     "Empty input",
			input:    "",
			expected: Corpus{},
		},
		{
			name:     "Strips BOM",
			input:    "\xEF\xBB\xBFa ;eword\n",
			expected: Corpus{"a ;eword"},
		},
		{
			name:     "CRLF line endings",
			input:    "a\r\nb\r\n",
			expected: Corpus{"a", "b"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Read(strings.NewReader(tt.input))
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("expected %q, got %q", tt.expected, got)
			}
		})
	}
}

func TestReadLatin1(t *testing.T) {
	// "café" in ISO-8859-1
	input := "caf\xe9\n"
	got, err := Read(strings.NewReader(input), WithEncoding("latin1"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(got, Corpus{"caf\u00e9"}) {
		t.Errorf("expected [café], got %q", got)
	}
}

func TestReadNormalization(t *testing.T) {
	// e + combining acute accent
	input := "cafe\u0301\n"

	raw, err := Read(strings.NewReader(input))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if raw[0] != "cafe\u0301" {
		t.Errorf("expected decomposed form to be kept, got %q", raw[0])
	}

	nfc, err := Read(strings.NewReader(input), WithNormalization(true))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if nfc[0] != "caf\u00e9" {
		t.Errorf("expected composed form, got %q", nfc[0])
	}
}

func TestReadUnsupportedEncoding(t *testing.T) {
	_, err := Read(strings.NewReader("a"), WithEncoding("ebcdic"))
	if err == nil || !strings.Contains(err.Error(), "unsupported encoding") {
		t.Fatalf("expected unsupported encoding error, got %v", err)
	}
}

func TestFromLines(t *testing.T) {
	got := FromLines([]string{" a b", "", "   ", "a "})
	if !reflect.DeepEqual(got, Corpus{"a b", "a"}) {
		t.Errorf("expected [a b, a], got %q", got)
	}
}
