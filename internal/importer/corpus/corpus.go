// Package corpus reads boundary-annotated text into utterances.
package corpus

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

const maxLineSize = 1024 * 1024

// Corpus is an ordered list of trimmed, non-empty utterances.
type Corpus []string

type options struct {
	encoding  string
	normalize bool
}

type Option func(*options)

// WithEncoding sets the input encoding: "utf8", "latin1", "iso-8859-1",
// "cp1252" or "utf16".
func WithEncoding(name string) Option {
	return func(o *options) {
		o.encoding = name
	}
}

// WithNormalization applies Unicode NFC to every utterance.
func WithNormalization(enabled bool) Option {
	return func(o *options) {
		o.normalize = enabled
	}
}

// Read loads one utterance per line from r. Lines are trimmed and blank
// lines are dropped.
func Read(r io.Reader, opts ...Option) (Corpus, error) {
	o := options{encoding: "utf8"}
	for _, opt := range opts {
		opt(&o)
	}

	decoder, err := decoderFor(o.encoding)
	if err != nil {
		return nil, err
	}

	if decoder == nil {
		decoder = encoding.Nop.NewDecoder()
	}

	// A leading UTF-8 BOM is dropped whatever the declared encoding.
	t := unicode.BOMOverride(decoder)
	if o.normalize {
		t = transform.Chain(t, norm.NFC)
	}

	scanner := bufio.NewScanner(transform.NewReader(r, t))
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	corpus := make(Corpus, 0)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		corpus = append(corpus, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading corpus: %w", err)
	}

	return corpus, nil
}

// FromLines builds a corpus from in-memory lines with the same filtering
// as Read.
func FromLines(lines []string) Corpus {
	corpus := make(Corpus, 0, len(lines))
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line != "" {
			corpus = append(corpus, line)
		}
	}
	return corpus
}

func decoderFor(name string) (transform.Transformer, error) {
	switch strings.ToLower(name) {
	case "", "utf8", "utf-8":
		return nil, nil
	case "latin1", "iso-8859-1":
		return charmap.ISO8859_1.NewDecoder(), nil
	case "cp1252", "windows-1252":
		return charmap.Windows1252.NewDecoder(), nil
	case "utf16", "utf-16":
		return unicode.UTF16(unicode.LittleEndian, unicode.UseBOM).NewDecoder(), nil
	default:
		return nil, fmt.Errorf("unsupported encoding: %s", name)
	}
}
