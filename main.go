package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"

	"github.com/badele/wordstats/internal/exporter"
	"github.com/badele/wordstats/internal/importer/corpus"
	"github.com/badele/wordstats/internal/stats"
	"github.com/badele/wordstats/internal/types"
)

const description = `Extract statistics relevant for word segmentation corpora.

Reads a corpus with one utterance per line, phones, syllables and words
delimited by the separators below, and prints the number of utterances,
word tokens, word types and hapax, the moving-average type-token ratio,
the average word length and the normalized segmentation entropy (nse).
If no input file is specified, reads from stdin.`

type CLI struct {
	Input  string `arg:"" optional:"" default:"-" help:"Input corpus file, - for stdin."`
	Output string `short:"o" default:"-" help:"Output file, - for stdout."`

	Phone    string `short:"p" default:" " env:"WORDSTATS_PHONE" help:"Phone separator, empty to disable (default is a space)."`
	Syllable string `short:"s" default:";esyll" env:"WORDSTATS_SYLLABLE" help:"Syllable separator, empty to disable."`
	Word     string `short:"w" default:";eword" env:"WORDSTATS_WORD" help:"Word separator."`

	Encoding string `default:"utf8" enum:"utf8,latin1,iso-8859-1,cp1252,utf16" env:"WORDSTATS_ENCODING" help:"Input encoding (${enum})."`
	NFC      bool   `name:"nfc" help:"Apply Unicode NFC normalization to the input."`

	JSON   bool   `short:"j" help:"Display statistics in JSON format."`
	Top    int    `short:"t" placeholder:"N" help:"Display the N most frequent tokens, 0 to disable, -1 for all."`
	Level  string `short:"l" default:"word" enum:"phone,syllable,word" help:"Level of the most frequent tokens (${enum})."`
	Export string `short:"e" placeholder:"BASE" help:"Export the tokenized corpus to BASE.<level> files."`

	Verbose bool `short:"v" xor:"verbosity" help:"Display progress messages."`
	Quiet   bool `short:"q" xor:"verbosity" help:"Only display errors."`
}

func main() {
	var cli CLI
	kong.Parse(&cli,
		kong.Name("wordstats"),
		kong.Description(description),
		kong.UsageOnError(),
	)

	if err := run(&cli, os.Stdin, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newLogger(cli *CLI) *slog.Logger {
	level := slog.LevelWarn
	switch {
	case cli.Verbose:
		level = slog.LevelInfo
	case cli.Quiet:
		level = slog.LevelError
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

func (cli *CLI) separator() (types.Separator, error) {
	sep := types.Separator{
		Phone:    cli.Phone,
		Syllable: cli.Syllable,
		Word:     cli.Word,
	}
	if err := sep.Validate(); err != nil {
		return sep, fmt.Errorf("invalid separator: %w", err)
	}
	return sep, nil
}

func run(cli *CLI, stdin io.Reader, stdout io.Writer) error {
	logger := newLogger(cli)

	sep, err := cli.separator()
	if err != nil {
		return err
	}

	input := stdin
	if cli.Input != "-" && cli.Input != "" {
		f, err := os.Open(cli.Input)
		if err != nil {
			return fmt.Errorf("reading file: %w", err)
		}
		defer f.Close()
		input = f
	}

	output := stdout
	if cli.Output != "-" && cli.Output != "" {
		f, err := os.Create(cli.Output)
		if err != nil {
			return fmt.Errorf("creating output: %w", err)
		}
		defer f.Close()
		output = f
	}

	lines, err := corpus.Read(input, corpus.WithEncoding(cli.Encoding), corpus.WithNormalization(cli.NFC))
	if err != nil {
		return err
	}

	s, err := stats.New(lines, sep, stats.WithLogger(logger))
	if err != nil {
		return err
	}

	if cli.Export != "" {
		paths, err := exporter.ExportTokenized(s, cli.Export)
		if err != nil {
			return fmt.Errorf("exporting tokenized corpus: %w", err)
		}
		logger.Info("tokenized corpus exported", "files", paths)
	}

	desc := s.Describe()

	var nse *float64
	if v, err := s.NormalizedSegmentationEntropy(); err == nil {
		nse = &v
	} else if errors.Is(err, stats.ErrNoPhoneLevel) || errors.Is(err, stats.ErrTooFewPhones) {
		logger.Warn("nse ignored", "error", err)
	} else {
		return err
	}

	var top []stats.TokenCount
	var level types.Level
	if cli.Top != 0 {
		level, err = types.ParseLevel(cli.Level)
		if err != nil {
			return err
		}
		top, err = s.TopFrequencyTokens(level, cli.Top)
		if err != nil {
			return err
		}
	}

	if cli.JSON {
		out := exporter.SummaryJSONOutput{
			Separator:   sep,
			Description: desc,
			NSE:         nse,
		}
		if top != nil {
			out.Top = &exporter.TopTokens{Level: level, Tokens: top}
		}
		return exporter.WriteJSON(output, out)
	}

	if err := exporter.WriteReport(output, desc, nse); err != nil {
		return err
	}

	if top != nil {
		tokens, _ := s.Tokens(level)
		total := 0
		for _, utt := range tokens {
			total += len(utt)
		}
		return exporter.WriteTopTokens(output, level, top, total)
	}

	return nil
}
