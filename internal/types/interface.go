package types

// Tokenizer splits utterances into tokens at a given level.
type Tokenizer interface {
	Levels() []Level
	Tokenize(utterance string, level Level, keepBoundaries bool) ([]string, error)
}
