package stats

import (
	"errors"

	"github.com/badele/wordstats/internal/types"
)

var (
	ErrNoWordSeparator    = types.ErrNoWordSeparator
	ErrEmptyCorpus        = errors.New("corpus has no word token")
	ErrLevelNotConfigured = errors.New("level not configured")
	ErrNoPhoneLevel       = errors.New("phone separator not defined")
	ErrTooFewPhones       = errors.New("at least two phones are required")
	ErrCorpusTooShort     = errors.New("corpus too short")
)
