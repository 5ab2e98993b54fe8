package types

import (
	"encoding/json"
	"fmt"
)

/////////////////////////////////////////////////////////////////////////////
// LEVEL
/////////////////////////////////////////////////////////////////////////////

type Level int

const (
	LevelPhone Level = iota
	LevelSyllable
	LevelWord
)

// AllLevels lists the levels from the finest to the coarsest.
var AllLevels = []Level{LevelPhone, LevelSyllable, LevelWord}

func (l Level) String() string {
	switch l {
	case LevelPhone:
		return "phone"
	case LevelSyllable:
		return "syllable"
	case LevelWord:
		return "word"
	default:
		return fmt.Sprintf("Level(%d)", l)
	}
}

// ParseLevel returns the level named s.
func ParseLevel(s string) (Level, error) {
	switch s {
	case "phone":
		return LevelPhone, nil
	case "syllable":
		return LevelSyllable, nil
	case "word":
		return LevelWord, nil
	default:
		return 0, fmt.Errorf("unknown level: %s", s)
	}
}

func (l Level) MarshalJSON() ([]byte, error) {
	return json.Marshal(l.String())
}

func (l *Level) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}

	level, err := ParseLevel(s)
	if err != nil {
		return err
	}
	*l = level

	return nil
}
