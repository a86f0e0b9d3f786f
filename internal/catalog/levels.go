package catalog

import (
	"encoding/json"
	"slices"
)

// Level represents a module complexity level.
type Level string

// Valid complexity levels.
const (
	LevelSimple  Level = "simple"
	LevelMedium  Level = "medium"
	LevelComplex Level = "complex"
)

var levels = []Level{
	LevelSimple,
	LevelMedium,
	LevelComplex,
}

// Levels returns the list of valid complexity levels.
func Levels() []Level {
	return levels
}

// UnmarshalJSON validates that the decoded string is a known level value.
func (l *Level) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	v := Level(raw)
	if !slices.Contains(levels, v) {
		return ErrInvalidLevel
	}
	*l = v
	return nil
}

// ParseLevel validates a string as a known complexity level.
// Returns ErrInvalidLevel if the value is not recognized.
func ParseLevel(s string) (Level, error) {
	v := Level(s)
	if !slices.Contains(levels, v) {
		return "", ErrInvalidLevel
	}
	return v, nil
}
