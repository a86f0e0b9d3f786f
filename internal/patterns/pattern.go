// Package patterns implements the project pattern domain for the pricing
// service. Patterns are saved analyses of prior projects and form the corpus
// used for similarity matching against new requirements.
package patterns

import (
	"time"

	"github.com/google/uuid"
)

// Module is a priced module entry stored within a pattern.
type Module struct {
	Name        string  `json:"name"`
	Level       string  `json:"level"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
}

// Pattern represents a saved project analysis.
// It mirrors the project_patterns table schema; modules are stored as JSONB
// and keywords as a comma-joined string.
type Pattern struct {
	ID                 uuid.UUID `json:"id"`
	ProjectTitle       string    `json:"project_title"`
	ProjectDescription string    `json:"project_description"`
	Modules            []Module  `json:"modules"`
	TotalPrice         float64   `json:"total_price"`
	Keywords           []string  `json:"keywords"`
	IsStudent          bool      `json:"is_student"`
	CreatedAt          time.Time `json:"created_at"`
}

// CreateCommand carries the data needed to save a new project pattern.
// The request keys follow the client contract (camelCase, description rather
// than projectDescription) and differ from the stored entity shape.
type CreateCommand struct {
	ProjectTitle       string   `json:"projectTitle"`
	ProjectDescription string   `json:"description"`
	Modules            []Module `json:"modules"`
	TotalPrice         float64  `json:"totalPrice"`
	Keywords           []string `json:"keywords"`
	IsStudent          bool     `json:"isStudent"`
}

// Validate checks command fields against domain constraints.
func (c CreateCommand) Validate() error {
	if c.ProjectTitle == "" {
		return ErrEmptyTitle
	}
	return nil
}

// CorpusEntry is the reduced pattern representation supplied to the
// similarity checker.
type CorpusEntry struct {
	ID           uuid.UUID `json:"id"`
	ProjectTitle string    `json:"project_title"`
	Keywords     []string  `json:"keywords"`
}
