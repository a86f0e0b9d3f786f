// Package catalog implements the price catalog domain for the pricing
// service. It provides types, data access, and business logic for managing
// pricing entries and resolving module prices during analysis.
package catalog

import (
	"time"

	"github.com/google/uuid"
)

// Entry represents a priced module at a specific complexity level.
// It mirrors the pricing_entries table schema.
type Entry struct {
	ID              uuid.UUID `json:"id"`
	ModuleName      string    `json:"module_name"`
	ComplexityLevel Level     `json:"complexity_level"`
	BasePrice       float64   `json:"base_price"`
	StudentPrice    float64   `json:"student_price"`
	Description     *string   `json:"description"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// CreateCommand carries the data needed to create a new pricing entry.
type CreateCommand struct {
	ModuleName      string  `json:"module_name"`
	ComplexityLevel Level   `json:"complexity_level"`
	BasePrice       float64 `json:"base_price"`
	StudentPrice    float64 `json:"student_price"`
	Description     *string `json:"description"`
}

// Validate checks command fields against domain constraints.
func (c CreateCommand) Validate() error {
	return validateEntry(c.ModuleName, c.ComplexityLevel, c.BasePrice, c.StudentPrice)
}

// UpdateCommand carries the data needed to update an existing pricing entry.
type UpdateCommand struct {
	ModuleName      string  `json:"module_name"`
	ComplexityLevel Level   `json:"complexity_level"`
	BasePrice       float64 `json:"base_price"`
	StudentPrice    float64 `json:"student_price"`
	Description     *string `json:"description"`
}

// Validate checks command fields against domain constraints.
func (c UpdateCommand) Validate() error {
	return validateEntry(c.ModuleName, c.ComplexityLevel, c.BasePrice, c.StudentPrice)
}

func validateEntry(name string, level Level, basePrice, studentPrice float64) error {
	if name == "" {
		return ErrEmptyModuleName
	}
	if _, err := ParseLevel(string(level)); err != nil {
		return err
	}
	if basePrice < 0 || studentPrice < 0 {
		return ErrNegativePrice
	}
	return nil
}
