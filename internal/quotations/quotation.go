// Package quotations implements the quotation domain for the pricing service.
// It provides types, data access, archive storage, and export for generated
// project quotations.
package quotations

import (
	"time"

	"github.com/google/uuid"
)

// Module is a priced module entry stored within a quotation.
type Module struct {
	Name        string  `json:"name"`
	Level       string  `json:"level"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
}

// Quotation represents a saved project quotation.
// It mirrors the quotations table schema; modules are stored as JSONB.
type Quotation struct {
	ID            uuid.UUID `json:"id"`
	ProjectTitle  string    `json:"project_title"`
	Modules       []Module  `json:"modules"`
	TotalPrice    float64   `json:"total_price"`
	QuotationText string    `json:"quotation_text"`
	IsStudent     bool      `json:"is_student"`
	Status        Status    `json:"status"`
	CreatedAt     time.Time `json:"created_at"`
}

// CreateCommand carries the data needed to save a new quotation.
// Saved quotations always start in draft status. The request keys follow the
// client contract (camelCase, total rather than totalPrice) and differ from
// the stored entity shape.
type CreateCommand struct {
	ProjectTitle  string   `json:"projectTitle"`
	Modules       []Module `json:"modules"`
	TotalPrice    float64  `json:"total"`
	QuotationText string   `json:"quotationText"`
	IsStudent     bool     `json:"isStudent"`
}

// Validate checks command fields against domain constraints.
func (c CreateCommand) Validate() error {
	if c.ProjectTitle == "" {
		return ErrEmptyTitle
	}
	return nil
}

// UpdateStatusCommand carries the target status for a status transition.
type UpdateStatusCommand struct {
	Status Status `json:"status"`
}
