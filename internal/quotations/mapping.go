package quotations

import (
	"encoding/json"
	"fmt"
	"net/url"

	"github.com/echomedia/pricer/pkg/query"
	"github.com/echomedia/pricer/pkg/repository"
)

var projection = query.
	NewProjectionMap("public", "quotations", "q").
	Project("id", "ID").
	Project("project_title", "ProjectTitle").
	Project("modules_json", "Modules").
	Project("total_price", "TotalPrice").
	Project("quotation_text", "QuotationText").
	Project("is_student", "IsStudent").
	Project("status", "Status").
	Project("created_at", "CreatedAt")

var defaultSort = query.SortField{
	Field:      "CreatedAt",
	Descending: true,
}

// Filters contains optional filtering criteria for quotation queries.
// Nil fields are ignored. Status uses exact matching.
type Filters struct {
	Status *Status `json:"status,omitempty"`
}

// Apply adds filter conditions to a query builder.
func (f Filters) Apply(b *query.Builder) *query.Builder {
	return b.WhereEquals("Status", f.Status)
}

// FiltersFromQuery extracts filter values from URL query parameters.
func FiltersFromQuery(values url.Values) Filters {
	var f Filters

	if s := values.Get("status"); s != "" {
		if status, err := ParseStatus(s); err == nil {
			f.Status = &status
		}
	}

	return f
}

func scanQuotation(s repository.Scanner) (Quotation, error) {
	var (
		q       Quotation
		modules []byte
	)

	err := s.Scan(
		&q.ID,
		&q.ProjectTitle,
		&modules,
		&q.TotalPrice,
		&q.QuotationText,
		&q.IsStudent,
		&q.Status,
		&q.CreatedAt,
	)
	if err != nil {
		return q, err
	}

	if len(modules) > 0 {
		if err := json.Unmarshal(modules, &q.Modules); err != nil {
			return q, fmt.Errorf("decode modules: %w", err)
		}
	}

	return q, nil
}

func documentKey(q *Quotation) string {
	return fmt.Sprintf("quotations/%s.txt", q.ID)
}
