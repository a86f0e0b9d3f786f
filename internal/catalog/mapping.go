package catalog

import (
	"net/url"

	"github.com/echomedia/pricer/pkg/query"
	"github.com/echomedia/pricer/pkg/repository"
)

var projection = query.
	NewProjectionMap("public", "pricing_entries", "e").
	Project("id", "ID").
	Project("module_name", "ModuleName").
	Project("complexity_level", "ComplexityLevel").
	Project("base_price", "BasePrice").
	Project("student_price", "StudentPrice").
	Project("description", "Description").
	Project("created_at", "CreatedAt").
	Project("updated_at", "UpdatedAt")

var defaultSort = []query.SortField{
	{Field: "ModuleName"},
	{Field: "ComplexityLevel"},
}

// Filters contains optional filtering criteria for catalog queries.
// Nil fields are ignored. Level uses exact matching; ModuleName uses
// case-insensitive contains matching.
type Filters struct {
	Level      *Level  `json:"level,omitempty"`
	ModuleName *string `json:"module_name,omitempty"`
}

// Apply adds filter conditions to a query builder.
func (f Filters) Apply(b *query.Builder) *query.Builder {
	return b.
		WhereEquals("ComplexityLevel", f.Level).
		WhereContains("ModuleName", f.ModuleName)
}

// FiltersFromQuery extracts filter values from URL query parameters.
func FiltersFromQuery(values url.Values) Filters {
	var f Filters

	if l := values.Get("level"); l != "" {
		level := Level(l)
		f.Level = &level
	}

	if n := values.Get("module_name"); n != "" {
		f.ModuleName = &n
	}

	return f
}

func scanEntry(s repository.Scanner) (Entry, error) {
	var e Entry
	err := s.Scan(
		&e.ID,
		&e.ModuleName,
		&e.ComplexityLevel,
		&e.BasePrice,
		&e.StudentPrice,
		&e.Description,
		&e.CreatedAt,
		&e.UpdatedAt,
	)
	return e, err
}
