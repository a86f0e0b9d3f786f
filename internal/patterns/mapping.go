package patterns

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/echomedia/pricer/pkg/query"
	"github.com/echomedia/pricer/pkg/repository"
)

var projection = query.
	NewProjectionMap("public", "project_patterns", "pp").
	Project("id", "ID").
	Project("project_title", "ProjectTitle").
	Project("project_description", "ProjectDescription").
	Project("modules_json", "Modules").
	Project("total_price", "TotalPrice").
	Project("keywords", "Keywords").
	Project("is_student", "IsStudent").
	Project("created_at", "CreatedAt")

var defaultSort = query.SortField{
	Field:      "CreatedAt",
	Descending: true,
}

// joinKeywords flattens keywords to the comma-joined storage format.
func joinKeywords(keywords []string) string {
	return strings.Join(keywords, ",")
}

// splitKeywords restores keywords from the comma-joined storage format.
func splitKeywords(s string) []string {
	if s == "" {
		return []string{}
	}

	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func scanPattern(s repository.Scanner) (Pattern, error) {
	var (
		p        Pattern
		modules  []byte
		keywords string
	)

	err := s.Scan(
		&p.ID,
		&p.ProjectTitle,
		&p.ProjectDescription,
		&modules,
		&p.TotalPrice,
		&keywords,
		&p.IsStudent,
		&p.CreatedAt,
	)
	if err != nil {
		return p, err
	}

	if len(modules) > 0 {
		if err := json.Unmarshal(modules, &p.Modules); err != nil {
			return p, fmt.Errorf("decode modules: %w", err)
		}
	}

	p.Keywords = splitKeywords(keywords)
	return p, nil
}
