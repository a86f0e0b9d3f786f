package analysis

import (
	"fmt"
	"strings"
	"time"

	"github.com/echomedia/pricer/pkg/formatting"
)

const quotationDateFormat = "2 January 2006"

// DeriveTitle extracts a project title from the classifier summary: the text
// before the first period, or a fixed placeholder when the summary is empty.
func DeriveTitle(summary string) string {
	title, _, _ := strings.Cut(summary, ".")
	if title == "" {
		return "Untitled Project"
	}
	return title
}

// RenderTemplate produces the fixed-width plain text quotation document.
func RenderTemplate(
	projectTitle string,
	modules []PricedModule,
	total float64,
	summary string,
	date time.Time,
	isStudent bool,
) string {
	clientType := "REGULAR"
	if isStudent {
		clientType = "STUDENT"
	}

	moduleLines := make([]string, len(modules))
	for i, m := range modules {
		moduleLines[i] = fmt.Sprintf("%d. %-30s | %-8s | %s", i+1, m.Name, m.Level, formatting.Ringgit(m.Price))
	}

	studentLine := ""
	if isStudent {
		studentLine = "- Student discount has been applied\n"
	}

	return fmt.Sprintf(`================================================================================
                           PROJECT QUOTATION
================================================================================

Quotation Date: %s
Project Title:  %s
Client Type:    %s

--------------------------------------------------------------------------------
                              PROJECT SUMMARY
--------------------------------------------------------------------------------
%s

--------------------------------------------------------------------------------
                              MODULE BREAKDOWN
--------------------------------------------------------------------------------
#   Module Name                    | Level    | Price (MYR)
--------------------------------------------------------------------------------
%s
--------------------------------------------------------------------------------
                                              TOTAL: %s
================================================================================

NOTES:
- All prices are in Malaysian Ringgit (MYR)
%s- Prices are estimates based on standard complexity levels
- Final pricing may vary based on specific requirements
- This quotation is valid for 30 days from the date above
- Payment terms: 50%% upfront, 50%% on completion

================================================================================
                         Thank you for your business!
================================================================================`,
		date.Format(quotationDateFormat),
		projectTitle,
		clientType,
		summary,
		strings.Join(moduleLines, "\n"),
		formatting.Ringgit(total),
		studentLine,
	)
}
