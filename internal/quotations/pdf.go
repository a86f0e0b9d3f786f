package quotations

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/pdfcpu/pdfcpu/pkg/api"
)

// renderPDF builds a single-page PDF from the quotation using pdfcpu's
// create-from-JSON form. The archived monospace quotation text is rendered
// verbatim in a fixed-width font so column alignment survives export.
func renderPDF(q *Quotation) ([]byte, error) {
	form := map[string]any{
		"pages": map[string]any{
			"1": map[string]any{
				"content": map[string]any{
					"text": []map[string]any{
						{
							"value":  fmt.Sprintf("Quotation %s", q.ID),
							"anchor": "tl",
							"dx":     30,
							"dy":     20,
							"font": map[string]any{
								"name": "Helvetica-Bold",
								"size": 12,
							},
						},
						{
							"value":  q.QuotationText,
							"anchor": "tl",
							"dx":     30,
							"dy":     45,
							"font": map[string]any{
								"name": "Courier",
								"size": 8,
							},
						},
					},
				},
			},
		},
	}

	spec, err := json.Marshal(form)
	if err != nil {
		return nil, fmt.Errorf("encode pdf form: %w", err)
	}

	var buf bytes.Buffer
	if err := api.Create(nil, bytes.NewReader(spec), &buf, nil); err != nil {
		return nil, fmt.Errorf("create pdf: %w", err)
	}

	return buf.Bytes(), nil
}
