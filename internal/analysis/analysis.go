// Package analysis implements the requirement analysis pipeline for the
// pricing service. A free-text project requirement is classified into
// modules, priced against the catalog, checked for similarity against prior
// project patterns, and assembled into a quotation.
package analysis

// Analysis result statuses.
const (
	StatusOK           = "ok"
	StatusInsufficient = "insufficient_info"
	StatusError        = "error"
)

// shortInputDetail is the guidance returned when the trimmed requirement is
// too short to analyze.
const shortInputDetail = "Please provide a more detailed project description (at least 10 characters)"

// minRequirementLength is the minimum trimmed requirement length accepted
// for analysis.
const minRequirementLength = 10

// AnalyzeCommand carries the data needed to analyze a project requirement.
type AnalyzeCommand struct {
	Requirement string `json:"requirement"`
	IsStudent   bool   `json:"isStudent"`
}

// PricedModule is a classified module with its resolved price.
type PricedModule struct {
	Name        string  `json:"name"`
	Level       string  `json:"level"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
}

// Result is the full analysis response returned to clients.
type Result struct {
	Status            string         `json:"status"`
	Modules           []PricedModule `json:"modules"`
	Total             float64        `json:"total"`
	Summary           string         `json:"summary"`
	SimilarProject    bool           `json:"similar_project"`
	MatchedProjectID  *string        `json:"matched_project_id"`
	RequiredDetails   []string       `json:"required_details"`
	QuotationTemplate string         `json:"quotation_template"`
	Keywords          []string       `json:"keywords"`
	IsStudent         bool           `json:"isStudent"`
}

// classifierResponse mirrors the JSON contract of the classify stage spec.
type classifierResponse struct {
	Status          string             `json:"status"`
	Modules         []classifiedModule `json:"modules"`
	Summary         string             `json:"summary"`
	RequiredDetails []string           `json:"required_details"`
	Keywords        []string           `json:"keywords"`
}

type classifiedModule struct {
	Name        string `json:"name"`
	Level       string `json:"level"`
	Description string `json:"description"`
}

// similarityResponse mirrors the JSON contract of the similarity stage spec.
// MatchedProjectID is left loosely typed since models occasionally return
// numbers or objects where an id string is expected.
type similarityResponse struct {
	Similar          bool    `json:"similar"`
	MatchedProjectID any     `json:"matchedProjectId"`
	SimilarityScore  float64 `json:"similarity_score"`
}
