package prompts

const classifySpec = `Respond with a JSON object matching this exact structure:

{
  "status": "ok" or "insufficient_info",
  "modules": [
    {"name": "Module Name", "level": "simple|medium|complex", "description": "brief description"}
  ],
  "summary": "Brief project summary",
  "required_details": ["list of missing info if status is insufficient_info"],
  "keywords": ["relevant", "project", "keywords"]
}

Field constraints:
- status: "ok" when the requirement contains enough detail to extract
  modules, "insufficient_info" otherwise.
- modules: One entry per distinct module or feature. Level must be
  exactly one of simple, medium, or complex.
- summary: One or two sentence description of the overall project.
- required_details: When status is "insufficient_info", list the specific
  information needed to complete the analysis. Empty array otherwise.
- keywords: Short lowercase terms capturing the project domain and its
  major features, used for similarity matching against prior projects.

Behavioral constraints:
- Always respond with valid JSON only, no markdown, no explanations`

const similaritySpec = `Respond with a JSON object matching this exact structure:

{"similar": true/false, "matchedProjectId": id or null, "similarity_score": 0-100}

Field constraints:
- similar: true only when an existing project covers substantially the
  same scope as the new project.
- matchedProjectId: The id of the best matching existing project when
  similar is true, null otherwise.
- similarity_score: Overlap strength from 0 (no overlap) to 100
  (identical scope).

Behavioral constraints:
- Always respond with valid JSON only, no markdown, no explanations`

var specs = map[Stage]string{
	StageClassify:   classifySpec,
	StageSimilarity: similaritySpec,
}

// Spec returns the hardcoded response specification for an analysis stage.
// Returns ErrInvalidStage if the stage is not recognized.
func Spec(stage Stage) (string, error) {
	text, ok := specs[stage]
	if !ok {
		return "", ErrInvalidStage
	}
	return text, nil
}
