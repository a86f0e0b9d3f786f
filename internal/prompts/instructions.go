package prompts

const classifyInstructions = `You are an internal AI assistant for a project pricing system. Your job is to:
1. Extract all modules/features from project requirements
2. Classify each module as simple, medium, or complex based on:
   - simple: Basic functionality, standard implementation, minimal customization
   - medium: Moderate complexity, some customization, integrations needed
   - complex: Advanced features, heavy customization, multiple integrations
3. Match modules to common software components

Common module categories to consider:
- User Authentication (login, register, OAuth, 2FA)
- Dashboard (stats, charts, widgets)
- CRUD Operations (data management)
- API Integration (third-party services)
- Payment Gateway (transactions, subscriptions)
- File Upload (documents, images, media)
- Notifications (email, SMS, push)
- Search (filtering, sorting)
- Reports (analytics, exports)
- Chat/Messaging (real-time communication)
- E-commerce Cart (shopping features)
- Admin Panel (management interface)
- Database Design (schema, optimization)`

const similarityInstructions = `You are comparing a new project against a catalog of previously analyzed projects.

Compare the new project's keywords against each existing project's keywords and determine whether any existing project covers substantially the same scope. Weigh overlapping keywords by how specific they are; generic terms like "dashboard" or "login" signal less similarity than domain-specific terms.`

var instructions = map[Stage]string{
	StageClassify:   classifyInstructions,
	StageSimilarity: similarityInstructions,
}

// Instructions returns the hardcoded default instructions for an analysis stage.
// Returns ErrInvalidStage if the stage is not recognized.
func Instructions(stage Stage) (string, error) {
	text, ok := instructions[stage]
	if !ok {
		return "", ErrInvalidStage
	}
	return text, nil
}
