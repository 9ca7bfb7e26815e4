package care

import "fmt"

const checkupPromptTemplate = `You are a botanist reviewing a photo of a house plant.

Recent care history reported by the owner:
%s

Current local weather: %s

1. Estimate the plant's health from 0 to 100 based on the leaves and overall appearance.
2. Write a one sentence status that accounts for both what you see and the care history.
3. Give one specific care tip. If the plant was watered recently and looks wet, warn against overwatering.

Respond with JSON only, exactly in this shape:
{"healthScore": 90, "status": "Looking hydrated and happy!", "tip": "Let the soil dry out for two more days."}`

// BuildCheckupPrompt assembles the perception prompt from the history digest
// and the environmental summary.
func BuildCheckupPrompt(history, environment string) string {
	if history == "" {
		history = NoHistoryPlaceholder
	}
	if environment == "" {
		environment = NoEnvironmentPlaceholder
	}
	return fmt.Sprintf(checkupPromptTemplate, history, environment)
}
