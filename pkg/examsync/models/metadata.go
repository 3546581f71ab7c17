package models

// QuestionMeta is the per-item projection kept in the merged metadata file
// consumed by the presentation layer.
type QuestionMeta struct {
	// HasImage reports whether the item has attached images.
	HasImage bool `json:"hasImage"`
	// Points is the item's score value.
	Points int `json:"points"`
}

// QuestionsMetadata maps "subject-section" keys to per-question-number
// metadata. Integer keys marshal as JSON object keys.
type QuestionsMetadata map[string]map[int]QuestionMeta
