package models

// ItemResult is a result row stripped of per-model bookkeeping, used in
// aggregate exports.
type ItemResult struct {
	// QuestionNumber is the item number.
	QuestionNumber int `json:"question_number"`
	// ExtractedAnswer is the model's choice index, or NoAnswer.
	ExtractedAnswer int `json:"extracted_answer"`
	// CorrectAnswer is the answer-key choice index.
	CorrectAnswer int `json:"correct_answer"`
	// IsCorrect reports whether the answer scored.
	IsCorrect bool `json:"is_correct"`
	// Points is the item's score value.
	Points int `json:"points"`
}

// SheetExport is one self-contained (sheet, model) element of the bulk
// aggregate export array.
type SheetExport struct {
	// SheetName is the workbook sheet the element came from.
	SheetName string `json:"sheet_name"`
	// Subject is the subject name.
	Subject string `json:"subject"`
	// Section is the section name.
	Section string `json:"section"`
	// ModelName is the record-form model name.
	ModelName string `json:"model_name"`
	// Score is the model's total score for the sheet.
	Score int `json:"score"`
	// TotalPoints is the maximum achievable score.
	TotalPoints int `json:"total_points"`
	// CorrectCount is the number of correct answers.
	CorrectCount int `json:"correct_count"`
	// TotalQuestions is the number of items on the sheet.
	TotalQuestions int `json:"total_questions"`
	// Results holds the cleaned per-question rows.
	Results []ItemResult `json:"results"`
}
