package models

// NoAnswer is the canonical "no answer given" sentinel in record form.
// The workbook renders the same state as a placeholder string instead.
const NoAnswer = -1

// QuestionResult is one (question, model) row of a result record.
type QuestionResult struct {
	// QuestionNumber is the item number the row scores.
	QuestionNumber int `json:"question_number"`
	// ModelName is the record-form model name owning the row.
	ModelName string `json:"model_name"`
	// ExtractedAnswer is the model's choice index, or NoAnswer.
	ExtractedAnswer int `json:"extracted_answer"`
	// CorrectAnswer is the answer-key choice index for the item.
	CorrectAnswer int `json:"correct_answer"`
	// IsCorrect reports whether ExtractedAnswer matches CorrectAnswer.
	IsCorrect bool `json:"is_correct"`
	// Points is the item's score value.
	Points int `json:"points"`
	// NeedsManualReview flags rows held back for human verification.
	NeedsManualReview bool `json:"needs_manual_review"`
	// RawResponse is the unprocessed model output, when retained.
	RawResponse string `json:"raw_response"`
}

// Record is the results_verified.json file for one (subject, section).
// It accumulates entries for multiple models over time via merge-on-export.
type Record struct {
	// Subject is the subject name.
	Subject string `json:"subject"`
	// Section is the section name.
	Section string `json:"section"`
	// Timestamp is the last write time, formatted "2006-01-02 15:04:05".
	Timestamp string `json:"timestamp"`
	// TotalPoints is the maximum achievable score for the section.
	TotalPoints int `json:"total_points"`
	// TotalVerified is the number of verified result rows per model.
	TotalVerified int `json:"total_verified"`
	// CorrectCount is the number of correct answers for the most recently
	// exported model.
	CorrectCount int `json:"correct_count"`
	// ManualReviewCount is the number of rows flagged for manual review.
	ManualReviewCount int `json:"manual_review_count"`
	// ModelScores maps record-form model name to total score.
	ModelScores map[string]int `json:"model_scores"`
	// Results holds every model's per-question rows.
	Results []QuestionResult `json:"results"`
}

// Merge folds src's single model into r: any prior rows and score for that
// model are replaced, every other model's entries stay untouched, and the
// timestamp is refreshed from src. Last-writer-wins per model, not per record.
func (r *Record) Merge(src *Record) {
	if r.ModelScores == nil {
		r.ModelScores = make(map[string]int)
	}
	for name, score := range src.ModelScores {
		r.ModelScores[name] = score

		kept := r.Results[:0]
		for _, row := range r.Results {
			if row.ModelName != name {
				kept = append(kept, row)
			}
		}
		r.Results = kept
	}
	r.Results = append(r.Results, src.Results...)
	r.Timestamp = src.Timestamp
}
