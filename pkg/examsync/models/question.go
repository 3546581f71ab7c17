// Package models defines the JSON schemas shared by the workbook and the
// per-section result files.
package models

// Question is one item of a question bank. Banks are externally authored
// and read-only to this tool.
type Question struct {
	// Number is the item number, unique within a (subject, section).
	Number int `json:"number"`
	// CorrectAnswer is the answer-key choice index.
	CorrectAnswer int `json:"correct_answer"`
	// Points is the score awarded for a correct answer.
	Points int `json:"points"`
	// ImagePaths lists image files attached to the item, if any.
	ImagePaths []string `json:"image_paths"`
}

// HasImage reports whether the item carries at least one image.
func (q Question) HasImage() bool {
	return len(q.ImagePaths) > 0
}

// QuestionBank is the questions.json file for one (subject, section).
type QuestionBank struct {
	// Subject is the subject name (e.g. 국어).
	Subject string `json:"subject"`
	// Section is the section name; equals Subject for single-section subjects.
	Section string `json:"section"`
	// Questions is the item list in question-number order.
	Questions []Question `json:"questions"`
}

// TotalPoints is the maximum achievable score, the sum of all item points.
func (b *QuestionBank) TotalPoints() int {
	total := 0
	for _, q := range b.Questions {
		total += q.Points
	}
	return total
}
