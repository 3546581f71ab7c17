package examsync

import (
	"testing"

	"github.com/suneval/examsync/pkg/examsync/models"
	"github.com/suneval/examsync/pkg/examsync/sheet"
)

func testBank() *models.QuestionBank {
	return &models.QuestionBank{
		Subject: "국어",
		Section: "공통",
		Questions: []models.Question{
			{Number: 1, CorrectAnswer: 1, Points: 2},
			{Number: 2, CorrectAnswer: 3, Points: 3},
			{Number: 3, CorrectAnswer: 2, Points: 5},
		},
	}
}

func TestNormalizeAnswer(t *testing.T) {
	tests := []struct {
		input string
		want  int
	}{
		{"3", 3},
		{" 2 ", 2},
		{"4.0", 4},
		{"", models.NoAnswer},
		{"  ", models.NoAnswer},
		{sheet.Placeholder, models.NoAnswer},
		{"garbage", models.NoAnswer},
		{"2.5", models.NoAnswer},
	}
	for _, tt := range tests {
		if got := normalizeAnswer(tt.input); got != tt.want {
			t.Errorf("normalizeAnswer(%q) = %d, want %d", tt.input, got, tt.want)
		}
	}
}

func TestSheetColumnToRecord(t *testing.T) {
	answers := map[int]string{1: "1", 2: "3", 3: "1"}
	rec := SheetColumnToRecord(testBank(), answers, "gpt-5", "국어", "공통")

	if rec.TotalPoints != 10 {
		t.Errorf("TotalPoints = %d, want 10", rec.TotalPoints)
	}
	if rec.TotalVerified != 3 {
		t.Errorf("TotalVerified = %d, want 3", rec.TotalVerified)
	}
	if rec.CorrectCount != 2 {
		t.Errorf("CorrectCount = %d, want 2", rec.CorrectCount)
	}
	if got := rec.ModelScores["gpt-5"]; got != 5 {
		t.Errorf("score = %d, want 5 (2+3)", got)
	}

	wantCorrect := []bool{true, true, false}
	for i, row := range rec.Results {
		if row.IsCorrect != wantCorrect[i] {
			t.Errorf("results[%d].IsCorrect = %v, want %v", i, row.IsCorrect, wantCorrect[i])
		}
		if row.ModelName != "gpt-5" {
			t.Errorf("results[%d].ModelName = %q, want gpt-5", i, row.ModelName)
		}
	}
}

func TestSheetColumnToRecordMissingAnswers(t *testing.T) {
	// question 2 blank, question 3 placeholder, nothing for question 1
	answers := map[int]string{2: "", 3: sheet.Placeholder}
	rec := SheetColumnToRecord(testBank(), answers, "gpt-5", "국어", "공통")

	for i, row := range rec.Results {
		if row.ExtractedAnswer != models.NoAnswer {
			t.Errorf("results[%d].ExtractedAnswer = %d, want sentinel", i, row.ExtractedAnswer)
		}
		if row.IsCorrect {
			t.Errorf("results[%d].IsCorrect = true, want false", i)
		}
	}
	if rec.ModelScores["gpt-5"] != 0 {
		t.Errorf("score = %d, want 0", rec.ModelScores["gpt-5"])
	}
}

func TestRecordToSheetColumn(t *testing.T) {
	rec := SheetColumnToRecord(testBank(), map[int]string{1: "1", 3: "4"}, "gpt-5", "국어", "공통")

	name, answers, score, err := RecordToSheetColumn(rec)
	if err != nil {
		t.Fatalf("RecordToSheetColumn failed: %v", err)
	}
	if name != "gpt-5" {
		t.Errorf("name = %q, want gpt-5", name)
	}
	if score != 2 {
		t.Errorf("score = %d, want 2", score)
	}
	// question 2's sentinel maps back to an absent entry (blank cell)
	if _, ok := answers[2]; ok {
		t.Error("sentinel answer should not appear in the answer map")
	}
	if answers[1] != 1 || answers[3] != 4 {
		t.Errorf("answers = %v, want 1:1 3:4", answers)
	}
}

func TestRecordToSheetColumnEmptyScores(t *testing.T) {
	if _, _, _, err := RecordToSheetColumn(&models.Record{}); err == nil {
		t.Fatal("expected error for record without model_scores")
	}
}

func TestRoundTrip(t *testing.T) {
	original := map[int]string{1: "1", 2: "", 3: "4"}
	rec := SheetColumnToRecord(testBank(), original, "gpt-5", "국어", "공통")

	_, answers, _, err := RecordToSheetColumn(rec)
	if err != nil {
		t.Fatalf("RecordToSheetColumn failed: %v", err)
	}

	// answered questions survive, blanks come back as absent entries
	if answers[1] != 1 || answers[3] != 4 {
		t.Errorf("answers = %v, want 1:1 3:4", answers)
	}
	if _, ok := answers[2]; ok {
		t.Error("blank answer should round-trip to an absent entry")
	}
}
