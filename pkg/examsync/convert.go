package examsync

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/suneval/examsync/pkg/examsync/models"
	"github.com/suneval/examsync/pkg/examsync/sheet"
)

// timestampLayout is the record timestamp format.
const timestampLayout = "2006-01-02 15:04:05"

// normalizeAnswer converts a raw answer cell to record form. Blank cells,
// the placeholder marker, and anything that does not parse as an integer
// all degrade to the no-answer sentinel; a bad cell never fails a run.
func normalizeAnswer(raw string) int {
	s := strings.TrimSpace(raw)
	if s == "" || s == sheet.Placeholder {
		return models.NoAnswer
	}
	if n, err := strconv.Atoi(s); err == nil {
		return n
	}
	if v, err := strconv.ParseFloat(s, 64); err == nil && v == float64(int(v)) {
		return int(v)
	}
	return models.NoAnswer
}

// SheetColumnToRecord converts one model's answer column into a result
// record. The record carries exactly one entry in model_scores; subject and
// section fall back to the given values when the bank omits its own.
func SheetColumnToRecord(bank *models.QuestionBank, answers map[int]string, recordName, subject, section string) *models.Record {
	if bank.Subject != "" {
		subject = bank.Subject
	}
	if bank.Section != "" {
		section = bank.Section
	}

	results := make([]models.QuestionResult, 0, len(bank.Questions))
	totalScore := 0
	correctCount := 0

	for _, q := range bank.Questions {
		extracted := normalizeAnswer(answers[q.Number])
		isCorrect := extracted == q.CorrectAnswer
		if isCorrect {
			totalScore += q.Points
			correctCount++
		}
		results = append(results, models.QuestionResult{
			QuestionNumber:  q.Number,
			ModelName:       recordName,
			ExtractedAnswer: extracted,
			CorrectAnswer:   q.CorrectAnswer,
			IsCorrect:       isCorrect,
			Points:          q.Points,
		})
	}

	return &models.Record{
		Subject:       subject,
		Section:       section,
		Timestamp:     time.Now().Format(timestampLayout),
		TotalPoints:   bank.TotalPoints(),
		TotalVerified: len(results),
		CorrectCount:  correctCount,
		ModelScores:   map[string]int{recordName: totalScore},
		Results:       results,
	}
}

// RecordToSheetColumn extracts one model's answers from a record for
// writing back to the workbook. Import targets exactly one model per call:
// when a merged record embeds several, the lexicographically first is
// taken, and passing such a record is a caller error to avoid. Sentinel
// answers are left out of the map, mapping back to blank cells.
func RecordToSheetColumn(rec *models.Record) (recordName string, answers map[int]int, score int, err error) {
	if len(rec.ModelScores) == 0 {
		return "", nil, 0, fmt.Errorf("record has no model_scores")
	}

	names := make([]string, 0, len(rec.ModelScores))
	for name := range rec.ModelScores {
		names = append(names, name)
	}
	sort.Strings(names)
	recordName = names[0]
	score = rec.ModelScores[recordName]

	answers = make(map[int]int)
	for _, row := range rec.Results {
		if row.ModelName != recordName || row.ExtractedAnswer == models.NoAnswer {
			continue
		}
		answers[row.QuestionNumber] = row.ExtractedAnswer
	}
	return recordName, answers, score, nil
}
