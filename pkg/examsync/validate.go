package examsync

import (
	"fmt"
	"strings"
)

// Validate cross-checks sheets against their question banks and returns
// every mismatch found. It never stops at the first issue: per-sheet read
// errors become findings and the remaining sheets are still checked. An
// empty result means all clear.
func (s *SyncManager) Validate(sheetName string) []Finding {
	var sheets []string
	if sheetName != "" {
		sheets = []string{sheetName}
	} else {
		sheets = s.paths.Sheets()
	}

	var findings []Finding
	for _, name := range sheets {
		if _, ok := s.paths.SheetToPath(name); !ok {
			continue
		}

		bank, err := s.loadQuestions(name)
		if err != nil {
			findings = append(findings, Finding{Sheet: name,
				Message: fmt.Sprintf("question bank unreadable: %v", err)})
			continue
		}
		expectedCount := len(bank.Questions)
		expectedTotal := bank.TotalPoints()

		maxScore, err := s.handler.MaxScore(name)
		if err != nil {
			findings = append(findings, Finding{Sheet: name,
				Message: fmt.Sprintf("check failed: %v", err)})
			continue
		}
		if maxScore != expectedTotal {
			findings = append(findings, Finding{Sheet: name,
				Message: fmt.Sprintf("max score mismatch: sheet=%d bank=%d", maxScore, expectedTotal)})
		}

		cols, err := s.handler.ModelColumns(name)
		if err != nil {
			findings = append(findings, Finding{Sheet: name,
				Message: fmt.Sprintf("check failed: %v", err)})
			continue
		}
		for _, c := range cols {
			answers, err := s.handler.ModelAnswers(name, c.Name)
			if err != nil {
				findings = append(findings, Finding{Sheet: name,
					Message: fmt.Sprintf("%s: check failed: %v", c.Name, err)})
				continue
			}
			answered := 0
			for _, v := range answers {
				if strings.TrimSpace(v) != "" {
					answered++
				}
			}
			if answered != expectedCount {
				findings = append(findings, Finding{Sheet: name,
					Message: fmt.Sprintf("%s: answer count mismatch: sheet=%d bank=%d", c.Name, answered, expectedCount)})
			}
		}
	}
	return findings
}
