package examsync

import (
	"github.com/suneval/examsync/pkg/examsync/mapping"
	"github.com/suneval/examsync/pkg/examsync/scoring"
)

// ModelScoreSummary is one model's combined score within a subject. MaxScore
// is per model: elective-picking strategies may select different sections,
// and so different maximums, for each model.
type ModelScoreSummary struct {
	Model    string
	Score    int
	MaxScore int
}

// SubjectSummary is the combined standing of every model for one subject.
type SubjectSummary struct {
	Subject string
	Sheets  []string
	Scores  []ModelScoreSummary
}

// Summarize groups mapped workbook sheets by subject and combines each
// model's per-sheet scores with the given strategy. When subject is
// non-empty only that subject is summarized. Model order follows the
// header order of the subject's first sheet; sheets absent from the
// workbook are skipped.
func (s *SyncManager) Summarize(subject string, strat scoring.Strategy) ([]SubjectSummary, error) {
	type group struct {
		subject string
		sheets  []string
	}
	var groups []group
	index := make(map[string]int)
	for _, sheetName := range s.paths.Sheets() {
		subj, _ := mapping.SubjectSection(sheetName)
		if subject != "" && subj != subject {
			continue
		}
		ok, err := s.handler.HasSheet(sheetName)
		if err != nil {
			return nil, err
		}
		if !ok {
			continue
		}
		i, seen := index[subj]
		if !seen {
			index[subj] = len(groups)
			groups = append(groups, group{subject: subj})
			i = index[subj]
		}
		groups[i].sheets = append(groups[i].sheets, sheetName)
	}

	var out []SubjectSummary
	for _, g := range groups {
		cols, err := s.handler.ModelColumns(g.sheets[0])
		if err != nil {
			s.log.Warn().Str("sheet", g.sheets[0]).Err(err).Msg("subject skipped")
			continue
		}

		summary := SubjectSummary{Subject: g.subject, Sheets: g.sheets}
		for _, c := range cols {
			parts := make([]scoring.PartScore, 0, len(g.sheets))
			for _, sheetName := range g.sheets {
				_, section := mapping.SubjectSection(sheetName)
				score, _, err := s.handler.ModelScore(sheetName, c.Name)
				if err != nil {
					continue
				}
				maxScore, err := s.handler.MaxScore(sheetName)
				if err != nil {
					continue
				}
				parts = append(parts, scoring.PartScore{
					Sheet:    sheetName,
					Section:  section,
					Score:    score,
					MaxScore: maxScore,
				})
			}
			combined, maxScore := strat.Combine(parts)
			summary.Scores = append(summary.Scores, ModelScoreSummary{
				Model:    c.Name,
				Score:    combined,
				MaxScore: maxScore,
			})
		}
		out = append(out, summary)
	}
	return out, nil
}
