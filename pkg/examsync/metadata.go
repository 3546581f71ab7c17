package examsync

import (
	"path/filepath"

	"github.com/suneval/examsync/pkg/examsync/mapping"
	"github.com/suneval/examsync/pkg/examsync/models"
)

// DefaultMetadataPath is where the merged questions metadata lands,
// relative to the base directory, for the presentation layer to pick up.
const DefaultMetadataPath = "web/public/questions_metadata.json"

// ExportMetadata merges every mapped question bank into one metadata file
// keyed by "subject-section": per question number, whether the item has an
// image and its points. Pure projection, no write-back; missing banks are
// skipped. Returns the written path and the number of questions covered.
func (s *SyncManager) ExportMetadata(outputPath string) (string, int, error) {
	meta := make(models.QuestionsMetadata)
	total := 0

	for _, sheetName := range s.paths.Sheets() {
		bank, err := s.loadQuestions(sheetName)
		if err != nil {
			s.log.Warn().Str("sheet", sheetName).Err(err).Msg("bank skipped")
			continue
		}

		subject, section := mapping.SubjectSection(sheetName)
		if bank.Subject != "" {
			subject = bank.Subject
		}
		if bank.Section != "" {
			section = bank.Section
		}

		key := subject + "-" + section
		entries := make(map[int]models.QuestionMeta, len(bank.Questions))
		for _, q := range bank.Questions {
			entries[q.Number] = models.QuestionMeta{HasImage: q.HasImage(), Points: q.Points}
		}
		meta[key] = entries
		total += len(entries)
		s.log.Info().Str("key", key).Int("questions", len(entries)).Msg("merged")
	}

	if outputPath == "" {
		outputPath = filepath.Join(s.paths.BaseDir(), filepath.FromSlash(DefaultMetadataPath))
	}
	if err := writeJSON(outputPath, meta); err != nil {
		return "", 0, err
	}
	s.log.Info().Str("path", outputPath).Int("questions", total).Msg("metadata exported")
	return outputPath, total, nil
}
