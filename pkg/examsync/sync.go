package examsync

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"

	"github.com/suneval/examsync/pkg/examsync/mapping"
	"github.com/suneval/examsync/pkg/examsync/models"
	"github.com/suneval/examsync/pkg/examsync/sheet"
)

// SyncManager orchestrates conversion between workbook columns and record
// files. The workbook is loaded lazily and held in memory; writes
// accumulate until Save.
type SyncManager struct {
	handler *sheet.Handler
	paths   *mapping.PathMapper
	names   *mapping.ModelNameMapper
	log     zerolog.Logger
}

// NewSyncManager builds a manager from options, loading the model name
// alias table up front.
func NewSyncManager(opts Options) (*SyncManager, error) {
	names, err := mapping.LoadModelNames(opts.MappingPath)
	if err != nil {
		return nil, err
	}

	paths := mapping.NewPathMapper(opts.BaseDir)
	if opts.PathTable != nil {
		paths = mapping.NewPathMapperWithTable(opts.BaseDir, opts.PathTable)
	}

	return &SyncManager{
		handler: sheet.NewHandler(opts.WorkbookPath),
		paths:   paths,
		names:   names,
		log:     opts.Logger,
	}, nil
}

// Names exposes the model name alias table.
func (s *SyncManager) Names() *mapping.ModelNameMapper {
	return s.names
}

// Save flushes accumulated workbook changes to disk.
func (s *SyncManager) Save() error {
	return s.handler.Save()
}

// Close releases the workbook without saving.
func (s *SyncManager) Close() error {
	return s.handler.Close()
}

// loadQuestions reads the question bank for a sheet.
func (s *SyncManager) loadQuestions(sheetName string) (*models.QuestionBank, error) {
	dir, ok := s.paths.SheetToPath(sheetName)
	if !ok {
		return nil, &MappingError{Sheet: sheetName}
	}
	data, err := os.ReadFile(filepath.Join(dir, mapping.QuestionsFile))
	if err != nil {
		return nil, err
	}
	var bank models.QuestionBank
	if err := json.Unmarshal(data, &bank); err != nil {
		return nil, fmt.Errorf("question bank for %q: %w", sheetName, err)
	}
	return &bank, nil
}

func readRecord(path string) (*models.Record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var rec models.Record
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, fmt.Errorf("record %s: %w", path, err)
	}
	return &rec, nil
}

// writeJSON writes v as indented UTF-8 JSON, creating parent directories.
func writeJSON(path string, v interface{}) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	enc := json.NewEncoder(f)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// ExportModel exports one model column of one sheet to its record file,
// merging into an existing record when present. A missing record file is
// not an error; it means create new. Returns the written path.
func (s *SyncManager) ExportModel(sheetName, model, outputPath string) (string, error) {
	answers, err := s.handler.ModelAnswers(sheetName, model)
	if err != nil {
		return "", err
	}
	bank, err := s.loadQuestions(sheetName)
	if err != nil {
		return "", err
	}

	subject, section := mapping.SubjectSection(sheetName)
	recordName := s.names.ToRecordName(model)
	rec := SheetColumnToRecord(bank, answers, recordName, subject, section)

	if outputPath == "" {
		dir, ok := s.paths.SheetToPath(sheetName)
		if !ok {
			return "", &MappingError{Sheet: sheetName}
		}
		outputPath = filepath.Join(dir, mapping.RecordFile)
	}

	if existing, err := readRecord(outputPath); err == nil {
		existing.Merge(rec)
		rec = existing
	} else if !os.IsNotExist(err) {
		return "", err
	}

	if err := writeJSON(outputPath, rec); err != nil {
		return "", err
	}
	s.log.Info().Str("sheet", sheetName).Str("model", model).
		Str("path", outputPath).Msg("exported")
	return outputPath, nil
}

// ExportSheetModels exports every model column of one sheet. One model's
// failure does not abort the others; failures are returned alongside the
// success count.
func (s *SyncManager) ExportSheetModels(sheetName string) (int, []error) {
	cols, err := s.handler.ModelColumns(sheetName)
	if err != nil {
		return 0, []error{err}
	}

	exported := 0
	var failures []error
	for _, c := range cols {
		if _, err := s.ExportModel(sheetName, c.Name, ""); err != nil {
			s.log.Warn().Str("sheet", sheetName).Str("model", c.Name).
				Err(err).Msg("export failed")
			failures = append(failures, fmt.Errorf("%s/%s: %w", sheetName, c.Name, err))
			continue
		}
		exported++
	}
	return exported, failures
}

// ExportAll writes one aggregate JSON array of cleaned per-(sheet, model)
// entries across every mapped sheet. Sheets missing from the workbook or
// without a question bank are skipped; individual failures are collected,
// not fatal. When onlyModel is set, other models are ignored.
func (s *SyncManager) ExportAll(outputPath, onlyModel string) (string, int, []error) {
	var all []models.SheetExport
	var failures []error

	for _, sheetName := range s.paths.Sheets() {
		ok, err := s.handler.HasSheet(sheetName)
		if err != nil {
			return "", 0, []error{err}
		}
		if !ok {
			continue
		}
		dir, ok := s.paths.SheetToPath(sheetName)
		if !ok {
			continue
		}
		if _, err := os.Stat(filepath.Join(dir, mapping.QuestionsFile)); err != nil {
			continue
		}

		var modelNames []string
		if onlyModel != "" {
			modelNames = []string{onlyModel}
		} else {
			cols, err := s.handler.ModelColumns(sheetName)
			if err != nil {
				s.log.Warn().Str("sheet", sheetName).Err(err).Msg("sheet skipped")
				failures = append(failures, fmt.Errorf("%s: %w", sheetName, err))
				continue
			}
			for _, c := range cols {
				modelNames = append(modelNames, c.Name)
			}
		}

		for _, model := range modelNames {
			entry, err := s.exportEntry(sheetName, model)
			if err != nil {
				s.log.Warn().Str("sheet", sheetName).Str("model", model).
					Err(err).Msg("export failed")
				failures = append(failures, fmt.Errorf("%s/%s: %w", sheetName, model, err))
				continue
			}
			all = append(all, entry)
		}
	}

	if outputPath == "" {
		outputPath = "all_results.json"
	}
	if all == nil {
		all = []models.SheetExport{}
	}
	if err := writeJSON(outputPath, all); err != nil {
		return "", 0, append(failures, err)
	}
	s.log.Info().Str("path", outputPath).Int("entries", len(all)).Msg("aggregate exported")
	return outputPath, len(all), failures
}

// exportEntry builds one cleaned aggregate element.
func (s *SyncManager) exportEntry(sheetName, model string) (models.SheetExport, error) {
	answers, err := s.handler.ModelAnswers(sheetName, model)
	if err != nil {
		return models.SheetExport{}, err
	}
	bank, err := s.loadQuestions(sheetName)
	if err != nil {
		return models.SheetExport{}, err
	}

	subject, section := mapping.SubjectSection(sheetName)
	recordName := s.names.ToRecordName(model)
	rec := SheetColumnToRecord(bank, answers, recordName, subject, section)

	results := make([]models.ItemResult, len(rec.Results))
	for i, r := range rec.Results {
		results[i] = models.ItemResult{
			QuestionNumber:  r.QuestionNumber,
			ExtractedAnswer: r.ExtractedAnswer,
			CorrectAnswer:   r.CorrectAnswer,
			IsCorrect:       r.IsCorrect,
			Points:          r.Points,
		}
	}
	return models.SheetExport{
		SheetName:      sheetName,
		Subject:        rec.Subject,
		Section:        rec.Section,
		ModelName:      recordName,
		Score:          rec.ModelScores[recordName],
		TotalPoints:    rec.TotalPoints,
		CorrectCount:   rec.CorrectCount,
		TotalQuestions: rec.TotalVerified,
		Results:        results,
	}, nil
}

// ImportOptions controls how a record lands in the workbook.
type ImportOptions struct {
	// Position is the 1-based insertion column; zero picks automatically.
	Position int
	// AfterModel inserts immediately right of a named existing column.
	AfterModel string
	// Update overwrites an existing column instead of failing.
	Update bool
	// SheetLabel overrides the column label derived from the alias table.
	SheetLabel string
}

// Import writes one record file into its workbook sheet, inserting a new
// model column or, in update mode, overwriting the existing one. The
// change stays in memory until Save.
func (s *SyncManager) Import(recordPath string, opts ImportOptions) error {
	rec, err := readRecord(recordPath)
	if err != nil {
		return err
	}

	sheetName, ok := s.paths.PathToSheet(recordPath)
	if !ok {
		// Fall back to the subject-section naming convention.
		switch {
		case rec.Subject != "" && rec.Section != "" && rec.Subject != rec.Section:
			sheetName = rec.Subject + "-" + rec.Section
		case rec.Subject != "":
			sheetName = rec.Subject
		default:
			return &RecordResolveError{Path: recordPath}
		}
		s.log.Warn().Str("path", recordPath).Str("sheet", sheetName).
			Msg("no path mapping, inferred sheet from record")
	}

	exists, err := s.handler.HasSheet(sheetName)
	if err != nil {
		return err
	}
	if !exists {
		return &SheetNotFoundError{Sheet: sheetName}
	}

	recordName, answers, score, err := RecordToSheetColumn(rec)
	if err != nil {
		return err
	}
	label := opts.SheetLabel
	if label == "" {
		label = s.names.ToSheetLabel(recordName)
	}

	cols, err := s.handler.ModelColumns(sheetName)
	if err != nil {
		return err
	}
	present := false
	for _, c := range cols {
		if c.Name == label {
			present = true
			break
		}
	}

	if present {
		if !opts.Update {
			return &sheet.AlreadyExistsError{Sheet: sheetName, Model: label}
		}
		if err := s.handler.UpdateModelColumn(sheetName, label, answers, score); err != nil {
			return err
		}
		s.log.Info().Str("sheet", sheetName).Str("model", label).
			Int("score", score).Msg("updated")
		return nil
	}

	if _, err := s.handler.AddModelColumn(sheetName, label, answers, score, opts.Position, opts.AfterModel); err != nil {
		return err
	}
	s.log.Info().Str("sheet", sheetName).Str("model", label).
		Int("score", score).Msg("added")
	return nil
}

// ImportAll imports every mapped sheet whose record file exists. Per-unit
// failures are collected and do not stop the run; the workbook is saved
// once at the end when anything succeeded.
func (s *SyncManager) ImportAll(update bool) (int, []error) {
	imported := 0
	var failures []error

	for _, sheetName := range s.paths.Sheets() {
		dir, ok := s.paths.SheetToPath(sheetName)
		if !ok {
			continue
		}
		recordPath := filepath.Join(dir, mapping.RecordFile)
		if _, err := os.Stat(recordPath); err != nil {
			continue
		}
		if err := s.Import(recordPath, ImportOptions{Update: update}); err != nil {
			s.log.Warn().Str("sheet", sheetName).Err(err).Msg("import failed")
			failures = append(failures, fmt.Errorf("%s: %w", sheetName, err))
			continue
		}
		imported++
	}

	if imported > 0 {
		if err := s.Save(); err != nil {
			failures = append(failures, err)
		}
	}
	return imported, failures
}

// ModelInfo is one model column listing.
type ModelInfo struct {
	Name     string
	Score    int
	HasScore bool
}

// SheetModels lists a sheet's model columns in header order.
type SheetModels struct {
	Sheet  string
	Models []ModelInfo
}

// ListModels lists model columns and scores, for one sheet or for every
// mapped workbook sheet. Unreadable sheets are skipped.
func (s *SyncManager) ListModels(sheetName string) ([]SheetModels, error) {
	var sheets []string
	if sheetName != "" {
		sheets = []string{sheetName}
	} else {
		names, err := s.handler.SheetNames()
		if err != nil {
			return nil, err
		}
		for _, name := range names {
			if _, ok := s.paths.SheetToPath(name); ok {
				sheets = append(sheets, name)
			}
		}
	}

	var out []SheetModels
	for _, name := range sheets {
		cols, err := s.handler.ModelColumns(name)
		if err != nil {
			s.log.Warn().Str("sheet", name).Err(err).Msg("sheet skipped")
			continue
		}
		entry := SheetModels{Sheet: name}
		for _, c := range cols {
			score, ok, err := s.handler.ModelScore(name, c.Name)
			if err != nil {
				continue
			}
			entry.Models = append(entry.Models, ModelInfo{Name: c.Name, Score: score, HasScore: ok})
		}
		out = append(out, entry)
	}
	return out, nil
}
