// Package examsync synchronizes exam-scoring data between a spreadsheet
// workbook and per-section JSON result records.
package examsync

import (
	"github.com/rs/zerolog"

	"github.com/suneval/examsync/pkg/examsync/mapping"
)

// Options configures a SyncManager.
type Options struct {
	// WorkbookPath is the spreadsheet file to synchronize against.
	WorkbookPath string
	// MappingPath is the model name alias file. A missing file is fine.
	MappingPath string
	// BaseDir is the root the record folders are resolved under.
	BaseDir string
	// PathTable overrides the built-in sheet-to-folder table. Nil keeps the
	// default exam convention.
	PathTable []mapping.SheetPath
	// Logger receives per-unit progress lines. Zero value logs nothing.
	Logger zerolog.Logger
}

// DefaultOptions returns the conventional file locations.
func DefaultOptions() Options {
	return Options{
		WorkbookPath: "2026 수능 LLM 풀이.xlsx",
		MappingPath:  "model_mapping.json",
		BaseDir:      ".",
		Logger:       zerolog.Nop(),
	}
}
