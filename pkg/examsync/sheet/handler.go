// Package sheet reads and writes the fixed score-table layout used by the
// exam workbook: a header row marked by an item-number label, an answer-key
// column, one column per model, and a totals row.
package sheet

import (
	"github.com/xuri/excelize/v2"
)

const (
	// headerMarker identifies the header row by its first cell.
	headerMarker = "문항 번호"
	// answerLabel is the answer-key column label.
	answerLabel = "정답"
	// Placeholder is the visual "no answer" marker written to cells.
	Placeholder = "(포기)"

	// headerSearchRows bounds the header search window from row 1.
	headerSearchRows = 5
	// defaultMaxScore is used when the totals-row answer cell is unreadable.
	defaultMaxScore = 100
	// defaultAnswerCol is assumed when no answer-key label is present.
	defaultAnswerCol = 2
	// defaultInsertCol is where the first model column goes, right of the
	// answer-key column.
	defaultInsertCol = 3
)

// totalsLabels are the accepted first-cell synonyms of the totals row.
var totalsLabels = []string{"총점", "총합", "점수"}

// Layout holds the located row structure of one sheet. Item rows occupy
// HeaderRow+1 through TotalsRow-1.
type Layout struct {
	HeaderRow int
	TotalsRow int
}

// ModelColumn pairs a model column label with its 1-based column index.
type ModelColumn struct {
	Name string
	Col  int
}

// Handler owns the in-memory workbook. The file is loaded lazily on first
// access and held for the life of the handler; located layouts are cached
// per sheet and invalidated after structural mutation.
type Handler struct {
	path    string
	file    *excelize.File
	layouts map[string]Layout
	styles  *styleSet
}

// NewHandler creates a handler for the workbook at path. The file is not
// opened until first use.
func NewHandler(path string) *Handler {
	return &Handler{
		path:    path,
		layouts: make(map[string]Layout),
	}
}

func (h *Handler) load() (*excelize.File, error) {
	if h.file == nil {
		f, err := excelize.OpenFile(h.path)
		if err != nil {
			return nil, err
		}
		h.file = f
	}
	return h.file, nil
}

// SheetNames returns every sheet name in the workbook.
func (h *Handler) SheetNames() ([]string, error) {
	f, err := h.load()
	if err != nil {
		return nil, err
	}
	return f.GetSheetList(), nil
}

// HasSheet reports whether a sheet with the given name exists.
func (h *Handler) HasSheet(name string) (bool, error) {
	names, err := h.SheetNames()
	if err != nil {
		return false, err
	}
	for _, n := range names {
		if n == name {
			return true, nil
		}
	}
	return false, nil
}

// Save flushes accumulated in-memory changes back to the workbook file.
func (h *Handler) Save() error {
	if h.file == nil {
		return nil
	}
	return h.file.Save()
}

// Close releases the workbook. The handler can be reused; the next access
// reloads from disk.
func (h *Handler) Close() error {
	if h.file == nil {
		return nil
	}
	err := h.file.Close()
	h.file = nil
	h.layouts = make(map[string]Layout)
	h.styles = nil
	return err
}

// invalidate drops the cached layout for one sheet after a structural
// mutation. Other sheets' caches stay valid.
func (h *Handler) invalidate(sheetName string) {
	delete(h.layouts, sheetName)
}
