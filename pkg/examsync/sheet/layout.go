package sheet

import (
	"slices"
	"strings"
)

// Layout locates the header and totals rows of a sheet. The header row is
// the first of the top rows whose first cell contains the item-number
// marker; the totals row is the first row below it whose trimmed first cell
// is one of the total-score synonyms. Results are cached per sheet.
func (h *Handler) Layout(sheetName string) (Layout, error) {
	if l, ok := h.layouts[sheetName]; ok {
		return l, nil
	}

	f, err := h.load()
	if err != nil {
		return Layout{}, err
	}
	rows, err := f.GetRows(sheetName)
	if err != nil {
		return Layout{}, err
	}

	headerRow := 0
	for i := 0; i < len(rows) && i < headerSearchRows; i++ {
		if len(rows[i]) > 0 && strings.Contains(rows[i][0], headerMarker) {
			headerRow = i + 1
			break
		}
	}
	if headerRow == 0 {
		return Layout{}, &LayoutError{Sheet: sheetName, Reason: "header row not found"}
	}

	totalsRow := 0
	for i := headerRow; i < len(rows); i++ {
		if len(rows[i]) > 0 && slices.Contains(totalsLabels, strings.TrimSpace(rows[i][0])) {
			totalsRow = i + 1
			break
		}
	}
	if totalsRow == 0 {
		return Layout{}, &LayoutError{Sheet: sheetName, Reason: "totals row not found"}
	}

	l := Layout{HeaderRow: headerRow, TotalsRow: totalsRow}
	h.layouts[sheetName] = l
	return l, nil
}

// ModelColumns returns the model columns of a sheet in left-to-right header
// order. The item-number label, the answer-key label, blanks, and
// auto-generated placeholder labels are excluded.
func (h *Handler) ModelColumns(sheetName string) ([]ModelColumn, error) {
	layout, err := h.Layout(sheetName)
	if err != nil {
		return nil, err
	}
	f, err := h.load()
	if err != nil {
		return nil, err
	}
	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, err
	}

	var cols []ModelColumn
	header := rows[layout.HeaderRow-1]
	for i, cell := range header {
		label := strings.TrimSpace(cell)
		switch label {
		case "", headerMarker, answerLabel, "nan":
			continue
		}
		// pandas writes unnamed columns as "Unnamed: N".
		if strings.Contains(label, "Unnamed") {
			continue
		}
		cols = append(cols, ModelColumn{Name: label, Col: i + 1})
	}
	return cols, nil
}

// findModelColumn resolves a model label to its column index.
func (h *Handler) findModelColumn(sheetName, model string) (int, error) {
	cols, err := h.ModelColumns(sheetName)
	if err != nil {
		return 0, err
	}
	for _, c := range cols {
		if c.Name == model {
			return c.Col, nil
		}
	}
	return 0, &ColumnNotFoundError{Sheet: sheetName, Model: model}
}

// answerColumn locates the answer-key column. When the label is absent the
// conventional position is assumed and found is false, so callers can tell
// a real key column from the fallback.
func (h *Handler) answerColumn(sheetName string) (col int, found bool, err error) {
	layout, err := h.Layout(sheetName)
	if err != nil {
		return 0, false, err
	}
	f, err := h.load()
	if err != nil {
		return 0, false, err
	}
	rows, err := f.GetRows(sheetName)
	if err != nil {
		return 0, false, err
	}
	for i, cell := range rows[layout.HeaderRow-1] {
		if strings.TrimSpace(cell) == answerLabel {
			return i + 1, true, nil
		}
	}
	return defaultAnswerCol, false, nil
}
