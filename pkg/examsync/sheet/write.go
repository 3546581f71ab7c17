package sheet

import (
	"github.com/xuri/excelize/v2"
)

// styleSet caches workbook style IDs for column writes.
type styleSet struct {
	center     int
	boldCenter int
	redCenter  int
}

func (h *Handler) ensureStyles() (*styleSet, error) {
	if h.styles != nil {
		return h.styles, nil
	}
	f, err := h.load()
	if err != nil {
		return nil, err
	}

	centered := &excelize.Alignment{Horizontal: "center", Vertical: "center"}

	center, err := f.NewStyle(&excelize.Style{Alignment: centered})
	if err != nil {
		return nil, err
	}
	boldCenter, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true},
		Alignment: centered,
	})
	if err != nil {
		return nil, err
	}
	redCenter, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Color: "FF0000"},
		Alignment: centered,
	})
	if err != nil {
		return nil, err
	}

	h.styles = &styleSet{center: center, boldCenter: boldCenter, redCenter: redCenter}
	return h.styles, nil
}

// AddModelColumn inserts a new model column and fills it with the given
// answers and total score. The insertion point is, in order of precedence:
// right of afterModel, the explicit 1-based position, one past the last
// model column, or the conventional first model position. Existing columns
// shift right unchanged. Returns the inserted column index.
func (h *Handler) AddModelColumn(sheetName, model string, answers map[int]int, score, position int, afterModel string) (int, error) {
	cols, err := h.ModelColumns(sheetName)
	if err != nil {
		return 0, err
	}
	for _, c := range cols {
		if c.Name == model {
			return 0, &AlreadyExistsError{Sheet: sheetName, Model: model}
		}
	}

	insertCol := 0
	if afterModel != "" {
		for _, c := range cols {
			if c.Name == afterModel {
				insertCol = c.Col + 1
				break
			}
		}
	}
	if insertCol == 0 && position > 0 {
		insertCol = position
	}
	if insertCol == 0 {
		insertCol = defaultInsertCol
		for _, c := range cols {
			if c.Col >= insertCol {
				insertCol = c.Col + 1
			}
		}
	}

	f, err := h.load()
	if err != nil {
		return 0, err
	}
	colName, err := excelize.ColumnNumberToName(insertCol)
	if err != nil {
		return 0, err
	}
	if err := f.InsertCols(sheetName, colName, 1); err != nil {
		return 0, err
	}
	h.invalidate(sheetName)

	if err := h.writeColumn(sheetName, insertCol, model, answers, score); err != nil {
		return 0, err
	}
	return insertCol, nil
}

// UpdateModelColumn overwrites an existing model column in place.
func (h *Handler) UpdateModelColumn(sheetName, model string, answers map[int]int, score int) error {
	col, err := h.findModelColumn(sheetName, model)
	if err != nil {
		return err
	}
	return h.writeColumn(sheetName, col, model, answers, score)
}

// writeColumn authors one model column: bold centered header, centered
// answers, the placeholder in red for absent answers, red font for wrong
// answers, centered total. Setting the full cell style each time also
// clears any stale font from a previous run.
func (h *Handler) writeColumn(sheetName string, col int, model string, answers map[int]int, score int) error {
	layout, err := h.Layout(sheetName)
	if err != nil {
		return err
	}
	key, err := h.CorrectAnswers(sheetName)
	if err != nil {
		return err
	}
	styles, err := h.ensureStyles()
	if err != nil {
		return err
	}
	f, err := h.load()
	if err != nil {
		return err
	}

	set := func(row int, value interface{}, style int) error {
		cell, err := excelize.CoordinatesToCellName(col, row)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheetName, cell, value); err != nil {
			return err
		}
		return f.SetCellStyle(sheetName, cell, cell, style)
	}

	if err := set(layout.HeaderRow, model, styles.boldCenter); err != nil {
		return err
	}

	for row := layout.HeaderRow + 1; row < layout.TotalsRow; row++ {
		numCell, err := cellValue(f, sheetName, 1, row)
		if err != nil {
			return err
		}
		num, ok := parseCellInt(numCell)
		if !ok {
			continue
		}

		answer, answered := answers[num]
		if !answered {
			if err := set(row, Placeholder, styles.redCenter); err != nil {
				return err
			}
			continue
		}

		style := styles.center
		if correct, ok := key[num]; ok && answer != correct {
			style = styles.redCenter
		}
		if err := set(row, answer, style); err != nil {
			return err
		}
	}

	return set(layout.TotalsRow, score, styles.center)
}
