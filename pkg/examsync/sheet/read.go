package sheet

import (
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
)

func cellValue(f *excelize.File, sheetName string, col, row int) (string, error) {
	name, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return "", err
	}
	return f.GetCellValue(sheetName, name)
}

// parseCellInt parses a cell value as an integer choice or score.
// Excelize may render numerics with a decimal tail, so a float parse that
// yields a whole number is accepted too.
func parseCellInt(s string) (int, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	if n, err := strconv.Atoi(s); err == nil {
		return n, true
	}
	if v, err := strconv.ParseFloat(s, 64); err == nil && v == float64(int(v)) {
		return int(v), true
	}
	return 0, false
}

// ModelAnswers returns a model's raw answer cells keyed by question number,
// covering every item row whose first cell parses as an integer. Blank
// cells map to the empty string.
func (h *Handler) ModelAnswers(sheetName, model string) (map[int]string, error) {
	layout, err := h.Layout(sheetName)
	if err != nil {
		return nil, err
	}
	col, err := h.findModelColumn(sheetName, model)
	if err != nil {
		return nil, err
	}
	f, err := h.load()
	if err != nil {
		return nil, err
	}

	answers := make(map[int]string)
	for row := layout.HeaderRow + 1; row < layout.TotalsRow; row++ {
		numCell, err := cellValue(f, sheetName, 1, row)
		if err != nil {
			return nil, err
		}
		num, ok := parseCellInt(numCell)
		if !ok {
			continue
		}
		value, err := cellValue(f, sheetName, col, row)
		if err != nil {
			return nil, err
		}
		answers[num] = value
	}
	return answers, nil
}

// ModelScore returns a model's totals-row score. The second return is false
// when the cell is blank or non-numeric.
func (h *Handler) ModelScore(sheetName, model string) (int, bool, error) {
	layout, err := h.Layout(sheetName)
	if err != nil {
		return 0, false, err
	}
	col, err := h.findModelColumn(sheetName, model)
	if err != nil {
		return 0, false, err
	}
	f, err := h.load()
	if err != nil {
		return 0, false, err
	}
	value, err := cellValue(f, sheetName, col, layout.TotalsRow)
	if err != nil {
		return 0, false, err
	}
	score, ok := parseCellInt(value)
	return score, ok, nil
}

// MaxScore returns the maximum possible score recorded in the answer-key
// column of the totals row. Sheets without a labelled answer-key column, or
// with an unreadable totals cell, report the conventional full score.
func (h *Handler) MaxScore(sheetName string) (int, error) {
	layout, err := h.Layout(sheetName)
	if err != nil {
		return 0, err
	}
	col, found, err := h.answerColumn(sheetName)
	if err != nil {
		return 0, err
	}
	if !found {
		return defaultMaxScore, nil
	}
	f, err := h.load()
	if err != nil {
		return 0, err
	}
	value, err := cellValue(f, sheetName, col, layout.TotalsRow)
	if err != nil {
		return 0, err
	}
	if score, ok := parseCellInt(value); ok {
		return score, nil
	}
	return defaultMaxScore, nil
}

// CorrectAnswers returns the answer key by question number. Item rows whose
// key cell is not an integer are omitted.
func (h *Handler) CorrectAnswers(sheetName string) (map[int]int, error) {
	layout, err := h.Layout(sheetName)
	if err != nil {
		return nil, err
	}
	col, _, err := h.answerColumn(sheetName)
	if err != nil {
		return nil, err
	}
	f, err := h.load()
	if err != nil {
		return nil, err
	}

	key := make(map[int]int)
	for row := layout.HeaderRow + 1; row < layout.TotalsRow; row++ {
		numCell, err := cellValue(f, sheetName, 1, row)
		if err != nil {
			return nil, err
		}
		num, ok := parseCellInt(numCell)
		if !ok {
			continue
		}
		value, err := cellValue(f, sheetName, col, row)
		if err != nil {
			return nil, err
		}
		if answer, ok := parseCellInt(value); ok {
			key[num] = answer
		}
	}
	return key, nil
}
