package sheet

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/xuri/excelize/v2"
)

// newTestWorkbook writes a workbook with one conventional score sheet:
// title row, header at row 2, three item rows, totals at row 6.
func newTestWorkbook(t *testing.T, sheetName string) string {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()

	if _, err := f.NewSheet(sheetName); err != nil {
		t.Fatalf("NewSheet: %v", err)
	}
	if err := f.DeleteSheet("Sheet1"); err != nil {
		t.Fatalf("DeleteSheet: %v", err)
	}

	set := func(cell string, value interface{}) {
		if err := f.SetCellValue(sheetName, cell, value); err != nil {
			t.Fatalf("SetCellValue(%s): %v", cell, err)
		}
	}
	set("A1", "2026 수능 채점표")
	set("A2", "문항 번호")
	set("B2", "정답")
	set("C2", "GPT-5")
	set("D2", "Gemini 3")
	// questions: key 1/3/2, points recorded in the bank, not the sheet
	set("A3", 1)
	set("B3", 1)
	set("C3", 1)
	set("D3", 2)
	set("A4", 2)
	set("B4", 3)
	set("C4", 3)
	set("A5", 3)
	set("B5", 2)
	set("C5", 1)
	set("D5", Placeholder)
	set("A6", "총점")
	set("B6", 10)
	set("C6", 5)
	set("D6", 0)

	path := filepath.Join(t.TempDir(), "test.xlsx")
	if err := f.SaveAs(path); err != nil {
		t.Fatalf("SaveAs: %v", err)
	}
	return path
}

func TestLayout(t *testing.T) {
	h := NewHandler(newTestWorkbook(t, "국어-공통"))
	defer h.Close()

	layout, err := h.Layout("국어-공통")
	if err != nil {
		t.Fatalf("Layout failed: %v", err)
	}
	if layout.HeaderRow != 2 {
		t.Errorf("HeaderRow = %d, want 2", layout.HeaderRow)
	}
	if layout.TotalsRow != 6 {
		t.Errorf("TotalsRow = %d, want 6", layout.TotalsRow)
	}
}

func TestLayoutHeaderMissing(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()
	f.SetCellValue("Sheet1", "A1", "no marker here")
	f.SetCellValue("Sheet1", "A2", "still nothing")

	path := filepath.Join(t.TempDir(), "bad.xlsx")
	if err := f.SaveAs(path); err != nil {
		t.Fatalf("SaveAs: %v", err)
	}

	h := NewHandler(path)
	defer h.Close()

	_, err := h.Layout("Sheet1")
	var layoutErr *LayoutError
	if !errors.As(err, &layoutErr) {
		t.Fatalf("Layout error = %v, want LayoutError", err)
	}
}

func TestLayoutTotalsMissing(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()
	f.SetCellValue("Sheet1", "A1", "문항 번호")
	f.SetCellValue("Sheet1", "A2", 1)
	f.SetCellValue("Sheet1", "A3", 2)

	path := filepath.Join(t.TempDir(), "bad.xlsx")
	if err := f.SaveAs(path); err != nil {
		t.Fatalf("SaveAs: %v", err)
	}

	h := NewHandler(path)
	defer h.Close()

	_, err := h.Layout("Sheet1")
	var layoutErr *LayoutError
	if !errors.As(err, &layoutErr) {
		t.Fatalf("Layout error = %v, want LayoutError", err)
	}
}

func TestModelColumns(t *testing.T) {
	h := NewHandler(newTestWorkbook(t, "국어-공통"))
	defer h.Close()

	cols, err := h.ModelColumns("국어-공통")
	if err != nil {
		t.Fatalf("ModelColumns failed: %v", err)
	}
	want := []ModelColumn{{Name: "GPT-5", Col: 3}, {Name: "Gemini 3", Col: 4}}
	if len(cols) != len(want) {
		t.Fatalf("got %d columns, want %d", len(cols), len(want))
	}
	for i := range want {
		if cols[i] != want[i] {
			t.Errorf("cols[%d] = %+v, want %+v", i, cols[i], want[i])
		}
	}
}

func TestModelColumnsExcludesPlaceholders(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()
	f.SetCellValue("Sheet1", "A1", "문항 번호")
	f.SetCellValue("Sheet1", "B1", "정답")
	f.SetCellValue("Sheet1", "C1", "Unnamed: 2")
	f.SetCellValue("Sheet1", "D1", "nan")
	f.SetCellValue("Sheet1", "E1", "GPT-5")
	f.SetCellValue("Sheet1", "A2", 1)
	f.SetCellValue("Sheet1", "A3", "총점")

	path := filepath.Join(t.TempDir(), "test.xlsx")
	if err := f.SaveAs(path); err != nil {
		t.Fatalf("SaveAs: %v", err)
	}

	h := NewHandler(path)
	defer h.Close()

	cols, err := h.ModelColumns("Sheet1")
	if err != nil {
		t.Fatalf("ModelColumns failed: %v", err)
	}
	if len(cols) != 1 || cols[0].Name != "GPT-5" || cols[0].Col != 5 {
		t.Errorf("cols = %+v, want only GPT-5 at column 5", cols)
	}
}
