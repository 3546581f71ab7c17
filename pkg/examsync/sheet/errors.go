package sheet

import "fmt"

// LayoutError indicates a sheet does not follow the expected tabular
// convention (header row or totals row missing).
type LayoutError struct {
	Sheet  string
	Reason string
}

func (e *LayoutError) Error() string {
	return fmt.Sprintf("sheet %q: %s", e.Sheet, e.Reason)
}

// AlreadyExistsError indicates an import target model column is already
// present and update mode was not requested.
type AlreadyExistsError struct {
	Sheet string
	Model string
}

func (e *AlreadyExistsError) Error() string {
	return fmt.Sprintf("model column %q already exists in sheet %q", e.Model, e.Sheet)
}

// ColumnNotFoundError indicates a named model column is absent from a sheet.
type ColumnNotFoundError struct {
	Sheet string
	Model string
}

func (e *ColumnNotFoundError) Error() string {
	return fmt.Sprintf("model column %q not found in sheet %q", e.Model, e.Sheet)
}
