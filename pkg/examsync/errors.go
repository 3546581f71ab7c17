package examsync

import "fmt"

// MappingError indicates a sheet has no record-folder mapping.
type MappingError struct {
	Sheet string
}

func (e *MappingError) Error() string {
	return fmt.Sprintf("no record path mapping for sheet %q", e.Sheet)
}

// RecordResolveError indicates a record file whose sheet cannot be
// determined: its path is unmapped and the record names no subject.
type RecordResolveError struct {
	Path string
}

func (e *RecordResolveError) Error() string {
	return fmt.Sprintf("cannot resolve sheet for record %q", e.Path)
}

// SheetNotFoundError indicates a resolved sheet name is absent from the
// workbook.
type SheetNotFoundError struct {
	Sheet string
}

func (e *SheetNotFoundError) Error() string {
	return fmt.Sprintf("sheet %q not found in workbook", e.Sheet)
}

// Finding is one non-fatal validation result. Findings are accumulated and
// returned, never raised.
type Finding struct {
	Sheet   string
	Message string
}

func (f Finding) String() string {
	return fmt.Sprintf("[%s] %s", f.Sheet, f.Message)
}
