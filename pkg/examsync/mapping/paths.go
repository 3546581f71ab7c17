// Package mapping resolves workbook sheet names to record folders and
// record-form model names to sheet column labels.
package mapping

import (
	"path/filepath"
	"strings"
)

const (
	// QuestionsFile is the question bank file name inside a record folder.
	QuestionsFile = "questions.json"
	// RecordFile is the result record file name inside a record folder.
	RecordFile = "results_verified.json"
)

// SheetPath is one entry of the sheet-to-folder table.
type SheetPath struct {
	Sheet string
	Path  string
}

// defaultTable is the fixed sheet-to-folder convention of the exam
// workbook. Declaration order is the canonical sheet order.
var defaultTable = []SheetPath{
	{"국어-공통", "problems/국어/공통"},
	{"국어-화작", "problems/국어/화작"},
	{"국어-언매", "problems/국어/언매"},
	{"수학-공통", "problems/수학/공통"},
	{"수학-확통", "problems/수학/확통"},
	{"수학-미적", "problems/수학/미적"},
	{"수학-기하", "problems/수학/기하"},
	{"영어", "problems/영어"},
	{"한국사", "problems/한국사"},
	{"물리1", "problems/탐구/물리1"},
	{"화학1", "problems/탐구/화학1"},
	{"생명1", "problems/탐구/생명1"},
	{"사회문화", "problems/탐구/사회문화"},
}

// PathMapper is a static bidirectional table between sheet names and record
// folders. The inverse direction matches by suffix or containment, first
// entry in declaration order wins; the table must avoid colliding paths by
// construction.
type PathMapper struct {
	baseDir string
	table   []SheetPath
	forward map[string]string
}

// NewPathMapper returns a mapper over the default sheet table, resolving
// folders relative to baseDir.
func NewPathMapper(baseDir string) *PathMapper {
	return NewPathMapperWithTable(baseDir, defaultTable)
}

// NewPathMapperWithTable returns a mapper over a caller-supplied table.
func NewPathMapperWithTable(baseDir string, table []SheetPath) *PathMapper {
	forward := make(map[string]string, len(table))
	for _, e := range table {
		forward[e.Sheet] = e.Path
	}
	return &PathMapper{baseDir: baseDir, table: table, forward: forward}
}

// SheetToPath returns the record folder for a sheet. The second return is
// false for unknown sheets; absence is a valid signal, not an error.
func (m *PathMapper) SheetToPath(sheetName string) (string, bool) {
	rel, ok := m.forward[sheetName]
	if !ok {
		return "", false
	}
	return filepath.Join(m.baseDir, rel), true
}

// PathToSheet resolves a record folder or record file path back to its
// sheet name.
func (m *PathMapper) PathToSheet(path string) (string, bool) {
	rel := strings.ReplaceAll(path, "\\", "/")
	if strings.HasSuffix(rel, "/"+RecordFile) {
		rel = strings.TrimSuffix(rel, "/"+RecordFile)
	} else if strings.HasSuffix(rel, RecordFile) {
		rel = strings.ReplaceAll(filepath.Dir(rel), "\\", "/")
	}
	for _, e := range m.table {
		if strings.HasSuffix(rel, e.Path) || strings.Contains(rel, e.Path) {
			return e.Sheet, true
		}
	}
	return "", false
}

// BaseDir returns the root record folders are resolved under.
func (m *PathMapper) BaseDir() string {
	return m.baseDir
}

// Sheets returns every known sheet name in declaration order.
func (m *PathMapper) Sheets() []string {
	names := make([]string, len(m.table))
	for i, e := range m.table {
		names[i] = e.Sheet
	}
	return names
}

// SubjectSection splits a sheet name into subject and section. Subjects
// without electives use a bare name and act as their own single section.
func SubjectSection(sheetName string) (string, string) {
	if subject, section, ok := strings.Cut(sheetName, "-"); ok {
		return strings.TrimSpace(subject), strings.TrimSpace(section)
	}
	name := strings.TrimSpace(sheetName)
	return name, name
}
