package mapping

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
)

// ModelNameMapper is a persisted alias table from record-form model names
// to sheet column labels. Unknown names pass through unchanged in both
// directions; that leniency is relied upon for not-yet-aliased models.
// Uniqueness of labels is not enforced: if two record names share a label,
// reverse lookup returns the first match in file order.
type ModelNameMapper struct {
	path  string
	order []string
	table map[string]string
}

// LoadModelNames reads the alias table from a JSON object file, preserving
// key order. A missing file yields an empty mapper.
func LoadModelNames(path string) (*ModelNameMapper, error) {
	m := &ModelNameMapper{path: path, table: make(map[string]string)}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return m, nil
	}
	if err != nil {
		return nil, err
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return nil, fmt.Errorf("model mapping %s: %w", path, err)
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, fmt.Errorf("model mapping %s: expected JSON object", path)
	}
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, fmt.Errorf("model mapping %s: %w", path, err)
		}
		key := keyTok.(string)
		var value string
		if err := dec.Decode(&value); err != nil {
			return nil, fmt.Errorf("model mapping %s: key %q: %w", path, key, err)
		}
		m.set(key, value)
	}
	return m, nil
}

func (m *ModelNameMapper) set(recordName, sheetLabel string) {
	if _, ok := m.table[recordName]; !ok {
		m.order = append(m.order, recordName)
	}
	m.table[recordName] = sheetLabel
}

// ToSheetLabel maps a record-form model name to its sheet column label,
// returning the input unchanged when no alias exists.
func (m *ModelNameMapper) ToSheetLabel(recordName string) string {
	if label, ok := m.table[recordName]; ok {
		return label
	}
	return recordName
}

// ToRecordName maps a sheet column label back to its record-form model
// name, returning the input unchanged when no alias matches.
func (m *ModelNameMapper) ToRecordName(sheetLabel string) string {
	for _, recordName := range m.order {
		if m.table[recordName] == sheetLabel {
			return recordName
		}
	}
	return sheetLabel
}

// Add registers or replaces an alias. The file is not touched until Save.
func (m *ModelNameMapper) Add(recordName, sheetLabel string) {
	m.set(recordName, sheetLabel)
}

// Save writes the alias table back to its file in insertion order.
func (m *ModelNameMapper) Save() error {
	var buf bytes.Buffer
	buf.WriteString("{")
	for i, recordName := range m.order {
		if i > 0 {
			buf.WriteString(",")
		}
		buf.WriteString("\n  ")
		key, err := json.Marshal(recordName)
		if err != nil {
			return err
		}
		value, err := json.Marshal(m.table[recordName])
		if err != nil {
			return err
		}
		buf.Write(key)
		buf.WriteString(": ")
		buf.Write(value)
	}
	if len(m.order) > 0 {
		buf.WriteString("\n")
	}
	buf.WriteString("}\n")
	return os.WriteFile(m.path, buf.Bytes(), 0644)
}
