package table

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// LoadFile loads and parses a YAML table file from the given path.
func LoadFile(path string) (Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Table{}, fmt.Errorf("failed to read table file %s: %w", path, err)
	}

	return Parse(data)
}

// document is the file layout. Cells are pointers so that null cells keep
// their position.
type document struct {
	Header []string    `yaml:"header"`
	Rows   [][]*string `yaml:"rows"`
}

// Parse parses YAML data into a Table. Cells keep their literal text: 007
// stays "007" and a null cell is "".
func Parse(data []byte) (Table, error) {
	var doc document

	if err := yaml.Unmarshal(data, &doc); err != nil {
		return Table{}, fmt.Errorf("failed to parse table YAML: %w", err)
	}

	if len(doc.Header) == 0 {
		return Table{}, fmt.Errorf("failed to parse table YAML: %w", ErrNoHeader)
	}

	tbl := Table{Header: doc.Header, Rows: make([][]string, len(doc.Rows))}

	for i, row := range doc.Rows {
		tbl.Rows[i] = make([]string, len(row))

		for j, cell := range row {
			if cell != nil {
				tbl.Rows[i][j] = *cell
			}
		}
	}

	return tbl, nil
}

// Marshal serializes a Table to YAML.
func Marshal(tbl Table) ([]byte, error) {
	return yaml.Marshal(tbl)
}

// WriteFile writes a Table to the given path.
func WriteFile(tbl Table, path string) error {
	data, err := Marshal(tbl)
	if err != nil {
		return fmt.Errorf("failed to marshal table: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write table file %s: %w", path, err)
	}

	return nil
}
