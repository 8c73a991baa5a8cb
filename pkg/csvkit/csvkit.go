// Package csvkit turns raw CSV bytes into ordered string-keyed records,
// using the header row as keys. Consumers only ever see records; the
// parsing mechanics stay here.
package csvkit

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"strings"
)

// Record is one data row keyed by header name.
type Record map[string]string

// Get returns the value for key, falling back to a case-insensitive
// header match. Imported files routinely carry "Name" vs "name".
func (r Record) Get(key string) string {
	if v, ok := r[key]; ok {
		return v
	}
	for k, v := range r {
		if strings.EqualFold(k, key) {
			return v
		}
	}
	return ""
}

// Parse reads CSV bytes into records. The first row is the header;
// empty lines are skipped and short rows are tolerated. Values are
// whitespace-trimmed.
func Parse(data []byte) ([]Record, error) {
	reader := csv.NewReader(bytes.NewReader(data))
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("csv file is empty")
	}
	if err != nil {
		return nil, fmt.Errorf("read csv header: %w", err)
	}
	for i := range header {
		header[i] = strings.TrimSpace(header[i])
	}

	var records []Record
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read csv row: %w", err)
		}

		record := make(Record, len(header))
		empty := true
		for i, name := range header {
			if name == "" {
				continue
			}
			var value string
			if i < len(row) {
				value = strings.TrimSpace(row[i])
			}
			if value != "" {
				empty = false
			}
			record[name] = value
		}
		if empty {
			continue
		}
		records = append(records, record)
	}

	return records, nil
}
