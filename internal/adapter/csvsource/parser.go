// Package csvsource reads the vocabulary CSV into domain.RawEntry records.
// The first row names the columns; field values are copied verbatim.
package csvsource

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/heartmarshall/hangeul-backend/internal/domain"
)

// Column names recognised in the header row.
const (
	ColumnID             = "id"
	ColumnKorean         = "korean"
	ColumnEnglish        = "english"
	ColumnSampleSentence = "sample_sentence"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// ParseBytes parses raw CSV content. See Parse.
func ParseBytes(raw []byte) ([]domain.RawEntry, error) {
	return Parse(bytes.NewReader(bytes.TrimPrefix(raw, utf8BOM)))
}

// Parse reads a header-led CSV. Columns are matched by name, so their order
// is free and unknown columns are ignored; a missing column leaves the field
// empty. Every row must have as many fields as the header. Any malformed row
// fails the whole read: the result is then nil together with the error.
// Empty input yields no records and no error.
func Parse(r io.Reader) ([]domain.RawEntry, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = 0 // header width applies to every row

	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, fmt.Errorf("read header: %w", err)
	}
	cols := indexColumns(header)

	var entries []domain.RawEntry
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read row: %w", err)
		}

		entries = append(entries, domain.RawEntry{
			ID:             cols.field(record, ColumnID),
			Korean:         cols.field(record, ColumnKorean),
			English:        cols.field(record, ColumnEnglish),
			SampleSentence: cols.field(record, ColumnSampleSentence),
		})
	}

	return entries, nil
}

type columnIndex map[string]int

func indexColumns(header []string) columnIndex {
	cols := make(columnIndex, len(header))
	for i, name := range header {
		if i == 0 {
			name = strings.TrimPrefix(name, string(utf8BOM))
		}
		name = strings.TrimSpace(name)
		if _, dup := cols[name]; !dup {
			cols[name] = i
		}
	}
	return cols
}

func (c columnIndex) field(record []string, name string) string {
	i, ok := c[name]
	if !ok || i >= len(record) {
		return ""
	}
	return record[i]
}
