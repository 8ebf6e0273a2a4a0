package core

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"unicode/utf8"
)

// utf8BOM is prepended by Excel on Windows when saving as "CSV UTF-8".
var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// Table is a parsed sheet: the header index plus every data row keyed by
// normalized column name.
type Table struct {
	Header    []string
	Index     HeaderIndex
	Rows      []RawRow
	Delimiter rune
}

// ReadTable parses a whole sheet held in memory.
//
// The data is cleaned before parsing: a leading BOM is dropped and invalid
// UTF-8 bytes become U+FFFD. The first record is the header. Rows shorter
// than the header leave the trailing columns blank; extra cells are ignored.
// Empty input yields an empty table.
//
// Quoting is lenient: a bare quote inside a field is kept as text and an
// unterminated quote runs to the end of the data. No sheet is rejected for
// its quoting.
func ReadTable(data []byte) (Table, error) {
	data = bytes.TrimPrefix(data, utf8BOM)
	data = sanitizeUTF8(data)

	table := Table{Delimiter: DetectDelimiter(data)}

	records, err := parseCSV(data, table.Delimiter)
	if err != nil {
		return Table{}, fmt.Errorf("parse csv: %w", err)
	}
	if len(records) == 0 {
		table.Index = HeaderIndex{}
		return table, nil
	}

	table.Header = records[0]
	table.Index = MakeHeaderIndex(table.Header)
	table.Rows = make([]RawRow, 0, len(records)-1)

	for _, rec := range records[1:] {
		table.Rows = append(table.Rows, rowFromRecord(rec, table.Index))
	}

	return table, nil
}

// rowFromRecord keys a CSV record by the header index.
func rowFromRecord(rec []string, idx HeaderIndex) RawRow {
	row := make(RawRow, len(idx))
	for key, pos := range idx {
		if pos < len(rec) {
			row[key] = rec[pos]
		}
	}
	return row
}

func sanitizeUTF8(data []byte) []byte {
	if utf8.Valid(data) {
		return data
	}

	var buf bytes.Buffer
	buf.Grow(len(data))

	for len(data) > 0 {
		r, size := utf8.DecodeRune(data)
		if r == utf8.RuneError && size == 1 {
			buf.WriteRune(utf8.RuneError)
			data = data[1:]
		} else {
			buf.Write(data[:size])
			data = data[size:]
		}
	}

	return buf.Bytes()
}

func parseCSV(data []byte, delimiter rune) ([][]string, error) {
	r := csv.NewReader(bytes.NewReader(data))
	r.Comma = delimiter
	r.FieldsPerRecord = -1
	r.LazyQuotes = true
	return r.ReadAll()
}
