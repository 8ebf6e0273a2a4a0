package core

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
)

// Convert runs the normalization pipeline over a sheet held in memory.
//
// Rows are assembled in order; blank rows are skipped and inactive products
// are dropped from the document. Errors come only from the CSV reader.
func Convert(data []byte) (Document, Stats, error) {
	table, err := ReadTable(data)
	if err != nil {
		return Document{}, Stats{}, err
	}

	stats := Stats{
		RowsRead:  len(table.Rows),
		Delimiter: table.Delimiter,
	}
	if len(table.Header) > 0 {
		stats.MissingColumns = ValidateHeaders(table.Index, ProductSheet)
	}

	records := make([]ProductRecord, 0, len(table.Rows))
	for _, row := range table.Rows {
		rec, ok := BuildRecord(row, len(records))
		if !ok {
			stats.BlankRows++
			continue
		}
		records = append(records, rec)
	}

	active := FilterActive(records)
	stats.InactiveRows = len(records) - len(active)
	stats.Products = len(active)

	return NewDocument(active), stats, nil
}

// FilterActive returns the active records, preserving order.
func FilterActive(records []ProductRecord) []ProductRecord {
	out := make([]ProductRecord, 0, len(records))
	for _, rec := range records {
		if rec.Active {
			out = append(out, rec)
		}
	}
	return out
}

// ReadInput loads the sheet at path.
// maxSize of zero disables the size check.
func ReadInput(path string, maxSize int64) ([]byte, error) {
	info, err := os.Stat(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrInputNotFound, path)
	}
	if err != nil {
		return nil, fmt.Errorf("stat input: %w", err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("input %s is a directory", path)
	}
	if maxSize > 0 && info.Size() > maxSize {
		return nil, fmt.Errorf("%w: %s is %d bytes, limit is %d", ErrFileTooLarge, path, info.Size(), maxSize)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read input: %w", err)
	}
	return data, nil
}

// ConvertFile converts the sheet at inputPath and writes the document to
// outputPath. Nothing is written unless the whole run succeeds.
func ConvertFile(ctx context.Context, inputPath, outputPath string, maxSize int64) (Stats, error) {
	data, err := ReadInput(inputPath, maxSize)
	if err != nil {
		return Stats{}, err
	}

	doc, stats, err := Convert(data)
	if err != nil {
		return Stats{}, fmt.Errorf("convert %s: %w", inputPath, err)
	}

	if err := ctx.Err(); err != nil {
		return Stats{}, fmt.Errorf("operation cancelled: %w", err)
	}

	if err := WriteDocumentFile(outputPath, doc); err != nil {
		return Stats{}, err
	}

	return stats, nil
}
