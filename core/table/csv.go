package table

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
)

// ReadCSV parses a CSV document with a header row into a Table.
// Empty cells become null; numeric-looking cells are parsed into int or
// float values; everything else stays a string.
func ReadCSV(r io.Reader) (*Table, error) {
	reader := csv.NewReader(r)
	header, err := reader.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("csv document has no header row")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read csv header: %w", err)
	}

	t, err := New(header)
	if err != nil {
		return nil, err
	}

	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read csv row: %w", err)
		}
		cells := make([]Value, len(record))
		for i, cell := range record {
			cells[i] = parseCell(cell)
		}
		if err := t.AppendRow(cells...); err != nil {
			return nil, err
		}
	}
	return t, nil
}

// WriteCSV writes the table as a CSV document with a header row.
// Null cells are written empty.
func WriteCSV(w io.Writer, t *Table) error {
	writer := csv.NewWriter(w)
	if err := writer.Write(t.Columns()); err != nil {
		return fmt.Errorf("failed to write csv header: %w", err)
	}
	record := make([]string, t.NumColumns())
	for i := 0; i < t.NumRows(); i++ {
		row := t.Row(i)
		for c, cell := range row {
			record[c] = cell.String()
		}
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("failed to write csv row: %w", err)
		}
	}
	writer.Flush()
	return writer.Error()
}

// parseCell infers the Value kind of a raw CSV cell.
func parseCell(cell string) Value {
	if cell == "" {
		return Null()
	}
	if i, err := strconv.ParseInt(cell, 10, 64); err == nil {
		return Int(i)
	}
	if f, err := strconv.ParseFloat(cell, 64); err == nil {
		return Float(f)
	}
	return Str(cell)
}
