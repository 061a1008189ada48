package demoserver

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"
)

// utf8BOM lets spreadsheet software detect the encoding of non-ASCII
// columns such as prices in yuan.
const utf8BOM = "\ufeff"

const (
	defaultCSVFilename  = "scraping_results.csv"
	defaultXLSXFilename = "scraping_results.xlsx"

	// xlsxSheet names the single worksheet of an Excel export.
	xlsxSheet = "Results"
)

var ErrNoRows = errors.New("no data to download")

// tabulate flattens JSON object rows into a header plus string records.
// Columns are the keys of the first row in document order; later rows
// missing a key get an empty cell.
func tabulate(rows []json.RawMessage) ([]string, [][]string, error) {
	if len(rows) == 0 {
		return nil, nil, ErrNoRows
	}

	header, err := objectKeys(rows[0])
	if err != nil {
		return nil, nil, fmt.Errorf("reading columns: %w", err)
	}

	records := make([][]string, 0, len(rows))
	for i, raw := range rows {
		var row map[string]json.RawMessage
		if err := json.Unmarshal(raw, &row); err != nil {
			return nil, nil, fmt.Errorf("row %d: %w", i, err)
		}
		record := make([]string, len(header))
		for j, key := range header {
			record[j] = cellValue(row[key])
		}
		records = append(records, record)
	}
	return header, records, nil
}

// WriteCSV renders rows as CSV, prefixed with a UTF-8 BOM.
func WriteCSV(w io.Writer, rows []json.RawMessage) error {
	header, records, err := tabulate(rows)
	if err != nil {
		return err
	}

	if _, err := io.WriteString(w, utf8BOM); err != nil {
		return err
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(header); err != nil {
		return err
	}
	if err := cw.WriteAll(records); err != nil {
		return err
	}
	return cw.Error()
}

// WriteXLSX renders rows as a single-sheet Excel workbook with the same
// columns WriteCSV would produce.
func WriteXLSX(w io.Writer, rows []json.RawMessage) error {
	header, records, err := tabulate(rows)
	if err != nil {
		return err
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), xlsxSheet); err != nil {
		return fmt.Errorf("naming sheet: %w", err)
	}

	for i, record := range append([][]string{header}, records...) {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		values := make([]any, len(record))
		for j, v := range record {
			values[j] = v
		}
		if err := f.SetSheetRow(xlsxSheet, cell, &values); err != nil {
			return fmt.Errorf("writing row %d: %w", i, err)
		}
	}

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("writing workbook: %w", err)
	}
	return nil
}

// objectKeys returns the top-level keys of a JSON object in the order
// they appear.
func objectKeys(raw json.RawMessage) ([]string, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return nil, fmt.Errorf("expected object, got %v", tok)
	}

	var keys []string
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		key, ok := tok.(string)
		if !ok {
			return nil, fmt.Errorf("unexpected token %v", tok)
		}
		keys = append(keys, key)

		// skip the value, whatever its shape
		var skip json.RawMessage
		if err := dec.Decode(&skip); err != nil {
			return nil, err
		}
	}
	return keys, nil
}

func cellValue(raw json.RawMessage) string {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return ""
	}
	if trimmed[0] == '"' {
		var s string
		if err := json.Unmarshal(trimmed, &s); err == nil {
			return s
		}
	}
	return string(trimmed)
}

// attachmentName keeps a client supplied filename from breaking out of
// the Content-Disposition header.
func attachmentName(name, fallback string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return fallback
	}
	name = strings.Map(func(r rune) rune {
		switch r {
		case '"', '\\', '/', '\r', '\n':
			return '_'
		}
		return r
	}, name)
	return name
}
