// Package csvutil reads the source CSV extracts. The files come from a
// mix of exports (Excel, GIS tools, telemetry dumps), so reading has to
// survive invalid UTF-8, byte order marks, ragged rows and Excel formula
// artifacts in cells.
package csvutil

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"os"
	"strings"
	"unicode/utf8"
)

// MaxFileSize is the maximum allowed CSV file size (100MB).
var MaxFileSize int64 = 100 * 1024 * 1024

// ReadFile reads a CSV file and returns all records. Invalid UTF-8 is
// replaced, a leading BOM is stripped and fully empty rows are dropped.
// The header row is records[0]; callers reconcile it against the
// canonical column list.
func ReadFile(path string) ([][]string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}
	if info.Size() > MaxFileSize {
		return nil, fmt.Errorf("file exceeds %dMB limit", MaxFileSize/(1024*1024))
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	records, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse CSV: %w", err)
	}
	return records, nil
}

// Parse parses raw CSV bytes. Records may have varying field counts;
// lazy quotes tolerate stray quote characters inside cells.
func Parse(data []byte) ([][]string, error) {
	data = bytes.TrimPrefix(data, []byte{0xEF, 0xBB, 0xBF})
	data = sanitizeUTF8(data)

	r := csv.NewReader(bytes.NewReader(data))
	r.FieldsPerRecord = -1
	r.LazyQuotes = true

	records, err := r.ReadAll()
	if err != nil {
		return nil, err
	}

	out := records[:0]
	for _, rec := range records {
		if !IsEmptyRow(rec) {
			out = append(out, rec)
		}
	}
	return out, nil
}

// sanitizeUTF8 replaces invalid UTF-8 sequences with the Unicode
// replacement character.
func sanitizeUTF8(data []byte) []byte {
	if utf8.Valid(data) {
		return data
	}

	var buf bytes.Buffer
	buf.Grow(len(data))

	for len(data) > 0 {
		r, size := utf8.DecodeRune(data)
		if r == utf8.RuneError && size == 1 {
			buf.WriteRune('�')
			data = data[1:]
		} else {
			buf.WriteRune(r)
			data = data[size:]
		}
	}

	return buf.Bytes()
}

// CleanCell removes common CSV artifacts from a cell value:
// whitespace, Excel formula prefixes (="...") and surrounding quotes.
func CleanCell(s string) string {
	s = strings.TrimSpace(s)

	if strings.HasPrefix(s, "=\"") && strings.HasSuffix(s, "\"") {
		s = s[2 : len(s)-1]
	} else if strings.HasPrefix(s, "=") {
		s = s[1:]
	}

	return strings.Trim(s, `"'`)
}

// CleanHeader normalizes a header cell for matching: cleaned like a
// cell, then lowercased.
func CleanHeader(s string) string {
	return strings.ToLower(CleanCell(s))
}

// IsEmptyRow reports whether every cell in the row is blank.
func IsEmptyRow(row []string) bool {
	for _, v := range row {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}
