// Package csvsource reads voltage rooms, load profiles and connected objects
// from the CSV exports the grid operator delivers.
package csvsource

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
	"time"
)

const bom = "\uFEFF"

// table is a parsed CSV file with a case-insensitive header lookup.
type table struct {
	header []string
	comma  rune
	index  map[string]int
	rows   [][]string
	// line numbers (1-based, header = 1) for error messages
	lines []int
}

func readTable(r io.Reader) (*table, error) {
	br := bufio.NewReader(r)
	first, err := br.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("read header: %w", err)
	}
	if strings.TrimSpace(strings.TrimPrefix(first, bom)) == "" {
		return nil, errors.New("read header: empty file")
	}

	cr := csv.NewReader(io.MultiReader(strings.NewReader(strings.TrimPrefix(first, bom)), br))
	cr.Comma = sniffDelimiter(first)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}

	t := &table{header: header, comma: cr.Comma, index: make(map[string]int, len(header))}
	for i, h := range header {
		key := strings.ToLower(strings.TrimSpace(h))
		if _, dup := t.index[key]; !dup {
			t.index[key] = i
		}
	}

	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read row: %w", err)
		}
		if blank(rec) {
			continue
		}
		line, _ := cr.FieldPos(0)
		t.rows = append(t.rows, rec)
		t.lines = append(t.lines, line)
	}

	return t, nil
}

// sniffDelimiter picks ';' or ',' from whichever is more frequent in the header line.
func sniffDelimiter(headerLine string) rune {
	if strings.Count(headerLine, ";") > strings.Count(headerLine, ",") {
		return ';'
	}
	return ','
}

// col returns the index of the first matching column alias, or -1.
func (t *table) col(aliases ...string) int {
	for _, a := range aliases {
		if i, ok := t.index[a]; ok {
			return i
		}
	}
	return -1
}

func (t *table) require(what string, aliases ...string) (int, error) {
	i := t.col(aliases...)
	if i < 0 {
		return -1, fmt.Errorf("missing %s column (want one of %s)", what, strings.Join(aliases, ", "))
	}
	return i, nil
}

func field(rec []string, i int) string {
	if i < 0 || i >= len(rec) {
		return ""
	}
	return strings.TrimSpace(rec[i])
}

func blank(rec []string) bool {
	for _, f := range rec {
		if strings.TrimSpace(f) != "" {
			return false
		}
	}
	return true
}

// parseDecimal accepts both "12.5" and the European "12,5".
func parseDecimal(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, errors.New("empty value")
	}
	if !strings.Contains(s, ".") {
		s = strings.Replace(s, ",", ".", 1)
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, err
	}
	return v, nil
}

func parseFinite(s string) (float64, bool) {
	v, err := parseDecimal(s)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}

var timestampLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04Z07:00",
	"2006-01-02 15:04:05Z07:00",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"02-01-2006 15:04:05",
	"02-01-2006 15:04",
	"2006-01-02",
}

// parseTimestamp tries the layouts seen in operator exports; zone-less values are UTC.
func parseTimestamp(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range timestampLayouts {
		if ts, err := time.Parse(layout, s); err == nil {
			return ts, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized timestamp %q", s)
}
