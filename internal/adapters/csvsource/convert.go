package csvsource

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
	"voltage-room-service/internal/domain"
	"voltage-room-service/internal/geo/rd"
)

// ConvertTable copies a CSV from r to w, appending latitude and longitude
// columns computed from the RD columns xCol and yCol. Rows without usable
// RD values get empty coordinates and are counted in skipped.
// The output uses the input's delimiter.
func ConvertTable(r io.Reader, w io.Writer, xCol, yCol string, convert rd.Converter) (rows, skipped int, err error) {
	t, err := readTable(r)
	if err != nil {
		return 0, 0, fmt.Errorf("convert table: %w", err)
	}

	xi, err := t.require("x", strings.ToLower(xCol))
	if err != nil {
		return 0, 0, fmt.Errorf("convert table: %w", err)
	}
	yi, err := t.require("y", strings.ToLower(yCol))
	if err != nil {
		return 0, 0, fmt.Errorf("convert table: %w", err)
	}

	cw := csv.NewWriter(w)
	cw.Comma = t.comma

	if err := cw.Write(append(append([]string{}, t.header...), "latitude", "longitude")); err != nil {
		return 0, 0, fmt.Errorf("convert table: write header: %w", err)
	}

	for _, rec := range t.rows {
		lat, lon := "", ""
		var c *domain.Coordinates
		x, okX := parseFinite(field(rec, xi))
		y, okY := parseFinite(field(rec, yi))
		if okX && okY {
			c = place(convert, x, y)
		}
		if c != nil {
			lat = strconv.FormatFloat(c.Lat, 'f', -1, 64)
			lon = strconv.FormatFloat(c.Lon, 'f', -1, 64)
		} else {
			skipped++
		}

		out := make([]string, 0, len(t.header)+2)
		out = append(out, rec...)
		for len(out) < len(t.header) {
			out = append(out, "")
		}
		out = append(out, lat, lon)
		if err := cw.Write(out); err != nil {
			return rows, skipped, fmt.Errorf("convert table: write row: %w", err)
		}
		rows++
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return rows, skipped, fmt.Errorf("convert table: flush: %w", err)
	}
	return rows, skipped, nil
}
