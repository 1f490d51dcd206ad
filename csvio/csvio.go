// Package csvio reads the comma-separated inputs accepted by routeopt:
// coordinate lists ("lat,lon" per line) and explicit integer cost matrices.
//
// Blank lines and lines starting with '#' are skipped. Every malformed row is
// reported with ErrMalformedRow wrapped together with its 1-based line number.
package csvio

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/routeopt/geo"
	"github.com/katalvlaran/routeopt/tsp"
)

// ErrMalformedRow indicates a row with the wrong number of fields or an
// unparsable value.
var ErrMalformedRow = errors.New("csvio: malformed row")

func newReader(r io.Reader) *csv.Reader {
	cr := csv.NewReader(r)
	cr.Comment = '#'
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true
	cr.ReuseRecord = true

	return cr
}

// each calls fn for every record of r with the record's line number.
func each(r io.Reader, fn func(line int, rec []string) error) error {
	cr := newReader(r)
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			var pe *csv.ParseError
			if errors.As(err, &pe) {
				return fmt.Errorf("%w: line %d: %v", ErrMalformedRow, pe.Line, pe.Err)
			}
			return err
		}
		line, _ := cr.FieldPos(0)
		if err = fn(line, rec); err != nil {
			return err
		}
	}
}

// ReadPoints parses one "lat,lon" pair per row.
func ReadPoints(r io.Reader) ([]geo.Point, error) {
	var pts []geo.Point
	err := each(r, func(line int, rec []string) error {
		if len(rec) != 2 {
			return fmt.Errorf("%w: line %d: want 2 fields (lat,lon), got %d", ErrMalformedRow, line, len(rec))
		}
		lat, err := parseFloat(rec[0])
		if err != nil {
			return fmt.Errorf("%w: line %d: latitude: %v", ErrMalformedRow, line, err)
		}
		lon, err := parseFloat(rec[1])
		if err != nil {
			return fmt.Errorf("%w: line %d: longitude: %v", ErrMalformedRow, line, err)
		}
		if lat < -90 || lat > 90 || lon < -180 || lon > 180 {
			return fmt.Errorf("%w: line %d: coordinate %g,%g out of range", ErrMalformedRow, line, lat, lon)
		}
		pts = append(pts, geo.Point{Lat: lat, Lon: lon})

		return nil
	})
	if err != nil {
		return nil, err
	}

	return pts, nil
}

// ReadPointsFile opens path and parses it with ReadPoints.
func ReadPointsFile(path string) ([]geo.Point, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("csvio: open input: %w", err)
	}
	defer f.Close()

	pts, err := ReadPoints(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return pts, nil
}

// ReadMatrix parses rows of integers into a cost matrix. All rows must have
// as many fields as the first one; squareness and the other matrix
// properties are left to tsp.ValidateMatrix.
func ReadMatrix(r io.Reader) (tsp.CostMatrix, error) {
	var m tsp.CostMatrix
	err := each(r, func(line int, rec []string) error {
		if len(m) > 0 && len(rec) != len(m[0]) {
			return fmt.Errorf("%w: line %d: want %d fields, got %d", ErrMalformedRow, line, len(m[0]), len(rec))
		}
		row := make([]int, len(rec))
		for j, field := range rec {
			v, err := strconv.Atoi(strings.TrimSpace(field))
			if err != nil {
				return fmt.Errorf("%w: line %d: column %d: %v", ErrMalformedRow, line, j+1, err)
			}
			row[j] = v
		}
		m = append(m, row)

		return nil
	})
	if err != nil {
		return nil, err
	}

	return m, nil
}

// ReadMatrixFile opens path and parses it with ReadMatrix.
func ReadMatrixFile(path string) (tsp.CostMatrix, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("csvio: open input: %w", err)
	}
	defer f.Close()

	m, err := ReadMatrix(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return m, nil
}

func parseFloat(s string) (float64, error) {
	return strconv.ParseFloat(strings.TrimSpace(s), 64)
}
