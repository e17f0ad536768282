package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/FACorreiaa/geocity-bench/internal/types"
)

// Column headers exactly as they appear in the cities CSV export.
const (
	headerCountry    = "Country"
	headerCity       = "City"
	headerAccentCity = "Accent City"
	headerRegion     = "Region"
	headerLatitude   = "Latitude"
	headerLongitude  = "Longitude"
)

var requiredHeaders = []string{
	headerCountry,
	headerCity,
	headerAccentCity,
	headerRegion,
	headerLatitude,
	headerLongitude,
}

// CityReader streams CityRecord values from a cities CSV file. It is a
// single-pass iterator: call Next until it returns false, then check Err.
// A row that fails to parse stops the stream; there is no skip-and-continue.
type CityReader struct {
	file *os.File
	csv  *csv.Reader
	cols map[string]int
	cur  types.CityRecord
	line int
	err  error
}

// OpenCityFile opens path and reads its header row. Fields bind to columns
// by header name, so column order in the file does not matter.
func OpenCityFile(path string) (*CityReader, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open cities file %s: %w", path, err)
	}

	r := csv.NewReader(f)

	header, err := r.Read()
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to read header of %s: %w", path, err)
	}

	cols := make(map[string]int, len(header))
	for i, name := range header {
		cols[name] = i
	}
	for _, name := range requiredHeaders {
		if _, ok := cols[name]; !ok {
			f.Close()
			return nil, fmt.Errorf("cities file %s is missing column %q", path, name)
		}
	}

	return &CityReader{file: f, csv: r, cols: cols, line: 1}, nil
}

// Next advances to the following row. It returns false at end of input or
// on the first malformed row; distinguish the two with Err.
func (cr *CityReader) Next() bool {
	if cr.err != nil {
		return false
	}

	row, err := cr.csv.Read()
	if err == io.EOF {
		return false
	}
	cr.line++
	if err != nil {
		cr.err = fmt.Errorf("failed to read cities row at line %d: %w", cr.line, err)
		return false
	}

	lat, err := strconv.ParseFloat(row[cr.cols[headerLatitude]], 64)
	if err != nil {
		cr.err = fmt.Errorf("line %d: invalid latitude %q: %w", cr.line, row[cr.cols[headerLatitude]], err)
		return false
	}
	lon, err := strconv.ParseFloat(row[cr.cols[headerLongitude]], 64)
	if err != nil {
		cr.err = fmt.Errorf("line %d: invalid longitude %q: %w", cr.line, row[cr.cols[headerLongitude]], err)
		return false
	}

	cr.cur = types.CityRecord{
		Country:    row[cr.cols[headerCountry]],
		City:       row[cr.cols[headerCity]],
		AccentCity: row[cr.cols[headerAccentCity]],
		Region:     row[cr.cols[headerRegion]],
		Latitude:   lat,
		Longitude:  lon,
	}
	return true
}

// Record returns the row read by the last successful call to Next.
func (cr *CityReader) Record() types.CityRecord {
	return cr.cur
}

// Err reports the first error encountered while reading rows.
func (cr *CityReader) Err() error {
	return cr.err
}

// Close releases the underlying file. The reader is not restartable; a new
// pass requires reopening the file.
func (cr *CityReader) Close() error {
	return cr.file.Close()
}
