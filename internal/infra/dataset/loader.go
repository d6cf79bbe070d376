package dataset

import (
	"encoding/csv"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"

	"ozicme/internal/domain/entity"
	"ozicme/internal/errors"
)

// ErrNotArray is returned when a JSON dataset's top-level value is not an
// array. A non-array payload is a fatal load error for that source.
var ErrNotArray = errors.New("dataset payload is not an array")

// Loader reads one dataset file (JSON array or headered CSV) and produces
// normalized restaurant records.
type Loader struct {
	path string
}

// NewLoader creates a loader for the given dataset file. The format is
// chosen by extension: ".csv" is parsed as CSV, everything else as JSON.
func NewLoader(path string) *Loader {
	return &Loader{path: path}
}

// Load reads, parses and normalizes the whole dataset. Individual malformed
// rows become placeholder records; a file-level parse failure is returned as
// an error.
func (l *Loader) Load() ([]entity.Restaurant, error) {
	file, err := os.Open(l.path)
	if err != nil {
		return nil, errors.Wrap(err, "open dataset")
	}
	defer file.Close()

	var raws []RawRecord
	if strings.EqualFold(filepath.Ext(l.path), ".csv") {
		raws, err = DecodeCSV(file)
	} else {
		raws, err = DecodeJSON(file)
	}
	if err != nil {
		return nil, errors.Wrapf(err, "parse dataset %s", l.path)
	}

	return NormalizeAll(raws), nil
}

// DecodeJSON parses a JSON dataset. The top-level value must be an array;
// non-object elements decode to nil records, which normalize to
// placeholders.
func DecodeJSON(r io.Reader) ([]RawRecord, error) {
	var payload any
	if err := json.NewDecoder(r).Decode(&payload); err != nil {
		return nil, errors.Wrap(err, "decode json")
	}

	rows, ok := payload.([]any)
	if !ok {
		return nil, errors.WithStack(ErrNotArray)
	}

	raws := make([]RawRecord, 0, len(rows))
	for _, row := range rows {
		obj, _ := row.(map[string]any)
		raws = append(raws, RawRecord(obj))
	}

	return raws, nil
}

// DecodeCSV parses a headered CSV dataset (RFC 4180 quoting, UTF-8, optional
// BOM). Cells map to their trimmed header names; short rows simply omit the
// trailing columns.
func DecodeCSV(r io.Reader) ([]RawRecord, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return nil, errors.Wrap(err, "read csv header")
	}
	for i, name := range header {
		header[i] = strings.TrimSpace(strings.TrimPrefix(name, "\ufeff"))
	}

	var raws []RawRecord
	for {
		row, readErr := reader.Read()
		if errors.Is(readErr, io.EOF) {
			break
		}
		if readErr != nil {
			return nil, errors.Wrap(readErr, "read csv row")
		}

		raw := make(RawRecord, len(header))
		for i, cell := range row {
			if i >= len(header) || header[i] == "" {
				continue
			}
			raw[header[i]] = cell
		}
		raws = append(raws, raw)
	}

	return raws, nil
}
