package dataset

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/pscheid92/tweetpulse/internal/domain"
	apperrors "github.com/pscheid92/tweetpulse/internal/errors"
)

const utf8BOM = "\ufeff"

// nullMarkers are the cell values read as missing, in addition to the empty cell.
var nullMarkers = map[string]struct{}{
	"#N/A": {}, "#N/A N/A": {}, "#NA": {}, "-1.#IND": {}, "-1.#QNAN": {}, "-NaN": {}, "-nan": {},
	"1.#IND": {}, "1.#QNAN": {}, "<NA>": {}, "N/A": {}, "NA": {}, "NULL": {}, "NaN": {},
	"None": {}, "n/a": {}, "nan": {}, "null": {},
}

func isNull(cell string) bool {
	if cell == "" {
		return true
	}
	_, ok := nullMarkers[cell]
	return ok
}

// CSVLoader reads a comma-separated export into records.
type CSVLoader struct {
	columns domain.Columns
}

func NewCSVLoader(columns domain.Columns) *CSVLoader {
	return &CSVLoader{columns: columns}
}

// Load opens path, parses every row and closes the file.
func (l *CSVLoader) Load(ctx context.Context, path string) ([]domain.Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, apperrors.InputError("failed to open dataset", err).WithField("path", path)
	}
	defer func() { _ = f.Close() }()

	records, err := l.Read(ctx, f)
	if err != nil {
		var structured *apperrors.Error
		if errors.As(err, &structured) {
			return nil, structured.WithField("path", path)
		}
		return nil, err
	}

	slog.DebugContext(ctx, "Dataset loaded", "path", path, "rows", len(records))
	return records, nil
}

// Read parses CSV content from r. The first row must be the header.
func (l *CSVLoader) Read(ctx context.Context, r io.Reader) ([]domain.Record, error) {
	cr := csv.NewReader(r)
	cr.ReuseRecord = true

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, apperrors.InputError("dataset is empty", domain.ErrEmptyDataset)
	}
	if err != nil {
		return nil, apperrors.InputError("failed to read header", err)
	}

	idx, err := l.resolve(header)
	if err != nil {
		return nil, err
	}

	var records []domain.Record
	for row := 1; ; row++ {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("dataset read aborted: %w", err)
		}

		fields, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, apperrors.InputError("malformed row", err).WithField("row", row)
		}

		rec, err := idx.record(row, fields)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}

	return records, nil
}

type columnIndex struct {
	text, likes, retweets, date int
	names                       domain.Columns
}

func (l *CSVLoader) resolve(header []string) (columnIndex, error) {
	positions := make(map[string]int, len(header))
	for i, name := range header {
		if i == 0 {
			name = strings.TrimPrefix(name, utf8BOM)
		}
		name = strings.TrimSpace(name)
		if _, dup := positions[name]; !dup {
			positions[name] = i
		}
	}

	lookup := func(name string) (int, error) {
		i, ok := positions[name]
		if !ok {
			return 0, apperrors.InputError(fmt.Sprintf("column %q not found", name), domain.ErrMissingColumn).
				WithField("column", name)
		}
		return i, nil
	}

	idx := columnIndex{names: l.columns}
	var err error
	if idx.text, err = lookup(l.columns.Text); err != nil {
		return idx, err
	}
	if idx.likes, err = lookup(l.columns.Likes); err != nil {
		return idx, err
	}
	if idx.retweets, err = lookup(l.columns.Retweets); err != nil {
		return idx, err
	}
	if idx.date, err = lookup(l.columns.Date); err != nil {
		return idx, err
	}
	return idx, nil
}

func (idx columnIndex) record(row int, fields []string) (domain.Record, error) {
	likes, err := parseCount(fields[idx.likes])
	if err != nil {
		return domain.Record{}, apperrors.InputError("invalid count", err).
			WithField("row", row).WithField("column", idx.names.Likes)
	}
	retweets, err := parseCount(fields[idx.retweets])
	if err != nil {
		return domain.Record{}, apperrors.InputError("invalid count", err).
			WithField("row", row).WithField("column", idx.names.Retweets)
	}

	rec := domain.Record{
		Row:      row,
		Likes:    likes,
		Retweets: retweets,
	}
	if text := fields[idx.text]; !isNull(text) {
		rec.Text = text
		rec.HasText = true
	}
	// date parsing also reads "NaT" as a missing timestamp
	if date := strings.TrimSpace(fields[idx.date]); !isNull(date) && date != "NaT" {
		rec.Date = date
	}
	return rec, nil
}

// parseCount accepts integer text and integral float text such as "12.0".
func parseCount(s string) (int64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, errors.New("empty value")
	}
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		return n, nil
	}

	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("%q is not a number", s)
	}
	if f != math.Trunc(f) || math.IsInf(f, 0) || math.IsNaN(f) {
		return 0, fmt.Errorf("%q is not a whole number", s)
	}
	return int64(f), nil
}
