package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/handiism/steam-stats/internal/model"
	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

var (
	// ErrFileNotFound is returned when the data file does not exist.
	// Errors wrapping it also match fs.ErrNotExist.
	ErrFileNotFound = errors.New("data file not found")

	// ErrMissingColumn is returned when the header lacks a required column.
	ErrMissingColumn = errors.New("missing required column")

	// ErrMalformedPrice is returned when a price cell is not a number.
	ErrMalformedPrice = errors.New("malformed price")

	// ErrShortRow is returned when a row ends before a required column.
	ErrShortRow = errors.New("row too short")
)

// ParseError describes a cell that could not be coerced.
type ParseError struct {
	// Line is the 1-based line of the cell in the input file.
	Line int

	// Column is the header name of the cell.
	Column string

	// Value is the raw cell content.
	Value string

	// Err is the classification, e.g. ErrMalformedPrice.
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d: column %q: %v: %q", e.Line, e.Column, e.Err, e.Value)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Options controls how a file is parsed.
type Options struct {
	// Delimiter separates fields. Defaults to ','.
	Delimiter rune

	// PriceColumn is the header name of the price column.
	PriceColumn string

	// ReleaseDateColumn is the header name of the release date column.
	ReleaseDateColumn string
}

// DefaultOptions returns the options matching the Steam games export.
func DefaultOptions() Options {
	return Options{
		Delimiter:         ',',
		PriceColumn:       model.ColumnPrice,
		ReleaseDateColumn: model.ColumnReleaseDate,
	}
}

// WithDefaults fills unset fields from DefaultOptions.
func (o Options) WithDefaults() Options {
	def := DefaultOptions()
	if o.Delimiter == 0 {
		o.Delimiter = def.Delimiter
	}
	if o.PriceColumn == "" {
		o.PriceColumn = def.PriceColumn
	}
	if o.ReleaseDateColumn == "" {
		o.ReleaseDateColumn = def.ReleaseDateColumn
	}
	return o
}

// Load reads the file at path into a Dataset.
//
// The file is read in a single pass and closed before Load returns.
// Files ending in ".gz" or ".zst" are decompressed on the fly, and a
// leading UTF-8 byte order mark is ignored.
//
// Load never returns a nil dataset. On error the dataset is empty and the
// error is one of:
//   - ErrFileNotFound (also matches fs.ErrNotExist)
//   - ErrMissingColumn
//   - a *ParseError wrapping ErrMalformedPrice or ErrShortRow
//   - any other I/O or CSV error, wrapped
//
// A file with no header at all yields an empty dataset and no error.
func Load(path string, opts Options) (*model.Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return model.Empty(), fmt.Errorf("%w: %w", ErrFileNotFound, err)
		}
		return model.Empty(), fmt.Errorf("opening data file: %w", err)
	}
	defer f.Close()

	r, closeFn, err := decompress(path, f)
	if err != nil {
		return model.Empty(), err
	}
	defer closeFn()

	records, err := Parse(r, opts)
	if err != nil {
		return model.Empty(), err
	}
	return model.NewDataset(records), nil
}

// Parse reads delimited text with a header row from r and returns one
// record per data row, in input order.
func Parse(r io.Reader, opts Options) ([]model.Record, error) {
	opts = opts.WithDefaults()

	// Strip a UTF-8 BOM if present. Spreadsheet exports on Windows add one.
	r = transform.NewReader(r, unicode.BOMOverride(unicode.UTF8.NewDecoder()))

	// Rows may carry more or fewer cells than the header and quotes may
	// appear inside unquoted cells. Only the required columns must exist.
	reader := csv.NewReader(r)
	reader.Comma = opts.Delimiter
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	header, err := reader.Read()
	if err == io.EOF {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading header: %w", err)
	}

	columns := make([]string, len(header))
	index := make(map[string]int, len(header))
	for i, h := range header {
		columns[i] = strings.TrimSpace(h)
		index[columns[i]] = i
	}

	priceIdx, ok := index[opts.PriceColumn]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrMissingColumn, opts.PriceColumn)
	}
	dateIdx, ok := index[opts.ReleaseDateColumn]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrMissingColumn, opts.ReleaseDateColumn)
	}

	var records []model.Record
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading row %d: %w", len(records)+1, err)
		}

		if missing, short := shortColumn(row, priceIdx, dateIdx, opts); short {
			line, _ := reader.FieldPos(0)
			return nil, &ParseError{
				Line:   line,
				Column: missing,
				Err:    ErrShortRow,
			}
		}

		// Cells past the last header column are dropped.
		fields := make(map[string]string, len(columns))
		for i, val := range row {
			if i >= len(columns) {
				break
			}
			fields[columns[i]] = val
		}

		rawPrice := row[priceIdx]
		price, err := strconv.ParseFloat(strings.TrimSpace(rawPrice), 64)
		if err != nil {
			line, _ := reader.FieldPos(priceIdx)
			return nil, &ParseError{
				Line:   line,
				Column: opts.PriceColumn,
				Value:  rawPrice,
				Err:    ErrMalformedPrice,
			}
		}

		records = append(records, model.NewRecord(fields, price, row[dateIdx]))
	}

	return records, nil
}

// shortColumn reports the first required column a row does not reach.
func shortColumn(row []string, priceIdx, dateIdx int, opts Options) (string, bool) {
	switch {
	case priceIdx >= len(row):
		return opts.PriceColumn, true
	case dateIdx >= len(row):
		return opts.ReleaseDateColumn, true
	}
	return "", false
}

// decompress wraps f in a decompressor chosen by the file extension.
func decompress(path string, f io.Reader) (io.Reader, func(), error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".gz":
		gz, err := gzip.NewReader(f)
		if err != nil {
			return nil, nil, fmt.Errorf("opening gzip stream: %w", err)
		}
		return gz, func() { gz.Close() }, nil
	case ".zst":
		dec, err := zstd.NewReader(f)
		if err != nil {
			return nil, nil, fmt.Errorf("opening zstd stream: %w", err)
		}
		return dec, dec.Close, nil
	default:
		return f, func() {}, nil
	}
}
