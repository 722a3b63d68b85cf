package model

// Default column names of the Steam games export.
const (
	ColumnPrice       = "Price"
	ColumnReleaseDate = "Release date"
)

// yearWidth is the number of trailing characters of a release date that
// hold the year.
const yearWidth = 4

// Record represents one row of the games table.
//
// Record keeps every raw field of the row so callers can look up columns
// the analyzer does not use. The two fields the analyzer does use are
// coerced once, when the record is built:
//   - Price holds the parsed value of the price column
//   - ReleaseDate holds the raw release date text
//
// Example:
//
//	rec := NewRecord(map[string]string{"Name": "Portal", "Price": "9.99", "Release date": "Oct 9, 2007"}, 9.99, "Oct 9, 2007")
//	year, ok := rec.Year() // "2007", true
type Record struct {
	// Fields maps column name to raw cell value.
	Fields map[string]string

	// Price is the numeric value of the price column.
	Price float64

	// ReleaseDate is the free-text release date, e.g. "Oct 21, 2008".
	ReleaseDate string
}

// NewRecord creates a Record from raw fields and the already coerced values.
//
// The fields map is copied so later changes by the caller do not leak into
// the dataset.
func NewRecord(fields map[string]string, price float64, releaseDate string) Record {
	copied := make(map[string]string, len(fields))
	for k, v := range fields {
		copied[k] = v
	}
	return Record{
		Fields:      copied,
		Price:       price,
		ReleaseDate: releaseDate,
	}
}

// Get returns the raw value of a column and whether the column exists.
func (r Record) Get(column string) (string, bool) {
	v, ok := r.Fields[column]
	return v, ok
}

// IsFree returns true if the game costs nothing.
func (r Record) IsFree() bool {
	return r.Price == 0
}

// IsPaid returns true if the game has a positive price.
//
// Note that IsPaid is not the negation of IsFree: a negative price is
// neither free nor paid for averaging purposes.
func (r Record) IsPaid() bool {
	return r.Price > 0
}

// Year returns the release year of the record.
//
// The year is the last four characters of ReleaseDate. It is only
// reported when all four are ASCII digits, so values like "TBD" or
// "Coming soon" yield ("", false).
//
// Example:
//
//	Record{ReleaseDate: "Oct 21, 2008"}.Year() // "2008", true
//	Record{ReleaseDate: "TBD"}.Year()          // "", false
func (r Record) Year() (string, bool) {
	return ExtractYear(r.ReleaseDate)
}

// ExtractYear returns the trailing four-digit year of a date string.
func ExtractYear(date string) (string, bool) {
	runes := []rune(date)
	if len(runes) < yearWidth {
		return "", false
	}
	tail := runes[len(runes)-yearWidth:]
	for _, c := range tail {
		if c < '0' || c > '9' {
			return "", false
		}
	}
	return string(tail), true
}
