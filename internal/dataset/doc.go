// Package dataset loads game listings from delimited text files.
//
// # Loading
//
//	ds, err := dataset.Load("steam_games.csv", dataset.DefaultOptions())
//	if errors.Is(err, dataset.ErrFileNotFound) {
//	    // ds is empty, report and carry on
//	}
//
// The first row is the header. Every following row becomes one
// model.Record, in file order. The price column is parsed as a float and
// a bad value rejects the whole file with a *ParseError.
//
// # Input Formats
//
// The loader accepts:
//   - Plain UTF-8 text, with or without a byte order mark
//   - Gzip-compressed text (".gz")
//   - Zstandard-compressed text (".zst")
package dataset
