// Package analysis computes descriptive statistics over a games dataset.
//
// # Analyzer
//
// The Analyzer loads a file once and answers queries about it:
//
//	a := analysis.New("steam_games.csv", dataset.DefaultOptions(), func(event analysis.ProgressEvent) {
//	    fmt.Println(event.Message)
//	})
//
//	free, paid := a.PercentFreeVsPaid()
//	year, count, ok := a.ModeReleaseYear()
//	avg := a.AveragePaidPrice()
//
// A missing or unreadable file is reported through the callback and the
// analyzer continues with an empty dataset.
//
// # Queries
//
// The queries are also available as plain functions over a
// *model.Dataset. They do no I/O and never fail:
//   - PercentFreeVsPaid: share of free (price 0) and paid games
//   - ModeReleaseYear: most common release year, ties to the earliest seen
//   - AveragePaidPrice: mean price of games with a positive price
//   - YearCounts, TopYears: per-year histogram
//   - Summarize: all of the above in a Summary
//
// Percentages and averages are rounded half away from zero to two decimals.
package analysis
