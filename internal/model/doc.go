// Package model defines the core data structures used throughout
// the steam-stats application.
//
// # Record
//
// Record represents one row of the games table, with its raw fields and
// the coerced price and release date:
//
//	rec := model.NewRecord(fields, 9.99, "Oct 9, 2007")
//	fmt.Println(rec.IsPaid()) // true
//	year, ok := rec.Year()    // "2007", true
//
// # Dataset
//
// Dataset is the ordered, immutable collection of records loaded from one
// file:
//
//	ds := model.NewDataset(records)
//	for i, rec := range ds.All() {
//	    fmt.Println(i, rec.Price)
//	}
package model
