package model

import "iter"

// Dataset is an ordered, read-only collection of records.
//
// A Dataset is built once by the loader and never changes afterwards.
// Accessors hand out copies of the record slice, never the slice itself.
// The zero value is an empty dataset and is ready to use.
type Dataset struct {
	records []Record
}

// NewDataset creates a Dataset holding a copy of records, in order.
func NewDataset(records []Record) *Dataset {
	copied := make([]Record, len(records))
	copy(copied, records)
	return &Dataset{records: copied}
}

// Empty returns a dataset without records.
func Empty() *Dataset {
	return &Dataset{}
}

// Len returns the number of records.
func (d *Dataset) Len() int {
	if d == nil {
		return 0
	}
	return len(d.records)
}

// At returns the i-th record in file order. It panics if i is out of range.
func (d *Dataset) At(i int) Record {
	return d.records[i]
}

// Records returns a copy of all records in file order.
func (d *Dataset) Records() []Record {
	out := make([]Record, d.Len())
	if d != nil {
		copy(out, d.records)
	}
	return out
}

// All iterates over the records in file order together with their index.
func (d *Dataset) All() iter.Seq2[int, Record] {
	return func(yield func(int, Record) bool) {
		for i := 0; i < d.Len(); i++ {
			if !yield(i, d.records[i]) {
				return
			}
		}
	}
}
