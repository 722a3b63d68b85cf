package analysis

import (
	"errors"
	"fmt"

	"github.com/handiism/steam-stats/internal/dataset"
	"github.com/handiism/steam-stats/internal/model"
)

// ProgressLevel indicates the severity/type of a progress message.
type ProgressLevel int

const (
	LevelInfo ProgressLevel = iota
	LevelVerbose
	LevelWarning
	LevelError
	LevelSuccess
)

// ProgressEvent represents a message emitted while loading or analyzing.
type ProgressEvent struct {
	Message string
	Level   ProgressLevel
}

// Analyzer holds one loaded dataset and answers queries about it.
type Analyzer struct {
	path    string
	dataset *model.Dataset
	err     error

	onProgress func(ProgressEvent)
}

// New creates an Analyzer and loads the file at path right away.
//
// Load problems never stop the analyzer. They are reported through
// onProgress at LevelError and the analyzer continues with an empty
// dataset, so every query returns its zero result. Err returns the
// underlying error. onProgress may be nil.
func New(path string, opts dataset.Options, onProgress func(ProgressEvent)) *Analyzer {
	a := &Analyzer{
		path:       path,
		onProgress: onProgress,
	}

	a.progress(ProgressEvent{Message: fmt.Sprintf("Loading %s", path), Level: LevelVerbose})

	ds, err := dataset.Load(path, opts)
	a.dataset = ds
	a.err = err

	switch {
	case errors.Is(err, dataset.ErrFileNotFound):
		a.progress(ProgressEvent{Message: fmt.Sprintf("Erro: Arquivo '%s' não encontrado.", path), Level: LevelError})
	case err != nil:
		a.progress(ProgressEvent{Message: fmt.Sprintf("Erro ao abrir o arquivo: %v", err), Level: LevelError})
	default:
		cols := opts.WithDefaults()
		a.progress(ProgressEvent{
			Message: fmt.Sprintf("Columns: price %q, release date %q", cols.PriceColumn, cols.ReleaseDateColumn),
			Level:   LevelInfo,
		})
		a.progress(ProgressEvent{Message: fmt.Sprintf("Loaded %d records from %s", ds.Len(), path), Level: LevelSuccess})
	}

	return a
}

// Path returns the file the analyzer was loaded from.
func (a *Analyzer) Path() string {
	return a.path
}

// Err returns the load error, or nil if the file loaded cleanly.
func (a *Analyzer) Err() error {
	return a.err
}

// Dataset returns the loaded dataset. It is never nil.
func (a *Analyzer) Dataset() *model.Dataset {
	return a.dataset
}

// PercentFreeVsPaid returns the share of free and paid games.
func (a *Analyzer) PercentFreeVsPaid() (freePercent, paidPercent float64) {
	return PercentFreeVsPaid(a.dataset)
}

// ModeReleaseYear returns the year with the most releases.
func (a *Analyzer) ModeReleaseYear() (year string, count int, ok bool) {
	return ModeReleaseYear(a.dataset)
}

// AveragePaidPrice returns the mean price of paid games.
func (a *Analyzer) AveragePaidPrice() float64 {
	return AveragePaidPrice(a.dataset)
}

// YearCounts returns releases per year in first-seen order.
func (a *Analyzer) YearCounts() []YearCount {
	return YearCounts(a.dataset)
}

// Summary computes every statistic and reports a short recap.
func (a *Analyzer) Summary() Summary {
	s := Summarize(a.dataset)
	if s.ExcludedYears > 0 {
		a.progress(ProgressEvent{
			Message: fmt.Sprintf("%d record(s) without a release year were left out of the year count", s.ExcludedYears),
			Level:   LevelWarning,
		})
	}
	return s
}

func (a *Analyzer) progress(event ProgressEvent) {
	if a.onProgress != nil {
		a.onProgress(event)
	}
}
