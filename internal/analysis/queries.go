package analysis

import (
	"math"
	"slices"

	"github.com/aclements/go-moremath/stats"
	"github.com/handiism/steam-stats/internal/model"
)

// YearCount is the number of games released in one year.
type YearCount struct {
	Year  string
	Count int
}

// Summary bundles every statistic computed over a dataset.
type Summary struct {
	Total int
	Free  int
	Paid  int

	FreePercent float64
	PaidPercent float64

	// Year is the most common release year. HasYear is false when no
	// record has a valid year.
	Year      string
	YearCount int
	HasYear   bool

	// Years holds the per-year counts in first-seen order.
	Years []YearCount

	// ExcludedYears counts records whose release date has no year.
	ExcludedYears int

	AveragePaidPrice float64
}

// PercentFreeVsPaid returns the share of free and paid games, in percent,
// rounded to two decimals. A game is free when its price is exactly zero.
// An empty dataset yields (0, 0).
func PercentFreeVsPaid(ds *model.Dataset) (freePercent, paidPercent float64) {
	total := ds.Len()
	if total == 0 {
		return 0, 0
	}

	free := countFree(ds)
	paid := total - free

	return round2(percent(free, total)), round2(percent(paid, total))
}

// YearCounts returns how many games were released per year, in the order
// each year first appears in the dataset. Records without a valid year are
// skipped.
func YearCounts(ds *model.Dataset) []YearCount {
	index := make(map[string]int)
	var counts []YearCount

	for _, rec := range ds.All() {
		year, ok := rec.Year()
		if !ok {
			continue
		}
		i, seen := index[year]
		if !seen {
			i = len(counts)
			index[year] = i
			counts = append(counts, YearCount{Year: year})
		}
		counts[i].Count++
	}

	return counts
}

// ModeReleaseYear returns the year with the most releases and its count.
//
// Ties go to the year that appears first in the dataset. ok is false when
// no record has a valid year.
func ModeReleaseYear(ds *model.Dataset) (year string, count int, ok bool) {
	for _, yc := range YearCounts(ds) {
		if yc.Count > count {
			year, count, ok = yc.Year, yc.Count, true
		}
	}
	return year, count, ok
}

// TopYears returns at most n year counts ordered by count, highest first.
// Years with equal counts keep their first-seen order. n <= 0 means no limit.
func TopYears(counts []YearCount, n int) []YearCount {
	sorted := slices.Clone(counts)
	slices.SortStableFunc(sorted, func(a, b YearCount) int {
		return b.Count - a.Count
	})
	if n > 0 && len(sorted) > n {
		sorted = sorted[:n]
	}
	return sorted
}

// AveragePaidPrice returns the mean price of games with a positive price,
// rounded to two decimals, or 0 when there are none.
func AveragePaidPrice(ds *model.Dataset) float64 {
	var prices []float64
	for _, rec := range ds.All() {
		if rec.IsPaid() {
			prices = append(prices, rec.Price)
		}
	}
	if len(prices) == 0 {
		return 0
	}
	return round2(stats.Mean(prices))
}

// Summarize computes all statistics in one call.
func Summarize(ds *model.Dataset) Summary {
	s := Summary{Total: ds.Len()}

	s.Free = countFree(ds)
	s.Paid = s.Total - s.Free
	s.FreePercent, s.PaidPercent = PercentFreeVsPaid(ds)

	s.Year, s.YearCount, s.HasYear = ModeReleaseYear(ds)
	s.Years = YearCounts(ds)
	valid := 0
	for _, yc := range s.Years {
		valid += yc.Count
	}
	s.ExcludedYears = s.Total - valid

	s.AveragePaidPrice = AveragePaidPrice(ds)

	return s
}

func countFree(ds *model.Dataset) int {
	n := 0
	for _, rec := range ds.All() {
		if rec.IsFree() {
			n++
		}
	}
	return n
}

func percent(part, total int) float64 {
	return float64(part) / float64(total) * 100
}

// round2 rounds half away from zero to two decimals.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
