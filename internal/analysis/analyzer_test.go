package analysis

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/handiism/steam-stats/internal/dataset"
)

type eventLog struct {
	events []ProgressEvent
}

func (l *eventLog) record(event ProgressEvent) {
	l.events = append(l.events, event)
}

func (l *eventLog) find(level ProgressLevel) (ProgressEvent, bool) {
	for _, e := range l.events {
		if e.Level == level {
			return e, true
		}
	}
	return ProgressEvent{}, false
}

func writeCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "games.csv")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}
	return path
}

func TestNew_LoadsFile(t *testing.T) {
	path := writeCSV(t, `Name,Price,Release date
A,10.00,"Jan 1, 2020"
B,0,"Feb 1, 2020"
C,20.00,"Mar 1, 2021"
D,0,TBD
`)
	var log eventLog

	a := New(path, dataset.DefaultOptions(), log.record)

	if a.Err() != nil {
		t.Fatalf("unexpected error: %v", a.Err())
	}
	if a.Dataset().Len() != 4 {
		t.Fatalf("got %d records, want 4", a.Dataset().Len())
	}
	if _, ok := log.find(LevelSuccess); !ok {
		t.Error("expected a success event after loading")
	}
	info, ok := log.find(LevelInfo)
	if !ok || !strings.Contains(info.Message, `"Price"`) || !strings.Contains(info.Message, `"Release date"`) {
		t.Errorf("info event = %+v, want the column mapping", info)
	}
	if a.Path() != path {
		t.Errorf("Path() = %q, want %q", a.Path(), path)
	}

	free, paid := a.PercentFreeVsPaid()
	if free != 50 || paid != 50 {
		t.Errorf("PercentFreeVsPaid() = (%v, %v), want (50, 50)", free, paid)
	}
	if year, count, ok := a.ModeReleaseYear(); year != "2020" || count != 2 || !ok {
		t.Errorf("ModeReleaseYear() = (%q, %d, %v), want (2020, 2, true)", year, count, ok)
	}
	if avg := a.AveragePaidPrice(); avg != 15 {
		t.Errorf("AveragePaidPrice() = %v, want 15", avg)
	}
	if got := len(a.YearCounts()); got != 2 {
		t.Errorf("YearCounts() has %d entries, want 2", got)
	}

	s := a.Summary()
	if s.ExcludedYears != 1 {
		t.Errorf("ExcludedYears = %d, want 1", s.ExcludedYears)
	}
	if _, ok := log.find(LevelWarning); !ok {
		t.Error("expected a warning about the record without a year")
	}
}

func TestNew_MissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nope.csv")
	var log eventLog

	a := New(path, dataset.DefaultOptions(), log.record)

	if !errors.Is(a.Err(), dataset.ErrFileNotFound) {
		t.Errorf("Err() = %v, want ErrFileNotFound", a.Err())
	}
	event, ok := log.find(LevelError)
	if !ok {
		t.Fatal("expected an error event")
	}
	if !strings.Contains(event.Message, "não encontrado") || !strings.Contains(event.Message, path) {
		t.Errorf("error message = %q", event.Message)
	}

	free, paid := a.PercentFreeVsPaid()
	if free != 0 || paid != 0 {
		t.Errorf("PercentFreeVsPaid() = (%v, %v), want (0, 0)", free, paid)
	}
	if avg := a.AveragePaidPrice(); avg != 0 {
		t.Errorf("AveragePaidPrice() = %v, want 0", avg)
	}
	if _, _, ok := a.ModeReleaseYear(); ok {
		t.Error("ModeReleaseYear() should report no year")
	}
}

func TestNew_MalformedPrice(t *testing.T) {
	path := writeCSV(t, "Name,Price,Release date\nA,abc,2020\n")
	var log eventLog

	a := New(path, dataset.DefaultOptions(), log.record)

	if !errors.Is(a.Err(), dataset.ErrMalformedPrice) {
		t.Errorf("Err() = %v, want ErrMalformedPrice", a.Err())
	}
	event, ok := log.find(LevelError)
	if !ok || !strings.HasPrefix(event.Message, "Erro ao abrir o arquivo:") {
		t.Errorf("error event = %+v", event)
	}
	if a.Dataset().Len() != 0 {
		t.Errorf("dataset should be empty, has %d records", a.Dataset().Len())
	}
}

func TestNew_NilCallback(t *testing.T) {
	a := New(filepath.Join(t.TempDir(), "nope.csv"), dataset.DefaultOptions(), nil)
	if a.Summary().Total != 0 {
		t.Error("expected empty summary")
	}
}
