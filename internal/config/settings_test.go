package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	settings, err := Load(filepath.Join(t.TempDir(), "config.json"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if settings.DataPath != DefaultDataFile {
		t.Errorf("DataPath = %q, want %q", settings.DataPath, DefaultDataFile)
	}
	if settings.TopYears != 10 {
		t.Errorf("TopYears = %d, want 10", settings.TopYears)
	}
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte(`{"delimiter": ";", "verbose": true}`), 0644); err != nil {
		t.Fatal(err)
	}

	settings, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if settings.Delimiter != ";" || !settings.Verbose {
		t.Errorf("overrides not applied: %+v", settings)
	}
	if settings.PriceColumn != "Price" {
		t.Errorf("PriceColumn = %q, want default", settings.PriceColumn)
	}
}

func TestLoad_InvalidJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte(`{not json`), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(path); err == nil {
		t.Error("expected an error for invalid JSON")
	}
}

func TestSave_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.json")

	settings := DefaultSettings()
	settings.DataPath = "/data/games.csv.zst"
	settings.TopYears = 3

	if err := settings.Save(path); err != nil {
		t.Fatalf("Save: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if *loaded != *settings {
		t.Errorf("round trip mismatch: got %+v, want %+v", loaded, settings)
	}
}

func TestToLoadOptions(t *testing.T) {
	tests := []struct {
		delimiter string
		want      rune
	}{
		{",", ','},
		{";", ';'},
		{"\t", '\t'},
		{"", 0},
		{";;", 0},
	}

	for _, tt := range tests {
		t.Run(tt.delimiter, func(t *testing.T) {
			s := DefaultSettings()
			s.Delimiter = tt.delimiter
			if got := s.ToLoadOptions().Delimiter; got != tt.want {
				t.Errorf("Delimiter = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestResolvePath(t *testing.T) {
	exeDir := t.TempDir()
	if err := os.WriteFile(filepath.Join(exeDir, "shipped.csv"), nil, 0644); err != nil {
		t.Fatal(err)
	}
	abs := filepath.Join(t.TempDir(), "abs.csv")

	tests := []struct {
		name string
		path string
		want string
	}{
		{"absolute unchanged", abs, abs},
		{"found next to executable", "shipped.csv", filepath.Join(exeDir, "shipped.csv")},
		{"falls back to working directory", "other.csv", "other.csv"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := resolvePath(tt.path, exeDir); got != tt.want {
				t.Errorf("resolvePath(%q) = %q, want %q", tt.path, got, tt.want)
			}
		})
	}
}
