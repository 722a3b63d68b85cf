package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"unicode/utf8"

	"github.com/handiism/steam-stats/internal/dataset"
	"github.com/handiism/steam-stats/internal/model"
)

// DefaultDataFile is the file analyzed when nothing else is configured.
const DefaultDataFile = "TesteDadosSteam.csv"

// Settings holds all configuration options.
type Settings struct {
	// Input settings
	DataPath          string `json:"data_path"`
	Delimiter         string `json:"delimiter"`
	PriceColumn       string `json:"price_column"`
	ReleaseDateColumn string `json:"release_date_column"`

	// Display settings
	TopYears int  `json:"top_years"`
	Verbose  bool `json:"verbose"`
}

// DefaultSettings returns settings with default values.
func DefaultSettings() *Settings {
	return &Settings{
		DataPath:          DefaultDataFile,
		Delimiter:         ",",
		PriceColumn:       model.ColumnPrice,
		ReleaseDateColumn: model.ColumnReleaseDate,

		TopYears: 10,
		Verbose:  false,
	}
}

// Load reads settings from a JSON file.
func Load(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultSettings(), nil
		}
		return nil, err
	}

	settings := DefaultSettings()
	if err := json.Unmarshal(data, settings); err != nil {
		return nil, err
	}

	return settings, nil
}

// Save writes settings to a JSON file.
func (s *Settings) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// ToLoadOptions converts settings to dataset.Options.
func (s *Settings) ToLoadOptions() dataset.Options {
	opts := dataset.Options{
		PriceColumn:       s.PriceColumn,
		ReleaseDateColumn: s.ReleaseDateColumn,
	}
	if r, size := utf8.DecodeRuneInString(s.Delimiter); r != utf8.RuneError && size == len(s.Delimiter) {
		opts.Delimiter = r
	}
	return opts
}

// ResolveDataPath returns the path of the data file to analyze.
//
// Absolute paths are returned unchanged. A relative path is looked up next
// to the running executable first, so the program finds a data file shipped
// alongside it, and otherwise taken relative to the working directory.
func (s *Settings) ResolveDataPath() string {
	return resolvePath(s.DataPath, executableDir())
}

func resolvePath(path, exeDir string) string {
	if path == "" || filepath.IsAbs(path) {
		return path
	}
	if exeDir != "" {
		candidate := filepath.Join(exeDir, path)
		if _, err := os.Stat(candidate); err == nil {
			return candidate
		}
	}
	return path
}

func executableDir() string {
	exe, err := os.Executable()
	if err != nil {
		return ""
	}
	return filepath.Dir(exe)
}
