// Package config provides configuration management for steam-stats.
//
// This package handles:
//   - Loading and saving settings from JSON files
//   - Default configuration values
//   - Conversion to dataset.Options for the loader
//   - Resolving the data file path
//
// # Default Settings
//
//	settings := config.DefaultSettings()
//	// Reads TesteDadosSteam.csv next to the executable
//	// Columns "Price" and "Release date", comma separated
//
// # Loading from File
//
//	settings, err := config.Load("/path/to/config.json")
//	if err != nil {
//	    // Uses defaults if file doesn't exist
//	}
//
// # Example File
//
//	{
//	  "data_path": "steam_games.csv.gz",
//	  "delimiter": ";",
//	  "price_column": "Price",
//	  "release_date_column": "Release date",
//	  "top_years": 5,
//	  "verbose": true
//	}
package config
