package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/handiism/steam-stats/internal/analysis"
	"github.com/handiism/steam-stats/internal/config"
	"github.com/handiism/steam-stats/internal/report"
)

func main() {
	// Command line flags
	var (
		fileFlag    = flag.String("file", "", "CSV file to analyze (overrides config)")
		configFlag  = flag.String("config", "", "Path to config file")
		verboseFlag = flag.Bool("verbose", false, "Show verbose output")
		colorFlag   = flag.Bool("color", false, "Render the report in a styled box")
	)

	flag.Usage = func() {
		fmt.Fprintln(os.Stderr, "Steam Stats - Free vs. paid, busiest release year and average price")
		fmt.Fprintln(os.Stderr)
		fmt.Fprintln(os.Stderr, "Usage:")
		fmt.Fprintln(os.Stderr, "  steam-stats [-file games.csv] [options]")
		fmt.Fprintln(os.Stderr)
		fmt.Fprintln(os.Stderr, "For interactive mode, use: steam-tui")
		fmt.Fprintln(os.Stderr)
		flag.PrintDefaults()
	}

	flag.Parse()

	if flag.NArg() > 1 {
		flag.Usage()
		os.Exit(1)
	}

	// Load config
	settings := config.DefaultSettings()
	if *configFlag != "" {
		var err error
		settings, err = config.Load(*configFlag)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
	}

	// Apply flags
	if *fileFlag != "" {
		settings.DataPath = *fileFlag
	} else if flag.NArg() == 1 {
		settings.DataPath = flag.Arg(0)
	}
	if *verboseFlag {
		settings.Verbose = true
	}

	a := analysis.New(settings.ResolveDataPath(), settings.ToLoadOptions(), func(event analysis.ProgressEvent) {
		if event.Level == analysis.LevelVerbose && !settings.Verbose {
			return
		}

		prefix := ""
		switch event.Level {
		case analysis.LevelError:
			prefix = "❌ "
		case analysis.LevelWarning:
			prefix = "⚠️  "
		case analysis.LevelSuccess:
			prefix = "✅ "
		case analysis.LevelInfo:
			prefix = "ℹ️  "
		default:
			prefix = "   "
		}

		fmt.Fprintln(os.Stderr, prefix+event.Message)
	})

	summary := a.Summary()

	if *colorFlag {
		fmt.Println(report.Styled(summary))
		return
	}

	if err := report.Write(os.Stdout, summary); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing report: %v\n", err)
		os.Exit(1)
	}
}
