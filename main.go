// Disk Mosaic scans a directory tree, measures true on-disk usage and
// lets the user explore the result as an interactive treemap.
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/MakeNowJust/heredoc/v2"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"
	"github.com/spf13/pflag"

	"github.com/kpouer/Disk-Mosaic/internal/settings"
	"github.com/kpouer/Disk-Mosaic/internal/ui"
)

var version = "dev"

func help() {
	fmt.Println(heredoc.Doc(`
		disk-mosaic shows where your disk space went: it scans a directory
		tree, computes physical on-disk sizes (sparse files count as 0) and
		renders the result as a zoomable squarified treemap.

		Usage:

			disk-mosaic [flags] [path]

		Positional Arguments:
		  path                   Directory to scan. Without it, a disk picker is shown.

		Keys:
		  arrows/hjkl select a block, Enter or mouse wheel down zooms in,
		  u or mouse wheel up zooms out, i ignores the selected path,
		  r rescans, q quits.

		Flags:
	`))
	pflag.PrintDefaults()
}

func run() error {
	var (
		ignores     []string
		maxDepth    int
		showVersion bool
	)

	pflag.StringSliceVarP(&ignores, "ignore", "i", nil, "Absolute paths to exclude from the scan (repeatable)")
	pflag.IntVarP(&maxDepth, "max-depth", "d", 0, "Maximum zoom depth (0=unlimited)")
	pflag.BoolVarP(&showVersion, "version", "v", false, "Show version and exit")

	pflag.CommandLine.SortFlags = false
	pflag.Usage = help
	pflag.Parse()

	if showVersion {
		fmt.Println(version)
		return nil
	}

	if maxDepth < 0 {
		return fmt.Errorf("max-depth cannot be negative")
	}

	if !isatty.IsTerminal(os.Stdout.Fd()) {
		return fmt.Errorf("disk-mosaic needs an interactive terminal")
	}

	if os.Getenv("DISKMOSAIC_DEBUG") != "" {
		f, err := tea.LogToFile("disk-mosaic.log", "debug")
		if err != nil {
			return fmt.Errorf("opening debug log: %w", err)
		}
		defer f.Close()
	} else {
		log.SetOutput(nullWriter{})
	}

	settingsPath, err := settings.DefaultPath()
	if err != nil {
		return err
	}
	cfg := settings.Load(settingsPath)
	for _, p := range ignores {
		cfg.AddIgnoredPath(p)
	}

	var path string
	if pflag.NArg() > 0 {
		path = pflag.Args()[0]
		if info, err := os.Stat(path); err != nil || !info.IsDir() {
			log.Printf("path provided on CLI is not a readable directory: %q", path)
			path = ""
		}
	}

	model := ui.InitialModel(ui.Options{
		Path:     path,
		MaxDepth: maxDepth,
		Settings: cfg,
	})

	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running program: %w", err)
	}
	return nil
}

// nullWriter drops stray log output that would corrupt the TUI.
type nullWriter struct{}

func (nullWriter) Write(p []byte) (int, error) { return len(p), nil }

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
