// Package cli implements the odsgen command-line interface.
//
// This package provides commands for converting JSON, YAML, or TOML
// document descriptions into .ods spreadsheets, listing the built-in
// style catalog, and running the conversion HTTP service. The CLI is
// built using cobra and supports verbose logging via the
// charmbracelet/log library.
//
// # Commands
//
//   - convert: Convert a description file to an .ods spreadsheet
//   - styles: List the built-in style catalog
//   - serve: Run the conversion HTTP service
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging.
package cli

import (
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/odfkit/odsgen/pkg/buildinfo"
	"github.com/odfkit/odsgen/pkg/cache"
	"github.com/odfkit/odsgen/pkg/pipeline"
)

// appName is the application name used for directories and display.
const appName = "odsgen"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands
// registered. Running the root with two arguments is a shortcut for
// convert, so `odsgen input.yaml output.ods` works directly.
func (c *CLI) RootCommand() *cobra.Command {
	var format string

	root := &cobra.Command{
		Use:   "odsgen [input_file output_file]",
		Short: "odsgen converts structured descriptions to .ods spreadsheets",
		Long: `odsgen converts a JSON, YAML, or TOML description of tabs, rows, and
cells into an OpenDocument spreadsheet, resolving style annotations
against a built-in catalog and user-provided style definitions.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		Args:         cobra.RangeArgs(0, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) != 2 {
				return cmd.Help()
			}
			f, err := resolveFormat(cmd, format)
			if err != nil {
				return err
			}
			return c.runConvert(cmd.Context(), args[0], args[1], f)
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.Flags().StringVarP(&format, "format", "f", string(pipeline.FormatAuto),
		"input format: auto (default), json, yaml, toml")

	root.AddCommand(c.convertCommand())
	root.AddCommand(c.stylesCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// newCache builds the conversion result cache for the HTTP service.
func newCache(dir string) (cache.Cache, error) {
	if dir == "" {
		var err error
		if dir, err = cacheDir(); err != nil {
			return cache.NewNullCache(), nil
		}
	}
	return cache.NewFileCache(dir)
}

// cacheDir returns the cache directory using XDG standard (~/.cache/odsgen/).
func cacheDir() (string, error) {
	if cacheHome := os.Getenv("XDG_CACHE_HOME"); cacheHome != "" {
		return filepath.Join(cacheHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cache", appName), nil
}
