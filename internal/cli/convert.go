package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	apperr "github.com/odfkit/odsgen/pkg/errors"
	"github.com/odfkit/odsgen/pkg/pipeline"
)

// convertCommand creates the convert command.
func (c *CLI) convertCommand() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "convert [input_file] [output_file]",
		Short: "Convert a description file to an .ods spreadsheet",
		Long: `Convert a JSON, YAML, or TOML description to an .ods spreadsheet.

The input format is detected from the file extension unless --format is
given or the config file sets one. Use "-" as the input file to read
from stdin, or as the output file to write the archive to stdout.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := resolveFormat(cmd, format)
			if err != nil {
				return err
			}
			return c.runConvert(cmd.Context(), args[0], args[1], f)
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", string(pipeline.FormatAuto),
		"input format: auto (default), json, yaml, toml")

	return cmd
}

// runConvert reads the input, runs the pipeline, and writes the archive.
func (c *CLI) runConvert(ctx context.Context, input, output string, format pipeline.Format) error {
	data, err := readInput(input)
	if err != nil {
		return err
	}
	if format == "" || format == pipeline.FormatAuto {
		if input != "-" {
			format = pipeline.DetectFormat(input)
		}
	}

	p := newProgress(c.Logger)
	result, err := pipeline.Convert(ctx, data, pipeline.Options{
		Format: format,
		Logger: c.Logger,
	})
	if err != nil {
		return err
	}

	if output == "-" {
		if _, err := os.Stdout.Write(result.ODS); err != nil {
			return fmt.Errorf("writing to stdout: %w", err)
		}
	} else if err := os.WriteFile(output, result.ODS, 0644); err != nil {
		return fmt.Errorf("writing %s: %w", output, err)
	}
	p.done(fmt.Sprintf("Wrote %s: %d tabs, %d rows, %d cells",
		output, result.Stats.Tabs, result.Stats.Rows, result.Stats.Cells))
	return nil
}

// readInput loads the description from a file, or from stdin for "-".
func readInput(path string) ([]byte, error) {
	if path == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return nil, fmt.Errorf("reading stdin: %w", err)
		}
		return data, nil
	}
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, apperr.New(apperr.ErrCodeFileNotFound, "input file not found: %s", path)
	}
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return data, nil
}
