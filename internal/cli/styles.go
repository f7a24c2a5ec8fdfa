package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/odfkit/odsgen/pkg/style"
)

// stylesCommand creates the styles command listing the built-in catalog.
func (c *CLI) stylesCommand() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "styles",
		Short: "List the built-in style catalog",
		Long: `List the styles every document can reference by name, with the
style family each belongs to. Cell values may name table-cell styles;
rows and tabs may also name table-row styles.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStyles(asJSON)
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "output as JSON")

	return cmd
}

// styleEntry is the JSON shape of one catalog row.
type styleEntry struct {
	Name   string `json:"name"`
	Family string `json:"family"`
}

func runStyles(asJSON bool) error {
	reg := style.Builtin()
	entries := make([]styleEntry, 0, reg.Len())
	for _, name := range reg.Names() {
		def, _ := reg.Lookup(name)
		entries = append(entries, styleEntry{Name: name, Family: string(def.Family)})
	}

	if asJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(entries)
	}

	headerStyle := lipgloss.NewStyle().Bold(true)
	t := table.New().
		Border(lipgloss.NormalBorder()).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle.Padding(0, 1)
			}
			return lipgloss.NewStyle().Padding(0, 1)
		}).
		Headers("NAME", "FAMILY")
	for _, e := range entries {
		t.Row(e.Name, e.Family)
	}
	fmt.Println(t.Render())
	return nil
}
