package commands

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/modekit/modekit/internal/mode"
)

var listSource string

var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List all modes",
	Long: `List every mode in the registry in authoring order: built-ins first,
then global and project definitions.`,
	RunE: runList,
}

func init() {
	listCmd.Flags().StringVar(&listSource, "source", "", "Only modes from this source (built-in|global|project)")
}

func runList(cmd *cobra.Command, args []string) error {
	registry, _, _, _, err := setup()
	if err != nil {
		return err
	}

	modes := registry.List()
	if listSource != "" {
		modes = registry.ListBySource(mode.Source(listSource))
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "SLUG\tNAME\tSOURCE\tCAPABILITIES\t")
	for _, m := range modes {
		caps := make([]string, len(m.Capabilities))
		for i, c := range m.Capabilities {
			caps[i] = string(c)
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t\n", m.Slug, m.Name, m.Source, strings.Join(caps, ", "))
	}

	return w.Flush()
}
