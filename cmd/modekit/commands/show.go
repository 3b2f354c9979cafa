package commands

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

var showJSON bool

var showCmd = &cobra.Command{
	Use:   "show [slug]",
	Short: "Show one mode",
	Long:  `Show a mode by exact slug match, including its instruction body.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runShow,
}

func init() {
	showCmd.Flags().BoolVar(&showJSON, "json", false, "Print the mode record as JSON")
}

func runShow(cmd *cobra.Command, args []string) error {
	registry, _, _, _, err := setup()
	if err != nil {
		return err
	}

	m, err := registry.Get(args[0])
	if err != nil {
		return err
	}

	if showJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(m)
	}

	caps := make([]string, len(m.Capabilities))
	for i, c := range m.Capabilities {
		caps[i] = string(c)
	}

	fmt.Printf("%s (%s)\n", m.Name, m.Slug)
	fmt.Printf("source:       %s\n", m.Source)
	fmt.Printf("capabilities: %s\n", strings.Join(caps, ", "))
	if m.Edit != nil {
		fmt.Printf("edit only:    %s", m.Edit.Pattern)
		if m.Edit.Note != "" {
			fmt.Printf("  (%s)", m.Edit.Note)
		}
		fmt.Println()
	}
	if m.Description != "" {
		fmt.Printf("when to use:  %s\n", m.Description)
	}
	fmt.Printf("\n%s\n", m.Instructions)

	return nil
}
