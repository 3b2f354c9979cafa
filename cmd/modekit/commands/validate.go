package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate all mode definitions",
	Long: `Load every mode source and report each definition that was refused,
with the file and the field that is missing or invalid. Exits non-zero when
any definition is invalid.`,
	RunE: runValidate,
}

func runValidate(cmd *cobra.Command, args []string) error {
	registry, issues, _, _, err := setup()
	if err != nil {
		return err
	}

	for _, issue := range issues {
		fmt.Printf("invalid: %s\n", issue)
	}

	fmt.Printf("%d modes loaded, %d definitions refused\n", registry.Count(), len(issues))

	if len(issues) > 0 {
		return fmt.Errorf("%d invalid mode definitions", len(issues))
	}
	return nil
}
