package fitcoach

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/J4sp3rd3v/fitcoach-cli/internal/catalog"
)

var supplementCmd = &cobra.Command{
	Use:   "supplement",
	Short: "Browse the supplement catalog",
}

var supplementListCmd = &cobra.Command{
	Use:   "list",
	Short: "List supplements",
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Fprintln(cmd.OutOrStdout(), "ID\tNAME\tDOSAGE\tTIMING")
		for _, s := range catalog.Supplements {
			fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%s\t%s\n", s.ID, s.Name, s.Dosage, s.Timing)
		}
		return nil
	},
}

var supplementShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show supplement details",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, ok := catalog.SupplementByID(args[0])
		if !ok {
			return fmt.Errorf("supplement %q not found", args[0])
		}
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "%s (%s)\n", s.Name, s.ID)
		fmt.Fprintln(out, s.Description)
		fmt.Fprintf(out, "Dosage: %s\n", s.Dosage)
		fmt.Fprintf(out, "Timing: %s\n", s.Timing)
		fmt.Fprintf(out, "Goal: %s\n", s.Goal)
		if s.Warning != "" {
			fmt.Fprintf(out, "Warning: %s\n", s.Warning)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(supplementCmd)
	supplementCmd.AddCommand(supplementListCmd, supplementShowCmd)
}
