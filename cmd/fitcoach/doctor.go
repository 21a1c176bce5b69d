package fitcoach

import (
	"database/sql"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/J4sp3rd3v/fitcoach-cli/internal/config"
	"github.com/J4sp3rd3v/fitcoach-cli/internal/service"
)

var doctorFix bool

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Run data integrity checks",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(sqldb *sql.DB, cfg config.Config) error {
			issues, err := service.RunDoctor(sqldb, doctorFix)
			if err != nil {
				return err
			}
			if len(issues) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No issues found.")
				return nil
			}
			for _, issue := range issues {
				marker := " "
				if issue.Fixable {
					marker = "*"
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s [%s] %s\n", marker, issue.Kind, issue.Detail)
			}
			if doctorFix {
				// Re-check after fixes so exit status reflects final state.
				issues, err = service.RunDoctor(sqldb, false)
				if err != nil {
					return err
				}
				if len(issues) == 0 {
					fmt.Fprintln(cmd.OutOrStdout(), "All fixable issues repaired.")
					return nil
				}
			}
			return fmt.Errorf("doctor found %d integrity issues", len(issues))
		})
	},
}

func init() {
	rootCmd.AddCommand(doctorCmd)
	doctorCmd.Flags().BoolVar(&doctorFix, "fix", false, "Attempt safe auto-fixes")
}
