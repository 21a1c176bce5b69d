package fitcoach

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/J4sp3rd3v/fitcoach-cli/internal/catalog"
	"github.com/J4sp3rd3v/fitcoach-cli/internal/config"
	"github.com/J4sp3rd3v/fitcoach-cli/internal/model"
	"github.com/J4sp3rd3v/fitcoach-cli/internal/service"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Manage training settings and the active weekly plan",
}

var (
	settingsName     string
	settingsHeight   float64
	settingsTarget   float64
	settingsActivity string
	settingsPlan     string
)

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the settings",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(sqldb *sql.DB, cfg config.Config) error {
			s, err := service.GetSettings(sqldb)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Name: %s\n", s.Name)
			fmt.Fprintf(out, "Height: %.0f cm | Target weight: %.1f kg\n", s.HeightCm, s.TargetWeightKg)
			fmt.Fprintf(out, "Activity: %s\n", s.ActivityLevel)
			fmt.Fprintf(out, "Active plan: %s\n", s.ActivePlan)
			fmt.Fprintf(out, "Available plans: %s\n", strings.Join(catalog.ApprovedCreators, ", "))
			return nil
		})
	},
}

var settingsSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Update settings fields",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(sqldb *sql.DB, cfg config.Config) error {
			var patch model.SettingsPatch
			if cmd.Flags().Changed("name") {
				patch.Name = &settingsName
			}
			if cmd.Flags().Changed("height") {
				patch.HeightCm = &settingsHeight
			}
			if cmd.Flags().Changed("target-weight") {
				patch.TargetWeightKg = &settingsTarget
			}
			if cmd.Flags().Changed("activity") {
				patch.ActivityLevel = &settingsActivity
			}
			if cmd.Flags().Changed("plan") {
				patch.ActivePlan = &settingsPlan
			}
			s, err := service.UpdateSettings(sqldb, patch)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Updated settings (active plan: %s)\n", s.ActivePlan)
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(settingsCmd)
	settingsCmd.AddCommand(settingsShowCmd, settingsSetCmd)
	settingsSetCmd.Flags().StringVar(&settingsName, "name", "", "Display name")
	settingsSetCmd.Flags().Float64Var(&settingsHeight, "height", 0, "Height in cm")
	settingsSetCmd.Flags().Float64Var(&settingsTarget, "target-weight", 0, "Target weight in kg")
	settingsSetCmd.Flags().StringVar(&settingsActivity, "activity", "", "Activity label")
	settingsSetCmd.Flags().StringVar(&settingsPlan, "plan", "", "Weekly plan creator")
}
