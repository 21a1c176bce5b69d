package fitcoach

import (
	"database/sql"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/J4sp3rd3v/fitcoach-cli/internal/config"
	"github.com/J4sp3rd3v/fitcoach-cli/internal/model"
	"github.com/J4sp3rd3v/fitcoach-cli/internal/service"
)

var logCmd = &cobra.Command{
	Use:   "log",
	Short: "Track daily biometrics, hydration, and readiness",
}

var (
	logDate     string
	logWeight   float64
	logSleep    float64
	logSoreness int
	logEnergy   int
	logNotes    string
	logLimit    int
)

var logShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the daily log",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(sqldb *sql.DB, cfg config.Config) error {
			date, err := resolveDate(logDate)
			if err != nil {
				return err
			}
			l, err := service.GetDailyLog(sqldb, date)
			if err != nil {
				return err
			}
			printDailyLog(cmd, l)
			return nil
		})
	},
}

var logSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Record biometrics for a day",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(sqldb *sql.DB, cfg config.Config) error {
			date, err := resolveDate(logDate)
			if err != nil {
				return err
			}
			var patch service.DailyLogPatch
			if cmd.Flags().Changed("weight") {
				patch.WeightKg = &logWeight
			}
			if cmd.Flags().Changed("sleep") {
				patch.SleepHours = &logSleep
			}
			if cmd.Flags().Changed("soreness") {
				patch.Soreness = &logSoreness
			}
			if cmd.Flags().Changed("energy") {
				patch.EnergyLevel = &logEnergy
			}
			if cmd.Flags().Changed("notes") {
				patch.Notes = &logNotes
			}
			l, err := service.SaveDailyLog(sqldb, date, patch, waterParams(cfg))
			if err != nil {
				return err
			}
			printDailyLog(cmd, l)
			return nil
		})
	},
}

var logWaterCmd = &cobra.Command{
	Use:   "water <ml>",
	Short: "Add water intake for a day",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(sqldb *sql.DB, cfg config.Config) error {
			ml, err := parsePositiveInt("ml", args[0])
			if err != nil {
				return err
			}
			date, err := resolveDate(logDate)
			if err != nil {
				return err
			}
			l, err := service.AddWater(sqldb, date, ml, waterParams(cfg))
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Water: %d / %d ml\n", l.WaterIntakeMl, l.WaterGoalMl)
			return nil
		})
	},
}

var logReadinessCmd = &cobra.Command{
	Use:   "readiness",
	Short: "Show the readiness score for a day",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(sqldb *sql.DB, cfg config.Config) error {
			date, err := resolveDate(logDate)
			if err != nil {
				return err
			}
			l, err := service.GetDailyLog(sqldb, date)
			if err != nil {
				return err
			}
			r := service.ComputeReadiness(l)
			fmt.Fprintf(cmd.OutOrStdout(), "Date: %s\n", l.Date)
			fmt.Fprintf(cmd.OutOrStdout(), "Readiness: %d/100 (%s)\n", r.Score, r.Status)
			fmt.Fprintf(cmd.OutOrStdout(), "Sleep: %.1fh | Soreness: %d/5 | Energy: %d/5\n",
				l.SleepHours, l.Soreness, l.EnergyLevel)
			return nil
		})
	},
}

var logListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recent daily logs",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(sqldb *sql.DB, cfg config.Config) error {
			logs, err := service.ListDailyLogs(sqldb, logLimit)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "DATE\tWEIGHT\tSLEEP\tSORE\tENERGY\tWATER\tWORKOUT")
			for _, l := range logs {
				weight := "-"
				if l.WeightKg != nil {
					weight = fmt.Sprintf("%.1f", *l.WeightKg)
				}
				done := ""
				if l.WorkoutCompleted {
					done = "done"
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%.1f\t%d\t%d\t%d/%d\t%s\n",
					l.Date, weight, l.SleepHours, l.Soreness, l.EnergyLevel,
					l.WaterIntakeMl, l.WaterGoalMl, done)
			}
			return nil
		})
	},
}

func printDailyLog(cmd *cobra.Command, l model.DailyLog) {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Date: %s\n", l.Date)
	if l.WeightKg != nil {
		fmt.Fprintf(out, "Weight: %.1f kg\n", *l.WeightKg)
	}
	fmt.Fprintf(out, "Sleep: %.1f h\n", l.SleepHours)
	fmt.Fprintf(out, "Soreness: %d/5 | Energy: %d/5\n", l.Soreness, l.EnergyLevel)
	fmt.Fprintf(out, "Water: %d / %d ml\n", l.WaterIntakeMl, l.WaterGoalMl)
	if l.WorkoutCompleted {
		fmt.Fprintln(out, "Workout: completed")
	}
	if l.Notes != "" {
		fmt.Fprintf(out, "Notes: %s\n", l.Notes)
	}
}

func init() {
	rootCmd.AddCommand(logCmd)
	logCmd.AddCommand(logShowCmd, logSetCmd, logWaterCmd, logReadinessCmd, logListCmd)
	for _, c := range []*cobra.Command{logShowCmd, logSetCmd, logWaterCmd, logReadinessCmd} {
		c.Flags().StringVar(&logDate, "date", "", "Date YYYY-MM-DD (default today)")
	}
	logSetCmd.Flags().Float64Var(&logWeight, "weight", 0, "Body weight in kg")
	logSetCmd.Flags().Float64Var(&logSleep, "sleep", 0, "Hours slept")
	logSetCmd.Flags().IntVar(&logSoreness, "soreness", 0, "Muscle soreness 1-5")
	logSetCmd.Flags().IntVar(&logEnergy, "energy", 0, "Energy level 1-5")
	logSetCmd.Flags().StringVar(&logNotes, "notes", "", "Free-form notes")
	logListCmd.Flags().IntVar(&logLimit, "limit", 14, "Max logs to list")
}
