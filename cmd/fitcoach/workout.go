package fitcoach

import (
	"database/sql"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/J4sp3rd3v/fitcoach-cli/internal/catalog"
	"github.com/J4sp3rd3v/fitcoach-cli/internal/config"
	"github.com/J4sp3rd3v/fitcoach-cli/internal/service"
)

var workoutCmd = &cobra.Command{
	Use:   "workout",
	Short: "Browse workouts and track completions",
}

var (
	workoutCreator  string
	workoutCategory string
	workoutLevel    string
	workoutDate        string
	workoutPlanCreator string
	calendarOut        string
)

var workoutListCmd = &cobra.Command{
	Use:   "list",
	Short: "List workouts",
	RunE: func(cmd *cobra.Command, args []string) error {
		workouts := service.ListWorkouts(service.WorkoutFilter{
			Creator:  workoutCreator,
			Category: workoutCategory,
			Level:    workoutLevel,
		})
		fmt.Fprintln(cmd.OutOrStdout(), "ID\tTITLE\tCREATOR\tLEVEL\tMIN\tKCAL")
		for _, w := range workouts {
			fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%s\t%s\t%d\t%d\n",
				w.ID, w.Title, w.Creator, w.Level, w.DurationMin, w.Calories)
		}
		return nil
	},
}

var workoutShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show workout details",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		w, ok := catalog.WorkoutByID(args[0])
		if !ok {
			return fmt.Errorf("workout %q not found", args[0])
		}
		printWorkout(cmd, w)
		return nil
	},
}

var workoutTodayCmd = &cobra.Command{
	Use:   "today",
	Short: "Show the workout scheduled for today",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(sqldb *sql.DB, cfg config.Config) error {
			entry, err := service.TodayWorkout(sqldb, time.Now())
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n\n", entry.Day.Day, entry.Day.Focus)
			printWorkout(cmd, entry.Workout)
			return nil
		})
	},
}

var workoutPlanCmd = &cobra.Command{
	Use:     "plan",
	Aliases: []string{"week"},
	Short:   "Show a creator's weekly plan (default: the active one)",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(sqldb *sql.DB, cfg config.Config) error {
			creator := workoutPlanCreator
			if creator == "" {
				s, err := service.GetSettings(sqldb)
				if err != nil {
					return err
				}
				creator = s.ActivePlan
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Weekly plan: %s\n\n", creator)
			for _, day := range catalog.PlanForCreator(creator) {
				w, ok := catalog.WorkoutByID(day.WorkoutID)
				if !ok {
					return fmt.Errorf("plan references unknown workout %q", day.WorkoutID)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%-10s %-30s %s (%d min)\n", day.Day, day.Focus, w.Title, w.DurationMin)
			}
			return nil
		})
	},
}

var workoutCompleteCmd = &cobra.Command{
	Use:   "complete <id>",
	Short: "Mark a workout done and collect any rewards",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(sqldb *sql.DB, cfg config.Config) error {
			date, err := resolveDate(workoutDate)
			if err != nil {
				return err
			}
			res, err := service.CompleteWorkout(sqldb, args[0], date, waterParams(cfg))
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Completed %s on %s\n", res.Workout.Title, date)
			if res.XPGained > 0 {
				fmt.Fprintf(cmd.OutOrStdout(), "+%d XP (total %d, level %d)\n", res.XPGained, res.Profile.XP, res.Profile.Level)
			}
			if res.Badge != "" {
				fmt.Fprintf(cmd.OutOrStdout(), "Badge unlocked: %s\n", res.Badge)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Water goal for the day: %d ml\n", res.Log.WaterGoalMl)
			return nil
		})
	},
}

var workoutFavoriteCmd = &cobra.Command{
	Use:   "favorite <id>",
	Short: "Toggle a workout as favorite",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(sqldb *sql.DB, cfg config.Config) error {
			_, on, err := service.ToggleFavorite(sqldb, args[0])
			if err != nil {
				return err
			}
			if on {
				fmt.Fprintf(cmd.OutOrStdout(), "Added %s to favorites\n", args[0])
			} else {
				fmt.Fprintf(cmd.OutOrStdout(), "Removed %s from favorites\n", args[0])
			}
			return nil
		})
	},
}

var workoutCalendarCmd = &cobra.Command{
	Use:   "calendar",
	Short: "Export this week's plan as an iCalendar file",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(sqldb *sql.DB, cfg config.Config) error {
			cal, err := service.WorkoutCalendar(sqldb, time.Now())
			if err != nil {
				return err
			}
			if calendarOut == "" {
				fmt.Fprint(cmd.OutOrStdout(), cal)
				return nil
			}
			if err := os.WriteFile(calendarOut, []byte(cal), 0o644); err != nil {
				return fmt.Errorf("write calendar file: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote calendar to %s\n", calendarOut)
			return nil
		})
	},
}

func printWorkout(cmd *cobra.Command, w catalog.Workout) {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s (%s)\n", w.Title, w.ID)
	if w.Description != "" {
		fmt.Fprintln(out, w.Description)
	}
	fmt.Fprintf(out, "Creator: %s | Level: %s | Category: %s\n", w.Creator, w.Level, w.Category)
	fmt.Fprintf(out, "Duration: %d min | ~%d kcal\n", w.DurationMin, w.Calories)
	if len(w.Equipment) > 0 {
		fmt.Fprintf(out, "Equipment: %s\n", strings.Join(w.Equipment, ", "))
	}
	if w.Gamify != nil {
		fmt.Fprintf(out, "Reward: %d XP", w.Gamify.XP)
		if w.Gamify.Badge != "" {
			fmt.Fprintf(out, ", badge %q", w.Gamify.Badge)
		}
		fmt.Fprintln(out)
	}
	for _, section := range w.Sections {
		fmt.Fprintf(out, "\n%s\n", section.Title)
		for _, ex := range section.Exercises {
			fmt.Fprintf(out, "  %s: %d x %s (rest %ds)\n", ex.Name, ex.Sets, ex.Reps, ex.RestSec)
		}
	}
}

func init() {
	rootCmd.AddCommand(workoutCmd)
	workoutCmd.AddCommand(workoutListCmd, workoutShowCmd, workoutTodayCmd, workoutPlanCmd,
		workoutCompleteCmd, workoutFavoriteCmd, workoutCalendarCmd)
	workoutPlanCmd.Flags().StringVar(&workoutPlanCreator, "creator", "", "Plan creator (default active plan)")
	workoutListCmd.Flags().StringVar(&workoutCreator, "creator", "", "Filter by creator")
	workoutListCmd.Flags().StringVar(&workoutCategory, "category", "", "Filter by category")
	workoutListCmd.Flags().StringVar(&workoutLevel, "level", "", "Filter by level")
	workoutCompleteCmd.Flags().StringVar(&workoutDate, "date", "", "Date YYYY-MM-DD (default today)")
	workoutCalendarCmd.Flags().StringVar(&calendarOut, "out", "", "Write to file instead of stdout")
}
