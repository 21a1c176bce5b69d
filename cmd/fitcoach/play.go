package fitcoach

import (
	"bufio"
	"database/sql"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/J4sp3rd3v/fitcoach-cli/internal/catalog"
	"github.com/J4sp3rd3v/fitcoach-cli/internal/config"
	"github.com/J4sp3rd3v/fitcoach-cli/internal/player"
	"github.com/J4sp3rd3v/fitcoach-cli/internal/service"
)

var (
	playNoTimer  bool
	playLog      bool
	playComplete bool
)

var workoutStartCmd = &cobra.Command{
	Use:     "start [workout-id]",
	Aliases: []string{"play"},
	Short:   "Run a workout step by step",
	Long: "start walks through a workout exercise by exercise. Timed steps and rests run\n" +
		"a countdown; rep-based steps wait for Enter (q quits). Without an id it plays\n" +
		"today's scheduled workout.",
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(sqldb *sql.DB, cfg config.Config) error {
			var w catalog.Workout
			if len(args) == 1 {
				found, ok := catalog.WorkoutByID(args[0])
				if !ok {
					return fmt.Errorf("workout %q not found", args[0])
				}
				w = found
			} else {
				entry, err := service.TodayWorkout(sqldb, time.Now())
				if err != nil {
					return err
				}
				w = entry.Workout
			}

			steps := player.Flatten(w)
			out := cmd.OutOrStdout()
			if len(steps) == 0 {
				fmt.Fprintf(out, "%s has no guided steps", w.Title)
				if w.VideoID != "" {
					fmt.Fprintf(out, "; follow along at https://www.youtube.com/watch?v=%s", w.VideoID)
				}
				fmt.Fprintln(out)
				return nil
			}

			fmt.Fprintf(out, "Playing %s (%d steps, ~%d min)\n", w.Title, len(steps), w.DurationMin)
			in := bufio.NewScanner(cmd.InOrStdin())
			countdown := player.NewCountdown(time.Second)
			defer countdown.Stop()

			section := ""
			for _, step := range steps {
				if step.Section != section {
					section = step.Section
					fmt.Fprintf(out, "\n== %s ==\n", section)
				}
				ex := step.Exercise
				fmt.Fprintf(out, "\n[%d/%d] %s: %d x %s\n", step.Index, step.Total, ex.Name, ex.Sets, ex.Reps)
				if ex.Notes != "" {
					fmt.Fprintf(out, "       %s\n", ex.Notes)
				}

				if d := player.StepDuration(step); d > 0 && !playNoTimer {
					runCountdown(out, countdown, d, "work")
				} else {
					fmt.Fprint(out, "       Press Enter when done (q to quit)... ")
					if !in.Scan() {
						return nil
					}
					switch strings.TrimSpace(strings.ToLower(in.Text())) {
					case "q", "quit":
						fmt.Fprintln(out, "Session stopped.")
						return nil
					}
				}
				if rest := player.RestDuration(step); rest > 0 && !playNoTimer && step.Index < step.Total {
					runCountdown(out, countdown, rest, "rest")
				}
			}
			fmt.Fprintf(out, "\nFinished %s\n", w.Title)

			if playComplete || playLog {
				date := time.Now().Format("2006-01-02")
				res, err := service.CompleteWorkout(sqldb, w.ID, date, waterParams(cfg))
				if err != nil {
					return err
				}
				if res.XPGained > 0 {
					fmt.Fprintf(out, "+%d XP (total %d, level %d)\n", res.XPGained, res.Profile.XP, res.Profile.Level)
				}
				if res.Badge != "" {
					fmt.Fprintf(out, "Badge unlocked: %s\n", res.Badge)
				}
			}
			return nil
		})
	},
}

func runCountdown(out io.Writer, c *player.Countdown, d time.Duration, phase string) {
	secs := int(d / time.Second)
	fmt.Fprintf(out, "       %s %ds: ", phase, secs)
	c.Start(secs, func(remaining int) {
		if remaining%10 == 0 || remaining < 5 {
			fmt.Fprintf(out, "%d ", remaining)
		}
	})
	c.Wait()
	fmt.Fprintln(out)
}

func init() {
	workoutCmd.AddCommand(workoutStartCmd)
	workoutStartCmd.Flags().BoolVar(&playNoTimer, "no-timer", false, "Skip countdowns, advance on Enter only")
	workoutStartCmd.Flags().BoolVar(&playComplete, "complete", false, "Mark the workout done when finished")
	workoutStartCmd.Flags().BoolVar(&playLog, "log", false, "Alias of --complete")
}
