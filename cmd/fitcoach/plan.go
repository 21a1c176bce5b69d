package fitcoach

import (
	"database/sql"
	"fmt"
	"math/rand"
	"time"

	"github.com/spf13/cobra"

	"github.com/J4sp3rd3v/fitcoach-cli/internal/catalog"
	"github.com/J4sp3rd3v/fitcoach-cli/internal/config"
	"github.com/J4sp3rd3v/fitcoach-cli/internal/service"
)

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Generate and inspect weekly meal plans",
}

var (
	planSeason string
	planSeed   int64
	planID     string
)

var planGenerateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a 7-day meal plan",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(sqldb *sql.DB, cfg config.Config) error {
			season, err := resolveSeason(planSeason, cfg, time.Now())
			if err != nil {
				return err
			}
			seed := planSeed
			if seed == 0 {
				seed = time.Now().UnixNano()
			}
			plan, err := service.GenerateMealPlan(season, rand.New(rand.NewSource(seed)))
			if err != nil {
				return err
			}
			saved, err := service.SaveMealPlan(sqldb, plan)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Generated %s meal plan %s\n\n", saved.Season, saved.ID)
			printMealPlan(cmd, saved)
			return nil
		})
	},
}

var planShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the active meal plan",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(sqldb *sql.DB, cfg config.Config) error {
			plan, err := loadPlanFlag(sqldb)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Meal plan %s (%s)\n\n", plan.ID, plan.Season)
			printMealPlan(cmd, plan)
			return nil
		})
	},
}

var planListCmd = &cobra.Command{
	Use:   "list",
	Short: "List stored meal plans",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(sqldb *sql.DB, cfg config.Config) error {
			infos, err := service.ListMealPlans(sqldb)
			if err != nil {
				return err
			}
			if len(infos) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No meal plans yet. Run: fitcoach plan generate")
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), "ID\tSEASON\tCREATED")
			for _, info := range infos {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%s\n", info.ID, info.Season, info.CreatedAt)
			}
			return nil
		})
	},
}

var planShoppingCmd = &cobra.Command{
	Use:   "shopping",
	Short: "Build the shopping list for the active meal plan",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(sqldb *sql.DB, cfg config.Config) error {
			plan, err := loadPlanFlag(sqldb)
			if err != nil {
				return err
			}
			items := service.BuildShoppingList(plan)
			fmt.Fprintf(cmd.OutOrStdout(), "Shopping list for plan %s (%s)\n", plan.ID, plan.Season)
			lastCategory := ""
			for _, item := range items {
				if item.Category != lastCategory {
					fmt.Fprintf(cmd.OutOrStdout(), "\n[%s]\n", item.Category)
					lastCategory = item.Category
				}
				fmt.Fprintf(cmd.OutOrStdout(), "  %-30s %g %s\n", item.Name, item.Qty, item.Unit)
			}
			return nil
		})
	},
}

func loadPlanFlag(sqldb *sql.DB) (service.MealPlan, error) {
	if planID != "" {
		return service.LoadMealPlan(sqldb, planID)
	}
	return service.ActiveMealPlan(sqldb)
}

func printMealPlan(cmd *cobra.Command, plan service.MealPlan) {
	for _, day := range plan.Days {
		fmt.Fprintf(cmd.OutOrStdout(), "%s\n", day.Label)
		for _, mt := range catalog.MealTypes {
			r := day.Meal(mt)
			fmt.Fprintf(cmd.OutOrStdout(), "  %-10s %s (%d kcal)\n", mt, r.Title, r.Macros.Cal)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "  Total: %d kcal | P %dg | C %dg | F %dg\n",
			day.Total.Cal, day.Total.Protein, day.Total.Carb, day.Total.Fat)
	}
}

func init() {
	rootCmd.AddCommand(planCmd)
	planCmd.AddCommand(planGenerateCmd, planShowCmd, planListCmd, planShoppingCmd)
	planGenerateCmd.Flags().StringVar(&planSeason, "season", "", "Season (winter, spring, summer, autumn; default current)")
	planGenerateCmd.Flags().Int64Var(&planSeed, "seed", 0, "Random seed (0 = time-based)")
	planShowCmd.Flags().StringVar(&planID, "id", "", "Plan id (default active plan)")
	planShoppingCmd.Flags().StringVar(&planID, "id", "", "Plan id (default active plan)")
}
