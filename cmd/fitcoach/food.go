package fitcoach

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/J4sp3rd3v/fitcoach-cli/internal/catalog"
)

var foodCmd = &cobra.Command{
	Use:   "food",
	Short: "Browse the seasonal food catalog",
}

var (
	foodCategory string
	foodMonth    int
)

var foodListCmd = &cobra.Command{
	Use:   "list",
	Short: "List foods in season",
	RunE: func(cmd *cobra.Command, args []string) error {
		month := foodMonth
		if month == 0 {
			month = int(time.Now().Month())
		}
		if month < 1 || month > 12 {
			return fmt.Errorf("invalid --month %d (use 1-12)", month)
		}

		categories := []catalog.FoodCategory{
			catalog.FoodProtein, catalog.FoodVeg, catalog.FoodCarb, catalog.FoodFat, catalog.FoodFruit,
		}
		if foodCategory != "" {
			c := catalog.FoodCategory(strings.ToLower(foodCategory))
			valid := false
			for _, known := range categories {
				if c == known {
					valid = true
				}
			}
			if !valid {
				return fmt.Errorf("invalid --category %q (use protein, veg, carb, fat, or fruit)", foodCategory)
			}
			categories = []catalog.FoodCategory{c}
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Foods in season for %s\n", time.Month(month))
		for _, cat := range categories {
			foods := catalog.SeasonalFoods(cat, month-1)
			if len(foods) == 0 {
				continue
			}
			fmt.Fprintf(out, "\n[%s]\n", cat)
			for _, f := range foods {
				fmt.Fprintf(out, "  %-20s %g %s\t%s\n", f.Name, f.DefaultQty, f.Unit, strings.Join(f.Benefits, ", "))
			}
		}
		return nil
	},
}

var foodShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show food details",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		f, ok := catalog.FoodByID(args[0])
		if !ok {
			return fmt.Errorf("food %q not found", args[0])
		}
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "%s (%s)\n", f.Name, f.ID)
		fmt.Fprintf(out, "Category: %s | Section: %s\n", f.Category, f.Section)
		fmt.Fprintf(out, "Default: %g %s\n", f.DefaultQty, f.Unit)
		months := make([]string, 0, len(f.Months))
		for _, m := range f.Months {
			months = append(months, time.Month(m+1).String())
		}
		fmt.Fprintf(out, "In season: %s\n", strings.Join(months, ", "))
		if len(f.Benefits) > 0 {
			fmt.Fprintf(out, "Benefits: %s\n", strings.Join(f.Benefits, ", "))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(foodCmd)
	foodCmd.AddCommand(foodListCmd, foodShowCmd)
	foodListCmd.Flags().StringVar(&foodCategory, "category", "", "Filter by category")
	foodListCmd.Flags().IntVar(&foodMonth, "month", 0, "Month 1-12 (default current)")
}
