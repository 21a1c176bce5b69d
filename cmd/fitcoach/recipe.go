package fitcoach

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/J4sp3rd3v/fitcoach-cli/internal/catalog"
	"github.com/J4sp3rd3v/fitcoach-cli/internal/service"
)

var recipeCmd = &cobra.Command{
	Use:   "recipe",
	Short: "Browse the recipe catalog",
}

var (
	recipeMeal   string
	recipeSeason string
)

var recipeListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recipes",
	RunE: func(cmd *cobra.Command, args []string) error {
		var meal catalog.MealType
		if recipeMeal != "" {
			meal = catalog.MealType(strings.ToLower(recipeMeal))
			valid := false
			for _, mt := range catalog.MealTypes {
				if meal == mt {
					valid = true
				}
			}
			if !valid {
				return fmt.Errorf("invalid --meal %q (use breakfast, lunch, snack, or dinner)", recipeMeal)
			}
		}
		var season catalog.Season
		if recipeSeason != "" {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			season, err = resolveSeason(recipeSeason, cfg, time.Now())
			if err != nil {
				return err
			}
		}

		fmt.Fprintln(cmd.OutOrStdout(), "ID\tTITLE\tKCAL\tP\tC\tF\tMEALS")
		for _, r := range catalog.Recipes {
			if meal != "" && !r.ServesMeal(meal) {
				continue
			}
			if season != "" && !r.InSeason(season) {
				continue
			}
			meals := make([]string, 0, len(r.MealTypes))
			for _, mt := range r.MealTypes {
				meals = append(meals, string(mt))
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%d\t%d\t%d\t%d\t%s\n",
				r.ID, r.Title, r.Macros.Cal, r.Macros.Protein, r.Macros.Carb, r.Macros.Fat,
				strings.Join(meals, ","))
		}
		return nil
	},
}

var recipeShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show recipe details",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		r, ok := catalog.RecipeByID(args[0])
		if !ok {
			return fmt.Errorf("recipe %q not found", args[0])
		}
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "%s (%s)\n", r.Title, r.ID)
		if r.Description != "" {
			fmt.Fprintln(out, r.Description)
		}
		fmt.Fprintf(out, "Prep: %d min", r.PrepMinutes)
		if r.Device != "" {
			fmt.Fprintf(out, " | Device: %s", r.Device)
		}
		fmt.Fprintln(out)
		fmt.Fprintf(out, "Macros: %d kcal | P %dg | C %dg | F %dg\n",
			r.Macros.Cal, r.Macros.Protein, r.Macros.Carb, r.Macros.Fat)
		fmt.Fprintln(out, "\nIngredients:")
		for _, ing := range r.Ingredients {
			fmt.Fprintf(out, "  %g %s %s\n", ing.Qty, ing.Unit, ing.Name)
		}
		fmt.Fprintln(out, "\nSteps:")
		for i, step := range r.Steps {
			fmt.Fprintf(out, "  %d. %s\n", i+1, step)
		}
		return nil
	},
}

var recipeLookupCmd = &cobra.Command{
	Use:   "lookup <id>",
	Short: "Show external search links for a recipe's ingredients",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		urls, err := service.RecipeLookups(args[0])
		if err != nil {
			return err
		}
		if len(urls) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "No linked ingredients.")
			return nil
		}
		for name, u := range urls {
			fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", name, u)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(recipeCmd)
	recipeCmd.AddCommand(recipeListCmd, recipeShowCmd, recipeLookupCmd)
	recipeListCmd.Flags().StringVar(&recipeMeal, "meal", "", "Filter by meal type")
	recipeListCmd.Flags().StringVar(&recipeSeason, "season", "", "Filter by season")
}
