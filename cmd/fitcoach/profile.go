package fitcoach

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/J4sp3rd3v/fitcoach-cli/internal/config"
	"github.com/J4sp3rd3v/fitcoach-cli/internal/model"
	"github.com/J4sp3rd3v/fitcoach-cli/internal/service"
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Manage the user profile and macro targets",
}

var (
	profileName     string
	profileAge      int
	profileHeight   float64
	profileWeight   float64
	profileGender   string
	profileGoal     string
	profileActivity string
	profileAvatar   string
)

var profileShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the profile",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(sqldb *sql.DB, cfg config.Config) error {
			p, err := service.GetProfile(sqldb)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Name: %s\n", p.Name)
			fmt.Fprintf(out, "Age: %d | Gender: %s\n", p.Age, p.Gender)
			fmt.Fprintf(out, "Height: %.0f cm | Weight: %.1f kg\n", p.HeightCm, p.WeightKg)
			fmt.Fprintf(out, "Goal: %s | Activity: %s\n", p.Goal, p.ActivityLevel)
			fmt.Fprintf(out, "Level %d (%d XP)\n", p.Level, p.XP)
			if len(p.Badges) > 0 {
				fmt.Fprintf(out, "Badges: %s\n", strings.Join(p.Badges, ", "))
			}
			if len(p.Favorites) > 0 {
				fmt.Fprintf(out, "Favorites: %s\n", strings.Join(p.Favorites, ", "))
			}
			return nil
		})
	},
}

var profileSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Update profile fields",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(sqldb *sql.DB, cfg config.Config) error {
			var patch model.ProfilePatch
			if cmd.Flags().Changed("name") {
				patch.Name = &profileName
			}
			if cmd.Flags().Changed("age") {
				patch.Age = &profileAge
			}
			if cmd.Flags().Changed("height") {
				patch.HeightCm = &profileHeight
			}
			if cmd.Flags().Changed("weight") {
				patch.WeightKg = &profileWeight
			}
			if cmd.Flags().Changed("gender") {
				patch.Gender = &profileGender
			}
			if cmd.Flags().Changed("goal") {
				goal := model.Goal(strings.ToLower(profileGoal))
				patch.Goal = &goal
			}
			if cmd.Flags().Changed("activity") {
				level := model.ActivityLevel(strings.ToLower(profileActivity))
				patch.ActivityLevel = &level
			}
			if cmd.Flags().Changed("avatar") {
				patch.AvatarSeed = &profileAvatar
			}
			p, err := service.UpdateProfile(sqldb, patch)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Updated profile for %s\n", p.Name)
			return nil
		})
	},
}

var profileMacrosCmd = &cobra.Command{
	Use:   "macros",
	Short: "Compute daily macro targets from the profile",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(sqldb *sql.DB, cfg config.Config) error {
			p, err := service.GetProfile(sqldb)
			if err != nil {
				return err
			}
			m, err := service.CalculateMacros(p)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "BMR: %d kcal\n", m.BMR)
			fmt.Fprintf(out, "TDEE: %d kcal\n", m.TDEE)
			fmt.Fprintf(out, "Target: %d kcal (%s)\n", m.TargetCalories, p.Goal)
			fmt.Fprintf(out, "Protein: %d g\n", m.ProteinG)
			fmt.Fprintf(out, "Carbs: %d g\n", m.CarbG)
			fmt.Fprintf(out, "Fat: %d g\n", m.FatG)
			return nil
		})
	},
}

var profileStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show the daily overview targets",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(sqldb *sql.DB, cfg config.Config) error {
			p, err := service.GetProfile(sqldb)
			if err != nil {
				return err
			}
			s := service.CalculateOverviewStats(p)
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "TDEE: %d kcal\n", s.TDEE)
			fmt.Fprintf(out, "Target: %d kcal\n", s.TargetCalories)
			fmt.Fprintf(out, "Protein: %d g\n", s.ProteinG)
			fmt.Fprintf(out, "Water goal: %d ml\n", s.WaterGoalMl)
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(profileCmd)
	profileCmd.AddCommand(profileShowCmd, profileSetCmd, profileMacrosCmd, profileStatsCmd)
	profileSetCmd.Flags().StringVar(&profileName, "name", "", "Display name")
	profileSetCmd.Flags().IntVar(&profileAge, "age", 0, "Age in years")
	profileSetCmd.Flags().Float64Var(&profileHeight, "height", 0, "Height in cm")
	profileSetCmd.Flags().Float64Var(&profileWeight, "weight", 0, "Weight in kg")
	profileSetCmd.Flags().StringVar(&profileGender, "gender", "", "male or female")
	profileSetCmd.Flags().StringVar(&profileGoal, "goal", "", "fat_loss, muscle_gain, or maintenance")
	profileSetCmd.Flags().StringVar(&profileActivity, "activity", "", "sedentary, light, moderate, active, or athlete")
	profileSetCmd.Flags().StringVar(&profileAvatar, "avatar", "", "Avatar seed")
}
