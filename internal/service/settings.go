package service

import (
	"database/sql"
	"fmt"

	"github.com/J4sp3rd3v/fitcoach-cli/internal/catalog"
	"github.com/J4sp3rd3v/fitcoach-cli/internal/model"
)

// DefaultSettings is the training-side configuration used before the user
// saves one.
func DefaultSettings() model.UserSettings {
	return model.UserSettings{
		Name:           "Atleta",
		HeightCm:       175,
		TargetWeightKg: 70,
		ActivityLevel:  "Moderate",
		ActivePlan:     catalog.DefaultCreator,
	}
}

func GetSettings(db *sql.DB) (model.UserSettings, error) {
	var s model.UserSettings
	err := db.QueryRow(`
SELECT name, height_cm, target_weight_kg, activity_level, active_plan
FROM user_settings WHERE id = 1`).Scan(
		&s.Name, &s.HeightCm, &s.TargetWeightKg, &s.ActivityLevel, &s.ActivePlan,
	)
	if err == sql.ErrNoRows {
		return DefaultSettings(), nil
	}
	if err != nil {
		return model.UserSettings{}, fmt.Errorf("load settings: %w", err)
	}
	return s, nil
}

// UpdateSettings applies a patch on top of the current settings. Setting an
// active plan requires the creator to exist in the plan table.
func UpdateSettings(db *sql.DB, patch model.SettingsPatch) (model.UserSettings, error) {
	s, err := GetSettings(db)
	if err != nil {
		return model.UserSettings{}, err
	}
	if patch.Name != nil {
		s.Name = *patch.Name
	}
	if patch.HeightCm != nil {
		if *patch.HeightCm <= 0 {
			return model.UserSettings{}, fmt.Errorf("%w: height must be positive", ErrInvalidInput)
		}
		s.HeightCm = *patch.HeightCm
	}
	if patch.TargetWeightKg != nil {
		if *patch.TargetWeightKg <= 0 {
			return model.UserSettings{}, fmt.Errorf("%w: target weight must be positive", ErrInvalidInput)
		}
		s.TargetWeightKg = *patch.TargetWeightKg
	}
	if patch.ActivityLevel != nil {
		s.ActivityLevel = *patch.ActivityLevel
	}
	if patch.ActivePlan != nil {
		if _, ok := catalog.WeeklyPlans[*patch.ActivePlan]; !ok {
			return model.UserSettings{}, fmt.Errorf("%w: unknown plan creator %q", ErrInvalidInput, *patch.ActivePlan)
		}
		s.ActivePlan = *patch.ActivePlan
	}

	_, err = db.Exec(`
INSERT INTO user_settings (id, name, height_cm, target_weight_kg, activity_level, active_plan)
VALUES (1, ?, ?, ?, ?, ?)
ON CONFLICT(id) DO UPDATE SET
  name = excluded.name,
  height_cm = excluded.height_cm,
  target_weight_kg = excluded.target_weight_kg,
  activity_level = excluded.activity_level,
  active_plan = excluded.active_plan,
  updated_at = CURRENT_TIMESTAMP`,
		s.Name, s.HeightCm, s.TargetWeightKg, s.ActivityLevel, s.ActivePlan)
	if err != nil {
		return model.UserSettings{}, fmt.Errorf("save settings: %w", err)
	}
	return s, nil
}
