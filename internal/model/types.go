package model

type Goal string

const (
	GoalFatLoss     Goal = "fat_loss"
	GoalMuscleGain  Goal = "muscle_gain"
	GoalMaintenance Goal = "maintenance"
)

type ActivityLevel string

const (
	ActivitySedentary ActivityLevel = "sedentary"
	ActivityLight     ActivityLevel = "light"
	ActivityModerate  ActivityLevel = "moderate"
	ActivityActive    ActivityLevel = "active"
	ActivityAthlete   ActivityLevel = "athlete"
)

// DailyLog is one day of biometrics, keyed by ISO date. Water intake only
// grows within a day (additive updates); the goal is recomputed on save.
type DailyLog struct {
	Date             string   `json:"date"`
	WeightKg         *float64 `json:"weight_kg,omitempty"`
	SleepHours       float64  `json:"sleep_hours"`
	Soreness         int      `json:"soreness"`
	EnergyLevel      int      `json:"energy_level"`
	WaterIntakeMl    int      `json:"water_intake_ml"`
	WaterGoalMl      int      `json:"water_goal_ml"`
	WorkoutCompleted bool     `json:"workout_completed"`
	Notes            string   `json:"notes,omitempty"`
}

// UserProfile is the single per-installation profile. Level is derived from
// XP on every save and never set directly.
type UserProfile struct {
	Name          string        `json:"name"`
	Age           int           `json:"age"`
	HeightCm      float64       `json:"height_cm"`
	WeightKg      float64       `json:"weight_kg"`
	Gender        string        `json:"gender"`
	Goal          Goal          `json:"goal"`
	ActivityLevel ActivityLevel `json:"activity_level"`
	AvatarSeed    string        `json:"avatar_seed"`
	XP            int           `json:"xp"`
	Level         int           `json:"level"`
	Badges        []string      `json:"badges"`
	Favorites     []string      `json:"favorites"`
}

// ProfilePatch carries optional field updates; nil means "leave unchanged".
// XP, level, badges and favorites have their own entry points and are not
// patchable.
type ProfilePatch struct {
	Name          *string
	Age           *int
	HeightCm      *float64
	WeightKg      *float64
	Gender        *string
	Goal          *Goal
	ActivityLevel *ActivityLevel
	AvatarSeed    *string
}

type UserSettings struct {
	Name           string  `json:"name"`
	HeightCm       float64 `json:"height_cm"`
	TargetWeightKg float64 `json:"target_weight_kg"`
	ActivityLevel  string  `json:"activity_level"`
	ActivePlan     string  `json:"active_plan"`
}

type SettingsPatch struct {
	Name           *string
	HeightCm       *float64
	TargetWeightKg *float64
	ActivityLevel  *string
	ActivePlan     *string
}
