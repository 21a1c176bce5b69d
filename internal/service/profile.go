package service

import (
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/J4sp3rd3v/fitcoach-cli/internal/catalog"
	"github.com/J4sp3rd3v/fitcoach-cli/internal/model"
)

// DefaultProfile is the profile used before the user saves one.
func DefaultProfile() model.UserProfile {
	return model.UserProfile{
		Name:          "Utente",
		Age:           30,
		HeightCm:      175,
		WeightKg:      70,
		Gender:        "male",
		Goal:          model.GoalFatLoss,
		ActivityLevel: model.ActivityModerate,
		AvatarSeed:    "Felix",
		XP:            0,
		Level:         1,
	}
}

// levelForXP derives the level from total XP: one level per 1000 XP.
func levelForXP(xp int) int {
	return xp/1000 + 1
}

// GetProfile loads the stored profile, or the defaults when none exists.
// Malformed badge or favorite lists reset to empty rather than failing.
func GetProfile(db *sql.DB) (model.UserProfile, error) {
	var p model.UserProfile
	var badgesJSON, favoritesJSON string
	err := db.QueryRow(`
SELECT name, age, height_cm, weight_kg, gender, goal, activity_level,
       avatar_seed, xp, level, badges_json, favorites_json
FROM user_profile WHERE id = 1`).Scan(
		&p.Name, &p.Age, &p.HeightCm, &p.WeightKg, &p.Gender, &p.Goal,
		&p.ActivityLevel, &p.AvatarSeed, &p.XP, &p.Level, &badgesJSON, &favoritesJSON,
	)
	if err == sql.ErrNoRows {
		return DefaultProfile(), nil
	}
	if err != nil {
		return model.UserProfile{}, fmt.Errorf("load profile: %w", err)
	}
	if err := json.Unmarshal([]byte(badgesJSON), &p.Badges); err != nil {
		p.Badges = nil
	}
	if err := json.Unmarshal([]byte(favoritesJSON), &p.Favorites); err != nil {
		p.Favorites = nil
	}
	return p, nil
}

// UpdateProfile applies a patch on top of the current profile and persists
// the result. Level is recomputed from XP on every save.
func UpdateProfile(db *sql.DB, patch model.ProfilePatch) (model.UserProfile, error) {
	p, err := GetProfile(db)
	if err != nil {
		return model.UserProfile{}, err
	}

	if patch.Name != nil {
		p.Name = *patch.Name
	}
	if patch.Age != nil {
		if *patch.Age <= 0 {
			return model.UserProfile{}, fmt.Errorf("%w: age must be positive", ErrInvalidInput)
		}
		p.Age = *patch.Age
	}
	if patch.HeightCm != nil {
		if *patch.HeightCm <= 0 {
			return model.UserProfile{}, fmt.Errorf("%w: height must be positive", ErrInvalidInput)
		}
		p.HeightCm = *patch.HeightCm
	}
	if patch.WeightKg != nil {
		if *patch.WeightKg <= 0 {
			return model.UserProfile{}, fmt.Errorf("%w: weight must be positive", ErrInvalidInput)
		}
		p.WeightKg = *patch.WeightKg
	}
	if patch.Gender != nil {
		if err := validateGender(*patch.Gender); err != nil {
			return model.UserProfile{}, err
		}
		p.Gender = *patch.Gender
	}
	if patch.Goal != nil {
		if err := validateGoal(string(*patch.Goal)); err != nil {
			return model.UserProfile{}, err
		}
		p.Goal = *patch.Goal
	}
	if patch.ActivityLevel != nil {
		if err := validateActivityLevel(string(*patch.ActivityLevel)); err != nil {
			return model.UserProfile{}, err
		}
		p.ActivityLevel = *patch.ActivityLevel
	}
	if patch.AvatarSeed != nil {
		p.AvatarSeed = *patch.AvatarSeed
	}

	if err := saveProfile(db, p); err != nil {
		return model.UserProfile{}, err
	}
	return p, nil
}

// AddXP adds experience points and recomputes the level.
func AddXP(db *sql.DB, xp int) (model.UserProfile, error) {
	if xp < 0 {
		return model.UserProfile{}, fmt.Errorf("%w: xp must not be negative", ErrInvalidInput)
	}
	p, err := GetProfile(db)
	if err != nil {
		return model.UserProfile{}, err
	}
	p.XP += xp
	if err := saveProfile(db, p); err != nil {
		return model.UserProfile{}, err
	}
	return p, nil
}

// UnlockBadge records a badge once; unlocking an owned badge is a no-op.
func UnlockBadge(db *sql.DB, badge string) (model.UserProfile, error) {
	if badge == "" {
		return model.UserProfile{}, fmt.Errorf("%w: badge name required", ErrInvalidInput)
	}
	p, err := GetProfile(db)
	if err != nil {
		return model.UserProfile{}, err
	}
	for _, b := range p.Badges {
		if b == badge {
			return p, nil
		}
	}
	p.Badges = append(p.Badges, badge)
	if err := saveProfile(db, p); err != nil {
		return model.UserProfile{}, err
	}
	return p, nil
}

// ToggleFavorite adds the workout to the favorites, or removes it when
// already present. Returns the profile and whether it is now a favorite.
func ToggleFavorite(db *sql.DB, workoutID string) (model.UserProfile, bool, error) {
	if _, ok := catalog.WorkoutByID(workoutID); !ok {
		return model.UserProfile{}, false, fmt.Errorf("%w: workout %q", ErrNotFound, workoutID)
	}
	p, err := GetProfile(db)
	if err != nil {
		return model.UserProfile{}, false, err
	}
	found := false
	kept := p.Favorites[:0:0]
	for _, id := range p.Favorites {
		if id == workoutID {
			found = true
			continue
		}
		kept = append(kept, id)
	}
	if !found {
		kept = append(kept, workoutID)
	}
	p.Favorites = kept
	if err := saveProfile(db, p); err != nil {
		return model.UserProfile{}, false, err
	}
	return p, !found, nil
}

func saveProfile(db *sql.DB, p model.UserProfile) error {
	p.Level = levelForXP(p.XP)
	badges, err := json.Marshal(orEmpty(p.Badges))
	if err != nil {
		return fmt.Errorf("marshal badges: %w", err)
	}
	favorites, err := json.Marshal(orEmpty(p.Favorites))
	if err != nil {
		return fmt.Errorf("marshal favorites: %w", err)
	}
	_, err = db.Exec(`
INSERT INTO user_profile (id, name, age, height_cm, weight_kg, gender, goal,
                          activity_level, avatar_seed, xp, level, badges_json, favorites_json)
VALUES (1, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
ON CONFLICT(id) DO UPDATE SET
  name = excluded.name,
  age = excluded.age,
  height_cm = excluded.height_cm,
  weight_kg = excluded.weight_kg,
  gender = excluded.gender,
  goal = excluded.goal,
  activity_level = excluded.activity_level,
  avatar_seed = excluded.avatar_seed,
  xp = excluded.xp,
  level = excluded.level,
  badges_json = excluded.badges_json,
  favorites_json = excluded.favorites_json,
  updated_at = CURRENT_TIMESTAMP`,
		p.Name, p.Age, p.HeightCm, p.WeightKg, p.Gender, string(p.Goal),
		string(p.ActivityLevel), p.AvatarSeed, p.XP, p.Level, string(badges), string(favorites))
	if err != nil {
		return fmt.Errorf("save profile: %w", err)
	}
	return nil
}

func orEmpty(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
