// Package service implements the application operations on top of the
// catalog tables and the SQLite store.
package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/J4sp3rd3v/fitcoach-cli/internal/model"
)

var (
	ErrNotFound     = errors.New("not found")
	ErrInvalidInput = errors.New("invalid input")
)

func validateDate(date string) error {
	if _, err := time.Parse("2006-01-02", date); err != nil {
		return fmt.Errorf("%w: date %q must be YYYY-MM-DD", ErrInvalidInput, date)
	}
	return nil
}

func validateSoreness(s int) error {
	if s < 1 || s > 5 {
		return fmt.Errorf("%w: soreness %d must be between 1 and 5", ErrInvalidInput, s)
	}
	return nil
}

func validateEnergy(e int) error {
	if e < 1 || e > 5 {
		return fmt.Errorf("%w: energy %d must be between 1 and 5", ErrInvalidInput, e)
	}
	return nil
}

func validateGoal(g string) error {
	switch model.Goal(g) {
	case model.GoalFatLoss, model.GoalMuscleGain, model.GoalMaintenance:
		return nil
	}
	return fmt.Errorf("%w: unknown goal %q", ErrInvalidInput, g)
}

func validateActivityLevel(l string) error {
	switch model.ActivityLevel(l) {
	case model.ActivitySedentary, model.ActivityLight, model.ActivityModerate,
		model.ActivityActive, model.ActivityAthlete:
		return nil
	}
	return fmt.Errorf("%w: unknown activity level %q", ErrInvalidInput, l)
}

func validateGender(g string) error {
	if g != "male" && g != "female" {
		return fmt.Errorf("%w: gender %q must be male or female", ErrInvalidInput, g)
	}
	return nil
}
