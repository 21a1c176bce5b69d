// Package player drives an interactive workout session: it flattens a
// workout's sections into a linear list of steps and runs rest countdowns
// between them.
package player

import (
	"strconv"
	"strings"
	"time"

	"github.com/J4sp3rd3v/fitcoach-cli/internal/catalog"
)

// Step is one exercise of a flattened session, annotated with its section.
type Step struct {
	Section  string
	Exercise catalog.Exercise
	Index    int
	Total    int
}

// Flatten turns a workout's sections into an ordered list of steps.
func Flatten(w catalog.Workout) []Step {
	var steps []Step
	for _, sec := range w.Sections {
		for _, ex := range sec.Exercises {
			steps = append(steps, Step{Section: sec.Title, Exercise: ex})
		}
	}
	for i := range steps {
		steps[i].Index = i + 1
		steps[i].Total = len(steps)
	}
	return steps
}

// ParseDuration extracts a timed duration from a reps string like "45 sec"
// or "2 min". Rep-count strings ("12-15", "Max") return ok = false: those
// steps are paced by the user, not a timer.
func ParseDuration(reps string) (time.Duration, bool) {
	fields := strings.Fields(strings.ToLower(strings.TrimSpace(reps)))
	if len(fields) != 2 {
		return 0, false
	}
	n, err := strconv.Atoi(fields[0])
	if err != nil || n <= 0 {
		return 0, false
	}
	switch fields[1] {
	case "sec":
		return time.Duration(n) * time.Second, true
	case "min":
		return time.Duration(n) * time.Minute, true
	}
	return 0, false
}

// StepDuration returns how long a step's work phase runs, falling back to
// zero for rep-based steps.
func StepDuration(s Step) time.Duration {
	d, ok := ParseDuration(s.Exercise.Reps)
	if !ok {
		return 0
	}
	return d
}

// RestDuration returns the rest to take after a step.
func RestDuration(s Step) time.Duration {
	return time.Duration(s.Exercise.RestSec) * time.Second
}
