package service

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/J4sp3rd3v/fitcoach-cli/internal/catalog"
)

// MondayOf returns the Monday of the week containing t, at midnight.
func MondayOf(t time.Time) time.Time {
	back := 1 - int(t.Weekday())
	if t.Weekday() == time.Sunday {
		back = -6
	}
	day := t.AddDate(0, 0, back)
	return time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
}

// WorkoutCalendar renders the active weekly plan as an iCalendar document:
// seven all-day events starting on the Monday of the week containing now.
func WorkoutCalendar(db *sql.DB, now time.Time) (string, error) {
	s, err := GetSettings(db)
	if err != nil {
		return "", err
	}
	plan := catalog.PlanForCreator(s.ActivePlan)
	monday := MondayOf(now)

	lines := []string{
		"BEGIN:VCALENDAR",
		"VERSION:2.0",
		"PRODID:-//FitMathCoach//Workout Plan//EN",
	}
	for i, day := range plan {
		w, ok := catalog.WorkoutByID(day.WorkoutID)
		if !ok {
			return "", fmt.Errorf("plan references unknown workout %q", day.WorkoutID)
		}
		date := monday.AddDate(0, 0, i)
		lines = append(lines,
			"BEGIN:VEVENT",
			fmt.Sprintf("UID:%s-%s@fitcoach", date.Format("20060102"), w.ID),
			fmt.Sprintf("DTSTART;VALUE=DATE:%s", date.Format("20060102")),
			fmt.Sprintf("SUMMARY:Workout: %s", w.Title),
			fmt.Sprintf("DESCRIPTION:Focus: %s. Creator: %s. Duration: %d min.",
				day.Focus, w.Creator, w.DurationMin),
			"END:VEVENT",
		)
	}
	lines = append(lines, "END:VCALENDAR")
	return strings.Join(lines, "\r\n") + "\r\n", nil
}
