package service_test

import (
	"strings"
	"testing"
	"time"

	"github.com/J4sp3rd3v/fitcoach-cli/internal/service"
)

func TestMondayOf(t *testing.T) {
	t.Parallel()
	cases := []struct {
		in   string
		want string
	}{
		{"2026-01-05", "2026-01-05"}, // already Monday
		{"2026-01-07", "2026-01-05"}, // Wednesday
		{"2026-01-10", "2026-01-05"}, // Saturday
		{"2026-01-11", "2026-01-05"}, // Sunday belongs to the week before
		{"2026-01-12", "2026-01-12"}, // next Monday
	}
	for _, c := range cases {
		in, err := time.Parse("2006-01-02", c.in)
		if err != nil {
			t.Fatal(err)
		}
		got := service.MondayOf(in).Format("2006-01-02")
		if got != c.want {
			t.Errorf("MondayOf(%s) = %s, want %s", c.in, got, c.want)
		}
	}
}

func TestWorkoutCalendar(t *testing.T) {
	t.Parallel()
	conn := newTestDB(t)
	now := time.Date(2026, time.January, 7, 14, 30, 0, 0, time.UTC)
	cal, err := service.WorkoutCalendar(conn, now)
	if err != nil {
		t.Fatalf("WorkoutCalendar: %v", err)
	}

	if !strings.HasPrefix(cal, "BEGIN:VCALENDAR\r\nVERSION:2.0\r\n") {
		t.Errorf("calendar header wrong:\n%s", cal[:min(len(cal), 80)])
	}
	if !strings.HasSuffix(cal, "END:VCALENDAR\r\n") {
		t.Error("calendar missing trailing END:VCALENDAR")
	}
	if n := strings.Count(cal, "BEGIN:VEVENT"); n != 7 {
		t.Errorf("got %d events, want 7", n)
	}
	// Week starts on the Monday before the given Wednesday.
	if !strings.Contains(cal, "DTSTART;VALUE=DATE:20260105") {
		t.Error("first event not on Monday 2026-01-05")
	}
	if !strings.Contains(cal, "DTSTART;VALUE=DATE:20260111") {
		t.Error("last event not on Sunday 2026-01-11")
	}
	if !strings.Contains(cal, "PRODID:-//FitMathCoach//Workout Plan//EN") {
		t.Error("missing PRODID")
	}
	if !strings.Contains(cal, "SUMMARY:Workout: ") {
		t.Error("missing workout summaries")
	}
}
