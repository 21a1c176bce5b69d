package player_test

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/J4sp3rd3v/fitcoach-cli/internal/catalog"
	"github.com/J4sp3rd3v/fitcoach-cli/internal/player"
)

func TestFlatten(t *testing.T) {
	t.Parallel()
	w, ok := catalog.WorkoutByID("ch_abs_supreme")
	if !ok {
		t.Fatal("workout ch_abs_supreme not found")
	}
	steps := player.Flatten(w)
	want := 0
	for _, sec := range w.Sections {
		want += len(sec.Exercises)
	}
	if len(steps) != want {
		t.Fatalf("Flatten returned %d steps, want %d", len(steps), want)
	}
	if steps[0].Section != "Warm Up" {
		t.Errorf("first step section = %q, want Warm Up", steps[0].Section)
	}
	if steps[0].Index != 1 || steps[0].Total != want {
		t.Errorf("step numbering = %d/%d, want 1/%d", steps[0].Index, steps[0].Total, want)
	}
	last := steps[len(steps)-1]
	if last.Index != want {
		t.Errorf("last step index = %d, want %d", last.Index, want)
	}
}

func TestFlattenVideoOnly(t *testing.T) {
	t.Parallel()
	w, ok := catalog.WorkoutByID("ch1")
	if !ok {
		t.Fatal("workout ch1 not found")
	}
	if steps := player.Flatten(w); len(steps) != 0 {
		t.Errorf("video-only workout should flatten to no steps, got %d", len(steps))
	}
}

func TestParseDuration(t *testing.T) {
	t.Parallel()
	cases := []struct {
		reps string
		want time.Duration
		ok   bool
	}{
		{"45 sec", 45 * time.Second, true},
		{"2 min", 2 * time.Minute, true},
		{"60 sec", time.Minute, true},
		{"12-15", 0, false},
		{"Max", 0, false},
		{"20 steps", 0, false},
		{"10/side", 0, false},
		{"", 0, false},
	}
	for _, tc := range cases {
		got, ok := player.ParseDuration(tc.reps)
		if got != tc.want || ok != tc.ok {
			t.Errorf("ParseDuration(%q) = (%v, %v), want (%v, %v)", tc.reps, got, ok, tc.want, tc.ok)
		}
	}
}

func TestCountdownRunsToZero(t *testing.T) {
	t.Parallel()
	c := player.NewCountdown(time.Millisecond)
	var last atomic.Int64
	last.Store(-1)
	c.Start(5, func(remaining int) {
		last.Store(int64(remaining))
	})
	c.Wait()
	if got := last.Load(); got != 0 {
		t.Errorf("final tick = %d, want 0", got)
	}
}

func TestCountdownStop(t *testing.T) {
	t.Parallel()
	c := player.NewCountdown(time.Hour)
	var ticks atomic.Int64
	c.Start(10, func(int) { ticks.Add(1) })
	c.Stop()
	if got := ticks.Load(); got != 0 {
		t.Errorf("stopped countdown ticked %d times", got)
	}
	// Stopping again must not panic or block.
	c.Stop()
}

func TestCountdownRestartReplacesPrevious(t *testing.T) {
	t.Parallel()
	c := player.NewCountdown(time.Millisecond)
	var first atomic.Int64
	c.Start(1000, func(int) { first.Add(1) })
	var second atomic.Int64
	c.Start(3, func(int) { second.Add(1) })
	c.Wait()
	if got := second.Load(); got != 3 {
		t.Errorf("second countdown ticked %d times, want 3", got)
	}
	stale := first.Load()
	time.Sleep(5 * time.Millisecond)
	if first.Load() != stale {
		t.Error("first countdown still ticking after restart")
	}
}
