package fitcoach

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"
)

func TestRootHelp(t *testing.T) {
	buf := &bytes.Buffer{}
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"--help"})

	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("execute root help: %v", err)
	}
	if buf.Len() == 0 {
		t.Fatalf("expected help output")
	}
}

func TestInitCommandIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fitcoach.db")
	for i := 0; i < 2; i++ {
		buf := &bytes.Buffer{}
		rootCmd.SetOut(buf)
		rootCmd.SetErr(buf)
		rootCmd.SetArgs([]string{"--db", path, "init"})
		if err := rootCmd.Execute(); err != nil {
			t.Fatalf("init run %d failed: %v", i+1, err)
		}
	}
}

func TestWorkoutListCommand(t *testing.T) {
	buf := &bytes.Buffer{}
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"workout", "list", "--creator", "Chris Heria"})
	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("workout list: %v", err)
	}
	if !strings.Contains(buf.String(), "ch1") {
		t.Errorf("expected ch1 in listing:\n%s", buf.String())
	}
}

func TestPlanGenerateAndShopping(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fitcoach.db")

	buf := &bytes.Buffer{}
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"--db", path, "plan", "generate", "--season", "winter", "--seed", "42"})
	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("plan generate: %v", err)
	}
	if !strings.Contains(buf.String(), "Lunedì") {
		t.Errorf("expected day labels in output:\n%s", buf.String())
	}

	buf.Reset()
	rootCmd.SetArgs([]string{"--db", path, "plan", "shopping"})
	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("plan shopping: %v", err)
	}
	if !strings.Contains(buf.String(), "Shopping list") {
		t.Errorf("expected shopping list header:\n%s", buf.String())
	}
}
