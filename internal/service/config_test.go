package service_test

import (
	"errors"
	"testing"

	"github.com/J4sp3rd3v/fitcoach-cli/internal/service"
)

func TestConfigValues(t *testing.T) {
	t.Parallel()
	conn := newTestDB(t)

	if _, err := service.GetConfigValue(conn, "theme"); !errors.Is(err, service.ErrNotFound) {
		t.Errorf("unset key: err = %v, want ErrNotFound", err)
	}
	if err := service.SetConfigValue(conn, "theme", "dark"); err != nil {
		t.Fatalf("SetConfigValue: %v", err)
	}
	if err := service.SetConfigValue(conn, "theme", "light"); err != nil {
		t.Fatalf("SetConfigValue overwrite: %v", err)
	}
	v, err := service.GetConfigValue(conn, "theme")
	if err != nil {
		t.Fatalf("GetConfigValue: %v", err)
	}
	if v != "light" {
		t.Errorf("value = %q, want light", v)
	}

	if err := service.SetConfigValue(conn, "", "x"); !errors.Is(err, service.ErrInvalidInput) {
		t.Errorf("empty key: err = %v, want ErrInvalidInput", err)
	}

	if err := service.SetConfigValue(conn, "accent", "green"); err != nil {
		t.Fatalf("SetConfigValue: %v", err)
	}
	entries, err := service.ListConfig(conn)
	if err != nil {
		t.Fatalf("ListConfig: %v", err)
	}
	if len(entries) != 2 || entries[0].Key != "accent" || entries[1].Key != "theme" {
		t.Errorf("entries = %+v, want accent then theme", entries)
	}
}
