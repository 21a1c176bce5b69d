package fitcoach

import (
	"database/sql"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/J4sp3rd3v/fitcoach-cli/internal/app"
	"github.com/J4sp3rd3v/fitcoach-cli/internal/catalog"
	"github.com/J4sp3rd3v/fitcoach-cli/internal/config"
	"github.com/J4sp3rd3v/fitcoach-cli/internal/db"
	"github.com/J4sp3rd3v/fitcoach-cli/internal/service"
)

func loadConfig() (config.Config, error) {
	dir := configDir
	if dir == "" {
		var err error
		dir, err = app.DefaultConfigDir()
		if err != nil {
			return config.Config{}, err
		}
	}
	return config.Load(dir)
}

func resolveDBPath(cfg config.Config) (string, error) {
	if dbPath != "" {
		return dbPath, nil
	}
	if cfg.DBPath != "" {
		return cfg.DBPath, nil
	}
	return app.DefaultDBPath()
}

func withDB(run func(*sql.DB, config.Config) error) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	path, err := resolveDBPath(cfg)
	if err != nil {
		return err
	}
	if err := app.EnsureDBDir(path); err != nil {
		return err
	}
	slog.Debug("opening database", "path", path)
	sqldb, err := db.Open(path)
	if err != nil {
		return err
	}
	defer sqldb.Close()

	if err := db.ApplyMigrations(sqldb); err != nil {
		return err
	}
	return run(sqldb, cfg)
}

func waterParams(cfg config.Config) service.WaterParams {
	p := service.DefaultWaterParams
	if cfg.Water.BaseMlPerKg > 0 {
		p.BaseMlPerKg = cfg.Water.BaseMlPerKg
	}
	if cfg.Water.MlPerBlock > 0 {
		p.MlPerBlock = cfg.Water.MlPerBlock
	}
	return p
}

// resolveSeason picks the season from the flag, then the config file, then
// the current month.
func resolveSeason(flag string, cfg config.Config, now time.Time) (catalog.Season, error) {
	raw := strings.TrimSpace(flag)
	if raw == "" {
		raw = strings.TrimSpace(cfg.DefaultSeason)
	}
	if raw == "" {
		return catalog.CurrentSeason(now), nil
	}
	switch strings.ToLower(raw) {
	case "winter":
		return catalog.SeasonWinter, nil
	case "spring":
		return catalog.SeasonSpring, nil
	case "summer":
		return catalog.SeasonSummer, nil
	case "autumn", "fall":
		return catalog.SeasonAutumn, nil
	}
	return "", fmt.Errorf("invalid season %q (use winter, spring, summer, or autumn)", raw)
}

func parsePositiveInt(name, value string) (int, error) {
	v, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q", name, value)
	}
	if v <= 0 {
		return 0, fmt.Errorf("%s must be > 0", name)
	}
	return v, nil
}

// resolveDate parses a --date flag, defaulting to today.
func resolveDate(flag string) (string, error) {
	if strings.TrimSpace(flag) == "" {
		return time.Now().Format("2006-01-02"), nil
	}
	t, err := time.ParseInLocation("2006-01-02", flag, time.Local)
	if err != nil {
		return "", fmt.Errorf("invalid --date %q (expected YYYY-MM-DD)", flag)
	}
	return t.Format("2006-01-02"), nil
}
