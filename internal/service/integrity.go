package service

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/J4sp3rd3v/fitcoach-cli/internal/catalog"
)

// Issue is one problem found by the integrity check.
type Issue struct {
	Kind    string
	Detail  string
	Fixable bool
}

// RunDoctor scans stored data for values outside their valid ranges and for
// references that no longer resolve against the catalog. With fix set, the
// fixable issues are repaired in place: out-of-range scores are clamped,
// negative water intake reset, and orphan favorites dropped.
func RunDoctor(db *sql.DB, fix bool) ([]Issue, error) {
	var issues []Issue

	if err := catalog.Validate(); err != nil {
		issues = append(issues, Issue{Kind: "catalog", Detail: err.Error()})
	}

	rows, err := db.Query(`SELECT date, soreness, energy_level, water_intake_ml FROM daily_logs`)
	if err != nil {
		return nil, fmt.Errorf("scan daily logs: %w", err)
	}
	type logFix struct {
		date                     string
		soreness, energy, intake int
	}
	var fixes []logFix
	for rows.Next() {
		var f logFix
		if err := rows.Scan(&f.date, &f.soreness, &f.energy, &f.intake); err != nil {
			rows.Close()
			return nil, fmt.Errorf("scan daily log row: %w", err)
		}
		dirty := false
		if _, err := time.Parse("2006-01-02", f.date); err != nil {
			issues = append(issues, Issue{Kind: "invalid-date",
				Detail: fmt.Sprintf("daily log key %q is not a valid date", f.date)})
		}
		if f.soreness < 1 || f.soreness > 5 {
			issues = append(issues, Issue{Kind: "soreness-range", Fixable: true,
				Detail: fmt.Sprintf("%s: soreness %d outside 1-5", f.date, f.soreness)})
			f.soreness = clamp(f.soreness, 1, 5)
			dirty = true
		}
		if f.energy < 1 || f.energy > 5 {
			issues = append(issues, Issue{Kind: "energy-range", Fixable: true,
				Detail: fmt.Sprintf("%s: energy %d outside 1-5", f.date, f.energy)})
			f.energy = clamp(f.energy, 1, 5)
			dirty = true
		}
		if f.intake < 0 {
			issues = append(issues, Issue{Kind: "negative-water", Fixable: true,
				Detail: fmt.Sprintf("%s: water intake %d ml is negative", f.date, f.intake)})
			f.intake = 0
			dirty = true
		}
		if dirty {
			fixes = append(fixes, f)
		}
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if fix {
		for _, f := range fixes {
			if _, err := db.Exec(`
UPDATE daily_logs SET soreness = ?, energy_level = ?, water_intake_ml = ?, updated_at = CURRENT_TIMESTAMP
WHERE date = ?`, f.soreness, f.energy, f.intake, f.date); err != nil {
				return nil, fmt.Errorf("fix daily log %s: %w", f.date, err)
			}
		}
	}

	p, err := GetProfile(db)
	if err != nil {
		return nil, err
	}
	var orphanFree []string
	hasOrphans := false
	for _, id := range p.Favorites {
		if _, ok := catalog.WorkoutByID(id); !ok {
			hasOrphans = true
			issues = append(issues, Issue{Kind: "orphan-favorite", Fixable: true,
				Detail: fmt.Sprintf("favorite workout %q not in catalog", id)})
			continue
		}
		orphanFree = append(orphanFree, id)
	}
	if fix && hasOrphans {
		p.Favorites = orphanFree
		if err := saveProfile(db, p); err != nil {
			return nil, err
		}
	}

	if p.Level != levelForXP(p.XP) {
		issues = append(issues, Issue{Kind: "level-mismatch", Fixable: true,
			Detail: fmt.Sprintf("level %d does not match xp %d", p.Level, p.XP)})
		if fix {
			if err := saveProfile(db, p); err != nil {
				return nil, err
			}
		}
	}

	s, err := GetSettings(db)
	if err != nil {
		return nil, err
	}
	if s.ActivePlan != "" {
		if _, ok := catalog.WeeklyPlans[s.ActivePlan]; !ok {
			issues = append(issues, Issue{Kind: "unknown-plan",
				Detail: fmt.Sprintf("active plan creator %q not in catalog", s.ActivePlan)})
		}
	}

	return issues, nil
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
