package migrations

import (
	"database/sql"
	"embed"
	"fmt"
	"sort"
	"strconv"
	"strings"
)

//go:embed *.sql
var schemaFS embed.FS

// Migration is one versioned schema step, embedded as an up/down pair of
// SQL files named NNNNNN_name.{up,down}.sql.
type Migration struct {
	Version int
	Up      string
	Down    string
}

// RunMigrations brings the schema up to date, applying each pending
// migration in version order inside its own transaction. Safe to call on
// every open.
func RunMigrations(db *sql.DB) error {
	if err := ensureVersionTable(db); err != nil {
		return fmt.Errorf("failed to create migrations table: %w", err)
	}

	steps, err := loadSchemaSteps()
	if err != nil {
		return fmt.Errorf("failed to load migrations: %w", err)
	}

	applied, err := appliedVersions(db)
	if err != nil {
		return fmt.Errorf("failed to get applied migrations: %w", err)
	}

	for _, step := range steps {
		if applied[step.Version] {
			continue
		}
		if err := applyStep(db, step); err != nil {
			return fmt.Errorf("failed to apply migration %d: %w", step.Version, err)
		}
	}

	return nil
}

func ensureVersionTable(db *sql.DB) error {
	_, err := db.Exec(`
	CREATE TABLE IF NOT EXISTS migrations (
		version INTEGER PRIMARY KEY,
		applied_at DATETIME DEFAULT CURRENT_TIMESTAMP
	)`)
	return err
}

func loadSchemaSteps() ([]Migration, error) {
	entries, err := schemaFS.ReadDir(".")
	if err != nil {
		return nil, err
	}

	var steps []Migration
	for _, entry := range entries {
		name := entry.Name()
		if !strings.HasSuffix(name, ".up.sql") {
			continue
		}

		version, ok := versionOf(name)
		if !ok {
			continue
		}

		up, err := schemaFS.ReadFile(name)
		if err != nil {
			return nil, err
		}
		down, err := schemaFS.ReadFile(strings.Replace(name, ".up.sql", ".down.sql", 1))
		if err != nil {
			return nil, err
		}

		steps = append(steps, Migration{Version: version, Up: string(up), Down: string(down)})
	}

	sort.Slice(steps, func(i, j int) bool { return steps[i].Version < steps[j].Version })
	return steps, nil
}

func appliedVersions(db *sql.DB) (map[int]bool, error) {
	rows, err := db.Query("SELECT version FROM migrations")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	applied := make(map[int]bool)
	for rows.Next() {
		var version int
		if err := rows.Scan(&version); err != nil {
			return nil, err
		}
		applied[version] = true
	}
	return applied, rows.Err()
}

// applyStep runs the up script and records the version in one transaction,
// so a failed migration leaves the version table untouched.
func applyStep(db *sql.DB, step Migration) error {
	tx, err := db.Begin()
	if err != nil {
		return err
	}

	if _, err := tx.Exec(step.Up); err != nil {
		tx.Rollback()
		return err
	}
	if _, err := tx.Exec("INSERT INTO migrations (version) VALUES (?)", step.Version); err != nil {
		tx.Rollback()
		return err
	}

	return tx.Commit()
}

// versionOf parses the numeric prefix of a migration filename.
func versionOf(filename string) (int, bool) {
	prefix, _, found := strings.Cut(filename, "_")
	if !found {
		return 0, false
	}
	version, err := strconv.Atoi(prefix)
	if err != nil || version == 0 {
		return 0, false
	}
	return version, true
}
