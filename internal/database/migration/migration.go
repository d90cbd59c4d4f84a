package migration

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log"
	"sort"
	"strings"
	"time"

	"chimichangapp/internal/repository/memory"
)

type migrationStep struct {
	Name string
	SQL  string
}

func steps() []migrationStep {
	return []migrationStep{
		{
			Name: "create_table_directory_users",
			SQL: `CREATE TABLE IF NOT EXISTS directory_users (
  id   TEXT PRIMARY KEY,
  name TEXT NOT NULL
);`,
		},
		{
			Name: "seed_directory_users",
			SQL:  seedSQL(),
		},
	}
}

// seedSQL renders the default directory entries as one idempotent insert so
// the postgres backend serves the same rows as the in-memory one.
func seedSQL() string {
	ids := make([]string, 0, len(memory.DefaultEntries))
	for id := range memory.DefaultEntries {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	values := make([]string, 0, len(ids))
	for _, id := range ids {
		name := strings.ReplaceAll(memory.DefaultEntries[id], "'", "''")
		values = append(values, fmt.Sprintf("('%s', '%s')", id, name))
	}
	return fmt.Sprintf("INSERT INTO directory_users (id, name) VALUES %s ON CONFLICT (id) DO NOTHING;", strings.Join(values, ", "))
}

// EnsureMigrated checks if the 'directory_users' table exists and runs the
// migration steps (create + seed) if it doesn't.
func EnsureMigrated(ctx context.Context, db *sql.DB, loc *time.Location, dbHost string) error {
	start := time.Now()

	logJSON(loc, map[string]any{
		"component": "database",
		"event":     "db_migration_check",
		"status":    "starting",
		"db_host":   dbHost,
	})

	var exists bool
	query := "SELECT to_regclass('public.directory_users') IS NOT NULL"
	err := db.QueryRowContext(ctx, query).Scan(&exists)
	if err != nil {
		logJSON(loc, map[string]any{
			"component":     "database",
			"event":         "db_migration_failed",
			"status":        "error",
			"error_message": fmt.Sprintf("failed to check sentinel table: %v", err),
			"db_host":       dbHost,
			"duration_ms":   time.Since(start).Milliseconds(),
		})
		return fmt.Errorf("failed to check sentinel table: %w", err)
	}

	if exists {
		logJSON(loc, map[string]any{
			"component":   "database",
			"event":       "db_migration_skip",
			"status":      "success",
			"msg":         "schema already exists, skipping migration",
			"db_host":     dbHost,
			"duration_ms": time.Since(start).Milliseconds(),
		})
		return nil
	}

	logJSON(loc, map[string]any{
		"component": "database",
		"event":     "db_migration_start",
		"status":    "in_progress",
		"db_host":   dbHost,
	})

	for _, step := range steps() {
		stepStart := time.Now()
		_, err := db.ExecContext(ctx, step.SQL)
		if err != nil {
			logJSON(loc, map[string]any{
				"component":        "database",
				"event":            "db_migration_failed",
				"status":           "error",
				"migration_step":   step.Name,
				"error_message":    err.Error(),
				"db_host":          dbHost,
				"duration_ms":      time.Since(start).Milliseconds(),
				"step_duration_ms": time.Since(stepStart).Milliseconds(),
			})
			return fmt.Errorf("migration step %s failed: %w", step.Name, err)
		}

		logJSON(loc, map[string]any{
			"component":        "database",
			"event":            "db_migration_step",
			"status":           "success",
			"migration_step":   step.Name,
			"db_host":          dbHost,
			"step_duration_ms": time.Since(stepStart).Milliseconds(),
		})
	}

	logJSON(loc, map[string]any{
		"component":   "database",
		"event":       "db_migration_success",
		"status":      "success",
		"db_host":     dbHost,
		"duration_ms": time.Since(start).Milliseconds(),
	})

	return nil
}

func logJSON(loc *time.Location, data map[string]any) {
	data["ts"] = time.Now().In(loc).Format(time.RFC3339Nano)
	if _, ok := data["level"]; !ok {
		if data["status"] == "error" {
			data["level"] = "error"
		} else {
			data["level"] = "info"
		}
	}

	b, err := json.Marshal(data)
	if err != nil {
		log.Printf("failed to marshal migration log: %v", err)
		return
	}
	log.SetFlags(0)
	log.Println(string(b))
}
