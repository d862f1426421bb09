package migration

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log"
	"time"
)

type migrationStep struct {
	Name string
	SQL  string
}

var steps = []migrationStep{
	{
		Name: "create_table_departments",
		SQL: `CREATE TABLE IF NOT EXISTS departments (
  id   BIGSERIAL PRIMARY KEY,
  name TEXT      NOT NULL UNIQUE
);`,
	},
	{
		Name: "create_table_users",
		SQL: `CREATE TABLE IF NOT EXISTS users (
  id            BIGSERIAL PRIMARY KEY,
  name          TEXT      NOT NULL,
  email         TEXT      NOT NULL UNIQUE,
  department_id BIGINT    NOT NULL REFERENCES departments (id)
);`,
	},
	{
		Name: "create_table_records",
		SQL: `CREATE TABLE IF NOT EXISTS records (
  id                   BIGSERIAL   PRIMARY KEY,
  register_number      TEXT        NOT NULL UNIQUE,
  situation            TEXT        NOT NULL,
  inclusion_date       TIMESTAMPTZ NOT NULL DEFAULT now(),
  city                 TEXT        NOT NULL DEFAULT '',
  state                TEXT        NOT NULL DEFAULT '',
  requester            TEXT        NOT NULL DEFAULT '',
  document_type        TEXT        NOT NULL DEFAULT '',
  document_number      TEXT        NOT NULL DEFAULT '',
  document_date        TEXT        NOT NULL DEFAULT '',
  deadline             TEXT        NOT NULL DEFAULT '',
  description          TEXT        NOT NULL DEFAULT '',
  sei_number           TEXT        NOT NULL DEFAULT '',
  receipt_form         TEXT        NOT NULL DEFAULT '',
  contact_info         TEXT        NOT NULL DEFAULT '',
  link                 TEXT        NOT NULL DEFAULT '',
  key_words            TEXT        NOT NULL DEFAULT '',
  have_physical_object BOOLEAN     NOT NULL DEFAULT FALSE,
  assigned_to          TEXT        NOT NULL
);`,
	},
	{
		Name: "create_table_record_sequences",
		SQL: `CREATE TABLE IF NOT EXISTS record_sequences (
  year INT    PRIMARY KEY,
  seq  BIGINT NOT NULL
);`,
	},
	{
		Name: "create_table_record_departments",
		SQL: `CREATE TABLE IF NOT EXISTS record_departments (
  record_id     BIGINT      NOT NULL REFERENCES records (id) ON DELETE CASCADE,
  department_id BIGINT      NOT NULL REFERENCES departments (id),
  attached_at   TIMESTAMPTZ NOT NULL DEFAULT now(),
  PRIMARY KEY (record_id, department_id)
);`,
	},
	{
		Name: "create_table_tags",
		SQL: `CREATE TABLE IF NOT EXISTS tags (
  id    BIGSERIAL PRIMARY KEY,
  name  TEXT      NOT NULL,
  color TEXT      NOT NULL DEFAULT ''
);`,
	},
	{
		Name: "create_table_record_tags",
		SQL: `CREATE TABLE IF NOT EXISTS record_tags (
  record_id BIGINT NOT NULL REFERENCES records (id) ON DELETE CASCADE,
  tag_id    BIGINT NOT NULL REFERENCES tags (id),
  PRIMARY KEY (record_id, tag_id)
);`,
	},
	{
		Name: "create_table_history",
		SQL: `CREATE TABLE IF NOT EXISTS history (
  id               BIGSERIAL   PRIMARY KEY,
  record_id        BIGINT      NOT NULL REFERENCES records (id) ON DELETE CASCADE,
  event            TEXT        NOT NULL,
  created_by       TEXT        NOT NULL DEFAULT '',
  forwarded_by     TEXT        NOT NULL DEFAULT '',
  closed_by        TEXT        NOT NULL DEFAULT '',
  reopened_by      TEXT        NOT NULL DEFAULT '',
  received_by      TEXT        NOT NULL DEFAULT '',
  origin_id        BIGINT      NOT NULL DEFAULT 0,
  origin_name      TEXT        NOT NULL DEFAULT '',
  destination_id   BIGINT      NOT NULL DEFAULT 0,
  destination_name TEXT        NOT NULL DEFAULT '',
  reason           TEXT        NOT NULL DEFAULT '',
  created_at       TIMESTAMPTZ NOT NULL DEFAULT now()
);`,
	},
	{
		Name: "create_index_history_record_created",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_history_record_created ON history (record_id, created_at);`,
	},
	{
		Name: "create_table_receivements",
		SQL: `CREATE TABLE IF NOT EXISTS receivements (
  id            BIGSERIAL   PRIMARY KEY,
  record_id     BIGINT      NOT NULL REFERENCES records (id) ON DELETE CASCADE,
  department_id BIGINT      NOT NULL REFERENCES departments (id),
  received      BOOLEAN     NOT NULL,
  created_at    TIMESTAMPTZ NOT NULL DEFAULT now(),
  updated_at    TIMESTAMPTZ NOT NULL DEFAULT now()
);`,
	},
	{
		Name: "create_index_receivements_record",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_receivements_record ON receivements (record_id);`,
	},
	{
		Name: "create_table_fields",
		SQL: `CREATE TABLE IF NOT EXISTS fields (
  name        TEXT PRIMARY KEY,
  description TEXT NOT NULL DEFAULT '',
  created_by  TEXT NOT NULL DEFAULT ''
);`,
	},
	{
		Name: "create_table_sections",
		SQL: `CREATE TABLE IF NOT EXISTS sections (
  id   BIGSERIAL PRIMARY KEY,
  name TEXT      NOT NULL
);`,
	},
	{
		Name: "create_table_attachments",
		SQL: `CREATE TABLE IF NOT EXISTS attachments (
  id           UUID        PRIMARY KEY,
  record_id    BIGINT      NOT NULL REFERENCES records (id) ON DELETE CASCADE,
  filename     TEXT        NOT NULL,
  storage_path TEXT        NOT NULL UNIQUE,
  size         BIGINT      NOT NULL CHECK (size >= 0),
  content_type TEXT        NOT NULL,
  created_at   TIMESTAMPTZ NOT NULL DEFAULT now()
);`,
	},
	{
		Name: "create_index_attachments_record",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_attachments_record ON attachments (record_id);`,
	},
}

// EnsureMigrated checks if the 'records' table exists and runs all migration
// steps if it doesn't.
func EnsureMigrated(ctx context.Context, db *sql.DB, loc *time.Location, dbHost string) error {
	start := time.Now()

	logJSON(loc, map[string]any{
		"component": "database",
		"event":     "db_migration_check",
		"status":    "starting",
		"db_host":   dbHost,
	})

	var exists bool
	query := "SELECT to_regclass('public.records') IS NOT NULL"
	if err := db.QueryRowContext(ctx, query).Scan(&exists); err != nil {
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

	for _, step := range steps {
		stepStart := time.Now()
		if _, err := db.ExecContext(ctx, step.SQL); err != nil {
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
	}

	logJSON(loc, map[string]any{
		"component":   "database",
		"event":       "db_migration_done",
		"status":      "success",
		"db_host":     dbHost,
		"duration_ms": time.Since(start).Milliseconds(),
	})
	return nil
}

func logJSON(loc *time.Location, fields map[string]any) {
	fields["ts"] = time.Now().In(loc).Format(time.RFC3339Nano)
	if b, err := json.Marshal(fields); err == nil {
		log.SetFlags(0)
		log.Println(string(b))
	}
}
