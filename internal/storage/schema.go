package storage

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
)

func Migrate(ctx context.Context, db *sql.DB) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS goals (
			id TEXT PRIMARY KEY,
			title TEXT NOT NULL,
			field TEXT NOT NULL,
			deadline TEXT NOT NULL,

			hours_per_week REAL NOT NULL,
			hours_per_day REAL,
			skill_level TEXT NOT NULL DEFAULT 'beginner',
			calibrated_skill_level TEXT,
			has_other_commitments INTEGER DEFAULT 0,

			selected_approach_id TEXT,
			created_at TEXT NOT NULL,
			updated_at TEXT NOT NULL
		);`,
		`CREATE TABLE IF NOT EXISTS quiz_results (
			id TEXT PRIMARY KEY,
			goal_id TEXT NOT NULL,
			field TEXT NOT NULL,
			answers TEXT NOT NULL,
			total_score REAL NOT NULL,
			calibrated_level TEXT NOT NULL,
			category_scores TEXT NOT NULL,
			confidence INTEGER NOT NULL,
			created_at TEXT NOT NULL,
			FOREIGN KEY(goal_id) REFERENCES goals(id) ON DELETE CASCADE
		);`,
		// Snapshot of the most recent evaluation run for a goal.
		`CREATE TABLE IF NOT EXISTS evaluations (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			goal_id TEXT NOT NULL,
			position INTEGER NOT NULL,
			approach_id TEXT NOT NULL,
			fit_status TEXT NOT NULL,
			risk_level TEXT NOT NULL,
			reasoning TEXT NOT NULL,
			evaluated_at TEXT NOT NULL,
			FOREIGN KEY(goal_id) REFERENCES goals(id) ON DELETE CASCADE
		);`,
		`CREATE INDEX IF NOT EXISTS idx_quiz_results_goal_id_created_at ON quiz_results(goal_id, created_at);`,
		`CREATE INDEX IF NOT EXISTS idx_evaluations_goal_id ON evaluations(goal_id, position);`,
	}

	for _, stmt := range stmts {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}

	// Columns added after the first release (ignore if already present).
	alterStmts := []string{
		`ALTER TABLE goals ADD COLUMN plan_json TEXT;`,
	}
	for _, stmt := range alterStmts {
		_, err := db.ExecContext(ctx, stmt)
		if err != nil && !strings.Contains(err.Error(), "duplicate column") {
			return fmt.Errorf("migrate alter: %w", err)
		}
	}

	return nil
}
