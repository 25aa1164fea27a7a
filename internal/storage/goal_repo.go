package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"
)

type GoalRepo struct {
	db DBTX
}

func NewGoalRepo(db DBTX) *GoalRepo {
	return &GoalRepo{db: db}
}

const goalColumns = `id, title, field, deadline, hours_per_week, hours_per_day, skill_level,
	calibrated_skill_level, has_other_commitments, selected_approach_id, plan_json,
	created_at, updated_at`

func (r *GoalRepo) Insert(ctx context.Context, g Goal) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO goals (
			id, title, field, deadline,
			hours_per_week, hours_per_day, skill_level, calibrated_skill_level, has_other_commitments,
			selected_approach_id, plan_json, created_at, updated_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, g.ID, g.Title, g.Field, g.Deadline,
		g.HoursPerWeek, g.HoursPerDay, g.SkillLevel, g.CalibratedSkillLevel, boolToInt(g.HasOtherCommitments),
		g.SelectedApproachID, g.PlanJSON, formatTime(g.CreatedAt), formatTime(g.UpdatedAt))
	if err != nil {
		return fmt.Errorf("goal insert: %w", err)
	}
	return nil
}

// Get returns nil, nil when the goal does not exist.
func (r *GoalRepo) Get(ctx context.Context, id string) (*Goal, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+goalColumns+` FROM goals WHERE id = ?`, id)
	g, err := scanGoal(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return g, nil
}

func (r *GoalRepo) ListAll(ctx context.Context) ([]Goal, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+goalColumns+` FROM goals ORDER BY created_at ASC, id ASC`)
	if err != nil {
		return nil, fmt.Errorf("goal list: %w", err)
	}
	defer rows.Close()

	var out []Goal
	for rows.Next() {
		g, err := scanGoal(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *g)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("goal list rows: %w", err)
	}
	return out, nil
}

func (r *GoalRepo) UpdateSelectedApproach(ctx context.Context, id string, approachID string, at time.Time) error {
	return r.update(ctx, "goal update approach", `UPDATE goals SET selected_approach_id = ?, updated_at = ? WHERE id = ?`, approachID, formatTime(at), id)
}

func (r *GoalRepo) UpdateCalibration(ctx context.Context, id string, level string, at time.Time) error {
	return r.update(ctx, "goal update calibration", `UPDATE goals SET calibrated_skill_level = ?, updated_at = ? WHERE id = ?`, level, formatTime(at), id)
}

func (r *GoalRepo) UpdatePlan(ctx context.Context, id string, planJSON string, at time.Time) error {
	return r.update(ctx, "goal update plan", `UPDATE goals SET plan_json = ?, updated_at = ? WHERE id = ?`, planJSON, formatTime(at), id)
}

// Delete removes the goal together with its quiz results and evaluations.
func (r *GoalRepo) Delete(ctx context.Context, id string) (bool, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM goals WHERE id = ?`, id)
	if err != nil {
		return false, fmt.Errorf("goal delete: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("goal delete rows: %w", err)
	}
	return n > 0, nil
}

func (r *GoalRepo) update(ctx context.Context, op string, query string, args ...any) error {
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanGoal(row scanner) (*Goal, error) {
	var (
		g           Goal
		perDay      sql.NullFloat64
		calibrated  sql.NullString
		commitments int
		approach    sql.NullString
		plan        sql.NullString
		createdAt   string
		updatedAt   string
	)
	if err := row.Scan(
		&g.ID, &g.Title, &g.Field, &g.Deadline, &g.HoursPerWeek, &perDay, &g.SkillLevel,
		&calibrated, &commitments, &approach, &plan, &createdAt, &updatedAt,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("goal scan: %w", err)
	}

	if perDay.Valid {
		v := perDay.Float64
		g.HoursPerDay = &v
	}
	if calibrated.Valid {
		v := calibrated.String
		g.CalibratedSkillLevel = &v
	}
	if approach.Valid {
		v := approach.String
		g.SelectedApproachID = &v
	}
	if plan.Valid {
		v := plan.String
		g.PlanJSON = &v
	}
	g.HasOtherCommitments = commitments != 0

	var err error
	if g.CreatedAt, err = parseTime(createdAt); err != nil {
		return nil, err
	}
	if g.UpdatedAt, err = parseTime(updatedAt); err != nil {
		return nil, err
	}
	return &g, nil
}

func boolToInt(v bool) int {
	if v {
		return 1
	}
	return 0
}
