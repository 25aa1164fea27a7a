package storage

import (
	"context"
	"fmt"
)

type EvaluationRepo struct {
	db DBTX
}

func NewEvaluationRepo(db DBTX) *EvaluationRepo {
	return &EvaluationRepo{db: db}
}

// ReplaceForGoal swaps the stored snapshot for goalID with evs, keeping
// their order. Run it inside WithTx so readers never see a partial snapshot.
func (r *EvaluationRepo) ReplaceForGoal(ctx context.Context, goalID string, evs []Evaluation) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM evaluations WHERE goal_id = ?`, goalID); err != nil {
		return fmt.Errorf("evaluation clear: %w", err)
	}
	for i, e := range evs {
		_, err := r.db.ExecContext(ctx, `
			INSERT INTO evaluations (goal_id, position, approach_id, fit_status, risk_level, reasoning, evaluated_at)
			VALUES (?, ?, ?, ?, ?, ?, ?)
		`, goalID, i, e.ApproachID, e.FitStatus, e.RiskLevel, e.Reasoning, formatTime(e.EvaluatedAt))
		if err != nil {
			return fmt.Errorf("evaluation insert: %w", err)
		}
	}
	return nil
}

func (r *EvaluationRepo) ListForGoal(ctx context.Context, goalID string) ([]Evaluation, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT goal_id, approach_id, fit_status, risk_level, reasoning, evaluated_at
		FROM evaluations
		WHERE goal_id = ?
		ORDER BY position ASC
	`, goalID)
	if err != nil {
		return nil, fmt.Errorf("evaluation list: %w", err)
	}
	defer rows.Close()

	var out []Evaluation
	for rows.Next() {
		var (
			e  Evaluation
			at string
		)
		if err := rows.Scan(&e.GoalID, &e.ApproachID, &e.FitStatus, &e.RiskLevel, &e.Reasoning, &at); err != nil {
			return nil, fmt.Errorf("evaluation scan: %w", err)
		}
		t, err := parseTime(at)
		if err != nil {
			return nil, err
		}
		e.EvaluatedAt = t
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("evaluation rows: %w", err)
	}
	return out, nil
}
