package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
)

type QuizRepo struct {
	db DBTX
}

func NewQuizRepo(db DBTX) *QuizRepo {
	return &QuizRepo{db: db}
}

func (r *QuizRepo) Insert(ctx context.Context, q QuizResult) error {
	answers, err := json.Marshal(q.Answers)
	if err != nil {
		return fmt.Errorf("marshal answers: %w", err)
	}
	categories, err := json.Marshal(q.CategoryScores)
	if err != nil {
		return fmt.Errorf("marshal category scores: %w", err)
	}

	_, err = r.db.ExecContext(ctx, `
		INSERT INTO quiz_results (
			id, goal_id, field, answers, total_score, calibrated_level, category_scores, confidence, created_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, q.ID, q.GoalID, q.Field, string(answers), q.TotalScore, q.CalibratedLevel, string(categories), q.Confidence, formatTime(q.CreatedAt))
	if err != nil {
		return fmt.Errorf("quiz insert: %w", err)
	}
	return nil
}

// LatestForGoal returns nil, nil when the goal has no quiz results.
func (r *QuizRepo) LatestForGoal(ctx context.Context, goalID string) (*QuizResult, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, goal_id, field, answers, total_score, calibrated_level, category_scores, confidence, created_at
		FROM quiz_results
		WHERE goal_id = ?
		ORDER BY created_at DESC
		LIMIT 1
	`, goalID)

	var (
		q          QuizResult
		answers    string
		categories string
		createdAt  string
	)
	if err := row.Scan(&q.ID, &q.GoalID, &q.Field, &answers, &q.TotalScore, &q.CalibratedLevel, &categories, &q.Confidence, &createdAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("quiz latest: %w", err)
	}
	if err := json.Unmarshal([]byte(answers), &q.Answers); err != nil {
		return nil, fmt.Errorf("unmarshal answers: %w", err)
	}
	if err := json.Unmarshal([]byte(categories), &q.CategoryScores); err != nil {
		return nil, fmt.Errorf("unmarshal category scores: %w", err)
	}
	t, err := parseTime(createdAt)
	if err != nil {
		return nil, err
	}
	q.CreatedAt = t
	return &q, nil
}

func (r *QuizRepo) CountForGoal(ctx context.Context, goalID string) (int, error) {
	row := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM quiz_results WHERE goal_id = ?`, goalID)
	var n int
	if err := row.Scan(&n); err != nil {
		return 0, fmt.Errorf("quiz count: %w", err)
	}
	return n, nil
}
