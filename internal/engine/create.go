package engine

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/meeharshu8685-dot/pathfy-1-sub000/internal/storage"
)

type CreateGoalInput struct {
	Title               string
	Field               string
	Deadline            string // YYYY-MM-DD
	HoursPerWeek        float64
	HoursPerDay         *float64
	SkillLevel          string
	HasOtherCommitments bool
}

func normalizeTitle(title string) (string, error) {
	t := strings.TrimSpace(title)
	if t == "" {
		return "", ValidationError{Field: "title", Reason: "is required"}
	}
	return t, nil
}

func (s *Service) CreateGoal(ctx context.Context, in CreateGoalInput) (*storage.Goal, error) {
	title, err := normalizeTitle(in.Title)
	if err != nil {
		return nil, err
	}
	deadline := strings.TrimSpace(in.Deadline)
	if _, ok := parseDeadline(deadline); !ok {
		return nil, ValidationError{Field: "deadline", Reason: "must be a date like 2026-12-31"}
	}
	if in.HoursPerWeek <= 0 {
		return nil, ValidationError{Field: "hours_per_week", Reason: "must be greater than 0"}
	}
	if in.HoursPerDay != nil && *in.HoursPerDay <= 0 {
		return nil, ValidationError{Field: "hours_per_day", Reason: "must be greater than 0"}
	}

	now := s.now().UTC()
	g := storage.Goal{
		ID:                  uuid.NewString(),
		Title:               title,
		Field:               ParseField(in.Field),
		Deadline:            deadline,
		HoursPerWeek:        in.HoursPerWeek,
		HoursPerDay:         in.HoursPerDay,
		SkillLevel:          string(ParseSkillLevel(in.SkillLevel)),
		HasOtherCommitments: in.HasOtherCommitments,
		CreatedAt:           now,
		UpdatedAt:           now,
	}
	if err := s.goals.Insert(ctx, g); err != nil {
		return nil, err
	}
	s.log.Info("goal created", "goal_id", g.ID, "field", g.Field)
	return &g, nil
}
