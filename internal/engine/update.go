package engine

import (
	"context"
	"strings"
	"time"

	"github.com/meeharshu8685-dot/pathfy-1-sub000/internal/catalog"
	"github.com/meeharshu8685-dot/pathfy-1-sub000/internal/storage"
)

// EvaluateGoal scores every approach of the goal's field and stores the
// result as the goal's current evaluation snapshot.
func (s *Service) EvaluateGoal(ctx context.Context, id string) ([]Evaluation, error) {
	g, err := s.Goal(ctx, id)
	if err != nil {
		return nil, err
	}

	now := s.now().UTC()
	profile := ProfileFromGoal(*g, now)
	evs := s.evaluator.EvaluateAll(catalog.ForField(g.Field), profile)

	rows := make([]storage.Evaluation, 0, len(evs))
	for _, e := range evs {
		rows = append(rows, storage.Evaluation{
			GoalID:      g.ID,
			ApproachID:  e.Approach.ID,
			FitStatus:   string(e.FitStatus),
			RiskLevel:   string(e.RiskLevel),
			Reasoning:   e.Reasoning,
			EvaluatedAt: now,
		})
	}
	err = storage.WithTx(ctx, s.db, func(r storage.Repos) error {
		return r.Evaluations.ReplaceForGoal(ctx, g.ID, rows)
	})
	if err != nil {
		return nil, err
	}

	s.log.Debug("goal evaluated", "goal_id", g.ID, "approaches", len(evs), "timeline_months", profile.TimelineMonths)
	return evs, nil
}

// Evaluations returns the goal's current evaluation snapshot.
func (s *Service) Evaluations(ctx context.Context, id string) ([]Evaluation, error) {
	evs, _, err := s.CurrentEvaluations(ctx, id)
	return evs, err
}

// CurrentEvaluations returns the stored snapshot for the goal. The goal is
// re-evaluated when no snapshot exists or when the snapshot's timeline in
// months no longer matches today's; evaluated reports that case. Snapshot
// rows whose approach left the catalog are skipped.
func (s *Service) CurrentEvaluations(ctx context.Context, id string) (evs []Evaluation, evaluated bool, err error) {
	g, err := s.Goal(ctx, id)
	if err != nil {
		return nil, false, err
	}
	rows, err := s.evals.ListForGoal(ctx, g.ID)
	if err != nil {
		return nil, false, err
	}
	if len(rows) == 0 || snapshotStale(*g, rows[0].EvaluatedAt, s.now().UTC()) {
		fresh, err := s.EvaluateGoal(ctx, g.ID)
		return fresh, err == nil, err
	}

	out := make([]Evaluation, 0, len(rows))
	for _, r := range rows {
		t, ok := catalog.ByID(g.Field, r.ApproachID)
		if !ok {
			continue
		}
		out = append(out, Evaluation{
			Approach:  t,
			FitStatus: FitStatus(r.FitStatus),
			RiskLevel: RiskLevel(r.RiskLevel),
			Reasoning: r.Reasoning,
		})
	}
	return out, false, nil
}

// snapshotStale reports whether the timeline the snapshot was scored with
// differs from the one the goal has at now.
func snapshotStale(g storage.Goal, evaluatedAt, now time.Time) bool {
	return ProfileFromGoal(g, evaluatedAt).TimelineMonths != ProfileFromGoal(g, now).TimelineMonths
}

// SelectApproach records the user's chosen approach on the goal. The id must
// belong to the goal's field catalog.
func (s *Service) SelectApproach(ctx context.Context, id string, approachID string) (*storage.Goal, error) {
	approachID = strings.TrimSpace(approachID)
	if approachID == "" {
		return nil, ValidationError{Field: "approach_id", Reason: "is required"}
	}
	g, err := s.Goal(ctx, id)
	if err != nil {
		return nil, err
	}
	if _, ok := catalog.ByID(g.Field, approachID); !ok {
		return nil, NotFoundError{Kind: "approach", ID: approachID}
	}

	now := s.now().UTC()
	if err := s.goals.UpdateSelectedApproach(ctx, g.ID, approachID, now); err != nil {
		return nil, err
	}
	g.SelectedApproachID = &approachID
	g.UpdatedAt = now
	s.log.Info("approach selected", "goal_id", g.ID, "approach_id", approachID)
	return g, nil
}
