package engine

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/meeharshu8685-dot/pathfy-1-sub000/internal/analysis"
	"github.com/meeharshu8685-dot/pathfy-1-sub000/internal/storage"
)

var ErrAnalysisDisabled = errors.New("analysis service is not configured")

// AnalyzeGoal sends the goal, its fresh evaluations, resolved duration and
// latest quiz calibration to the analysis service and stores the plan.
func (s *Service) AnalyzeGoal(ctx context.Context, id string) (*analysis.Plan, error) {
	if s.analyzer == nil {
		return nil, ErrAnalysisDisabled
	}
	g, err := s.Goal(ctx, id)
	if err != nil {
		return nil, err
	}
	evs, err := s.EvaluateGoal(ctx, g.ID)
	if err != nil {
		return nil, err
	}
	q, err := s.quiz.LatestForGoal(ctx, g.ID)
	if err != nil {
		return nil, err
	}

	req := BuildAnalysisRequest(*g, evs, q, s.now())
	plan, err := s.analyzer.Analyze(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("analyze goal %s: %w", g.ID, err)
	}

	b, err := json.Marshal(plan)
	if err != nil {
		return nil, fmt.Errorf("marshal plan: %w", err)
	}
	if err := s.goals.UpdatePlan(ctx, g.ID, string(b), s.now().UTC()); err != nil {
		return nil, err
	}
	s.log.Info("goal analyzed", "goal_id", g.ID, "phases", len(plan.Phases), "feasibility", plan.Feasibility)
	return plan, nil
}

// StoredPlan returns the last plan saved for the goal, or nil.
func (s *Service) StoredPlan(ctx context.Context, id string) (*analysis.Plan, error) {
	g, err := s.Goal(ctx, id)
	if err != nil {
		return nil, err
	}
	if g.PlanJSON == nil || *g.PlanJSON == "" {
		return nil, nil
	}
	var p analysis.Plan
	if err := json.Unmarshal([]byte(*g.PlanJSON), &p); err != nil {
		return nil, fmt.Errorf("decode stored plan: %w", err)
	}
	return &p, nil
}

// BuildAnalysisRequest maps a goal and its derived data onto the analysis
// payload. q may be nil when the user skipped the quiz.
func BuildAnalysisRequest(g storage.Goal, evs []Evaluation, q *storage.QuizResult, now time.Time) analysis.Request {
	profile := ProfileFromGoal(g, now)
	dur := GoalDurationWeeks(g, now)

	selected := ""
	if g.SelectedApproachID != nil {
		selected = *g.SelectedApproachID
	}
	out := analysis.Request{
		Goal: analysis.Goal{
			Title:      g.Title,
			Field:      g.Field,
			Deadline:   g.Deadline,
			SkillLevel: string(profile.CurrentLevel),
		},
		Profile: analysis.Profile{
			HoursPerDay:         profile.AvailableHoursPerDay,
			HoursPerWeek:        profile.AvailableHoursPerWeek,
			TimelineMonths:      profile.TimelineMonths,
			CurrentLevel:        string(profile.CurrentLevel),
			HasOtherCommitments: profile.HasOtherCommitments,
		},
		Duration: analysis.Duration{
			Weeks:        dur.Weeks,
			Source:       string(dur.Source),
			ApproachName: dur.ApproachName,
		},
		Evaluations: make([]analysis.Evaluation, 0, len(evs)),
	}
	for _, e := range evs {
		out.Evaluations = append(out.Evaluations, analysis.Evaluation{
			ApproachID:   e.Approach.ID,
			ApproachName: e.Approach.Name,
			FitStatus:    string(e.FitStatus),
			RiskLevel:    string(e.RiskLevel),
			Reasoning:    e.Reasoning,
			Selected:     e.Approach.ID == selected,
		})
	}
	if q != nil {
		out.Quiz = &analysis.Quiz{
			CalibratedLevel: q.CalibratedLevel,
			Confidence:      q.Confidence,
			CategoryScores:  q.CategoryScores,
		}
	}
	return out
}
