package engine

import (
	"context"

	"github.com/google/uuid"

	"github.com/meeharshu8685-dot/pathfy-1-sub000/internal/quiz"
	"github.com/meeharshu8685-dot/pathfy-1-sub000/internal/storage"
)

// QuizQuestions returns the calibration questions for the goal's field.
func (s *Service) QuizQuestions(ctx context.Context, id string) ([]quiz.Question, error) {
	g, err := s.Goal(ctx, id)
	if err != nil {
		return nil, err
	}
	return quiz.ForField(g.Field), nil
}

// RecordQuiz scores a complete answer set for the goal's field, stores the
// result and sets the goal's calibrated level in one transaction. The
// evaluation snapshot is dropped since it was scored with the old level.
func (s *Service) RecordQuiz(ctx context.Context, id string, answers map[string]string) (quiz.Results, error) {
	g, err := s.Goal(ctx, id)
	if err != nil {
		return quiz.Results{}, err
	}
	res, err := quiz.Score(quiz.ForField(g.Field), answers)
	if err != nil {
		return quiz.Results{}, err
	}

	now := s.now().UTC()
	err = storage.WithTx(ctx, s.db, func(r storage.Repos) error {
		if err := r.Quiz.Insert(ctx, storage.QuizResult{
			ID:              uuid.NewString(),
			GoalID:          g.ID,
			Field:           g.Field,
			Answers:         res.Answers,
			TotalScore:      res.TotalScore,
			CalibratedLevel: string(res.CalibratedLevel),
			CategoryScores:  res.CategoryScores,
			Confidence:      res.Confidence,
			CreatedAt:       now,
		}); err != nil {
			return err
		}
		if err := r.Goals.UpdateCalibration(ctx, g.ID, string(res.CalibratedLevel), now); err != nil {
			return err
		}
		return r.Evaluations.ReplaceForGoal(ctx, g.ID, nil)
	})
	if err != nil {
		return quiz.Results{}, err
	}

	s.log.Info("quiz recorded", "goal_id", g.ID, "level", res.CalibratedLevel, "confidence", res.Confidence)
	return res, nil
}

// LatestQuiz returns the goal's most recent quiz result, or nil.
func (s *Service) LatestQuiz(ctx context.Context, id string) (*storage.QuizResult, error) {
	g, err := s.Goal(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.quiz.LatestForGoal(ctx, g.ID)
}
