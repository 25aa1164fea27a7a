package engine

import (
	"context"
	"database/sql"
	"io"
	"log/slog"
	"time"

	"github.com/meeharshu8685-dot/pathfy-1-sub000/internal/analysis"
	"github.com/meeharshu8685-dot/pathfy-1-sub000/internal/storage"
)

// Analyzer produces a roadmap for a goal. *analysis.Client implements it.
type Analyzer interface {
	Analyze(ctx context.Context, req analysis.Request) (*analysis.Plan, error)
}

// Service runs the goal workflows on top of the SQLite repos.
type Service struct {
	db        *sql.DB
	goals     *storage.GoalRepo
	quiz      *storage.QuizRepo
	evals     *storage.EvaluationRepo
	evaluator Evaluator
	analyzer  Analyzer
	log       *slog.Logger
	now       func() time.Time
}

type Option func(*Service)

func WithEvaluator(e Evaluator) Option {
	return func(s *Service) { s.evaluator = e }
}

func WithAnalyzer(a Analyzer) Option {
	return func(s *Service) { s.analyzer = a }
}

func WithLogger(l *slog.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.log = l
		}
	}
}

// WithClock overrides time.Now, mostly for tests.
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		if now != nil {
			s.now = now
		}
	}
}

func NewService(db *sql.DB, opts ...Option) *Service {
	s := &Service{
		db:    db,
		goals: storage.NewGoalRepo(db),
		quiz:  storage.NewQuizRepo(db),
		evals: storage.NewEvaluationRepo(db),
		log:   slog.New(slog.NewTextHandler(io.Discard, nil)),
		now:   time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Service) GoalRepo() *storage.GoalRepo             { return s.goals }
func (s *Service) QuizRepo() *storage.QuizRepo             { return s.quiz }
func (s *Service) EvaluationRepo() *storage.EvaluationRepo { return s.evals }
func (s *Service) Evaluator() Evaluator                    { return s.evaluator }

// Goal returns the goal or a NotFoundError.
func (s *Service) Goal(ctx context.Context, id string) (*storage.Goal, error) {
	g, err := s.goals.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if g == nil {
		return nil, NotFoundError{Kind: "goal", ID: id}
	}
	return g, nil
}

func (s *Service) Goals(ctx context.Context) ([]storage.Goal, error) {
	return s.goals.ListAll(ctx)
}

func (s *Service) DeleteGoal(ctx context.Context, id string) error {
	ok, err := s.goals.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return NotFoundError{Kind: "goal", ID: id}
	}
	s.log.Info("goal deleted", "goal_id", id)
	return nil
}

// GoalDuration resolves the goal's planned length in weeks.
func (s *Service) GoalDuration(ctx context.Context, id string) (GoalDuration, error) {
	g, err := s.Goal(ctx, id)
	if err != nil {
		return GoalDuration{}, err
	}
	return GoalDurationWeeks(*g, s.now()), nil
}
