package tui

import (
	"context"
	"io"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/meeharshu8685-dot/pathfy-1-sub000/internal/engine"
	"github.com/meeharshu8685-dot/pathfy-1-sub000/internal/quiz"
)

// RunBoard shows the goal's evaluated approaches and lets the user pick one.
func RunBoard(ctx context.Context, svc *engine.Service, goalID string, out io.Writer) error {
	m := newBoardModel(ctx, svc, goalID)
	p := tea.NewProgram(m, tea.WithOutput(out), tea.WithContext(ctx))
	_, err := p.Run()
	return err
}

// RunQuiz walks through the goal's calibration quiz and records the result.
func RunQuiz(ctx context.Context, svc *engine.Service, goalID string, out io.Writer) (*quiz.Results, error) {
	questions, err := svc.QuizQuestions(ctx, goalID)
	if err != nil {
		return nil, err
	}
	m := newQuizModel(questions, func(answers map[string]string) (quiz.Results, error) {
		return svc.RecordQuiz(ctx, goalID, answers)
	})
	p := tea.NewProgram(m, tea.WithOutput(out), tea.WithContext(ctx))
	final, err := p.Run()
	if err != nil {
		return nil, err
	}
	if qm, ok := final.(quizModel); ok && qm.results != nil {
		return qm.results, nil
	}
	return nil, nil
}
