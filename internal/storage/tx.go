package storage

import (
	"context"
	"database/sql"
	"fmt"
)

// Repos bundles the repositories bound to one connection or transaction.
type Repos struct {
	Goals       *GoalRepo
	Quiz        *QuizRepo
	Evaluations *EvaluationRepo
}

func NewRepos(db DBTX) Repos {
	return Repos{
		Goals:       NewGoalRepo(db),
		Quiz:        NewQuizRepo(db),
		Evaluations: NewEvaluationRepo(db),
	}
}

// WithTx runs fn with repos bound to a SQL transaction. The transaction is
// committed when fn returns nil and rolled back otherwise.
func WithTx(ctx context.Context, db *sql.DB, fn func(r Repos) error) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}

	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
		}
	}()

	if err := fn(NewRepos(tx)); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}
	committed = true
	return nil
}
