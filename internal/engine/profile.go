package engine

import (
	"math"
	"time"

	"github.com/meeharshu8685-dot/pathfy-1-sub000/internal/quiz"
	"github.com/meeharshu8685-dot/pathfy-1-sub000/internal/storage"
)

// ProfileFromGoal projects a stored goal onto the evaluator's input.
//
// Hours per day default to hours per week / 7 (one decimal, unrounded when
// rounding would reach zero). The timeline is
// the number of started 30-day months until the deadline, at least 1. The
// quiz-calibrated level wins over the declared one.
func ProfileFromGoal(g storage.Goal, now time.Time) UserProfile {
	perDay := math.Round(g.HoursPerWeek/7*10) / 10
	if perDay == 0 {
		perDay = g.HoursPerWeek / 7
	}
	if g.HoursPerDay != nil && *g.HoursPerDay > 0 {
		perDay = *g.HoursPerDay
	}

	months := 1
	if deadline, ok := parseDeadline(g.Deadline); ok {
		days := deadline.Sub(now).Hours() / 24
		months = max(int(math.Ceil(days/30)), 1)
	}

	return UserProfile{
		AvailableHoursPerDay:  perDay,
		AvailableHoursPerWeek: g.HoursPerWeek,
		TimelineMonths:        months,
		CurrentLevel:          goalLevel(g),
		HasOtherCommitments:   g.HasOtherCommitments,
	}
}

func goalLevel(g storage.Goal) quiz.Level {
	if g.CalibratedSkillLevel != nil {
		if l, ok := quiz.ParseLevel(*g.CalibratedSkillLevel); ok {
			return l
		}
	}
	return ParseSkillLevel(g.SkillLevel)
}
