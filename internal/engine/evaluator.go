package engine

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/meeharshu8685-dot/pathfy-1-sub000/internal/catalog"
	"github.com/meeharshu8685-dot/pathfy-1-sub000/internal/quiz"
)

// UserProfile is the availability snapshot an approach is scored against.
type UserProfile struct {
	AvailableHoursPerDay  float64    `json:"available_hours_per_day"`
	AvailableHoursPerWeek float64    `json:"available_hours_per_week"`
	TimelineMonths        int        `json:"timeline_months"`
	CurrentLevel          quiz.Level `json:"current_level"`
	HasOtherCommitments   bool       `json:"has_other_commitments"`
}

// Validate checks the ranges a profile built from user input must satisfy.
func (p UserProfile) Validate() error {
	switch {
	case p.AvailableHoursPerDay <= 0:
		return ValidationError{Field: "available_hours_per_day", Reason: "must be greater than 0"}
	case p.AvailableHoursPerWeek <= 0:
		return ValidationError{Field: "available_hours_per_week", Reason: "must be greater than 0"}
	case p.TimelineMonths < 1:
		return ValidationError{Field: "timeline_months", Reason: "must be at least 1"}
	case !p.CurrentLevel.IsValid():
		return ValidationError{Field: "current_level", Reason: fmt.Sprintf("unknown level %q", p.CurrentLevel)}
	}
	return nil
}

// Evaluation is the verdict for one approach.
type Evaluation struct {
	Approach  catalog.Template `json:"approach"`
	FitStatus FitStatus        `json:"fit_status"`
	RiskLevel RiskLevel        `json:"risk_level"`
	Reasoning string           `json:"reasoning"`
}

// Evaluator scores approaches against a profile.
//
// By default the approach duration numbers are compared with the profile's
// timeline in months as written, whatever unit the range is expressed in.
// UnitAware converts week ranges to months (ceil(weeks/4)) first.
type Evaluator struct {
	UnitAware bool
}

// EvaluateApproach scores t with the default Evaluator.
func EvaluateApproach(t catalog.Template, user UserProfile) Evaluation {
	return Evaluator{}.Evaluate(t, user)
}

// EvaluateAll scores every template with the default Evaluator, keeping order.
func EvaluateAll(ts []catalog.Template, user UserProfile) []Evaluation {
	return Evaluator{}.EvaluateAll(ts, user)
}

func (e Evaluator) EvaluateAll(ts []catalog.Template, user UserProfile) []Evaluation {
	out := make([]Evaluation, 0, len(ts))
	for _, t := range ts {
		out = append(out, e.Evaluate(t, user))
	}
	return out
}

// Evaluate runs the daily-hours, timeline and commitments checks in order.
// Each check may raise FitStatus and RiskLevel but never lowers them.
func (e Evaluator) Evaluate(t catalog.Template, user UserProfile) Evaluation {
	hours := rangeOf(t.DailyEffort, t.DailyEffortRange)
	dur := rangeOf(t.Duration, t.DurationRange)
	if e.UnitAware && dur.Unit == catalog.UnitWeeks {
		dur = catalog.Range{Min: weeksToMonths(dur.Min), Max: weeksToMonths(dur.Max), Unit: catalog.UnitMonths}
	}

	var (
		fit    FitStatus
		risk   RiskLevel
		reason strings.Builder
	)
	avail := formatHours(user.AvailableHoursPerDay)

	switch {
	case user.AvailableHoursPerDay < float64(hours.Min):
		fit, risk = FitHighPressure, RiskHigh
		fmt.Fprintf(&reason, "This approach requires %d-%d hours/day, but you have %s hours available.", hours.Min, hours.Max, avail)
	case user.AvailableHoursPerDay < float64(hours.Max):
		fit, risk = FitNeedsAdjustment, RiskModerate
		fmt.Fprintf(&reason, "You can manage this with your available %s hours, but the recommended is %d hours/day.", avail, hours.Max)
	default:
		fit, risk = FitGood, RiskLow
		fmt.Fprintf(&reason, "Your available %s hours/day aligns well with this approach.", avail)
	}

	switch {
	case user.TimelineMonths < dur.Min:
		fit, risk = fit.worse(FitHighPressure), risk.worse(RiskHigh)
		fmt.Fprintf(&reason, " Your timeline of %d months is shorter than the typical %d-%d months for this approach.", user.TimelineMonths, dur.Min, dur.Max)
	case user.TimelineMonths > dur.Max:
		fmt.Fprintf(&reason, " You have %d months, which gives you extra buffer beyond the typical %d months.", user.TimelineMonths, dur.Max)
	}

	if user.HasOtherCommitments && t.LifestyleTradeOff == catalog.TradeOffVeryHigh {
		fit, risk = fit.worse(FitNeedsAdjustment), risk.worse(RiskModerate)
		reason.WriteString(" This approach requires very high lifestyle trade-off which may conflict with your other commitments.")
	}

	return Evaluation{
		Approach:  t,
		FitStatus: fit,
		RiskLevel: risk,
		Reasoning: reason.String(),
	}
}

// rangeOf prefers the range parsed at load time and falls back to parsing
// raw for templates built by hand.
func rangeOf(parsed catalog.Range, raw string) catalog.Range {
	if parsed != (catalog.Range{}) {
		return parsed
	}
	return catalog.ParseRange(raw)
}

func weeksToMonths(w int) int {
	return int(math.Ceil(float64(w) / 4))
}

func formatHours(h float64) string {
	return strconv.FormatFloat(h, 'f', -1, 64)
}
