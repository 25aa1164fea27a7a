// Package analysis talks to the remote feasibility service that turns a
// goal, its evaluations and its quiz calibration into a phased plan.
package analysis

import (
	"errors"
	"fmt"
	"strings"
)

type Goal struct {
	Title      string `json:"title"`
	Field      string `json:"field"`
	Deadline   string `json:"deadline"`
	SkillLevel string `json:"skill_level"`
}

type Profile struct {
	HoursPerDay         float64 `json:"hours_per_day"`
	HoursPerWeek        float64 `json:"hours_per_week"`
	TimelineMonths      int     `json:"timeline_months"`
	CurrentLevel        string  `json:"current_level"`
	HasOtherCommitments bool    `json:"has_other_commitments"`
}

type Duration struct {
	Weeks        int    `json:"weeks"`
	Source       string `json:"source"`
	ApproachName string `json:"approach_name,omitempty"`
}

type Evaluation struct {
	ApproachID   string `json:"approach_id"`
	ApproachName string `json:"approach_name"`
	FitStatus    string `json:"fit_status"`
	RiskLevel    string `json:"risk_level"`
	Reasoning    string `json:"reasoning"`
	Selected     bool   `json:"selected,omitempty"`
}

// Quiz carries the calibration the user earned, when they took the quiz.
type Quiz struct {
	CalibratedLevel string             `json:"calibrated_level"`
	Confidence      int                `json:"confidence"`
	CategoryScores  map[string]float64 `json:"category_scores"`
}

// Request is everything the service needs to judge a goal.
type Request struct {
	Goal        Goal         `json:"goal"`
	Profile     Profile      `json:"profile"`
	Duration    Duration     `json:"duration"`
	Evaluations []Evaluation `json:"evaluations"`
	Quiz        *Quiz        `json:"quiz,omitempty"`
}

type Phase struct {
	Name  string `json:"name"`
	Weeks int    `json:"weeks"`
	Focus string `json:"focus"`
}

// Plan is the roadmap returned by the service.
type Plan struct {
	Feasibility string   `json:"feasibility"`
	Summary     string   `json:"summary"`
	Phases      []Phase  `json:"phases"`
	DailyTasks  []string `json:"daily_tasks"`
}

var ErrInvalidPlan = errors.New("invalid plan")

func (p Plan) Validate() error {
	if strings.TrimSpace(p.Summary) == "" {
		return fmt.Errorf("%w: summary is empty", ErrInvalidPlan)
	}
	if len(p.Phases) == 0 {
		return fmt.Errorf("%w: no phases", ErrInvalidPlan)
	}
	for i, ph := range p.Phases {
		if strings.TrimSpace(ph.Name) == "" {
			return fmt.Errorf("%w: phase %d has no name", ErrInvalidPlan, i)
		}
		if ph.Weeks < 0 {
			return fmt.Errorf("%w: phase %q has negative weeks", ErrInvalidPlan, ph.Name)
		}
	}
	return nil
}

// TotalWeeks sums the phase lengths.
func (p Plan) TotalWeeks() int {
	n := 0
	for _, ph := range p.Phases {
		n += ph.Weeks
	}
	return n
}
