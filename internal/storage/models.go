package storage

import "time"

type Goal struct {
	ID       string
	Title    string
	Field    string
	Deadline string // YYYY-MM-DD

	HoursPerWeek         float64
	HoursPerDay          *float64
	SkillLevel           string
	CalibratedSkillLevel *string
	HasOtherCommitments  bool

	SelectedApproachID *string
	PlanJSON           *string
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

type QuizResult struct {
	ID              string
	GoalID          string
	Field           string
	Answers         map[string]string
	TotalScore      float64
	CalibratedLevel string
	CategoryScores  map[string]float64
	Confidence      int
	CreatedAt       time.Time
}

type Evaluation struct {
	GoalID      string
	ApproachID  string
	FitStatus   string
	RiskLevel   string
	Reasoning   string
	EvaluatedAt time.Time
}
