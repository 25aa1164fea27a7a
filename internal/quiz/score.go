// Package quiz implements the skill-calibration quiz: field question sets, a
// one-question-at-a-time session, and the scoring that turns answers into a
// calibrated level and confidence.
package quiz

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

type Level string

const (
	LevelBeginner     Level = "beginner"
	LevelIntermediate Level = "intermediate"
	LevelAdvanced     Level = "advanced"
)

func (l Level) IsValid() bool {
	switch l {
	case LevelBeginner, LevelIntermediate, LevelAdvanced:
		return true
	default:
		return false
	}
}

// ParseLevel maps user input to a Level. ok is false for unknown input.
func ParseLevel(input string) (Level, bool) {
	l := Level(strings.TrimSpace(strings.ToLower(input)))
	return l, l.IsValid()
}

const (
	// SafetyFactor scales the mean raw score down before classification.
	SafetyFactor = 0.88

	IntermediateThreshold = 35.0
	AdvancedThreshold     = 60.0

	MinConfidence = 60
)

var (
	ErrNoQuestions   = errors.New("quiz has no questions")
	ErrIncomplete    = errors.New("quiz is incomplete")
	ErrUnknownOption = errors.New("unknown option")
)

// Results is the outcome of a completed quiz.
type Results struct {
	Answers         map[string]string  `json:"answers"`
	TotalScore      float64            `json:"total_score"`
	CalibratedLevel Level              `json:"calibrated_level"`
	CategoryScores  map[string]float64 `json:"category_scores"`
	Confidence      int                `json:"confidence"`
}

// LevelForScore classifies an adjusted score.
func LevelForScore(adjusted float64) Level {
	switch {
	case adjusted < IntermediateThreshold:
		return LevelBeginner
	case adjusted < AdvancedThreshold:
		return LevelIntermediate
	default:
		return LevelAdvanced
	}
}

// Score computes results for a complete answer mapping. Every question must
// have an answer naming one of its options.
func Score(questions []Question, answers map[string]string) (Results, error) {
	if len(questions) == 0 {
		return Results{}, ErrNoQuestions
	}

	points := make([]float64, len(questions))
	catSum := map[string]float64{}
	catCount := map[string]int{}
	total := 0.0
	for i, q := range questions {
		v, ok := answers[q.ID]
		if !ok || v == "" {
			return Results{}, fmt.Errorf("%w: question %s has no answer", ErrIncomplete, q.ID)
		}
		o, ok := q.Option(v)
		if !ok {
			return Results{}, fmt.Errorf("%w %q for question %s", ErrUnknownOption, v, q.ID)
		}
		p := float64(o.Points)
		points[i] = p
		total += p
		catSum[q.Category] += p
		catCount[q.Category]++
	}

	n := float64(len(questions))
	avg := total / n
	adjusted := avg * SafetyFactor

	categories := make(map[string]float64, len(catSum))
	for c, sum := range catSum {
		categories[c] = sum / float64(catCount[c])
	}

	// Spread is measured against the raw mean, not the adjusted one.
	variance := 0.0
	for _, p := range points {
		d := p - avg
		variance += d * d
	}
	variance /= n

	confidence := int(math.Round(100 - math.Sqrt(variance)))
	if confidence < MinConfidence {
		confidence = MinConfidence
	}

	kept := make(map[string]string, len(questions))
	for _, q := range questions {
		kept[q.ID] = answers[q.ID]
	}

	return Results{
		Answers:         kept,
		TotalScore:      adjusted,
		CalibratedLevel: LevelForScore(adjusted),
		CategoryScores:  categories,
		Confidence:      confidence,
	}, nil
}
