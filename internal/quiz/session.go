package quiz

import (
	"errors"
	"slices"
)

var (
	ErrEmptyAnswer = errors.New("answer is required")
	ErrFinished    = errors.New("quiz is already finished")
)

// Session walks through a fixed question list one answer at a time.
// Answering the last question scores the quiz.
type Session struct {
	questions []Question
	answers   map[string]string
	index     int
	results   *Results
}

func NewSession(questions []Question) *Session {
	return &Session{
		questions: slices.Clone(questions),
		answers:   map[string]string{},
	}
}

// NewSessionForField starts a session over the field's question set.
func NewSessionForField(field string) *Session {
	return NewSession(ForField(field))
}

func (s *Session) Len() int   { return len(s.questions) }
func (s *Session) Index() int { return s.index }
func (s *Session) Done() bool { return s.results != nil }

// Current returns the question awaiting an answer. ok is false once finished.
func (s *Session) Current() (Question, bool) {
	if s.Done() || s.index >= len(s.questions) {
		return Question{}, false
	}
	return s.questions[s.index], true
}

// Selected returns the recorded answer for a question, if any.
func (s *Session) Selected(questionID string) string {
	return s.answers[questionID]
}

// Answer records value for the current question. done reports whether this
// answer completed and scored the quiz.
func (s *Session) Answer(value string) (done bool, err error) {
	q, ok := s.Current()
	if !ok {
		if len(s.questions) == 0 {
			return false, ErrNoQuestions
		}
		return false, ErrFinished
	}
	if value == "" {
		return false, ErrEmptyAnswer
	}
	if _, ok := q.Option(value); !ok {
		return false, ErrUnknownOption
	}

	s.answers[q.ID] = value
	if s.index < len(s.questions)-1 {
		s.index++
		return false, nil
	}

	res, err := Score(s.questions, s.answers)
	if err != nil {
		return false, err
	}
	s.results = &res
	return true, nil
}

// Back steps to the previous question, keeping its recorded answer.
func (s *Session) Back() bool {
	if s.Done() || s.index == 0 {
		return false
	}
	s.index--
	return true
}

func (s *Session) Results() (Results, bool) {
	if s.results == nil {
		return Results{}, false
	}
	return *s.results, true
}
