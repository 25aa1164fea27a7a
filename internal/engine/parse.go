package engine

import (
	"strings"

	"github.com/meeharshu8685-dot/pathfy-1-sub000/internal/catalog"
	"github.com/meeharshu8685-dot/pathfy-1-sub000/internal/quiz"
)

// ParseField normalizes user input to a catalog field key.
// Supported aliases: code/programming, exam/test, government, startup,
// design/writing, health/fitness, music, doctor/nursing.
// Empty or unrecognized input maps to "other".
func ParseField(input string) string {
	s := strings.TrimSpace(strings.ToLower(input))
	switch s {
	case "code", "coding", "programming", "software":
		return "tech"
	case "exam", "test", "tests":
		return "exams"
	case "government", "civil", "civil_service":
		return "govt"
	case "startup", "entrepreneurship":
		return "business"
	case "design", "writing":
		return "creative"
	case "health", "fitness":
		return "sports"
	case "music", "art":
		return "arts"
	case "doctor", "nursing", "medicine":
		return "medical"
	}
	if s != "" && s != catalog.DefaultField && catalog.HasField(s) {
		return s
	}
	return "other"
}

// ParseSkillLevel parses user input to a quiz level. Empty or unrecognized
// input maps to beginner.
func ParseSkillLevel(input string) quiz.Level {
	if l, ok := quiz.ParseLevel(input); ok {
		return l
	}
	return quiz.LevelBeginner
}
