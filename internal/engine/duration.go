package engine

import (
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/meeharshu8685-dot/pathfy-1-sub000/internal/catalog"
	"github.com/meeharshu8685-dot/pathfy-1-sub000/internal/storage"
)

// DefaultDurationWeeks is used when a duration string has no numbers.
const DefaultDurationWeeks = 12

const deadlineLayout = "2006-01-02"

var durationInts = regexp.MustCompile(`\d+`)

// maxDurationWeeks bounds parsed durations; anything larger is treated as
// unparseable.
const maxDurationWeeks = math.MaxInt32

// ParseApproachDuration converts a range such as "3-6 months" to weeks:
// the mean of the first two numbers, times 4 when the text mentions months,
// rounded to the nearest integer. Text without usable numbers yields
// DefaultDurationWeeks.
func ParseApproachDuration(s string) int {
	nums := durationInts.FindAllString(s, 2)
	if len(nums) == 0 {
		return DefaultDurationWeeks
	}
	lo, err := strconv.Atoi(nums[0])
	if err != nil {
		return DefaultDurationWeeks
	}
	hi := lo
	if len(nums) > 1 {
		if hi, err = strconv.Atoi(nums[1]); err != nil {
			return DefaultDurationWeeks
		}
	}
	weeks := (float64(lo) + float64(hi)) / 2
	if strings.Contains(strings.ToLower(s), "month") {
		weeks *= 4
	}
	weeks = math.Round(weeks)
	if weeks > maxDurationWeeks {
		return DefaultDurationWeeks
	}
	return int(weeks)
}

// GoalDuration is the number of weeks a goal is planned over.
type GoalDuration struct {
	Weeks        int            `json:"weeks"`
	Source       DurationSource `json:"source"`
	ApproachName string         `json:"approach_name,omitempty"`
}

// GoalDurationWeeks uses the goal's selected approach when it resolves in
// the catalog and otherwise counts whole weeks until the deadline (at least 1).
func GoalDurationWeeks(g storage.Goal, now time.Time) GoalDuration {
	if g.SelectedApproachID != nil && *g.SelectedApproachID != "" && g.Field != "" {
		if t, ok := catalog.ByID(g.Field, *g.SelectedApproachID); ok {
			return GoalDuration{
				Weeks:        ParseApproachDuration(t.DurationRange),
				Source:       SourceApproach,
				ApproachName: t.Name,
			}
		}
	}

	weeks := 1
	if deadline, ok := parseDeadline(g.Deadline); ok {
		w := int(math.Ceil(deadline.Sub(now).Hours() / (24 * 7)))
		weeks = max(w, 1)
	}
	return GoalDuration{Weeks: weeks, Source: SourceDeadline}
}

func parseDeadline(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	if t, err := time.Parse(deadlineLayout, s); err == nil {
		return t, true
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, true
	}
	return time.Time{}, false
}
