// Package catalog holds the built-in preparation approaches, grouped by goal
// field. The data is embedded at build time and parsed once; it is read-only
// afterwards and safe for concurrent use.
package catalog

import (
	_ "embed"
	"fmt"
	"regexp"
	"slices"
	"sort"
	"strconv"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"
)

// DefaultField is the catalog key used for unrecognized fields.
const DefaultField = "default"

type Intensity string

const (
	IntensityLow      Intensity = "low"
	IntensityModerate Intensity = "moderate"
	IntensityHigh     Intensity = "high"
)

func (i Intensity) IsValid() bool {
	switch i {
	case IntensityLow, IntensityModerate, IntensityHigh:
		return true
	default:
		return false
	}
}

type TradeOff string

const (
	TradeOffLow      TradeOff = "low"
	TradeOffMedium   TradeOff = "medium"
	TradeOffVeryHigh TradeOff = "very_high"
)

func (t TradeOff) IsValid() bool {
	switch t {
	case TradeOffLow, TradeOffMedium, TradeOffVeryHigh:
		return true
	default:
		return false
	}
}

type Unit string

const (
	UnitNone   Unit = ""
	UnitWeeks  Unit = "weeks"
	UnitMonths Unit = "months"
)

// Range is a parsed "<min>-<max> <unit>" string.
type Range struct {
	Min  int  `json:"min"`
	Max  int  `json:"max"`
	Unit Unit `json:"unit,omitempty"`
}

// Template describes one way of preparing for a goal.
type Template struct {
	ID                string    `yaml:"id" json:"id"`
	Name              string    `yaml:"name" json:"name"`
	DurationRange     string    `yaml:"duration_range" json:"duration_range"`
	DailyEffortRange  string    `yaml:"daily_effort_range" json:"daily_effort_range"`
	IntensityLevel    Intensity `yaml:"intensity_level" json:"intensity_level"`
	LifestyleTradeOff TradeOff  `yaml:"lifestyle_trade_off" json:"lifestyle_trade_off"`
	WhoThisSuits      string    `yaml:"who_this_suits" json:"who_this_suits"`
	Description       string    `yaml:"description" json:"description"`

	// Parsed once at load time.
	Duration    Range `yaml:"-" json:"duration"`
	DailyEffort Range `yaml:"-" json:"daily_effort"`
}

//go:embed approaches.yaml
var approachesYAML []byte

var (
	loadOnce sync.Once
	byField  map[string][]Template
)

func approaches() map[string][]Template {
	loadOnce.Do(func() {
		m, err := parse(approachesYAML)
		if err != nil {
			panic(fmt.Sprintf("catalog: embedded approaches: %v", err))
		}
		byField = m
	})
	return byField
}

func parse(data []byte) (map[string][]Template, error) {
	var raw map[string][]Template
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	if len(raw[DefaultField]) == 0 {
		return nil, fmt.Errorf("field %q must not be empty", DefaultField)
	}
	for field, list := range raw {
		seen := map[string]bool{}
		for i := range list {
			t := &list[i]
			if t.ID == "" {
				return nil, fmt.Errorf("%s[%d]: id is required", field, i)
			}
			if seen[t.ID] {
				return nil, fmt.Errorf("%s: duplicate id %q", field, t.ID)
			}
			seen[t.ID] = true
			if !t.IntensityLevel.IsValid() {
				return nil, fmt.Errorf("%s/%s: invalid intensity %q", field, t.ID, t.IntensityLevel)
			}
			if !t.LifestyleTradeOff.IsValid() {
				return nil, fmt.Errorf("%s/%s: invalid trade-off %q", field, t.ID, t.LifestyleTradeOff)
			}
			t.Duration = ParseRange(t.DurationRange)
			t.DailyEffort = ParseRange(t.DailyEffortRange)
		}
	}
	return raw, nil
}

var intPattern = regexp.MustCompile(`\d+`)

// ParseRange extracts the first one or two integers of s. A single integer
// yields Min == Max; no integers, or integers that overflow int, yield the
// zero Range.
func ParseRange(s string) Range {
	var r Range
	nums := intPattern.FindAllString(s, 2)
	if len(nums) == 0 {
		return r
	}
	lo, err := strconv.Atoi(nums[0])
	if err != nil {
		return Range{}
	}
	hi := lo
	if len(nums) > 1 {
		if hi, err = strconv.Atoi(nums[1]); err != nil {
			return Range{}
		}
	}
	r.Min, r.Max = lo, hi

	lower := strings.ToLower(s)
	switch {
	case strings.Contains(lower, "month"):
		r.Unit = UnitMonths
	case strings.Contains(lower, "week"):
		r.Unit = UnitWeeks
	}
	return r
}

// ForField returns the approaches registered for field, or the default list
// when field is not a catalog key. The result is never empty.
func ForField(field string) []Template {
	m := approaches()
	if list, ok := m[field]; ok {
		return slices.Clone(list)
	}
	return slices.Clone(m[DefaultField])
}

// ByID looks up an approach in the field's list (with the same default
// fallback as ForField). ok is false when no approach has that id.
func ByID(field, id string) (Template, bool) {
	for _, t := range ForField(field) {
		if t.ID == id {
			return t, true
		}
	}
	return Template{}, false
}

// Fields returns every registered field key, sorted.
func Fields() []string {
	m := approaches()
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// HasField reports whether field is a catalog key (default included).
func HasField(field string) bool {
	_, ok := approaches()[field]
	return ok
}
