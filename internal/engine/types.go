package engine

// FitStatus classifies how well an approach fits a user's availability.
// Values are ordered from least to most severe.
type FitStatus string

const (
	FitGood            FitStatus = "good_fit"
	FitNeedsAdjustment FitStatus = "needs_adjustment"
	FitHighPressure    FitStatus = "high_pressure"
)

func (f FitStatus) IsValid() bool {
	return f.rank() >= 0
}

func (f FitStatus) rank() int {
	switch f {
	case FitGood:
		return 0
	case FitNeedsAdjustment:
		return 1
	case FitHighPressure:
		return 2
	default:
		return -1
	}
}

// worse returns the more severe of f and other.
func (f FitStatus) worse(other FitStatus) FitStatus {
	if other.rank() > f.rank() {
		return other
	}
	return f
}

type RiskLevel string

const (
	RiskLow      RiskLevel = "low"
	RiskModerate RiskLevel = "moderate"
	RiskHigh     RiskLevel = "high"
)

func (r RiskLevel) IsValid() bool {
	return r.rank() >= 0
}

func (r RiskLevel) rank() int {
	switch r {
	case RiskLow:
		return 0
	case RiskModerate:
		return 1
	case RiskHigh:
		return 2
	default:
		return -1
	}
}

func (r RiskLevel) worse(other RiskLevel) RiskLevel {
	if other.rank() > r.rank() {
		return other
	}
	return r
}

// DurationSource tells where a goal's week count came from.
type DurationSource string

const (
	SourceApproach DurationSource = "approach"
	SourceDeadline DurationSource = "deadline"
)
