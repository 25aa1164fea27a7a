package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Pathfy theme (CLI + TUI).

const (
	IconPath    = "🧭"
	IconSparkle = "✨"
	IconPlus    = "➕"
	IconDone    = "✅"
	IconTarget  = "🎯"
	IconClock   = "⏱️"
	IconInfo    = "ℹ️"
	IconWarn    = "⚠️"
	IconError   = "🧨"
	IconQuiz    = "📝"
	IconPlan    = "📜"
	IconStar    = "★"
)

var (
	cPrimary = lipgloss.Color("63")  // blue
	cAccent  = lipgloss.Color("205") // magenta
	cGood    = lipgloss.Color("42")  // green
	cWarn    = lipgloss.Color("214") // orange
	cBad     = lipgloss.Color("196") // red
	cMuted   = lipgloss.Color("244") // gray
	cGold    = lipgloss.Color("220") // gold
)

var (
	Title = lipgloss.NewStyle().Bold(true).Foreground(cAccent)
	H2    = lipgloss.NewStyle().Bold(true).Foreground(cPrimary)
	Muted = lipgloss.NewStyle().Foreground(cMuted)
	Key   = lipgloss.NewStyle().Bold(true).Foreground(cPrimary)
	Good  = lipgloss.NewStyle().Bold(true).Foreground(cGood)
	Warn  = lipgloss.NewStyle().Bold(true).Foreground(cWarn)
	Bad   = lipgloss.NewStyle().Bold(true).Foreground(cBad)
	Gold  = lipgloss.NewStyle().Bold(true).Foreground(cGold)

	Panel       = lipgloss.NewStyle().BorderStyle(lipgloss.RoundedBorder()).BorderForeground(cMuted).Padding(0, 1)
	PanelTitle  = lipgloss.NewStyle().Bold(true).Foreground(cPrimary)
	SelectedRow = lipgloss.NewStyle().Bold(true).Foreground(cGold)
)

func Heading(icon string, title string) string {
	icon = strings.TrimSpace(icon)
	if icon != "" {
		icon += " "
	}
	return Title.Render(icon + title)
}

func LabelValue(label string, value any) string {
	return fmt.Sprintf("%s %v", Key.Render(label+":"), value)
}

// FitBadge colours a fit status: green for good_fit, orange for
// needs_adjustment, red for high_pressure.
func FitBadge(status string) string {
	switch status {
	case "good_fit":
		return Good.Render("GOOD FIT")
	case "needs_adjustment":
		return Warn.Render("NEEDS ADJUSTMENT")
	case "high_pressure":
		return Bad.Render("HIGH PRESSURE")
	default:
		return Muted.Render(status)
	}
}

func RiskBadge(level string) string {
	switch level {
	case "low":
		return Good.Render("low risk")
	case "moderate":
		return Warn.Render("moderate risk")
	case "high":
		return Bad.Render("high risk")
	default:
		return Muted.Render(level)
	}
}

func LevelText(level string) string {
	switch level {
	case "advanced":
		return Gold.Render(level)
	case "intermediate":
		return H2.Render(level)
	default:
		return Muted.Render(level)
	}
}
