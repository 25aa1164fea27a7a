package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/meeharshu8685-dot/pathfy-1-sub000/internal/engine"
	"github.com/meeharshu8685-dot/pathfy-1-sub000/internal/storage"
	"github.com/meeharshu8685-dot/pathfy-1-sub000/internal/ui"
)

// GoalBoard is the part of engine.Service the board needs.
type GoalBoard interface {
	Goal(ctx context.Context, id string) (*storage.Goal, error)
	EvaluateGoal(ctx context.Context, id string) ([]engine.Evaluation, error)
	GoalDuration(ctx context.Context, id string) (engine.GoalDuration, error)
	SelectApproach(ctx context.Context, id string, approachID string) (*storage.Goal, error)
}

type boardKeys struct {
	Up     key.Binding
	Down   key.Binding
	Select key.Binding
	Reload key.Binding
	Quit   key.Binding
}

func (k boardKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Select, k.Reload, k.Quit}
}

func (k boardKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

func newBoardKeys() boardKeys {
	return boardKeys{
		Up:     key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:   key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Select: key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter", "choose approach")),
		Reload: key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "re-evaluate")),
		Quit:   key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

type boardModel struct {
	ctx    context.Context
	svc    GoalBoard
	goalID string

	width int

	goal     *storage.Goal
	evals    []engine.Evaluation
	duration engine.GoalDuration

	selected int
	keys     boardKeys
	help     help.Model

	lastLog string
	loading bool
	err     error
}

type loadedMsg struct {
	goal     *storage.Goal
	evals    []engine.Evaluation
	duration engine.GoalDuration
	err      error
}

type selectedMsg struct {
	approachID string
	err        error
}

func newBoardModel(ctx context.Context, svc GoalBoard, goalID string) boardModel {
	return boardModel{
		ctx:     ctx,
		svc:     svc,
		goalID:  goalID,
		keys:    newBoardKeys(),
		help:    help.New(),
		loading: true,
		lastLog: "Loading…",
	}
}

func (m boardModel) Init() tea.Cmd {
	return m.loadCmd()
}

func (m boardModel) loadCmd() tea.Cmd {
	return func() tea.Msg {
		g, err := m.svc.Goal(m.ctx, m.goalID)
		if err != nil {
			return loadedMsg{err: err}
		}
		evals, err := m.svc.EvaluateGoal(m.ctx, m.goalID)
		if err != nil {
			return loadedMsg{err: err}
		}
		d, err := m.svc.GoalDuration(m.ctx, m.goalID)
		if err != nil {
			return loadedMsg{err: err}
		}
		return loadedMsg{goal: g, evals: evals, duration: d}
	}
}

func (m boardModel) selectCmd(approachID string) tea.Cmd {
	return func() tea.Msg {
		_, err := m.svc.SelectApproach(m.ctx, m.goalID, approachID)
		return selectedMsg{approachID: approachID, err: err}
	}
}

func (m boardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		return m, nil
	case loadedMsg:
		m.loading = false
		m.err = msg.err
		if msg.err != nil {
			return m, nil
		}
		m.goal = msg.goal
		m.evals = msg.evals
		m.duration = msg.duration
		if m.selected >= len(m.evals) {
			m.selected = max(len(m.evals)-1, 0)
		}
		m.lastLog = fmt.Sprintf("Evaluated %d approaches at %s.", len(m.evals), time.Now().Format("15:04:05"))
		return m, nil
	case selectedMsg:
		if msg.err != nil {
			m.lastLog = "Select failed: " + msg.err.Error()
			return m, nil
		}
		m.lastLog = "Selected " + msg.approachID + "."
		return m, m.loadCmd()
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Reload):
			m.loading = true
			m.lastLog = "Re-evaluating…"
			return m, m.loadCmd()
		case key.Matches(msg, m.keys.Up):
			if m.selected > 0 {
				m.selected--
			}
			return m, nil
		case key.Matches(msg, m.keys.Down):
			if m.selected < len(m.evals)-1 {
				m.selected++
			}
			return m, nil
		case key.Matches(msg, m.keys.Select):
			if m.selected < 0 || m.selected >= len(m.evals) {
				return m, nil
			}
			id := m.evals[m.selected].Approach.ID
			m.lastLog = "Selecting " + id + "…"
			return m, m.selectCmd(id)
		}
	}
	return m, nil
}

func (m boardModel) View() string {
	if m.err != nil {
		return "Error: " + m.err.Error() + "\n\nPress q to quit.\n"
	}
	if m.goal == nil {
		return "Pathfy — loading…\n"
	}

	var b strings.Builder
	b.WriteString(m.renderHeader())
	b.WriteString("\n\n")
	b.WriteString(m.renderList())
	b.WriteString("\n")
	if d := m.renderDetail(); d != "" {
		b.WriteString(d)
		b.WriteString("\n")
	}
	b.WriteString("\n" + m.lastLog + "\n")
	b.WriteString(m.help.View(m.keys))
	return b.String()
}

func (m boardModel) renderHeader() string {
	g := m.goal
	dur := fmt.Sprintf("%d weeks (%s)", m.duration.Weeks, m.duration.Source)
	if m.duration.ApproachName != "" {
		dur = fmt.Sprintf("%d weeks via %s", m.duration.Weeks, m.duration.ApproachName)
	}
	return ui.Heading(ui.IconPath, g.Title) + "\n" +
		ui.Muted.Render(fmt.Sprintf("field %s | deadline %s | %s", g.Field, g.Deadline, dur))
}

func (m boardModel) renderList() string {
	if len(m.evals) == 0 {
		return "(no approaches)"
	}
	chosen := ""
	if m.goal.SelectedApproachID != nil {
		chosen = *m.goal.SelectedApproachID
	}

	var lines []string
	for i, e := range m.evals {
		cursor := "  "
		name := e.Approach.Name
		if i == m.selected {
			cursor = "> "
			name = ui.SelectedRow.Render(name)
		}
		mark := "  "
		if e.Approach.ID == chosen {
			mark = ui.Gold.Render(ui.IconStar) + " "
		}
		lines = append(lines, fmt.Sprintf("%s%s%s  %s · %s", cursor, mark, name, ui.FitBadge(string(e.FitStatus)), ui.RiskBadge(string(e.RiskLevel))))
	}
	return strings.Join(lines, "\n")
}

func (m boardModel) renderDetail() string {
	if m.selected < 0 || m.selected >= len(m.evals) {
		return ""
	}
	e := m.evals[m.selected]
	t := e.Approach
	body := strings.Join([]string{
		ui.PanelTitle.Render(t.Name),
		ui.LabelValue("Duration", t.DurationRange),
		ui.LabelValue("Daily effort", t.DailyEffortRange+" h"),
		ui.LabelValue("Intensity", t.IntensityLevel),
		ui.LabelValue("Lifestyle trade-off", t.LifestyleTradeOff),
		ui.LabelValue("Suits", t.WhoThisSuits),
		"",
		wrap(e.Reasoning, m.panelWidth()),
	}, "\n")
	return ui.Panel.Render(body)
}

func (m boardModel) panelWidth() int {
	if m.width <= 0 {
		return 72
	}
	return max(m.width-6, 20)
}

// wrap breaks s on spaces so no line exceeds width runes.
func wrap(s string, width int) string {
	words := strings.Fields(s)
	if len(words) == 0 {
		return ""
	}
	var (
		b    strings.Builder
		line int
	)
	for i, w := range words {
		n := len([]rune(w))
		if i > 0 {
			if line+1+n > width {
				b.WriteString("\n")
				line = 0
			} else {
				b.WriteString(" ")
				line++
			}
		}
		b.WriteString(w)
		line += n
	}
	return b.String()
}
