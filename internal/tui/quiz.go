package tui

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/meeharshu8685-dot/pathfy-1-sub000/internal/quiz"
	"github.com/meeharshu8685-dot/pathfy-1-sub000/internal/ui"
)

// recordFunc persists a finished set of answers and returns the stored results.
type recordFunc func(answers map[string]string) (quiz.Results, error)

type quizKeys struct {
	Up     key.Binding
	Down   key.Binding
	Answer key.Binding
	Back   key.Binding
	Quit   key.Binding
}

func (k quizKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Answer, k.Back, k.Quit}
}

func (k quizKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

func newQuizKeys() quizKeys {
	return quizKeys{
		Up:     key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:   key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Answer: key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter", "answer")),
		Back:   key.NewBinding(key.WithKeys("backspace", "b"), key.WithHelp("b", "back")),
		Quit:   key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

type quizModel struct {
	session *quiz.Session
	record  recordFunc

	cursor   int
	keys     quizKeys
	help     help.Model
	progress progress.Model

	saving  bool
	results *quiz.Results
	lastLog string
	err     error
}

type recordedMsg struct {
	results quiz.Results
	err     error
}

func newQuizModel(questions []quiz.Question, record recordFunc) quizModel {
	return quizModel{
		session:  quiz.NewSession(questions),
		record:   record,
		keys:     newQuizKeys(),
		help:     help.New(),
		progress: progress.New(progress.WithDefaultGradient(), progress.WithWidth(40)),
	}
}

func (m quizModel) Init() tea.Cmd { return nil }

func (m quizModel) recordCmd(answers map[string]string) tea.Cmd {
	return func() tea.Msg {
		res, err := m.record(answers)
		return recordedMsg{results: res, err: err}
	}
}

func (m quizModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		m.progress.Width = min(max(msg.Width-10, 10), 60)
		return m, nil
	case recordedMsg:
		m.saving = false
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		res := msg.results
		m.results = &res
		return m, nil
	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Quit) {
			return m, tea.Quit
		}
		if m.session.Done() {
			return m, nil
		}
		q, ok := m.session.Current()
		if !ok {
			return m, nil
		}
		switch {
		case key.Matches(msg, m.keys.Up):
			if m.cursor > 0 {
				m.cursor--
			}
		case key.Matches(msg, m.keys.Down):
			if m.cursor < len(q.Options)-1 {
				m.cursor++
			}
		case key.Matches(msg, m.keys.Back):
			if m.session.Back() {
				m.cursor = m.cursorFor(m.currentQuestion())
				m.lastLog = ""
			}
		case key.Matches(msg, m.keys.Answer):
			done, err := m.session.Answer(q.Options[m.cursor].Value)
			if err != nil {
				m.lastLog = err.Error()
				return m, nil
			}
			if !done {
				m.cursor = m.cursorFor(m.currentQuestion())
				return m, nil
			}
			res, _ := m.session.Results()
			m.saving = true
			return m, m.recordCmd(res.Answers)
		}
	}
	return m, nil
}

func (m quizModel) currentQuestion() quiz.Question {
	q, _ := m.session.Current()
	return q
}

// cursorFor points at the previously chosen option, or the first one.
func (m quizModel) cursorFor(q quiz.Question) int {
	chosen := m.session.Selected(q.ID)
	for i, o := range q.Options {
		if o.Value == chosen {
			return i
		}
	}
	return 0
}

func (m quizModel) View() string {
	if m.err != nil {
		return "Error: " + m.err.Error() + "\n\nPress q to quit.\n"
	}
	if m.results != nil {
		return m.renderResults(*m.results)
	}
	if m.saving {
		return "Scoring…\n"
	}
	q, ok := m.session.Current()
	if !ok {
		return "No questions.\n"
	}

	var b strings.Builder
	b.WriteString(ui.Heading(ui.IconQuiz, "Skill calibration") + "\n")
	b.WriteString(m.progress.ViewAs(float64(m.session.Index())/float64(m.session.Len())))
	b.WriteString(ui.Muted.Render(fmt.Sprintf("  %d/%d", m.session.Index()+1, m.session.Len())) + "\n\n")
	b.WriteString(ui.H2.Render(q.Text) + "\n\n")
	for i, o := range q.Options {
		if i == m.cursor {
			b.WriteString("> " + ui.SelectedRow.Render(o.Label) + "\n")
			continue
		}
		b.WriteString("  " + o.Label + "\n")
	}
	if m.lastLog != "" {
		b.WriteString("\n" + ui.Warn.Render(m.lastLog) + "\n")
	}
	b.WriteString("\n" + m.help.View(m.keys))
	return b.String()
}

func (m quizModel) renderResults(r quiz.Results) string {
	cats := make([]string, 0, len(r.CategoryScores))
	for c := range r.CategoryScores {
		cats = append(cats, c)
	}
	sort.Strings(cats)

	lines := []string{
		ui.Heading(ui.IconDone, "Quiz complete"),
		"",
		ui.LabelValue("Level", ui.LevelText(string(r.CalibratedLevel))),
		ui.LabelValue("Score", fmt.Sprintf("%.1f", r.TotalScore)),
		ui.LabelValue("Confidence", fmt.Sprintf("%d%%", r.Confidence)),
	}
	for _, c := range cats {
		lines = append(lines, ui.Muted.Render(fmt.Sprintf("  %-14s %.0f", c, r.CategoryScores[c])))
	}
	lines = append(lines, "", ui.Muted.Render("Press q to quit."))
	return strings.Join(lines, "\n") + "\n"
}
