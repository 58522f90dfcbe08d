// Package tui is the interactive advisor chat: a menu of report
// actions, a free-text questionnaire for recommendations, and a
// scrollable report viewer.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/openabit/advisor/internal/advisor"
	"github.com/openabit/advisor/internal/cli"
	"github.com/openabit/advisor/internal/model"
)

// State represents the current state of the TUI.
type State int

const (
	StateMenu State = iota
	StateInput
	StateReport
)

// menuAction identifies what a menu entry does when selected.
type menuAction int

const (
	actionCompare menuAction = iota
	actionRecommend
	actionDetail
	actionCareers
	actionAdmission
	actionQuit
)

type menuItem struct {
	label   string
	program string // program name for per-program actions
	action  menuAction
}

// Model holds the chat TUI state.
type Model struct {
	engine   *advisor.Advisor
	keymap   KeyMap
	items    []menuItem
	textarea textarea.Model
	viewport viewport.Model
	cursor   int
	state    State
	width    int
	height   int
	ready    bool
	quitting bool
}

// NewModel builds the chat model over a constructed advisor engine.
func NewModel(engine *advisor.Advisor) Model {
	ta := textarea.New()
	ta.Placeholder = "Например: знаю Python, изучал статистику, хочу стать ML-инженером"
	ta.CharLimit = 1000
	ta.SetHeight(5)

	return Model{
		engine:   engine,
		keymap:   DefaultKeyMap(),
		items:    buildMenu(engine.Programs()),
		textarea: ta,
		state:    StateMenu,
	}
}

func buildMenu(programs []model.Program) []menuItem {
	items := []menuItem{
		{label: "📊 Сравнение программ", action: actionCompare},
		{label: "💡 Рекомендации по дисциплинам", action: actionRecommend},
	}
	for _, p := range programs {
		items = append(items, menuItem{
			label:   fmt.Sprintf("🎯 Детали: %s", p.Name),
			program: p.Name,
			action:  actionDetail,
		})
	}
	for _, p := range programs {
		items = append(items, menuItem{
			label:   fmt.Sprintf("💼 Карьерные пути: %s", p.Name),
			program: p.Name,
			action:  actionCareers,
		})
		items = append(items, menuItem{
			label:   fmt.Sprintf("🎓 Поступление: %s", p.Name),
			program: p.Name,
			action:  actionAdmission,
		})
	}
	items = append(items, menuItem{label: "❌ Выход", action: actionQuit})
	return items
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return tea.EnterAltScreen
}

// Update handles incoming messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.viewport = viewport.New(msg.Width-4, msg.Height-6)
		m.textarea.SetWidth(msg.Width - 4)
		m.ready = true
		return m, nil

	case tea.KeyMsg:
		switch m.state {
		case StateMenu:
			return m.updateMenu(msg)
		case StateInput:
			return m.updateInput(msg)
		case StateReport:
			return m.updateReport(msg)
		}
	}

	return m, nil
}

func (m Model) updateMenu(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keymap.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keymap.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, m.keymap.Down):
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}
	case key.Matches(msg, m.keymap.Select):
		return m.selectItem(m.items[m.cursor])
	}
	return m, nil
}

func (m Model) selectItem(item menuItem) (tea.Model, tea.Cmd) {
	switch item.action {
	case actionQuit:
		m.quitting = true
		return m, tea.Quit
	case actionRecommend:
		m.state = StateInput
		m.textarea.Reset()
		return m, m.textarea.Focus()
	case actionCompare:
		return m.showReport(m.engine.Compare()), nil
	case actionDetail:
		report, err := m.engine.Detail(item.program)
		if err != nil {
			report = "❌ Программа не найдена"
		}
		return m.showReport(report), nil
	case actionCareers:
		report, err := m.engine.CareerPaths(item.program)
		if err != nil {
			report = "❌ Программа не найдена"
		}
		return m.showReport(report), nil
	case actionAdmission:
		report, err := m.engine.AdmissionInfo(item.program)
		if err != nil {
			report = "❌ Программа не найдена"
		}
		return m.showReport(report), nil
	}
	return m, nil
}

func (m Model) updateInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case msg.Type == tea.KeyCtrlC:
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keymap.Back):
		m.state = StateMenu
		m.textarea.Blur()
		return m, nil
	case key.Matches(msg, m.keymap.Submit):
		text := m.textarea.Value()
		m.textarea.Blur()
		return m.showReport(m.recommendationReport(text)), nil
	}

	var cmd tea.Cmd
	m.textarea, cmd = m.textarea.Update(msg)
	return m, cmd
}

func (m Model) updateReport(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keymap.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keymap.Back), key.Matches(msg, m.keymap.Select):
		m.state = StateMenu
		return m, nil
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m Model) showReport(report string) Model {
	m.state = StateReport
	m.viewport.SetContent(report)
	m.viewport.GotoTop()
	return m
}

// recommendationReport combines the program verdicts, cluster guidance
// and the top ranked electives per program into one chat answer.
func (m Model) recommendationReport(text string) string {
	profile := m.engine.ExtractProfile(text)

	var b strings.Builder
	b.WriteString(m.engine.Recommend(text))
	b.WriteString("\n📚 С чего начать:\n")
	b.WriteString(m.engine.ClusterGuidance(profile))

	for _, p := range m.engine.Programs() {
		recs := m.engine.RankCourses(p, profile)
		if len(recs) > 5 {
			recs = recs[:5]
		}
		fmt.Fprintf(&b, "\n🎯 %s — подходящие дисциплины:\n", p.Name)
		for _, rec := range recs {
			fmt.Fprintf(&b, "   %s %s (%.1f/10)\n      %s\n",
				priorityEmoji(rec.Priority), rec.Course.Name, rec.Score, rec.Reason)
		}
	}

	return b.String()
}

func priorityEmoji(p model.Priority) string {
	switch p {
	case model.PriorityHigh:
		return "🔥"
	case model.PriorityMedium:
		return "⭐"
	default:
		return "💡"
	}
}

// View renders the current state.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if !m.ready {
		return "Загрузка..."
	}

	switch m.state {
	case StateInput:
		return m.viewInput()
	case StateReport:
		return m.viewReport()
	default:
		return m.viewMenu()
	}
}

func (m Model) viewMenu() string {
	var b strings.Builder
	b.WriteString(cli.TitleStyle.Render("🎓 Помощник абитуриента магистратуры"))
	b.WriteString("\n\n")

	for i, item := range m.items {
		if i == m.cursor {
			b.WriteString(cli.BoldStyle.Render("→ " + item.label))
		} else {
			b.WriteString("  " + item.label)
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(cli.SubtleStyle.Render("↑/↓ выбор · enter открыть · q выход"))
	return b.String()
}

func (m Model) viewInput() string {
	var b strings.Builder
	b.WriteString(cli.TitleStyle.Render("💬 Расскажите о себе"))
	b.WriteString("\n")
	b.WriteString(cli.SubtitleStyle.Render("Навыки, образование, опыт работы, карьерные цели"))
	b.WriteString("\n")
	b.WriteString(m.textarea.View())
	b.WriteString("\n\n")
	b.WriteString(cli.SubtleStyle.Render("ctrl+d отправить · esc назад"))
	return b.String()
}

func (m Model) viewReport() string {
	var b strings.Builder
	b.WriteString(m.viewport.View())
	b.WriteString("\n")
	b.WriteString(cli.SubtleStyle.Render("↑/↓ прокрутка · esc в меню · q выход"))
	return b.String()
}
