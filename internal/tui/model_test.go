package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openabit/advisor/internal/advisor"
	"github.com/openabit/advisor/internal/catalog"
)

func newTestModel(t *testing.T) Model {
	t.Helper()
	engine, err := advisor.New(catalog.Static())
	require.NoError(t, err)

	m := NewModel(engine)
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	return updated.(Model)
}

func keyMsg(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestMenuHasEntriesForEveryProgram(t *testing.T) {
	m := newTestModel(t)

	// Compare + recommend + per-program detail, careers, admission +
	// quit: 2 + 2 + 2*2 + 1.
	assert.Len(t, m.items, 9)
	assert.Equal(t, StateMenu, m.state)
}

func TestMenuNavigation(t *testing.T) {
	m := newTestModel(t)

	updated, _ := m.Update(keyMsg("j"))
	m = updated.(Model)
	assert.Equal(t, 1, m.cursor)

	updated, _ = m.Update(keyMsg("k"))
	m = updated.(Model)
	assert.Equal(t, 0, m.cursor)

	// Cursor does not move above the first entry.
	updated, _ = m.Update(keyMsg("k"))
	m = updated.(Model)
	assert.Equal(t, 0, m.cursor)
}

func TestSelectCompareShowsReport(t *testing.T) {
	m := newTestModel(t)

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = updated.(Model)

	assert.Equal(t, StateReport, m.state)
	assert.Contains(t, m.viewport.View(), "Сравнение магистерских программ")
}

func TestSelectRecommendOpensInput(t *testing.T) {
	m := newTestModel(t)

	updated, _ := m.Update(keyMsg("j"))
	m = updated.(Model)
	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = updated.(Model)

	assert.Equal(t, StateInput, m.state)
}

func TestEscReturnsToMenu(t *testing.T) {
	m := newTestModel(t)

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = updated.(Model)
	require.Equal(t, StateReport, m.state)

	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	m = updated.(Model)
	assert.Equal(t, StateMenu, m.state)
}

func TestQuitFromMenu(t *testing.T) {
	m := newTestModel(t)

	updated, cmd := m.Update(keyMsg("q"))
	m = updated.(Model)

	assert.True(t, m.quitting)
	require.NotNil(t, cmd)
}

func TestRecommendationReportListsCourses(t *testing.T) {
	m := newTestModel(t)

	report := m.recommendationReport("знаю python и математику, хочу стать ml engineer")

	assert.Contains(t, report, "💡 Рекомендации по дисциплинам:")
	assert.Contains(t, report, "📚 С чего начать:")
	assert.Contains(t, report, "подходящие дисциплины")
}
