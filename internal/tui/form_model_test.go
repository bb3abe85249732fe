package tui

import (
	"context"
	"errors"
	"testing"
	"unicode/utf8"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/footprint/internal/emissions"
	"github.com/rshade/footprint/internal/engine"
)

func newTestForm(t *testing.T, initial emissions.Observations) *FormModel {
	t.Helper()
	eng := engine.New(nil)
	return NewFormModel(context.Background(), eng.Catalog().Activities(), initial, nil, eng.Estimate)
}

func key(k tea.KeyType) tea.KeyMsg { return tea.KeyMsg{Type: k} }

func runes(s string) tea.KeyMsg { return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)} }

func TestNewFormModel(t *testing.T) {
	m := newTestForm(t, emissions.Observations{emissions.Bus: "12"})

	require.Len(t, m.rows, emissions.Default().Len())
	assert.Equal(t, FormStateEditing, m.State())

	obs := m.Observations()
	assert.Equal(t, "12", obs[emissions.Bus])
	assert.Equal(t, emissions.DefaultQuantity, obs[emissions.Beef])

	assert.NotNil(t, m.Init(), "first calculation scheduled")
}

func TestFormModel_Navigation(t *testing.T) {
	m := newTestForm(t, nil)

	m.Update(key(tea.KeyUp))
	assert.Equal(t, 0, m.focused, "stays at top")

	m.Update(key(tea.KeyDown))
	m.Update(runes("j"))
	assert.Equal(t, 2, m.focused)

	m.Update(runes("k"))
	m.Update(key(tea.KeyShiftTab))
	assert.Equal(t, 0, m.focused)

	for range len(m.rows) + 3 {
		m.Update(key(tea.KeyTab))
	}
	assert.Equal(t, len(m.rows)-1, m.focused, "stays at bottom")
}

func TestFormModel_EditAndRecalculate(t *testing.T) {
	m := newTestForm(t, nil)
	m.Update(key(tea.KeyDown))
	id := m.rows[1].Activity.ID

	m.Update(key(tea.KeyEnter))
	require.True(t, m.editing)

	m.Update(key(tea.KeyBackspace))
	m.Update(runes("5"))
	_, cmd := m.Update(key(tea.KeyEnter))

	require.NotNil(t, cmd)
	assert.False(t, m.editing)
	assert.True(t, m.loading)
	assert.Equal(t, "5", m.rows[1].Value)
	assert.Equal(t, "5", m.Observations()[id])

	report, err := engine.New(nil).Estimate(context.Background(), m.Observations())
	require.NoError(t, err)

	m.Update(formRecalculateMsg{seq: m.seq - 1, report: nil})
	assert.True(t, m.loading, "stale result ignored")

	m.Update(formRecalculateMsg{seq: m.seq, report: report})
	assert.False(t, m.loading)
	assert.Same(t, report, m.Report())
	assert.Contains(t, m.View(), "Total emissions:")
}

func TestFormModel_EditCancel(t *testing.T) {
	m := newTestForm(t, nil)
	m.Update(key(tea.KeyEnter))
	m.Update(runes("9"))
	_, cmd := m.Update(key(tea.KeyEsc))

	assert.Nil(t, cmd)
	assert.False(t, m.editing)
	assert.Equal(t, emissions.DefaultQuantity, m.rows[0].Value)
	assert.Equal(t, FormStateEditing, m.State(), "esc while editing only cancels the edit")
}

func TestFormModel_InvalidValueKept(t *testing.T) {
	m := newTestForm(t, nil)
	m.Update(key(tea.KeyEnter))
	m.Update(key(tea.KeyBackspace))
	m.Update(runes("abc"))
	m.Update(key(tea.KeyEnter))

	assert.Equal(t, "abc", m.rows[0].Value, "text is kept and later counts as zero")
}

func TestFormModel_RecalculateError(t *testing.T) {
	m := newTestForm(t, nil)
	m.recalculateFn = func(context.Context, emissions.Observations) (*engine.Report, error) {
		return nil, errors.New("boom")
	}
	m.triggerRecalculation()
	m.Update(formRecalculateMsg{seq: m.seq, err: errors.New("boom")})

	assert.Equal(t, FormStateError, m.State())
	assert.Contains(t, m.View(), "boom")
}

func TestFormModel_SubmitAndQuit(t *testing.T) {
	m := newTestForm(t, nil)
	_, cmd := m.Update(runes("s"))
	require.NotNil(t, cmd)
	assert.True(t, m.Submitted())
	assert.Empty(t, m.View())

	m = newTestForm(t, nil)
	m.Update(runes("q"))
	assert.Equal(t, FormStateQuitting, m.State())
	assert.False(t, m.Submitted())

	m = newTestForm(t, nil)
	m.Update(key(tea.KeyCtrlC))
	assert.Equal(t, FormStateQuitting, m.State())
}

func TestFormModel_ViewWithoutReport(t *testing.T) {
	m := NewFormModel(context.Background(), emissions.Default().Members(emissions.CategoryTransport), nil, nil, nil)
	assert.Nil(t, m.Init())

	view := m.View()
	assert.Contains(t, view, "Transport")
	assert.Contains(t, view, "How many kilometers did you travel by bus?")

	m.Update(tea.WindowSizeMsg{Width: 120, Height: 50})
	assert.Equal(t, 120, m.width)

	m.SetChartWidth(5)
	assert.Equal(t, DefaultChartWidth, m.maxChart)
	m.SetChartWidth(70)
	assert.Equal(t, 70, m.maxChart)
}

func TestFitPrompt(t *testing.T) {
	tests := []struct {
		name   string
		prompt string
		width  int
		want   string
	}{
		{name: "padded", prompt: "Bus", width: 6, want: "Bus   "},
		{name: "exact", prompt: "Bicycle", width: 7, want: "Bicycle"},
		{name: "ascii truncated", prompt: "How many kilometres?", width: 10, want: "How man..."},
		{name: "multibyte truncated", prompt: "Äöü äöü äöü", width: 6, want: "Äöü..."},
		{name: "multibyte kept whole", prompt: "Käse", width: 6, want: "Käse  "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := fitPrompt(tt.prompt, tt.width)
			assert.Equal(t, tt.want, got)
			assert.True(t, utf8.ValidString(got))
			assert.Equal(t, tt.width, ansi.StringWidth(got))
		})
	}
}
