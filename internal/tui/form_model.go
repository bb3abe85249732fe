package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"

	"github.com/rshade/footprint/internal/emissions"
	"github.com/rshade/footprint/internal/engine"
	"github.com/rshade/footprint/internal/greenops"
)

// FormState is the state of the interactive form.
type FormState int

const (
	// FormStateEditing is the normal browsing and editing state.
	FormStateEditing FormState = iota
	// FormStateSubmitted means the user accepted the values.
	FormStateSubmitted
	// FormStateQuitting means the user left without submitting.
	FormStateQuitting
	// FormStateError means a recalculation failed.
	FormStateError
)

// FieldRow is one editable activity quantity.
type FieldRow struct {
	Activity emissions.Activity
	Value    string
}

// RecalculateFunc produces a report for the current form values.
type RecalculateFunc func(context.Context, emissions.Observations) (*engine.Report, error)

// formRecalculateMsg carries a finished recalculation. seq drops results
// that were overtaken by a newer edit.
type formRecalculateMsg struct {
	seq    int
	report *engine.Report
	err    error
}

// Form layout.
const (
	formDefaultWidth  = 100
	formDefaultHeight = 40
	formInputWidth    = 12
	formInputLimit    = 32
	formPromptWidth   = 64
	formChartMargin   = 30
)

// FormModel is the Bubble Tea model of the calculator form: one field per
// activity, grouped by category, with the total and chart recalculated after
// every committed edit.
type FormModel struct {
	ctx context.Context

	rows     []FieldRow
	focused  int
	editing  bool
	input    textinput.Model
	spinner  spinner.Model
	loading  bool
	seq      int
	report   *engine.Report
	state    FormState
	err      error
	width    int
	height   int
	maxChart int

	recalculateFn RecalculateFunc
}

// NewFormModel creates a form over activities, pre-filled from initial
// (missing values start at "0"). report, if non-nil, is shown until the
// first recalculation.
func NewFormModel(
	ctx context.Context,
	activities []emissions.Activity,
	initial emissions.Observations,
	report *engine.Report,
	recalculateFn RecalculateFunc,
) *FormModel {
	rows := make([]FieldRow, len(activities))
	for i, a := range activities {
		v, ok := initial[a.ID]
		if !ok {
			v = emissions.DefaultQuantity
		}
		rows[i] = FieldRow{Activity: a, Value: v}
	}

	ti := textinput.New()
	ti.CharLimit = formInputLimit
	ti.Width = formInputWidth
	ti.Prompt = ""

	sp := spinner.New(spinner.WithSpinner(spinner.Dot))
	sp.Style = sp.Style.Foreground(ColorSpinner)

	return &FormModel{
		ctx:           ctx,
		rows:          rows,
		input:         ti,
		spinner:       sp,
		report:        report,
		state:         FormStateEditing,
		width:         formDefaultWidth,
		height:        formDefaultHeight,
		maxChart:      DefaultChartWidth,
		recalculateFn: recalculateFn,
	}
}

// SetChartWidth caps the chart width.
func (m *FormModel) SetChartWidth(w int) {
	if w >= MinChartWidth {
		m.maxChart = w
	}
}

// Init starts a first calculation when no report was supplied.
func (m *FormModel) Init() tea.Cmd {
	if m.report == nil && m.recalculateFn != nil {
		return m.triggerRecalculation()
	}
	return nil
}

// Update handles messages and updates the model state.
func (m *FormModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case formRecalculateMsg:
		return m.handleRecalculateComplete(msg)

	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		if m.editing {
			return m.handleEditKey(msg)
		}
		return m.handleKey(msg)
	}

	if m.editing {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

// handleKey processes navigation keys.
//
//nolint:exhaustive // Only handling relevant key types for form navigation.
func (m *FormModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC, tea.KeyEsc:
		m.state = FormStateQuitting
		return m, tea.Quit

	case tea.KeyUp, tea.KeyShiftTab:
		if m.focused > 0 {
			m.focused--
		}
		return m, nil

	case tea.KeyDown, tea.KeyTab:
		if m.focused < len(m.rows)-1 {
			m.focused++
		}
		return m, nil

	case tea.KeyEnter:
		return m, m.startEdit()

	case tea.KeyCtrlS:
		return m.submit()

	case tea.KeyRunes:
		switch string(msg.Runes) {
		case "q":
			m.state = FormStateQuitting
			return m, tea.Quit
		case "s":
			return m.submit()
		case "k":
			if m.focused > 0 {
				m.focused--
			}
		case "j":
			if m.focused < len(m.rows)-1 {
				m.focused++
			}
		case "e":
			return m, m.startEdit()
		}
	}
	return m, nil
}

// handleEditKey processes keys while a field is being edited.
//
//nolint:exhaustive // Only handling relevant key types for text editing.
func (m *FormModel) handleEditKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC:
		m.state = FormStateQuitting
		return m, tea.Quit

	case tea.KeyEnter, tea.KeyTab:
		m.rows[m.focused].Value = strings.TrimSpace(m.input.Value())
		m.stopEdit()
		if msg.Type == tea.KeyTab && m.focused < len(m.rows)-1 {
			m.focused++
		}
		if m.recalculateFn != nil {
			return m, m.triggerRecalculation()
		}
		return m, nil

	case tea.KeyEsc:
		m.stopEdit()
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *FormModel) startEdit() tea.Cmd {
	if len(m.rows) == 0 {
		return nil
	}
	m.editing = true
	m.input.SetValue(m.rows[m.focused].Value)
	m.input.CursorEnd()
	return m.input.Focus()
}

func (m *FormModel) stopEdit() {
	m.editing = false
	m.input.Blur()
	m.input.Reset()
}

func (m *FormModel) submit() (tea.Model, tea.Cmd) {
	m.state = FormStateSubmitted
	return m, tea.Quit
}

// triggerRecalculation creates a command that recalculates the report.
func (m *FormModel) triggerRecalculation() tea.Cmd {
	m.loading = true
	m.seq++

	// Capture values so the command does not read model fields concurrently.
	ctx := m.ctx
	seq := m.seq
	obs := m.Observations()
	recalculateFn := m.recalculateFn

	return tea.Batch(m.spinner.Tick, func() tea.Msg {
		report, err := recalculateFn(ctx, obs)
		return formRecalculateMsg{seq: seq, report: report, err: err}
	})
}

// handleRecalculateComplete applies a finished recalculation.
func (m *FormModel) handleRecalculateComplete(msg formRecalculateMsg) (tea.Model, tea.Cmd) {
	if msg.seq != m.seq {
		return m, nil
	}
	m.loading = false

	if msg.err != nil {
		m.err = msg.err
		m.state = FormStateError
		return m, nil
	}
	if msg.report != nil {
		m.report = msg.report
	}
	return m, nil
}

// View renders the current view.
func (m *FormModel) View() string {
	switch m.state {
	case FormStateQuitting, FormStateSubmitted:
		return ""
	case FormStateError:
		return ErrorStyle.Render(fmt.Sprintf("Error: %v", m.err)) + "\n\nPress q to quit.\n"
	case FormStateEditing:
	}

	var sb strings.Builder
	sb.WriteString(TitleStyle.Render("CO2-eq footprint calculator"))
	sb.WriteString("\n\n")

	switch {
	case m.loading:
		sb.WriteString(m.spinner.View() + " Recalculating...\n")
	case m.report != nil:
		sb.WriteString(RenderSummary(m.report, true))
	}
	sb.WriteString("\n")

	sb.WriteString(m.renderFields())
	sb.WriteString("\n")

	if m.report != nil {
		width := min(m.maxChart, m.width-formChartMargin)
		sb.WriteString(RenderStackedChart(m.report, ChartOptions{Width: width, Styled: true}))
		sb.WriteString("\n")
	}

	sb.WriteString(MutedStyle.Render("↑/↓ move • enter edit • tab next • s submit • q quit"))
	return sb.String()
}

func (m *FormModel) renderFields() string {
	var sb strings.Builder
	current := emissions.Category(-1)

	for i, row := range m.rows {
		a := row.Activity
		if a.Category != current {
			current = a.Category
			sb.WriteString(HeaderStyle.Render(current.String()))
			sb.WriteString("\n")
		}

		marker := "  "
		if i == m.focused {
			marker = IconFocus + " "
			if m.editing {
				marker = IconEditing + " "
			}
		}

		label := fitPrompt(a.Prompt, formPromptWidth)
		if i == m.focused {
			label = HighlightStyle.Render(label)
		} else {
			label = LabelStyle.Render(label)
		}

		value := fmt.Sprintf("%-*s", formInputWidth, row.Value)
		if i == m.focused && m.editing {
			value = m.input.View()
		} else {
			value = ValueStyle.Render(value)
		}

		fmt.Fprintf(&sb, "%s%s %s %s\n", marker, label, value, m.renderRowEmissions(a.ID))
	}
	return sb.String()
}

func (m *FormModel) renderRowEmissions(id string) string {
	if m.report == nil {
		return ""
	}
	r, ok := m.report.Result.Activity(id)
	if !ok {
		return ""
	}
	return MutedStyle.Render(greenops.FormatEmissions(r.Kg, m.report.Unit, m.report.Precision))
}

// fitPrompt truncates prompt to width cells and pads it to exactly width.
func fitPrompt(prompt string, width int) string {
	prompt = ansi.Truncate(prompt, width, "...")
	if pad := width - ansi.StringWidth(prompt); pad > 0 {
		prompt += strings.Repeat(" ", pad)
	}
	return prompt
}

// Observations returns the current form values keyed by activity ID.
func (m *FormModel) Observations() emissions.Observations {
	obs := make(emissions.Observations, len(m.rows))
	for _, row := range m.rows {
		obs[row.Activity.ID] = row.Value
	}
	return obs
}

// Report returns the last calculated report, or nil.
func (m *FormModel) Report() *engine.Report {
	return m.report
}

// State returns the form state.
func (m *FormModel) State() FormState {
	return m.state
}

// Submitted reports whether the user accepted the values.
func (m *FormModel) Submitted() bool {
	return m.state == FormStateSubmitted
}
