// Package tui renders the intake wizard: one screen per step with
// controlled inputs, a progress header, inline field errors, and transient
// toast notifications overlaid top-right.
package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/nell/careintake/internal/config"
	"github.com/nell/careintake/internal/form"
	"github.com/nell/careintake/internal/notify"
)

const (
	defaultWidth  = 80
	defaultHeight = 24
)

// Model drives the three-step wizard. The step state machine and all
// validation live in form.Wizard; the model owns only presentation state:
// field widgets, focus, toasts, and the window size.
type Model struct {
	ctx     context.Context
	wizard  *form.Wizard
	notices *notify.Recorder

	serviceName string
	steps       map[form.Step][]*field
	focus       map[form.Step]int

	toasts   []toast
	toastSeq int
	toastTTL time.Duration

	width, height int
}

func New(ctx context.Context, cfg config.Config, submit form.SubmitHandler) *Model {
	notices := &notify.Recorder{}
	m := &Model{
		ctx:         ctx,
		wizard:      form.NewWizard(notices, submit),
		notices:     notices,
		serviceName: cfg.Intake.ServiceName,
		toastTTL:    time.Duration(cfg.UI.ToastSeconds) * time.Second,
		width:       defaultWidth,
		height:      defaultHeight,
		steps: map[form.Step][]*field{
			form.StepChild: {
				newTextField(form.FieldChildName, "Full name"),
				newTextField(form.FieldAge, "1-18"),
				newSelectField(form.FieldDiagnosis, form.Diagnoses),
				newSelectField(form.FieldSchoolType, form.SchoolTypes),
			},
			form.StepNeeds: {
				newMultiField(form.FieldSupportTypes, form.SupportTypes),
				newSelectField(form.FieldFrequency, form.Frequencies),
				newTextField(form.FieldRequirements, "Anything we should know (optional)"),
			},
			form.StepContact: {
				newTextField(form.FieldParentName, "Full name"),
				newTextField(form.FieldEmail, "you@example.com"),
				newTextField(form.FieldPhone, "Digits only"),
			},
		},
		focus: map[form.Step]int{
			form.StepChild:   0,
			form.StepNeeds:   0,
			form.StepContact: 0,
		},
	}
	return m
}

func (m *Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.syncFocus())
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m, nil

	case toastExpiredMsg:
		m.expireToast(msg.id)
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, m.updateFocusedInput(msg)
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	if m.wizard.Submitted() {
		switch msg.String() {
		case "enter", "esc", "q":
			return m, tea.Quit
		}
		return m, nil
	}

	switch msg.String() {
	case "tab":
		return m, m.moveFocus(1)
	case "shift+tab":
		return m, m.moveFocus(-1)
	case "enter":
		return m, m.submitStep()
	case "esc":
		m.wizard.Back()
		return m, tea.Batch(m.enqueueToasts(), m.syncFocus())
	}

	f := m.focusedField()
	if f.handleKey(msg) {
		return m, nil
	}
	if f.kind == fieldText {
		switch msg.String() {
		case "up":
			return m, m.moveFocus(-1)
		case "down":
			return m, m.moveFocus(1)
		}
		var cmd tea.Cmd
		f.input, cmd = f.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

// submitStep hands the current widget values to the wizard and reacts to
// whatever it decided: stay put with errors, advance, or finalize.
func (m *Model) submitStep() tea.Cmd {
	values := make(map[string]any)
	for _, f := range m.currentFields() {
		values[f.key] = f.value()
	}
	m.wizard.SubmitStep(m.ctx, values)
	return tea.Batch(m.enqueueToasts(), m.syncFocus())
}

func (m *Model) currentFields() []*field { return m.steps[m.wizard.Step()] }

func (m *Model) focusedField() *field {
	fields := m.currentFields()
	return fields[m.focus[m.wizard.Step()]]
}

func (m *Model) moveFocus(delta int) tea.Cmd {
	step := m.wizard.Step()
	fields := m.steps[step]
	m.focus[step] = wrapIndex(m.focus[step]+delta, len(fields))
	return m.syncFocus()
}

// syncFocus blurs every text input and focuses the one under the cursor on
// the current step.
func (m *Model) syncFocus() tea.Cmd {
	var cmd tea.Cmd
	for step, fields := range m.steps {
		for i, f := range fields {
			on := !m.wizard.Submitted() && step == m.wizard.Step() && i == m.focus[step]
			if c := f.setFocus(on); on {
				cmd = c
			}
		}
	}
	return cmd
}

func (m *Model) updateFocusedInput(msg tea.Msg) tea.Cmd {
	if m.wizard.Submitted() {
		return nil
	}
	f := m.focusedField()
	if f.kind != fieldText {
		return nil
	}
	var cmd tea.Cmd
	f.input, cmd = f.input.Update(msg)
	return cmd
}

func (m *Model) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(m.serviceName))
	b.WriteString("\n")
	b.WriteString(helpStyle.Render("Request support services for your child"))
	b.WriteString("\n\n")
	b.WriteString(m.renderProgress())
	b.WriteString("\n\n")

	if m.wizard.Submitted() {
		b.WriteString(m.renderSubmitted())
	} else {
		b.WriteString(m.renderStep())
	}

	base := lipgloss.NewStyle().Padding(1, 2).Render(b.String())
	if len(m.toasts) == 0 {
		return base
	}
	return overlayTopRight(base, m.renderToasts(), m.width, m.height)
}

// renderProgress draws one marker per step: check for completed, filled dot
// for the active step, open dot for steps not reached yet.
func (m *Model) renderProgress() string {
	current := m.wizard.Step()
	parts := make([]string, 0, form.StepCount)
	for s := form.StepChild; s <= form.StepContact; s++ {
		var marker string
		switch {
		case m.wizard.Submitted() || s < current:
			marker = markerDoneStyle.Render("✓ " + s.Title())
		case s == current:
			marker = markerActiveStyle.Render("● " + s.Title())
		default:
			marker = markerPendingStyle.Render("○ " + s.Title())
		}
		parts = append(parts, marker)
	}
	return strings.Join(parts, markerJoinStyle.Render(" ── "))
}

func (m *Model) renderStep() string {
	step := m.wizard.Step()
	errs := m.wizard.Errors()

	var b strings.Builder
	b.WriteString(stepTitleStyle.Render(fmt.Sprintf("Step %d of %d: %s", int(step), form.StepCount, step.Title())))
	b.WriteString("\n\n")

	for i, f := range m.steps[step] {
		focused := i == m.focus[step]
		label := labelStyle
		if focused {
			label = labelFocusStyle
		}
		b.WriteString(label.Render(f.label()))
		b.WriteString("\n")
		b.WriteString(f.render(focused))
		b.WriteString("\n")
		if msg, ok := errs[f.key]; ok {
			b.WriteString(fieldErrorStyle.Render("  " + msg))
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	if msg, ok := errs["_form"]; ok {
		b.WriteString(fieldErrorStyle.Render(msg))
		b.WriteString("\n\n")
	}

	b.WriteString(primaryButtonStyle.Render("[ " + m.submitLabel() + " ]"))
	b.WriteString("  ")
	b.WriteString(helpStyle.Render("enter"))
	b.WriteString("\n\n")
	b.WriteString(helpStyle.Render(m.helpLine()))
	return b.String()
}

func (m *Model) submitLabel() string {
	if m.wizard.Step() == form.StepContact {
		return "Submit Request"
	}
	return "Next"
}

func (m *Model) helpLine() string {
	parts := []string{"tab/shift+tab field", "enter " + strings.ToLower(m.submitLabel())}
	if m.wizard.Step() != form.StepChild {
		parts = append(parts, "esc previous")
	}
	parts = append(parts, "ctrl+c quit")
	return strings.Join(parts, " · ")
}

func (m *Model) renderSubmitted() string {
	var b strings.Builder
	b.WriteString(thanksStyle.Render("Request submitted. Thank you!"))
	b.WriteString("\n\n")
	b.WriteString("We have received your request and will be in touch soon.\n\n")
	b.WriteString(helpStyle.Render("enter/q quit"))
	return b.String()
}
