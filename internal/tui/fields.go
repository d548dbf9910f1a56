package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/nell/careintake/internal/form"
)

type fieldKind int

const (
	fieldText fieldKind = iota
	fieldSelect
	fieldMulti
)

// field is one controlled input on a wizard step. Text fields wrap a
// bubbles textinput; select and multi fields keep their own cursor state
// over a fixed option list. Fields hold their value for the lifetime of the
// program so navigating back shows what was entered.
type field struct {
	key   string
	kind  fieldKind
	input textinput.Model

	options []string
	cursor  int          // highlighted option (select and multi)
	chosen  int          // select only; -1 until the user picks
	checked map[int]bool // multi only
}

func newTextField(key, placeholder string) *field {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.Prompt = "> "
	return &field{key: key, kind: fieldText, input: ti}
}

func newSelectField(key string, options []string) *field {
	return &field{key: key, kind: fieldSelect, options: options, chosen: -1}
}

func newMultiField(key string, options []string) *field {
	return &field{key: key, kind: fieldMulti, options: options, checked: map[int]bool{}}
}

func (f *field) label() string { return form.Labels[f.key] }

// value reports the field's current content in the shape the validator
// expects: string for text and select, []string for multi.
func (f *field) value() any {
	switch f.kind {
	case fieldSelect:
		if f.chosen < 0 {
			return ""
		}
		return f.options[f.chosen]
	case fieldMulti:
		var out []string
		for i, opt := range f.options {
			if f.checked[i] {
				out = append(out, opt)
			}
		}
		return out
	default:
		return f.input.Value()
	}
}

func (f *field) setFocus(on bool) tea.Cmd {
	if f.kind != fieldText {
		return nil
	}
	if on {
		return f.input.Focus()
	}
	f.input.Blur()
	return nil
}

// handleKey consumes navigation keys for option fields and reports whether
// the key was handled. Unhandled keys fall through to the text input.
func (f *field) handleKey(msg tea.KeyMsg) bool {
	switch f.kind {
	case fieldSelect:
		switch msg.String() {
		case "up", "left":
			f.chosen = wrapIndex(f.chosen-1, len(f.options))
			return true
		case "down", "right":
			f.chosen = wrapIndex(f.chosen+1, len(f.options))
			return true
		}
	case fieldMulti:
		switch msg.String() {
		case "up", "left":
			f.cursor = wrapIndex(f.cursor-1, len(f.options))
			return true
		case "down", "right":
			f.cursor = wrapIndex(f.cursor+1, len(f.options))
			return true
		case " ":
			f.checked[f.cursor] = !f.checked[f.cursor]
			return true
		}
	}
	return false
}

func wrapIndex(i, n int) int {
	if n == 0 {
		return 0
	}
	return ((i % n) + n) % n
}

// render draws the field body below its label.
func (f *field) render(focused bool) string {
	switch f.kind {
	case fieldSelect:
		return f.renderSelect(focused)
	case fieldMulti:
		return f.renderMulti(focused)
	default:
		return f.input.View()
	}
}

func (f *field) renderSelect(focused bool) string {
	current := "(none selected)"
	if f.chosen >= 0 {
		current = f.options[f.chosen]
	}
	style := optionPlainStyle
	if f.chosen >= 0 {
		style = optionChosenStyle
	}
	if !focused {
		return "  " + style.Render(current)
	}
	return "  " + optionCursorStyle.Render("< ") + style.Render(current) + optionCursorStyle.Render(" >")
}

func (f *field) renderMulti(focused bool) string {
	var b strings.Builder
	for i, opt := range f.options {
		if i > 0 {
			b.WriteByte('\n')
		}
		mark := "[ ]"
		style := optionPlainStyle
		if f.checked[i] {
			mark = "[x]"
			style = optionChosenStyle
		}
		line := mark + " " + opt
		if focused && i == f.cursor {
			b.WriteString("  " + optionCursorStyle.Render("> "+line))
			continue
		}
		b.WriteString("    " + style.Render(line))
	}
	return b.String()
}
