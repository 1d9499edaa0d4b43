package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/lablog-io/lablog/internal/models"
)

// AttrField edits one entry attribute according to its schema definition.
// The committed value is read with Value() when the field blurs; empty
// values mean "clear this attribute".
type AttrField struct {
	def models.Attribute

	input   textinput.Model // text, number and custom option entry
	boolVal bool
	choice  string   // option selection
	choices []string // multioption selections, in toggle order
	cursor  int      // cursor into def.Options for select types
	focused bool
}

// NewAttrField creates a field for the given schema definition.
func NewAttrField(def models.Attribute, width int) *AttrField {
	ti := textinput.New()
	ti.CharLimit = 200
	ti.Width = width
	switch def.Type {
	case models.AttributeNumber:
		ti.Placeholder = "number"
	case models.AttributeOption, models.AttributeMultiOption:
		ti.Placeholder = "type to add your own"
	}

	return &AttrField{def: def, input: ti}
}

// Name returns the attribute name this field edits.
func (f *AttrField) Name() string {
	return f.def.Name
}

// SetValue seeds the field from a draft value.
func (f *AttrField) SetValue(v any) {
	switch f.def.Type {
	case models.AttributeText:
		if s, ok := v.(string); ok {
			f.input.SetValue(s)
		}
	case models.AttributeNumber:
		switch n := v.(type) {
		case float64:
			f.input.SetValue(strconv.FormatFloat(n, 'f', -1, 64))
		case int:
			f.input.SetValue(strconv.Itoa(n))
		case string:
			f.input.SetValue(n)
		}
	case models.AttributeBoolean:
		if b, ok := v.(bool); ok {
			f.boolVal = b
		}
	case models.AttributeOption:
		if s, ok := v.(string); ok {
			f.choice = s
		}
	case models.AttributeMultiOption:
		f.choices = toStrings(v)
	}
}

// Focus activates the field.
func (f *AttrField) Focus() {
	f.focused = true
	switch f.def.Type {
	case models.AttributeText, models.AttributeNumber:
		f.input.Focus()
	case models.AttributeOption, models.AttributeMultiOption:
		f.input.Focus()
	}
}

// Blur deactivates the field. The model commits Value() at this point.
// Text still pending in a select field's free-creation input becomes the
// selection, so typed custom values survive without an explicit Enter.
func (f *AttrField) Blur() {
	f.focused = false
	if pending := strings.TrimSpace(f.input.Value()); pending != "" {
		switch f.def.Type {
		case models.AttributeOption:
			f.choice = pending
			f.input.SetValue("")
		case models.AttributeMultiOption:
			if !contains(f.choices, pending) {
				f.choices = append(f.choices, pending)
			}
			f.input.SetValue("")
		}
	}
	f.input.Blur()
}

// Focused reports whether the field is active.
func (f *AttrField) Focused() bool {
	return f.focused
}

// Value returns the current committed value. Nil and empty values clear
// the attribute on the draft.
func (f *AttrField) Value() any {
	switch f.def.Type {
	case models.AttributeText:
		return f.input.Value()
	case models.AttributeNumber:
		// Numbers are edited and stored as text. The server accepts
		// whatever the user wrote, so no parsing may drop the value.
		return strings.TrimSpace(f.input.Value())
	case models.AttributeBoolean:
		return f.boolVal
	case models.AttributeOption:
		if pending := strings.TrimSpace(f.input.Value()); pending != "" {
			return pending
		}
		return f.choice
	case models.AttributeMultiOption:
		if pending := strings.TrimSpace(f.input.Value()); pending != "" && !contains(f.choices, pending) {
			out := make([]string, 0, len(f.choices)+1)
			out = append(out, f.choices...)
			return append(out, pending)
		}
		return f.choices
	}
	return nil
}

// Update handles input while the field is focused.
func (f *AttrField) Update(msg tea.Msg) tea.Cmd {
	keyMsg, isKey := msg.(tea.KeyMsg)

	switch f.def.Type {
	case models.AttributeBoolean:
		if isKey && key.Matches(keyMsg, selectKeys.Toggle) {
			f.boolVal = !f.boolVal
		}
		return nil

	case models.AttributeOption:
		if isKey {
			switch {
			case key.Matches(keyMsg, selectKeys.Cycle):
				f.cycle(1)
				return nil
			case key.Matches(keyMsg, selectKeys.CycleBack):
				f.cycle(-1)
				return nil
			case keyMsg.Type == tea.KeyEnter:
				if v := strings.TrimSpace(f.input.Value()); v != "" {
					f.choice = v
					f.input.SetValue("")
				}
				return nil
			case key.Matches(keyMsg, selectKeys.Clear) && f.input.Value() == "":
				f.choice = ""
				return nil
			}
		}

	case models.AttributeMultiOption:
		if isKey {
			switch {
			case key.Matches(keyMsg, selectKeys.Cycle):
				f.cycle(1)
				return nil
			case key.Matches(keyMsg, selectKeys.CycleBack):
				f.cycle(-1)
				return nil
			case keyMsg.Type == tea.KeyEnter:
				if v := strings.TrimSpace(f.input.Value()); v != "" {
					f.toggleChoice(v)
					f.input.SetValue("")
				} else if len(f.def.Options) > 0 {
					f.toggleChoice(f.def.Options[f.cursor])
				}
				return nil
			case keyMsg.Type == tea.KeySpace && f.input.Value() == "" && len(f.def.Options) > 0:
				f.toggleChoice(f.def.Options[f.cursor])
				return nil
			case key.Matches(keyMsg, selectKeys.Clear) && f.input.Value() == "" && len(f.choices) > 0:
				f.choices = f.choices[:len(f.choices)-1]
				return nil
			}
		}
	}

	var cmd tea.Cmd
	f.input, cmd = f.input.Update(msg)
	return cmd
}

func (f *AttrField) cycle(delta int) {
	n := len(f.def.Options)
	if n == 0 {
		return
	}
	f.cursor = ((f.cursor+delta)%n + n) % n
	if f.def.Type == models.AttributeOption {
		f.choice = f.def.Options[f.cursor]
	}
}

func (f *AttrField) toggleChoice(v string) {
	for i, c := range f.choices {
		if c == v {
			f.choices = append(f.choices[:i], f.choices[i+1:]...)
			return
		}
	}
	f.choices = append(f.choices, v)
}

// View renders the field with its label.
func (f *AttrField) View() string {
	label := fieldLabelStyle.Render(f.def.Name + ":")
	if f.def.Required {
		label += requiredMarkStyle.Render(" *")
	}

	var body string
	switch f.def.Type {
	case models.AttributeText, models.AttributeNumber:
		body = f.input.View()

	case models.AttributeBoolean:
		if f.boolVal {
			body = toggleOnStyle.Render("[x] yes")
		} else {
			body = toggleOffStyle.Render("[ ] no")
		}
		if f.focused {
			body += fieldDimStyle.Render("  (Space to toggle)")
		}

	case models.AttributeOption:
		body = f.renderOptions(func(opt string) bool { return opt == f.choice })
		if f.choice != "" && !contains(f.def.Options, f.choice) {
			body += "  " + selectedOptionStyle.Render(f.choice)
		}
		if f.focused {
			body += "\n" + f.input.View()
		}

	case models.AttributeMultiOption:
		body = f.renderOptions(func(opt string) bool { return contains(f.choices, opt) })
		var extra []string
		for _, c := range f.choices {
			if !contains(f.def.Options, c) {
				extra = append(extra, c)
			}
		}
		if len(extra) > 0 {
			body += "  " + selectedOptionStyle.Render(strings.Join(extra, ", "))
		}
		if f.focused {
			body += "\n" + f.input.View()
		}
	}

	return label + "\n" + body
}

func (f *AttrField) renderOptions(selected func(string) bool) string {
	if len(f.def.Options) == 0 {
		return fieldDimStyle.Render("(no predefined options)")
	}

	parts := make([]string, 0, len(f.def.Options))
	for i, opt := range f.def.Options {
		mark := "( )"
		if f.def.Type == models.AttributeMultiOption {
			mark = "[ ]"
		}
		if selected(opt) {
			if f.def.Type == models.AttributeMultiOption {
				mark = "[x]"
			} else {
				mark = "(o)"
			}
		}

		item := fmt.Sprintf("%s %s", mark, opt)
		if selected(opt) {
			item = selectedOptionStyle.Render(item)
		}
		if f.focused && i == f.cursor {
			item = suggestionCursorStyle.Render(item)
		}
		parts = append(parts, item)
	}
	return strings.Join(parts, "  ")
}

func contains(list []string, v string) bool {
	for _, s := range list {
		if s == v {
			return true
		}
	}
	return false
}

func toStrings(v any) []string {
	switch vals := v.(type) {
	case []string:
		out := make([]string, len(vals))
		copy(out, vals)
		return out
	case []any:
		out := make([]string, 0, len(vals))
		for _, item := range vals {
			out = append(out, fmt.Sprint(item))
		}
		return out
	}
	return nil
}
