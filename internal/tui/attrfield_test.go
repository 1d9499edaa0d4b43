package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lablog-io/lablog/internal/draft"
	"github.com/lablog-io/lablog/internal/models"
)

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func typeInto(f *AttrField, s string) {
	for _, r := range s {
		f.Update(keyRunes(string(r)))
	}
}

func TestTextFieldValue(t *testing.T) {
	f := NewAttrField(models.Attribute{Name: "Sample", Type: models.AttributeText}, 40)
	f.Focus()
	typeInto(f, "abc")
	assert.Equal(t, "abc", f.Value())
}

func TestNumberFieldKeepsRawText(t *testing.T) {
	f := NewAttrField(models.Attribute{Name: "Voltage", Type: models.AttributeNumber}, 40)
	f.Focus()
	typeInto(f, "3.25")
	assert.Equal(t, "3.25", f.Value(), "numbers are edited and committed as text")
}

func TestNumberFieldNonNumericValueSurvivesEdit(t *testing.T) {
	// The server accepts free text in number attributes, so an edit
	// round-trip must not drop a value that does not parse.
	f := NewAttrField(models.Attribute{Name: "Dose", Type: models.AttributeNumber}, 40)
	f.SetValue("10 units")
	assert.Equal(t, "10 units", f.Value())

	d := draft.NewEntryDraft().SetAttribute("Dose", "10 units")
	d = d.SetAttribute("Dose", f.Value())
	assert.Equal(t, "10 units", d.Attributes["Dose"])
}

func TestNumberFieldEmptyClears(t *testing.T) {
	f := NewAttrField(models.Attribute{Name: "Voltage", Type: models.AttributeNumber}, 40)
	f.Focus()
	typeInto(f, "  ")
	assert.Equal(t, "", f.Value(), "a blank field clears the attribute")
}

func TestBooleanToggle(t *testing.T) {
	f := NewAttrField(models.Attribute{Name: "Shift done", Type: models.AttributeBoolean}, 40)
	f.Focus()
	assert.Equal(t, false, f.Value())

	f.Update(tea.KeyMsg{Type: tea.KeySpace})
	assert.Equal(t, true, f.Value())

	f.Update(tea.KeyMsg{Type: tea.KeySpace})
	assert.Equal(t, false, f.Value())
}

func TestOptionCycleAndClear(t *testing.T) {
	f := NewAttrField(models.Attribute{
		Name: "Priority", Type: models.AttributeOption, Options: []string{"Low", "High"},
	}, 40)
	f.Focus()

	f.Update(tea.KeyMsg{Type: tea.KeyRight})
	assert.Equal(t, "High", f.Value())

	f.Update(tea.KeyMsg{Type: tea.KeyRight})
	assert.Equal(t, "Low", f.Value(), "cycling wraps around")

	f.Update(tea.KeyMsg{Type: tea.KeyBackspace})
	assert.Equal(t, "", f.Value(), "clearing commits the attribute's removal")
}

func TestOptionCustomValue(t *testing.T) {
	f := NewAttrField(models.Attribute{
		Name: "Priority", Type: models.AttributeOption, Options: []string{"Low"},
	}, 40)
	f.Focus()

	typeInto(f, "Urgent")
	f.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, "Urgent", f.Value())
}

func TestOptionPendingTextCommitsOnBlur(t *testing.T) {
	f := NewAttrField(models.Attribute{
		Name: "Priority", Type: models.AttributeOption, Options: []string{"Low"},
	}, 40)
	f.Focus()

	typeInto(f, "Urgent")
	f.Blur()
	assert.Equal(t, "Urgent", f.Value(), "leaving the field commits the typed value without Enter")
}

func TestMultiOptionPendingTextCommitsOnBlur(t *testing.T) {
	f := NewAttrField(models.Attribute{
		Name: "Tags", Type: models.AttributeMultiOption, Options: []string{"vacuum"},
	}, 40)
	f.Focus()

	f.Update(tea.KeyMsg{Type: tea.KeySpace})
	typeInto(f, "laser")
	f.Blur()
	assert.Equal(t, []string{"vacuum", "laser"}, f.Value())

	// Blurring twice must not duplicate the typed value.
	f.Focus()
	f.Blur()
	assert.Equal(t, []string{"vacuum", "laser"}, f.Value())
}

func TestMultiOptionToggle(t *testing.T) {
	f := NewAttrField(models.Attribute{
		Name: "Tags", Type: models.AttributeMultiOption, Options: []string{"vacuum", "laser"},
	}, 40)
	f.Focus()

	f.Update(tea.KeyMsg{Type: tea.KeySpace})
	f.Update(tea.KeyMsg{Type: tea.KeyRight})
	f.Update(tea.KeyMsg{Type: tea.KeySpace})
	assert.Equal(t, []string{"vacuum", "laser"}, f.Value())

	// Toggling an already-selected option removes it.
	f.Update(tea.KeyMsg{Type: tea.KeySpace})
	assert.Equal(t, []string{"vacuum"}, f.Value())
}

func TestSetValueSeedsField(t *testing.T) {
	tests := []struct {
		name string
		def  models.Attribute
		v    any
		want any
	}{
		{"text", models.Attribute{Name: "a", Type: models.AttributeText}, "x", "x"},
		{"number from float", models.Attribute{Name: "a", Type: models.AttributeNumber}, 2.5, "2.5"},
		{"boolean", models.Attribute{Name: "a", Type: models.AttributeBoolean}, true, true},
		{"option", models.Attribute{Name: "a", Type: models.AttributeOption, Options: []string{"x"}}, "x", "x"},
		{"multi from any slice", models.Attribute{Name: "a", Type: models.AttributeMultiOption}, []any{"p", "q"}, []string{"p", "q"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := NewAttrField(tt.def, 40)
			f.SetValue(tt.v)
			require.Equal(t, tt.want, f.Value())
		})
	}
}
