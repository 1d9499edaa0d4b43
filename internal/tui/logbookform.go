package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/lablog-io/lablog/internal/draft"
	"github.com/lablog-io/lablog/internal/models"
)

// attrTypes is the cycling order in the schema row editor.
var attrTypes = []models.AttributeType{
	models.AttributeText,
	models.AttributeNumber,
	models.AttributeBoolean,
	models.AttributeOption,
	models.AttributeMultiOption,
}

// LogbookForm edits a logbook: name, description, entry template and the
// ordered attribute schema. The schema is a cursor-driven list; a row
// opens into an inline editor for name, type, required flag and options.
type LogbookForm struct {
	nameInput    textinput.Model
	descInput    textinput.Model
	templateArea textarea.Model

	focusIndex int // 0=name, 1=description, 2=template, 3=schema
	cursor     int // schema row

	editing     bool
	rowFocus    int // 0=name, 1=type, 2=required, 3=options
	rowName     textinput.Model
	rowOptions  textinput.Model
	rowType     models.AttributeType
	rowRequired bool

	width int
}

const (
	lbFieldName = iota
	lbFieldDescription
	lbFieldTemplate
	lbFieldSchema
	lbFieldCount
)

// NewLogbookForm creates the form seeded from a draft.
func NewLogbookForm(d draft.LogbookDraft, width int) *LogbookForm {
	ni := textinput.New()
	ni.Placeholder = "Logbook name"
	ni.CharLimit = 200
	ni.Width = width - 4
	ni.SetValue(d.Name)

	di := textinput.New()
	di.Placeholder = "Description"
	di.CharLimit = 500
	di.Width = width - 4
	di.SetValue(d.Description)

	ta := textarea.New()
	ta.Placeholder = "Template for new entries (HTML)"
	ta.SetWidth(width - 4)
	ta.SetHeight(5)
	if d.Template != "" {
		ta.SetValue(d.Template)
	}

	lf := &LogbookForm{
		nameInput:    ni,
		descInput:    di,
		templateArea: ta,
		width:        width,
	}
	lf.nameInput.Focus()
	return lf
}

// Name returns the current name value.
func (lf *LogbookForm) Name() string {
	return lf.nameInput.Value()
}

// Description returns the current description value.
func (lf *LogbookForm) Description() string {
	return lf.descInput.Value()
}

// Template returns the current template value.
func (lf *LogbookForm) Template() string {
	return lf.templateArea.Value()
}

// Editing reports whether a schema row editor is open.
func (lf *LogbookForm) Editing() bool {
	return lf.editing
}

// FocusNext moves to the next top-level field.
func (lf *LogbookForm) FocusNext() {
	lf.blurAll()
	lf.focusIndex = (lf.focusIndex + 1) % lbFieldCount
	lf.focusCurrent()
}

// FocusPrev moves to the previous top-level field.
func (lf *LogbookForm) FocusPrev() {
	lf.blurAll()
	lf.focusIndex--
	if lf.focusIndex < 0 {
		lf.focusIndex = lbFieldCount - 1
	}
	lf.focusCurrent()
}

func (lf *LogbookForm) blurAll() {
	lf.nameInput.Blur()
	lf.descInput.Blur()
	lf.templateArea.Blur()
}

func (lf *LogbookForm) focusCurrent() {
	switch lf.focusIndex {
	case lbFieldName:
		lf.nameInput.Focus()
	case lbFieldDescription:
		lf.descInput.Focus()
	case lbFieldTemplate:
		lf.templateArea.Focus()
	case lbFieldSchema:
		// Cursor-driven list, no input to focus.
	}
}

// Update handles a message, returning the possibly-changed draft.
func (lf *LogbookForm) Update(msg tea.Msg, d draft.LogbookDraft) (draft.LogbookDraft, tea.Cmd) {
	if lf.editing {
		return lf.updateRowEditor(msg, d)
	}

	switch lf.focusIndex {
	case lbFieldName:
		var cmd tea.Cmd
		lf.nameInput, cmd = lf.nameInput.Update(msg)
		return d, cmd
	case lbFieldDescription:
		var cmd tea.Cmd
		lf.descInput, cmd = lf.descInput.Update(msg)
		return d, cmd
	case lbFieldTemplate:
		var cmd tea.Cmd
		lf.templateArea, cmd = lf.templateArea.Update(msg)
		return d, cmd
	case lbFieldSchema:
		if keyMsg, ok := msg.(tea.KeyMsg); ok {
			return lf.handleSchemaKey(keyMsg, d), nil
		}
	}
	return d, nil
}

func (lf *LogbookForm) handleSchemaKey(msg tea.KeyMsg, d draft.LogbookDraft) draft.LogbookDraft {
	switch {
	case key.Matches(msg, schemaKeys.Up):
		if lf.cursor > 0 {
			lf.cursor--
		}
	case key.Matches(msg, schemaKeys.Down):
		if lf.cursor < len(d.Attributes)-1 {
			lf.cursor++
		}
	case key.Matches(msg, schemaKeys.Add):
		// Insert after the cursor, like adding a row below the current one.
		at := lf.cursor + 1
		if len(d.Attributes) == 0 {
			at = 0
		}
		d = d.InsertAttribute(at)
		lf.cursor = at
		lf.openRowEditor(d.Attributes[at])
	case key.Matches(msg, schemaKeys.Remove):
		if lf.cursor < len(d.Attributes) {
			d = d.RemoveAttribute(lf.cursor)
			if lf.cursor >= len(d.Attributes) && lf.cursor > 0 {
				lf.cursor--
			}
		}
	case key.Matches(msg, schemaKeys.MoveUp):
		d = d.MoveAttribute(lf.cursor, -1)
		if lf.cursor > 0 {
			lf.cursor--
		}
	case key.Matches(msg, schemaKeys.MoveDn):
		if lf.cursor < len(d.Attributes)-1 {
			d = d.MoveAttribute(lf.cursor, 1)
			lf.cursor++
		}
	case key.Matches(msg, schemaKeys.Edit):
		if lf.cursor < len(d.Attributes) {
			lf.openRowEditor(d.Attributes[lf.cursor])
		}
	}
	return d
}

func (lf *LogbookForm) openRowEditor(attr models.Attribute) {
	ni := textinput.New()
	ni.CharLimit = 100
	ni.Width = lf.width - 8
	ni.SetValue(attr.Name)
	ni.Focus()

	oi := textinput.New()
	oi.Placeholder = "comma-separated options"
	oi.CharLimit = 500
	oi.Width = lf.width - 8
	oi.SetValue(strings.Join(attr.Options, ", "))

	lf.editing = true
	lf.rowFocus = 0
	lf.rowName = ni
	lf.rowOptions = oi
	lf.rowType = attr.Type
	lf.rowRequired = attr.Required
}

func (lf *LogbookForm) updateRowEditor(msg tea.Msg, d draft.LogbookDraft) (draft.LogbookDraft, tea.Cmd) {
	keyMsg, isKey := msg.(tea.KeyMsg)
	if isKey {
		switch keyMsg.Type {
		case tea.KeyEnter:
			return lf.commitRow(d), nil
		case tea.KeyEsc:
			lf.editing = false
			return d, nil
		case tea.KeyTab:
			lf.rowName.Blur()
			lf.rowOptions.Blur()
			lf.rowFocus = (lf.rowFocus + 1) % 4
			switch lf.rowFocus {
			case 0:
				lf.rowName.Focus()
			case 3:
				lf.rowOptions.Focus()
			}
			return d, nil
		}

		switch lf.rowFocus {
		case 1: // type
			if key.Matches(keyMsg, selectKeys.Cycle) || key.Matches(keyMsg, selectKeys.Toggle) {
				lf.rowType = nextAttrType(lf.rowType, 1)
			} else if key.Matches(keyMsg, selectKeys.CycleBack) {
				lf.rowType = nextAttrType(lf.rowType, -1)
			}
			return d, nil
		case 2: // required
			if key.Matches(keyMsg, selectKeys.Toggle) {
				lf.rowRequired = !lf.rowRequired
			}
			return d, nil
		}
	}

	var cmd tea.Cmd
	switch lf.rowFocus {
	case 0:
		lf.rowName, cmd = lf.rowName.Update(msg)
	case 3:
		lf.rowOptions, cmd = lf.rowOptions.Update(msg)
	}
	return d, cmd
}

func (lf *LogbookForm) commitRow(d draft.LogbookDraft) draft.LogbookDraft {
	lf.editing = false

	attr := models.Attribute{
		Name:     strings.TrimSpace(lf.rowName.Value()),
		Type:     lf.rowType,
		Required: lf.rowRequired,
	}
	if attr.Name == "" {
		attr.Name = "New attribute"
	}
	if attr.IsSelect() {
		for _, opt := range strings.Split(lf.rowOptions.Value(), ",") {
			if o := strings.TrimSpace(opt); o != "" {
				attr.Options = append(attr.Options, o)
			}
		}
	}
	return d.ReplaceAttribute(lf.cursor, attr)
}

func nextAttrType(t models.AttributeType, delta int) models.AttributeType {
	for i, at := range attrTypes {
		if at == t {
			n := len(attrTypes)
			return attrTypes[((i+delta)%n+n)%n]
		}
	}
	return attrTypes[0]
}

// View renders the form against the current draft.
func (lf *LogbookForm) View(d draft.LogbookDraft) string {
	parts := make([]string, 0, 16)

	parts = append(parts, fieldLabelStyle.Render("Name:"), lf.nameInput.View(), "")
	parts = append(parts, fieldLabelStyle.Render("Description:"), lf.descInput.View(), "")
	parts = append(parts, fieldLabelStyle.Render("Entry template:"), lf.templateArea.View(), "")

	header := fieldLabelStyle.Render("Attributes:")
	if lf.focusIndex == lbFieldSchema && !lf.editing {
		header += fieldDimStyle.Render("  a add  x remove  K/J move  Enter edit")
	}
	parts = append(parts, header)

	if len(d.Attributes) == 0 {
		parts = append(parts, fieldDimStyle.Render("  (none)"))
	}
	for i, attr := range d.Attributes {
		line := lf.renderSchemaRow(attr)
		if lf.focusIndex == lbFieldSchema && i == lf.cursor && !lf.editing {
			line = schemaCursorStyle.Render(line)
		}
		parts = append(parts, line)
	}

	if lf.editing {
		parts = append(parts, "", lf.rowEditorView())
	}

	return strings.Join(parts, "\n")
}

func (lf *LogbookForm) renderSchemaRow(attr models.Attribute) string {
	row := fmt.Sprintf("  %s  %s", attr.Name, schemaTypeStyle.Render(string(attr.Type)))
	if attr.Required {
		row += requiredMarkStyle.Render(" *")
	}
	if len(attr.Options) > 0 {
		row += fieldDimStyle.Render("  [" + strings.Join(attr.Options, ", ") + "]")
	}
	return row
}

func (lf *LogbookForm) rowEditorView() string {
	focusMark := func(i int, s string) string {
		if lf.rowFocus == i {
			return suggestionCursorStyle.Render(s)
		}
		return s
	}

	required := "[ ] required"
	if lf.rowRequired {
		required = "[x] required"
	}

	parts := []string{
		overlayTitleStyle.Render("Edit attribute"),
		focusMark(0, "Name: ") + lf.rowName.View(),
		focusMark(1, "Type: "+string(lf.rowType)) + fieldDimStyle.Render("  (Space to cycle)"),
		focusMark(2, required) + fieldDimStyle.Render("  (Space to toggle)"),
	}
	if lf.rowType == models.AttributeOption || lf.rowType == models.AttributeMultiOption {
		parts = append(parts, focusMark(3, "Options: ")+lf.rowOptions.View())
	}
	parts = append(parts, fieldDimStyle.Render("Enter save  |  Tab next  |  Esc cancel"))

	return overlayStyle.Width(lf.width - 6).Render(strings.Join(parts, "\n"))
}
