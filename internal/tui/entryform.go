package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/lablog-io/lablog/internal/draft"
	"github.com/lablog-io/lablog/internal/models"
)

// EntryForm is the editable surface of the entry editor. Fields cycle with
// Tab; attribute values are committed onto the draft when their field
// blurs, title and content are read continuously.
type EntryForm struct {
	hasTitle bool // followups inherit the parent title and hide the field

	titleInput  textinput.Model
	authors     *AuthorsField
	contentArea textarea.Model
	attrFields  []*AttrField

	focusIndex int
	width      int
}

// Fixed field positions before the attribute fields start.
const (
	fieldTitle = iota
	fieldAuthors
	fieldContent
	fieldAttrBase
)

// NewEntryForm creates the form. When hasTitle is false the title field is
// skipped in both rendering and focus order.
func NewEntryForm(hasTitle bool, width int) *EntryForm {
	ti := textinput.New()
	ti.Placeholder = "Entry title"
	ti.CharLimit = 200
	ti.Width = width - 4

	ca := textarea.New()
	ca.Placeholder = "What happened?"
	ca.SetWidth(width - 4)
	ca.SetHeight(8)

	ef := &EntryForm{
		hasTitle:    hasTitle,
		titleInput:  ti,
		authors:     NewAuthorsField(width - 4),
		contentArea: ca,
		width:       width,
	}

	if hasTitle {
		ef.titleInput.Focus()
	} else {
		ef.focusIndex = fieldAuthors
		ef.authors.Focus()
	}
	return ef
}

// BuildFields seeds the form from a ready draft: title and content values
// plus one attribute field per schema definition.
func (ef *EntryForm) BuildFields(lb *models.Logbook, d draft.EntryDraft) {
	ef.titleInput.SetValue(d.Title)
	if d.Content != "" {
		ef.contentArea.SetValue(d.Content)
	}

	ef.attrFields = make([]*AttrField, 0, len(lb.Attributes))
	for _, def := range lb.Attributes {
		f := NewAttrField(def, ef.width-4)
		if v, ok := d.Attributes[def.Name]; ok {
			f.SetValue(v)
		}
		ef.attrFields = append(ef.attrFields, f)
	}
}

// Title returns the current title value.
func (ef *EntryForm) Title() string {
	return ef.titleInput.Value()
}

// Content returns the current content value.
func (ef *EntryForm) Content() string {
	return ef.contentArea.Value()
}

// Authors returns the author field.
func (ef *EntryForm) Authors() *AuthorsField {
	return ef.authors
}

// FocusIndex returns the currently focused field index.
func (ef *EntryForm) FocusIndex() int {
	return ef.focusIndex
}

// AuthorsFocused reports whether the author field is active.
func (ef *EntryForm) AuthorsFocused() bool {
	return ef.focusIndex == fieldAuthors
}

// FocusedAttr returns the focused attribute field, or nil.
func (ef *EntryForm) FocusedAttr() *AttrField {
	i := ef.focusIndex - fieldAttrBase
	if i < 0 || i >= len(ef.attrFields) {
		return nil
	}
	return ef.attrFields[i]
}

func (ef *EntryForm) fieldCount() int {
	return fieldAttrBase + len(ef.attrFields)
}

// FocusNext moves focus forward and returns the field that lost focus, so
// the model can commit its value.
func (ef *EntryForm) FocusNext(d draft.EntryDraft) draft.EntryDraft {
	d = ef.commitFocused(d)
	ef.blurAll()
	ef.focusIndex = (ef.focusIndex + 1) % ef.fieldCount()
	if !ef.hasTitle && ef.focusIndex == fieldTitle {
		ef.focusIndex = fieldAuthors
	}
	ef.focusCurrent()
	return d
}

// FocusPrev moves focus backward.
func (ef *EntryForm) FocusPrev(d draft.EntryDraft) draft.EntryDraft {
	d = ef.commitFocused(d)
	ef.blurAll()
	ef.focusIndex--
	low := fieldTitle
	if !ef.hasTitle {
		low = fieldAuthors
	}
	if ef.focusIndex < low {
		ef.focusIndex = ef.fieldCount() - 1
	}
	ef.focusCurrent()
	return d
}

// commitFocused commits the blurring field's value onto the draft.
// Attribute fields commit on blur; an empty committed value clears the
// attribute from the draft.
func (ef *EntryForm) commitFocused(d draft.EntryDraft) draft.EntryDraft {
	if f := ef.FocusedAttr(); f != nil {
		d = d.SetAttribute(f.Name(), f.Value())
	}
	return d
}

// CommitAll commits every attribute field, for submission.
func (ef *EntryForm) CommitAll(d draft.EntryDraft) draft.EntryDraft {
	for _, f := range ef.attrFields {
		d = d.SetAttribute(f.Name(), f.Value())
	}
	return d
}

func (ef *EntryForm) blurAll() {
	ef.titleInput.Blur()
	ef.authors.Blur()
	ef.contentArea.Blur()
	for _, f := range ef.attrFields {
		if f.Focused() {
			f.Blur()
		}
	}
}

func (ef *EntryForm) focusCurrent() {
	switch {
	case ef.focusIndex == fieldTitle:
		ef.titleInput.Focus()
	case ef.focusIndex == fieldAuthors:
		ef.authors.Focus()
	case ef.focusIndex == fieldContent:
		ef.contentArea.Focus()
	default:
		if f := ef.FocusedAttr(); f != nil {
			f.Focus()
		}
	}
}

// Update forwards a message to the focused field.
func (ef *EntryForm) Update(msg tea.Msg) tea.Cmd {
	switch {
	case ef.focusIndex == fieldTitle:
		var cmd tea.Cmd
		ef.titleInput, cmd = ef.titleInput.Update(msg)
		return cmd
	case ef.focusIndex == fieldAuthors:
		return ef.authors.Update(msg)
	case ef.focusIndex == fieldContent:
		var cmd tea.Cmd
		ef.contentArea, cmd = ef.contentArea.Update(msg)
		return cmd
	default:
		if f := ef.FocusedAttr(); f != nil {
			return f.Update(msg)
		}
	}
	return nil
}

// View renders the form against the current draft.
func (ef *EntryForm) View(d draft.EntryDraft) string {
	parts := make([]string, 0, 8+len(ef.attrFields))

	if ef.hasTitle {
		parts = append(parts, fieldLabelStyle.Render("Title:"), ef.titleInput.View(), "")
	}

	parts = append(parts, ef.authors.View(d.Authors), "")
	parts = append(parts, fieldLabelStyle.Render("Content:"), ef.contentArea.View(), "")

	for _, f := range ef.attrFields {
		parts = append(parts, f.View(), "")
	}

	if len(d.Attachments) > 0 {
		parts = append(parts, fieldLabelStyle.Render("Attachments:"))
		for _, item := range d.Attachments {
			line := "  " + attachmentStyle.Render(item.Name())
			if item.Staged != nil {
				line += stagedMarkStyle.Render("  (pending upload)")
			}
			parts = append(parts, line)
		}
		parts = append(parts, "")
	}

	return strings.Join(parts, "\n")
}
