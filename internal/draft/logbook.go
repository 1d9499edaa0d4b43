package draft

import (
	"slices"

	"github.com/lablog-io/lablog/internal/models"
)

// LogbookDraft is the editable overlay of a logbook: name, description,
// template and the ordered attribute schema. Original is nil when creating.
type LogbookDraft struct {
	Phase    Phase
	Original *models.Logbook
	Parent   *models.LogbookRef

	Name        string
	Description string
	Template    string
	Attributes  []models.Attribute

	// baseAttributes is the schema inherited from the parent at creation,
	// so an untouched child-logbook draft is not considered edited.
	baseAttributes []models.Attribute
}

// NewLogbookDraft returns an empty draft, optionally parented under an
// existing logbook (whose schema seeds the new one, as elog users expect
// child logbooks to inherit their parent's attributes).
func NewLogbookDraft(parent *models.Logbook) LogbookDraft {
	d := LogbookDraft{Phase: PhaseReady}
	if parent != nil {
		d.Parent = &models.LogbookRef{ID: parent.ID, Name: parent.Name}
		d.Attributes = slices.Clone(parent.Attributes)
		d.baseAttributes = slices.Clone(parent.Attributes)
	}
	return d
}

// EditLogbookDraft seeds a draft from an existing logbook for editing.
func EditLogbookDraft(lb *models.Logbook) LogbookDraft {
	return LogbookDraft{
		Phase:       PhaseReady,
		Original:    lb,
		Parent:      lb.Parent,
		Name:        lb.Name,
		Description: lb.Description,
		Template:    lb.Template,
		Attributes:  slices.Clone(lb.Attributes),
	}
}

// SetName replaces the draft name.
func (d LogbookDraft) SetName(name string) LogbookDraft {
	d.Name = name
	return d
}

// SetDescription replaces the draft description.
func (d LogbookDraft) SetDescription(desc string) LogbookDraft {
	d.Description = desc
	return d
}

// SetTemplate replaces the HTML template used to seed new entries.
func (d LogbookDraft) SetTemplate(tmpl string) LogbookDraft {
	d.Template = tmpl
	return d
}

// ReplaceAttribute sets the schema definition at index i.
func (d LogbookDraft) ReplaceAttribute(i int, attr models.Attribute) LogbookDraft {
	d.Attributes = ReplaceAttribute(d.Attributes, i, attr)
	return d
}

// RemoveAttribute splices out the definition at index i.
func (d LogbookDraft) RemoveAttribute(i int) LogbookDraft {
	d.Attributes = RemoveAttribute(d.Attributes, i)
	return d
}

// InsertAttribute inserts a blank definition at index i.
func (d LogbookDraft) InsertAttribute(i int) LogbookDraft {
	d.Attributes = InsertAttribute(d.Attributes, i)
	return d
}

// MoveAttribute moves the definition at index i by delta.
func (d LogbookDraft) MoveAttribute(i, delta int) LogbookDraft {
	d.Attributes = MoveAttribute(d.Attributes, i, delta)
	return d
}

// BeginSubmit, FailSubmit and FinishSubmit mirror the entry draft phases.
func (d LogbookDraft) BeginSubmit() LogbookDraft {
	d.Phase = PhaseSubmitting
	return d
}

func (d LogbookDraft) FailSubmit() LogbookDraft {
	d.Phase = PhaseReady
	return d
}

func (d LogbookDraft) FinishSubmit() LogbookDraft {
	d.Phase = PhaseSubmitted
	return d
}

// Dirty reports whether any edited field differs from the original.
func (d LogbookDraft) Dirty() bool {
	var origName, origDesc, origTmpl string
	origAttrs := d.baseAttributes
	if d.Original != nil {
		origName = d.Original.Name
		origDesc = d.Original.Description
		origTmpl = d.Original.Template
		origAttrs = d.Original.Attributes
	}
	return d.Name != origName ||
		d.Description != origDesc ||
		d.Template != origTmpl ||
		!attributesEqual(d.Attributes, origAttrs)
}

// GuardMessage mirrors the entry draft navigation guard.
func (d LogbookDraft) GuardMessage() string {
	if d.Phase == PhaseSubmitting || d.Phase == PhaseSubmitted {
		return ""
	}
	if d.Dirty() {
		return GuardText
	}
	return ""
}

func attributesEqual(a, b []models.Attribute) bool {
	return slices.EqualFunc(a, b, func(x, y models.Attribute) bool {
		return x.Name == y.Name &&
			x.Type == y.Type &&
			x.Required == y.Required &&
			slices.Equal(x.Options, y.Options)
	})
}
