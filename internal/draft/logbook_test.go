package draft

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lablog-io/lablog/internal/models"
)

func TestLogbookDraftDirty(t *testing.T) {
	lb := &models.Logbook{
		ID:          5,
		Name:        "Ops",
		Description: "desc",
		Template:    "<p>t</p>",
		Attributes:  schema("Priority"),
	}

	d := EditLogbookDraft(lb)
	assert.False(t, d.Dirty())

	assert.True(t, d.SetName("Ops2").Dirty())
	assert.True(t, d.SetDescription("other").Dirty())
	assert.True(t, d.SetTemplate("").Dirty())
	assert.True(t, d.InsertAttribute(0).Dirty())
	assert.True(t, d.RemoveAttribute(0).Dirty())

	// Reverting restores the clean state.
	assert.False(t, d.SetName("other").SetName("Ops").Dirty())
}

func TestNewLogbookDraftInheritsParentSchema(t *testing.T) {
	parent := &models.Logbook{ID: 1, Name: "Top", Attributes: schema("a", "b")}
	d := NewLogbookDraft(parent)

	assert.Equal(t, int64(1), d.Parent.ID)
	assert.Equal(t, []string{"a", "b"}, names(d.Attributes))

	top := NewLogbookDraft(nil)
	assert.Nil(t, top.Parent)
	assert.Empty(t, top.Attributes)

	// The inherited schema alone is not an edit.
	assert.False(t, d.Dirty())
	assert.True(t, d.RemoveAttribute(0).Dirty())
}

func TestLogbookGuardSuppressedWhileSubmitting(t *testing.T) {
	d := NewLogbookDraft(nil).SetName("fresh")
	assert.Equal(t, GuardText, d.GuardMessage())
	assert.Empty(t, d.BeginSubmit().GuardMessage())
}

func TestLogbookAttributeOpsGoThroughList(t *testing.T) {
	d := NewLogbookDraft(nil).InsertAttribute(0).InsertAttribute(1)
	d = d.ReplaceAttribute(1, models.Attribute{Name: "Severity", Type: models.AttributeOption, Options: []string{"Low"}})

	assert.Equal(t, "Severity", d.Attributes[1].Name)

	moved := d.MoveAttribute(1, -1)
	assert.Equal(t, "Severity", moved.Attributes[0].Name)

	// Out-of-bounds move leaves the draft unchanged.
	assert.Equal(t, names(d.Attributes), names(d.MoveAttribute(0, -1).Attributes))
}
