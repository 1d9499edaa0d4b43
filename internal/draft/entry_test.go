package draft

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lablog-io/lablog/internal/models"
)

func TestSetThenClearAttributeRemovesKey(t *testing.T) {
	d := NewEntryDraft()

	d = d.SetAttribute("Priority", "High")
	assert.Equal(t, "High", d.Attributes["Priority"])

	d = d.SetAttribute("Priority", "")
	_, present := d.Attributes["Priority"]
	assert.False(t, present, "cleared attribute must be absent, not empty")
}

func TestClearVariants(t *testing.T) {
	tests := []struct {
		name  string
		value any
	}{
		{"nil", nil},
		{"empty string", ""},
		{"empty string slice", []string{}},
		{"empty any slice", []any{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := NewEntryDraft().SetAttribute("x", "keep")
			d = d.SetAttribute("x", tt.value)
			_, present := d.Attributes["x"]
			assert.False(t, present)
		})
	}
}

func TestDirtyRoundTrip(t *testing.T) {
	original := &models.Entry{Title: "A", Authors: []string{"alice"}}
	d := NewEntryDraft().
		WithLogbook(&models.Logbook{ID: 1}).
		WithOriginal(original, true)

	assert.False(t, d.Dirty())

	d = d.SetTitle("B")
	assert.True(t, d.Dirty())

	d = d.SetTitle("A")
	assert.False(t, d.Dirty(), "exact match with original is not dirty")
}

func TestDirtyOnAuthorsAndContent(t *testing.T) {
	original := &models.Entry{Title: "T", Content: "c", Authors: []string{"alice"}}
	base := NewEntryDraft().
		WithLogbook(&models.Logbook{ID: 1}).
		WithOriginal(original, true)

	assert.True(t, base.AddAuthor("bob").Dirty())
	assert.True(t, base.RemoveAuthor("alice").Dirty())
	assert.True(t, base.SetContent("changed").Dirty())
	assert.False(t, base.AddAuthor("alice").Dirty(), "adding a duplicate is a no-op")
}

func TestNewDraftDirtyAgainstDefaults(t *testing.T) {
	d := NewEntryDraft().WithLogbook(&models.Logbook{ID: 1})
	assert.False(t, d.Dirty())
	assert.True(t, d.SetTitle("hello").Dirty())
}

func TestSeededDefaultAuthorsStayClean(t *testing.T) {
	d := NewEntryDraft().
		SeedAuthors([]string{"alice", "bob"}).
		WithLogbook(&models.Logbook{ID: 1})

	assert.Equal(t, []string{"alice", "bob"}, d.Authors)
	assert.False(t, d.Dirty())
	assert.True(t, d.RemoveAuthor("bob").Dirty())
}

func TestGuardMessage(t *testing.T) {
	d := NewEntryDraft().WithLogbook(&models.Logbook{ID: 1}).SetTitle("x")

	assert.Equal(t, GuardText, d.GuardMessage())

	// Once submission starts, the guard must not block navigation.
	assert.Empty(t, d.BeginSubmit().GuardMessage())
	assert.Empty(t, d.BeginSubmit().FinishSubmit().GuardMessage())

	// A failed submit is editable (and guarded) again.
	assert.Equal(t, GuardText, d.BeginSubmit().FailSubmit().GuardMessage())
}

func TestEffectiveContentFallsBackToTemplate(t *testing.T) {
	lb := &models.Logbook{ID: 1, Template: "<p>template</p>"}
	d := NewEntryDraft().WithLogbook(lb)

	assert.Equal(t, "<p>template</p>", d.EffectiveContent())
	assert.Equal(t, "<p>mine</p>", d.SetContent("<p>mine</p>").EffectiveContent())
}

func TestWithOriginalFillSeedsFields(t *testing.T) {
	e := &models.Entry{
		Title:       "T",
		Authors:     []string{"alice"},
		Content:     "<p>hi</p>",
		ContentType: models.ContentTypeHTML,
		Attributes:  map[string]any{"Priority": "High"},
		Attachments: []models.Attachment{{Path: "a/1", Filename: "a.png"}},
		RevisionN:   3,
	}
	d := NewEntryDraft().WithLogbook(&models.Logbook{ID: 1}).WithOriginal(e, true)

	assert.Equal(t, PhaseReady, d.Phase)
	assert.Equal(t, "T", d.Title)
	assert.Equal(t, "High", d.Attributes["Priority"])
	assert.Len(t, d.Attachments, 1)

	// Followup variant: keep the original for display only. The blank
	// draft is clean until the user types.
	f := NewEntryDraft().WithLogbook(&models.Logbook{ID: 1}).WithOriginal(e, false)
	assert.Empty(t, f.Title)
	assert.Empty(t, f.Attachments)
	assert.Equal(t, e, f.Original)
	assert.False(t, f.Dirty())
	assert.True(t, f.SetContent("<p>reply</p>").Dirty())
}

func TestStagingOrderAndSelection(t *testing.T) {
	e := &models.Entry{Attachments: []models.Attachment{{Path: "p/a", Filename: "a.png"}}}
	s := StagingFromEntry(e)
	s = s.Add("b.png", []byte("bytes"))

	assert.Len(t, s, 2)
	assert.Equal(t, "a.png", s[0].Name())
	assert.Equal(t, "b.png", s[1].Name())

	staged := s.StagedFiles()
	assert.Len(t, staged, 1, "only the locally added file is pending upload")
	assert.Equal(t, "b.png", staged[0].Filename)
	assert.NotEmpty(t, staged[0].LocalID)
	assert.True(t, s.HasStaged())
}
