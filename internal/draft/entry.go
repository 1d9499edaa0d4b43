// Package draft holds the editable state of entries and logbooks as
// immutable values. Every mutation is a pure function returning a new
// value, which keeps dirty-tracking and the submission workflow testable.
package draft

import (
	"slices"

	"github.com/lablog-io/lablog/internal/models"
)

// Phase is the lifecycle position of a draft.
type Phase int

// Draft phases. Dirty is not a phase: it is derived by comparing the draft
// against its original.
const (
	PhaseEmpty Phase = iota
	PhaseLoading
	PhaseReady
	PhaseSubmitting
	PhaseSubmitted
)

// GuardText is shown when the user tries to navigate away from unsaved
// edits.
const GuardText = "Looks like you have made some edits. If you leave, you will lose those..."

// EntryDraft is the editable overlay of an entry. Original is the entry as
// fetched (nil when creating); unset draft fields fall back to it during
// submission, depending on the workflow variant.
type EntryDraft struct {
	Phase    Phase
	Logbook  *models.Logbook
	Original *models.Entry

	Title       string
	Authors     []string
	Content     string
	ContentType string
	Attributes  map[string]any
	Attachments Staging

	// seeded records whether the editable fields were filled from the
	// original. Dirty-tracking compares against the original only then;
	// a followup starts blank and is clean until the user types.
	seeded bool

	// baseAuthors is the pre-filled author list for a new entry, so that
	// configured default authors alone do not count as an edit.
	baseAuthors []string
}

// NewEntryDraft returns a draft in the empty phase.
func NewEntryDraft() EntryDraft {
	return EntryDraft{ContentType: models.ContentTypeHTML}
}

// BeginLoad marks the fetch as issued.
func (d EntryDraft) BeginLoad() EntryDraft {
	d.Phase = PhaseLoading
	return d
}

// WithLogbook attaches the fetched logbook. For a brand-new entry this is
// all that is needed to become ready.
func (d EntryDraft) WithLogbook(lb *models.Logbook) EntryDraft {
	d.Logbook = lb
	d.Phase = PhaseReady
	return d
}

// WithOriginal attaches the fetched entry. When fill is true the editable
// fields are seeded from it (the edit variant); otherwise the original is
// kept only for read-only display and fallbacks (the followup variant).
func (d EntryDraft) WithOriginal(e *models.Entry, fill bool) EntryDraft {
	d.Original = e
	if fill {
		d.Title = e.Title
		d.Authors = slices.Clone(e.Authors)
		d.Content = e.Content
		d.ContentType = e.ContentType
		d.Attributes = cloneAttributes(e.Attributes)
		d.Attachments = StagingFromEntry(e)
		d.seeded = true
	}
	if d.Logbook != nil {
		d.Phase = PhaseReady
	}
	return d
}

// SetTitle replaces the draft title.
func (d EntryDraft) SetTitle(title string) EntryDraft {
	d.Title = title
	return d
}

// SetContent replaces the draft content.
func (d EntryDraft) SetContent(content string) EntryDraft {
	d.Content = content
	return d
}

// SetAuthors replaces the author list.
func (d EntryDraft) SetAuthors(authors []string) EntryDraft {
	d.Authors = slices.Clone(authors)
	return d
}

// SeedAuthors pre-fills the author list without marking the draft dirty.
func (d EntryDraft) SeedAuthors(authors []string) EntryDraft {
	d.Authors = slices.Clone(authors)
	d.baseAuthors = slices.Clone(authors)
	return d
}

// AddAuthor appends an author name if not already present.
func (d EntryDraft) AddAuthor(name string) EntryDraft {
	if name == "" || slices.Contains(d.Authors, name) {
		return d
	}
	d.Authors = append(slices.Clone(d.Authors), name)
	return d
}

// RemoveAuthor drops an author name from the list.
func (d EntryDraft) RemoveAuthor(name string) EntryDraft {
	out := slices.Clone(d.Authors)
	if i := slices.Index(out, name); i >= 0 {
		out = slices.Delete(out, i, i+1)
	}
	d.Authors = out
	return d
}

// SetAttribute commits one attribute value. Empty values remove the key.
func (d EntryDraft) SetAttribute(name string, value any) EntryDraft {
	d.Attributes = SetAttribute(d.Attributes, name, value)
	return d
}

// AddAttachment stages a local file at the end of the attachment list.
func (d EntryDraft) AddAttachment(filename string, data []byte) EntryDraft {
	d.Attachments = d.Attachments.Add(filename, data)
	return d
}

// BeginSubmit marks the submission as started. From this point the
// navigation guard stays silent so programmatic navigation is not blocked.
func (d EntryDraft) BeginSubmit() EntryDraft {
	d.Phase = PhaseSubmitting
	return d
}

// FailSubmit returns the draft to the editable phase so the user can retry.
func (d EntryDraft) FailSubmit() EntryDraft {
	d.Phase = PhaseReady
	return d
}

// FinishSubmit marks the draft as submitted. Terminal.
func (d EntryDraft) FinishSubmit() EntryDraft {
	d.Phase = PhaseSubmitted
	return d
}

// Dirty reports whether title, content or authors differ from the
// originally fetched entry (or from blank defaults when creating).
func (d EntryDraft) Dirty() bool {
	var origTitle, origContent string
	origAuthors := d.baseAuthors
	if d.Original != nil && d.seeded {
		origTitle = d.Original.Title
		origContent = d.Original.Content
		origAuthors = d.Original.Authors
	}
	return d.Title != origTitle ||
		d.Content != origContent ||
		!slices.Equal(d.Authors, origAuthors)
}

// GuardMessage returns a warning while leaving would lose edits, and ""
// once submission has started or finished.
func (d EntryDraft) GuardMessage() string {
	if d.Phase == PhaseSubmitting || d.Phase == PhaseSubmitted {
		return ""
	}
	if d.Dirty() {
		return GuardText
	}
	return ""
}

// EffectiveContent is the content to submit: the draft content, or the
// logbook template when nothing has been written yet.
func (d EntryDraft) EffectiveContent() string {
	if d.Content != "" {
		return d.Content
	}
	if d.Logbook != nil {
		return d.Logbook.Template
	}
	return ""
}

func cloneAttributes(attrs map[string]any) map[string]any {
	if attrs == nil {
		return nil
	}
	out := make(map[string]any, len(attrs))
	for k, v := range attrs {
		out[k] = v
	}
	return out
}
