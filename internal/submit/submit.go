// Package submit orchestrates entry submission: gather the draft, send the
// metadata request, upload staged attachments against the returned entry
// id, then report where to navigate. The three editor variants share this
// single workflow; their differences are data, not code paths.
package submit

import (
	"context"
	"errors"
	"fmt"

	"github.com/lablog-io/lablog/internal/api"
	"github.com/lablog-io/lablog/internal/draft"
	"github.com/lablog-io/lablog/internal/eventbus"
	"github.com/lablog-io/lablog/internal/logging"
	"github.com/lablog-io/lablog/internal/models"
)

// Variant selects which editor flavor is submitting.
type Variant int

const (
	// VariantNew creates a fresh entry in a logbook.
	VariantNew Variant = iota
	// VariantFollowup creates a reply beneath an existing entry.
	VariantFollowup
	// VariantEdit replaces an existing entry and must carry its revision.
	VariantEdit
)

func (v Variant) String() string {
	switch v {
	case VariantNew:
		return "new"
	case VariantFollowup:
		return "followup"
	case VariantEdit:
		return "edit"
	}
	return "unknown"
}

// Backend is the slice of the API client the workflow needs.
type Backend interface {
	CreateEntry(ctx context.Context, logbookID int64, req api.EntryRequest) (*models.Entry, error)
	CreateFollowup(ctx context.Context, logbookID, entryID int64, req api.EntryRequest) (*models.Entry, error)
	UpdateEntry(ctx context.Context, logbookID, entryID int64, req api.EntryRequest) (*models.Entry, error)
	UploadAttachment(ctx context.Context, logbookID, entryID int64, filename string, data []byte) (*models.Attachment, error)
}

// UploadFailure records one attachment that could not be uploaded. Failures
// are independent per attachment and never block the rest of the workflow.
type UploadFailure struct {
	Filename string
	Err      error
}

// Result is a successful submission.
type Result struct {
	Entry          *models.Entry
	LogbookID      int64
	ViewPath       string
	UploadFailures []UploadFailure
}

// Workflow submits entry drafts against a backend and announces mutations
// on the event bus.
type Workflow struct {
	backend Backend
	bus     *eventbus.Bus
}

// NewWorkflow creates a workflow. The bus may be nil in tests.
func NewWorkflow(backend Backend, bus *eventbus.Bus) *Workflow {
	return &Workflow{backend: backend, bus: bus}
}

// BuildRequest assembles the request body for a variant. It is pure so the
// carry-over policy stays exhaustively testable:
//
//	New      — draft fields only, content falls back to the logbook template
//	Followup — parent's title; authors/attributes fall back to the parent
//	Edit     — draft fields (seeded from the original at load time) plus
//	           the original's revision_n and follows reference
func BuildRequest(v Variant, d draft.EntryDraft) (api.EntryRequest, error) {
	req := api.EntryRequest{
		Title:       d.Title,
		Authors:     d.Authors,
		Content:     d.EffectiveContent(),
		ContentType: d.ContentType,
		Attributes:  d.Attributes,
	}

	switch v {
	case VariantNew:
		// No original entry; nothing to carry over.

	case VariantFollowup:
		if d.Original == nil {
			return api.EntryRequest{}, errors.New("followup submission without a parent entry")
		}
		req.Title = d.Original.Title
		if len(req.Authors) == 0 {
			req.Authors = d.Original.Authors
		}
		if len(req.Attributes) == 0 {
			req.Attributes = d.Original.Attributes
		}

	case VariantEdit:
		if d.Original == nil {
			return api.EntryRequest{}, errors.New("edit submission without an original entry")
		}
		rev := d.Original.RevisionN
		req.RevisionN = &rev
		req.Archived = d.Original.Archived
		if d.Original.Follows != 0 {
			follows := d.Original.Follows
			req.FollowsID = &follows
		}

	default:
		return api.EntryRequest{}, fmt.Errorf("unknown variant %d", v)
	}

	if req.Authors == nil {
		req.Authors = []string{}
	}
	if req.Attributes == nil {
		req.Attributes = map[string]any{}
	}
	return req, nil
}

// Submit runs the two-phase workflow. The metadata request must complete
// and yield the server-assigned entry id before any attachment upload is
// issued; uploads are then fired independently and their failures are
// collected rather than returned as an error.
func (w *Workflow) Submit(ctx context.Context, v Variant, d draft.EntryDraft) (*Result, error) {
	if d.Logbook == nil {
		return nil, errors.New("submit without a loaded logbook")
	}

	req, err := BuildRequest(v, d)
	if err != nil {
		return nil, err
	}

	logbookID := d.Logbook.ID
	var entry *models.Entry
	switch v {
	case VariantNew:
		entry, err = w.backend.CreateEntry(ctx, logbookID, req)
	case VariantFollowup:
		entry, err = w.backend.CreateFollowup(ctx, logbookID, d.Original.ID, req)
	case VariantEdit:
		entry, err = w.backend.UpdateEntry(ctx, logbookID, d.Original.ID, req)
	}
	if err != nil {
		return nil, err
	}

	entryID := entry.ID
	if entryID == 0 && v == VariantEdit {
		entryID = d.Original.ID
	}

	var failures []UploadFailure
	for _, f := range d.Attachments.StagedFiles() {
		if _, err := w.backend.UploadAttachment(ctx, logbookID, entryID, f.Filename, f.Data); err != nil {
			logging.Warn("attachment upload failed", "filename", f.Filename, "error", err)
			failures = append(failures, UploadFailure{Filename: f.Filename, Err: err})
		}
	}

	if w.bus != nil {
		w.bus.Publish(eventbus.TopicLogbookReload, logbookID)
	}

	return &Result{
		Entry:          entry,
		LogbookID:      logbookID,
		ViewPath:       fmt.Sprintf("/logbooks/%d/entries/%d", logbookID, entryID),
		UploadFailures: failures,
	}, nil
}
