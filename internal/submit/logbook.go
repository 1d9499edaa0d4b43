package submit

import (
	"context"
	"errors"

	"github.com/lablog-io/lablog/internal/api"
	"github.com/lablog-io/lablog/internal/draft"
	"github.com/lablog-io/lablog/internal/eventbus"
	"github.com/lablog-io/lablog/internal/models"
)

// LogbookBackend is the slice of the API client the logbook workflow needs.
type LogbookBackend interface {
	CreateLogbook(ctx context.Context, parentID *int64, req api.LogbookRequest) (*models.Logbook, error)
	UpdateLogbook(ctx context.Context, logbookID int64, req api.LogbookRequest) (*models.Logbook, error)
}

// BuildLogbookRequest assembles the request body for a logbook draft.
// Templates are always submitted as HTML, matching what the entry editor
// expects to be seeded with.
func BuildLogbookRequest(d draft.LogbookDraft) api.LogbookRequest {
	req := api.LogbookRequest{
		Name:                d.Name,
		Description:         d.Description,
		Attributes:          d.Attributes,
		Template:            d.Template,
		TemplateContentType: "text/html",
	}
	if d.Parent != nil {
		parentID := d.Parent.ID
		req.ParentID = &parentID
	}
	if req.Attributes == nil {
		req.Attributes = []models.Attribute{}
	}
	return req
}

// SaveLogbook creates or updates a logbook from a draft and announces the
// change on the bus. A draft with an Original updates it; otherwise a new
// logbook is created under the draft's parent (or at the top level).
func SaveLogbook(ctx context.Context, backend LogbookBackend, bus *eventbus.Bus, d draft.LogbookDraft) (*models.Logbook, error) {
	if d.Name == "" {
		return nil, errors.New("logbook name is required")
	}

	req := BuildLogbookRequest(d)

	var lb *models.Logbook
	var err error
	if d.Original != nil {
		lb, err = backend.UpdateLogbook(ctx, d.Original.ID, req)
	} else {
		lb, err = backend.CreateLogbook(ctx, req.ParentID, req)
	}
	if err != nil {
		return nil, err
	}

	if bus != nil {
		bus.Publish(eventbus.TopicLogbookReload, lb.ID)
	}
	return lb, nil
}
