package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/lablog-io/lablog/internal/models"
)

// LogbookRequest is the body for logbook create/edit submissions.
type LogbookRequest struct {
	ParentID            *int64             `json:"parent_id"`
	Name                string             `json:"name"`
	Description         string             `json:"description"`
	Attributes          []models.Attribute `json:"attributes"`
	Template            string             `json:"template"`
	TemplateContentType string             `json:"template_content_type"`
}

// FetchLogbook retrieves a logbook with its attribute schema and children.
func (c *Client) FetchLogbook(ctx context.Context, logbookID int64) (*models.Logbook, error) {
	var logbook models.Logbook
	path := fmt.Sprintf("/api/logbooks/%d/", logbookID)
	if err := c.getJSON(ctx, path, nil, &logbook); err != nil {
		return nil, err
	}
	return &logbook, nil
}

// CreateLogbook creates a new logbook, either top-level (parentID nil) or
// as a child of the given logbook.
func (c *Client) CreateLogbook(ctx context.Context, parentID *int64, req LogbookRequest) (*models.Logbook, error) {
	path := "/api/logbooks/"
	if parentID != nil {
		path = fmt.Sprintf("/api/logbooks/%d/", *parentID)
	}
	var logbook models.Logbook
	if err := c.sendJSON(ctx, http.MethodPost, path, req, &logbook); err != nil {
		return nil, err
	}
	return &logbook, nil
}

// UpdateLogbook replaces an existing logbook's name, description, schema
// and template.
func (c *Client) UpdateLogbook(ctx context.Context, logbookID int64, req LogbookRequest) (*models.Logbook, error) {
	var logbook models.Logbook
	path := fmt.Sprintf("/api/logbooks/%d/", logbookID)
	if err := c.sendJSON(ctx, http.MethodPut, path, req, &logbook); err != nil {
		return nil, err
	}
	return &logbook, nil
}
