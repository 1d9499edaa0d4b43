package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/lablog-io/lablog/internal/models"
)

// EntryRequest is the body for entry create/followup/edit submissions.
// RevisionN is mandatory for edits and must be absent otherwise; the
// backend treats an edit without it as a protocol violation.
type EntryRequest struct {
	Title       string         `json:"title"`
	Authors     []string       `json:"authors"`
	Content     string         `json:"content"`
	ContentType string         `json:"content_type"`
	Attributes  map[string]any `json:"attributes"`
	FollowsID   *int64         `json:"follows_id,omitempty"`
	Archived    bool           `json:"archived"`
	RevisionN   *int           `json:"revision_n,omitempty"`
}

// FetchEntry retrieves a single entry with its followup tree.
func (c *Client) FetchEntry(ctx context.Context, logbookID, entryID int64) (*models.Entry, error) {
	var entry models.Entry
	path := fmt.Sprintf("/api/logbooks/%d/entries/%d/", logbookID, entryID)
	if err := c.getJSON(ctx, path, nil, &entry); err != nil {
		return nil, err
	}
	return &entry, nil
}

// CreateEntry posts a fresh entry to a logbook and returns the stored
// entry, including its server-assigned id.
func (c *Client) CreateEntry(ctx context.Context, logbookID int64, req EntryRequest) (*models.Entry, error) {
	var entry models.Entry
	path := fmt.Sprintf("/api/logbooks/%d/entries/", logbookID)
	if err := c.sendJSON(ctx, http.MethodPost, path, req, &entry); err != nil {
		return nil, err
	}
	return &entry, nil
}

// CreateFollowup posts a followup to an existing entry.
func (c *Client) CreateFollowup(ctx context.Context, logbookID, entryID int64, req EntryRequest) (*models.Entry, error) {
	var entry models.Entry
	path := fmt.Sprintf("/api/logbooks/%d/entries/%d/", logbookID, entryID)
	if err := c.sendJSON(ctx, http.MethodPost, path, req, &entry); err != nil {
		return nil, err
	}
	return &entry, nil
}

// UpdateEntry replaces an existing entry. The request must carry the
// revision_n of the entry as last fetched; a stale value is reported as
// ErrConflict.
func (c *Client) UpdateEntry(ctx context.Context, logbookID, entryID int64, req EntryRequest) (*models.Entry, error) {
	if req.RevisionN == nil {
		return nil, errors.New("update entry: revision_n is required")
	}
	var entry models.Entry
	path := fmt.Sprintf("/api/logbooks/%d/entries/%d/", logbookID, entryID)
	if err := c.sendJSON(ctx, http.MethodPut, path, req, &entry); err != nil {
		return nil, err
	}
	return &entry, nil
}
