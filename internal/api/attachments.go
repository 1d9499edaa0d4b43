package api

import (
	"bytes"
	"context"
	"fmt"
	"mime/multipart"
	"net/http"

	"github.com/lablog-io/lablog/internal/models"
)

// UploadAttachment posts one file against an existing entry as a multipart
// form with a single "attachment" field. Each upload is an independent
// request; failures do not affect sibling uploads.
func (c *Client) UploadAttachment(ctx context.Context, logbookID, entryID int64, filename string, data []byte) (*models.Attachment, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	part, err := w.CreateFormFile("attachment", filename)
	if err != nil {
		return nil, fmt.Errorf("create form file: %w", err)
	}
	if _, err := part.Write(data); err != nil {
		return nil, fmt.Errorf("write form file: %w", err)
	}
	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("close multipart writer: %w", err)
	}

	path := fmt.Sprintf("/api/logbooks/%d/entries/%d/attachments/", logbookID, entryID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, &buf)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", w.FormDataContentType())
	req.Header.Set("Accept", "application/json")

	var attachment models.Attachment
	if err := c.do(req, &attachment); err != nil {
		return nil, err
	}
	return &attachment, nil
}
