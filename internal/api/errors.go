package api

import (
	"errors"
	"fmt"
	"io"
	"net/http"
)

// ErrConflict matches edit submissions rejected because the carried
// revision_n was stale. It must be surfaced distinctly from other failures.
var ErrConflict = errors.New("entry was changed by someone else")

// StatusError is a non-2xx response from the backend.
type StatusError struct {
	Method     string
	Path       string
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s %s: server returned %d", e.Method, e.Path, e.StatusCode)
}

// Is lets errors.Is(err, ErrConflict) detect stale-revision rejections.
func (e *StatusError) Is(target error) bool {
	return target == ErrConflict && e.StatusCode == http.StatusConflict
}

func newStatusError(req *http.Request, resp *http.Response) error {
	// Keep a short prefix of the body for diagnostics.
	body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
	return &StatusError{
		Method:     req.Method,
		Path:       req.URL.Path,
		StatusCode: resp.StatusCode,
		Body:       string(body),
	}
}
