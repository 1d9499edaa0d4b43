package api

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lablog-io/lablog/internal/models"
)

func TestFetchEntry(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/logbooks/1/entries/2/", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Accept"))

		_ = json.NewEncoder(w).Encode(models.Entry{
			ID:        2,
			Title:     "Test entry",
			RevisionN: 3,
			Followups: []models.Entry{{ID: 5}},
		})
	}))
	defer srv.Close()

	entry, err := New(srv.URL).FetchEntry(context.Background(), 1, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(2), entry.ID)
	assert.Equal(t, 3, entry.RevisionN)
	require.Len(t, entry.Followups, 1)
}

func TestFetchLogbook(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/logbooks/7/", r.URL.Path)
		_ = json.NewEncoder(w).Encode(models.Logbook{
			ID:   7,
			Name: "Ops",
			Attributes: []models.Attribute{
				{Name: "Priority", Type: models.AttributeOption, Options: []string{"Low", "High"}},
			},
		})
	}))
	defer srv.Close()

	lb, err := New(srv.URL).FetchLogbook(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, "Ops", lb.Name)

	attr, ok := lb.Attribute("Priority")
	require.True(t, ok)
	assert.True(t, attr.IsSelect())
}

func TestCreateEntrySendsBody(t *testing.T) {
	var got map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/logbooks/1/entries/", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		_ = json.NewEncoder(w).Encode(models.Entry{ID: 99})
	}))
	defer srv.Close()

	entry, err := New(srv.URL).CreateEntry(context.Background(), 1, EntryRequest{
		Title:       "T",
		Authors:     []string{"alice"},
		Content:     "<p>hi</p>",
		ContentType: models.ContentTypeHTML,
		Attributes:  map[string]any{"Priority": "High"},
	})
	require.NoError(t, err)
	assert.Equal(t, int64(99), entry.ID)

	assert.Equal(t, "T", got["title"])
	assert.Equal(t, []any{"alice"}, got["authors"])
	assert.NotContains(t, got, "revision_n")
}

func TestUpdateEntryRequiresRevision(t *testing.T) {
	c := New("http://unused.invalid")
	_, err := c.UpdateEntry(context.Background(), 1, 2, EntryRequest{Title: "T"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "revision_n")
}

func TestUpdateEntryConflict(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		http.Error(w, `{"message": "conflict"}`, http.StatusConflict)
	}))
	defer srv.Close()

	rev := 1
	_, err := New(srv.URL).UpdateEntry(context.Background(), 1, 2, EntryRequest{RevisionN: &rev})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrConflict, "stale revision must surface as a distinct conflict")

	var statusErr *StatusError
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, http.StatusConflict, statusErr.StatusCode)
}

func TestStatusErrorIsNotConflictForOtherCodes(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusInternalServerError)
	}))
	defer srv.Close()

	_, err := New(srv.URL).FetchLogbook(context.Background(), 1)
	require.Error(t, err)
	assert.False(t, errors.Is(err, ErrConflict))
}

func TestSearchUsers(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/users/", r.URL.Path)
		assert.Equal(t, "ali", r.URL.Query().Get("search"))
		_, _ = io.WriteString(w, `{"users": [{"login": "alice", "name": "Alice A"}]}`)
	}))
	defer srv.Close()

	users, err := New(srv.URL).SearchUsers(context.Background(), "ali")
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, "alice", users[0].Login)
}

func TestUploadAttachmentMultipart(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/logbooks/1/entries/2/attachments/", r.URL.Path)

		require.NoError(t, r.ParseMultipartForm(1<<20))
		f, header, err := r.FormFile("attachment")
		require.NoError(t, err)
		defer f.Close()

		data, err := io.ReadAll(f)
		require.NoError(t, err)
		assert.Equal(t, "b.png", header.Filename)
		assert.Equal(t, []byte("payload"), data)

		_ = json.NewEncoder(w).Encode(models.Attachment{Path: "a/b.png", Filename: "b.png"})
	}))
	defer srv.Close()

	att, err := New(srv.URL).UploadAttachment(context.Background(), 1, 2, "b.png", []byte("payload"))
	require.NoError(t, err)
	assert.Equal(t, "a/b.png", att.Path)
}

func TestCreateLogbookPathSelection(t *testing.T) {
	var paths []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		paths = append(paths, r.URL.Path)
		_ = json.NewEncoder(w).Encode(models.Logbook{ID: 3})
	}))
	defer srv.Close()

	c := New(srv.URL)
	_, err := c.CreateLogbook(context.Background(), nil, LogbookRequest{Name: "Top"})
	require.NoError(t, err)

	parent := int64(8)
	_, err = c.CreateLogbook(context.Background(), &parent, LogbookRequest{Name: "Child"})
	require.NoError(t, err)

	assert.Equal(t, []string{"/api/logbooks/", "/api/logbooks/8/"}, paths)
}
