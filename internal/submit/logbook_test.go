package submit

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lablog-io/lablog/internal/api"
	"github.com/lablog-io/lablog/internal/draft"
	"github.com/lablog-io/lablog/internal/models"
)

type fakeLogbookBackend struct {
	created  *api.LogbookRequest
	updated  *api.LogbookRequest
	parentID *int64
	editedID int64
	err      error
}

func (f *fakeLogbookBackend) CreateLogbook(_ context.Context, parentID *int64, req api.LogbookRequest) (*models.Logbook, error) {
	f.created = &req
	f.parentID = parentID
	if f.err != nil {
		return nil, f.err
	}
	return &models.Logbook{ID: 10, Name: req.Name}, nil
}

func (f *fakeLogbookBackend) UpdateLogbook(_ context.Context, logbookID int64, req api.LogbookRequest) (*models.Logbook, error) {
	f.updated = &req
	f.editedID = logbookID
	if f.err != nil {
		return nil, f.err
	}
	return &models.Logbook{ID: logbookID, Name: req.Name}, nil
}

func TestBuildLogbookRequest(t *testing.T) {
	parent := &models.Logbook{ID: 4, Name: "Top", Attributes: []models.Attribute{{Name: "a", Type: models.AttributeText}}}
	d := draft.NewLogbookDraft(parent).SetName("Child").SetTemplate("<p>t</p>")

	req := BuildLogbookRequest(d)
	require.NotNil(t, req.ParentID)
	assert.Equal(t, int64(4), *req.ParentID)
	assert.Equal(t, "text/html", req.TemplateContentType)
	assert.Equal(t, []string{"a"}, []string{req.Attributes[0].Name})

	top := BuildLogbookRequest(draft.NewLogbookDraft(nil).SetName("Top"))
	assert.Nil(t, top.ParentID)
	assert.NotNil(t, top.Attributes, "schema marshals as an empty list, not null")
}

func TestSaveLogbookCreatesUnderParent(t *testing.T) {
	backend := &fakeLogbookBackend{}
	parent := &models.Logbook{ID: 4, Name: "Top"}

	lb, err := SaveLogbook(context.Background(), backend, nil, draft.NewLogbookDraft(parent).SetName("Child"))
	require.NoError(t, err)
	assert.Equal(t, int64(10), lb.ID)
	require.NotNil(t, backend.parentID)
	assert.Equal(t, int64(4), *backend.parentID)
	assert.Nil(t, backend.updated)
}

func TestSaveLogbookUpdatesOriginal(t *testing.T) {
	backend := &fakeLogbookBackend{}
	original := &models.Logbook{ID: 7, Name: "Ops"}

	lb, err := SaveLogbook(context.Background(), backend, nil, draft.EditLogbookDraft(original).SetName("Ops2"))
	require.NoError(t, err)
	assert.Equal(t, int64(7), lb.ID)
	assert.Equal(t, int64(7), backend.editedID)
	assert.Nil(t, backend.created)
}

func TestSaveLogbookRequiresName(t *testing.T) {
	backend := &fakeLogbookBackend{}
	_, err := SaveLogbook(context.Background(), backend, nil, draft.NewLogbookDraft(nil))
	require.Error(t, err)
	assert.Nil(t, backend.created)
}

func TestSaveLogbookPropagatesBackendError(t *testing.T) {
	backend := &fakeLogbookBackend{err: errors.New("boom")}
	_, err := SaveLogbook(context.Background(), backend, nil, draft.NewLogbookDraft(nil).SetName("X"))
	assert.Error(t, err)
}
