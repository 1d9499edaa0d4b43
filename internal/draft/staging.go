package draft

import (
	"github.com/google/uuid"

	"github.com/lablog-io/lablog/internal/models"
)

// StagedFile is a local file pending upload. It has no server identity;
// the payload is held in memory until the owning entry has been saved.
type StagedFile struct {
	LocalID  string
	Filename string
	Data     []byte
}

// AttachmentItem is one slot in the staging list: exactly one of Persisted
// or Staged is set.
type AttachmentItem struct {
	Persisted *models.Attachment
	Staged    *StagedFile
}

// Name returns the display name of the item.
func (it AttachmentItem) Name() string {
	if it.Persisted != nil {
		return it.Persisted.Filename
	}
	return it.Staged.Filename
}

// Staging is the ordered attachment list of a draft, mixing already
// persisted attachments with locally staged files. Mutations return new
// lists.
type Staging []AttachmentItem

// StagingFromEntry seeds the list with an entry's persisted attachments,
// in server order.
func StagingFromEntry(e *models.Entry) Staging {
	if e == nil {
		return nil
	}
	out := make(Staging, 0, len(e.Attachments))
	for i := range e.Attachments {
		a := e.Attachments[i]
		out = append(out, AttachmentItem{Persisted: &a})
	}
	return out
}

// Add appends a new staged file, preserving existing order.
func (s Staging) Add(filename string, data []byte) Staging {
	out := make(Staging, len(s), len(s)+1)
	copy(out, s)
	return append(out, AttachmentItem{Staged: &StagedFile{
		LocalID:  uuid.New().String(),
		Filename: filename,
		Data:     data,
	}})
}

// StagedFiles returns only the files still pending upload, in list order.
// Persisted attachments are never re-uploaded.
func (s Staging) StagedFiles() []StagedFile {
	var out []StagedFile
	for _, it := range s {
		if it.Staged != nil {
			out = append(out, *it.Staged)
		}
	}
	return out
}

// HasStaged reports whether any file is pending upload.
func (s Staging) HasStaged() bool {
	for _, it := range s {
		if it.Staged != nil {
			return true
		}
	}
	return false
}
