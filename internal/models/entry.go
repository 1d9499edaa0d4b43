package models

// Content MIME types an entry can carry.
const (
	ContentTypePlain = "text/plain"
	ContentTypeHTML  = "text/html"
)

// Entry is a logbook entry as returned by the server. Followups nest
// recursively; the server guarantees chronological order within each level.
type Entry struct {
	ID            int64          `json:"id"`
	LogbookID     int64          `json:"logbook_id,omitempty"`
	Title         string         `json:"title"`
	Authors       []string       `json:"authors"`
	Content       string         `json:"content"`
	ContentType   string         `json:"content_type"`
	Attributes    map[string]any `json:"attributes,omitempty"`
	Attachments   []Attachment   `json:"attachments,omitempty"`
	Follows       int64          `json:"follows,omitempty"`
	Followups     []Entry        `json:"followups,omitempty"`
	RevisionN     int            `json:"revision_n"`
	CreatedAt     string         `json:"created_at,omitempty"`
	LastChangedAt string         `json:"last_changed_at,omitempty"`
	Archived      bool           `json:"archived,omitempty"`
	Next          *int64         `json:"next,omitempty"`
	Previous      *int64         `json:"previous,omitempty"`
}

// IsHTML reports whether the entry content should be treated as HTML.
// The server may append a charset suffix, so only the prefix is checked.
func (e *Entry) IsHTML() bool {
	return len(e.ContentType) >= len(ContentTypeHTML) &&
		e.ContentType[:len(ContentTypeHTML)] == ContentTypeHTML
}

// VisibleAttachments returns attachments that are not embedded in the
// content (embedded images are already part of the rendered HTML).
func (e *Entry) VisibleAttachments() []Attachment {
	var out []Attachment
	for _, a := range e.Attachments {
		if !a.Embedded {
			out = append(out, a)
		}
	}
	return out
}
