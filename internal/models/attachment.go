package models

// Attachment is a file already persisted on the server. The path is
// stable and doubles as the attachment's identifier.
type Attachment struct {
	Path        string         `json:"path"`
	Filename    string         `json:"filename"`
	ContentType string         `json:"content_type,omitempty"`
	Embedded    bool           `json:"embedded,omitempty"`
	Metadata    map[string]any `json:"metadata,omitempty"`
}
