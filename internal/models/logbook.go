// Package models defines the wire types exchanged with the logbook server.
package models

// AttributeType is the value type of a logbook attribute definition.
type AttributeType string

// Attribute types supported by logbook schemas.
const (
	AttributeText        AttributeType = "text"
	AttributeNumber      AttributeType = "number"
	AttributeBoolean     AttributeType = "boolean"
	AttributeOption      AttributeType = "option"
	AttributeMultiOption AttributeType = "multioption"
)

// Attribute is a single attribute definition in a logbook's schema.
// The order of definitions within a logbook determines display order.
type Attribute struct {
	Name     string        `json:"name"`
	Type     AttributeType `json:"type"`
	Required bool          `json:"required"`
	Options  []string      `json:"options,omitempty"`
}

// IsSelect reports whether the attribute takes values from an option list.
func (a Attribute) IsSelect() bool {
	return a.Type == AttributeOption || a.Type == AttributeMultiOption
}

// LogbookRef is a shallow reference to a logbook (used for parents).
type LogbookRef struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// Logbook is a full logbook as returned by GET /api/logbooks/{id}/.
type Logbook struct {
	ID          int64       `json:"id"`
	Name        string      `json:"name"`
	Description string      `json:"description"`
	Template    string      `json:"template"`
	Parent      *LogbookRef `json:"parent,omitempty"`
	Attributes  []Attribute `json:"attributes"`
	Children    []Logbook   `json:"children,omitempty"`
	CreatedAt   string      `json:"created_at,omitempty"`
}

// Attribute returns the definition with the given name, if present.
func (l *Logbook) Attribute(name string) (Attribute, bool) {
	for _, a := range l.Attributes {
		if a.Name == name {
			return a, true
		}
	}
	return Attribute{}, false
}
