package draft

import "github.com/lablog-io/lablog/internal/models"

// Attribute list operations for the logbook schema editor. Every operation
// returns a fresh slice so callers can rely on reference comparison for
// change detection; an index or move that falls outside the list returns
// the input unchanged.

// ReplaceAttribute sets the definition at index i.
func ReplaceAttribute(list []models.Attribute, i int, attr models.Attribute) []models.Attribute {
	if i < 0 || i >= len(list) {
		return list
	}
	out := make([]models.Attribute, len(list))
	copy(out, list)
	out[i] = attr
	return out
}

// RemoveAttribute splices out the definition at index i.
func RemoveAttribute(list []models.Attribute, i int) []models.Attribute {
	if i < 0 || i >= len(list) {
		return list
	}
	out := make([]models.Attribute, 0, len(list)-1)
	out = append(out, list[:i]...)
	out = append(out, list[i+1:]...)
	return out
}

// InsertAttribute inserts a blank text attribute at index i. Inserting at
// len(list) appends.
func InsertAttribute(list []models.Attribute, i int) []models.Attribute {
	if i < 0 || i > len(list) {
		return list
	}
	blank := models.Attribute{
		Name:     "New attribute",
		Type:     models.AttributeText,
		Required: false,
	}
	out := make([]models.Attribute, 0, len(list)+1)
	out = append(out, list[:i]...)
	out = append(out, blank)
	out = append(out, list[i:]...)
	return out
}

// MoveAttribute moves the definition at index i by delta positions. A move
// that would leave the list bounds is a no-op.
func MoveAttribute(list []models.Attribute, i, delta int) []models.Attribute {
	if i < 0 || i >= len(list) {
		return list
	}
	j := i + delta
	if j < 0 || j >= len(list) {
		return list
	}
	attr := list[i]
	out := RemoveAttribute(list, i)
	result := make([]models.Attribute, 0, len(list))
	result = append(result, out[:j]...)
	result = append(result, attr)
	result = append(result, out[j:]...)
	return result
}
