package draft

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lablog-io/lablog/internal/models"
)

func schema(names ...string) []models.Attribute {
	out := make([]models.Attribute, 0, len(names))
	for _, n := range names {
		out = append(out, models.Attribute{Name: n, Type: models.AttributeText})
	}
	return out
}

func names(list []models.Attribute) []string {
	out := make([]string, 0, len(list))
	for _, a := range list {
		out = append(out, a.Name)
	}
	return out
}

func TestInsertThenRemoveRoundTrips(t *testing.T) {
	orig := schema("a", "b", "c")

	for i := 0; i <= len(orig); i++ {
		inserted := InsertAttribute(orig, i)
		assert.Len(t, inserted, 4)
		restored := RemoveAttribute(inserted, i)
		assert.Equal(t, names(orig), names(restored), "insert/remove at %d", i)
	}
}

func TestInsertAppendsBlankTextAttribute(t *testing.T) {
	list := InsertAttribute(nil, 0)
	assert.Len(t, list, 1)
	assert.Equal(t, models.AttributeText, list[0].Type)
	assert.False(t, list[0].Required)
}

func TestMoveAttribute(t *testing.T) {
	tests := []struct {
		name  string
		index int
		delta int
		want  []string
	}{
		{"down one", 0, 1, []string{"b", "a", "c"}},
		{"up one", 2, -1, []string{"a", "c", "b"}},
		{"to front", 2, -2, []string{"c", "a", "b"}},
		{"out of bounds up", 0, -1, []string{"a", "b", "c"}},
		{"out of bounds down", 2, 1, []string{"a", "b", "c"}},
		{"way out", 1, 10, []string{"a", "b", "c"}},
		{"zero delta", 1, 0, []string{"a", "b", "c"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MoveAttribute(schema("a", "b", "c"), tt.index, tt.delta)
			assert.Equal(t, tt.want, names(got))
		})
	}
}

func TestOperationsDoNotMutateInput(t *testing.T) {
	orig := schema("a", "b", "c")

	_ = ReplaceAttribute(orig, 1, models.Attribute{Name: "x"})
	_ = RemoveAttribute(orig, 1)
	_ = InsertAttribute(orig, 1)
	_ = MoveAttribute(orig, 0, 2)

	assert.Equal(t, []string{"a", "b", "c"}, names(orig))
}

func TestReplaceOutOfRangeIsNoop(t *testing.T) {
	orig := schema("a")
	assert.Equal(t, orig, ReplaceAttribute(orig, 3, models.Attribute{Name: "x"}))
	assert.Equal(t, orig, RemoveAttribute(orig, -1))
}
