package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lablog-io/lablog/internal/models"
)

func typedAuthors(f *AuthorsField, s string) []tea.Cmd {
	var cmds []tea.Cmd
	for _, r := range s {
		cmds = append(cmds, f.Update(keyRunes(string(r))))
	}
	return cmds
}

func TestTypingArmsDebounce(t *testing.T) {
	f := NewAuthorsField(40)
	f.Focus()

	cmds := typedAuthors(f, "al")
	assert.Equal(t, 2, f.Seq(), "every keystroke bumps the sequence")
	assert.NotNil(t, cmds[1], "a long enough query arms the debounce")
}

func TestShortQueryDoesNotSearch(t *testing.T) {
	f := NewAuthorsField(40)
	f.Focus()

	typedAuthors(f, "a")
	_, due := f.DueQuery(f.Seq())
	assert.False(t, due, "single characters never trigger a search")
}

func TestDueQueryDropsStaleTicks(t *testing.T) {
	f := NewAuthorsField(40)
	f.Focus()

	typedAuthors(f, "al")
	staleSeq := f.Seq()
	typedAuthors(f, "i")

	_, due := f.DueQuery(staleSeq)
	assert.False(t, due, "ticks armed before the latest keystroke are stale")

	q, due := f.DueQuery(f.Seq())
	require.True(t, due)
	assert.Equal(t, "ali", q)
}

func TestStaleSuggestionsAreIgnored(t *testing.T) {
	f := NewAuthorsField(40)
	f.Focus()

	typedAuthors(f, "al")
	staleSeq := f.Seq()
	typedAuthors(f, "i")

	f.SetSuggestions(staleSeq, []models.UserAccount{{Login: "albert", Name: "Albert"}})
	assert.Empty(t, f.suggestions, "a slow early response must not clobber the latest query")

	f.SetSuggestions(f.Seq(), []models.UserAccount{{Login: "alice", Name: "Alice"}})
	require.Len(t, f.suggestions, 1)
}

func TestAcceptPrefersHighlightedSuggestion(t *testing.T) {
	f := NewAuthorsField(40)
	f.Focus()

	typedAuthors(f, "al")
	f.SetSuggestions(f.Seq(), []models.UserAccount{
		{Login: "alice", Name: "Alice A"},
		{Login: "albert", Name: "Albert B"},
	})
	f.MoveCursor(1)

	name, ok := f.Accept()
	require.True(t, ok)
	assert.Equal(t, "Albert B", name)
	assert.True(t, f.Empty(), "accepting clears the input")
	assert.Empty(t, f.suggestions)
}

func TestAcceptFallsBackToTypedText(t *testing.T) {
	f := NewAuthorsField(40)
	f.Focus()

	typedAuthors(f, "Guest Author")
	name, ok := f.Accept()
	require.True(t, ok)
	assert.Equal(t, "Guest Author", name)

	_, ok = f.Accept()
	assert.False(t, ok, "nothing to accept on an empty field")
}
