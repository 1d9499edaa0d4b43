package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/lablog-io/lablog/internal/models"
)

// minAuthorQueryLen is the minimum typed length before a search is issued.
const minAuthorQueryLen = 2

// AuthorsField edits the author list with server-side suggestions. Typing
// arms a debounce; once the input has been idle the model issues a search.
// Every keystroke bumps a sequence number and responses carrying a stale
// sequence are dropped, so a slow early response can never clobber the
// suggestions for what the user typed last.
type AuthorsField struct {
	input       textinput.Model
	suggestions []models.UserAccount
	cursor      int
	seq         int
	focused     bool
}

// NewAuthorsField creates the field.
func NewAuthorsField(width int) *AuthorsField {
	ti := textinput.New()
	ti.Placeholder = "add author"
	ti.CharLimit = 100
	ti.Width = width
	return &AuthorsField{input: ti}
}

// Focus activates the field.
func (f *AuthorsField) Focus() {
	f.focused = true
	f.input.Focus()
}

// Blur deactivates the field and drops pending suggestions.
func (f *AuthorsField) Blur() {
	f.focused = false
	f.input.Blur()
	f.suggestions = nil
	f.cursor = 0
}

// Focused reports whether the field is active.
func (f *AuthorsField) Focused() bool {
	return f.focused
}

// Empty reports whether nothing has been typed.
func (f *AuthorsField) Empty() bool {
	return strings.TrimSpace(f.input.Value()) == ""
}

// Update forwards input and arms the search debounce when the typed value
// changes.
func (f *AuthorsField) Update(msg tea.Msg) tea.Cmd {
	before := f.input.Value()

	var cmd tea.Cmd
	f.input, cmd = f.input.Update(msg)

	if f.input.Value() == before {
		return cmd
	}

	// The text changed: anything in flight is now stale.
	f.seq++
	f.suggestions = nil
	f.cursor = 0

	if len(strings.TrimSpace(f.input.Value())) < minAuthorQueryLen {
		return cmd
	}
	return tea.Batch(cmd, authorSearchTick(f.seq))
}

// DueQuery returns the query to search for when a debounce tick fires.
// Ticks armed before the latest keystroke report false.
func (f *AuthorsField) DueQuery(seq int) (string, bool) {
	if seq != f.seq {
		return "", false
	}
	q := strings.TrimSpace(f.input.Value())
	if len(q) < minAuthorQueryLen {
		return "", false
	}
	return q, true
}

// Seq returns the current request sequence.
func (f *AuthorsField) Seq() int {
	return f.seq
}

// SetSuggestions installs a search response, unless it is stale.
func (f *AuthorsField) SetSuggestions(seq int, users []models.UserAccount) {
	if seq != f.seq {
		return
	}
	f.suggestions = users
	f.cursor = 0
}

// MoveCursor moves the suggestion highlight.
func (f *AuthorsField) MoveCursor(delta int) {
	if len(f.suggestions) == 0 {
		return
	}
	f.cursor += delta
	if f.cursor < 0 {
		f.cursor = 0
	}
	if f.cursor >= len(f.suggestions) {
		f.cursor = len(f.suggestions) - 1
	}
}

// Accept returns the name to add: the highlighted suggestion if any,
// otherwise the typed text. The input and suggestions are cleared.
func (f *AuthorsField) Accept() (string, bool) {
	name := strings.TrimSpace(f.input.Value())
	if len(f.suggestions) > 0 {
		name = f.suggestions[f.cursor].Name
	}
	if name == "" {
		return "", false
	}

	f.input.SetValue("")
	f.suggestions = nil
	f.cursor = 0
	f.seq++
	return name, true
}

// View renders the committed authors, the input and any suggestions.
func (f *AuthorsField) View(authors []string) string {
	var b strings.Builder
	b.WriteString(fieldLabelStyle.Render("Authors:"))
	b.WriteString("\n")

	if len(authors) > 0 {
		chips := make([]string, len(authors))
		for i, a := range authors {
			chips[i] = authorChipStyle.Render(a)
		}
		b.WriteString(strings.Join(chips, fieldDimStyle.Render(", ")))
		b.WriteString("\n")
	}

	b.WriteString(f.input.View())

	for i, u := range f.suggestions {
		line := u.Name
		if u.Login != "" && u.Login != u.Name {
			line += fieldDimStyle.Render(" (" + u.Login + ")")
		}
		if i == f.cursor {
			line = suggestionCursorStyle.Render(line)
		} else {
			line = suggestionStyle.Render(line)
		}
		b.WriteString("\n  " + line)
	}

	return b.String()
}
