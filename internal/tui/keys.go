package tui

import "github.com/charmbracelet/bubbles/key"

// EditorKeys are active in every editor.
type EditorKeys struct {
	Submit key.Binding
	Quit   key.Binding
	Next   key.Binding
	Prev   key.Binding
}

var editorKeys = EditorKeys{
	Submit: key.NewBinding(
		key.WithKeys("ctrl+s"),
		key.WithHelp("Ctrl+s", "submit"),
	),
	Quit: key.NewBinding(
		key.WithKeys("ctrl+q", "esc"),
		key.WithHelp("Esc", "quit"),
	),
	Next: key.NewBinding(
		key.WithKeys("tab"),
		key.WithHelp("Tab", "next field"),
	),
	Prev: key.NewBinding(
		key.WithKeys("shift+tab"),
		key.WithHelp("Shift+Tab", "previous field"),
	),
}

// SelectKeys are active on option, multioption and boolean fields.
type SelectKeys struct {
	Cycle     key.Binding
	CycleBack key.Binding
	Toggle    key.Binding
	Clear     key.Binding
}

var selectKeys = SelectKeys{
	Cycle: key.NewBinding(
		key.WithKeys("right", "down"),
		key.WithHelp("←/→", "change option"),
	),
	CycleBack: key.NewBinding(
		key.WithKeys("left", "up"),
	),
	Toggle: key.NewBinding(
		key.WithKeys(" ", "enter"),
		key.WithHelp("Space", "toggle"),
	),
	Clear: key.NewBinding(
		key.WithKeys("backspace", "delete"),
		key.WithHelp("Backspace", "clear"),
	),
}

// AuthorKeys are active on the author field.
type AuthorKeys struct {
	Accept key.Binding
	Up     key.Binding
	Down   key.Binding
	Remove key.Binding
}

var authorKeys = AuthorKeys{
	Accept: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("Enter", "add author"),
	),
	Up: key.NewBinding(
		key.WithKeys("up"),
	),
	Down: key.NewBinding(
		key.WithKeys("down"),
	),
	Remove: key.NewBinding(
		key.WithKeys("backspace"),
		key.WithHelp("Backspace", "remove last"),
	),
}

// SchemaKeys edit the attribute list in the logbook editor.
type SchemaKeys struct {
	Up     key.Binding
	Down   key.Binding
	Add    key.Binding
	Remove key.Binding
	MoveUp key.Binding
	MoveDn key.Binding
	Edit   key.Binding
}

var schemaKeys = SchemaKeys{
	Up: key.NewBinding(
		key.WithKeys("up", "k"),
		key.WithHelp("j/k", "navigate"),
	),
	Down: key.NewBinding(
		key.WithKeys("down", "j"),
		key.WithHelp("j/k", "navigate"),
	),
	Add: key.NewBinding(
		key.WithKeys("a"),
		key.WithHelp("a", "add attribute"),
	),
	Remove: key.NewBinding(
		key.WithKeys("x"),
		key.WithHelp("x", "remove"),
	),
	MoveUp: key.NewBinding(
		key.WithKeys("K", "ctrl+up"),
		key.WithHelp("K/J", "move"),
	),
	MoveDn: key.NewBinding(
		key.WithKeys("J", "ctrl+down"),
		key.WithHelp("K/J", "move"),
	),
	Edit: key.NewBinding(
		key.WithKeys("enter", "e"),
		key.WithHelp("Enter", "edit"),
	),
}

// ConfirmKeys for the unsaved-changes prompt.
type ConfirmKeys struct {
	Yes    key.Binding
	No     key.Binding
	Cancel key.Binding
}

var confirmKeys = ConfirmKeys{
	Yes: key.NewBinding(
		key.WithKeys("y"),
		key.WithHelp("y", "discard and quit"),
	),
	No: key.NewBinding(
		key.WithKeys("n"),
		key.WithHelp("n", "keep editing"),
	),
	Cancel: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("Esc", "keep editing"),
	),
}
