package tui

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/lablog-io/lablog/internal/api"
	"github.com/lablog-io/lablog/internal/draft"
	"github.com/lablog-io/lablog/internal/dropdir"
	"github.com/lablog-io/lablog/internal/eventbus"
	"github.com/lablog-io/lablog/internal/models"
	"github.com/lablog-io/lablog/internal/render"
	"github.com/lablog-io/lablog/internal/submit"
)

type editorKind int

const (
	kindEntry editorKind = iota
	kindLogbook
)

// Model is the editor's bubbletea model. One model instance runs exactly
// one editor: an entry editor in one of its three variants, or a logbook
// editor (create or edit).
type Model struct {
	program  *programRef
	client   *api.Client
	bus      *eventbus.Bus
	workflow *submit.Workflow
	drops    *dropdir.Watcher

	kind    editorKind
	variant submit.Variant

	logbookID int64
	entryID   int64
	parentID  *int64 // parent for a new child logbook
	editingLb bool   // logbook editor edits rather than creates

	entryDraft draft.EntryDraft
	lbDraft    draft.LogbookDraft
	entryForm  *EntryForm
	lbForm     *LogbookForm

	parentView  viewport.Model
	renderer    *render.Renderer
	showParent  bool
	confirmQuit bool

	errText  string
	conflict bool

	width  int
	height int

	// Results for the CLI to report after the program exits.
	Result       *submit.Result
	SavedLogbook *models.Logbook
}

// NewEntryModel creates the model for an entry editor variant. entryID is
// the parent entry for followups and the edited entry for edits; it is
// ignored for the new-entry variant. defaultAuthors pre-fills the author
// list for new entries only.
func NewEntryModel(client *api.Client, bus *eventbus.Bus, drops *dropdir.Watcher, program *programRef, v submit.Variant, logbookID, entryID int64, defaultAuthors []string) Model {
	d := draft.NewEntryDraft()
	if v == submit.VariantNew {
		d = d.SeedAuthors(defaultAuthors)
	}
	return Model{
		program:    program,
		client:     client,
		bus:        bus,
		workflow:   submit.NewWorkflow(client, bus),
		drops:      drops,
		kind:       kindEntry,
		variant:    v,
		logbookID:  logbookID,
		entryID:    entryID,
		entryDraft: d.BeginLoad(),
		width:      80,
		height:     24,
	}
}

// NewLogbookModel creates the model for the logbook editor. When edit is
// true logbookID is the logbook being edited; otherwise parentID (which
// may be nil for a top-level logbook) selects where the new one goes.
func NewLogbookModel(client *api.Client, bus *eventbus.Bus, program *programRef, edit bool, logbookID int64, parentID *int64) Model {
	m := Model{
		program:   program,
		client:    client,
		bus:       bus,
		kind:      kindLogbook,
		logbookID: logbookID,
		parentID:  parentID,
		editingLb: edit,
		width:     80,
		height:    24,
	}
	if !edit && parentID == nil {
		// Top-level create needs no fetch.
		m.lbDraft = draft.NewLogbookDraft(nil)
		m.lbForm = NewLogbookForm(m.lbDraft, m.width)
	}
	return m
}

func (m Model) Init() tea.Cmd {
	var cmds []tea.Cmd

	switch m.kind {
	case kindEntry:
		cmds = append(cmds, loadLogbookCmd(m.client, m.logbookID))
		if m.variant != submit.VariantNew {
			cmds = append(cmds, loadEntryCmd(m.client, m.logbookID, m.entryID))
		}
		if m.drops != nil {
			cmds = append(cmds, watchDropsCmd(m.drops, m.program))
		}
	case kindLogbook:
		if m.editingLb {
			cmds = append(cmds, loadLogbookCmd(m.client, m.logbookID))
		} else if m.parentID != nil {
			cmds = append(cmds, loadLogbookCmd(m.client, *m.parentID))
		}
	}

	return tea.Batch(cmds...)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.parentView.Width = msg.Width - 2
		m.parentView.Height = min(msg.Height/3, 12)
		m.renderer = render.New(msg.Width - 4)
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case LogbookLoadedMsg:
		return m.handleLogbookLoaded(msg)

	case EntryLoadedMsg:
		m.entryDraft = m.entryDraft.WithOriginal(msg.Entry, m.variant == submit.VariantEdit)
		m.maybeBuildEntryForm()
		return m, nil

	case authorSearchTickMsg:
		if m.entryForm != nil {
			if q, ok := m.entryForm.Authors().DueQuery(msg.Seq); ok {
				return m, searchUsersCmd(m.client, msg.Seq, q)
			}
		}
		return m, nil

	case UsersFoundMsg:
		if m.entryForm != nil {
			m.entryForm.Authors().SetSuggestions(msg.Seq, msg.Users)
		}
		return m, nil

	case FileDroppedMsg:
		if m.kind == kindEntry && m.entryDraft.Phase == draft.PhaseReady {
			m.entryDraft = m.entryDraft.AddAttachment(msg.Drop.Filename, msg.Drop.Data)
		}
		return m, nil

	case SubmittedMsg:
		m.entryDraft = m.entryDraft.FinishSubmit()
		m.Result = msg.Result
		return m, tea.Quit

	case SubmitFailedMsg:
		m.entryDraft = m.entryDraft.FailSubmit()
		m.conflict = msg.Conflict
		if msg.Conflict {
			m.errText = "This entry was changed by someone else since you loaded it."
		} else {
			m.errText = msg.Err.Error()
		}
		return m, clearErrorAfter(8 * time.Second)

	case LogbookSavedMsg:
		m.lbDraft = m.lbDraft.FinishSubmit()
		m.SavedLogbook = msg.Logbook
		return m, tea.Quit

	case LogbookSaveFailedMsg:
		m.lbDraft = m.lbDraft.FailSubmit()
		m.errText = msg.Err.Error()
		return m, clearErrorAfter(8 * time.Second)

	case ErrorMsg:
		m.errText = msg.Err.Error()
		return m, clearErrorAfter(8 * time.Second)

	case ClearErrorMsg:
		m.errText = ""
		m.conflict = false
		return m, nil
	}

	return m, nil
}

func (m Model) handleLogbookLoaded(msg LogbookLoadedMsg) (tea.Model, tea.Cmd) {
	switch m.kind {
	case kindEntry:
		m.entryDraft = m.entryDraft.WithLogbook(msg.Logbook)
		m.maybeBuildEntryForm()

	case kindLogbook:
		if m.editingLb {
			m.lbDraft = draft.EditLogbookDraft(msg.Logbook)
		} else {
			m.lbDraft = draft.NewLogbookDraft(msg.Logbook)
		}
		m.lbForm = NewLogbookForm(m.lbDraft, m.width)
	}
	return m, nil
}

// maybeBuildEntryForm builds the form once both fetches have landed: the
// logbook always, plus the original entry for followup and edit variants.
func (m *Model) maybeBuildEntryForm() {
	if m.entryForm != nil || m.entryDraft.Logbook == nil {
		return
	}
	if m.variant != submit.VariantNew && m.entryDraft.Original == nil {
		return
	}

	m.entryForm = NewEntryForm(m.variant != submit.VariantFollowup, m.width)
	m.entryForm.BuildFields(m.entryDraft.Logbook, m.entryDraft)

	if m.variant == submit.VariantFollowup {
		m.showParent = true
		m.parentView = viewport.New(m.width-2, min(m.height/3, 12))
		if m.renderer == nil {
			m.renderer = render.New(m.width - 4)
		}
		m.parentView.SetContent(m.renderer.Entry(m.entryDraft.Logbook, m.entryDraft.Original))
	}
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.confirmQuit {
		switch {
		case key.Matches(msg, confirmKeys.Yes):
			return m, tea.Quit
		case key.Matches(msg, confirmKeys.No), key.Matches(msg, confirmKeys.Cancel):
			m.confirmQuit = false
		}
		return m, nil
	}

	// The schema row editor owns Esc, Tab and Enter while open.
	if m.kind == kindLogbook && m.lbForm != nil && m.lbForm.Editing() {
		var cmd tea.Cmd
		m.lbDraft, cmd = m.lbForm.Update(msg, m.lbDraft)
		return m, cmd
	}

	switch {
	case key.Matches(msg, editorKeys.Quit), msg.Type == tea.KeyCtrlC:
		if m.guardMessage() != "" {
			m.confirmQuit = true
			return m, nil
		}
		return m, tea.Quit

	case key.Matches(msg, editorKeys.Submit):
		return m.submit()

	case key.Matches(msg, editorKeys.Next):
		m.focusMove(1)
		return m, nil

	case key.Matches(msg, editorKeys.Prev):
		m.focusMove(-1)
		return m, nil
	}

	return m.forwardKey(msg)
}

func (m *Model) guardMessage() string {
	if m.kind == kindEntry {
		return m.entryDraft.GuardMessage()
	}
	return m.lbDraft.GuardMessage()
}

func (m *Model) focusMove(delta int) {
	switch m.kind {
	case kindEntry:
		if m.entryForm == nil {
			return
		}
		m.syncEntryDraft()
		if delta > 0 {
			m.entryDraft = m.entryForm.FocusNext(m.entryDraft)
		} else {
			m.entryDraft = m.entryForm.FocusPrev(m.entryDraft)
		}
	case kindLogbook:
		if m.lbForm == nil {
			return
		}
		m.syncLogbookDraft()
		if delta > 0 {
			m.lbForm.FocusNext()
		} else {
			m.lbForm.FocusPrev()
		}
	}
}

func (m Model) forwardKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.kind {
	case kindEntry:
		if m.entryForm == nil {
			return m, nil
		}

		if m.entryForm.AuthorsFocused() {
			authors := m.entryForm.Authors()
			switch {
			case key.Matches(msg, authorKeys.Accept):
				if name, ok := authors.Accept(); ok {
					m.entryDraft = m.entryDraft.AddAuthor(name)
				}
				return m, nil
			case key.Matches(msg, authorKeys.Up):
				authors.MoveCursor(-1)
				return m, nil
			case key.Matches(msg, authorKeys.Down):
				authors.MoveCursor(1)
				return m, nil
			case key.Matches(msg, authorKeys.Remove) && authors.Empty():
				if n := len(m.entryDraft.Authors); n > 0 {
					m.entryDraft = m.entryDraft.RemoveAuthor(m.entryDraft.Authors[n-1])
				}
				return m, nil
			}
		}

		cmd := m.entryForm.Update(msg)
		m.syncEntryDraft()
		return m, cmd

	case kindLogbook:
		if m.lbForm == nil {
			return m, nil
		}
		var cmd tea.Cmd
		m.lbDraft, cmd = m.lbForm.Update(msg, m.lbDraft)
		m.syncLogbookDraft()
		return m, cmd
	}
	return m, nil
}

// syncEntryDraft pulls the continuously-edited fields into the draft so
// dirty-tracking and the quit guard stay accurate.
func (m *Model) syncEntryDraft() {
	if m.entryForm == nil {
		return
	}
	if m.variant != submit.VariantFollowup {
		m.entryDraft = m.entryDraft.SetTitle(m.entryForm.Title())
	}
	m.entryDraft = m.entryDraft.SetContent(m.entryForm.Content())
}

func (m *Model) syncLogbookDraft() {
	if m.lbForm == nil {
		return
	}
	m.lbDraft = m.lbDraft.
		SetName(m.lbForm.Name()).
		SetDescription(m.lbForm.Description()).
		SetTemplate(m.lbForm.Template())
}

func (m Model) submit() (tea.Model, tea.Cmd) {
	switch m.kind {
	case kindEntry:
		if m.entryForm == nil || m.entryDraft.Phase != draft.PhaseReady {
			return m, nil
		}
		m.syncEntryDraft()
		m.entryDraft = m.entryForm.CommitAll(m.entryDraft)

		if m.variant != submit.VariantFollowup && strings.TrimSpace(m.entryDraft.Title) == "" {
			m.errText = "A title is required."
			return m, clearErrorAfter(5 * time.Second)
		}

		m.entryDraft = m.entryDraft.BeginSubmit()
		return m, submitEntryCmd(m.workflow, m.variant, m.entryDraft)

	case kindLogbook:
		if m.lbForm == nil || m.lbDraft.Phase != draft.PhaseReady {
			return m, nil
		}
		m.syncLogbookDraft()

		if strings.TrimSpace(m.lbDraft.Name) == "" {
			m.errText = "A name is required."
			return m, clearErrorAfter(5 * time.Second)
		}

		m.lbDraft = m.lbDraft.BeginSubmit()
		return m, saveLogbookCmd(m.client, m.bus, m.lbDraft)
	}
	return m, nil
}

func (m Model) View() string {
	if m.confirmQuit {
		content := overlayTitleStyle.Render("Unsaved changes") + "\n" +
			m.guardMessage() + "\n\n" +
			keyStyle.Render("y") + hintStyle.Render(" discard and quit   ") +
			keyStyle.Render("n") + hintStyle.Render(" keep editing")
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center,
			overlayStyle.Render(content))
	}

	var b strings.Builder
	b.WriteString(headerStyle.Render(m.title()))
	b.WriteString("\n\n")

	switch m.kind {
	case kindEntry:
		if m.entryForm == nil {
			b.WriteString(fieldDimStyle.Render("Loading..."))
		} else {
			if m.showParent {
				b.WriteString(m.parentView.View())
				b.WriteString("\n" + fieldDimStyle.Render(strings.Repeat("-", max(m.width-2, 1))) + "\n\n")
			}
			b.WriteString(m.entryForm.View(m.entryDraft))
		}
	case kindLogbook:
		if m.lbForm == nil {
			b.WriteString(fieldDimStyle.Render("Loading..."))
		} else {
			b.WriteString(m.lbForm.View(m.lbDraft))
		}
	}

	b.WriteString("\n")
	if m.errText != "" {
		style := errorBannerStyle
		if m.conflict {
			style = warnBannerStyle
		}
		b.WriteString(style.Render(m.errText))
		b.WriteString("\n")
	}
	b.WriteString(m.statusBar())

	return b.String()
}

func (m Model) title() string {
	switch m.kind {
	case kindEntry:
		name := ""
		if m.entryDraft.Logbook != nil {
			name = m.entryDraft.Logbook.Name
		}
		switch m.variant {
		case submit.VariantNew:
			return "New entry - " + name
		case submit.VariantFollowup:
			return "Followup - " + name
		case submit.VariantEdit:
			return "Edit entry - " + name
		}
	case kindLogbook:
		if m.editingLb {
			return "Edit logbook"
		}
		return "New logbook"
	}
	return ""
}

func (m Model) statusBar() string {
	submitting := (m.kind == kindEntry && m.entryDraft.Phase == draft.PhaseSubmitting) ||
		(m.kind == kindLogbook && m.lbDraft.Phase == draft.PhaseSubmitting)
	if submitting {
		return statusBarStyle.Render(" Submitting... ")
	}

	hints := []string{
		keyStyle.Render("Ctrl+s") + hintStyle.Render(" submit"),
		keyStyle.Render("Tab") + hintStyle.Render(" next field"),
		keyStyle.Render("Esc") + hintStyle.Render(" quit"),
	}
	bar := " " + strings.Join(hints, "  ") + " "
	if m.width > 0 {
		bar = ansi.Truncate(bar, m.width, "…")
	}
	return statusBarStyle.Render(bar)
}
