// Package tui implements the interactive entry and logbook editors.
package tui

import (
	"sync"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/lablog-io/lablog/internal/api"
	"github.com/lablog-io/lablog/internal/dropdir"
	"github.com/lablog-io/lablog/internal/eventbus"
	"github.com/lablog-io/lablog/internal/logging"
	"github.com/lablog-io/lablog/internal/models"
	"github.com/lablog-io/lablog/internal/submit"
)

// programRef is a shared reference to the tea.Program for goroutine sends.
// It's set after tea.NewProgram but before p.Run().
type programRef struct {
	mu sync.Mutex
	p  *tea.Program
}

func (r *programRef) Set(p *tea.Program) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.p = p
}

func (r *programRef) Send(msg tea.Msg) {
	r.mu.Lock()
	p := r.p
	r.mu.Unlock()
	if p != nil {
		p.Send(msg)
	}
}

// Clear nils out the program reference, preventing post-exit sends.
func (r *programRef) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.p = nil
}

// RunEntryEditor launches one entry editor variant and blocks until it
// exits. The returned result is nil when the user quit without
// submitting. dropDir may be empty to disable attachment staging via the
// drop directory.
func RunEntryEditor(client *api.Client, bus *eventbus.Bus, dropDir string, v submit.Variant, logbookID, entryID int64, defaultAuthors []string) (*submit.Result, error) {
	var drops *dropdir.Watcher
	if dropDir != "" {
		w, err := dropdir.New(dropDir)
		if err != nil {
			logging.Warn("drop directory unavailable", "dir", dropDir, "error", err)
		} else {
			drops = w
			defer w.Stop()
		}
	}

	ref := &programRef{}
	model := NewEntryModel(client, bus, drops, ref, v, logbookID, entryID, defaultAuthors)

	p := tea.NewProgram(model, tea.WithAltScreen())
	ref.Set(p)
	defer ref.Clear()

	final, err := p.Run()
	if err != nil {
		return nil, err
	}
	if m, ok := final.(Model); ok {
		return m.Result, nil
	}
	return nil, nil
}

// RunLogbookEditor launches the logbook editor and blocks until it exits.
// The returned logbook is nil when the user quit without saving.
func RunLogbookEditor(client *api.Client, bus *eventbus.Bus, edit bool, logbookID int64, parentID *int64) (*models.Logbook, error) {
	ref := &programRef{}
	model := NewLogbookModel(client, bus, ref, edit, logbookID, parentID)

	p := tea.NewProgram(model, tea.WithAltScreen())
	ref.Set(p)
	defer ref.Clear()

	final, err := p.Run()
	if err != nil {
		return nil, err
	}
	if m, ok := final.(Model); ok {
		return m.SavedLogbook, nil
	}
	return nil, nil
}
