package tui

import (
	"context"
	"errors"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/lablog-io/lablog/internal/api"
	"github.com/lablog-io/lablog/internal/draft"
	"github.com/lablog-io/lablog/internal/dropdir"
	"github.com/lablog-io/lablog/internal/eventbus"
	"github.com/lablog-io/lablog/internal/submit"
)

// authorSearchDebounce is how long the author input must be idle before a
// search request is issued.
const authorSearchDebounce = 500 * time.Millisecond

func loadLogbookCmd(client *api.Client, logbookID int64) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		lb, err := client.FetchLogbook(ctx, logbookID)
		if err != nil {
			return ErrorMsg{Err: fmt.Errorf("failed to load logbook: %w", err)}
		}
		return LogbookLoadedMsg{Logbook: lb}
	}
}

func loadEntryCmd(client *api.Client, logbookID, entryID int64) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		entry, err := client.FetchEntry(ctx, logbookID, entryID)
		if err != nil {
			return ErrorMsg{Err: fmt.Errorf("failed to load entry: %w", err)}
		}
		return EntryLoadedMsg{Entry: entry}
	}
}

func searchUsersCmd(client *api.Client, seq int, query string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		users, err := client.SearchUsers(ctx, query)
		if err != nil {
			// Suggestions are best-effort; a failed search just yields none.
			return UsersFoundMsg{Seq: seq}
		}
		return UsersFoundMsg{Seq: seq, Users: users}
	}
}

func submitEntryCmd(w *submit.Workflow, v submit.Variant, d draft.EntryDraft) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
		defer cancel()

		res, err := w.Submit(ctx, v, d)
		if err != nil {
			return SubmitFailedMsg{Err: err, Conflict: errors.Is(err, api.ErrConflict)}
		}
		return SubmittedMsg{Result: res}
	}
}

func saveLogbookCmd(client *api.Client, bus *eventbus.Bus, d draft.LogbookDraft) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		lb, err := submit.SaveLogbook(ctx, client, bus, d)
		if err != nil {
			return LogbookSaveFailedMsg{Err: err}
		}
		return LogbookSavedMsg{Logbook: lb}
	}
}

// watchDropsCmd forwards settled files from the drop directory watcher into
// the program. The goroutine ends when the watcher is stopped.
func watchDropsCmd(w *dropdir.Watcher, program *programRef) tea.Cmd {
	return func() tea.Msg {
		if err := w.Start(); err != nil {
			return ErrorMsg{Err: fmt.Errorf("failed to watch drop directory: %w", err)}
		}

		go func() {
			for drop := range w.Drops() {
				program.Send(FileDroppedMsg{Drop: drop})
			}
		}()

		return nil
	}
}

func authorSearchTick(seq int) tea.Cmd {
	return tea.Tick(authorSearchDebounce, func(_ time.Time) tea.Msg {
		return authorSearchTickMsg{Seq: seq}
	})
}

func clearErrorAfter(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(_ time.Time) tea.Msg {
		return ClearErrorMsg{}
	})
}
