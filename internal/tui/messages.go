package tui

import (
	"github.com/lablog-io/lablog/internal/dropdir"
	"github.com/lablog-io/lablog/internal/models"
	"github.com/lablog-io/lablog/internal/submit"
)

// LogbookLoadedMsg carries logbook data fetched for an editor.
type LogbookLoadedMsg struct {
	Logbook *models.Logbook
}

// EntryLoadedMsg carries the entry being followed up or edited.
type EntryLoadedMsg struct {
	Entry *models.Entry
}

// UsersFoundMsg carries author suggestions for a search request. Seq ties
// the response to the request that issued it so stale responses can be
// dropped.
type UsersFoundMsg struct {
	Seq   int
	Users []models.UserAccount
}

// authorSearchTickMsg fires when the author input has been idle long
// enough to issue a search.
type authorSearchTickMsg struct {
	Seq int
}

// SubmittedMsg signals the entry was accepted by the server.
type SubmittedMsg struct {
	Result *submit.Result
}

// SubmitFailedMsg signals the submission was rejected. Conflict marks the
// entry having been changed by someone else since it was loaded.
type SubmitFailedMsg struct {
	Err      error
	Conflict bool
}

// LogbookSavedMsg signals a logbook was created or updated.
type LogbookSavedMsg struct {
	Logbook *models.Logbook
}

// LogbookSaveFailedMsg signals the logbook submission was rejected.
type LogbookSaveFailedMsg struct {
	Err error
}

// FileDroppedMsg carries a file that settled in the drop directory.
type FileDroppedMsg struct {
	Drop dropdir.FileDrop
}

// ErrorMsg carries an error to display.
type ErrorMsg struct {
	Err error
}

// ClearErrorMsg clears the error display.
type ClearErrorMsg struct{}
