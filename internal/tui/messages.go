package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/grustnolabs/go-grustnogram/models"
)

// NavigateTo switches the router to another page. A non-nil Payload is
// re-dispatched to the new page right after the switch, so pages can hand
// state to each other without sharing fields.
type NavigateTo struct {
	Page    string
	Payload tea.Msg
}

// LoginResult reports the outcome of either authentication flow.
// Registration issues a token too, so both the login and the code pages
// end with this message. The router quits on a nil Err; errors fall
// through to the page that started the attempt.
type LoginResult struct {
	Err     error
	Session models.Session
}

// ActionRequest configures the action form for one menu entry.
type ActionRequest struct {
	Action actionKind
}

// ActionResult reports a finished API call dispatched from a form.
type ActionResult struct {
	Err    error
	Notice string
}

// ActionDoneNotice carries a success line back to the menu status bar.
type ActionDoneNotice struct {
	Text string
}

// BrowseRequest opens the comments browser on the given post.
type BrowseRequest struct {
	PostID int64
}

type codeRequestedMsg struct {
	flow *registerFlow
}

type commentsLoadedMsg struct {
	comments []models.Comment
	offset   int
	err      error
}

type commentMutatedMsg struct {
	err    error
	notice string
	reload bool
}

type copiedMsg struct{}

type clearStatusMsg struct{}

type userQuitMsg struct{}

type logoutMsg struct{}
