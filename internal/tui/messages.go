package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/paveldk/go-blog-api/models"
)

// NavigateTo switches the active page of [RootModel]. Payload, when non-nil,
// is delivered to the new page as its first message.
type NavigateTo struct {
	Page    string
	Payload tea.Msg
}

// LoginResult finishes the login flow. Guest is set when the user chose to
// browse without an account.
type LoginResult struct {
	Err   error
	User  models.UserInfo
	Guest bool
}

// RegisterSuccessNotice is shown on the menu after a successful registration.
type RegisterSuccessNotice struct {
	Username string
}

type feedLoadedMsg struct {
	posts []models.Post
	err   error
}

type postOpenedMsg struct {
	post     models.Post
	comments []models.Comment
	err      error
}

type postSavedMsg struct {
	post models.Post
	err  error
}

type publishToggledMsg struct {
	post models.Post
	err  error
}

type postDeletedMsg struct {
	err error
}

type commentSavedMsg struct {
	err error
}

type commentDeletedMsg struct {
	err error
}

type copiedMsg struct {
	err error
}
