package tui

import (
	"github.com/MKhiriev/go-flix/models"
)

// Page names known to RootModel.
const (
	pageMenu     = "menu"
	pageLogin    = "login"
	pageRegister = "register"
	pageHome     = "home"
)

// NavigateTo switches the active page. A non-nil Payload is delivered to the
// new page as its first message instead of calling its Init.
type NavigateTo struct {
	Page    string
	Payload any
}

// LoginResult is produced by the login command.
type LoginResult struct {
	User models.PublicUser
	Err  error
}

// RegisterResult is produced by the register command.
type RegisterResult struct {
	User models.PublicUser
	Err  error
}

// RegisterSuccessNotice is delivered to the login page after a successful
// registration.
type RegisterSuccessNotice struct {
	Username string
}

// SignedOutNotice is delivered to the menu when the home page redirects an
// anonymous or expired session.
type SignedOutNotice struct {
	Reason string
}

// leaver is implemented by pages that own in-flight work which must be
// cancelled when the user navigates away.
type leaver interface {
	leave()
}

// guardCheckedMsg carries the Route Guard verdict for check number seq.
type guardCheckedMsg struct {
	seq    int
	claims models.Claims
	err    error
}

type homeLoadedMsg struct {
	seq  int
	page models.HomePage
	err  error
}

type detailsLoadedMsg struct {
	seq     int
	details models.MovieDetails
	err     error
}

type loggedOutMsg struct {
	err error
}

type copiedMsg struct {
	text string
	err  error
}

type clearStatusMsg struct{}
