package tui

import (
	"github.com/shpixel/gallery/internal/service"
	"github.com/shpixel/gallery/models"
)

type otpRequestedMsg struct {
	message string
	err     error
}

type verifiedMsg struct {
	step service.NextStep
	err  error
}

type profileSavedMsg struct {
	err error
}

type refreshDoneMsg struct {
	err error
}

type actionDoneMsg struct {
	err error
}

type uploadedMsg struct {
	photo models.Photo
	err   error
}

type copiedMsg struct{}

type loggedOutMsg struct {
	err error
}
