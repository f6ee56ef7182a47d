package tui

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/shpixel/gallery/internal/service"
	"github.com/shpixel/gallery/internal/session"
	"github.com/shpixel/gallery/internal/store"
)

var ErrUserQuit = errors.New("user quit")

// TUI is the terminal front end of the gallery client.
type TUI struct {
	services *service.Services
	storages *store.Storages
	session  *session.Session
}

func New(services *service.Services, storages *store.Storages, sess *session.Session) *TUI {
	return &TUI{services: services, storages: storages, session: sess}
}

// LoginFlow runs the email → code → profile handshake until the session is
// ready for the gallery, the user quits, or the program fails.
func (t *TUI) LoginFlow(ctx context.Context) error {
	root := newAppModel(ctx, t.services, t.storages, t.session)
	root.screen = screenEmail

	finalModel, err := tea.NewProgram(root, tea.WithAltScreen()).Run()
	if err != nil {
		return err
	}

	result, ok := finalModel.(appModel)
	if !ok {
		return tea.ErrProgramKilled
	}
	if result.quitByUser {
		return ErrUserQuit
	}
	return nil
}

// ProfileFlow runs only the profile setup form, for sessions restored with an
// incomplete profile.
func (t *TUI) ProfileFlow(ctx context.Context) error {
	root := newAppModel(ctx, t.services, t.storages, t.session)
	root.screen = screenProfile

	finalModel, err := tea.NewProgram(root, tea.WithAltScreen()).Run()
	if err != nil {
		return err
	}

	result, ok := finalModel.(appModel)
	if !ok {
		return tea.ErrProgramKilled
	}
	if result.quitByUser {
		return ErrUserQuit
	}
	return nil
}

// MainLoop runs the gallery screens. Returns true when the user logged out
// (the caller restarts the login flow) and false on a plain quit.
func (t *TUI) MainLoop(ctx context.Context) (logout bool, err error) {
	root := newAppModel(ctx, t.services, t.storages, t.session)
	root.screen = screenGallery
	root.loading = true
	root.gallery.reload(t.storages)

	finalModel, runErr := tea.NewProgram(root, tea.WithAltScreen()).Run()
	if runErr != nil {
		return false, runErr
	}

	result, ok := finalModel.(appModel)
	if !ok {
		return false, tea.ErrProgramKilled
	}
	return result.logout, nil
}
