package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/shpixel/gallery/internal/service"
	"github.com/shpixel/gallery/internal/session"
	"github.com/shpixel/gallery/internal/store"
	"github.com/shpixel/gallery/models"
)

type screen int

const (
	screenEmail screen = iota
	screenOTP
	screenProfile
	screenGallery
	screenDetail
	screenAlbums
	screenUpload
	screenSearch
	screenStats
)

type appModel struct {
	ctx      context.Context
	services *service.Services
	storages *store.Storages
	session  *session.Session

	screen  screen
	email   emailModel
	otp     otpModel
	profile profileModel
	gallery galleryModel
	upload  uploadModel
	search  searchModel

	loading    bool
	status     string
	errMsg     string
	logout     bool
	quitByUser bool
	done       bool
}

func newAppModel(ctx context.Context, services *service.Services, storages *store.Storages, sess *session.Session) appModel {
	return appModel{
		ctx:      ctx,
		services: services,
		storages: storages,
		session:  sess,
		email:    newEmailModel(),
		otp:      newOTPModel(),
		profile:  newProfileModel(),
		gallery:  newGalleryModel(),
		upload:   newUploadModel(),
		search:   newSearchModel(),
	}
}

func (m appModel) Init() tea.Cmd {
	switch m.screen {
	case screenGallery:
		return tea.Batch(m.cmdRefresh(), m.gallery.init())
	case screenProfile:
		return m.profile.init()
	default:
		return m.email.init()
	}
}

// guardScreen re-evaluates the access predicates before every protected
// navigation. A stale session bounces back to the email screen; a non-admin
// asking for the stats view lands on the gallery.
func (m *appModel) guardScreen(target screen) screen {
	snap := m.session.Current()

	switch target {
	case screenEmail, screenOTP, screenProfile:
		return target
	case screenStats:
		if !session.CanAccessAdmin(snap) {
			if !session.CanAccess(snap) {
				return screenEmail
			}
			return screenGallery
		}
		return target
	default:
		if !session.CanAccess(snap) {
			return screenEmail
		}
		return target
	}
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" || (key.Matches(msg, keys.quit) && !m.typing()) {
			m.quitByUser = true
			return m, tea.Quit
		}

	case otpRequestedMsg:
		m.loading = false
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
			return m, nil
		}
		m.errMsg = ""
		m.status = msg.message
		m.screen = screenOTP
		return m, m.otp.init()

	case verifiedMsg:
		m.loading = false
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
			return m, nil
		}
		m.errMsg = ""
		if msg.step == service.StepProfileSetup {
			m.screen = screenProfile
			return m, m.profile.init()
		}
		m.done = true
		return m, tea.Quit

	case profileSavedMsg:
		m.loading = false
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
			return m, nil
		}
		m.done = true
		return m, tea.Quit

	case refreshDoneMsg:
		m.loading = false
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
		} else {
			m.errMsg = ""
		}
		m.gallery.reload(m.storages)
		m.screen = m.guardScreen(m.screen)
		return m, nil

	case actionDoneMsg:
		m.loading = false
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
		} else {
			m.errMsg = ""
		}
		m.gallery.reload(m.storages)
		m.screen = m.guardScreen(m.screen)
		return m, nil

	case uploadedMsg:
		m.loading = false
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
			return m, nil
		}
		m.status = "uploaded " + msg.photo.Title
		m.errMsg = ""
		m.gallery.reload(m.storages)
		m.screen = m.guardScreen(screenGallery)
		return m, nil

	case copiedMsg:
		m.status = "copied to clipboard"
		return m, nil

	case loggedOutMsg:
		m.logout = true
		return m, tea.Quit
	}

	switch m.screen {
	case screenEmail:
		return m.updateEmail(msg)
	case screenOTP:
		return m.updateOTP(msg)
	case screenProfile:
		return m.updateProfile(msg)
	case screenUpload:
		return m.updateUpload(msg)
	case screenSearch:
		return m.updateSearch(msg)
	default:
		return m.updateGallery(msg)
	}
}

func (m appModel) View() string {
	var body string
	switch m.screen {
	case screenEmail:
		body = m.email.view(m.loading)
	case screenOTP:
		body = m.otp.view(m.loading)
	case screenProfile:
		body = m.profile.view(m.loading)
	case screenUpload:
		body = m.upload.view(m.loading)
	case screenSearch:
		body = m.search.view()
	case screenDetail:
		body = m.gallery.detailView(m.storages)
	case screenAlbums:
		body = m.gallery.albumsView(m.storages)
	case screenStats:
		body = m.statsView()
	default:
		body = m.gallery.listView(m.storages)
	}

	if m.errMsg != "" {
		body += "\n" + errorStyle.Render("error: "+m.errMsg)
	} else if m.status != "" {
		body += "\n" + helpStyle.Render(m.status)
	}
	return appStyle.Render(body)
}

// typing reports whether the focused widget is a text input, so plain letters
// are not mistaken for hotkeys.
func (m appModel) typing() bool {
	switch m.screen {
	case screenEmail, screenOTP, screenProfile, screenUpload, screenSearch:
		return true
	default:
		return false
	}
}

func (m appModel) statsView() string {
	photos := m.storages.Catalog.Photos()
	favorites := m.storages.Catalog.FavoritePhotos()
	albums := m.storages.Catalog.Albums()
	tags := m.storages.Catalog.Tags()

	s := titleStyle.Render("Gallery stats (admin)") + "\n\n"
	s += renderStat("photos", len(photos))
	s += renderStat("favorites", len(favorites))
	s += renderStat("albums", len(albums))
	s += renderStat("distinct tags", len(tags))
	s += "\n" + helpStyle.Render("esc back · q quit")
	return s
}

// ── async commands ───────────────────────────────────────────────────────────

func (m appModel) cmdRequestOTP(email string) tea.Cmd {
	return func() tea.Msg {
		message, err := m.services.Auth.RequestOTP(m.ctx, email)
		return otpRequestedMsg{message: message, err: err}
	}
}

func (m appModel) cmdVerifyOTP(email, code string) tea.Cmd {
	return func() tea.Msg {
		step, err := m.services.Auth.VerifyOTP(m.ctx, email, code)
		return verifiedMsg{step: step, err: err}
	}
}

func (m appModel) cmdSetupProfile(setup models.ProfileSetup) tea.Cmd {
	return func() tea.Msg {
		return profileSavedMsg{err: m.services.Auth.SetupProfile(m.ctx, setup)}
	}
}

func (m appModel) cmdRefresh() tea.Cmd {
	return func() tea.Msg {
		return refreshDoneMsg{err: m.services.Gallery.Refresh(m.ctx)}
	}
}

func (m appModel) cmdToggleFavorite(id string) tea.Cmd {
	return func() tea.Msg {
		return actionDoneMsg{err: m.services.Gallery.ToggleFavorite(m.ctx, id)}
	}
}

func (m appModel) cmdDeletePhoto(id string) tea.Cmd {
	return func() tea.Msg {
		return actionDoneMsg{err: m.services.Gallery.DeletePhoto(m.ctx, id)}
	}
}

func (m appModel) cmdUpload(input service.UploadInput) tea.Cmd {
	return func() tea.Msg {
		photo, err := m.services.Gallery.Upload(m.ctx, input)
		return uploadedMsg{photo: photo, err: err}
	}
}

func (m appModel) cmdLogout() tea.Cmd {
	return func() tea.Msg {
		return loggedOutMsg{err: m.services.Auth.Logout(m.ctx)}
	}
}
