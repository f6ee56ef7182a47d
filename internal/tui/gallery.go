package tui

import (
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/shpixel/gallery/internal/store"
	"github.com/shpixel/gallery/models"
)

type galleryFilter int

const (
	filterAll galleryFilter = iota
	filterFavorites
	filterAlbum
	filterSearch
)

type galleryModel struct {
	photos []models.Photo
	cursor int

	filter      galleryFilter
	albumID     string
	searchQuery string

	albums      []models.Album
	albumCursor int

	// pendingPhotoID is set when the albums screen was opened from a photo
	// detail to assign that photo to an album.
	pendingPhotoID string

	naming    bool
	nameInput textinput.Model
}

func newGalleryModel() galleryModel {
	ni := textinput.New()
	ni.Placeholder = "Album name"
	ni.CharLimit = 120
	ni.Width = 40
	return galleryModel{nameInput: ni}
}

func (g galleryModel) init() tea.Cmd {
	return nil
}

// reload recomputes the visible photo slice from the catalog using the
// current filter and sort preference.
func (g *galleryModel) reload(storages *store.Storages) {
	catalog := storages.Catalog

	switch g.filter {
	case filterFavorites:
		g.photos = catalog.FavoritePhotos()
	case filterAlbum:
		g.photos = catalog.PhotosByAlbum(g.albumID)
	case filterSearch:
		g.photos = catalog.SearchPhotos(g.searchQuery)
	default:
		g.photos = catalog.Photos()
	}
	store.SortPhotos(g.photos, storages.Prefs.Sort())

	g.albums = catalog.Albums()
	if g.cursor >= len(g.photos) {
		g.cursor = len(g.photos) - 1
	}
	if g.cursor < 0 {
		g.cursor = 0
	}
	if g.albumCursor >= len(g.albums) {
		g.albumCursor = len(g.albums) - 1
	}
	if g.albumCursor < 0 {
		g.albumCursor = 0
	}
}

func (g galleryModel) selected() (models.Photo, bool) {
	if len(g.photos) == 0 {
		return models.Photo{}, false
	}
	return g.photos[g.cursor], true
}

func (g galleryModel) selectedAlbum() (models.Album, bool) {
	if len(g.albums) == 0 {
		return models.Album{}, false
	}
	return g.albums[g.albumCursor], true
}

func (g galleryModel) filterLabel() string {
	switch g.filter {
	case filterFavorites:
		return "favorites"
	case filterAlbum:
		return "album"
	case filterSearch:
		return fmt.Sprintf("search %q", g.searchQuery)
	default:
		return "all photos"
	}
}

func (g galleryModel) listView(storages *store.Storages) string {
	s := titleStyle.Render("SH Pixel gallery") +
		helpStyle.Render(fmt.Sprintf("  %s · sort %s · %d photos",
			g.filterLabel(), storages.Prefs.Sort(), len(g.photos))) + "\n\n"

	if len(g.photos) == 0 {
		s += helpStyle.Render("no photos here yet") + "\n"
	}
	for i, p := range g.photos {
		line := photoLine(p)
		if i == g.cursor {
			line = selectedStyle.Render(line)
		}
		s += line + "\n"
	}

	s += "\n" + helpStyle.Render(
		"enter open · f favorite · d delete · n upload · a albums · / search · s sort · t theme · r refresh · S stats · L logout · q quit")
	return s
}

func (g galleryModel) detailView(storages *store.Storages) string {
	p, ok := g.selected()
	if !ok {
		return helpStyle.Render("nothing selected")
	}

	s := titleStyle.Render(p.Title) + "\n\n"
	s += renderField("id", p.ID)
	s += renderField("src", p.Src)
	s += renderField("alt", p.Alt)
	if p.Description != nil {
		s += renderField("description", *p.Description)
	}
	s += renderField("uploaded", p.DateUploaded.Format("2006-01-02 15:04"))
	if p.DateTaken != nil {
		s += renderField("taken", p.DateTaken.Format("2006-01-02 15:04"))
	}
	if len(p.Tags) > 0 {
		s += renderField("tags", strings.Join(p.Tags, ", "))
	}
	if p.Favorite {
		s += favStyle.Render("★ favorite") + "\n"
	}
	if p.Metadata != nil {
		s += "\n" + metadataView(*p.Metadata)
	}

	s += "\n" + helpStyle.Render("c copy url · f favorite · d delete · a add to album · esc back")
	return s
}

func metadataView(md models.PhotoMetadata) string {
	var s string
	if md.Camera != nil {
		s += renderField("camera", *md.Camera)
	}
	if md.Lens != nil {
		s += renderField("lens", *md.Lens)
	}
	if md.FocalLength != nil {
		s += renderField("focal length", *md.FocalLength)
	}
	if md.Aperture != nil {
		s += renderField("aperture", *md.Aperture)
	}
	if md.ShutterSpeed != nil {
		s += renderField("shutter", *md.ShutterSpeed)
	}
	if md.ISO != nil {
		s += renderField("iso", fmt.Sprintf("%d", *md.ISO))
	}
	if md.Dimensions != nil {
		s += renderField("dimensions", fmt.Sprintf("%d×%d", md.Dimensions.Width, md.Dimensions.Height))
	}
	if md.Location != nil {
		if md.Location.Name != nil {
			s += renderField("location", *md.Location.Name)
		} else if md.Location.Latitude != nil && md.Location.Longitude != nil {
			s += renderField("location", fmt.Sprintf("%.5f, %.5f", *md.Location.Latitude, *md.Location.Longitude))
		}
	}
	return s
}

func (g galleryModel) albumsView(storages *store.Storages) string {
	title := "Albums"
	if g.pendingPhotoID != "" {
		title = "Pick an album for the photo"
	}
	s := titleStyle.Render(title) + "\n\n"

	if g.naming {
		s += "New album name:\n" + g.nameInput.View() + "\n\n"
		s += helpStyle.Render("enter create · esc cancel")
		return s
	}

	if len(g.albums) == 0 {
		s += helpStyle.Render("no albums yet") + "\n"
	}
	for i, a := range g.albums {
		line := fmt.Sprintf("%s (%d)", a.Name, len(a.PhotoIDs))
		if g.pendingPhotoID != "" && a.Contains(g.pendingPhotoID) {
			line += " ✓"
		}
		if i == g.albumCursor {
			line = selectedStyle.Render(line)
		}
		s += line + "\n"
	}

	if g.pendingPhotoID != "" {
		s += "\n" + helpStyle.Render("enter toggle membership · n new album · esc back")
	} else {
		s += "\n" + helpStyle.Render("enter open · n new album · d delete album · esc back")
	}
	return s
}

func (m appModel) updateGallery(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch m.screen {
	case screenDetail:
		return m.updateDetail(keyMsg)
	case screenAlbums:
		return m.updateAlbums(keyMsg)
	case screenStats:
		if key.Matches(keyMsg, keys.esc) {
			m.screen = screenGallery
		}
		return m, nil
	}

	g := &m.gallery
	switch {
	case key.Matches(keyMsg, keys.up):
		if g.cursor > 0 {
			g.cursor--
		}
	case key.Matches(keyMsg, keys.down):
		if g.cursor < len(g.photos)-1 {
			g.cursor++
		}
	case key.Matches(keyMsg, keys.enter):
		if _, ok := g.selected(); ok {
			m.screen = m.guardScreen(screenDetail)
		}
	case key.Matches(keyMsg, keys.esc):
		if g.filter != filterAll {
			g.filter = filterAll
			g.albumID = ""
			g.searchQuery = ""
			g.reload(m.storages)
		}
	case key.Matches(keyMsg, keys.favorite):
		if p, ok := g.selected(); ok {
			m.loading = true
			return m, m.cmdToggleFavorite(p.ID)
		}
	case key.Matches(keyMsg, keys.delete):
		if p, ok := g.selected(); ok {
			m.loading = true
			return m, m.cmdDeletePhoto(p.ID)
		}
	case key.Matches(keyMsg, keys.upload):
		m.screen = m.guardScreen(screenUpload)
		m.upload = newUploadModel()
		return m, m.upload.init()
	case key.Matches(keyMsg, keys.refresh):
		m.loading = true
		return m, m.cmdRefresh()
	case key.Matches(keyMsg, keys.albums):
		g.pendingPhotoID = ""
		g.reload(m.storages)
		m.screen = m.guardScreen(screenAlbums)
	case key.Matches(keyMsg, keys.search):
		m.screen = m.guardScreen(screenSearch)
		m.search = newSearchModel()
		return m, m.search.init()
	case key.Matches(keyMsg, keys.sortKey):
		m.storages.Prefs.SetSort(nextSortOption(m.storages.Prefs.Sort()))
		g.reload(m.storages)
		return m, m.cmdSavePref("sort", string(m.storages.Prefs.Sort()))
	case key.Matches(keyMsg, keys.theme):
		next := models.ThemeModeLight
		if m.storages.Prefs.Theme() == models.ThemeModeLight {
			next = models.ThemeModeDark
		}
		m.storages.Prefs.SetTheme(next)
		m.status = "theme: " + string(next)
		return m, m.cmdSavePref("theme", string(next))
	case key.Matches(keyMsg, keys.stats):
		m.screen = m.guardScreen(screenStats)
	case key.Matches(keyMsg, keys.logout):
		m.loading = true
		return m, m.cmdLogout()
	case keyMsg.String() == "F":
		g.filter = filterFavorites
		g.cursor = 0
		g.reload(m.storages)
	}
	return m, nil
}

func (m appModel) updateDetail(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	g := &m.gallery
	switch {
	case key.Matches(keyMsg, keys.esc):
		m.screen = screenGallery
	case key.Matches(keyMsg, keys.copy):
		if p, ok := g.selected(); ok {
			return m, cmdCopy(p.Src)
		}
	case key.Matches(keyMsg, keys.favorite):
		if p, ok := g.selected(); ok {
			m.loading = true
			return m, m.cmdToggleFavorite(p.ID)
		}
	case key.Matches(keyMsg, keys.delete):
		if p, ok := g.selected(); ok {
			m.loading = true
			m.screen = screenGallery
			return m, m.cmdDeletePhoto(p.ID)
		}
	case key.Matches(keyMsg, keys.albums):
		if p, ok := g.selected(); ok {
			g.pendingPhotoID = p.ID
			g.reload(m.storages)
			m.screen = m.guardScreen(screenAlbums)
		}
	}
	return m, nil
}

func (m appModel) updateAlbums(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	g := &m.gallery

	if g.naming {
		switch {
		case key.Matches(keyMsg, keys.esc):
			g.naming = false
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			name := strings.TrimSpace(g.nameInput.Value())
			g.naming = false
			g.nameInput.SetValue("")
			m.loading = true
			return m, m.cmdCreateAlbum(name)
		}
		var cmd tea.Cmd
		g.nameInput, cmd = g.nameInput.Update(tea.Msg(keyMsg))
		return m, cmd
	}

	switch {
	case key.Matches(keyMsg, keys.esc):
		if g.pendingPhotoID != "" {
			g.pendingPhotoID = ""
			m.screen = screenDetail
		} else {
			m.screen = screenGallery
		}
	case key.Matches(keyMsg, keys.up):
		if g.albumCursor > 0 {
			g.albumCursor--
		}
	case key.Matches(keyMsg, keys.down):
		if g.albumCursor < len(g.albums)-1 {
			g.albumCursor++
		}
	case key.Matches(keyMsg, keys.upload):
		g.naming = true
		g.nameInput.Focus()
		return m, textinput.Blink
	case key.Matches(keyMsg, keys.enter):
		album, ok := g.selectedAlbum()
		if !ok {
			return m, nil
		}
		if g.pendingPhotoID != "" {
			m.loading = true
			if album.Contains(g.pendingPhotoID) {
				return m, m.cmdRemoveFromAlbum(album.ID, g.pendingPhotoID)
			}
			return m, m.cmdAddToAlbum(album.ID, g.pendingPhotoID)
		}
		g.filter = filterAlbum
		g.albumID = album.ID
		g.cursor = 0
		g.reload(m.storages)
		m.screen = m.guardScreen(screenGallery)
	case key.Matches(keyMsg, keys.delete):
		if album, ok := g.selectedAlbum(); ok && g.pendingPhotoID == "" {
			m.loading = true
			return m, m.cmdDeleteAlbum(album.ID)
		}
	}
	return m, nil
}

func cmdCopy(text string) tea.Cmd {
	return func() tea.Msg {
		if err := clipboard.WriteAll(text); err != nil {
			return actionDoneMsg{err: err}
		}
		return copiedMsg{}
	}
}

func (m appModel) cmdCreateAlbum(name string) tea.Cmd {
	return func() tea.Msg {
		_, err := m.services.Gallery.CreateAlbum(m.ctx, name, "")
		return actionDoneMsg{err: err}
	}
}

func (m appModel) cmdDeleteAlbum(id string) tea.Cmd {
	return func() tea.Msg {
		return actionDoneMsg{err: m.services.Gallery.DeleteAlbum(m.ctx, id)}
	}
}

func (m appModel) cmdAddToAlbum(albumID, photoID string) tea.Cmd {
	return func() tea.Msg {
		return actionDoneMsg{err: m.services.Gallery.AddToAlbum(m.ctx, photoID, albumID)}
	}
}

func (m appModel) cmdRemoveFromAlbum(albumID, photoID string) tea.Cmd {
	return func() tea.Msg {
		return actionDoneMsg{err: m.services.Gallery.RemoveFromAlbum(m.ctx, photoID, albumID)}
	}
}

func (m appModel) cmdSavePref(key, value string) tea.Cmd {
	return func() tea.Msg {
		return actionDoneMsg{err: m.storages.Local.SavePref(m.ctx, key, value)}
	}
}
