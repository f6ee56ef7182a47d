package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/shpixel/gallery/internal/service"
)

const (
	uploadFieldFile = iota
	uploadFieldTitle
	uploadFieldDescription
	uploadFieldTags
	uploadFieldCount
)

type uploadModel struct {
	inputs  [uploadFieldCount]textinput.Model
	focused int
}

func newUploadModel() uploadModel {
	var u uploadModel

	file := textinput.New()
	file.Placeholder = "/path/to/photo.jpg"
	file.CharLimit = 512
	file.Width = 50
	file.Focus()

	title := textinput.New()
	title.Placeholder = "Title"
	title.CharLimit = 200
	title.Width = 50

	description := textinput.New()
	description.Placeholder = "Description (optional)"
	description.CharLimit = 1000
	description.Width = 50

	tags := textinput.New()
	tags.Placeholder = "tags, comma, separated"
	tags.CharLimit = 300
	tags.Width = 50

	u.inputs = [uploadFieldCount]textinput.Model{file, title, description, tags}
	return u
}

func (u uploadModel) init() tea.Cmd {
	return textinput.Blink
}

func (u *uploadModel) focusNext(backwards bool) {
	u.inputs[u.focused].Blur()
	if backwards {
		u.focused = (u.focused - 1 + uploadFieldCount) % uploadFieldCount
	} else {
		u.focused = (u.focused + 1) % uploadFieldCount
	}
	u.inputs[u.focused].Focus()
}

func (u uploadModel) view(loading bool) string {
	labels := [uploadFieldCount]string{"File", "Title", "Description", "Tags"}

	s := titleStyle.Render("Upload a photo") + "\n\n"
	for i, label := range labels {
		s += label + ":\n" + u.inputs[i].View() + "\n"
	}
	s += "\n"
	if loading {
		s += helpStyle.Render("uploading...")
	} else {
		s += helpStyle.Render("tab next field · enter upload · esc cancel")
	}
	return s
}

func (u uploadModel) input() service.UploadInput {
	var tags []string
	for _, t := range strings.Split(u.inputs[uploadFieldTags].Value(), ",") {
		if t = strings.TrimSpace(t); t != "" {
			tags = append(tags, t)
		}
	}
	return service.UploadInput{
		FilePath:    strings.TrimSpace(u.inputs[uploadFieldFile].Value()),
		Title:       strings.TrimSpace(u.inputs[uploadFieldTitle].Value()),
		Description: strings.TrimSpace(u.inputs[uploadFieldDescription].Value()),
		Tags:        tags,
	}
}

func (m appModel) updateUpload(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			m.screen = screenGallery
			return m, nil
		case key.Matches(keyMsg, keys.tab):
			m.upload.focusNext(false)
			return m, nil
		case key.Matches(keyMsg, keys.backtab):
			m.upload.focusNext(true)
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			if m.loading {
				return m, nil
			}
			m.loading = true
			m.errMsg = ""
			return m, m.cmdUpload(m.upload.input())
		}
	}

	var cmd tea.Cmd
	m.upload.inputs[m.upload.focused], cmd = m.upload.inputs[m.upload.focused].Update(msg)
	return m, cmd
}
