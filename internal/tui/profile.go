package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/shpixel/gallery/models"
)

const (
	profileFieldName = iota
	profileFieldPhone
	profileFieldGender
	profileFieldAvatar
	profileFieldCount
)

type profileModel struct {
	inputs  [profileFieldCount]textinput.Model
	focused int
}

func newProfileModel() profileModel {
	var p profileModel

	name := textinput.New()
	name.Placeholder = "Full name"
	name.CharLimit = 120
	name.Width = 40
	name.Focus()

	phone := textinput.New()
	phone.Placeholder = "+1 555 0100"
	phone.CharLimit = 32
	phone.Width = 40

	gender := textinput.New()
	gender.Placeholder = "Gender (optional)"
	gender.CharLimit = 32
	gender.Width = 40

	avatar := textinput.New()
	avatar.Placeholder = "Path to avatar image (optional)"
	avatar.CharLimit = 512
	avatar.Width = 40

	p.inputs = [profileFieldCount]textinput.Model{name, phone, gender, avatar}
	return p
}

func (p profileModel) init() tea.Cmd {
	return textinput.Blink
}

func (p *profileModel) focusNext(backwards bool) {
	p.inputs[p.focused].Blur()
	if backwards {
		p.focused = (p.focused - 1 + profileFieldCount) % profileFieldCount
	} else {
		p.focused = (p.focused + 1) % profileFieldCount
	}
	p.inputs[p.focused].Focus()
}

func (p profileModel) view(loading bool) string {
	labels := [profileFieldCount]string{"Name", "Phone", "Gender", "Avatar"}

	s := titleStyle.Render("Complete your profile") + "\n\n"
	for i, label := range labels {
		s += label + ":\n" + p.inputs[i].View() + "\n"
	}
	s += "\n"
	if loading {
		s += helpStyle.Render("saving...")
	} else {
		s += helpStyle.Render("tab next field · enter save · ctrl+c quit")
	}
	return s
}

func (p profileModel) setup() models.ProfileSetup {
	return models.ProfileSetup{
		Name:       strings.TrimSpace(p.inputs[profileFieldName].Value()),
		Phone:      strings.TrimSpace(p.inputs[profileFieldPhone].Value()),
		Gender:     strings.TrimSpace(p.inputs[profileFieldGender].Value()),
		AvatarPath: strings.TrimSpace(p.inputs[profileFieldAvatar].Value()),
	}
}

func (m appModel) updateProfile(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, keys.tab):
			m.profile.focusNext(false)
			return m, nil
		case key.Matches(keyMsg, keys.backtab):
			m.profile.focusNext(true)
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			if m.loading {
				return m, nil
			}
			m.loading = true
			m.errMsg = ""
			return m, m.cmdSetupProfile(m.profile.setup())
		}
	}

	var cmd tea.Cmd
	m.profile.inputs[m.profile.focused], cmd = m.profile.inputs[m.profile.focused].Update(msg)
	return m, cmd
}
