package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type emailModel struct {
	input textinput.Model
}

func newEmailModel() emailModel {
	ti := textinput.New()
	ti.Placeholder = "you@example.com"
	ti.CharLimit = 254
	ti.Width = 40
	ti.Focus()
	return emailModel{input: ti}
}

func (e emailModel) init() tea.Cmd {
	return textinput.Blink
}

func (e emailModel) view(loading bool) string {
	s := titleStyle.Render("Sign in to SH Pixel") + "\n\n"
	s += "Email address:\n" + e.input.View() + "\n\n"
	if loading {
		s += helpStyle.Render("sending code...")
	} else {
		s += helpStyle.Render("enter send code · ctrl+c quit")
	}
	return s
}

func (m appModel) updateEmail(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && key.Matches(keyMsg, keys.enter) {
		if m.loading {
			return m, nil
		}
		email := strings.TrimSpace(m.email.input.Value())
		m.loading = true
		m.errMsg = ""
		return m, m.cmdRequestOTP(email)
	}

	var cmd tea.Cmd
	m.email.input, cmd = m.email.input.Update(msg)
	return m, cmd
}

type otpModel struct {
	input textinput.Model
}

func newOTPModel() otpModel {
	ti := textinput.New()
	ti.Placeholder = "6-digit code"
	ti.CharLimit = 6
	ti.Width = 10
	ti.Focus()
	return otpModel{input: ti}
}

func (o otpModel) init() tea.Cmd {
	return textinput.Blink
}

func (o otpModel) view(loading bool) string {
	s := titleStyle.Render("Enter the code from your email") + "\n\n"
	s += "One-time code:\n" + o.input.View() + "\n\n"
	if loading {
		s += helpStyle.Render("verifying...")
	} else {
		s += helpStyle.Render("enter verify · esc back · ctrl+c quit")
	}
	return s
}

func (m appModel) updateOTP(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			m.screen = screenEmail
			m.errMsg = ""
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			if m.loading {
				return m, nil
			}
			email := strings.TrimSpace(m.email.input.Value())
			code := strings.TrimSpace(m.otp.input.Value())
			m.loading = true
			m.errMsg = ""
			return m, m.cmdVerifyOTP(email, code)
		}
	}

	var cmd tea.Cmd
	m.otp.input, cmd = m.otp.input.Update(msg)
	return m, cmd
}
