// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"strings"

	"github.com/MKhiriev/recipe-keeper/internal/adapter"
	"github.com/MKhiriev/recipe-keeper/models"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	registerName = iota
	registerEmail
	registerPassword
	registerRepeat
)

// RegisterModel is the sign-up screen. After a successful registration it
// clears itself and returns to the menu with a [RegisterSuccessNotice].
type RegisterModel struct {
	ctx context.Context
	api adapter.ServerAdapter

	form       inputForm
	submitting bool
	errMsg     string
}

func NewRegisterModel(ctx context.Context, api adapter.ServerAdapter) *RegisterModel {
	return &RegisterModel{
		ctx: ctx,
		api: api,
		form: newInputForm(
			[]string{"Name", "Email", "Password", "Repeat"},
			[]textinput.Model{
				newInput("name (optional)", 255, false),
				newInput("email", 255, false),
				newInput("at least 8 characters", 72, true),
				newInput("repeat password", 72, true),
			},
		),
	}
}

func (m *RegisterModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *RegisterModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if result, ok := msg.(RegisterResult); ok {
		m.submitting = false
		if result.Err != nil {
			m.errMsg = humanizeError(result.Err)
			return m, nil
		}

		m.errMsg = ""
		m.form.reset()
		return m, func() tea.Msg {
			return NavigateTo{Page: pageMenu, Payload: RegisterSuccessNotice{Email: result.Email}}
		}
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			m.submitting = false
			m.errMsg = ""
			return m, func() tea.Msg { return NavigateTo{Page: pageMenu} }
		case key.Matches(keyMsg, keys.tab):
			m.form.focusNext()
			return m, nil
		case key.Matches(keyMsg, keys.backtab):
			m.form.focusPrev()
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			if m.submitting {
				return m, nil
			}

			req := models.RegisterRequest{
				Name:     m.form.trimmed(registerName),
				Email:    m.form.trimmed(registerEmail),
				Password: m.form.value(registerPassword),
			}
			switch {
			case req.Email == "" || req.Password == "":
				m.errMsg = "Email and password are required"
				return m, nil
			case req.Password != m.form.value(registerRepeat):
				m.errMsg = "Passwords do not match"
				return m, nil
			}

			m.errMsg = ""
			m.submitting = true
			return m, m.cmdRegister(req)
		}
	}

	return m, m.form.update(msg)
}

func (m *RegisterModel) View() string {
	var b strings.Builder
	m.form.render(&b)

	if m.submitting {
		b.WriteString("\n[Signing up...]\n")
	} else {
		b.WriteString("\n[Sign up]\n")
	}
	renderMessages(&b, "", m.errMsg)

	return renderPage("SIGN UP", strings.TrimRight(b.String(), "\n"), "esc: back │ tab: next field │ enter: submit")
}

func (m *RegisterModel) cmdRegister(req models.RegisterRequest) tea.Cmd {
	ctx, api := m.ctx, m.api

	return func() tea.Msg {
		profile, err := api.Register(ctx, req)
		if err == nil {
			return RegisterResult{Email: profile.Email}
		}
		return RegisterResult{Email: req.Email, Err: err}
	}
}
