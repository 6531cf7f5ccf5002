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

// LoginModel is the login screen. On success a [LoginResult] reaches
// [RootModel], which ends the login flow.
type LoginModel struct {
	ctx context.Context
	api adapter.ServerAdapter

	form       inputForm
	submitting bool
	errMsg     string
}

func NewLoginModel(ctx context.Context, api adapter.ServerAdapter) *LoginModel {
	return &LoginModel{
		ctx: ctx,
		api: api,
		form: newInputForm(
			[]string{"Email", "Password"},
			[]textinput.Model{
				newInput("email", 255, false),
				newInput("password", 72, true),
			},
		),
	}
}

func (m *LoginModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *LoginModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if result, ok := msg.(LoginResult); ok {
		m.submitting = false
		if result.Err != nil {
			m.errMsg = humanizeError(result.Err)
		}
		return m, nil
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

			email := m.form.trimmed(0)
			password := m.form.value(1)
			if email == "" || password == "" {
				m.errMsg = "Email and password are required"
				return m, nil
			}

			m.errMsg = ""
			m.submitting = true
			return m, m.cmdLogin(email, password)
		}
	}

	return m, m.form.update(msg)
}

func (m *LoginModel) View() string {
	var b strings.Builder
	m.form.render(&b)

	if m.submitting {
		b.WriteString("\n[Logging in...]\n")
	} else {
		b.WriteString("\n[Log in]\n")
	}
	renderMessages(&b, "", m.errMsg)

	return renderPage("LOG IN", strings.TrimRight(b.String(), "\n"), "esc: back │ tab: next field │ enter: submit")
}

func (m *LoginModel) cmdLogin(email, password string) tea.Cmd {
	ctx, api := m.ctx, m.api

	return func() tea.Msg {
		_, err := api.Login(ctx, models.TokenRequest{Email: email, Password: password})
		return LoginResult{Email: email, Err: err}
	}
}
