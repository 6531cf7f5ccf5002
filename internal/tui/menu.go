// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

type MenuModel struct {
	items  []string
	idx    int
	status string
}

func NewMenuModel() *MenuModel {
	return &MenuModel{
		items: []string{"Log in", "Sign up"},
	}
}

func (m *MenuModel) Init() tea.Cmd {
	return nil
}

func (m *MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if notice, ok := msg.(RegisterSuccessNotice); ok {
		m.status = "Account " + notice.Email + " created, you can log in now"
		m.idx = 0
		return m, nil
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.up):
		if m.idx > 0 {
			m.idx--
		}
	case key.Matches(keyMsg, keys.down):
		if m.idx < len(m.items)-1 {
			m.idx++
		}
	case key.Matches(keyMsg, keys.enter):
		m.status = ""
		if m.idx == 0 {
			return m, func() tea.Msg { return NavigateTo{Page: pageLogin} }
		}
		return m, func() tea.Msg { return NavigateTo{Page: pageRegister} }
	}

	return m, nil
}

func (m *MenuModel) View() string {
	var b strings.Builder

	for i, item := range m.items {
		line := fmt.Sprintf("%d. %s", i+1, item)
		if i == m.idx {
			b.WriteString("> ")
			b.WriteString(selectedStyle.Render(line))
		} else {
			b.WriteString("  ")
			b.WriteString(line)
		}
		b.WriteString("\n")
	}
	renderMessages(&b, m.status, "")

	return renderPage("RECIPE KEEPER", strings.TrimRight(b.String(), "\n"), "enter: select │ ↑/↓: move │ v: version")
}
