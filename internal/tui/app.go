// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"github.com/MKhiriev/recipe-keeper/models"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// RootModel is a TUI router:
// 1) keeps active page
// 2) handles global Ctrl+C quit
// 3) handles NavigateTo messages
// 4) delegates all other messages to the active page
type RootModel struct {
	pages   map[string]tea.Model
	current tea.Model

	quitByUser bool
	email      string
	buildInfo  models.AppBuildInfo

	showBuildInfo bool
}

// NewRootModel registers all pages and opens startPage.
func NewRootModel(pages map[string]tea.Model, startPage string, buildInfo models.AppBuildInfo) RootModel {
	return RootModel{
		pages:     pages,
		current:   pages[startPage],
		buildInfo: buildInfo,
	}
}

func (r RootModel) Init() tea.Cmd {
	if r.current == nil {
		return nil
	}
	return r.current.Init()
}

func (r RootModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case keyMsg.String() == "ctrl+c":
			r.quitByUser = true
			return r, tea.Quit
		case key.Matches(keyMsg, keys.version) && r.isMenuPage():
			r.showBuildInfo = !r.showBuildInfo
			return r, nil
		case key.Matches(keyMsg, keys.esc) && r.showBuildInfo:
			r.showBuildInfo = false
			return r, nil
		}

		if r.showBuildInfo {
			return r, nil
		}
	}

	if nav, ok := msg.(NavigateTo); ok {
		next, exists := r.pages[nav.Page]
		if !exists {
			return r, nil
		}

		r.showBuildInfo = false
		r.current = next

		if nav.Payload != nil {
			return r, func() tea.Msg { return nav.Payload }
		}
		return r, r.current.Init()
	}

	if result, ok := msg.(LoginResult); ok && result.Err == nil {
		r.email = result.Email
		return r, tea.Quit
	}

	if r.current == nil {
		return r, nil
	}

	var cmd tea.Cmd
	r.current, cmd = r.current.Update(msg)
	return r, cmd
}

func (r RootModel) View() string {
	if r.showBuildInfo {
		return renderBuildInfoWindow(r.buildInfo)
	}
	if r.current == nil {
		return renderPage("RECIPE KEEPER", "", "")
	}
	return r.current.View()
}

func (r RootModel) isMenuPage() bool {
	_, ok := r.current.(*MenuModel)
	return ok
}
