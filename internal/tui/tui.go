// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package tui is the terminal front end of the recipe client, built on
// Bubble Tea.
//
// A session has two phases. [TUI.LoginFlow] runs the account menu until the
// user logs in, and [TUI.MainLoop] then shows the caller's recipes until the
// user quits or logs out.
package tui

import (
	"context"
	"errors"

	"github.com/MKhiriev/recipe-keeper/internal/adapter"
	"github.com/MKhiriev/recipe-keeper/internal/logger"
	"github.com/MKhiriev/recipe-keeper/models"
	tea "github.com/charmbracelet/bubbletea"
)

var ErrUserQuit = errors.New("user quit")

type TUI struct {
	api       adapter.ServerAdapter
	buildInfo models.AppBuildInfo
	logger    *logger.Logger
	opts      []tea.ProgramOption
}

func New(api adapter.ServerAdapter, buildInfo models.AppBuildInfo, logger *logger.Logger, opts ...tea.ProgramOption) *TUI {
	if len(opts) == 0 {
		opts = []tea.ProgramOption{tea.WithAltScreen()}
	}
	return &TUI{api: api, buildInfo: buildInfo, logger: logger, opts: opts}
}

// LoginFlow blocks until the user has a token or quits. The token is left in
// the adapter.
func (t *TUI) LoginFlow(ctx context.Context) (email string, err error) {
	pages := map[string]tea.Model{
		pageMenu:     NewMenuModel(),
		pageLogin:    NewLoginModel(ctx, t.api),
		pageRegister: NewRegisterModel(ctx, t.api),
	}

	root := NewRootModel(pages, pageMenu, t.buildInfo)
	finalModel, runErr := tea.NewProgram(root, append(t.opts, tea.WithContext(ctx))...).Run()
	if runErr != nil {
		return "", runErr
	}

	result, ok := finalModel.(RootModel)
	if !ok {
		return "", tea.ErrProgramKilled
	}
	if result.quitByUser {
		return "", ErrUserQuit
	}

	t.logger.Info().Str("email", result.email).Msg("logged in")
	return result.email, nil
}

// MainLoop runs the recipe screens. logout reports whether the user asked to
// switch accounts rather than quit.
func (t *TUI) MainLoop(ctx context.Context, email string) (logout bool, err error) {
	model := newMainLoopModel(ctx, t.api, email)
	finalModel, runErr := tea.NewProgram(model, append(t.opts, tea.WithContext(ctx))...).Run()
	if runErr != nil {
		return false, runErr
	}

	result, ok := finalModel.(mainLoopModel)
	if !ok {
		return false, tea.ErrProgramKilled
	}
	if result.logout {
		t.api.SetToken("")
	}
	return result.logout, nil
}
