// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"github.com/MKhiriev/recipe-keeper/models"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	pageMenu     = "menu"
	pageLogin    = "login"
	pageRegister = "register"
)

// NavigateTo switches the root model to Page. A non-nil Payload is delivered
// to the new page as its first message.
type NavigateTo struct {
	Page    string
	Payload tea.Msg
}

type LoginResult struct {
	Email string
	Err   error
}

type RegisterResult struct {
	Email string
	Err   error
}

// RegisterSuccessNotice is shown on the menu after a registration.
type RegisterSuccessNotice struct {
	Email string
}

type recipesLoadedMsg struct {
	recipes []models.RecipeSummary
	err     error
}

type recipeLoadedMsg struct {
	recipe models.Recipe
	err    error
}

type recipeSavedMsg struct {
	recipe  models.Recipe
	created bool
	err     error
}

type recipeDeletedMsg struct {
	id  int64
	err error
}

type profileLoadedMsg struct {
	profile models.ProfileResponse
	err     error
}
