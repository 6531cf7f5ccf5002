// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/recipe-keeper/internal/adapter"
	"github.com/MKhiriev/recipe-keeper/models"
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

type mode int

const (
	modeList mode = iota
	modeDetail
	modeForm
	modeConfirmDelete
)

type mainLoopModel struct {
	ctx   context.Context
	api   adapter.ServerAdapter
	email string

	profile models.ProfileResponse
	recipes []models.RecipeSummary
	idx     int
	recipe  models.Recipe
	form    recipeForm

	mode    mode
	back    mode
	spinner spinner.Model
	loading bool
	saving  bool
	status  string
	errMsg  string

	copyText func(string) error

	logout bool
}

func newMainLoopModel(ctx context.Context, api adapter.ServerAdapter, email string) mainLoopModel {
	s := spinner.New()
	s.Spinner = spinner.MiniDot

	return mainLoopModel{
		ctx:      ctx,
		api:      api,
		email:    email,
		spinner:  s,
		loading:  true,
		copyText: clipboard.WriteAll,
	}
}

func (m mainLoopModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.cmdLoadProfile(), m.cmdLoadRecipes())
}

func (m mainLoopModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case profileLoadedMsg:
		if msg.err == nil {
			m.profile = msg.profile
		}
		return m, nil
	case recipesLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
			return m, nil
		}
		m.recipes = msg.recipes
		m.idx = min(m.idx, max(len(m.recipes)-1, 0))
		return m, nil
	case recipeLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
			return m, m.cmdLoadRecipes()
		}
		m.recipe = msg.recipe
		m.mode = modeDetail
		return m, nil
	case recipeSavedMsg:
		m.saving = false
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
			return m, nil
		}
		m.recipe = msg.recipe
		m.mode = modeDetail
		m.errMsg = ""
		if msg.created {
			m.status = "Recipe added"
		} else {
			m.status = "Recipe updated"
		}
		return m, m.cmdLoadRecipes()
	case recipeDeletedMsg:
		m.mode = modeList
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
		} else {
			m.status = "Recipe deleted"
			m.errMsg = ""
		}
		m.loading = true
		return m, m.cmdLoadRecipes()
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		if m.mode == modeForm {
			return m, m.form.update(msg)
		}
		return m, nil
	}

	if keyMsg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	switch m.mode {
	case modeForm:
		return m.updateForm(keyMsg)
	case modeConfirmDelete:
		return m.updateConfirmDelete(keyMsg)
	case modeDetail:
		return m.updateDetail(keyMsg)
	default:
		return m.updateList(keyMsg)
	}
}

func (m mainLoopModel) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.quit):
		return m, tea.Quit
	case key.Matches(msg, keys.logout):
		m.logout = true
		return m, tea.Quit
	case key.Matches(msg, keys.up):
		if m.idx > 0 {
			m.idx--
		}
	case key.Matches(msg, keys.down):
		if m.idx < len(m.recipes)-1 {
			m.idx++
		}
	case key.Matches(msg, keys.reload):
		m.clearMessages()
		m.loading = true
		return m, m.cmdLoadRecipes()
	case key.Matches(msg, keys.newItem):
		m.clearMessages()
		m.startForm(models.Recipe{}, modeList)
		return m, nil
	}

	summary, ok := m.current()
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(msg, keys.enter):
		m.clearMessages()
		m.loading = true
		return m, m.cmdGetRecipe(summary.ID)
	case key.Matches(msg, keys.delete):
		m.clearMessages()
		m.recipe = models.Recipe{ID: summary.ID, Title: summary.Title}
		m.back = modeList
		m.mode = modeConfirmDelete
	case key.Matches(msg, keys.copy):
		m.copyLink(summary.Link)
	}

	return m, nil
}

func (m mainLoopModel) updateDetail(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.esc), key.Matches(msg, keys.quit):
		m.clearMessages()
		m.mode = modeList
	case key.Matches(msg, keys.edit):
		m.clearMessages()
		m.startForm(m.recipe, modeDetail)
	case key.Matches(msg, keys.delete):
		m.clearMessages()
		m.back = modeDetail
		m.mode = modeConfirmDelete
	case key.Matches(msg, keys.copy):
		m.copyLink(m.recipe.Link)
	}
	return m, nil
}

func (m mainLoopModel) updateConfirmDelete(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.yes):
		return m, m.cmdDeleteRecipe(m.recipe.ID)
	case key.Matches(msg, keys.no):
		m.mode = m.back
	}
	return m, nil
}

func (m mainLoopModel) updateForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.esc):
		m.errMsg = ""
		m.mode = m.back
		return m, nil
	case key.Matches(msg, keys.tab):
		m.form.focusNext()
		return m, nil
	case key.Matches(msg, keys.backtab):
		m.form.focusPrev()
		return m, nil
	case key.Matches(msg, keys.save):
		if m.saving {
			return m, nil
		}
		req, err := m.form.request()
		if err != nil {
			m.errMsg = err.Error()
			return m, nil
		}
		m.errMsg = ""
		m.saving = true
		if m.form.isNew() {
			return m, m.cmdCreateRecipe(req)
		}
		return m, m.cmdUpdateRecipe(m.form.original.ID, req)
	}

	return m, m.form.update(msg)
}

func (m *mainLoopModel) startForm(original models.Recipe, back mode) {
	m.form = newRecipeForm(original)
	m.back = back
	m.mode = modeForm
}

func (m *mainLoopModel) copyLink(link string) {
	if strings.TrimSpace(link) == "" {
		m.status = "Nothing to copy"
		return
	}
	if err := m.copyText(link); err != nil {
		m.errMsg = fmt.Sprintf("copy failed: %v", err)
		return
	}
	m.status = "Link copied"
}

func (m *mainLoopModel) clearMessages() {
	m.status = ""
	m.errMsg = ""
}

func (m mainLoopModel) current() (models.RecipeSummary, bool) {
	if m.idx < 0 || m.idx >= len(m.recipes) {
		return models.RecipeSummary{}, false
	}
	return m.recipes[m.idx], true
}

func (m mainLoopModel) View() string {
	switch m.mode {
	case modeForm:
		return m.viewForm()
	case modeConfirmDelete:
		return m.viewConfirmDelete()
	case modeDetail:
		return m.viewDetail()
	default:
		return m.viewList()
	}
}

func (m mainLoopModel) viewList() string {
	var b strings.Builder

	who := m.email
	if m.profile.Name != "" {
		who = m.profile.Name + " <" + m.profile.Email + ">"
	}
	b.WriteString("Signed in as ")
	b.WriteString(who)
	b.WriteString("\n\n")

	switch {
	case m.loading:
		b.WriteString(m.spinner.View())
		b.WriteString(" Loading...\n")
	case len(m.recipes) == 0:
		b.WriteString("No recipes yet, press n to add one\n")
	default:
		fmt.Fprintf(&b, "  %-32s │ %7s │ %9s\n", "Title", "Minutes", "Price")
		b.WriteString("  ")
		b.WriteString(strings.Repeat("─", 33))
		b.WriteString("┼─────────┼──────────\n")
		for i, r := range m.recipes {
			line := fmt.Sprintf("%-32s │ %7d │ %9s", fitText(r.Title, 32), r.TimeMinutes, r.Price)
			if i == m.idx {
				b.WriteString("> ")
				b.WriteString(selectedStyle.Render(line))
			} else {
				b.WriteString("  ")
				b.WriteString(line)
			}
			b.WriteString("\n")
		}
	}
	renderMessages(&b, m.status, m.errMsg)

	return renderPage("RECIPES", strings.TrimRight(b.String(), "\n"),
		"enter: open │ n: new │ d: delete │ c: copy link │ r: reload │ l: log out │ q: quit")
}

func (m mainLoopModel) viewDetail() string {
	var b strings.Builder
	r := m.recipe

	fmt.Fprintf(&b, "Title   │ %s\n", r.Title)
	fmt.Fprintf(&b, "Minutes │ %d\n", r.TimeMinutes)
	fmt.Fprintf(&b, "Price   │ %s\n", r.Price)
	fmt.Fprintf(&b, "Link    │ %s\n", valueOrDash(r.Link))
	b.WriteString("\n")
	b.WriteString(valueOrDash(r.Description))
	b.WriteString("\n")
	renderMessages(&b, m.status, m.errMsg)

	return renderPage(fmt.Sprintf("RECIPE #%d", r.ID), strings.TrimRight(b.String(), "\n"),
		"esc: back │ e: edit │ d: delete │ c: copy link")
}

func (m mainLoopModel) viewForm() string {
	var b strings.Builder
	m.form.render(&b)

	if m.saving {
		b.WriteString("\n[Saving...]\n")
	}
	renderMessages(&b, "", m.errMsg)

	title := "EDIT RECIPE"
	if m.form.isNew() {
		title = "NEW RECIPE"
	}
	return renderPage(title, strings.TrimRight(b.String(), "\n"), "tab: next field │ ctrl+s: save │ esc: cancel")
}

func (m mainLoopModel) viewConfirmDelete() string {
	content := overlayBoxStyle.Render(fmt.Sprintf("Delete %q?\n\ny: yes    n: no", m.recipe.Title))
	return renderPage("DELETE RECIPE", content, "")
}

func (m mainLoopModel) cmdLoadProfile() tea.Cmd {
	ctx, api := m.ctx, m.api
	return func() tea.Msg {
		profile, err := api.Me(ctx)
		return profileLoadedMsg{profile: profile, err: err}
	}
}

func (m mainLoopModel) cmdLoadRecipes() tea.Cmd {
	ctx, api := m.ctx, m.api
	return func() tea.Msg {
		recipes, err := api.ListRecipes(ctx)
		return recipesLoadedMsg{recipes: recipes, err: err}
	}
}

func (m mainLoopModel) cmdGetRecipe(id int64) tea.Cmd {
	ctx, api := m.ctx, m.api
	return func() tea.Msg {
		recipe, err := api.GetRecipe(ctx, id)
		return recipeLoadedMsg{recipe: recipe, err: err}
	}
}

func (m mainLoopModel) cmdCreateRecipe(req models.RecipeRequest) tea.Cmd {
	ctx, api := m.ctx, m.api
	return func() tea.Msg {
		recipe, err := api.CreateRecipe(ctx, req)
		return recipeSavedMsg{recipe: recipe, created: true, err: err}
	}
}

func (m mainLoopModel) cmdUpdateRecipe(id int64, req models.RecipeRequest) tea.Cmd {
	ctx, api := m.ctx, m.api
	return func() tea.Msg {
		recipe, err := api.UpdateRecipe(ctx, id, req, true)
		return recipeSavedMsg{recipe: recipe, err: err}
	}
}

func (m mainLoopModel) cmdDeleteRecipe(id int64) tea.Cmd {
	ctx, api := m.ctx, m.api
	return func() tea.Msg {
		return recipeDeletedMsg{id: id, err: api.DeleteRecipe(ctx, id)}
	}
}
