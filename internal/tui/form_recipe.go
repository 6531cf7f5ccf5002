// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/MKhiriev/recipe-keeper/models"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	fieldTitle = iota
	fieldTime
	fieldPrice
	fieldLink
	fieldDescription
	recipeFieldCount
)

var (
	errTitleRequired = errors.New("title is required")
	errBadTime       = errors.New("time must be a whole number of minutes")
	errNothingToSave = errors.New("nothing changed")
)

// recipeForm edits one recipe. A zero original.ID means a new recipe.
type recipeForm struct {
	original    models.Recipe
	inputs      inputForm
	description textarea.Model
	focus       int
}

func newRecipeForm(original models.Recipe) recipeForm {
	inputs := newInputForm(
		[]string{"Title", "Minutes", "Price", "Link"},
		[]textinput.Model{
			newInput("Spaghetti carbonara", 255, false),
			newInput("25", 10, false),
			newInput("5.00", 12, false),
			newInput("https://example.com/recipe", 255, false),
		},
	)

	desc := textarea.New()
	desc.Placeholder = "description"
	desc.SetWidth(42)
	desc.SetHeight(4)
	desc.ShowLineNumbers = false

	f := recipeForm{original: original, inputs: inputs, description: desc}
	if original.ID != 0 {
		f.inputs.setValue(fieldTitle, original.Title)
		f.inputs.setValue(fieldTime, strconv.Itoa(original.TimeMinutes))
		f.inputs.setValue(fieldPrice, original.Price.String())
		f.inputs.setValue(fieldLink, original.Link)
		f.description.SetValue(original.Description)
	}
	return f
}

func (f *recipeForm) isNew() bool {
	return f.original.ID == 0
}

func (f *recipeForm) setFocus(i int) {
	if f.focus == fieldDescription {
		f.description.Blur()
	} else {
		f.inputs.inputs[f.focus].Blur()
	}

	f.focus = i
	if f.focus == fieldDescription {
		f.description.Focus()
	} else {
		f.inputs.focus = i
		f.inputs.inputs[i].Focus()
	}
}

func (f *recipeForm) focusNext() {
	f.setFocus((f.focus + 1) % recipeFieldCount)
}

func (f *recipeForm) focusPrev() {
	f.setFocus((f.focus - 1 + recipeFieldCount) % recipeFieldCount)
}

func (f *recipeForm) update(msg tea.Msg) tea.Cmd {
	if f.focus == fieldDescription {
		var cmd tea.Cmd
		f.description, cmd = f.description.Update(msg)
		return cmd
	}
	return f.inputs.update(msg)
}

// values parses the form into a full recipe request.
func (f *recipeForm) values() (models.RecipeRequest, error) {
	title := f.inputs.trimmed(fieldTitle)
	if title == "" {
		return models.RecipeRequest{}, errTitleRequired
	}

	minutes, err := strconv.Atoi(f.inputs.trimmed(fieldTime))
	if err != nil {
		return models.RecipeRequest{}, errBadTime
	}

	price, err := models.ParsePrice(f.inputs.trimmed(fieldPrice))
	if err != nil {
		return models.RecipeRequest{}, fmt.Errorf("price: %w", err)
	}

	link := f.inputs.trimmed(fieldLink)
	description := f.description.Value()

	return models.RecipeRequest{
		Title:       &title,
		TimeMinutes: &minutes,
		Price:       &price,
		Link:        &link,
		Description: &description,
	}, nil
}

// request returns what to send: everything for a new recipe and only the
// changed fields otherwise.
func (f *recipeForm) request() (models.RecipeRequest, error) {
	req, err := f.values()
	if err != nil || f.isNew() {
		return req, err
	}

	o := f.original
	if *req.Title == o.Title {
		req.Title = nil
	}
	if *req.TimeMinutes == o.TimeMinutes {
		req.TimeMinutes = nil
	}
	if *req.Price == o.Price {
		req.Price = nil
	}
	if *req.Link == o.Link {
		req.Link = nil
	}
	if *req.Description == o.Description {
		req.Description = nil
	}

	if req.IsEmpty() {
		return req, errNothingToSave
	}
	return req, nil
}

func (f *recipeForm) render(b *strings.Builder) {
	f.inputs.render(b)
	b.WriteString("\nNotes\n")
	b.WriteString(f.description.View())
	b.WriteString("\n")
}
