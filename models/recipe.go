// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Recipe is a record owned by exactly one user. The JSON form is the detail
// representation; see [RecipeSummary] for list entries.
type Recipe struct {
	ID int64 `json:"id"`

	// UserID is the owner. It is fixed at creation.
	UserID int64 `json:"-"`

	Title       string `json:"title"`
	TimeMinutes int    `json:"time_minutes"`
	Price       Price  `json:"price"`
	Link        string `json:"link"`
	Description string `json:"description"`

	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}

// TableName returns the table backing Recipe.
func (r Recipe) TableName() string {
	return "recipes"
}

// RecipeSummary is the list representation.
type RecipeSummary struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	TimeMinutes int    `json:"time_minutes"`
	Price       Price  `json:"price"`
	Link        string `json:"link"`
}

// Summary drops the description.
func (r Recipe) Summary() RecipeSummary {
	return RecipeSummary{
		ID:          r.ID,
		Title:       r.Title,
		TimeMinutes: r.TimeMinutes,
		Price:       r.Price,
		Link:        r.Link,
	}
}

// Summaries maps a list of recipes to their summaries.
func Summaries(recipes []Recipe) []RecipeSummary {
	out := make([]RecipeSummary, 0, len(recipes))
	for _, r := range recipes {
		out = append(out, r.Summary())
	}
	return out
}

// RecipeRequest is the writable part of a recipe as sent by clients. Fields
// are pointers so a partial update can tell "absent" from "zero". Anything
// else in the payload, an owner field included, is ignored.
type RecipeRequest struct {
	Title       *string `json:"title,omitempty"`
	TimeMinutes *int    `json:"time_minutes,omitempty"`
	Price       *Price  `json:"price,omitempty"`
	Link        *string `json:"link,omitempty"`
	Description *string `json:"description,omitempty"`
}

// IsEmpty reports whether no field is present.
func (r RecipeRequest) IsEmpty() bool {
	return r.Title == nil && r.TimeMinutes == nil && r.Price == nil &&
		r.Link == nil && r.Description == nil
}

// ToRecipe builds a new recipe for owner, defaulting link and description to "".
func (r RecipeRequest) ToRecipe(owner int64) Recipe {
	recipe := Recipe{UserID: owner}
	r.ApplyTo(&recipe)
	return recipe
}

// ApplyTo copies the present fields onto recipe. Owner and id are untouched.
func (r RecipeRequest) ApplyTo(recipe *Recipe) {
	if r.Title != nil {
		recipe.Title = *r.Title
	}
	if r.TimeMinutes != nil {
		recipe.TimeMinutes = *r.TimeMinutes
	}
	if r.Price != nil {
		recipe.Price = *r.Price
	}
	if r.Link != nil {
		recipe.Link = *r.Link
	}
	if r.Description != nil {
		recipe.Description = *r.Description
	}
}
