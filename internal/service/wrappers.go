// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

// UserServiceWrapper defines middleware composition for UserService.
type UserServiceWrapper interface {
	Wrap(UserService) UserService
}

// AuthServiceWrapper defines middleware composition for AuthService.
type AuthServiceWrapper interface {
	Wrap(AuthService) AuthService
}

// RecipeServiceWrapper defines middleware composition for RecipeService.
// Implementations wrap an existing RecipeService to add behavior such as
// validation.
type RecipeServiceWrapper interface {
	Wrap(RecipeService) RecipeService
}
