// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/MKhiriev/recipe-keeper/internal/config"
	"github.com/MKhiriev/recipe-keeper/internal/logger"
	"github.com/MKhiriev/recipe-keeper/internal/store"
)

type Services struct {
	UserService    UserService
	AuthService    AuthService
	RecipeService  RecipeService
	AppInfoService AppInfoService
}

// NewServices wires the services over storages, each behind its validation
// layer.
func NewServices(storages *store.Storages, cfg config.StructuredConfig, logger *logger.Logger) *Services {
	return &Services{
		UserService: NewUserValidationService().
			Wrap(NewUserService(storages.UserRepository, logger)),
		AuthService: NewAuthValidationService().
			Wrap(NewAuthService(storages.UserRepository, storages.TokenRepository, cfg.App, logger)),
		RecipeService: NewRecipeValidationService().
			Wrap(NewRecipeService(storages.RecipeRepository, logger)),
		AppInfoService: NewAppInfoService(cfg.App),
	}
}
