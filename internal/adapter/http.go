// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"sync"

	"github.com/MKhiriev/recipe-keeper/internal/config"
	"github.com/MKhiriev/recipe-keeper/internal/logger"
	"github.com/MKhiriev/recipe-keeper/internal/utils"
	"github.com/MKhiriev/recipe-keeper/models"
	"github.com/go-resty/resty/v2"
)

const (
	usersPath   = "/users/"
	tokenPath   = "/users/token/"
	mePath      = "/users/me/"
	recipesPath = "/recipes/"
	recipePath  = "/recipes/{id}/"
	versionPath = "/version/"
)

type httpServerAdapter struct {
	client *utils.HTTPClient

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs the REST implementation of [ServerAdapter].
// The base URL may omit the scheme, in which case http is assumed.
func NewHTTPServerAdapter(cfg *config.ClientConfig, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	return &httpServerAdapter{
		client: utils.NewHTTPClient(baseURL, cfg.RequestTimeout),
		logger: logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (h *httpServerAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.token = strings.TrimSpace(token)
}

func (h *httpServerAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()

	return h.token
}

func (h *httpServerAdapter) request(ctx context.Context) *resty.Request {
	return h.client.R().SetContext(ctx)
}

// authedRequest fails fast when there is no token instead of letting the
// server answer 401.
func (h *httpServerAdapter) authedRequest(ctx context.Context) (*resty.Request, error) {
	token := h.Token()
	if token == "" {
		return nil, ErrNotLoggedIn
	}

	return h.request(ctx).SetAuthToken(token), nil
}

func (h *httpServerAdapter) Register(ctx context.Context, req models.RegisterRequest) (models.ProfileResponse, error) {
	var profile models.ProfileResponse

	resp, err := h.request(ctx).
		SetBody(req).
		SetResult(&profile).
		Post(usersPath)
	if err != nil {
		return models.ProfileResponse{}, fmt.Errorf("register request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.ProfileResponse{}, err
	}

	h.logger.Debug().Str("email", profile.Email).Msg("account registered")
	return profile, nil
}

func (h *httpServerAdapter) Login(ctx context.Context, req models.TokenRequest) (string, error) {
	var token models.TokenResponse

	resp, err := h.request(ctx).
		SetBody(req).
		SetResult(&token).
		Post(tokenPath)
	if err != nil {
		return "", fmt.Errorf("login request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}
	if token.Token == "" {
		return "", ErrEmptyToken
	}

	h.SetToken(token.Token)
	return token.Token, nil
}

func (h *httpServerAdapter) Me(ctx context.Context) (models.ProfileResponse, error) {
	var profile models.ProfileResponse

	req, err := h.authedRequest(ctx)
	if err != nil {
		return models.ProfileResponse{}, err
	}

	resp, err := req.SetResult(&profile).Get(mePath)
	if err != nil {
		return models.ProfileResponse{}, fmt.Errorf("profile request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.ProfileResponse{}, err
	}

	return profile, nil
}

func (h *httpServerAdapter) UpdateMe(ctx context.Context, update models.ProfileUpdate) (models.ProfileResponse, error) {
	var profile models.ProfileResponse

	req, err := h.authedRequest(ctx)
	if err != nil {
		return models.ProfileResponse{}, err
	}

	resp, err := req.SetBody(update).SetResult(&profile).Patch(mePath)
	if err != nil {
		return models.ProfileResponse{}, fmt.Errorf("profile update request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.ProfileResponse{}, err
	}

	return profile, nil
}

func (h *httpServerAdapter) ListRecipes(ctx context.Context) ([]models.RecipeSummary, error) {
	var recipes []models.RecipeSummary

	req, err := h.authedRequest(ctx)
	if err != nil {
		return nil, err
	}

	resp, err := req.SetResult(&recipes).Get(recipesPath)
	if err != nil {
		return nil, fmt.Errorf("list recipes request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return recipes, nil
}

func (h *httpServerAdapter) GetRecipe(ctx context.Context, id int64) (models.Recipe, error) {
	var recipe models.Recipe

	req, err := h.authedRequest(ctx)
	if err != nil {
		return models.Recipe{}, err
	}

	resp, err := req.
		SetPathParam("id", strconv.FormatInt(id, 10)).
		SetResult(&recipe).
		Get(recipePath)
	if err != nil {
		return models.Recipe{}, fmt.Errorf("get recipe request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Recipe{}, err
	}

	return recipe, nil
}

func (h *httpServerAdapter) CreateRecipe(ctx context.Context, in models.RecipeRequest) (models.Recipe, error) {
	var recipe models.Recipe

	req, err := h.authedRequest(ctx)
	if err != nil {
		return models.Recipe{}, err
	}

	resp, err := req.SetBody(in).SetResult(&recipe).Post(recipesPath)
	if err != nil {
		return models.Recipe{}, fmt.Errorf("create recipe request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Recipe{}, err
	}

	h.logger.Debug().Int64("recipe_id", recipe.ID).Msg("recipe created")
	return recipe, nil
}

func (h *httpServerAdapter) UpdateRecipe(ctx context.Context, id int64, in models.RecipeRequest, partial bool) (models.Recipe, error) {
	var recipe models.Recipe

	req, err := h.authedRequest(ctx)
	if err != nil {
		return models.Recipe{}, err
	}

	req = req.
		SetPathParam("id", strconv.FormatInt(id, 10)).
		SetBody(in).
		SetResult(&recipe)

	var resp *resty.Response
	if partial {
		resp, err = req.Patch(recipePath)
	} else {
		resp, err = req.Put(recipePath)
	}
	if err != nil {
		return models.Recipe{}, fmt.Errorf("update recipe request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Recipe{}, err
	}

	return recipe, nil
}

func (h *httpServerAdapter) DeleteRecipe(ctx context.Context, id int64) error {
	req, err := h.authedRequest(ctx)
	if err != nil {
		return err
	}

	resp, err := req.SetPathParam("id", strconv.FormatInt(id, 10)).Delete(recipePath)
	if err != nil {
		return fmt.Errorf("delete recipe request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return err
	}

	h.logger.Debug().Int64("recipe_id", id).Msg("recipe deleted")
	return nil
}

func (h *httpServerAdapter) Version(ctx context.Context) (string, error) {
	var body struct {
		Version string `json:"version"`
	}

	resp, err := h.request(ctx).SetResult(&body).Get(versionPath)
	if err != nil {
		return "", fmt.Errorf("version request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	return body.Version, nil
}
