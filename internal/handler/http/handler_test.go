// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/MKhiriev/recipe-keeper/internal/logger"
	"github.com/MKhiriev/recipe-keeper/internal/mock"
	"github.com/MKhiriev/recipe-keeper/internal/service"
	"github.com/MKhiriev/recipe-keeper/models"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const (
	goodToken  = "0123456789abcdef0123456789abcdef01234567"
	staffToken = "staff0000000000000000000000000000000000"
)

var (
	testUser  = models.User{UserID: 1, Email: "test@example.com", Name: "Test Name", IsActive: true}
	staffUser = models.User{UserID: 9, Email: "staff@example.com", IsActive: true, IsStaff: true}
)

type testServices struct {
	users   *mock.MockUserService
	auth    *mock.MockAuthService
	recipes *mock.MockRecipeService
	appInfo *mock.MockAppInfoService
}

// newTestRouter builds the full router over mocked services. goodToken
// resolves to testUser and staffToken to staffUser; anything else is
// rejected.
func newTestRouter(t *testing.T) (*chi.Mux, testServices) {
	t.Helper()
	ctrl := gomock.NewController(t)

	svcs := testServices{
		users:   mock.NewMockUserService(ctrl),
		auth:    mock.NewMockAuthService(ctrl),
		recipes: mock.NewMockRecipeService(ctrl),
		appInfo: mock.NewMockAppInfoService(ctrl),
	}

	svcs.auth.EXPECT().ResolveToken(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, key string) (models.User, error) {
			switch key {
			case goodToken:
				return testUser, nil
			case staffToken:
				return staffUser, nil
			default:
				return models.User{}, service.ErrTokenInvalid
			}
		},
	).AnyTimes()

	h := NewHandler(&service.Services{
		UserService:    svcs.users,
		AuthService:    svcs.auth,
		RecipeService:  svcs.recipes,
		AppInfoService: svcs.appInfo,
	}, logger.Nop())

	return h.Init(), svcs
}

func doRequest(t *testing.T, router http.Handler, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		reader = strings.NewReader(b)
	default:
		raw, err := json.Marshal(b)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	if reader != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Token "+token)
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decodeBody[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out), rec.Body.String())
	return out
}

// ─────────────────────────────────────────────
// NewHandler
// ─────────────────────────────────────────────

func TestNewHandler(t *testing.T) {
	svc := &service.Services{}
	h := NewHandler(svc, logger.Nop())

	require.NotNil(t, h)
	assert.Equal(t, svc, h.services)
	assert.NotNil(t, h.metrics)
	assert.NotNil(t, h.traceIDs)

	// each handler owns its metrics registry
	assert.NotSame(t, h.metrics.registry, NewHandler(svc, logger.Nop()).metrics.registry)
}

// ─────────────────────────────────────────────
// Init — route registration
// ─────────────────────────────────────────────

func TestInit_ProtectedRoutes_RequireAuth(t *testing.T) {
	router, _ := newTestRouter(t)

	routes := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/users/me/"},
		{http.MethodPatch, "/users/me/"},
		{http.MethodGet, "/recipes/"},
		{http.MethodPost, "/recipes/"},
		{http.MethodGet, "/recipes/1/"},
		{http.MethodPut, "/recipes/1/"},
		{http.MethodPatch, "/recipes/1/"},
		{http.MethodDelete, "/recipes/1/"},
		{http.MethodGet, "/admin/users/"},
		{http.MethodPatch, "/admin/users/1/"},
	}

	for _, rt := range routes {
		t.Run(rt.method+" "+rt.path, func(t *testing.T) {
			rec := doRequest(t, router, rt.method, rt.path, "", nil)
			assert.Equal(t, http.StatusUnauthorized, rec.Code)
			assert.Equal(t, "Token", rec.Header().Get("WWW-Authenticate"))

			body := decodeBody[models.ErrorResponse](t, rec)
			assert.Equal(t, "Authentication credentials were not provided.", body.Detail)

			rec = doRequest(t, router, rt.method, rt.path, "bad-token", nil)
			assert.Equal(t, http.StatusUnauthorized, rec.Code)
			assert.Equal(t, "Invalid token.", decodeBody[models.ErrorResponse](t, rec).Detail)
		})
	}
}

func TestInit_MethodNotAllowed(t *testing.T) {
	router, _ := newTestRouter(t)

	tests := []struct {
		method string
		path   string
		token  string
		allow  string
	}{
		{http.MethodPost, "/users/me/", goodToken, "GET, PATCH"},
		{http.MethodPut, "/users/me/", goodToken, "GET, PATCH"},
		{http.MethodGet, "/users/", "", "POST"},
		{http.MethodGet, "/users/token/", "", "POST"},
		{http.MethodPost, "/recipes/1/", goodToken, "GET, PUT, PATCH, DELETE"},
		{http.MethodDelete, "/recipes/", goodToken, "GET, POST"},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			rec := doRequest(t, router, tt.method, tt.path, tt.token, nil)
			assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
			assert.Equal(t, tt.allow, rec.Header().Get("Allow"))
		})
	}
}

func TestInit_UnknownRoutes_Return404(t *testing.T) {
	router, _ := newTestRouter(t)

	for _, path := range []string{"/", "/unknown/", "/users/nope/", "/api/recipes/"} {
		t.Run(path, func(t *testing.T) {
			rec := doRequest(t, router, http.MethodGet, path, "", nil)
			assert.Equal(t, http.StatusNotFound, rec.Code)
			assert.Equal(t, detailNotFound, decodeBody[models.ErrorResponse](t, rec).Detail)
		})
	}
}

func TestInit_TraceIDHeader(t *testing.T) {
	router, svcs := newTestRouter(t)
	svcs.appInfo.EXPECT().GetAppVersion(gomock.Any()).Return("v1.0.0").Times(2)

	rec := doRequest(t, router, http.MethodGet, "/version/", "", nil)
	generated := rec.Header().Get(traceIDHeader)
	assert.NotEmpty(t, generated)

	const incoming = "0190a4a4-6a7e-7c1d-9a43-6c5b8f0e2d11"
	req := httptest.NewRequest(http.MethodGet, "/version/", nil)
	req.Header.Set(traceIDHeader, incoming)
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, incoming, rec.Header().Get(traceIDHeader))
	assert.Equal(t, "v1.0.0", decodeBody[versionResponse](t, rec).Version)
}

func TestInit_MetricsEndpoint(t *testing.T) {
	router, svcs := newTestRouter(t)
	svcs.recipes.EXPECT().GetRecipe(gomock.Any(), int64(1), int64(1)).Return(models.Recipe{ID: 1}, nil)

	doRequest(t, router, http.MethodGet, "/recipes/1/", goodToken, nil)

	rec := doRequest(t, router, http.MethodGet, "/metrics", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	body := rec.Body.String()
	assert.Contains(t, body, "recipe_keeper_http_requests_total")
	assert.Contains(t, body, `route="/recipes/{id}/"`)
	assert.Contains(t, body, `code="200"`)
}

func newRawRequest(method, path string, body io.Reader) *http.Request {
	return httptest.NewRequest(method, path, body)
}

func serve(router http.Handler, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}
