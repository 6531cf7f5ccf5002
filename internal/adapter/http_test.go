// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/MKhiriev/recipe-keeper/internal/config"
	"github.com/MKhiriev/recipe-keeper/internal/logger"
	"github.com/MKhiriev/recipe-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAdapter(t *testing.T, serverURL string) *httpServerAdapter {
	t.Helper()

	a, err := NewHTTPServerAdapter(&config.ClientConfig{
		BaseURL:        serverURL,
		RequestTimeout: 5 * time.Second,
	}, logger.Nop())
	require.NoError(t, err)
	return a.(*httpServerAdapter)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func readBody(t *testing.T, r *http.Request) map[string]any {
	t.Helper()

	var body map[string]any
	raw, err := io.ReadAll(r.Body)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(raw, &body))
	return body
}

func ptr[T any](v T) *T { return &v }

// ── base URL ────────────────────────────────────────────────────────────────

func TestNormalizeBaseURL(t *testing.T) {
	tests := []struct {
		raw     string
		want    string
		wantErr bool
	}{
		{raw: "localhost:8080", want: "http://localhost:8080"},
		{raw: " https://api.example.com/ ", want: "https://api.example.com"},
		{raw: "http://127.0.0.1:9000", want: "http://127.0.0.1:9000"},
		{raw: "", wantErr: true},
		{raw: "http://", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, err := normalizeBaseURL(tt.raw)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewHTTPServerAdapter_InvalidAddress(t *testing.T) {
	_, err := NewHTTPServerAdapter(&config.ClientConfig{BaseURL: "  "}, logger.Nop())
	assert.Error(t, err)
}

// ── accounts ────────────────────────────────────────────────────────────────

func TestRegister(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/users/", r.URL.Path)
		assert.Empty(t, r.Header.Get("Authorization"))

		body := readBody(t, r)
		assert.Equal(t, "test@example.com", body["email"])
		assert.Equal(t, "testpass123", body["password"])

		writeJSON(w, http.StatusCreated, models.ProfileResponse{Email: "test@example.com", Name: "Test Name"})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	got, err := a.Register(context.Background(), models.RegisterRequest{
		Email:    "test@example.com",
		Password: "testpass123",
		Name:     "Test Name",
	})

	require.NoError(t, err)
	assert.Equal(t, "Test Name", got.Name)
	assert.Empty(t, a.Token(), "registration does not log in")
}

func TestRegister_ValidationError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{
			Detail: "Invalid input.",
			Fields: map[string]string{"email": "user with this email already exists."},
		})
	}))
	defer srv.Close()

	_, err := newTestAdapter(t, srv.URL).Register(context.Background(), models.RegisterRequest{Email: "test@example.com"})

	require.ErrorIs(t, err, ErrBadRequest)
	assert.Equal(t, "user with this email already exists.", FieldErrors(err)["email"])
	assert.Contains(t, err.Error(), "email: user with this email already exists.")
}

func TestLogin(t *testing.T) {
	t.Run("stores token", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/users/token/", r.URL.Path)
			writeJSON(w, http.StatusOK, models.TokenResponse{Token: "abc"})
		}))
		defer srv.Close()

		a := newTestAdapter(t, srv.URL)
		token, err := a.Login(context.Background(), models.TokenRequest{Email: "test@example.com", Password: "testpass123"})

		require.NoError(t, err)
		assert.Equal(t, "abc", token)
		assert.Equal(t, "abc", a.Token())
	})

	t.Run("bad credentials", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Detail: "Unable to authenticate with provided credentials."})
		}))
		defer srv.Close()

		a := newTestAdapter(t, srv.URL)
		_, err := a.Login(context.Background(), models.TokenRequest{Email: "test@example.com", Password: "wrong"})

		require.ErrorIs(t, err, ErrBadRequest)
		assert.Contains(t, err.Error(), "Unable to authenticate")
		assert.Empty(t, a.Token())
	})

	t.Run("empty token", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, http.StatusOK, models.TokenResponse{})
		}))
		defer srv.Close()

		_, err := newTestAdapter(t, srv.URL).Login(context.Background(), models.TokenRequest{})
		assert.ErrorIs(t, err, ErrEmptyToken)
	})
}

func TestMe_SendsToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Token abc", r.Header.Get("Authorization"))
		writeJSON(w, http.StatusOK, models.ProfileResponse{Email: "test@example.com"})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	a.SetToken(" abc ")

	got, err := a.Me(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "test@example.com", got.Email)
}

func TestUpdateMe(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPatch, r.Method)
		assert.Equal(t, "/users/me/", r.URL.Path)
		assert.Equal(t, "New Name", readBody(t, r)["name"])
		writeJSON(w, http.StatusOK, models.ProfileResponse{Email: "test@example.com", Name: "New Name"})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	a.SetToken("abc")

	got, err := a.UpdateMe(context.Background(), models.ProfileUpdate{Name: ptr("New Name")})
	require.NoError(t, err)
	assert.Equal(t, "New Name", got.Name)
}

func TestAuthedCalls_WithoutToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("no request expected")
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	ctx := context.Background()

	_, err := a.Me(ctx)
	assert.ErrorIs(t, err, ErrNotLoggedIn)
	_, err = a.ListRecipes(ctx)
	assert.ErrorIs(t, err, ErrNotLoggedIn)
	assert.ErrorIs(t, a.DeleteRecipe(ctx, 1), ErrNotLoggedIn)
}

// ── recipes ─────────────────────────────────────────────────────────────────

func TestListRecipes(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/recipes/", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"id":3,"title":"Soup","time_minutes":5,"price":"23.96","link":""}]`))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	a.SetToken("abc")

	got, err := a.ListRecipes(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, int64(3), got[0].ID)
	assert.Equal(t, models.Price(2396), got[0].Price)
}

func TestGetRecipe(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/recipes/3/", r.URL.Path)
			writeJSON(w, http.StatusOK, models.Recipe{ID: 3, Title: "Soup", Description: "Hot"})
		}))
		defer srv.Close()

		a := newTestAdapter(t, srv.URL)
		a.SetToken("abc")

		got, err := a.GetRecipe(context.Background(), 3)
		require.NoError(t, err)
		assert.Equal(t, "Hot", got.Description)
	})

	t.Run("not found", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, http.StatusNotFound, models.ErrorResponse{Detail: "Not found."})
		}))
		defer srv.Close()

		a := newTestAdapter(t, srv.URL)
		a.SetToken("abc")

		_, err := a.GetRecipe(context.Background(), 4)
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestCreateRecipe(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		body := readBody(t, r)
		assert.Equal(t, "Soup", body["title"])
		assert.Equal(t, "23.96", body["price"])
		assert.NotContains(t, body, "description")

		writeJSON(w, http.StatusCreated, models.Recipe{ID: 7, Title: "Soup", TimeMinutes: 5, Price: 2396})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	a.SetToken("abc")

	price := models.Price(2396)
	got, err := a.CreateRecipe(context.Background(), models.RecipeRequest{
		Title:       ptr("Soup"),
		TimeMinutes: ptr(5),
		Price:       &price,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(7), got.ID)
}

func TestUpdateRecipe_Method(t *testing.T) {
	for _, tt := range []struct {
		partial bool
		method  string
	}{
		{partial: true, method: http.MethodPatch},
		{partial: false, method: http.MethodPut},
	} {
		t.Run(tt.method, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, tt.method, r.Method)
				assert.Equal(t, "/recipes/3/", r.URL.Path)
				writeJSON(w, http.StatusOK, models.Recipe{ID: 3, Title: "New"})
			}))
			defer srv.Close()

			a := newTestAdapter(t, srv.URL)
			a.SetToken("abc")

			got, err := a.UpdateRecipe(context.Background(), 3, models.RecipeRequest{Title: ptr("New")}, tt.partial)
			require.NoError(t, err)
			assert.Equal(t, "New", got.Title)
		})
	}
}

func TestDeleteRecipe(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/recipes/3/", r.URL.Path)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	a.SetToken("abc")

	assert.NoError(t, a.DeleteRecipe(context.Background(), 3))
}

func TestVersion(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/version/", r.URL.Path)
		writeJSON(w, http.StatusOK, map[string]string{"version": "1.2.3"})
	}))
	defer srv.Close()

	got, err := newTestAdapter(t, srv.URL).Version(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "1.2.3", got)
}

// ── error mapping ───────────────────────────────────────────────────────────

func TestMapHTTPError(t *testing.T) {
	tests := []struct {
		status int
		body   string
		want   error
	}{
		{http.StatusBadRequest, `{"detail":"Invalid input."}`, ErrBadRequest},
		{http.StatusUnauthorized, `{"detail":"Invalid token."}`, ErrUnauthorized},
		{http.StatusNotFound, `{"detail":"Not found."}`, ErrNotFound},
		{http.StatusMethodNotAllowed, `{"detail":"Method not allowed."}`, ErrMethodNotAllowed},
		{http.StatusInternalServerError, `{"detail":"A server error occurred."}`, ErrInternalServerError},
		{http.StatusBadGateway, `upstream down`, ErrBadGateway},
		{http.StatusTeapot, ``, ErrUnexpectedStatus},
	}

	for _, tt := range tests {
		t.Run(http.StatusText(tt.status), func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			a := newTestAdapter(t, srv.URL)
			_, err := a.Version(context.Background())

			require.ErrorIs(t, err, tt.want)

			var apiErr *APIError
			require.ErrorAs(t, err, &apiErr)
			assert.Equal(t, tt.status, apiErr.Status)
			assert.NotEmpty(t, apiErr.Detail)
			if tt.body != "" && !strings.HasPrefix(tt.body, "{") {
				assert.Equal(t, tt.body, apiErr.Detail)
			}
		})
	}
}
