// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"testing"

	"github.com/MKhiriev/recipe-keeper/internal/service"
	"github.com/MKhiriev/recipe-keeper/internal/validators"
	"github.com/MKhiriev/recipe-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func sampleRecipe() models.Recipe {
	return models.Recipe{
		ID:          3,
		UserID:      testUser.UserID,
		Title:       "Sample recipe",
		TimeMinutes: 10,
		Price:       500,
		Link:        "https://example.com/recipe.pdf",
		Description: "Sample description",
	}
}

func TestListRecipes(t *testing.T) {
	router, svcs := newTestRouter(t)
	svcs.recipes.EXPECT().ListRecipes(gomock.Any(), testUser.UserID).
		Return([]models.Recipe{sampleRecipe()}, nil)

	rec := doRequest(t, router, http.MethodGet, "/recipes/", goodToken, nil)

	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody[[]map[string]any](t, rec)
	require.Len(t, body, 1)
	assert.Equal(t, map[string]any{
		"id":           float64(3),
		"title":        "Sample recipe",
		"time_minutes": float64(10),
		"price":        "5.00",
		"link":         "https://example.com/recipe.pdf",
	}, body[0])
}

func TestListRecipes_Empty(t *testing.T) {
	router, svcs := newTestRouter(t)
	svcs.recipes.EXPECT().ListRecipes(gomock.Any(), testUser.UserID).Return(nil, nil)

	rec := doRequest(t, router, http.MethodGet, "/recipes/", goodToken, nil)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
}

func TestCreateRecipe(t *testing.T) {
	t.Run("created with owner from token", func(t *testing.T) {
		router, svcs := newTestRouter(t)

		svcs.recipes.EXPECT().CreateRecipe(gomock.Any(), testUser.UserID, gomock.Any()).DoAndReturn(
			func(_ any, ownerID int64, req models.RecipeRequest) (models.Recipe, error) {
				r := req.ToRecipe(ownerID)
				r.ID = 7
				return r, nil
			},
		)

		rec := doRequest(t, router, http.MethodPost, "/recipes/", goodToken, map[string]any{
			"title":        "Chocolate cheesecake",
			"time_minutes": 30,
			"price":        "5.00",
			"user":         999,
		})

		require.Equal(t, http.StatusCreated, rec.Code)
		body := decodeBody[map[string]any](t, rec)
		assert.Equal(t, float64(7), body["id"])
		assert.Equal(t, "Chocolate cheesecake", body["title"])
		assert.Equal(t, "5.00", body["price"])
		assert.Equal(t, "", body["link"])
		assert.Equal(t, "", body["description"])
		assert.NotContains(t, body, "user")
	})

	t.Run("numeric price is accepted", func(t *testing.T) {
		router, svcs := newTestRouter(t)

		svcs.recipes.EXPECT().CreateRecipe(gomock.Any(), testUser.UserID, gomock.Any()).DoAndReturn(
			func(_ any, ownerID int64, req models.RecipeRequest) (models.Recipe, error) {
				require.NotNil(t, req.Price)
				assert.Equal(t, models.Price(2396), *req.Price)
				return req.ToRecipe(ownerID), nil
			},
		)

		rec := doRequest(t, router, http.MethodPost, "/recipes/", goodToken, `{"title":"Soup","time_minutes":5,"price":23.96}`)
		require.Equal(t, http.StatusCreated, rec.Code)
	})

	t.Run("validation failure", func(t *testing.T) {
		router, svcs := newTestRouter(t)
		ve := validators.NewValidationError(validators.FieldTitle, validators.MsgRequired)
		ve.Add(validators.FieldPrice, validators.MsgRequired)
		svcs.recipes.EXPECT().CreateRecipe(gomock.Any(), testUser.UserID, gomock.Any()).Return(models.Recipe{}, ve)

		rec := doRequest(t, router, http.MethodPost, "/recipes/", goodToken, map[string]any{"time_minutes": 5})

		require.Equal(t, http.StatusBadRequest, rec.Code)
		body := decodeBody[models.ErrorResponse](t, rec)
		assert.Equal(t, validators.MsgRequired, body.Fields["title"])
		assert.Equal(t, validators.MsgRequired, body.Fields["price"])
	})

	t.Run("price with three decimals", func(t *testing.T) {
		router, _ := newTestRouter(t)

		rec := doRequest(t, router, http.MethodPost, "/recipes/", goodToken, `{"title":"Soup","time_minutes":5,"price":"1.234"}`)

		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, validators.MsgPricePrecision, decodeBody[models.ErrorResponse](t, rec).Fields["price"])
	})

	t.Run("price that is not a number", func(t *testing.T) {
		router, _ := newTestRouter(t)

		rec := doRequest(t, router, http.MethodPost, "/recipes/", goodToken, `{"title":"Soup","time_minutes":5,"price":"cheap"}`)

		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, validators.MsgPriceInvalid, decodeBody[models.ErrorResponse](t, rec).Fields["price"])
	})
}

func TestGetRecipe(t *testing.T) {
	t.Run("own recipe", func(t *testing.T) {
		router, svcs := newTestRouter(t)
		svcs.recipes.EXPECT().GetRecipe(gomock.Any(), int64(3), testUser.UserID).Return(sampleRecipe(), nil)

		rec := doRequest(t, router, http.MethodGet, "/recipes/3/", goodToken, nil)

		require.Equal(t, http.StatusOK, rec.Code)
		body := decodeBody[map[string]any](t, rec)
		assert.Equal(t, "Sample description", body["description"])
	})

	t.Run("someone else's recipe looks missing", func(t *testing.T) {
		router, svcs := newTestRouter(t)
		svcs.recipes.EXPECT().GetRecipe(gomock.Any(), int64(4), testUser.UserID).Return(models.Recipe{}, service.ErrRecipeNotFound)

		rec := doRequest(t, router, http.MethodGet, "/recipes/4/", goodToken, nil)

		require.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, detailNotFound, decodeBody[models.ErrorResponse](t, rec).Detail)
	})

	for _, id := range []string{"abc", "0", "-1", "99999999999999999999"} {
		t.Run("invalid id "+id, func(t *testing.T) {
			router, _ := newTestRouter(t)

			rec := doRequest(t, router, http.MethodGet, "/recipes/"+id+"/", goodToken, nil)
			assert.Equal(t, http.StatusNotFound, rec.Code)
		})
	}
}

func TestUpdateRecipe(t *testing.T) {
	t.Run("put is a full update", func(t *testing.T) {
		router, svcs := newTestRouter(t)

		svcs.recipes.EXPECT().UpdateRecipe(gomock.Any(), int64(3), testUser.UserID, gomock.Any(), false).DoAndReturn(
			func(_ any, _, _ int64, req models.RecipeRequest, _ bool) (models.Recipe, error) {
				r := sampleRecipe()
				req.ApplyTo(&r)
				return r, nil
			},
		)

		rec := doRequest(t, router, http.MethodPut, "/recipes/3/", goodToken, map[string]any{
			"title":        "Spaghetti carbonara",
			"time_minutes": 25,
			"price":        "5.00",
			"link":         "",
			"description":  "",
		})

		require.Equal(t, http.StatusOK, rec.Code)
		body := decodeBody[map[string]any](t, rec)
		assert.Equal(t, "Spaghetti carbonara", body["title"])
		assert.Equal(t, "", body["link"])
	})

	t.Run("patch is partial", func(t *testing.T) {
		router, svcs := newTestRouter(t)

		svcs.recipes.EXPECT().UpdateRecipe(gomock.Any(), int64(3), testUser.UserID, gomock.Any(), true).DoAndReturn(
			func(_ any, _, _ int64, req models.RecipeRequest, _ bool) (models.Recipe, error) {
				assert.Nil(t, req.Price)
				r := sampleRecipe()
				req.ApplyTo(&r)
				return r, nil
			},
		)

		rec := doRequest(t, router, http.MethodPatch, "/recipes/3/", goodToken, map[string]any{
			"title": "New recipe title",
			"user":  2,
		})

		require.Equal(t, http.StatusOK, rec.Code)
		body := decodeBody[map[string]any](t, rec)
		assert.Equal(t, "New recipe title", body["title"])
		assert.Equal(t, "5.00", body["price"])
	})

	t.Run("put with missing fields", func(t *testing.T) {
		router, svcs := newTestRouter(t)
		svcs.recipes.EXPECT().UpdateRecipe(gomock.Any(), int64(3), testUser.UserID, gomock.Any(), false).
			Return(models.Recipe{}, validators.NewValidationError(validators.FieldPrice, validators.MsgRequired))

		rec := doRequest(t, router, http.MethodPut, "/recipes/3/", goodToken, map[string]any{"title": "x"})

		require.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("someone else's recipe", func(t *testing.T) {
		router, svcs := newTestRouter(t)
		svcs.recipes.EXPECT().UpdateRecipe(gomock.Any(), int64(4), testUser.UserID, gomock.Any(), true).
			Return(models.Recipe{}, service.ErrRecipeNotFound)

		rec := doRequest(t, router, http.MethodPatch, "/recipes/4/", goodToken, map[string]any{"title": "x"})

		require.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestDeleteRecipe(t *testing.T) {
	t.Run("deleted", func(t *testing.T) {
		router, svcs := newTestRouter(t)
		svcs.recipes.EXPECT().DeleteRecipe(gomock.Any(), int64(3), testUser.UserID).Return(nil)

		rec := doRequest(t, router, http.MethodDelete, "/recipes/3/", goodToken, nil)

		assert.Equal(t, http.StatusNoContent, rec.Code)
		assert.Empty(t, rec.Body.Bytes())
	})

	t.Run("missing", func(t *testing.T) {
		router, svcs := newTestRouter(t)
		svcs.recipes.EXPECT().DeleteRecipe(gomock.Any(), int64(3), testUser.UserID).Return(service.ErrRecipeNotFound)

		rec := doRequest(t, router, http.MethodDelete, "/recipes/3/", goodToken, nil)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}
