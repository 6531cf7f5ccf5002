// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePrice(t *testing.T) {
	tests := []struct {
		in      string
		want    Price
		wantErr error
	}{
		{in: "23.96", want: 2396},
		{in: "5", want: 500},
		{in: "5.5", want: 550},
		{in: "0.05", want: 5},
		{in: ".25", want: 25},
		{in: " 999.99 ", want: 99999},
		{in: "-1.50", want: -150},
		{in: "1.234", wantErr: ErrPricePrecision},
		{in: "", wantErr: ErrInvalidPrice},
		{in: "-", wantErr: ErrInvalidPrice},
		{in: "abc", wantErr: ErrInvalidPrice},
		{in: "1e3", wantErr: ErrInvalidPrice},
		{in: "1.2.3", wantErr: ErrInvalidPrice},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParsePrice(tt.in)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPrice_String(t *testing.T) {
	assert.Equal(t, "23.96", Price(2396).String())
	assert.Equal(t, "5.00", Price(500).String())
	assert.Equal(t, "0.07", Price(7).String())
	assert.Equal(t, "-1.50", Price(-150).String())
}

func TestPrice_JSON(t *testing.T) {
	var body struct {
		Price Price `json:"price"`
	}

	require.NoError(t, json.Unmarshal([]byte(`{"price":"23.96"}`), &body))
	assert.Equal(t, Price(2396), body.Price)

	require.NoError(t, json.Unmarshal([]byte(`{"price":5.25}`), &body))
	assert.Equal(t, Price(525), body.Price)

	assert.Error(t, json.Unmarshal([]byte(`{"price":"cheap"}`), &body))
	assert.Error(t, json.Unmarshal([]byte(`{"price":true}`), &body))

	out, err := json.Marshal(struct {
		Price Price `json:"price"`
	}{Price: 2396})
	require.NoError(t, err)
	assert.JSONEq(t, `{"price":"23.96"}`, string(out))
}

func TestPrice_ScanValue(t *testing.T) {
	var p Price
	require.NoError(t, p.Scan(int64(1250)))
	assert.Equal(t, Price(1250), p)

	require.NoError(t, p.Scan([]byte("99")))
	assert.Equal(t, Price(99), p)

	assert.Error(t, p.Scan("12.50"))

	v, err := Price(300).Value()
	require.NoError(t, err)
	assert.Equal(t, int64(300), v)
}

func TestRecipeRequest_ApplyTo(t *testing.T) {
	title := "Soup"
	price := Price(500)
	recipe := Recipe{ID: 9, UserID: 3, Title: "Old", TimeMinutes: 10, Link: "http://x", Description: "d"}

	RecipeRequest{Title: &title, Price: &price}.ApplyTo(&recipe)

	assert.Equal(t, Recipe{ID: 9, UserID: 3, Title: "Soup", TimeMinutes: 10, Price: 500, Link: "http://x", Description: "d"}, recipe)
}

func TestRecipeRequest_ToRecipe_IgnoresOwnerInPayload(t *testing.T) {
	var req RecipeRequest
	require.NoError(t, json.Unmarshal([]byte(`{"title":"Soup","time_minutes":5,"price":"5.00","user":42}`), &req))

	r := req.ToRecipe(7)
	assert.Equal(t, int64(7), r.UserID)
	assert.Equal(t, "Soup", r.Title)
	assert.Empty(t, r.Link)
	assert.Empty(t, r.Description)
	assert.False(t, req.IsEmpty())
	assert.True(t, RecipeRequest{}.IsEmpty())
}

func TestSummaries(t *testing.T) {
	got := Summaries([]Recipe{{ID: 2, Title: "b", Description: "long"}, {ID: 1, Title: "a"}})
	assert.Equal(t, []RecipeSummary{{ID: 2, Title: "b"}, {ID: 1, Title: "a"}}, got)

	out, err := json.Marshal(got[0])
	require.NoError(t, err)
	assert.NotContains(t, string(out), "description")
}
