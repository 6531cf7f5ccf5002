// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestWriteJSON(t *testing.T) {
	tests := []struct {
		name   string
		data   any
		status int
		body   string
	}{
		{name: "object", data: map[string]string{"token": "abc"}, status: http.StatusOK, body: `{"token":"abc"}`},
		{name: "created", data: map[string]string{"email": "a@b.io"}, status: http.StatusCreated, body: `{"email":"a@b.io"}`},
		{name: "empty list", data: []int{}, status: http.StatusOK, body: `[]`},
		{name: "nil", data: nil, status: http.StatusOK, body: `null`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()

			n, err := WriteJSON(w, tt.data, tt.status)
			if err != nil {
				t.Fatalf("expected no error, got: %v", err)
			}
			if n != len(tt.body) {
				t.Errorf("expected %d bytes written, got %d", len(tt.body), n)
			}
			if w.Code != tt.status {
				t.Errorf("expected status %d, got %d", tt.status, w.Code)
			}
			if ct := w.Header().Get("Content-Type"); ct != "application/json" {
				t.Errorf("expected Content-Type 'application/json', got '%s'", ct)
			}
			if w.Body.String() != tt.body {
				t.Errorf("expected body %s, got %s", tt.body, w.Body.String())
			}
		})
	}
}

func TestWriteJSON_InvalidData(t *testing.T) {
	w := httptest.NewRecorder()

	// channels cannot be marshaled to JSON
	_, err := WriteJSON(w, make(chan int), http.StatusOK)

	if err == nil {
		t.Fatal("expected error for non-serializable data, got nil")
	}
	if w.Code != http.StatusInternalServerError {
		t.Errorf("expected status %d, got %d", http.StatusInternalServerError, w.Code)
	}
}

func TestDecodeJSON(t *testing.T) {
	type payload struct {
		Title string `json:"title"`
	}

	tests := []struct {
		name    string
		body    string
		want    string
		wantErr error
	}{
		{name: "valid", body: `{"title":"Soup"}`, want: "Soup"},
		{name: "unknown fields ignored", body: `{"title":"Soup","user":7}`, want: "Soup"},
		{name: "empty", body: ``, wantErr: ErrEmptyBody},
		{name: "malformed", body: `{"title":`, wantErr: ErrMalformedJSON},
		{name: "wrong type", body: `{"title":5}`, wantErr: ErrMalformedJSON},
		{name: "trailing value", body: `{"title":"a"} {"title":"b"}`, wantErr: ErrMalformedJSON},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodPost, "/recipes/", strings.NewReader(tt.body))

			var got payload
			err := DecodeJSON(r, &got)

			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("expected %v, got %v", tt.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("expected no error, got: %v", err)
			}
			if got.Title != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got.Title)
			}
		})
	}
}
