// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestNewHTTPClient_Independence(t *testing.T) {
	client1 := NewHTTPClient("http://localhost:8080", time.Second)
	client2 := NewHTTPClient("http://localhost:8080", time.Second)

	if client1.Client == client2.Client {
		t.Fatal("expected independent *resty.Client instances")
	}
}

func TestHTTPClient_SendsTokenAndJSONHeaders(t *testing.T) {
	var gotAuth, gotAccept string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotAccept = r.Header.Get("Accept")
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	client := NewHTTPClient(srv.URL, time.Second)

	resp, err := client.R().SetAuthToken("abc123").Get("/users/me/")
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if resp.StatusCode() != http.StatusNoContent {
		t.Errorf("expected 204, got %d", resp.StatusCode())
	}
	if gotAuth != "Token abc123" {
		t.Errorf("expected 'Token abc123', got %q", gotAuth)
	}
	if gotAccept != "application/json" {
		t.Errorf("expected 'application/json', got %q", gotAccept)
	}
}

func TestHTTPClient_NoTokenNoHeader(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
	}))
	defer srv.Close()

	if _, err := NewHTTPClient(srv.URL, 0).R().Get("/"); err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if gotAuth != "" {
		t.Errorf("expected no Authorization header, got %q", gotAuth)
	}
}
