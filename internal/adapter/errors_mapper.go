// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/MKhiriev/recipe-keeper/models"
	"github.com/go-resty/resty/v2"
)

func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	apiErr := &APIError{Status: resp.StatusCode()}

	var body models.ErrorResponse
	if err := json.Unmarshal(resp.Body(), &body); err == nil {
		apiErr.Detail = body.Detail
		apiErr.Fields = body.Fields
	} else {
		apiErr.Detail = strings.TrimSpace(string(resp.Body()))
	}
	if apiErr.Detail == "" {
		apiErr.Detail = http.StatusText(resp.StatusCode())
	}

	switch resp.StatusCode() {
	case http.StatusBadRequest:
		apiErr.kind = ErrBadRequest
	case http.StatusUnauthorized:
		apiErr.kind = ErrUnauthorized
	case http.StatusForbidden:
		apiErr.kind = ErrForbidden
	case http.StatusNotFound:
		apiErr.kind = ErrNotFound
	case http.StatusMethodNotAllowed:
		apiErr.kind = ErrMethodNotAllowed
	case http.StatusConflict:
		apiErr.kind = ErrConflict
	case http.StatusBadGateway:
		apiErr.kind = ErrBadGateway
	case http.StatusInternalServerError:
		apiErr.kind = ErrInternalServerError
	default:
		apiErr.kind = ErrUnexpectedStatus
	}

	return apiErr
}
