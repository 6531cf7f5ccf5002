// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"fmt"
	"strings"
	"time"

	"github.com/mattn/go-sqlite3"

	"github.com/MKhiriev/recipe-keeper/models"
)

type rowScanner interface {
	Scan(dest ...any) error
}

// timeScanner accepts time.Time from pgx and sqlite, and the text form
// sqlite hands back when it cannot see a column's declared type (RETURNING).
type timeScanner struct {
	dst   *time.Time
	valid bool
}

func (s *timeScanner) Scan(value any) error {
	switch v := value.(type) {
	case nil:
		s.valid = false
		return nil
	case time.Time:
		*s.dst, s.valid = v, true
		return nil
	case []byte:
		return s.parse(string(v))
	case string:
		return s.parse(v)
	default:
		return fmt.Errorf("scan time: unsupported type %T", value)
	}
}

func (s *timeScanner) parse(text string) error {
	text = strings.TrimSuffix(text, "Z")
	for _, layout := range sqlite3.SQLiteTimestampFormats {
		if t, err := time.ParseInLocation(layout, text, time.UTC); err == nil {
			*s.dst, s.valid = t, true
			return nil
		}
	}
	return fmt.Errorf("scan time: cannot parse %q", text)
}

func scanUser(row rowScanner) (models.User, error) {
	var u models.User
	var lastLogin time.Time
	lastLoginScanner := &timeScanner{dst: &lastLogin}

	err := row.Scan(
		&u.UserID, &u.Email, &u.Name, &u.PasswordHash,
		&u.IsActive, &u.IsStaff, &u.IsSuperuser,
		lastLoginScanner, &timeScanner{dst: &u.CreatedAt},
	)
	if err != nil {
		return models.User{}, err
	}

	if lastLoginScanner.valid {
		u.LastLogin = &lastLogin
	}
	return u, nil
}

func scanToken(row rowScanner) (models.AuthToken, error) {
	var t models.AuthToken
	err := row.Scan(&t.Key, &t.UserID, &timeScanner{dst: &t.CreatedAt})
	return t, err
}

func scanRecipe(row rowScanner) (models.Recipe, error) {
	var r models.Recipe
	err := row.Scan(
		&r.ID, &r.UserID, &r.Title, &r.TimeMinutes, &r.Price,
		&r.Link, &r.Description,
		&timeScanner{dst: &r.CreatedAt}, &timeScanner{dst: &r.UpdatedAt},
	)
	return r, err
}
