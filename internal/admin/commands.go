// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package admin

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"maps"
	"os"
	"slices"
	"strings"

	"github.com/MKhiriev/recipe-keeper/internal/config"
	"github.com/MKhiriev/recipe-keeper/internal/service"
	"github.com/MKhiriev/recipe-keeper/internal/validators"
	"github.com/MKhiriev/recipe-keeper/models"
)

func (a *App) createSuperuser(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("createsuperuser", flag.ContinueOnError)
	fs.SetOutput(a.stdout)
	email := fs.String("email", "", "Superuser email")
	name := fs.String("name", "", "Superuser display name")

	cfg, err := config.GetAdminConfig(fs, args)
	if err != nil {
		return fmt.Errorf("error getting configs: %w", err)
	}
	if strings.TrimSpace(*email) == "" {
		return validators.NewValidationError(validators.FieldEmail, validators.MsgRequired)
	}

	password, err := a.password()
	if err != nil {
		return err
	}

	storages, err := a.openStorages(ctx, cfg.Storage.DB, a.logger)
	if err != nil {
		return fmt.Errorf("error creating storages: %w", err)
	}
	defer storages.Close()

	users := service.NewUserValidationService().Wrap(service.NewUserService(storages.UserRepository, a.logger))
	user, err := users.CreateSuperuser(ctx, models.UserCreate{
		Email:    *email,
		Password: password,
		Name:     *name,
	})
	if err != nil {
		a.printValidation(err)
		return err
	}

	a.logger.Info().Int64("id", user.UserID).Msg("superuser created")
	fmt.Fprintln(a.stdout, "Superuser created successfully.")
	return nil
}

// password takes the password from PasswordEnv, from a non-interactive
// stdin line, or from two silent terminal prompts that must match.
func (a *App) password() (string, error) {
	if pw := os.Getenv(PasswordEnv); pw != "" {
		return pw, nil
	}

	if !a.isTerminal() {
		line, err := a.stdin.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return "", fmt.Errorf("error reading password: %w", err)
		}
		line = strings.TrimRight(line, "\r\n")
		if line == "" {
			return "", ErrEmptyPassword
		}
		return line, nil
	}

	fmt.Fprint(a.stdout, "Password: ")
	first, err := a.readPassword()
	fmt.Fprintln(a.stdout)
	if err != nil {
		return "", fmt.Errorf("error reading password: %w", err)
	}

	fmt.Fprint(a.stdout, "Password (again): ")
	second, err := a.readPassword()
	fmt.Fprintln(a.stdout)
	if err != nil {
		return "", fmt.Errorf("error reading password: %w", err)
	}

	if string(first) != string(second) {
		return "", ErrPasswordMismatch
	}
	if len(first) == 0 {
		return "", ErrEmptyPassword
	}
	return string(first), nil
}

func (a *App) printValidation(err error) {
	ve, ok := validators.AsValidationError(err)
	if !ok {
		return
	}
	for _, f := range slices.Sorted(maps.Keys(ve.Fields)) {
		fmt.Fprintf(a.stdout, "Error: %s: %s\n", f, ve.Fields[f])
	}
}

func (a *App) waitForDB(ctx context.Context, args []string) error {
	cfg, err := config.GetAdminConfig(nil, args)
	if err != nil {
		return fmt.Errorf("error getting configs: %w", err)
	}

	db, err := a.openDB(ctx, cfg.Storage.DB, a.logger)
	if err != nil {
		return err
	}
	defer db.Close()

	fmt.Fprintln(a.stdout, "Database available!")
	return nil
}

func (a *App) migrate(ctx context.Context, args []string) error {
	cfg, err := config.GetAdminConfig(nil, args)
	if err != nil {
		return fmt.Errorf("error getting configs: %w", err)
	}

	db, err := a.openDB(ctx, cfg.Storage.DB, a.logger)
	if err != nil {
		return err
	}
	defer db.Close()

	if err = db.Migrate(ctx); err != nil {
		return fmt.Errorf("error applying migrations: %w", err)
	}

	version, err := db.SchemaVersion(ctx)
	if err != nil {
		return fmt.Errorf("error reading schema version: %w", err)
	}

	fmt.Fprintf(a.stdout, "Schema at version %d.\n", version)
	return nil
}
