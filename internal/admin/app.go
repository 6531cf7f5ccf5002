// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package admin

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/MKhiriev/recipe-keeper/internal/config"
	"github.com/MKhiriev/recipe-keeper/internal/logger"
	"github.com/MKhiriev/recipe-keeper/internal/store"
	"golang.org/x/term"
)

// PasswordEnv, when set, is used by createsuperuser instead of prompting.
const PasswordEnv = "SUPERUSER_PASSWORD"

const usage = `usage: admin <command> [flags]

commands:
  createsuperuser -email E [-name N]
  waitfordb
  migrate
`

// App runs one operator command per Run call.
type App struct {
	stdin  *bufio.Reader
	stdout io.Writer

	// terminal seams, replaced in tests
	isTerminal   func() bool
	readPassword func() ([]byte, error)

	openStorages func(ctx context.Context, cfg config.DB, log *logger.Logger) (*store.Storages, error)
	openDB       func(ctx context.Context, cfg config.DB, log *logger.Logger) (*store.DB, error)

	logger *logger.Logger
}

func NewApp(stdin io.Reader, stdout io.Writer, logger *logger.Logger) *App {
	return &App{
		stdin:  bufio.NewReader(stdin),
		stdout: stdout,
		isTerminal: func() bool {
			return term.IsTerminal(int(os.Stdin.Fd()))
		},
		readPassword: func() ([]byte, error) {
			return term.ReadPassword(int(os.Stdin.Fd()))
		},
		openStorages: store.NewStorages,
		openDB:       store.OpenDB,
		logger:       logger,
	}
}

// Run dispatches args[0] to its command with the remaining arguments.
func (a *App) Run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		fmt.Fprint(a.stdout, usage)
		return ErrUnknownCommand
	}

	switch args[0] {
	case "createsuperuser":
		return a.createSuperuser(ctx, args[1:])
	case "waitfordb":
		return a.waitForDB(ctx, args[1:])
	case "migrate":
		return a.migrate(ctx, args[1:])
	default:
		fmt.Fprint(a.stdout, usage)
		return fmt.Errorf("%w: %q", ErrUnknownCommand, args[0])
	}
}
