// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// parseEnv populates cfg from environment variables via the `env` and
// `envPrefix` tags.
func parseEnv(cfg any) error {
	if err := env.Parse(cfg); err != nil {
		return fmt.Errorf("error getting env configs: %w", err)
	}

	return nil
}

// loadDotEnv reads path into the environment without overriding variables
// that are already set. A missing default file is not an error; a missing
// explicitly named one is.
func loadDotEnv(path string) error {
	explicit := path != ""
	if !explicit {
		path = DefaultEnvFile
	}

	err := godotenv.Load(path)
	switch {
	case err == nil:
		return nil
	case !explicit && errors.Is(err, fs.ErrNotExist):
		return nil
	default:
		return fmt.Errorf("error loading env file %q: %w", path, err)
	}
}

// envFilePath resolves the dotenv location before flags are parsed, so the
// file can feed the env source.
func envFilePath(args []string) string {
	if p := os.Getenv("ENV_FILE"); p != "" {
		return p
	}

	for i, arg := range args {
		name, value, hasValue := strings.Cut(strings.TrimLeft(arg, "-"), "=")
		if name != "env-file" || !strings.HasPrefix(arg, "-") {
			continue
		}
		if hasValue {
			return value
		}
		if i+1 < len(args) {
			return args[i+1]
		}
	}

	return ""
}
