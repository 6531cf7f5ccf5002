// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig is the on-disk JSON layout.
type StructuredJSONConfig struct {
	App struct {
		Version    string `json:"version"`
		TokenBytes int    `json:"token_bytes"`
	} `json:"app,omitempty"`

	Storage struct {
		DB struct {
			DSN            string   `json:"dsn"`
			WaitAttempts   int      `json:"wait_attempts"`
			WaitInterval   Duration `json:"wait_interval"`
			SkipMigrations bool     `json:"skip_migrations"`
		} `json:"db,omitempty"`
	} `json:"storage,omitempty"`

	Server struct {
		HTTPAddress     string   `json:"http_address"`
		GRPCAddress     string   `json:"grpc_address"`
		RequestTimeout  Duration `json:"request_timeout"`
		ShutdownTimeout Duration `json:"shutdown_timeout"`
	} `json:"server,omitempty"`

	Adapter struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"adapter,omitempty"`

	Log struct {
		Level string `json:"level"`
		File  string `json:"file"`
	} `json:"log,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	return &StructuredConfig{
		App: App{
			Version:    jsonCfg.App.Version,
			TokenBytes: jsonCfg.App.TokenBytes,
		},
		Storage: Storage{DB: DB{
			DSN:            jsonCfg.Storage.DB.DSN,
			WaitAttempts:   jsonCfg.Storage.DB.WaitAttempts,
			WaitInterval:   time.Duration(jsonCfg.Storage.DB.WaitInterval),
			SkipMigrations: jsonCfg.Storage.DB.SkipMigrations,
		}},
		Server: Server{
			HTTPAddress:     jsonCfg.Server.HTTPAddress,
			GRPCAddress:     jsonCfg.Server.GRPCAddress,
			RequestTimeout:  time.Duration(jsonCfg.Server.RequestTimeout),
			ShutdownTimeout: time.Duration(jsonCfg.Server.ShutdownTimeout),
		},
		Adapter: Adapter{
			HTTPAddress:    jsonCfg.Adapter.HTTPAddress,
			RequestTimeout: time.Duration(jsonCfg.Adapter.RequestTimeout),
		},
		Log: Log{
			Level: jsonCfg.Log.Level,
			File:  jsonCfg.Log.File,
		},
	}, nil
}

// Duration unmarshals from "1h"-style strings or nanosecond numbers.
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return fmt.Errorf("invalid duration %s", string(b))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
