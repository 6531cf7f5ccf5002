// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"flag"
	"fmt"
	"net"
	"os"
	"strconv"
	"time"
)

// NetAddress holds a host and port. It implements flag.Value.
type NetAddress struct {
	Host string
	Port int
}

// parseFlags registers the configuration flags on fs and parses args.
// A nil fs gets a fresh ContinueOnError set so repeated calls are safe.
//
// Flags:
//
//	-a            HTTP listen address host:port
//	-grpc-address gRPC listen address host:port
//	-d            database DSN
//	-c / -config  JSON config file
//	-env-file     dotenv file
//	-server       API address used by the client
//	-request-timeout, -shutdown-timeout, -db-wait-interval durations
//	-db-wait-attempts startup ping attempts
//	-skip-migrations  do not migrate on start
//	-log-level, -log-file
func parseFlags(fs *flag.FlagSet, args []string) (*StructuredConfig, error) {
	if fs == nil {
		fs = flag.NewFlagSet(os.Args[0], flag.ContinueOnError)
	}

	var serverAddress, grpcServerAddress NetAddress
	var databaseDSN, jsonConfigPath, envFile, clientServer string
	var logLevel, logFile string
	var requestTimeout, shutdownTimeout, waitInterval time.Duration
	var waitAttempts int
	var skipMigrations bool

	fs.Var(&serverAddress, "a", "HTTP address host:port")
	fs.Var(&grpcServerAddress, "grpc-address", "gRPC address host:port")
	fs.StringVar(&databaseDSN, "d", "", "Database DSN")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&envFile, "env-file", "", "dotenv file path")
	fs.StringVar(&clientServer, "server", "", "API address for the client")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s)")
	fs.DurationVar(&shutdownTimeout, "shutdown-timeout", 0, "Graceful shutdown timeout")
	fs.DurationVar(&waitInterval, "db-wait-interval", 0, "Pause between database pings")
	fs.IntVar(&waitAttempts, "db-wait-attempts", 0, "Database ping attempts at startup")
	fs.BoolVar(&skipMigrations, "skip-migrations", false, "Do not apply migrations on start")
	fs.StringVar(&logLevel, "log-level", "", "Log level")
	fs.StringVar(&logFile, "log-file", "", "Client log file")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		Storage: Storage{DB: DB{
			DSN:            databaseDSN,
			WaitAttempts:   waitAttempts,
			WaitInterval:   waitInterval,
			SkipMigrations: skipMigrations,
		}},
		Server: Server{
			HTTPAddress:     serverAddress.String(),
			GRPCAddress:     grpcServerAddress.String(),
			RequestTimeout:  requestTimeout,
			ShutdownTimeout: shutdownTimeout,
		},
		Adapter: Adapter{
			HTTPAddress:    clientServer,
			RequestTimeout: requestTimeout,
		},
		Log:          Log{Level: logLevel, File: logFile},
		JSONFilePath: jsonConfigPath,
		EnvFilePath:  envFile,
	}, nil
}

// String returns host:port, or "" when nothing is set.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return net.JoinHostPort(a.Host, strconv.Itoa(a.Port))
}

// Set parses host:port. The host may be empty, "localhost" or an IP literal.
func (a *NetAddress) Set(s string) error {
	host, rawPort, err := net.SplitHostPort(s)
	if err != nil {
		return errors.New("need address in a form `host:port`")
	}

	port, err := strconv.Atoi(rawPort)
	if err != nil {
		return err
	}
	if port < 1 || port > 65535 {
		return errors.New("port number must be in 1..65535")
	}

	if host != "" && host != "localhost" && net.ParseIP(host) == nil {
		return errors.New("incorrect IP-address provided")
	}

	a.Host = host
	a.Port = port
	return nil
}
