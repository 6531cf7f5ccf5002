// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package admin implements the operator commands of cmd/admin:
//
//	createsuperuser -email E [-name N]   create a staff superuser
//	waitfordb                            block until the database answers
//	migrate                              apply pending migrations
//
// Every command accepts the usual configuration flags (-d, -env-file, -c ...).
package admin
