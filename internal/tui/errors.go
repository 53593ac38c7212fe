// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"

	"github.com/MKhiriev/go-flix/internal/adapter"
	"github.com/MKhiriev/go-flix/internal/service"
)

// ErrUserQuit is returned by Run when the user closed the program with
// ctrl+c.
var ErrUserQuit = errors.New("user quit")

// humanizeError turns a client-side error into the message shown on screen.
func humanizeError(err error) string {
	if err == nil {
		return ""
	}
	if errors.Is(err, service.ErrUnauthenticated) && !errors.Is(err, adapter.ErrNetwork) {
		return "Please sign in to continue."
	}
	return adapter.UserMessage(err)
}
