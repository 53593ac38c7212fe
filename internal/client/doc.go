// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the interactive client application runtime.
//
// It restores the persisted session, picks the backend (the remote API over
// HTTP, or the same API stack served in-process in stub mode) and runs the
// terminal UI until the user quits.
package client
