// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks request bodies at the service boundary.
//
// Every error returned from this package wraps [ErrValidation]. Callers may
// restrict a check to named fields (see the Field* constants).
package validators

import "context"

//go:generate mockgen -source=interfaces.go -destination=../mock/validator_mock.go -package=mock

// Validator validates a request value, optionally only the named fields.
type Validator interface {

	// Validate validates the provided input and optionally
	// restricts validation to specific named fields.
	Validate(context.Context, any, ...string) error
}
