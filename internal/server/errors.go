// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "errors"

// errNoTransports is returned by NewServer when no listener can be built
// from the handlers it was given.
var errNoTransports = errors.New("server: no REST or gRPC listener to run")
