// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package handler

import "errors"

// errNoTransportConfigured is returned by NewHandlers when both
// SERVER_ADDRESS (REST API) and SERVER_GRPC_ADDRESS (health service) are
// empty. The process has nothing to serve and must not start.
var errNoTransportConfigured = errors.New("handlers: neither the REST API nor the gRPC health address is configured")
