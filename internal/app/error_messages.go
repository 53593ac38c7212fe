// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// go-flix server handlers, the client adapter and the terminal UI.
//
// All Msg* constants are human-readable message strings that are written into
// HTTP response bodies or shown to the user. Keeping them in one place ensures
// consistent wording between the API and the client.
package app

// API response messages.
const (
	MsgRegistered   = "User registered successfully"
	MsgLoggedIn     = "Login successful"
	MsgTokenIsValid = "Token is valid"

	// MsgRegisterFieldsRequired is returned when user_name, email or password
	// is empty after trimming.
	MsgRegisterFieldsRequired = "Username, email, and password are required"

	// MsgLoginFieldsRequired is returned when user_name or password is empty.
	MsgLoginFieldsRequired = "Username and password are required"

	MsgInvalidEmail    = "Invalid email address"
	MsgFieldTooLong    = "One of the fields is too long"
	MsgPasswordTooLong = "Password must be at most 72 bytes"
	MsgInvalidJSON     = "Invalid request body"

	// MsgUserAlreadyExists is returned when the user name or the e-mail is
	// already registered. The two cases are not told apart.
	MsgUserAlreadyExists = "Username or email already exists"

	// MsgInvalidCredentials is returned for an unknown user and for a wrong
	// password alike.
	MsgInvalidCredentials = "Invalid username or password"

	MsgNoTokenProvided = "No token provided"
	MsgInvalidToken    = "Invalid token"

	MsgUnknownCategory    = "Unknown movie category"
	MsgInvalidMovieID     = "Invalid movie id"
	MsgMovieNotFound      = "Movie not found"
	MsgCatalogUnavailable = "Movie catalog is unavailable"

	MsgMethodNotAllowed    = "Method not allowed"
	MsgRequestTimeout      = "Request timed out"
	MsgInternalServerError = "Internal server error"
)

// Client-side messages shown when the server gave no usable message.
const (
	MsgNetworkError        = "Network error. Please check your connection."
	MsgInvalidRequest      = "Invalid request"
	MsgClientInvalidCreds  = "Invalid credentials"
	MsgServerError         = "Server error. Please try again later."
	MsgUnknownError        = "An error occurred"
	MsgRegisteredPleaseLog = "Registration successful! Please log in."
)
