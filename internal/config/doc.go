// Package config provides configuration loading, merging, and validation
// for the go-flix server and client.
//
// Configuration is assembled from multiple sources in the following priority
// order (later sources override earlier non-zero fields):
//  1. .env file (never overrides variables already set in the environment)
//  2. Environment variables
//  3. Command-line flags
//  4. JSON config file
//
// Fields left empty by every source receive defaults. The entry points are
// [GetStructuredConfig] for the server and [GetClientConfig] for the
// terminal client.
package config
