// Package server holds the HTTP server configuration.
//
// The main application entry point handles the server startup; this package
// only defines the configuration structure for server settings (listen port
// and API key).
//
// # Usage
//
// This package is primarily used by the core/config package to embed server
// settings and by the auth middleware to decide whether requests must be
// authenticated.
package server
