// Package server holds the HTTP server configuration.
//
// The main application entry point handles the server startup; this package
// only defines the configuration structure embedded by core/config and a few
// helpers used when wiring fiber and the auth middleware.
package server
