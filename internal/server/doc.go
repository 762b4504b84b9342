// Package server runs the HTTP transport of the document server.
//
// It owns the listener lifecycle: startup, signal handling, and graceful
// shutdown.
package server
