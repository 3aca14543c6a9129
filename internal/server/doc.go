// Package server runs the webhook HTTP transport.
//
// It owns the HTTP server lifecycle: startup, OS signal handling, and
// graceful shutdown with a drain of in-flight update deliveries.
package server
