// Package server holds the HTTP server configuration.
//
// While the start command handles the server startup, this package defines the
// configuration structure: the listening port, the API key protecting every
// feature route, and the request body limit.
package server
