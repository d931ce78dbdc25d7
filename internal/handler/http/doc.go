// Package http implements the HTTP transport of the auth service.
//
// It exposes route wiring, request handlers and middleware. Request tracing,
// access logging, panic recovery, request timeouts and bearer-token
// authentication are handled here before requests reach the service layer.
//
// Routes:
//
//	GET  /health   liveness and storage reachability
//	POST /login    exchange username and password for a token
//	GET  /verify   public placeholder endpoint
//	GET  /users    list usernames, requires "Authorization: Bearer <token>"
//	GET  /version  build version as plain text
//	GET  /metrics  prometheus exposition
package http
