// Package client is the HTTP transport for the remote fletes API.
//
// # Overview
//
//  1. Client is the transport-agnostic contract used by the typed wrappers in
//     package api: a JSON round trip (Do) and a streamed file download
//     (Download).
//  2. HTTPClient implements it on net/http. Every request carries the current
//     access token from a TokenSource as a bearer header and a fresh
//     X-Request-ID. There is no retry and no caching.
//  3. InitDatabase / RunMigrations bootstrap the local SQLite file that keeps
//     the session tokens.
//
// # Error Handling
//
// Non-2xx responses become *APIError, which also matches the sentinel errors
// with errors.Is: ErrUnauthorized (401/403), ErrNotFound (404), ErrServer
// (5xx). Transport failures match ErrUnavailable. Errors are never swallowed
// here; interpreting them is up to the caller.
package client
