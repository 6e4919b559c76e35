// Package tokens persists the session's bearer tokens in the client's local
// SQLite database, one row per named slot ("token", "refreshToken").
//
// The slots are the only durable client state. They survive restarts so the
// session can be re-established from the stored access token, and they are
// always cleared together.
package tokens
