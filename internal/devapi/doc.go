// Package devapi is an in-memory stand-in for the fletes REST API. It serves
// the same routes and JSON shapes so the CLI can be run and tested without
// the real backend. Nothing is persisted and reports are CSV, not Excel.
package devapi
