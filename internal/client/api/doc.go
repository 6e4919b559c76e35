// Package api holds one typed wrapper per remote resource (Auth, Lists,
// Fletes). Each call is a single round trip over client.Client; results are
// returned decoded and errors are returned unchanged for the caller to
// interpret.
package api
