// Package controllers holds the screen logic of the client: the fletes list
// with paging, search and delete confirmation, the create/edit form, the
// report downloads, the login form and the monthly summary.
//
// Controllers keep their own state and user-facing messages; they never
// print. The REPL reads them back after each command.
package controllers
