// Package cli provides the interactive fletes command-line client.
//
// It wires configuration, the local token database, the API client, the
// session and the page controllers, and runs a REPL on top of them. Every
// controller call happens on the REPL goroutine.
//
// Commands:
//   - login / logout / whoami
//   - list, next, prev, page <n>, search <term>
//   - stats, export-stats
//   - new, edit <id>, delete <id> (Admin only)
//   - reports, download <year> <month>, range <start> <end>
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
package cli
