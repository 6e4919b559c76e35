package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface is the command surface the REPL dispatches to. The real App
// satisfies it; tests provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	isAdmin() bool

	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	WhoAmI(ctx context.Context) error

	List(ctx context.Context) error
	Next(ctx context.Context) error
	Prev(ctx context.Context) error
	Page(ctx context.Context, args []string) error
	Search(ctx context.Context, args []string) error

	Stats(ctx context.Context) error
	ExportStats(ctx context.Context) error

	New(ctx context.Context) error
	Edit(ctx context.Context, args []string) error
	Delete(ctx context.Context, args []string) error

	Reports(ctx context.Context) error
	Download(ctx context.Context, args []string) error
	Range(ctx context.Context, args []string) error
}

// errUsage is returned by handlers that were called with bad arguments.
var errUsage = errors.New("uso")

// sessionCommands need a signed-in user. Everything else is read-only and
// open to anonymous users; mutations are gated by role in the handlers.
var sessionCommands = map[string]bool{"logout": true, "whoami": true}

// runREPL reads one command per line from reader and dispatches it to a.
// The loop ends on EOF, on "exit"/"quit" or when ctx is done.
//
// Handlers print their own outcome; the REPL only reports usage errors and
// refuses logout/whoami while signed out.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	for {
		if ctx.Err() != nil {
			return
		}
		printlnFn(fmt.Sprintf("fletes %s> ", statusFn()))

		line, err := reader.ReadString('\n')
		if err != nil && (!errors.Is(err, io.EOF) || line == "") {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := strings.ToLower(parts[0]), parts[1:]

		if sessionCommands[cmd] && !a.isLoggedIn() {
			printlnFn("Inicia sesión primero (login).")
			continue
		}

		var cmdErr error
		switch cmd {
		case "help":
			printHelp(a)

		case "login":
			cmdErr = a.Login(ctx)
		case "logout":
			cmdErr = a.Logout(ctx)
		case "whoami":
			cmdErr = a.WhoAmI(ctx)

		case "l", "list":
			cmdErr = a.List(ctx)
		case "n", "next":
			cmdErr = a.Next(ctx)
		case "p", "prev":
			cmdErr = a.Prev(ctx)
		case "page":
			cmdErr = a.Page(ctx, args)
		case "search":
			cmdErr = a.Search(ctx, args)

		case "stats":
			cmdErr = a.Stats(ctx)
		case "export-stats":
			cmdErr = a.ExportStats(ctx)

		case "new":
			cmdErr = a.New(ctx)
		case "edit":
			cmdErr = a.Edit(ctx, args)
		case "delete":
			cmdErr = a.Delete(ctx, args)

		case "reports":
			cmdErr = a.Reports(ctx)
		case "download":
			cmdErr = a.Download(ctx, args)
		case "range":
			cmdErr = a.Range(ctx, args)

		case "exit", "quit":
			printlnFn("¡Hasta luego!")
			return

		default:
			printlnFn("Comando desconocido:", cmd)
		}

		if errors.Is(cmdErr, errUsage) {
			printlnFn(cmdErr.Error())
		}
		if errors.Is(cmdErr, io.EOF) {
			return
		}
	}
}

func printHelp(a execIface) {
	switch {
	case !a.isLoggedIn():
		printlnFn("Comandos: (l)ist, (n)ext, (p)rev, page <n>, search <texto>,")
		printlnFn("          stats, export-stats, reports, download <año> <mes>, range <inicio> <fin>, login, exit")
	case a.isAdmin():
		printlnFn("Comandos: (l)ist, (n)ext, (p)rev, page <n>, search <texto>, new, edit <id>, delete <id>,")
		printlnFn("          stats, export-stats, reports, download <año> <mes>, range <inicio> <fin>, whoami, logout, exit")
	default:
		printlnFn("Comandos: (l)ist, (n)ext, (p)rev, page <n>, search <texto>,")
		printlnFn("          stats, export-stats, reports, download <año> <mes>, range <inicio> <fin>, whoami, logout, exit")
	}
}

func usage(text string) error {
	return fmt.Errorf("%w: %s", errUsage, text)
}
