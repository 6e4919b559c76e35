package cli

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/dmitrijs2005/fletes/internal/client/api"
	"github.com/dmitrijs2005/fletes/internal/client/client"
	"github.com/dmitrijs2005/fletes/internal/client/config"
	"github.com/dmitrijs2005/fletes/internal/client/controllers"
	"github.com/dmitrijs2005/fletes/internal/client/export"
	"github.com/dmitrijs2005/fletes/internal/client/repositories/tokens"
	"github.com/dmitrijs2005/fletes/internal/client/session"
	"github.com/dmitrijs2005/fletes/internal/common"
	"github.com/dmitrijs2005/fletes/internal/logging"
)

type App struct {
	config *config.Config
	logger logging.Logger
	db     *sql.DB

	session *session.Store
	sink    export.Sink

	loginPage  *controllers.LoginPage
	fletesPage *controllers.FletesPage
	form       *controllers.FleteForm
	reports    *controllers.ReportsPage

	reader *bufio.Reader
	out    io.Writer
	now    func() time.Time

	// backToList is set by the form once a save has been shown.
	backToList bool
}

// NewApp wires the client against the terminal.
func NewApp(ctx context.Context, c *config.Config) (*App, error) {
	logger := logging.NewText(os.Stderr, c.LogLevel)
	return newApp(ctx, c, logger, bufio.NewReader(os.Stdin), os.Stdout, nil)
}

func newApp(ctx context.Context, c *config.Config, logger logging.Logger, reader *bufio.Reader, out io.Writer, hc *client.HTTPClient) (*App, error) {
	db, err := client.InitDatabase(ctx, c.DatabasePath)
	if err != nil {
		return nil, fmt.Errorf("error initializing database: %w", err)
	}

	if hc == nil {
		hc, err = client.NewHTTPClient(c.APIBaseURL, c.RequestTimeout, client.WithLogger(logger))
		if err != nil {
			_ = db.Close()
			return nil, err
		}
	}

	sink, err := newSink(ctx, c, logger)
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	authAPI := api.NewAuth(hc)
	sess := session.New(tokens.NewStore(db), authAPI, logger)
	hc.SetTokenSource(sess)

	lists := api.NewLists(hc)
	fletes := api.NewFletes(hc)

	a := &App{
		config:  c,
		logger:  logger,
		db:      db,
		session: sess,
		sink:    sink,
		reader:  reader,
		out:     out,
		now:     time.Now,
	}
	a.loginPage = controllers.NewLoginPage(authAPI, sess, logger)
	a.fletesPage = controllers.NewFletesPage(lists, fletes, logger)
	a.reports = controllers.NewReportsPage(fletes, sink, logger)
	a.form = controllers.NewFleteForm(lists, fletes, logger, controllers.FormOptions{
		NoCostSuppliers: c.NoCostSuppliers,
		SuccessDelay:    c.SuccessDelay,
		// Runs on the REPL goroutine so the form and list never race.
		AfterFunc: func(d time.Duration, f func()) {
			time.Sleep(d)
			f()
		},
		OnSuccess: func() { a.backToList = true },
		OnCancel:  func() { a.println("Captura cancelada.") },
	})
	return a, nil
}

// newSink saves reports under ReportsDir and, when a bucket is configured,
// mirrors them to S3.
func newSink(ctx context.Context, c *config.Config, logger logging.Logger) (export.Sink, error) {
	local := export.NewLocalSink(c.ReportsDir)
	if c.S3Bucket == "" {
		return local, nil
	}

	archive, err := export.NewS3Sink(ctx, export.S3Options{
		Bucket:    c.S3Bucket,
		Prefix:    c.S3Prefix,
		Region:    c.S3Region,
		Endpoint:  c.S3BaseEndpoint,
		AccessKey: c.S3AccessKey,
		SecretKey: c.S3SecretKey,
	})
	if err != nil {
		return nil, fmt.Errorf("s3 archive: %w", err)
	}
	return &export.MirrorSink{Primary: local, Archive: archive, Logger: logger}, nil
}

// Run restores the session and blocks in the REPL until the user exits.
func (a *App) Run(ctx context.Context) {
	defer a.db.Close()

	a.session.Init(ctx)
	<-a.session.Ready()

	a.println("Fletes CLI (escribe 'help' para ver los comandos)")
	if a.isLoggedIn() {
		a.println("Sesión restaurada:", a.session.Identity().Name)
	}

	runREPL(ctx, a, a.status, a.reader)
}

func (a *App) isLoggedIn() bool {
	return a.session.IsAuthenticated()
}

func (a *App) isAdmin() bool {
	return a.session.IsAdmin()
}

func (a *App) status() string {
	id := a.session.Identity()
	if id == nil {
		return "(sin sesión)"
	}
	if id.Role == common.AdminRole {
		return fmt.Sprintf("(%s, %s)", id.Name, id.Role)
	}
	return fmt.Sprintf("(%s)", id.Name)
}

func (a *App) ask(prompt string) (string, error) {
	return getSimpleText(a.reader, prompt, a.out)
}

func (a *App) println(args ...any) {
	fmt.Fprintln(a.out, args...)
}

func (a *App) printf(format string, args ...any) {
	fmt.Fprintf(a.out, format, args...)
}
