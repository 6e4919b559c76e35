package cli

import (
	"bytes"
	"context"
	"strconv"

	"github.com/dmitrijs2005/fletes/internal/client/controllers"
	"github.com/dmitrijs2005/fletes/internal/client/export"
)

// Reports lists the months that have a report.
func (a *App) Reports(ctx context.Context) error {
	a.reports.Load(ctx)
	if errMsg, _ := a.reports.Messages(); errMsg != "" {
		a.println(errMsg)
		return nil
	}

	months := a.reports.Months()
	if len(months) == 0 {
		a.println("No hay meses con fletes registrados.")
		return nil
	}
	for _, m := range months {
		a.printf("  %d %2d  %s\n", m.Year, m.Month, m.Description)
	}
	a.println("Descarga con: download <año> <mes>")
	return nil
}

func (a *App) Download(ctx context.Context, args []string) error {
	if len(args) != 2 {
		return usage("download <año> <mes>")
	}
	year, err1 := strconv.Atoi(args[0])
	month, err2 := strconv.Atoi(args[1])
	if err1 != nil || err2 != nil || month < 1 || month > 12 {
		return usage("download <año> <mes>")
	}

	a.printf("Descargando reporte %d-%02d...\n", year, month)
	_, err := a.reports.Download(ctx, year, month)
	a.printReportOutcome(err)
	return nil
}

func (a *App) Range(ctx context.Context, args []string) error {
	if len(args) != 2 {
		return usage("range <AAAA-MM-DD> <AAAA-MM-DD>")
	}

	_, err := a.reports.DownloadRange(ctx, args[0], args[1])
	a.printReportOutcome(err)
	return nil
}

func (a *App) printReportOutcome(err error) {
	errMsg, saved := a.reports.Messages()
	if err != nil {
		if errMsg == "" {
			errMsg = controllers.FriendlyError(err, controllers.MsgDownloadFailed)
		}
		a.println(errMsg)
		return
	}
	a.println("Reporte guardado en", saved)
}

// Stats prints the summary of the current month.
func (a *App) Stats(ctx context.Context) error {
	a.ensureFletes(ctx)
	st := controllers.ComputeMonthStats(a.fletesPage.All(), a.now())

	a.println("Resumen de", st.Label)
	a.printf("  Fletes:          %d\n", st.Count)
	a.printf("  Costo total:     %s\n", controllers.FormatCurrency(st.Total))
	a.printf("  Costo promedio:  %s\n", controllers.FormatCurrency(st.Average))
	return nil
}

// ExportStats writes the current month's summary as a PDF to the report
// sink.
func (a *App) ExportStats(ctx context.Context) error {
	a.ensureFletes(ctx)
	st := controllers.ComputeMonthStats(a.fletesPage.All(), a.now())

	var buf bytes.Buffer
	if err := export.WriteStatsPDF(&buf, st); err != nil {
		a.logger.Error(ctx, "failed to render stats pdf", "error", err)
		a.println("No se pudo generar el PDF.")
		return nil
	}

	where, err := a.sink.Save(ctx, export.StatsPDFName(st), &buf)
	if err != nil {
		a.logger.Error(ctx, "failed to save stats pdf", "error", err)
		a.println("No se pudo guardar el PDF.")
		return nil
	}
	a.println("Resumen guardado en", where)
	return nil
}
