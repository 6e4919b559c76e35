package cli

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/dmitrijs2005/fletes/internal/client/controllers"
	"github.com/dmitrijs2005/fletes/internal/client/models"
)

// List fetches the fletes again and shows page 1.
func (a *App) List(ctx context.Context) error {
	a.fletesPage.Load(ctx)
	a.showPage()
	return nil
}

func (a *App) Next(ctx context.Context) error {
	a.ensureFletes(ctx)
	a.fletesPage.Next()
	a.showPage()
	return nil
}

func (a *App) Prev(ctx context.Context) error {
	a.ensureFletes(ctx)
	a.fletesPage.Prev()
	a.showPage()
	return nil
}

func (a *App) Page(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return usage("page <n>")
	}
	n, err := strconv.Atoi(args[0])
	if err != nil {
		return usage("page <n>")
	}
	a.ensureFletes(ctx)
	a.fletesPage.Goto(n)
	a.showPage()
	return nil
}

// Search filters by supplier or destination; without args it clears the
// filter.
func (a *App) Search(ctx context.Context, args []string) error {
	a.ensureFletes(ctx)
	a.fletesPage.Search(strings.Join(args, " "))
	a.showPage()
	return nil
}

// Delete asks for confirmation and removes the flete.
func (a *App) Delete(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return usage("delete <id>")
	}
	id, err := strconv.Atoi(args[0])
	if err != nil {
		return usage("delete <id>")
	}

	return a.adminOnly(func() error {
		a.ensureFletes(ctx)
		f, ok := a.fletesPage.Find(id)
		if !ok {
			a.printf("No existe el flete #%d.\n", id)
			return nil
		}
		if !a.fletesPage.OpenDelete(f) {
			a.println("Espera a que termine la carga.")
			return nil
		}

		answer, err := a.ask(fmt.Sprintf("¿Eliminar el flete #%d (%s, %s, %s)? (s/n)", f.ID, f.Supplier, f.Destination, f.RegistrationDate))
		if err != nil {
			a.fletesPage.CloseDelete()
			return err
		}
		if !confirmed(answer) {
			a.fletesPage.CloseDelete()
			a.println("Eliminación cancelada.")
			return nil
		}

		_ = a.fletesPage.ConfirmDelete(ctx)
		errMsg, notice := a.fletesPage.Messages()
		if errMsg != "" {
			a.println(errMsg)
			return nil
		}
		a.println(notice)
		a.showPage()
		return nil
	})
}

// ensureFletes loads the list the first time a paging command needs it.
func (a *App) ensureFletes(ctx context.Context) {
	if a.fletesPage.State() == controllers.StateIdle {
		a.fletesPage.Load(ctx)
	}
}

func (a *App) showPage() {
	if errMsg, _ := a.fletesPage.Messages(); errMsg != "" {
		a.println(errMsg)
	}

	current, pages, window, matches := a.fletesPage.PageInfo()
	items := a.fletesPage.Items()
	if len(items) == 0 {
		if term := a.fletesPage.Term(); term != "" {
			a.printf("Sin resultados para %q.\n", term)
		} else {
			a.println("No hay fletes registrados.")
		}
		return
	}

	printFletes(a.out, items)
	a.printf("Página %d de %d %s - %d fletes\n", current, pages, formatWindow(window, current), matches)
}

func printFletes(w io.Writer, list []models.Flete) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tPROVEEDOR\tDESTINO\tFECHA\tAUTOPISTA\tESTADÍA\tCOSTO")
	for _, f := range list {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t%s\t%s\n",
			f.ID, f.Supplier, f.Destination, f.RegistrationDate,
			controllers.FormatCurrency(f.HighwayExpenseCost),
			controllers.FormatCurrency(f.CostOfStay),
			controllers.FormatCurrency(f.IndividualCost),
		)
	}
	_ = tw.Flush()
}

// formatWindow renders the page numbers with the current one bracketed,
// e.g. "1 [2] 3 4 5".
func formatWindow(window []int, current int) string {
	parts := make([]string, 0, len(window))
	for _, n := range window {
		if n == current {
			parts = append(parts, fmt.Sprintf("[%d]", n))
			continue
		}
		parts = append(parts, strconv.Itoa(n))
	}
	return strings.Join(parts, " ")
}
