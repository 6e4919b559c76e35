package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/dmitrijs2005/fletes/internal/client/controllers"
	"github.com/dmitrijs2005/fletes/internal/client/guard"
	"github.com/dmitrijs2005/fletes/internal/common"
)

const msgAdminOnly = "Esta acción solo está disponible para administradores."

// adminOnly runs fn when the session has the Admin role.
func (a *App) adminOnly(fn func() error) error {
	var err error
	guard.Gate{
		Roles:    []string{common.AdminRole},
		Fallback: func() { a.println(msgAdminOnly) },
	}.Render(a.session, func() { err = fn() })
	return err
}

// New captures a flete interactively and creates it.
func (a *App) New(ctx context.Context) error {
	return a.adminOnly(func() error {
		a.form.Reset()
		if !a.loadReferences(ctx) {
			return nil
		}
		return a.fillAndSubmit(ctx)
	})
}

// Edit pre-fills the form from a listed flete and updates it.
func (a *App) Edit(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return usage("edit <id>")
	}
	id, err := strconv.Atoi(args[0])
	if err != nil {
		return usage("edit <id>")
	}

	return a.adminOnly(func() error {
		a.ensureFletes(ctx)
		f, ok := a.fletesPage.Find(id)
		if !ok {
			a.printf("No existe el flete #%d.\n", id)
			return nil
		}
		if !a.loadReferences(ctx) {
			return nil
		}
		a.form.Edit(ctx, f)
		a.printf("Editando flete #%d: %s, %s, %s\n", f.ID, f.Supplier, f.Destination, f.RegistrationDate)
		return a.fillAndSubmit(ctx)
	})
}

func (a *App) loadReferences(ctx context.Context) bool {
	a.form.Load(ctx)
	if len(a.form.Suppliers()) == 0 || len(a.form.Destinations()) == 0 {
		a.println("No se pudieron cargar los proveedores y rutas.")
		return false
	}
	return true
}

func (a *App) fillAndSubmit(ctx context.Context) error {
	if err := a.fillForm(); err != nil {
		a.form.Reset()
		return err
	}

	a.printf("Costo estimado: %s\n", controllers.FormatCurrency(a.form.PreviewCost()))
	answer, err := a.ask("¿Guardar? (s/n)")
	if err != nil {
		return err
	}
	if !confirmed(answer) {
		a.form.Cancel()
		a.form.Reset()
		return nil
	}

	a.backToList = false
	err = a.form.Submit(ctx)
	errMsg, success := a.form.Messages()
	if err != nil {
		a.println(errMsg)
		return nil
	}
	a.println(success)
	a.form.Reset()

	if a.backToList {
		a.backToList = false
		a.fletesPage.Refresh(ctx)
		a.showPage()
	}
	return nil
}

// fillForm walks through every field. Invalid answers are reported and asked
// again; an empty answer keeps the current value.
func (a *App) fillForm() error {
	for _, s := range a.form.Suppliers() {
		a.printf("  %d  %s\n", s.ID, s.Name)
	}
	if err := a.askField("Proveedor (id)", func(v string) error {
		id, err := strconv.Atoi(v)
		if err != nil {
			return errInvalidNumber
		}
		return a.form.SelectSupplier(id)
	}); err != nil {
		return err
	}

	for _, d := range a.form.Destinations() {
		a.printf("  %d  %s (%s)\n", d.ID, d.Name, controllers.FormatCurrency(d.Cost))
	}
	if err := a.askField("Ruta (id)", func(v string) error {
		id, err := strconv.Atoi(v)
		if err != nil {
			return errInvalidNumber
		}
		return a.form.SelectDestination(id)
	}); err != nil {
		return err
	}

	if a.form.CostsLocked() {
		a.println("Este proveedor no genera gastos de autopista ni estadía.")
	} else {
		if err := a.askField("Gastos de autopista", a.amountSetter(a.form.SetHighwayExpense)); err != nil {
			return err
		}
		if err := a.askField("Estadía", a.amountSetter(a.form.SetCostOfStay)); err != nil {
			return err
		}
	}

	if err := a.askField("Fecha de registro (AAAA-MM-DD, vacío = hoy)", a.form.SetRegistrationDate); err != nil {
		return err
	}
	return a.askField("Número de viaje (opcional)", func(v string) error {
		n, err := strconv.Atoi(v)
		if err != nil {
			return errInvalidNumber
		}
		a.form.SetTripNumber(n)
		return nil
	})
}

var errInvalidNumber = errors.New("invalid number")

func (a *App) amountSetter(set func(float64) error) func(string) error {
	return func(v string) error {
		amount, err := parseAmount(v, 0)
		if err != nil {
			return errInvalidNumber
		}
		return set(amount)
	}
}

// askField prompts until apply accepts the answer or the answer is empty.
func (a *App) askField(prompt string, apply func(string) error) error {
	for {
		answer, err := a.ask(prompt)
		if err != nil {
			return err
		}
		if answer == "" {
			return nil
		}
		err = apply(answer)
		if err == nil {
			return nil
		}
		a.println(fieldError(err))
	}
}

func fieldError(err error) string {
	if errors.Is(err, errInvalidNumber) {
		return "Ingresa un número válido."
	}
	return controllers.FriendlyError(err, fmt.Sprintf("Valor inválido: %v", err))
}
