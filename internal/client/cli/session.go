package cli

import (
	"context"

	"github.com/dmitrijs2005/fletes/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Login prompts for payroll number and password and signs in.
func (a *App) Login(ctx context.Context) error {
	if a.isLoggedIn() {
		a.println("Ya hay una sesión activa. Usa 'logout' primero.")
		return nil
	}

	payroll, err := a.ask("Número de nómina")
	if err != nil {
		return err
	}
	password, err := getPassword(a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	err = a.loginPage.Submit(ctx, payroll, string(password))
	errMsg, success := a.loginPage.Messages()
	if err != nil {
		a.println(errMsg)
		return nil
	}
	a.println(success)
	a.println("Bienvenido,", a.session.Identity().Name)
	return nil
}

func (a *App) Logout(ctx context.Context) error {
	a.session.Logout(ctx)
	a.form.Reset()
	a.println("Sesión cerrada.")
	return nil
}

func (a *App) WhoAmI(ctx context.Context) error {
	id := a.session.Identity()
	if id == nil {
		a.println("Sin sesión.")
		return nil
	}
	a.printf("%s (nómina %s) - rol %s\n", id.Name, id.PayrollNumber, id.Role)
	return nil
}
