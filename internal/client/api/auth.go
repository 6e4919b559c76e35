package api

import (
	"context"
	"net/http"

	"github.com/dmitrijs2005/fletes/internal/client/client"
	"github.com/dmitrijs2005/fletes/internal/client/models"
)

type Auth struct {
	c client.Client
}

func NewAuth(c client.Client) *Auth {
	return &Auth{c: c}
}

func (a *Auth) Login(ctx context.Context, payrollNumber int, password string) (*models.LoginResponse, error) {
	var resp models.LoginResponse
	req := models.LoginRequest{PayRollNumber: payrollNumber, Password: password}
	if err := a.c.Do(ctx, http.MethodPost, pathLogin, req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (a *Auth) Logout(ctx context.Context) (*models.LogoutResponse, error) {
	var resp models.LogoutResponse
	if err := a.c.Do(ctx, http.MethodPost, pathLogout, struct{}{}, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
