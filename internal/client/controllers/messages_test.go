package controllers

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrijs2005/fletes/internal/client/client"
)

func TestFriendlyError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"nil", nil, ""},
		{"validation", invalid(MsgSelectSupplierAndRoute), MsgSelectSupplierAndRoute},
		{"unauthorized", &client.APIError{Status: 401, Message: "bad"}, MsgBadCredentials},
		{"server", &client.APIError{Status: 500, Message: "boom"}, MsgServerError},
		{"unavailable", fmt.Errorf("%w: dial tcp", client.ErrUnavailable), MsgConnectionError},
		{"deadline", context.DeadlineExceeded, MsgConnectionError},
		{"server message", &client.APIError{Status: 400, Message: "Ruta inválida"}, "Error: Ruta inválida"},
		{"bare status", &client.APIError{Status: 409}, "fallback"},
		{"unknown", errors.New("weird"), "fallback"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FriendlyError(tt.err, "fallback"))
		})
	}
}

func TestValidationError_MatchesSentinel(t *testing.T) {
	err := fmt.Errorf("submit: %w", invalid(MsgBadDate))
	assert.ErrorIs(t, err, ErrValidation)
	assert.Equal(t, MsgBadDate, FriendlyError(err, "x"))
}
