package controllers

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/fletes/internal/client/client"
)

// User-facing messages.
const (
	MsgSelectSupplierAndRoute = "Por favor, selecciona un proveedor y una ruta"
	MsgUnknownSupplier        = "Selecciona un proveedor de la lista"
	MsgUnknownDestination     = "Selecciona una ruta de la lista"
	MsgNegativeCost           = "El costo no puede ser negativo"
	MsgFleteSaved             = "Flete guardado"
	MsgFleteUpdated           = "Flete actualizado"
	MsgSaveFailed             = "Error desconocido al guardar el flete"

	MsgLoadFletes   = "Error al cargar los fletes"
	MsgFleteDeleted = "Flete eliminado"
	MsgDeleteFailed = "Error al eliminar el flete"

	MsgLoadMonths     = "Error al cargar los meses"
	MsgDownloadFailed = "Error al descargar el reporte"
	MsgRangeFailed    = "Error al generar el reporte"
	MsgBadDate        = "Formato de fecha inválido"
	MsgStartAfterEnd  = "La fecha inicial no puede ser mayor que la final"

	MsgInvalidPayroll  = "Por favor, ingresa un número de nómina válido."
	MsgShortPassword   = "La contraseña debe tener al menos 4 caracteres."
	MsgRejected        = "Credenciales incorrectas"
	MsgInternal        = "Error interno del sistema"
	MsgLoginSucceeded  = "¡Inicio de sesión exitoso!"
	MsgBadCredentials  = "Credenciales incorrectas. Verifica tu número de nómina y contraseña."
	MsgServerError     = "Error del servidor. Por favor, intenta más tarde."
	MsgConnectionError = "Error de conexión. Verifica tu internet."
	MsgUnexpected      = "Error inesperado. Por favor, contacta al administrador."
)

var (
	// ErrValidation matches every locally rejected input.
	ErrValidation = errors.New("validation error")
	// ErrBusy is returned when an operation is already in flight.
	ErrBusy = errors.New("operation already in progress")
	// ErrRejected is returned when the server answered without declaring
	// success.
	ErrRejected = errors.New("rejected by server")
	// ErrCostsLocked is returned by cost setters while a no-cost supplier is
	// selected.
	ErrCostsLocked = errors.New("costs are fixed at zero for this supplier")
)

// ValidationError carries the message shown to the user as-is.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

func invalid(msg string) error {
	return &ValidationError{Message: msg}
}

// FriendlyError turns err into the message shown to the user. Validation
// messages pass through, known transport failures get fixed wording, a
// structured server message is shown as "Error: <message>", and anything
// else yields fallback.
func FriendlyError(err error, fallback string) string {
	if err == nil {
		return ""
	}

	var ve *ValidationError
	switch {
	case errors.As(err, &ve):
		return ve.Message
	case errors.Is(err, client.ErrUnauthorized):
		return MsgBadCredentials
	case errors.Is(err, client.ErrServer):
		return MsgServerError
	case errors.Is(err, client.ErrUnavailable), errors.Is(err, context.DeadlineExceeded):
		return MsgConnectionError
	}

	if msg, ok := client.ServerMessage(err); ok {
		return "Error: " + msg
	}
	return fallback
}
