// Package common contains constants and small helpers shared by the client,
// the dev API and the command binaries.
package common

// Durable client-side storage slots. Both are cleared together on logout and
// whenever the persisted access token can no longer be decoded.
const (
	AccessTokenSlot  = "token"
	RefreshTokenSlot = "refreshToken"
)

// AdminRole is the role literal that unlocks create/edit/delete.
const AdminRole = "Admin"

// HTTP header names used on outbound API requests.
const (
	AuthorizationHeaderName = "Authorization"
	RequestIDHeaderName     = "X-Request-ID"
)

// ClientLocale is the locale used for user-facing names and amounts.
const ClientLocale = "es-MX"
