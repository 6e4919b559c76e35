// Package auth decodes the access token issued by the remote Auth endpoint
// into the Identity shown and gated by the client.
//
// Only the claims are read; the signature is NOT verified. The decoded
// Identity drives presentation only. The API re-checks the token on every
// request.
package auth

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/dmitrijs2005/fletes/internal/client/models"
)

// ErrTokenDecode wraps every failure to read a token's claims.
var ErrTokenDecode = errors.New("token decode error")

// Long-form claim names emitted by ASP.NET Core identity.
const (
	claimNameIdentifier = "http://schemas.xmlsoap.org/ws/2005/05/identity/claims/nameidentifier"
	claimName           = "http://schemas.xmlsoap.org/ws/2005/05/identity/claims/name"
	claimRole           = "http://schemas.microsoft.com/ws/2008/06/identity/claims/role"
)

var parser = jwt.NewParser(jwt.WithPaddingAllowed())

// DecodeClaims splits token into its three segments and returns the decoded
// payload. The header and signature segments are not read.
func DecodeClaims(token string) (jwt.MapClaims, error) {
	parts := strings.Split(token, ".")
	if len(parts) != 3 {
		return nil, fmt.Errorf("%w: token has %d segments", ErrTokenDecode, len(parts))
	}

	payload, err := parser.DecodeSegment(parts[1])
	if err != nil {
		return nil, fmt.Errorf("%w: payload: %w", ErrTokenDecode, err)
	}

	claims := jwt.MapClaims{}
	if err := json.Unmarshal(payload, &claims); err != nil {
		return nil, fmt.Errorf("%w: payload: %w", ErrTokenDecode, err)
	}
	return claims, nil
}

// DecodeIdentity maps the token claims onto an Identity. On any error the
// returned Identity is nil.
func DecodeIdentity(token string) (*models.Identity, error) {
	claims, err := DecodeClaims(token)
	if err != nil {
		return nil, err
	}

	return &models.Identity{
		ID:            claimString(claims, "sub", "nameid", claimNameIdentifier),
		Name:          claimString(claims, "unique_name", "name", claimName),
		Role:          claimString(claims, "role", claimRole),
		PayrollNumber: claimString(claims, "PayRollNumber", "payrollNumber"),
	}, nil
}

// ExpiresAt returns the token's exp claim, if it has a readable one.
func ExpiresAt(token string) (time.Time, bool) {
	claims, err := DecodeClaims(token)
	if err != nil {
		return time.Time{}, false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}, false
	}
	return exp.Time, true
}

// claimString returns the first non-empty claim among keys. Numbers are
// rendered in decimal and an array yields its first element.
func claimString(claims jwt.MapClaims, keys ...string) string {
	for _, k := range keys {
		if s := asString(claims[k]); s != "" {
			return s
		}
	}
	return ""
}

func asString(v any) string {
	switch value := v.(type) {
	case string:
		return value
	case float64:
		return strconv.FormatFloat(value, 'f', -1, 64)
	case []any:
		if len(value) > 0 {
			return asString(value[0])
		}
	}
	return ""
}
