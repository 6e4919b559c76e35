package auth

import (
	"encoding/base64"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/fletes/internal/client/models"
)

func sign(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("any-key"))
	require.NoError(t, err)
	return tok
}

func TestDecodeIdentity_ShortClaims(t *testing.T) {
	tok := sign(t, jwt.MapClaims{
		"sub":           "42",
		"unique_name":   "María López",
		"role":          "Admin",
		"PayRollNumber": "1234",
	})

	got, err := DecodeIdentity(tok)
	require.NoError(t, err)

	want := &models.Identity{ID: "42", Name: "María López", Role: "Admin", PayrollNumber: "1234"}
	assert.Empty(t, cmp.Diff(want, got))
}

func TestDecodeIdentity_FallbackClaims(t *testing.T) {
	tok := sign(t, jwt.MapClaims{
		"nameid":        "7",
		"name":          "Juan",
		"role":          "Viewer",
		"PayRollNumber": 5678,
	})

	got, err := DecodeIdentity(tok)
	require.NoError(t, err)
	assert.Equal(t, "7", got.ID)
	assert.Equal(t, "Juan", got.Name)
	assert.Equal(t, "Viewer", got.Role)
	assert.Equal(t, "5678", got.PayrollNumber, "numeric payroll is rendered as decimal")
}

func TestDecodeIdentity_LongFormClaims(t *testing.T) {
	tok := sign(t, jwt.MapClaims{
		claimNameIdentifier: "9",
		claimName:           "Ana",
		claimRole:           []any{"Admin", "Viewer"},
	})

	got, err := DecodeIdentity(tok)
	require.NoError(t, err)
	assert.Equal(t, &models.Identity{ID: "9", Name: "Ana", Role: "Admin"}, got)
}

func TestDecodeIdentity_SignatureIsNotChecked(t *testing.T) {
	tok := sign(t, jwt.MapClaims{"sub": "1", "role": "Admin"})
	tampered := tok[:len(tok)-4] + "AAAA"

	got, err := DecodeIdentity(tampered)
	require.NoError(t, err)
	assert.Equal(t, "Admin", got.Role)
}

func TestDecodeIdentity_ExpiredTokenStillDecodes(t *testing.T) {
	tok := sign(t, jwt.MapClaims{"sub": "1", "exp": time.Now().Add(-time.Hour).Unix()})

	got, err := DecodeIdentity(tok)
	require.NoError(t, err)
	assert.Equal(t, "1", got.ID)
}

func TestDecodeIdentity_PaddedPayload(t *testing.T) {
	header := base64.URLEncoding.EncodeToString([]byte(`{"alg":"HS256","typ":"JWT"}`))
	payload := base64.URLEncoding.EncodeToString([]byte(`{"sub":"3","role":"Admin"}`))

	got, err := DecodeIdentity(header + "." + payload + ".sig")
	require.NoError(t, err)
	assert.Equal(t, "3", got.ID)
}

func TestDecodeIdentity_IgnoresHeader(t *testing.T) {
	payload := base64.RawURLEncoding.EncodeToString([]byte(`{"sub":"3","role":"Admin","unique_name":"Ana","PayRollNumber":"1234"}`))
	enc := base64.RawURLEncoding.EncodeToString

	tests := []struct {
		name   string
		header string
	}{
		{"not base64 json", "x"},
		{"empty", ""},
		{"missing alg", enc([]byte(`{"typ":"JWT"}`))},
		{"unknown alg", enc([]byte(`{"alg":"XYZ"}`))},
		{"alg none", enc([]byte(`{"alg":"none"}`))},
	}

	want := &models.Identity{ID: "3", Name: "Ana", Role: "Admin", PayrollNumber: "1234"}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DecodeIdentity(tt.header + "." + payload + ".sig")
			require.NoError(t, err)
			assert.Empty(t, cmp.Diff(want, got))
		})
	}
}

func TestDecodeIdentity_Malformed(t *testing.T) {
	header := base64.RawURLEncoding.EncodeToString([]byte(`{"alg":"HS256","typ":"JWT"}`))
	notJSON := base64.RawURLEncoding.EncodeToString([]byte(`not json at all`))
	notObject := base64.RawURLEncoding.EncodeToString([]byte(`["a","b"]`))

	tests := []struct {
		name  string
		token string
	}{
		{"empty", ""},
		{"single segment", "abc"},
		{"two segments", header + ".abc"},
		{"four segments", header + ".a.b.c"},
		{"invalid base64", header + ".!!!***.sig"},
		{"payload not json", header + "." + notJSON + ".sig"},
		{"payload not an object", header + "." + notObject + ".sig"},
		{"empty payload", header + "..sig"},
		{"bad header and bad payload", "x.!!!.sig"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DecodeIdentity(tt.token)
			require.ErrorIs(t, err, ErrTokenDecode)
			assert.Nil(t, got)
		})
	}
}

func TestExpiresAt(t *testing.T) {
	exp := time.Now().Add(time.Hour).Truncate(time.Second)
	tok := sign(t, jwt.MapClaims{"sub": "1", "exp": exp.Unix()})

	got, ok := ExpiresAt(tok)
	require.True(t, ok)
	assert.True(t, exp.Equal(got))

	_, ok = ExpiresAt(sign(t, jwt.MapClaims{"sub": "1"}))
	assert.False(t, ok)

	_, ok = ExpiresAt("garbage")
	assert.False(t, ok)
}
