package devapi

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/fletes/internal/client/models"
)

func seededStore(t *testing.T, now time.Time) *Store {
	t.Helper()
	s := NewStore()
	require.NoError(t, Seed(s, now))
	return s
}

func TestStore_Authenticate(t *testing.T) {
	s := seededStore(t, time.Now())

	u, ok := s.Authenticate(1234, "abcd")
	require.True(t, ok)
	assert.Equal(t, "Admin", u.Role)

	_, ok = s.Authenticate(1234, "wrong")
	assert.False(t, ok)
	_, ok = s.Authenticate(9999, "abcd")
	assert.False(t, ok)
}

func TestStore_CreateComputesIndividualCost(t *testing.T) {
	s := NewStore()
	s.SetSuppliers([]models.Supplier{{ID: 2, Name: "Alejandro Cruz Sosa"}})
	s.SetDestinations([]models.Destination{{ID: 2, Name: "Puebla", Cost: 500}})
	day := time.Date(2025, 10, 3, 12, 0, 0, 0, time.UTC)

	id, ok := s.Create(FleteInput{SupplierID: 2, DestinationID: 2, Highway: 100, Stay: 50, RegisteredAt: day})
	require.True(t, ok)

	got, ok := s.Get(id)
	require.True(t, ok)
	want := models.Flete{
		ID:                 id,
		Supplier:           "Alejandro Cruz Sosa",
		Destination:        "Puebla",
		HighwayExpenseCost: 100,
		CostOfStay:         50,
		IndividualCost:     650,
		Date:               "2025-10-03",
		RegistrationDate:   "03/10/2025",
		IDSupplier:         2,
		IDDestination:      2,
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Get() mismatch (-want +got):\n%s", diff)
	}

	_, ok = s.Create(FleteInput{SupplierID: 99, DestinationID: 2})
	assert.False(t, ok)
}

func TestStore_UpdateDelete(t *testing.T) {
	s := seededStore(t, time.Now())

	found, ok := s.Update(1, FleteInput{SupplierID: 2, DestinationID: 3, RegisteredAt: time.Now()})
	assert.True(t, found)
	assert.True(t, ok)

	found, ok = s.Update(1, FleteInput{SupplierID: 2, DestinationID: 42})
	assert.True(t, found)
	assert.False(t, ok)

	found, _ = s.Update(404, FleteInput{SupplierID: 2, DestinationID: 3})
	assert.False(t, found)

	assert.True(t, s.Delete(1))
	assert.False(t, s.Delete(1))
	_, ok = s.Get(1)
	assert.False(t, ok)
}

func TestStore_BetweenAndMonths(t *testing.T) {
	now := time.Date(2025, 10, 15, 9, 0, 0, 0, time.UTC)
	s := seededStore(t, now)

	assert.Len(t, s.List(), 4)
	assert.Len(t, s.Between(time.Date(2025, 10, 1, 0, 0, 0, 0, time.UTC), time.Date(2025, 10, 31, 0, 0, 0, 0, time.UTC)), 3)
	assert.Len(t, s.Between(time.Date(2025, 9, 15, 0, 0, 0, 0, time.UTC), time.Date(2025, 9, 15, 0, 0, 0, 0, time.UTC)), 1)

	want := []models.MonthSummary{
		{Year: 2025, Month: 10, Description: "Octubre 2025"},
		{Year: 2025, Month: 9, Description: "Septiembre 2025"},
	}
	if diff := cmp.Diff(want, s.Months()); diff != "" {
		t.Errorf("Months() mismatch (-want +got):\n%s", diff)
	}
}

func TestStore_RefreshTokens(t *testing.T) {
	s := NewStore()
	s.IssueRefreshToken(1)
	s.IssueRefreshToken(1)
	s.IssueRefreshToken(2)

	assert.Equal(t, 2, s.RevokeRefreshTokens(1))
	assert.Equal(t, 0, s.RevokeRefreshTokens(1))
	assert.Equal(t, 1, s.RevokeRefreshTokens(2))
}
