package controllers

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrijs2005/fletes/internal/client/models"
)

func TestComputeMonthStats(t *testing.T) {
	now := time.Date(2025, time.October, 17, 12, 0, 0, 0, time.UTC)
	list := []models.Flete{
		{ID: 1, RegistrationDate: "01/10/2025", IndividualCost: 1000},
		{ID: 2, RegistrationDate: "31/10/2025", IndividualCost: 500},
		{ID: 3, RegistrationDate: "30/09/2025", IndividualCost: 9000},
		{ID: 4, RegistrationDate: "15/10/2024", IndividualCost: 9000},
		{ID: 5, RegistrationDate: "", IndividualCost: 9000},
		{ID: 6, RegistrationDate: "2025-10-05", IndividualCost: 9000},
	}

	st := ComputeMonthStats(list, now)

	assert.Equal(t, 2025, st.Year)
	assert.Equal(t, time.October, st.Month)
	assert.Equal(t, "OCTUBRE DE 2025", st.Label)
	assert.Equal(t, 2, st.Count)
	assert.Equal(t, 1500.0, st.Total)
	assert.Equal(t, 750.0, st.Average)
	assert.Equal(t, []int{1, 2}, ids(st.Fletes))
}

func TestComputeMonthStats_Empty(t *testing.T) {
	st := ComputeMonthStats(nil, time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC))

	assert.Zero(t, st.Count)
	assert.Zero(t, st.Total)
	assert.Zero(t, st.Average)
	assert.Equal(t, "MARZO DE 2025", st.Label)
	assert.NotNil(t, st.Fletes)
}

func TestFormatCurrency(t *testing.T) {
	got := FormatCurrency(12345.5)
	assert.True(t, strings.HasPrefix(got, "$12"), got)
	assert.True(t, strings.HasSuffix(got, "50"), got)
	assert.Contains(t, got, "345")

	neg := FormatCurrency(-7)
	assert.True(t, strings.HasPrefix(neg, "-$"), neg)
}
