package export

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/fletes/internal/client/controllers"
	"github.com/dmitrijs2005/fletes/internal/client/models"
)

func TestWriteStatsPDF(t *testing.T) {
	st := controllers.ComputeMonthStats([]models.Flete{
		{ID: 1, Supplier: "Transportes Ruiz", Destination: "Monterrey", RegistrationDate: "02/10/2025", IndividualCost: 1500},
		{ID: 2, Supplier: "Logística Peña", Destination: "Puebla", RegistrationDate: "03/10/2025", IndividualCost: 700},
	}, time.Date(2025, time.October, 17, 0, 0, 0, 0, time.UTC))

	var buf bytes.Buffer
	require.NoError(t, WriteStatsPDF(&buf, st))

	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")))
	assert.Greater(t, buf.Len(), 500)
	assert.Equal(t, "Resumen_2025_10.pdf", StatsPDFName(st))
}

func TestWriteStatsPDF_Empty(t *testing.T) {
	var buf bytes.Buffer
	st := controllers.ComputeMonthStats(nil, time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC))

	require.NoError(t, WriteStatsPDF(&buf, st))
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")))
}
