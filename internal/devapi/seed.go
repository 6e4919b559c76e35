package devapi

import (
	"fmt"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/dmitrijs2005/fletes/internal/client/api"
	"github.com/dmitrijs2005/fletes/internal/client/models"
	"github.com/dmitrijs2005/fletes/internal/common"
)

var title = cases.Title(language.Spanish)

// monthDescription renders e.g. "Octubre 2025".
func monthDescription(year, month int) string {
	return fmt.Sprintf("%s %d", title.String(api.MonthName(month)), year)
}

// Seed fills s with two users (an Admin and a read-only clerk), the
// reference lists and a handful of fletes around now.
//
//	1234 / abcd  Admin
//	5678 / efgh  Capturista
func Seed(s *Store, now time.Time) error {
	if _, err := s.AddUser(1234, "abcd", "Ana López", common.AdminRole); err != nil {
		return err
	}
	if _, err := s.AddUser(5678, "efgh", "Luis Pérez", "Capturista"); err != nil {
		return err
	}

	s.SetSuppliers([]models.Supplier{
		{ID: 1, Name: "Transportes Ruiz"},
		{ID: 2, Name: "Alejandro Cruz Sosa"},
		{ID: 3, Name: "Fletes del Norte"},
	})
	s.SetDestinations([]models.Destination{
		{ID: 1, Name: "Monterrey", Cost: 1500},
		{ID: 2, Name: "Puebla", Cost: 500},
		{ID: 3, Name: "Saltillo", Cost: 1200},
	})

	lastMonth := now.AddDate(0, -1, 0)
	for _, in := range []FleteInput{
		{SupplierID: 1, DestinationID: 1, Highway: 350, RegisteredAt: now},
		{SupplierID: 3, DestinationID: 3, Highway: 200, Stay: 150, RegisteredAt: now},
		{SupplierID: 2, DestinationID: 2, RegisteredAt: now},
		{SupplierID: 1, DestinationID: 2, Highway: 120, RegisteredAt: lastMonth},
	} {
		s.Create(in)
	}
	return nil
}
