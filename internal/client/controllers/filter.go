package controllers

import (
	"strings"

	"github.com/dmitrijs2005/fletes/internal/client/models"
)

// FilterFletes keeps the fletes whose supplier or destination contains term,
// ignoring case. Order is preserved; an empty term returns list unchanged.
func FilterFletes(list []models.Flete, term string) []models.Flete {
	if term == "" {
		return list
	}
	needle := strings.ToLower(term)

	out := make([]models.Flete, 0, len(list))
	for _, f := range list {
		if strings.Contains(strings.ToLower(f.Supplier), needle) ||
			strings.Contains(strings.ToLower(f.Destination), needle) {
			out = append(out, f)
		}
	}
	return out
}
