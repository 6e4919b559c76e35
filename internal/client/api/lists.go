package api

import (
	"context"
	"net/http"

	"github.com/dmitrijs2005/fletes/internal/client/client"
	"github.com/dmitrijs2005/fletes/internal/client/models"
)

// Lists wraps the GeneralLists endpoints: fletes and the reference data
// used by the form.
type Lists struct {
	c client.Client
}

func NewLists(c client.Client) *Lists {
	return &Lists{c: c}
}

func (l *Lists) Fletes(ctx context.Context) ([]models.Flete, error) {
	return getList[models.Flete](ctx, l.c, pathListFletes)
}

func (l *Lists) Suppliers(ctx context.Context) ([]models.Supplier, error) {
	return getList[models.Supplier](ctx, l.c, pathListSuppliers)
}

func (l *Lists) Destinations(ctx context.Context) ([]models.Destination, error) {
	return getList[models.Destination](ctx, l.c, pathListDestinations)
}

// getList fetches a JSON array; a null body yields an empty, non-nil slice.
func getList[T any](ctx context.Context, c client.Client, path string) ([]T, error) {
	var out []T
	if err := c.Do(ctx, http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	if out == nil {
		out = []T{}
	}
	return out, nil
}
