package tokens

import "context"

// Repository reads and writes single slots. Get returns "" with a nil error
// when the slot is empty.
type Repository interface {
	Get(ctx context.Context, slot string) (string, error)
	Set(ctx context.Context, slot, value string) error
	Delete(ctx context.Context, slot string) error
}
