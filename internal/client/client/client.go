package client

import (
	"context"
	"io"
)

// Client performs single request/response round trips against the API.
type Client interface {
	// Do sends body (JSON-encoded, nil for none) and decodes a 2xx response
	// into out (nil to discard).
	Do(ctx context.Context, method, path string, body, out any) error

	// Download sends body and returns the streamed response. The caller must
	// close it.
	Download(ctx context.Context, method, path string, body any) (*Download, error)
}

// TokenSource yields the bearer token for outbound requests; "" means the
// request is sent anonymously.
type TokenSource interface {
	AccessToken(ctx context.Context) (string, error)
}

// Download is a streamed file response.
type Download struct {
	Body        io.ReadCloser
	Filename    string
	ContentType string
}

func (d *Download) Close() error {
	return d.Body.Close()
}
