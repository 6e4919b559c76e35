package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"strings"

	"github.com/dmitrijs2005/fletes/internal/client/client"
)

type call struct {
	method string
	path   string
	body   any
}

// fakeClient records calls and answers with a canned JSON body or error.
type fakeClient struct {
	calls    []call
	response string
	err      error
	download string
}

func (f *fakeClient) Do(ctx context.Context, method, path string, body, out any) error {
	f.calls = append(f.calls, call{method, path, body})
	if f.err != nil {
		return f.err
	}
	if out == nil || f.response == "" {
		return nil
	}
	return json.Unmarshal([]byte(f.response), out)
}

func (f *fakeClient) Download(ctx context.Context, method, path string, body any) (*client.Download, error) {
	f.calls = append(f.calls, call{method, path, body})
	if f.err != nil {
		return nil, f.err
	}
	return &client.Download{Body: io.NopCloser(strings.NewReader(f.download))}, nil
}

type memSaver struct {
	name string
	data bytes.Buffer
	err  error
}

func (m *memSaver) Save(ctx context.Context, name string, r io.Reader) (string, error) {
	if m.err != nil {
		return "", m.err
	}
	m.name = name
	if _, err := io.Copy(&m.data, r); err != nil {
		return "", err
	}
	return "mem://" + name, nil
}
