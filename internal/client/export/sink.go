package export

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"github.com/dmitrijs2005/fletes/internal/filex"
	"github.com/dmitrijs2005/fletes/internal/logging"
)

// Sink stores a named stream and returns where it ended up.
type Sink interface {
	Save(ctx context.Context, name string, r io.Reader) (string, error)
}

// LocalSink writes reports into Dir.
type LocalSink struct {
	Dir string
}

func NewLocalSink(dir string) *LocalSink {
	return &LocalSink{Dir: dir}
}

func (s *LocalSink) Save(ctx context.Context, name string, r io.Reader) (string, error) {
	dir, err := filex.EnsureDir(s.Dir)
	if err != nil {
		return "", err
	}
	return filex.WriteFile(dir, filex.SafeName(name), r)
}

// MirrorSink saves to Primary and then copies the same bytes to Archive.
// Archive failures are logged; only Primary decides the outcome.
type MirrorSink struct {
	Primary Sink
	Archive Sink
	Logger  logging.Logger
}

func (m *MirrorSink) Save(ctx context.Context, name string, r io.Reader) (string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", name, err)
	}

	where, err := m.Primary.Save(ctx, name, bytes.NewReader(data))
	if err != nil {
		return "", err
	}

	archived, err := m.Archive.Save(ctx, name, bytes.NewReader(data))
	if err != nil {
		m.Logger.Warn(ctx, "report archive failed", "name", name, "error", err)
		return where, nil
	}
	m.Logger.Info(ctx, "report archived", "name", name, "location", archived)
	return where, nil
}
