package localdir

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"molpredict/internal/port"
)

type dirStore struct {
	dir string
}

// NewArtifactStore creates an ArtifactStore reading model artifacts from a
// local directory.
func NewArtifactStore(dir string) port.ArtifactStore {
	return &dirStore{dir: dir}
}

func (s *dirStore) Fetch(ctx context.Context, name string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(filepath.Join(s.dir, name))
	if err != nil {
		return nil, fmt.Errorf("read artifact %s: %w", name, err)
	}
	return data, nil
}
