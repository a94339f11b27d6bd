package port

import "context"

// ArtifactStore abstracts where model artifacts are fetched from. Names are
// store-relative (for example "manifest.json").
type ArtifactStore interface {
	Fetch(ctx context.Context, name string) ([]byte, error)
}
