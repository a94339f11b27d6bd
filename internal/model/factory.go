package model

import (
	"context"
	"fmt"

	"molpredict/internal/config"
	"molpredict/internal/port"
)

// BackendFactory builds the level-1 and level-2 classifiers of a backend
// from artifacts.
type BackendFactory func(ctx context.Context, store port.ArtifactStore, manifest *Manifest, cfg config.ModelsConfig) (port.BinaryClassifier, map[string]port.BinaryClassifier, error)

// registry of backend factories, populated by init() in each backend file or
// explicitly via RegisterBackend.
var backends = map[string]BackendFactory{}

// RegisterBackend registers a classifier backend factory by name.
func RegisterBackend(name string, factory BackendFactory) {
	backends[name] = factory
}

// backendFactory resolves a registered backend by name.
func backendFactory(name string) (BackendFactory, error) {
	factory, ok := backends[name]
	if !ok {
		return nil, fmt.Errorf("unknown model backend: %s", name)
	}
	return factory, nil
}
