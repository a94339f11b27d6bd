package model

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"

	"molpredict/internal/config"
	"molpredict/internal/port"
)

// Load fetches a model release from the artifact store and assembles the
// registry through the configured backend. The configured backend wins over
// the manifest's; without either the linear backend applies.
func Load(ctx context.Context, store port.ArtifactStore, cfg config.ModelsConfig) (*Registry, error) {
	raw, err := store.Fetch(ctx, ManifestArtifact)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", ManifestArtifact, err)
	}
	var manifest Manifest
	if err := json.Unmarshal(raw, &manifest); err != nil {
		return nil, fmt.Errorf("decode %s: %w", ManifestArtifact, err)
	}
	if len(manifest.Groups) == 0 {
		return nil, errors.New("manifest declares no groups")
	}
	if manifest.FeatureCount <= 0 {
		manifest.FeatureCount = DefaultFeatureCount
	}

	backend := cfg.Backend
	if backend == "" {
		backend = manifest.Backend
	}
	if backend == "" {
		backend = BackendLinear
	}
	factory, err := backendFactory(backend)
	if err != nil {
		return nil, err
	}
	level1, level2, err := factory(ctx, store, &manifest, cfg)
	if err != nil {
		return nil, fmt.Errorf("%s backend: %w", backend, err)
	}
	if level1 == nil {
		return nil, fmt.Errorf("%s backend produced no level-1 classifier", backend)
	}

	log.Printf("model.Load: release %s loaded via %s backend (%d groups, %d level-2 classifiers, %d features)",
		manifest.Version, backend, len(manifest.Groups), len(level2), manifest.FeatureCount)
	return NewRegistry(level1, level2, manifest.Groups, RegistryInfo{
		Version:      manifest.Version,
		Algorithm:    manifest.Algorithm,
		Backend:      backend,
		FeatureCount: manifest.FeatureCount,
	}), nil
}
