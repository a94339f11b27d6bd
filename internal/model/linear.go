package model

import (
	"context"
	"encoding/json"
	"fmt"
	"math"

	"molpredict/internal/config"
	"molpredict/internal/port"
)

func init() {
	RegisterBackend(BackendLinear, newLinearBackend)
}

// LinearClassifier is a logistic-regression binary classifier. It is pure
// computation and safe for concurrent use.
type LinearClassifier struct {
	weights []float64
	bias    float64
}

// NewLinearClassifier builds a classifier from serialized parameters.
func NewLinearClassifier(params LinearParams) *LinearClassifier {
	weights := make([]float64, len(params.Weights))
	copy(weights, params.Weights)
	return &LinearClassifier{weights: weights, bias: params.Bias}
}

// Proba returns the class probabilities [P(0), P(1)].
func (c *LinearClassifier) Proba(features []float64) ([]float64, error) {
	if len(features) != len(c.weights) {
		return nil, fmt.Errorf("feature length %d does not match model dimension %d", len(features), len(c.weights))
	}
	z := c.bias
	for i, w := range c.weights {
		z += w * features[i]
	}
	p := 1 / (1 + math.Exp(-z))
	return []float64{1 - p, p}, nil
}

// Predict returns the most probable class.
func (c *LinearClassifier) Predict(features []float64) (int, error) {
	proba, err := c.Proba(features)
	if err != nil {
		return 0, err
	}
	if proba[1] > proba[0] {
		return 1, nil
	}
	return 0, nil
}

var _ port.BinaryClassifier = (*LinearClassifier)(nil)

func newLinearBackend(ctx context.Context, store port.ArtifactStore, manifest *Manifest, _ config.ModelsConfig) (port.BinaryClassifier, map[string]port.BinaryClassifier, error) {
	raw, err := store.Fetch(ctx, Level1Artifact)
	if err != nil {
		return nil, nil, fmt.Errorf("fetch %s: %w", Level1Artifact, err)
	}
	var level1Params LinearParams
	if err := json.Unmarshal(raw, &level1Params); err != nil {
		return nil, nil, fmt.Errorf("decode %s: %w", Level1Artifact, err)
	}
	if len(level1Params.Weights) != manifest.FeatureCount {
		return nil, nil, fmt.Errorf("level1 weight count %d does not match manifest feature count %d",
			len(level1Params.Weights), manifest.FeatureCount)
	}

	raw, err = store.Fetch(ctx, Level2Artifact)
	if err != nil {
		return nil, nil, fmt.Errorf("fetch %s: %w", Level2Artifact, err)
	}
	var groupParams map[string]LinearParams
	if err := json.Unmarshal(raw, &groupParams); err != nil {
		return nil, nil, fmt.Errorf("decode %s: %w", Level2Artifact, err)
	}
	level2 := make(map[string]port.BinaryClassifier, len(groupParams))
	for group, params := range groupParams {
		if len(params.Weights) != manifest.FeatureCount {
			return nil, nil, fmt.Errorf("level2 %q weight count %d does not match manifest feature count %d",
				group, len(params.Weights), manifest.FeatureCount)
		}
		level2[group] = NewLinearClassifier(params)
	}
	return NewLinearClassifier(level1Params), level2, nil
}
