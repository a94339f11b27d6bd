package model_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"molpredict/internal/config"
	"molpredict/internal/model"
	"molpredict/mocks"
)

func manifestJSON(t *testing.T, m model.Manifest) []byte {
	t.Helper()
	raw, err := json.Marshal(m)
	require.NoError(t, err)
	return raw
}

func paramsJSON(t *testing.T, v interface{}) []byte {
	t.Helper()
	raw, err := json.Marshal(v)
	require.NoError(t, err)
	return raw
}

func weights(n int) []float64 {
	w := make([]float64, n)
	for i := range w {
		w[i] = 0.01 * float64(i)
	}
	return w
}

func TestLoad_LinearRelease(t *testing.T) {
	manifest := model.Manifest{
		Version:      "2.1.0",
		Algorithm:    "Random Forest Multi-level",
		Backend:      model.BackendLinear,
		FeatureCount: 4,
		Groups:       []string{"alcohol", "carbonyl"},
	}
	level2 := map[string]model.LinearParams{
		"alcohol":  {Weights: weights(4), Bias: 1},
		"carbonyl": {Weights: weights(4), Bias: -1},
	}

	store := new(mocks.MockArtifactStore)
	store.On("Fetch", mock.Anything, model.ManifestArtifact).Return(manifestJSON(t, manifest), nil)
	store.On("Fetch", mock.Anything, model.Level1Artifact).
		Return(paramsJSON(t, model.LinearParams{Weights: weights(4), Bias: 2}), nil)
	store.On("Fetch", mock.Anything, model.Level2Artifact).Return(paramsJSON(t, level2), nil)

	registry, err := model.Load(context.Background(), store, config.ModelsConfig{})
	require.NoError(t, err)

	assert.Equal(t, "2.1.0", registry.Version())
	assert.Equal(t, "Random Forest Multi-level", registry.Algorithm())
	assert.Equal(t, model.BackendLinear, registry.Backend())
	assert.Equal(t, 4, registry.FeatureCount())
	assert.Equal(t, []string{"alcohol", "carbonyl"}, registry.Groups())
	assert.Equal(t, 2, registry.Level2Count())

	_, ok := registry.Level2("alcohol")
	assert.True(t, ok)
	_, ok = registry.Level2("nitrile")
	assert.False(t, ok)

	store.AssertExpectations(t)
}

func TestLoad_ManifestFetchError(t *testing.T) {
	store := new(mocks.MockArtifactStore)
	store.On("Fetch", mock.Anything, model.ManifestArtifact).Return(nil, errors.New("no such key"))

	_, err := model.Load(context.Background(), store, config.ModelsConfig{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), model.ManifestArtifact)
}

func TestLoad_ManifestDecodeError(t *testing.T) {
	store := new(mocks.MockArtifactStore)
	store.On("Fetch", mock.Anything, model.ManifestArtifact).Return([]byte("{not json"), nil)

	_, err := model.Load(context.Background(), store, config.ModelsConfig{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode")
}

func TestLoad_NoGroups(t *testing.T) {
	store := new(mocks.MockArtifactStore)
	store.On("Fetch", mock.Anything, model.ManifestArtifact).
		Return(manifestJSON(t, model.Manifest{Version: "1.0.0", FeatureCount: 4}), nil)

	_, err := model.Load(context.Background(), store, config.ModelsConfig{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no groups")
}

func TestLoad_UnknownBackend(t *testing.T) {
	manifest := model.Manifest{Version: "1.0.0", FeatureCount: 4, Groups: []string{"alcohol"}}
	store := new(mocks.MockArtifactStore)
	store.On("Fetch", mock.Anything, model.ManifestArtifact).Return(manifestJSON(t, manifest), nil)

	_, err := model.Load(context.Background(), store, config.ModelsConfig{Backend: "tensorflow"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "tensorflow")
}

func TestLoad_ConfigBackendOverridesManifest(t *testing.T) {
	manifest := model.Manifest{
		Version:      "1.0.0",
		Backend:      model.BackendONNX,
		FeatureCount: 2,
		Groups:       []string{"alcohol"},
	}
	store := new(mocks.MockArtifactStore)
	store.On("Fetch", mock.Anything, model.ManifestArtifact).Return(manifestJSON(t, manifest), nil)
	store.On("Fetch", mock.Anything, model.Level1Artifact).
		Return(paramsJSON(t, model.LinearParams{Weights: weights(2)}), nil)
	store.On("Fetch", mock.Anything, model.Level2Artifact).
		Return(paramsJSON(t, map[string]model.LinearParams{"alcohol": {Weights: weights(2)}}), nil)

	registry, err := model.Load(context.Background(), store, config.ModelsConfig{Backend: model.BackendLinear})
	require.NoError(t, err)
	assert.Equal(t, model.BackendLinear, registry.Backend())
	store.AssertNotCalled(t, "Fetch", mock.Anything, model.Level1ONNXArtifact)
}

func TestLoad_Level1WeightCountMismatch(t *testing.T) {
	manifest := model.Manifest{Version: "1.0.0", FeatureCount: 4, Groups: []string{"alcohol"}}
	store := new(mocks.MockArtifactStore)
	store.On("Fetch", mock.Anything, model.ManifestArtifact).Return(manifestJSON(t, manifest), nil)
	store.On("Fetch", mock.Anything, model.Level1Artifact).
		Return(paramsJSON(t, model.LinearParams{Weights: weights(3)}), nil)

	_, err := model.Load(context.Background(), store, config.ModelsConfig{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "weight count")
}

func TestLoad_Level2WeightCountMismatch(t *testing.T) {
	manifest := model.Manifest{Version: "1.0.0", FeatureCount: 4, Groups: []string{"alcohol"}}
	store := new(mocks.MockArtifactStore)
	store.On("Fetch", mock.Anything, model.ManifestArtifact).Return(manifestJSON(t, manifest), nil)
	store.On("Fetch", mock.Anything, model.Level1Artifact).
		Return(paramsJSON(t, model.LinearParams{Weights: weights(4)}), nil)
	store.On("Fetch", mock.Anything, model.Level2Artifact).
		Return(paramsJSON(t, map[string]model.LinearParams{"alcohol": {Weights: weights(7)}}), nil)

	_, err := model.Load(context.Background(), store, config.ModelsConfig{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), `level2 "alcohol"`)
}

func TestLoad_DefaultFeatureCount(t *testing.T) {
	manifest := model.Manifest{Version: "1.0.0", Groups: []string{"alcohol"}}
	store := new(mocks.MockArtifactStore)
	store.On("Fetch", mock.Anything, model.ManifestArtifact).Return(manifestJSON(t, manifest), nil)
	store.On("Fetch", mock.Anything, model.Level1Artifact).
		Return(paramsJSON(t, model.LinearParams{Weights: weights(model.DefaultFeatureCount)}), nil)
	store.On("Fetch", mock.Anything, model.Level2Artifact).
		Return(paramsJSON(t, map[string]model.LinearParams{
			"alcohol": {Weights: weights(model.DefaultFeatureCount)},
		}), nil)

	registry, err := model.Load(context.Background(), store, config.ModelsConfig{})
	require.NoError(t, err)
	assert.Equal(t, model.DefaultFeatureCount, registry.FeatureCount())
}
