package model

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"

	ort "github.com/yalue/onnxruntime_go"

	"molpredict/internal/config"
	"molpredict/internal/port"
)

func init() {
	RegisterBackend(BackendONNX, newONNXBackend)
}

var (
	ortInitOnce sync.Once
	ortInitErr  error
)

// initONNXRuntime initializes the process-wide ONNX Runtime environment.
// The environment stays alive until process exit.
func initONNXRuntime(libraryPath string) error {
	ortInitOnce.Do(func() {
		if libraryPath != "" {
			ort.SetSharedLibraryPath(libraryPath)
		}
		ortInitErr = ort.InitializeEnvironment()
	})
	return ortInitErr
}

// ONNXClassifier runs a serialized classifier through ONNX Runtime. Sessions
// are not safe for concurrent Run calls, so a mutex serializes them.
type ONNXClassifier struct {
	mu      sync.Mutex
	session *ort.DynamicAdvancedSession
	dims    int
}

// NewONNXClassifier builds a classifier from raw onnx model bytes. The model
// must expose a [1, dims] float input and a two-class probability output
// under the given tensor names.
func NewONNXClassifier(modelBytes []byte, dims int, inputName, outputName string) (*ONNXClassifier, error) {
	session, err := ort.NewDynamicAdvancedSessionWithONNXData(modelBytes,
		[]string{inputName}, []string{outputName}, nil)
	if err != nil {
		return nil, fmt.Errorf("create onnx session: %w", err)
	}
	return &ONNXClassifier{session: session, dims: dims}, nil
}

// Proba returns the class probabilities [P(0), P(1)].
func (c *ONNXClassifier) Proba(features []float64) ([]float64, error) {
	if len(features) != c.dims {
		return nil, fmt.Errorf("feature length %d does not match model dimension %d", len(features), c.dims)
	}
	data := make([]float32, len(features))
	for i, v := range features {
		data[i] = float32(v)
	}
	input, err := ort.NewTensor(ort.NewShape(1, int64(c.dims)), data)
	if err != nil {
		return nil, fmt.Errorf("create input tensor: %w", err)
	}
	defer input.Destroy()

	outputs := []ort.Value{nil}
	c.mu.Lock()
	err = c.session.Run([]ort.Value{input}, outputs)
	c.mu.Unlock()
	if err != nil {
		return nil, fmt.Errorf("run onnx session: %w", err)
	}
	out, ok := outputs[0].(*ort.Tensor[float32])
	if !ok {
		return nil, errors.New("onnx output is not a float tensor")
	}
	defer out.Destroy()
	raw := out.GetData()
	if len(raw) < 2 {
		return nil, fmt.Errorf("onnx output has %d values, want 2 class probabilities", len(raw))
	}
	return []float64{float64(raw[0]), float64(raw[1])}, nil
}

// Predict returns the most probable class.
func (c *ONNXClassifier) Predict(features []float64) (int, error) {
	proba, err := c.Proba(features)
	if err != nil {
		return 0, err
	}
	if proba[1] > proba[0] {
		return 1, nil
	}
	return 0, nil
}

// Close releases the underlying session.
func (c *ONNXClassifier) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.session != nil {
		err := c.session.Destroy()
		c.session = nil
		return err
	}
	return nil
}

var _ port.BinaryClassifier = (*ONNXClassifier)(nil)

func newONNXBackend(ctx context.Context, store port.ArtifactStore, manifest *Manifest, cfg config.ModelsConfig) (port.BinaryClassifier, map[string]port.BinaryClassifier, error) {
	if err := initONNXRuntime(cfg.ORTLibrary); err != nil {
		return nil, nil, fmt.Errorf("initialize onnx runtime: %w", err)
	}
	inputName, outputName := "float_input", "probabilities"
	if manifest.ONNX != nil {
		if manifest.ONNX.InputName != "" {
			inputName = manifest.ONNX.InputName
		}
		if manifest.ONNX.OutputName != "" {
			outputName = manifest.ONNX.OutputName
		}
	}

	raw, err := store.Fetch(ctx, Level1ONNXArtifact)
	if err != nil {
		return nil, nil, fmt.Errorf("fetch %s: %w", Level1ONNXArtifact, err)
	}
	level1, err := NewONNXClassifier(raw, manifest.FeatureCount, inputName, outputName)
	if err != nil {
		return nil, nil, fmt.Errorf("load %s: %w", Level1ONNXArtifact, err)
	}

	level2 := make(map[string]port.BinaryClassifier, len(manifest.Groups))
	for _, group := range manifest.Groups {
		name := level2ONNXArtifact(group)
		raw, err := store.Fetch(ctx, name)
		if err != nil {
			// A group without an artifact is omitted from level 2.
			log.Printf("model.onnxBackend: no artifact %s, omitting group %q", name, group)
			continue
		}
		clf, err := NewONNXClassifier(raw, manifest.FeatureCount, inputName, outputName)
		if err != nil {
			return nil, nil, fmt.Errorf("load %s: %w", name, err)
		}
		level2[group] = clf
	}
	return level1, level2, nil
}
