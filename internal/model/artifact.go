package model

// Artifact names within a model release, relative to the artifact store root.
const (
	ManifestArtifact   = "manifest.json"
	Level1Artifact     = "level1.json"
	Level2Artifact     = "level2.json"
	Level1ONNXArtifact = "level1.onnx"
)

// DefaultFeatureCount applies when a manifest does not state one.
const DefaultFeatureCount = 64

// Backend names selectable through configuration or the manifest.
const (
	BackendLinear = "linear"
	BackendONNX   = "onnx"
)

// Manifest describes one model release.
type Manifest struct {
	Version      string       `json:"version"`
	Algorithm    string       `json:"algorithm"`
	Backend      string       `json:"backend,omitempty"`
	FeatureCount int          `json:"feature_count"`
	Groups       []string     `json:"groups"`
	CreatedAt    string       `json:"created_at,omitempty"`
	ONNX         *ONNXOptions `json:"onnx,omitempty"`
}

// ONNXOptions overrides the tensor names used by the onnx backend.
type ONNXOptions struct {
	InputName  string `json:"input_name,omitempty"`
	OutputName string `json:"output_name,omitempty"`
}

// LinearParams is the serialized form of one logistic-regression classifier.
type LinearParams struct {
	Weights []float64 `json:"weights"`
	Bias    float64   `json:"bias"`
}

// level2ONNXArtifact names the per-group artifact of the onnx backend.
func level2ONNXArtifact(group string) string {
	return "level2_" + group + ".onnx"
}
