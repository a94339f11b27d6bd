package domain

import "time"

// WarningNotInDataset is attached to results for molecules whose features had
// to be computed because they were absent from the training dataset.
const WarningNotInDataset = "Molecule not found in training dataset - predictions may be less accurate"

// Level1Result reports the binary gate decision of the cascade.
type Level1Result struct {
	HasFunctionalGroups bool      `json:"has_functional_groups"`
	Confidence          float64   `json:"confidence"`
	Prediction          GateLabel `json:"prediction"`
}

// Level2Result reports per-group confidences and which groups cleared the
// detection threshold.
type Level2Result struct {
	FunctionalGroups *GroupScores `json:"functional_groups"`
	DetectedGroups   []string     `json:"detected_groups"`
	TotalDetected    int          `json:"total_detected"`
}

// ResultMetadata carries provenance for a prediction.
type ResultMetadata struct {
	InDataset    bool   `json:"in_dataset"`
	ModelVersion string `json:"model_version"`
	Algorithm    string `json:"algorithm"`
	FeatureCount int    `json:"feature_count"`
}

// PredictionResult is the complete outcome of a single prediction. Failures
// carry Success=false plus an error kind and message; the level1, level2 and
// metadata blocks are present only on success. Results are immutable once
// built.
type PredictionResult struct {
	Success        bool            `json:"success"`
	Error          ErrorKind       `json:"error,omitempty"`
	Message        string          `json:"message,omitempty"`
	OriginalInput  string          `json:"original_input"`
	InputType      InputType       `json:"input_type,omitempty"`
	SMILES         string          `json:"smiles,omitempty"`
	ProcessingTime float64         `json:"processing_time"`
	Timestamp      time.Time       `json:"timestamp"`
	Level1         *Level1Result   `json:"level1,omitempty"`
	Level2         *Level2Result   `json:"level2,omitempty"`
	Metadata       *ResultMetadata `json:"metadata,omitempty"`
	Warnings       []string        `json:"warnings"`
}

// BatchResult wraps the results of a batch prediction in input order.
type BatchResult struct {
	Success   bool               `json:"success"`
	BatchSize int                `json:"batch_size"`
	Results   []PredictionResult `json:"results"`
	Timestamp time.Time          `json:"timestamp"`
}
