package domain

import "time"

// DatasetStats describes the reference dataset loaded at startup.
type DatasetStats struct {
	TotalMolecules      int  `json:"total_molecules"`
	EmbeddingDimensions int  `json:"embedding_dimensions"`
	FunctionalGroups    int  `json:"functional_groups"`
	DatasetLoaded       bool `json:"dataset_loaded"`
	SMILESAvailable     bool `json:"smiles_available"`
}

// ModelStats describes the loaded classifier cascade.
type ModelStats struct {
	Level1Loaded      bool `json:"level1_loaded"`
	Level2Loaded      bool `json:"level2_loaded"`
	TargetGroups      int  `json:"target_groups"`
	FeatureDimensions int  `json:"feature_dimensions"`
}

// SystemInfo describes runtime capabilities and uptime.
type SystemInfo struct {
	EngineAvailable bool      `json:"engine_available"`
	Uptime          string    `json:"uptime"`
	LastUpdated     time.Time `json:"last_updated"`
}

// Stats is the aggregate payload of the stats endpoint.
type Stats struct {
	DatasetStats DatasetStats `json:"dataset_stats"`
	ModelStats   ModelStats   `json:"model_stats"`
	SystemInfo   SystemInfo   `json:"system_info"`
}

// HealthSystem carries the capability block of a health report.
type HealthSystem struct {
	EngineAvailable   bool     `json:"engine_available"`
	ModelsAvailable   []string `json:"models_available"`
	TargetGroups      []string `json:"target_groups"`
	FeatureDimensions int      `json:"feature_dimensions"`
}

// Health is the payload of the health endpoint.
type Health struct {
	Status        string       `json:"status"`
	Timestamp     time.Time    `json:"timestamp"`
	ModelsLoaded  bool         `json:"models_loaded"`
	DatasetLoaded bool         `json:"dataset_loaded"`
	System        HealthSystem `json:"system"`
}

// ModelInfo describes one cascade level.
type ModelInfo struct {
	Type   string   `json:"type"`
	Task   string   `json:"task"`
	Groups []string `json:"groups,omitempty"`
	Loaded bool     `json:"loaded"`
}

// ModelsInfo is the payload of the models endpoint.
type ModelsInfo struct {
	Models       map[string]ModelInfo `json:"models"`
	Architecture string               `json:"architecture"`
	Algorithm    string               `json:"algorithm"`
	Features     int                  `json:"features"`
}
