package service

import (
	"time"

	"molpredict/internal/domain"
	"molpredict/internal/model"
)

// StatsService provides aggregate dataset, model and system statistics.
type StatsService interface {
	Stats() *domain.Stats
	Health() *domain.Health
	Models() *domain.ModelsInfo
}

type statsService struct {
	registry      *model.Registry // nil when artifacts failed to load
	dataset       domain.DatasetStats
	engineEnabled bool
	startedAt     time.Time
}

// NewStatsService creates a new StatsService implementation. The dataset
// snapshot is taken at startup; model figures are read live from the
// registry, which may be nil.
func NewStatsService(registry *model.Registry, dataset domain.DatasetStats, engineEnabled bool) StatsService {
	return &statsService{
		registry:      registry,
		dataset:       dataset,
		engineEnabled: engineEnabled,
		startedAt:     time.Now(),
	}
}

func (s *statsService) Stats() *domain.Stats {
	ds := s.dataset
	ds.FunctionalGroups = len(s.groups())
	return &domain.Stats{
		DatasetStats: ds,
		ModelStats: domain.ModelStats{
			Level1Loaded:      s.loaded(),
			Level2Loaded:      s.loaded(),
			TargetGroups:      len(s.groups()),
			FeatureDimensions: s.featureCount(),
		},
		SystemInfo: domain.SystemInfo{
			EngineAvailable: s.engineEnabled,
			Uptime:          time.Since(s.startedAt).Round(time.Second).String(),
			LastUpdated:     time.Now().UTC(),
		},
	}
}

func (s *statsService) Health() *domain.Health {
	models := []string{}
	if s.loaded() {
		models = append(models, "level1", "level2")
	}
	return &domain.Health{
		Status:        "healthy",
		Timestamp:     time.Now().UTC(),
		ModelsLoaded:  s.loaded(),
		DatasetLoaded: s.dataset.DatasetLoaded,
		System: domain.HealthSystem{
			EngineAvailable:   s.engineEnabled,
			ModelsAvailable:   models,
			TargetGroups:      s.groups(),
			FeatureDimensions: s.featureCount(),
		},
	}
}

func (s *statsService) Models() *domain.ModelsInfo {
	return &domain.ModelsInfo{
		Models: map[string]domain.ModelInfo{
			"level1": {
				Type:   "Binary Classifier",
				Task:   "Detect presence of any functional groups",
				Loaded: s.loaded(),
			},
			"level2": {
				Type:   "Multi-label Classifier",
				Task:   "Identify specific functional groups",
				Groups: s.groups(),
				Loaded: s.loaded(),
			},
		},
		Architecture: "Multi-level Classification Pipeline",
		Algorithm:    s.algorithm(),
		Features:     s.featureCount(),
	}
}

func (s *statsService) loaded() bool {
	return s.registry != nil
}

func (s *statsService) groups() []string {
	if s.registry == nil {
		return []string{}
	}
	return s.registry.Groups()
}

func (s *statsService) featureCount() int {
	if s.registry == nil {
		return 0
	}
	return s.registry.FeatureCount()
}

func (s *statsService) algorithm() string {
	if s.registry == nil {
		return "unknown"
	}
	return s.registry.Algorithm()
}
