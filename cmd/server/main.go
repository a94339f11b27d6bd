package main

import (
	"context"
	"fmt"
	"log"

	"molpredict/internal/chem"
	"molpredict/internal/config"
	"molpredict/internal/dataset"
	"molpredict/internal/descriptor"
	"molpredict/internal/domain"
	"molpredict/internal/features"
	"molpredict/internal/handler"
	"molpredict/internal/model"
	"molpredict/internal/port"
	"molpredict/internal/repository/postgres"
	"molpredict/internal/router"
	"molpredict/internal/service"
	"molpredict/internal/storage/localdir"
	s3storage "molpredict/internal/storage/s3"
)

// @title Molecular Functional Group Predictor API
// @version 1.0.0
// @description Multi-level ML pipeline for functional group prediction.
// @BasePath /api/v1

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	ctx := context.Background()

	// Model artifacts. A load failure is tolerated: the server starts and
	// every prediction fails with MODELS_NOT_LOADED until artifacts appear.
	store, err := artifactStore(cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize artifact store: %w", err)
	}
	registry, err := model.Load(ctx, store, cfg.Models)
	if err != nil {
		log.Printf("models not loaded: %v", err)
		registry = nil
	}

	var engine port.DescriptorEngine
	if cfg.Engine.Enabled {
		engine = descriptor.NewEngine()
	}

	var groups []string
	featureCount := model.DefaultFeatureCount
	if registry != nil {
		groups = registry.Groups()
		featureCount = registry.FeatureCount()
	}

	// Reference dataset. Also optional: without it every molecule is
	// resolved through the descriptor engine.
	ds, err := loadDataset(ctx, cfg, groups)
	if err != nil {
		log.Printf("dataset not loaded: %v", err)
		ds = nil
	}

	var cache *features.Cache
	datasetStats := domain.DatasetStats{}
	if ds != nil {
		var adjusted int
		cache, adjusted = features.NewCache(ds.Rows, featureCount)
		if adjusted > 0 {
			log.Printf("normalized %d cached vectors to %d dimensions", adjusted, featureCount)
		}
		datasetStats = domain.DatasetStats{
			TotalMolecules:      ds.Total,
			EmbeddingDimensions: ds.Dims,
			DatasetLoaded:       true,
			SMILESAvailable:     true,
		}
	}

	normalizer := chem.NewNormalizer(engine)
	resolver := features.NewResolver(cache, engine, featureCount)
	cascade := model.NewCascade(registry)

	predictionSvc := service.NewPredictionService(
		normalizer, resolver, cascade, registry,
		cfg.Batch.MaxSize, cfg.Batch.Concurrency,
	)
	statsSvc := service.NewStatsService(registry, datasetStats, cfg.Engine.Enabled)

	predictionH := handler.NewPredictionHandler(predictionSvc)
	statsH := handler.NewStatsHandler(statsSvc)
	healthH := handler.NewHealthHandler(statsSvc)

	r := router.Setup(predictionH, statsH, healthH)

	log.Printf("Server starting on %s", cfg.Server.Port)
	if err := r.Run(cfg.Server.Port); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}

	return nil
}

// artifactStore selects the model artifact source from config.
func artifactStore(cfg *config.Config) (port.ArtifactStore, error) {
	switch cfg.Models.Source {
	case "s3":
		return s3storage.NewArtifactStore(&cfg.S3)
	default:
		return localdir.NewArtifactStore(cfg.Models.Dir), nil
	}
}

// loadDataset reads the reference embeddings from the configured source.
// A "none" source returns nil without error.
func loadDataset(ctx context.Context, cfg *config.Config, groups []string) (*dataset.Dataset, error) {
	switch cfg.Dataset.Source {
	case "none":
		return nil, nil
	case "postgres":
		db, err := postgres.NewDB(&cfg.DB)
		if err != nil {
			return nil, err
		}
		defer func() { _ = db.Close() }()

		repo := postgres.NewMoleculeRepo(db)
		rows, err := repo.ListEmbeddings(ctx, cfg.Dataset.MaxRows)
		if err != nil {
			return nil, err
		}
		total, err := repo.Count(ctx)
		if err != nil {
			return nil, err
		}
		dims := 0
		if len(rows) > 0 {
			dims = len(rows[0].Embedding)
		}
		log.Printf("dataset: %d of %d molecules loaded from postgres (%d embedding columns)",
			len(rows), total, dims)
		return &dataset.Dataset{Rows: rows, Total: total, Dims: dims}, nil
	default:
		return dataset.LoadCSV(cfg.Dataset.Path, groups, cfg.Dataset.MaxRows)
	}
}
