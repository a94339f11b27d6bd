package service

import (
	"context"
	"fmt"
	"log"
	"math"
	"time"

	"golang.org/x/sync/errgroup"

	"molpredict/internal/chem"
	"molpredict/internal/domain"
	"molpredict/internal/features"
	"molpredict/internal/model"
)

const defaultMaxBatch = 100

// PredictionService defines the molecular prediction contract. Predict
// always yields a result; failures are reported inside it, never as a Go
// error. PredictBatch rejects an invalid batch before any molecule runs.
type PredictionService interface {
	Predict(ctx context.Context, input string) *domain.PredictionResult
	PredictBatch(ctx context.Context, inputs []string) (*domain.BatchResult, error)
}

type predictionService struct {
	normalizer  *chem.Normalizer
	resolver    *features.Resolver
	cascade     *model.Cascade
	registry    *model.Registry // nil when artifacts failed to load
	maxBatch    int
	concurrency int
}

// NewPredictionService creates a new PredictionService implementation.
func NewPredictionService(
	normalizer *chem.Normalizer,
	resolver *features.Resolver,
	cascade *model.Cascade,
	registry *model.Registry,
	maxBatch int,
	concurrency int,
) PredictionService {
	if maxBatch < 1 {
		maxBatch = defaultMaxBatch
	}
	if concurrency < 1 {
		concurrency = 1
	}
	return &predictionService{
		normalizer:  normalizer,
		resolver:    resolver,
		cascade:     cascade,
		registry:    registry,
		maxBatch:    maxBatch,
		concurrency: concurrency,
	}
}

func (s *predictionService) Predict(ctx context.Context, input string) (result *domain.PredictionResult) {
	start := time.Now()
	defer func() {
		if r := recover(); r != nil {
			log.Printf("service.PredictionService: recovered panic in Predict: %v", r)
			result = s.failure(input, start, fmt.Errorf("prediction panicked: %v", r))
		}
	}()

	if err := ctx.Err(); err != nil {
		return s.failure(input, start, err)
	}

	resolution, err := s.normalizer.Normalize(input)
	if err != nil {
		return s.failure(input, start, err)
	}

	vector, cached, err := s.resolver.Resolve(resolution.Notation)
	if err != nil {
		return s.failure(input, start, err)
	}

	if err := ctx.Err(); err != nil {
		return s.failure(input, start, err)
	}

	outcome, err := s.cascade.Run(vector)
	if err != nil {
		return s.failure(input, start, err)
	}

	warnings := []string{}
	if !cached {
		warnings = append(warnings, domain.WarningNotInDataset)
	}

	original := chem.Scrub(input)
	elapsed := time.Since(start).Seconds()
	log.Printf("service.PredictionService: predicted %s -> %s (%.3fs)", original, resolution.Notation, elapsed)

	return &domain.PredictionResult{
		Success:        true,
		OriginalInput:  original,
		InputType:      resolution.Kind,
		SMILES:         resolution.Notation,
		ProcessingTime: round4(elapsed),
		Timestamp:      time.Now().UTC(),
		Level1: &domain.Level1Result{
			HasFunctionalGroups: outcome.Gate.HasGroups,
			Confidence:          outcome.Gate.Confidence,
			Prediction:          domain.GateLabelFor(outcome.Gate.HasGroups),
		},
		Level2: &domain.Level2Result{
			FunctionalGroups: outcome.Scores,
			DetectedGroups:   outcome.Detected,
			TotalDetected:    outcome.Total,
		},
		Metadata: &domain.ResultMetadata{
			InDataset:    cached,
			ModelVersion: s.registry.Version(),
			Algorithm:    s.registry.Algorithm(),
			FeatureCount: len(vector),
		},
		Warnings: warnings,
	}
}

func (s *predictionService) PredictBatch(ctx context.Context, inputs []string) (*domain.BatchResult, error) {
	if len(inputs) == 0 {
		return nil, domain.ErrBatchEmpty
	}
	if len(inputs) > s.maxBatch {
		return nil, fmt.Errorf("%w: %d molecules, limit is %d", domain.ErrBatchTooLarge, len(inputs), s.maxBatch)
	}

	results := make([]domain.PredictionResult, len(inputs))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.concurrency)
	for i, input := range inputs {
		g.Go(func() error {
			results[i] = *s.Predict(gctx, input)
			return nil
		})
	}
	_ = g.Wait()

	return &domain.BatchResult{
		Success:   true,
		BatchSize: len(inputs),
		Results:   results,
		Timestamp: time.Now().UTC(),
	}, nil
}

// failure builds a well-formed failed result from a pipeline error.
func (s *predictionService) failure(input string, start time.Time, err error) *domain.PredictionResult {
	return &domain.PredictionResult{
		Success:        false,
		Error:          domain.KindOf(err),
		Message:        err.Error(),
		OriginalInput:  chem.Scrub(input),
		ProcessingTime: round4(time.Since(start).Seconds()),
		Timestamp:      time.Now().UTC(),
		Warnings:       []string{},
	}
}

func round4(v float64) float64 {
	return math.Round(v*1e4) / 1e4
}
