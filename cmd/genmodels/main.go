// Command genmodels writes a mock model release for environments where
// trained artifacts are not available. The level-1 gate always votes
// positive and each group classifier approximates a fixed positive rate.
// Usage: go run ./cmd/genmodels [models-dir]
package main

import (
	"encoding/json"
	"fmt"
	"log"
	"math"
	"math/rand"
	"os"
	"path/filepath"
	"time"

	"molpredict/internal/model"
)

const featureCount = 64

var groups = []string{
	"alcohol", "carbonyl", "amine", "amide", "alkene",
	"alkyne", "ether", "fluorinated", "nitrile",
}

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	dir := "models"
	if len(os.Args) > 1 {
		dir = os.Args[1]
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create models directory: %w", err)
	}

	rng := rand.New(rand.NewSource(42))

	level1 := model.LinearParams{
		Weights: make([]float64, featureCount),
		Bias:    4,
	}

	level2 := make(map[string]model.LinearParams, len(groups))
	for _, group := range groups {
		level2[group] = model.LinearParams{
			Weights: jitter(rng, featureCount, 0.05),
			Bias:    logit(positiveRate(group)),
		}
	}

	manifest := model.Manifest{
		Version:      "1.0.0",
		Algorithm:    "Random Forest Multi-level",
		Backend:      model.BackendLinear,
		FeatureCount: featureCount,
		Groups:       groups,
		CreatedAt:    time.Now().UTC().Format(time.RFC3339),
	}

	files := map[string]interface{}{
		model.ManifestArtifact: manifest,
		model.Level1Artifact:   level1,
		model.Level2Artifact:   level2,
	}
	for name, v := range files {
		if err := writeJSON(filepath.Join(dir, name), v); err != nil {
			return fmt.Errorf("write %s: %w", name, err)
		}
	}

	log.Printf("Mock model release written to %s (%d groups, %d features)",
		dir, len(groups), featureCount)
	return nil
}

// positiveRate is the approximate share of positive votes each mock group
// classifier should produce on random embeddings.
func positiveRate(group string) float64 {
	switch group {
	case "ether":
		return 0.6
	case "fluorinated":
		return 0.005
	default:
		return 0.3
	}
}

func jitter(rng *rand.Rand, n int, scale float64) []float64 {
	w := make([]float64, n)
	for i := range w {
		w[i] = (rng.Float64()*2 - 1) * scale
	}
	return w
}

func logit(p float64) float64 {
	return math.Log(p / (1 - p))
}

func writeJSON(path string, v interface{}) error {
	raw, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, append(raw, '\n'), 0o644)
}
