package model

import (
	"fmt"
	"math"

	"molpredict/internal/domain"
)

// detectionThreshold is the strictly-greater bound a group confidence must
// clear to count as detected.
const detectionThreshold = 0.5

// shortCircuitScore is assigned to every declared group when the level-1
// gate reports no functional groups.
const shortCircuitScore = 0.1

// GateOutcome is the level-1 decision.
type GateOutcome struct {
	HasGroups  bool
	Confidence float64
}

// Outcome is the complete cascade result. Scores carries one rounded entry
// per reported group in declaration order; Detected lists the groups whose
// raw confidence cleared the threshold.
type Outcome struct {
	Gate     GateOutcome
	Scores   *domain.GroupScores
	Detected []string
	Total    int
}

// Cascade runs the two-level prediction flow against a loaded registry.
// Detection compares raw probabilities; rounding to four decimals applies
// only to the reported values.
type Cascade struct {
	registry *Registry
}

// NewCascade creates a cascade over a registry. A nil registry makes every
// Run fail with domain.ErrModelsNotLoaded.
func NewCascade(registry *Registry) *Cascade {
	return &Cascade{registry: registry}
}

// Run gates the feature vector through level 1 and, on a positive gate, fans
// out to every declared group's level-2 classifier. A negative gate fixes
// every declared group at the short-circuit score without invoking level 2.
func (c *Cascade) Run(features []float64) (*Outcome, error) {
	if c.registry == nil {
		return nil, domain.ErrModelsNotLoaded
	}
	level1 := c.registry.Level1()
	class, err := level1.Predict(features)
	if err != nil {
		return nil, fmt.Errorf("level1 predict: %w", err)
	}
	proba, err := level1.Proba(features)
	if err != nil {
		return nil, fmt.Errorf("level1 proba: %w", err)
	}
	confidence := 0.0
	for _, p := range proba {
		if p > confidence {
			confidence = p
		}
	}

	outcome := &Outcome{
		Gate:     GateOutcome{HasGroups: class == 1, Confidence: round4(confidence)},
		Scores:   domain.NewGroupScores(),
		Detected: []string{},
	}
	if !outcome.Gate.HasGroups {
		for _, group := range c.registry.Groups() {
			outcome.Scores.Set(group, shortCircuitScore)
		}
		return outcome, nil
	}

	for _, group := range c.registry.Groups() {
		clf, ok := c.registry.Level2(group)
		if !ok {
			// Declared groups without a loaded classifier are omitted.
			continue
		}
		groupProba, err := clf.Proba(features)
		if err != nil {
			return nil, fmt.Errorf("level2 %s proba: %w", group, err)
		}
		if len(groupProba) < 2 {
			return nil, fmt.Errorf("level2 %s returned %d probabilities, want 2", group, len(groupProba))
		}
		raw := groupProba[1]
		outcome.Scores.Set(group, round4(raw))
		if raw > detectionThreshold {
			outcome.Detected = append(outcome.Detected, group)
		}
	}
	outcome.Total = len(outcome.Detected)
	return outcome, nil
}

func round4(v float64) float64 {
	return math.Round(v*1e4) / 1e4
}
