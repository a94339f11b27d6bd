package model_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"molpredict/internal/domain"
	"molpredict/internal/model"
	"molpredict/internal/port"
	"molpredict/mocks"
)

var testVector = []float64{0.1, 0.2, 0.3, 0.4}

func gateMock(class int, proba []float64) *mocks.MockBinaryClassifier {
	m := new(mocks.MockBinaryClassifier)
	m.On("Predict", testVector).Return(class, nil)
	m.On("Proba", testVector).Return(proba, nil)
	return m
}

func groupMock(proba []float64) *mocks.MockBinaryClassifier {
	m := new(mocks.MockBinaryClassifier)
	m.On("Proba", testVector).Return(proba, nil)
	return m
}

func newCascade(level1 port.BinaryClassifier, level2 map[string]port.BinaryClassifier, groups []string) *model.Cascade {
	registry := model.NewRegistry(level1, level2, groups, model.RegistryInfo{
		Version:      "1.0.0",
		Algorithm:    "test",
		FeatureCount: len(testVector),
	})
	return model.NewCascade(registry)
}

func TestCascade_NilRegistry(t *testing.T) {
	c := model.NewCascade(nil)
	_, err := c.Run(testVector)
	assert.True(t, errors.Is(err, domain.ErrModelsNotLoaded))
}

func TestCascade_PositiveGate(t *testing.T) {
	alcohol := groupMock([]float64{0.4, 0.6})
	carbonyl := groupMock([]float64{0.8, 0.2})
	c := newCascade(
		gateMock(1, []float64{0.2, 0.8}),
		map[string]port.BinaryClassifier{"alcohol": alcohol, "carbonyl": carbonyl},
		[]string{"alcohol", "carbonyl"},
	)

	outcome, err := c.Run(testVector)
	require.NoError(t, err)

	assert.True(t, outcome.Gate.HasGroups)
	assert.Equal(t, 0.8, outcome.Gate.Confidence)

	score, ok := outcome.Scores.Get("alcohol")
	require.True(t, ok)
	assert.Equal(t, 0.6, score)
	score, ok = outcome.Scores.Get("carbonyl")
	require.True(t, ok)
	assert.Equal(t, 0.2, score)

	assert.Equal(t, []string{"alcohol"}, outcome.Detected)
	assert.Equal(t, 1, outcome.Total)
}

func TestCascade_GateConfidenceIsMaxProbability(t *testing.T) {
	c := newCascade(
		gateMock(0, []float64{0.9, 0.1}),
		map[string]port.BinaryClassifier{},
		[]string{"alcohol"},
	)

	outcome, err := c.Run(testVector)
	require.NoError(t, err)
	assert.Equal(t, 0.9, outcome.Gate.Confidence)
	assert.False(t, outcome.Gate.HasGroups)
}

func TestCascade_NegativeGateShortCircuits(t *testing.T) {
	alcohol := groupMock([]float64{0.4, 0.6})
	amine := groupMock([]float64{0.1, 0.9})
	c := newCascade(
		gateMock(0, []float64{0.7, 0.3}),
		map[string]port.BinaryClassifier{"alcohol": alcohol, "amine": amine},
		[]string{"alcohol", "amine"},
	)

	outcome, err := c.Run(testVector)
	require.NoError(t, err)

	assert.False(t, outcome.Gate.HasGroups)
	for _, group := range []string{"alcohol", "amine"} {
		score, ok := outcome.Scores.Get(group)
		require.True(t, ok, "group %s", group)
		assert.Equal(t, 0.1, score)
	}
	assert.Empty(t, outcome.Detected)
	assert.Equal(t, 0, outcome.Total)

	// Level 2 must never run on a negative gate.
	alcohol.AssertNotCalled(t, "Proba", testVector)
	amine.AssertNotCalled(t, "Proba", testVector)
}

func TestCascade_DetectionThresholdIsStrict(t *testing.T) {
	exactly := groupMock([]float64{0.5, 0.5})
	above := groupMock([]float64{0.4999, 0.5001})
	c := newCascade(
		gateMock(1, []float64{0.1, 0.9}),
		map[string]port.BinaryClassifier{"exactly": exactly, "above": above},
		[]string{"exactly", "above"},
	)

	outcome, err := c.Run(testVector)
	require.NoError(t, err)
	assert.Equal(t, []string{"above"}, outcome.Detected)
}

func TestCascade_DetectionUsesRawScore(t *testing.T) {
	// 0.50004 rounds down to 0.5 for reporting but still clears the
	// strict threshold.
	borderline := groupMock([]float64{0.49996, 0.50004})
	c := newCascade(
		gateMock(1, []float64{0.1, 0.9}),
		map[string]port.BinaryClassifier{"borderline": borderline},
		[]string{"borderline"},
	)

	outcome, err := c.Run(testVector)
	require.NoError(t, err)

	score, _ := outcome.Scores.Get("borderline")
	assert.Equal(t, 0.5, score)
	assert.Equal(t, []string{"borderline"}, outcome.Detected)
}

func TestCascade_RoundsReportedScores(t *testing.T) {
	c := newCascade(
		gateMock(1, []float64{0.123456, 0.876544}),
		map[string]port.BinaryClassifier{"alcohol": groupMock([]float64{0.876544, 0.123456})},
		[]string{"alcohol"},
	)

	outcome, err := c.Run(testVector)
	require.NoError(t, err)
	assert.Equal(t, 0.8765, outcome.Gate.Confidence)
	score, _ := outcome.Scores.Get("alcohol")
	assert.Equal(t, 0.1235, score)
}

func TestCascade_MissingGroupClassifierOmitted(t *testing.T) {
	c := newCascade(
		gateMock(1, []float64{0.1, 0.9}),
		map[string]port.BinaryClassifier{
			"alcohol": groupMock([]float64{0.2, 0.8}),
			"nitrile": groupMock([]float64{0.3, 0.7}),
		},
		[]string{"alcohol", "carbonyl", "nitrile"},
	)

	outcome, err := c.Run(testVector)
	require.NoError(t, err)

	assert.Equal(t, []string{"alcohol", "nitrile"}, outcome.Scores.Groups())
	_, ok := outcome.Scores.Get("carbonyl")
	assert.False(t, ok)
	assert.Equal(t, []string{"alcohol", "nitrile"}, outcome.Detected)
}

func TestCascade_Level1PredictError(t *testing.T) {
	gate := new(mocks.MockBinaryClassifier)
	gate.On("Predict", testVector).Return(0, errors.New("shape mismatch"))
	c := newCascade(gate, nil, []string{"alcohol"})

	_, err := c.Run(testVector)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "level1 predict")
}

func TestCascade_Level1ProbaError(t *testing.T) {
	gate := new(mocks.MockBinaryClassifier)
	gate.On("Predict", testVector).Return(1, nil)
	gate.On("Proba", testVector).Return(nil, errors.New("shape mismatch"))
	c := newCascade(gate, nil, []string{"alcohol"})

	_, err := c.Run(testVector)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "level1 proba")
}

func TestCascade_Level2ErrorFailsRun(t *testing.T) {
	bad := new(mocks.MockBinaryClassifier)
	bad.On("Proba", testVector).Return(nil, errors.New("corrupt weights"))
	c := newCascade(
		gateMock(1, []float64{0.1, 0.9}),
		map[string]port.BinaryClassifier{"alcohol": bad},
		[]string{"alcohol"},
	)

	_, err := c.Run(testVector)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "level2 alcohol")
}

func TestCascade_Level2ShortProbaVector(t *testing.T) {
	c := newCascade(
		gateMock(1, []float64{0.1, 0.9}),
		map[string]port.BinaryClassifier{"alcohol": groupMock([]float64{1})},
		[]string{"alcohol"},
	)

	_, err := c.Run(testVector)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "probabilities")
}

func TestCascade_ScoreOrderFollowsDeclaration(t *testing.T) {
	level2 := map[string]port.BinaryClassifier{
		"nitrile":  groupMock([]float64{0.9, 0.1}),
		"alcohol":  groupMock([]float64{0.9, 0.1}),
		"carbonyl": groupMock([]float64{0.9, 0.1}),
	}
	c := newCascade(
		gateMock(1, []float64{0.1, 0.9}),
		level2,
		[]string{"nitrile", "alcohol", "carbonyl"},
	)

	outcome, err := c.Run(testVector)
	require.NoError(t, err)
	assert.Equal(t, []string{"nitrile", "alcohol", "carbonyl"}, outcome.Scores.Groups())
}
