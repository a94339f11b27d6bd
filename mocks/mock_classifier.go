package mocks

import (
	"github.com/stretchr/testify/mock"
)

// MockBinaryClassifier is a mock implementation of port.BinaryClassifier.
type MockBinaryClassifier struct {
	mock.Mock
}

func (m *MockBinaryClassifier) Predict(features []float64) (int, error) {
	args := m.Called(features)
	return args.Int(0), args.Error(1)
}

func (m *MockBinaryClassifier) Proba(features []float64) ([]float64, error) {
	args := m.Called(features)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]float64), args.Error(1)
}
