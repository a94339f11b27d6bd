package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"molpredict/internal/domain"
)

// MockPredictionService is a mock implementation of service.PredictionService.
type MockPredictionService struct {
	mock.Mock
}

func (m *MockPredictionService) Predict(ctx context.Context, input string) *domain.PredictionResult {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).(*domain.PredictionResult)
}

func (m *MockPredictionService) PredictBatch(ctx context.Context, inputs []string) (*domain.BatchResult, error) {
	args := m.Called(ctx, inputs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BatchResult), args.Error(1)
}
