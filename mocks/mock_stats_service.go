package mocks

import (
	"github.com/stretchr/testify/mock"

	"molpredict/internal/domain"
)

// MockStatsService is a mock implementation of service.StatsService.
type MockStatsService struct {
	mock.Mock
}

func (m *MockStatsService) Stats() *domain.Stats {
	args := m.Called()
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).(*domain.Stats)
}

func (m *MockStatsService) Health() *domain.Health {
	args := m.Called()
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).(*domain.Health)
}

func (m *MockStatsService) Models() *domain.ModelsInfo {
	args := m.Called()
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).(*domain.ModelsInfo)
}
