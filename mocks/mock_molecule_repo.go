package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"molpredict/internal/port"
)

// MockMoleculeRepo is a mock implementation of port.MoleculeRepository.
type MockMoleculeRepo struct {
	mock.Mock
}

func (m *MockMoleculeRepo) ListEmbeddings(ctx context.Context, limit int) ([]port.MoleculeEmbedding, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]port.MoleculeEmbedding), args.Error(1)
}

func (m *MockMoleculeRepo) Count(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}
