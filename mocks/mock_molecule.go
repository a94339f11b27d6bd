package mocks

import (
	"github.com/stretchr/testify/mock"
)

// MockMolecule is a mock implementation of port.Molecule.
type MockMolecule struct {
	mock.Mock
}

func (m *MockMolecule) Descriptors() ([]float64, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]float64), args.Error(1)
}

func (m *MockMolecule) ShapeDescriptors() ([]float64, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]float64), args.Error(1)
}
