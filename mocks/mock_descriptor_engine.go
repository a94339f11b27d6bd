package mocks

import (
	"github.com/stretchr/testify/mock"

	"molpredict/internal/port"
)

// MockDescriptorEngine is a mock implementation of port.DescriptorEngine.
type MockDescriptorEngine struct {
	mock.Mock
}

func (m *MockDescriptorEngine) Parse(notation string) (port.Molecule, error) {
	args := m.Called(notation)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(port.Molecule), args.Error(1)
}
