package descriptor

import (
	"fmt"

	"molpredict/internal/port"
)

// Engine is the built-in descriptor engine: a self-contained notation parser
// and descriptor calculator. The zero value is ready to use and safe for
// concurrent use; parsed molecules are independent of the engine.
type Engine struct{}

// NewEngine returns the built-in descriptor engine.
func NewEngine() *Engine {
	return &Engine{}
}

// Parse validates notation and returns an opaque molecule handle.
func (e *Engine) Parse(notation string) (port.Molecule, error) {
	m, err := parseSMILES(notation)
	if err != nil {
		return nil, fmt.Errorf("parse notation: %w", err)
	}
	return m, nil
}

var _ port.DescriptorEngine = (*Engine)(nil)
var _ port.Molecule = (*mol)(nil)
