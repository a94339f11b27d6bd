package features

import (
	"fmt"

	"molpredict/internal/domain"
	"molpredict/internal/port"
)

const (
	// fallbackLen is the length of the degraded all-ones vector produced
	// when descriptor computation fails after a clean parse.
	fallbackLen = 17
	// shapeLen is the number of shape descriptors; a zero block of this
	// size substitutes for a failed shape stage.
	shapeLen = 5
)

// Resolver turns canonical notation into a feature vector of a fixed length.
// Cached dataset vectors win over computed descriptors.
type Resolver struct {
	cache  *Cache
	engine port.DescriptorEngine
	dims   int
}

// NewResolver creates a Resolver. cache and engine may each be nil when the
// deployment lacks them.
func NewResolver(cache *Cache, engine port.DescriptorEngine, dims int) *Resolver {
	return &Resolver{cache: cache, engine: engine, dims: dims}
}

// Dims reports the vector length every resolution produces.
func (r *Resolver) Dims() int {
	return r.dims
}

// Resolve produces the feature vector for notation and reports whether it
// came from the dataset cache. Without an engine, an uncached molecule fails
// with domain.ErrEngineUnavailable; an engine parse rejection maps to
// domain.ErrInvalidMolecule.
func (r *Resolver) Resolve(notation string) ([]float64, bool, error) {
	if r.cache != nil {
		if vec, ok := r.cache.Lookup(notation); ok {
			return vec, true, nil
		}
	}
	if r.engine == nil {
		return nil, false, domain.ErrEngineUnavailable
	}
	molecule, err := r.engine.Parse(notation)
	if err != nil {
		return nil, false, fmt.Errorf("%w: %v", domain.ErrInvalidMolecule, err)
	}
	primary, err := molecule.Descriptors()
	if err != nil {
		// Degraded fallback after a clean parse; the shape stage is
		// skipped so the outcome is deterministic.
		vec := make([]float64, fallbackLen)
		for i := range vec {
			vec[i] = 1.0
		}
		return fitLength(vec, r.dims), false, nil
	}
	shape, err := molecule.ShapeDescriptors()
	if err != nil {
		shape = make([]float64, shapeLen)
	}
	return fitLength(append(primary, shape...), r.dims), false, nil
}
