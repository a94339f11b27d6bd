package features

import (
	"strings"

	"molpredict/internal/port"
)

// Cache holds the notation to feature-vector map built from the training
// dataset. It is read-only after construction; lookups hand out copies so
// cached vectors can never be mutated by callers.
type Cache struct {
	vectors map[string][]float64
	dims    int
}

// NewCache builds a cache from dataset rows. Every vector is normalized to
// dims at load time so lookups need no further adjustment. The second return
// value is the number of rows whose length had to be adjusted.
func NewCache(rows []port.MoleculeEmbedding, dims int) (*Cache, int) {
	c := &Cache{vectors: make(map[string][]float64, len(rows)), dims: dims}
	adjusted := 0
	for _, row := range rows {
		key := strings.TrimSpace(row.SMILES)
		if key == "" {
			continue
		}
		vec := row.Embedding
		if len(vec) != dims {
			adjusted++
		}
		c.vectors[key] = fitLength(vec, dims)
	}
	return c, adjusted
}

// Lookup returns a copy of the cached vector for notation.
func (c *Cache) Lookup(notation string) ([]float64, bool) {
	vec, ok := c.vectors[notation]
	if !ok {
		return nil, false
	}
	out := make([]float64, len(vec))
	copy(out, vec)
	return out, true
}

// Len reports the number of cached molecules.
func (c *Cache) Len() int {
	return len(c.vectors)
}

// Dims reports the vector length every entry was normalized to.
func (c *Cache) Dims() int {
	return c.dims
}

// fitLength copies vec into a slice of exactly n entries, zero padding or
// truncating as needed.
func fitLength(vec []float64, n int) []float64 {
	out := make([]float64, n)
	copy(out, vec)
	return out
}
