package port

import "context"

// MoleculeEmbedding is one dataset row: canonical notation plus its
// precomputed feature vector.
type MoleculeEmbedding struct {
	SMILES    string    `db:"smiles"`
	Embedding []float64 `db:"-"`
}

// MoleculeRepository defines the contract for molecule dataset access.
type MoleculeRepository interface {
	ListEmbeddings(ctx context.Context, limit int) ([]MoleculeEmbedding, error)
	Count(ctx context.Context) (int, error)
}
