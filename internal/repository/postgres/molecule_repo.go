package postgres

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jmoiron/sqlx"

	"molpredict/internal/port"
)

type moleculeRepo struct {
	db *sqlx.DB
}

// NewMoleculeRepo creates a new PostgreSQL-backed MoleculeRepository.
func NewMoleculeRepo(db *sqlx.DB) port.MoleculeRepository {
	return &moleculeRepo{db: db}
}

// moleculeRow scans the embedding jsonb column as raw bytes.
type moleculeRow struct {
	SMILES    string `db:"smiles"`
	Embedding []byte `db:"embedding"`
}

func (r *moleculeRepo) ListEmbeddings(ctx context.Context, limit int) ([]port.MoleculeEmbedding, error) {
	query := `SELECT smiles, embedding FROM molecules ORDER BY id`
	var args []interface{}
	if limit > 0 {
		query += ` LIMIT $1`
		args = append(args, limit)
	}

	var rows []moleculeRow
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("moleculeRepo.ListEmbeddings: %w", err)
	}

	out := make([]port.MoleculeEmbedding, 0, len(rows))
	for i := range rows {
		var emb []float64
		if err := json.Unmarshal(rows[i].Embedding, &emb); err != nil {
			return nil, fmt.Errorf("moleculeRepo.ListEmbeddings decode embedding for %q: %w", rows[i].SMILES, err)
		}
		out = append(out, port.MoleculeEmbedding{SMILES: rows[i].SMILES, Embedding: emb})
	}
	return out, nil
}

func (r *moleculeRepo) Count(ctx context.Context) (int, error) {
	var count int
	if err := r.db.GetContext(ctx, &count, "SELECT COUNT(*) FROM molecules"); err != nil {
		return 0, fmt.Errorf("moleculeRepo.Count: %w", err)
	}
	return count, nil
}
