package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"

	"molpredict/internal/port"
)

// Dataset holds molecule embeddings loaded from a reference source.
type Dataset struct {
	// Rows are the loaded embeddings, capped at the configured row limit.
	Rows []port.MoleculeEmbedding
	// Total is the number of data rows in the source, before the cap.
	Total int
	// Dims is the number of embedding columns in the source.
	Dims int
}

// LoadCSV reads molecule embeddings from a CSV dataset file. The header must
// contain a smiles column; columns named after a functional group are label
// columns and are excluded from the embedding. At most maxRows rows are
// loaded (0 disables the cap) while Total counts every data row in the file.
func LoadCSV(path string, groups []string, maxRows int) (*Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open dataset file: %w", err)
	}
	defer func() { _ = f.Close() }()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1

	header, err := r.Read()
	if err != nil {
		return nil, fmt.Errorf("read dataset header: %w", err)
	}

	labels := make(map[string]bool, len(groups))
	for _, g := range groups {
		labels[g] = true
	}

	smilesCol := -1
	var embCols []int
	for i, name := range header {
		name = strings.TrimSpace(name)
		switch {
		case strings.EqualFold(name, "smiles"):
			smilesCol = i
		case labels[name]:
			// label column, not part of the embedding
		default:
			embCols = append(embCols, i)
		}
	}
	if smilesCol < 0 {
		return nil, fmt.Errorf("dataset %s has no smiles column", path)
	}

	ds := &Dataset{Dims: len(embCols)}
	skipped := 0
	for {
		record, rerr := r.Read()
		if errors.Is(rerr, io.EOF) {
			break
		}
		if rerr != nil {
			return nil, fmt.Errorf("read dataset row: %w", rerr)
		}
		ds.Total++

		if maxRows > 0 && len(ds.Rows) >= maxRows {
			continue
		}

		row, ok := parseRow(record, smilesCol, embCols)
		if !ok {
			skipped++
			continue
		}
		ds.Rows = append(ds.Rows, row)
	}

	if skipped > 0 {
		log.Printf("dataset.LoadCSV: skipped %d malformed rows in %s", skipped, path)
	}
	log.Printf("dataset.LoadCSV: %d of %d molecules loaded from %s (%d embedding columns)",
		len(ds.Rows), ds.Total, path, ds.Dims)
	return ds, nil
}

// parseRow extracts the smiles string and embedding vector from one record.
func parseRow(record []string, smilesCol int, embCols []int) (port.MoleculeEmbedding, bool) {
	if smilesCol >= len(record) {
		return port.MoleculeEmbedding{}, false
	}
	emb := make([]float64, 0, len(embCols))
	for _, col := range embCols {
		if col >= len(record) {
			return port.MoleculeEmbedding{}, false
		}
		v, err := strconv.ParseFloat(strings.TrimSpace(record[col]), 64)
		if err != nil {
			return port.MoleculeEmbedding{}, false
		}
		emb = append(emb, v)
	}
	return port.MoleculeEmbedding{SMILES: strings.TrimSpace(record[smilesCol]), Embedding: emb}, true
}
