// Command ingest converts a molecule embedding dataset into a SQL seed file.
// Reads CSV or XLSX input with a smiles column and numeric embedding columns.
// Usage: go run ./cmd/ingest [dataset.(csv|xlsx)] [models/manifest.json]
// Output: db/seeds/molecules.sql
package main

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"molpredict/internal/dataset"
	"molpredict/internal/model"
	"molpredict/internal/port"
)

const batchSize = 500

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	inPath := "dataset.csv"
	manifestPath := "models/manifest.json"
	if len(os.Args) > 1 {
		inPath = os.Args[1]
	}
	if len(os.Args) > 2 {
		manifestPath = os.Args[2]
	}
	outPath := "db/seeds/molecules.sql"

	groups := manifestGroups(manifestPath)

	var rows []port.MoleculeEmbedding
	var err error
	switch strings.ToLower(filepath.Ext(inPath)) {
	case ".xlsx":
		rows, err = parseXLSX(inPath, groups)
	default:
		var ds *dataset.Dataset
		ds, err = dataset.LoadCSV(inPath, groups, 0)
		if ds != nil {
			rows = ds.Rows
		}
	}
	if err != nil {
		return fmt.Errorf("read dataset: %w", err)
	}
	if len(rows) == 0 {
		return fmt.Errorf("dataset %s contains no usable rows", inPath)
	}

	if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}
	out, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("create output file: %w", err)
	}
	defer func() { _ = out.Close() }()

	w := func(s string) error { _, werr := fmt.Fprintln(out, s); return werr }

	for _, line := range []string{
		"-- Molecule embedding seed data generated from " + filepath.Base(inPath) + ".",
		fmt.Sprintf("-- %d molecules in batches of %d.", len(rows), batchSize),
		"-- Run: make seed-molecules",
		"BEGIN;",
		"",
	} {
		if werr := w(line); werr != nil {
			return fmt.Errorf("write header: %w", werr)
		}
	}

	for i := 0; i < len(rows); i += batchSize {
		end := i + batchSize
		if end > len(rows) {
			end = len(rows)
		}
		if err := writeBatch(out, rows[i:end]); err != nil {
			return fmt.Errorf("write batch at offset %d: %w", i, err)
		}
	}

	for _, line := range []string{"", "COMMIT;"} {
		if werr := w(line); werr != nil {
			return fmt.Errorf("write footer: %w", werr)
		}
	}

	log.Printf("Generated %d molecules (%d batches) in %s",
		len(rows), (len(rows)+batchSize-1)/batchSize, outPath)
	return nil
}

// manifestGroups reads the declared group names so their label columns can
// be excluded from embeddings. A missing manifest means no columns are
// skipped.
func manifestGroups(path string) []string {
	raw, err := os.ReadFile(path)
	if err != nil {
		log.Printf("no manifest at %s, keeping all numeric columns", path)
		return nil
	}
	var m model.Manifest
	if err := json.Unmarshal(raw, &m); err != nil {
		log.Printf("manifest %s unreadable: %v", path, err)
		return nil
	}
	return m.Groups
}

// parseXLSX reads the first sheet. The header row must contain a smiles
// column; group label columns are skipped and every remaining column is
// parsed as an embedding component.
func parseXLSX(path string, groups []string) ([]port.MoleculeEmbedding, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open Excel file: %w", err)
	}
	defer func() { _ = f.Close() }()

	sheetRows, err := f.GetRows(f.GetSheetName(0))
	if err != nil {
		return nil, err
	}
	if len(sheetRows) == 0 {
		return nil, fmt.Errorf("sheet has no header row")
	}

	labels := make(map[string]bool, len(groups))
	for _, g := range groups {
		labels[g] = true
	}

	smilesCol := -1
	var embCols []int
	for i, name := range sheetRows[0] {
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
		return nil, fmt.Errorf("sheet has no smiles column")
	}

	var rows []port.MoleculeEmbedding
	skipped := 0
	for _, row := range sheetRows[1:] {
		smiles := strings.TrimSpace(cellVal(row, smilesCol))
		if smiles == "" {
			skipped++
			continue
		}
		emb := make([]float64, 0, len(embCols))
		ok := true
		for _, col := range embCols {
			v, perr := strconv.ParseFloat(strings.TrimSpace(cellVal(row, col)), 64)
			if perr != nil {
				ok = false
				break
			}
			emb = append(emb, v)
		}
		if !ok {
			skipped++
			continue
		}
		rows = append(rows, port.MoleculeEmbedding{SMILES: smiles, Embedding: emb})
	}
	if skipped > 0 {
		log.Printf("skipped %d malformed rows in %s", skipped, path)
	}
	return rows, nil
}

func writeBatch(out *os.File, batch []port.MoleculeEmbedding) error {
	if len(batch) == 0 {
		return nil
	}

	var b strings.Builder
	b.WriteString("INSERT INTO molecules (smiles, embedding) VALUES\n")

	for i := range batch {
		row := &batch[i]
		if i > 0 {
			b.WriteString(",\n")
		}
		emb, err := json.Marshal(row.Embedding)
		if err != nil {
			return err
		}
		fmt.Fprintf(&b, "  ('%s', '%s'::jsonb)", escapeSQL(row.SMILES), emb)
	}

	b.WriteString("\nON CONFLICT (smiles) DO NOTHING;\n")

	_, err := out.WriteString(b.String())
	return err
}

func cellVal(row []string, idx int) string {
	if idx < len(row) {
		return row[idx]
	}
	return ""
}

func escapeSQL(s string) string {
	return strings.ReplaceAll(s, "'", "''")
}
