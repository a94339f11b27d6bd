package dataset_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"molpredict/internal/dataset"
)

func writeCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "dataset.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadCSV_LoadsEmbeddings(t *testing.T) {
	path := writeCSV(t, "smiles,emb_0,emb_1,alcohol\nCCO,0.1,0.2,1\nO,0.3,0.4,0\n")

	ds, err := dataset.LoadCSV(path, []string{"alcohol"}, 0)
	require.NoError(t, err)

	assert.Equal(t, 2, ds.Total)
	assert.Equal(t, 2, ds.Dims)
	require.Len(t, ds.Rows, 2)
	assert.Equal(t, "CCO", ds.Rows[0].SMILES)
	assert.Equal(t, []float64{0.1, 0.2}, ds.Rows[0].Embedding)
	assert.Equal(t, []float64{0.3, 0.4}, ds.Rows[1].Embedding)
}

func TestLoadCSV_EmptyGroupsKeepsLabelColumns(t *testing.T) {
	path := writeCSV(t, "smiles,emb_0,emb_1,alcohol\nCCO,0.1,0.2,1\n")

	// Without declared groups the label column is indistinguishable from
	// an embedding column.
	ds, err := dataset.LoadCSV(path, nil, 0)
	require.NoError(t, err)

	assert.Equal(t, 3, ds.Dims)
	assert.Equal(t, []float64{0.1, 0.2, 1}, ds.Rows[0].Embedding)
}

func TestLoadCSV_MaxRowsCapsRowsNotTotal(t *testing.T) {
	path := writeCSV(t, "smiles,emb_0\nA,1\nB,2\nC,3\nD,4\nE,5\n")

	ds, err := dataset.LoadCSV(path, nil, 3)
	require.NoError(t, err)

	assert.Len(t, ds.Rows, 3)
	assert.Equal(t, 5, ds.Total)
}

func TestLoadCSV_SkipsMalformedRows(t *testing.T) {
	path := writeCSV(t, "smiles,emb_0,emb_1\nCCO,0.1,0.2\nO,not-a-number,0.4\nC,0.5\nN,0.7,0.8\n")

	ds, err := dataset.LoadCSV(path, nil, 0)
	require.NoError(t, err)

	assert.Equal(t, 4, ds.Total)
	require.Len(t, ds.Rows, 2)
	assert.Equal(t, "CCO", ds.Rows[0].SMILES)
	assert.Equal(t, "N", ds.Rows[1].SMILES)
}

func TestLoadCSV_HeaderCaseInsensitive(t *testing.T) {
	path := writeCSV(t, "SMILES,emb_0\nCCO,0.5\n")

	ds, err := dataset.LoadCSV(path, nil, 0)
	require.NoError(t, err)
	assert.Equal(t, "CCO", ds.Rows[0].SMILES)
}

func TestLoadCSV_NoSmilesColumn(t *testing.T) {
	path := writeCSV(t, "name,emb_0\nethanol,0.5\n")

	_, err := dataset.LoadCSV(path, nil, 0)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no smiles column")
}

func TestLoadCSV_MissingFile(t *testing.T) {
	_, err := dataset.LoadCSV(filepath.Join(t.TempDir(), "absent.csv"), nil, 0)
	assert.Error(t, err)
}
