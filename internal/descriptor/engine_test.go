package descriptor_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"molpredict/internal/descriptor"
)

func TestEngine_Parse_AcceptsCommonNotation(t *testing.T) {
	e := descriptor.NewEngine()

	for _, notation := range []string{
		"C",
		"CCO",
		"CC(=O)O",
		"c1ccccc1",
		"C1CC1",
		"N#N",
		"O=C=O",
		"C/C=C/C",
		"CC(C)Cc1ccc(cc1)C(C)C(=O)O", // ibuprofen
		"[Na+].[Cl-]",
		"[NH4+]",
		"[13CH4]",
		"[Fe+2]",
		"[CH3:1]",
		"C%10CCCCC%10",
		"c1ccc2ccccc2c1", // naphthalene
		"c1ccoc1",        // furan
		"c1ccsc1",        // thiophene
		"c1ccncc1",       // pyridine
		"c1cc[nH]c1",     // pyrrole
	} {
		_, err := e.Parse(notation)
		assert.NoError(t, err, "notation %q", notation)
	}
}

func TestEngine_Parse_RejectsMalformed(t *testing.T) {
	e := descriptor.NewEngine()

	for _, notation := range []string{
		"",
		"C(",
		"C)",
		"C1CC",
		"C=",
		"=C",
		"C==C",
		"cc",       // aromatic atoms outside a ring
		"C6H6",     // formula, not notation: bare H needs brackets
		"CZ",       // Z is not in the organic subset
		"C#C#C",    // middle carbon exceeds valence
		"C(C)(C)(C)(C)C", // five bonds on one carbon
		"C11",      // ring closes on its own atom
		"[C",       // unterminated bracket
		"[Xx]",     // unknown element
		"C%1C",     // % needs two digits
	} {
		_, err := e.Parse(notation)
		assert.Error(t, err, "notation %q", notation)
	}
}

func TestEngine_Parse_DotSeparatesComponents(t *testing.T) {
	e := descriptor.NewEngine()

	m, err := e.Parse("O.O")
	require.NoError(t, err)

	// Two disconnected waters still yield descriptors.
	primary, err := m.Descriptors()
	require.NoError(t, err)
	assert.InDelta(t, 2*18.015, primary[0], 0.01)
}

func TestMolecule_Descriptors_Water(t *testing.T) {
	e := descriptor.NewEngine()
	m, err := e.Parse("O")
	require.NoError(t, err)

	primary, err := m.Descriptors()
	require.NoError(t, err)
	require.Len(t, primary, 12)

	assert.InDelta(t, 18.015, primary[0], 0.01) // molecular weight
	assert.Equal(t, 1.0, primary[2])            // H donors
	assert.Equal(t, 1.0, primary[3])            // H acceptors
	assert.Equal(t, 0.0, primary[9])            // rings
	assert.Equal(t, 1.0, primary[10])           // heteroatoms
}

func TestMolecule_Descriptors_Benzene(t *testing.T) {
	e := descriptor.NewEngine()
	m, err := e.Parse("c1ccccc1")
	require.NoError(t, err)

	primary, err := m.Descriptors()
	require.NoError(t, err)

	assert.InDelta(t, 78.114, primary[0], 0.01) // molecular weight
	assert.Equal(t, 0.0, primary[2])            // no H donors
	assert.Equal(t, 1.0, primary[6])            // aromatic rings
	assert.Equal(t, 0.0, primary[8])            // aliphatic rings
	assert.Equal(t, 1.0, primary[9])            // ring count
	assert.Equal(t, 0.0, primary[10])           // heteroatoms
}

func TestMolecule_Descriptors_Ethanol(t *testing.T) {
	e := descriptor.NewEngine()
	m, err := e.Parse("CCO")
	require.NoError(t, err)

	primary, err := m.Descriptors()
	require.NoError(t, err)

	assert.InDelta(t, 46.069, primary[0], 0.01) // molecular weight
	assert.Equal(t, 1.0, primary[2])            // the hydroxyl donates
	assert.Equal(t, 1.0, primary[3])            // one acceptor
	assert.InDelta(t, 20.23, primary[4], 0.01)  // TPSA of one OH
}

func TestMolecule_Descriptors_Pyrrole(t *testing.T) {
	e := descriptor.NewEngine()
	m, err := e.Parse("c1cc[nH]c1")
	require.NoError(t, err)

	primary, err := m.Descriptors()
	require.NoError(t, err)

	assert.InDelta(t, 67.091, primary[0], 0.01) // molecular weight
	assert.Equal(t, 1.0, primary[2])            // the ring NH donates
	assert.Equal(t, 1.0, primary[6])            // aromatic rings
	assert.Equal(t, 1.0, primary[10])           // heteroatoms
}

func TestMolecule_ShapeDescriptors_Lengths(t *testing.T) {
	e := descriptor.NewEngine()
	m, err := e.Parse("CCCCC")
	require.NoError(t, err)

	shape, err := m.ShapeDescriptors()
	require.NoError(t, err)
	require.Len(t, shape, 5)

	// An unbranched saturated chain is entirely sp3.
	assert.Equal(t, 1.0, shape[3])
}

func TestMolecule_ShapeDescriptors_TooFewHeavyAtoms(t *testing.T) {
	e := descriptor.NewEngine()
	m, err := e.Parse("O")
	require.NoError(t, err)

	_, err = m.ShapeDescriptors()
	assert.Error(t, err)
}

func TestMolecule_Descriptors_CyclohexaneRings(t *testing.T) {
	e := descriptor.NewEngine()
	m, err := e.Parse("C1CCCCC1")
	require.NoError(t, err)

	primary, err := m.Descriptors()
	require.NoError(t, err)

	assert.Equal(t, 0.0, primary[6]) // aromatic rings
	assert.Equal(t, 1.0, primary[7]) // saturated rings
	assert.Equal(t, 1.0, primary[8]) // aliphatic rings
	assert.Equal(t, 1.0, primary[9]) // ring count
}
