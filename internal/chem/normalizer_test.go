package chem_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"molpredict/internal/chem"
	"molpredict/internal/descriptor"
	"molpredict/internal/domain"
)

func TestScrub_TrimsAndStripsControls(t *testing.T) {
	assert.Equal(t, "CCO", chem.Scrub("\tCCO\n"))
	assert.Equal(t, "CCO", chem.Scrub("CC\u0000O"))
	assert.Equal(t, "", chem.Scrub("   \r\n"))

	// Interior spaces survive; formula lookup strips them itself.
	assert.Equal(t, "H2 O", chem.Scrub("H2 O"))
}

func TestLookupFormula_CommonFormulas(t *testing.T) {
	cases := map[string]string{
		"H2O":  "O",
		"CO2":  "O=C=O",
		"CH4":  "C",
		"NH3":  "N",
		"HNO3": "O[N+](=O)[O-]",
	}
	for formula, want := range cases {
		got, ok := chem.LookupFormula(formula)
		require.True(t, ok, "formula %s", formula)
		assert.Equal(t, want, got)
	}
}

func TestLookupFormula_CaseAndSpacing(t *testing.T) {
	got, ok := chem.LookupFormula("h2o")
	require.True(t, ok)
	assert.Equal(t, "O", got)

	got, ok = chem.LookupFormula("H2 O")
	require.True(t, ok)
	assert.Equal(t, "O", got)
}

func TestLookupFormula_SubscriptDigits(t *testing.T) {
	got, ok := chem.LookupFormula("H₂O")
	require.True(t, ok)
	assert.Equal(t, "O", got)

	got, ok = chem.LookupFormula("C₂H₆O")
	require.True(t, ok)
	assert.Equal(t, "CCO", got)
}

func TestLookupFormula_Unknown(t *testing.T) {
	_, ok := chem.LookupFormula("XYZ123")
	assert.False(t, ok)
}

func TestKnownFormulaCount(t *testing.T) {
	assert.Greater(t, chem.KnownFormulaCount(), 40)
}

func TestNormalizer_EmptyInput(t *testing.T) {
	n := chem.NewNormalizer(descriptor.NewEngine())

	for _, input := range []string{"", "   ", "\t\n"} {
		_, err := n.Normalize(input)
		assert.True(t, errors.Is(err, domain.ErrEmptyInput), "input %q", input)
	}
}

func TestNormalizer_NotationWinsOverFormula(t *testing.T) {
	n := chem.NewNormalizer(descriptor.NewEngine())

	// CO is both carbon monoxide's formula and methanol's SMILES; the
	// notation reading wins.
	res, err := n.Normalize("CO")
	require.NoError(t, err)
	assert.Equal(t, "CO", res.Notation)
	assert.Equal(t, domain.InputTypeSMILES, res.Kind)
}

func TestNormalizer_FormulaFallback(t *testing.T) {
	n := chem.NewNormalizer(descriptor.NewEngine())

	res, err := n.Normalize("H2O")
	require.NoError(t, err)
	assert.Equal(t, "O", res.Notation)
	assert.Equal(t, domain.InputTypeFormula, res.Kind)
}

func TestNormalizer_SubscriptFormula(t *testing.T) {
	n := chem.NewNormalizer(descriptor.NewEngine())

	res, err := n.Normalize(" H₂O ")
	require.NoError(t, err)
	assert.Equal(t, "O", res.Notation)
	assert.Equal(t, domain.InputTypeFormula, res.Kind)
}

func TestNormalizer_UnresolvedInput(t *testing.T) {
	n := chem.NewNormalizer(descriptor.NewEngine())

	_, err := n.Normalize("definitely not a molecule")
	assert.True(t, errors.Is(err, domain.ErrUnresolvedInput))

	// Aromatic atoms outside a ring are rejected by the engine and CC is
	// not a formula, so nothing can resolve it.
	_, err = n.Normalize("cc")
	assert.True(t, errors.Is(err, domain.ErrUnresolvedInput))
}

func TestNormalizer_NilEngine_FormulaStillResolves(t *testing.T) {
	n := chem.NewNormalizer(nil)

	res, err := n.Normalize("CH4")
	require.NoError(t, err)
	assert.Equal(t, "C", res.Notation)
	assert.Equal(t, domain.InputTypeFormula, res.Kind)
}

func TestNormalizer_NilEngine_PassesUnknownThrough(t *testing.T) {
	n := chem.NewNormalizer(nil)

	// Without an engine nothing can prove the string invalid; it passes
	// through for cache-side resolution.
	res, err := n.Normalize("C1=CC=CC=C1")
	require.NoError(t, err)
	assert.Equal(t, "C1=CC=CC=C1", res.Notation)
	assert.Equal(t, domain.InputTypeSMILES, res.Kind)
}
