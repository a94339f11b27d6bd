package chem

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"

	"molpredict/internal/domain"
	"molpredict/internal/port"
)

// Resolution is the outcome of normalizing a raw input string.
type Resolution struct {
	Notation string
	Kind     domain.InputType
}

// Normalizer turns arbitrary user input into canonical notation. It tries a
// direct notation parse first and falls back to the formula table. With a nil
// engine nothing can prove a string invalid, so unknown input passes through
// for cache-side resolution.
type Normalizer struct {
	engine port.DescriptorEngine
}

// NewNormalizer creates a Normalizer. engine may be nil.
func NewNormalizer(engine port.DescriptorEngine) *Normalizer {
	return &Normalizer{engine: engine}
}

// Scrub canonicalizes the Unicode form of raw input, drops control
// characters and trims surrounding whitespace. NFC keeps subscript digits
// intact so formula lookup still sees them.
func Scrub(raw string) string {
	cleaned := norm.NFC.String(raw)
	cleaned = strings.Map(func(r rune) rune {
		if unicode.IsControl(r) {
			return -1
		}
		return r
	}, cleaned)
	return strings.TrimSpace(cleaned)
}

// Normalize resolves raw input to canonical notation. It returns
// domain.ErrEmptyInput for blank input and domain.ErrUnresolvedInput when a
// working engine rejects the string and no formula matches.
func (n *Normalizer) Normalize(raw string) (*Resolution, error) {
	cleaned := Scrub(raw)
	if cleaned == "" {
		return nil, domain.ErrEmptyInput
	}
	if n.engine == nil {
		if smiles, ok := LookupFormula(cleaned); ok {
			return &Resolution{Notation: smiles, Kind: domain.InputTypeFormula}, nil
		}
		return &Resolution{Notation: cleaned, Kind: domain.InputTypeSMILES}, nil
	}
	if _, err := n.engine.Parse(cleaned); err == nil {
		return &Resolution{Notation: cleaned, Kind: domain.InputTypeSMILES}, nil
	}
	if smiles, ok := LookupFormula(cleaned); ok {
		return &Resolution{Notation: smiles, Kind: domain.InputTypeFormula}, nil
	}
	return nil, domain.ErrUnresolvedInput
}
