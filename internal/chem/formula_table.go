package chem

import "strings"

// formulaTable maps elemental formulas to a representative SMILES string.
// Subscript spellings are listed alongside their ASCII forms so that direct
// lookup succeeds without normalization.
var formulaTable = map[string]string{
	// Simple inorganic molecules
	"H2O": "O", "H₂O": "O",
	"CO2": "O=C=O", "CO₂": "O=C=O",
	"CO":  "[C-]#[O+]",
	"NH3": "N", "NH₃": "N",
	"CH4": "C", "CH₄": "C",
	"H2": "[H][H]", "H₂": "[H][H]",
	"O2": "O=O", "O₂": "O=O",
	"N2": "N#N", "N₂": "N#N",
	"HCl": "Cl",
	"HF":  "F",
	"HBr": "Br",
	"HI":  "I",
	"H2S": "S", "H₂S": "S",
	"SO2": "O=S=O", "SO₂": "O=S=O",
	"NO":  "[N]=O",
	"NO2": "[N+](=O)[O-]", "NO₂": "[N+](=O)[O-]",
	"N2O": "[N-]=[N+]=O", "N₂O": "[N-]=[N+]=O",
	"HNO3": "O[N+](=O)[O-]", "HNO₃": "O[N+](=O)[O-]",
	"H2SO4": "OS(=O)(=O)O", "H₂SO₄": "OS(=O)(=O)O",
	"H3PO4": "OP(=O)(O)O", "H₃PO₄": "OP(=O)(O)O",

	// Alcohols
	"CH3OH": "CO", "CH₃OH": "CO",
	"C2H6O": "CCO", "C₂H₆O": "CCO",
	"C3H8O": "CCCO", "C₃H₈O": "CCCO",
	"C4H10O": "CCCCO", "C₄H₁₀O": "CCCCO",

	// Aldehydes and ketones
	"CH2O": "C=O", "CH₂O": "C=O",
	"C2H4O": "CC=O", "C₂H₄O": "CC=O",
	"C3H6O": "CC(=O)C", "C₃H₆O": "CC(=O)C",

	// Carboxylic acids
	"CH2O2": "C(=O)O", "CH₂O₂": "C(=O)O",
	"C2H4O2": "CC(=O)O", "C₂H₄O₂": "CC(=O)O",
	"C3H6O2": "CCC(=O)O", "C₃H₆O₂": "CCC(=O)O",
	"C4H8O2": "CCCC(=O)O", "C₄H₈O₂": "CCCC(=O)O",
	"C7H6O2": "O=C(O)c1ccccc1", "C₇H₆O₂": "O=C(O)c1ccccc1",

	// Alkanes
	"C2H6": "CC", "C₂H₆": "CC",
	"C3H8": "CCC", "C₃H₈": "CCC",
	"C4H10": "CCCC", "C₄H₁₀": "CCCC",
	"C5H12": "CCCCC", "C₅H₁₂": "CCCCC",
	"C6H14": "CCCCCC", "C₆H₁₄": "CCCCCC",

	// Alkenes
	"C2H4": "C=C", "C₂H₄": "C=C",
	"C3H6": "CC=C", "C₃H₆": "CC=C",

	// Alkynes
	"C2H2": "C#C", "C₂H₂": "C#C",
	"C3H4": "CC#C", "C₃H₄": "CC#C",

	// Aromatics
	"C6H6": "c1ccccc1", "C₆H₆": "c1ccccc1",
	"C7H8": "Cc1ccccc1", "C₇H₈": "Cc1ccccc1",
	"C6H5OH": "Oc1ccccc1",
	"C6H4Cl2": "Clc1ccc(Cl)cc1", "C₆H₄Cl₂": "Clc1ccc(Cl)cc1",

	// Amines
	"CH5N": "CN", "CH₅N": "CN",
	"C2H7N": "CCN", "C₂H₇N": "CCN",
	"C3H9N": "CCCN", "C₃H₉N": "CCCN",
	"C6H7N": "Nc1ccccc1", "C₆H₇N": "Nc1ccccc1",

	// Amides
	"CH3NO": "C(=O)N", "CH₃NO": "C(=O)N",
	"C2H5NO": "CC(=O)N", "C₂H₅NO": "CC(=O)N",

	// Nitriles
	"C2H3N": "CC#N", "C₂H₃N": "CC#N",
	"C6H5CN": "N#Cc1ccccc1", "C₆H₅CN": "N#Cc1ccccc1",

	// Halogenated
	"CH3Cl": "CCl", "CH₃Cl": "CCl",
	"CHCl3": "C(Cl)(Cl)Cl", "CHCl₃": "C(Cl)(Cl)Cl",
	"CCl4": "C(Cl)(Cl)(Cl)Cl", "CCl₄": "C(Cl)(Cl)(Cl)Cl",

	// Common biomolecules
	"C6H12O6": "C([C@@H]1[C@H]([C@@H]([C@H]([C@H](O1)O)O)O)O)O",
	"C2H6O2":  "OCCO",
	"C₂H₆O₂":  "OCCO",
	"C3H8O3": "OCC(O)CO", "C₃H₈O₃": "OCC(O)CO",
}

var subscriptDigits = strings.NewReplacer(
	"₀", "0", "₁", "1", "₂", "2", "₃", "3", "₄", "4",
	"₅", "5", "₆", "6", "₇", "7", "₈", "8", "₉", "9",
)

// LookupFormula resolves an elemental formula to its SMILES representation.
// Interior spaces are ignored; after the verbatim attempt the uppercase,
// lowercase and subscript-to-ASCII spellings are tried in that order.
func LookupFormula(formula string) (string, bool) {
	cleaned := strings.ReplaceAll(formula, " ", "")
	if smiles, ok := formulaTable[cleaned]; ok {
		return smiles, true
	}
	for _, variant := range []string{
		strings.ToUpper(cleaned),
		strings.ToLower(cleaned),
		subscriptDigits.Replace(cleaned),
	} {
		if smiles, ok := formulaTable[variant]; ok {
			return smiles, true
		}
	}
	return "", false
}

// KnownFormulaCount reports the number of table entries, counting subscript
// spellings separately.
func KnownFormulaCount() int {
	return len(formulaTable)
}
