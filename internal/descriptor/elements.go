package descriptor

// element holds the per-element data the descriptor calculations need.
// Valences are the standard bonding valences in ascending order.
type element struct {
	mass     float64
	valences []int
}

var elements = map[string]element{
	"H":  {1.008, []int{1}},
	"Li": {6.941, []int{1}},
	"B":  {10.811, []int{3}},
	"C":  {12.011, []int{4}},
	"N":  {14.007, []int{3, 5}},
	"O":  {15.999, []int{2}},
	"F":  {18.998, []int{1}},
	"Na": {22.990, []int{1}},
	"Mg": {24.305, []int{2}},
	"Al": {26.982, []int{3}},
	"Si": {28.086, []int{4}},
	"P":  {30.974, []int{3, 5}},
	"S":  {32.065, []int{2, 4, 6}},
	"Cl": {35.453, []int{1}},
	"K":  {39.098, []int{1}},
	"Ca": {40.078, []int{2}},
	"Fe": {55.845, []int{2, 3}},
	"Cu": {63.546, []int{1, 2}},
	"Zn": {65.380, []int{2}},
	"As": {74.922, []int{3, 5}},
	"Se": {78.971, []int{2, 4, 6}},
	"Br": {79.904, []int{1}},
	"Sn": {118.710, []int{2, 4}},
	"I":  {126.904, []int{1}},
}

// organicSubset lists elements that may be written without brackets.
var organicSubset = map[string]bool{
	"B": true, "C": true, "N": true, "O": true, "P": true,
	"S": true, "F": true, "Cl": true, "Br": true, "I": true,
}

// aromaticSubset maps lowercase aromatic symbols to their element.
var aromaticSubset = map[byte]string{
	'b': "B", 'c': "C", 'n': "N", 'o': "O", 'p': "P", 's': "S",
}

const hydrogenMass = 1.008
