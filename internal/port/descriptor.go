package port

// Molecule is an opaque handle for a successfully parsed molecule.
type Molecule interface {
	// Descriptors returns the primary descriptor block.
	Descriptors() ([]float64, error)
	// ShapeDescriptors returns the supplementary shape descriptor block.
	ShapeDescriptors() ([]float64, error)
}

// DescriptorEngine abstracts notation parsing and descriptor computation.
// Deployments without the capability pass a nil engine.
type DescriptorEngine interface {
	Parse(notation string) (Molecule, error)
}
