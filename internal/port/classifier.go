package port

// BinaryClassifier is the contract every loaded model object must meet: a
// hard class prediction plus per-class probabilities for one feature vector.
// Implementations must be safe for concurrent use or serialize internally.
type BinaryClassifier interface {
	Predict(features []float64) (int, error)
	Proba(features []float64) ([]float64, error)
}
