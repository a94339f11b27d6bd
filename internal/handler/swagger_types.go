package handler

// Swagger type definitions for API documentation.
// These types are used by swag to generate OpenAPI documentation.

// PredictRequest represents the prediction request body. The smiles field
// accepts either a SMILES string or a molecular formula.
type PredictRequest struct {
	SMILES string `json:"smiles" binding:"required" example:"CCO"`
}

// BatchPredictRequest represents the batch prediction request body.
type BatchPredictRequest struct {
	SMILESList []string `json:"smiles_list" binding:"required" example:"CCO,H2O,CC(=O)C"`
}
