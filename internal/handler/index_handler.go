package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Index handles GET / with a service description and endpoint list.
func Index(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"name":        "Molecular Functional Group Predictor API",
		"version":     "1.0.0",
		"status":      "active",
		"description": "Multi-level ML pipeline for functional group prediction",
		"endpoints": gin.H{
			"/api/v1/predict":       "POST - Predict functional groups (SMILES or formula)",
			"/api/v1/batch_predict": "POST - Batch predictions",
			"/api/v1/health":        "GET - Health check",
			"/api/v1/stats":         "GET - System statistics",
			"/api/v1/models":        "GET - Model information",
		},
		"supported_inputs": []string{
			"SMILES strings (e.g., CCO, CC(=O)C)",
			"Molecular formulas (e.g., H2O, HNO3, C2H5OH)",
		},
	})
}

// NotFound handles unmatched routes.
func NotFound(c *gin.Context) {
	c.JSON(http.StatusNotFound, gin.H{
		"success": false,
		"error":   "NOT_FOUND",
		"message": "The requested endpoint does not exist",
		"available_endpoints": []string{
			"/api/v1/predict",
			"/api/v1/batch_predict",
			"/api/v1/health",
			"/api/v1/stats",
			"/api/v1/models",
		},
	})
}
