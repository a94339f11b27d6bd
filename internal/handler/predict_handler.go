package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"molpredict/internal/service"
)

// PredictionHandler handles prediction endpoints.
type PredictionHandler struct {
	predictionService service.PredictionService
}

// NewPredictionHandler creates a new PredictionHandler.
func NewPredictionHandler(predictionService service.PredictionService) *PredictionHandler {
	return &PredictionHandler{predictionService: predictionService}
}

// Predict handles POST /api/v1/predict
// @Summary Predict functional groups for one molecule
// @Description Accepts a SMILES string or a molecular formula in the smiles field and runs the two-level classifier cascade. Failures are reported as well-formed results with success=false and an error code.
// @Tags predict
// @Accept json
// @Produce json
// @Param request body PredictRequest true "Molecule input"
// @Success 200 {object} domain.PredictionResult "Prediction result"
// @Failure 400 {object} domain.PredictionResult "Input could not be processed"
// @Failure 503 {object} domain.PredictionResult "Models not loaded"
// @Router /predict [post]
func (h *PredictionHandler) Predict(c *gin.Context) {
	var req struct {
		SMILES string `json:"smiles"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondInvalid(c, `request body must be JSON with a "smiles" string field (SMILES or molecular formula)`)
		return
	}

	result := h.predictionService.Predict(c.Request.Context(), req.SMILES)
	RespondResult(c, result)
}

// PredictBatch handles POST /api/v1/batch_predict
// @Summary Predict functional groups for a batch of molecules
// @Description Runs the cascade for up to 100 molecules. The batch is validated before any molecule runs; per-molecule failures appear inside results without failing the batch.
// @Tags predict
// @Accept json
// @Produce json
// @Param request body BatchPredictRequest true "Batch input"
// @Success 200 {object} domain.BatchResult "Batch results in input order"
// @Failure 400 {object} ErrorBody "Empty or oversized batch"
// @Router /batch_predict [post]
func (h *PredictionHandler) PredictBatch(c *gin.Context) {
	var req struct {
		SMILESList []string `json:"smiles_list"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondInvalid(c, `request body must include "smiles_list" as an array of strings`)
		return
	}

	batch, err := h.predictionService.PredictBatch(c.Request.Context(), req.SMILESList)
	if err != nil {
		RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, batch)
}
