package handler

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"molpredict/internal/domain"
)

// ErrorBody is the flat payload for request-level failures. Prediction
// failures reuse domain.PredictionResult instead, which carries the same
// leading fields.
type ErrorBody struct {
	Success bool             `json:"success"`
	Error   domain.ErrorKind `json:"error"`
	Message string           `json:"message"`
}

// StatusForKind maps an error kind to its HTTP status code.
func StatusForKind(kind domain.ErrorKind) int {
	switch kind {
	case domain.ErrorKindModelsNotLoaded:
		return http.StatusServiceUnavailable
	case domain.ErrorKindInternal:
		return http.StatusInternalServerError
	default:
		return http.StatusBadRequest
	}
}

// RespondResult writes a prediction result with the status its outcome maps
// to: 200 on success, otherwise the status of its error kind.
func RespondResult(c *gin.Context, result *domain.PredictionResult) {
	if result.Success {
		c.JSON(http.StatusOK, result)
		return
	}
	status := StatusForKind(result.Error)
	if status >= 500 {
		requestID, _ := c.Get("request_id")
		log.Printf("[%v] prediction failed: %s", requestID, result.Message)
	}
	c.JSON(status, result)
}

// RespondError maps a request-level error to its kind and writes a flat
// failure payload.
func RespondError(c *gin.Context, err error) {
	kind := domain.KindOf(err)
	c.JSON(StatusForKind(kind), ErrorBody{
		Success: false,
		Error:   kind,
		Message: err.Error(),
	})
}

// RespondInvalid writes a 400 failure for a request body that does not
// match the expected shape.
func RespondInvalid(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, ErrorBody{
		Success: false,
		Error:   domain.ErrorKindInvalidInputType,
		Message: message,
	})
}
