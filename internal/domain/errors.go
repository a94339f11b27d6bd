package domain

import "errors"

var (
	ErrEmptyInput        = errors.New("input must be a non-empty string")
	ErrInvalidInputType  = errors.New("input has the wrong type")
	ErrModelsNotLoaded   = errors.New("models are not loaded")
	ErrUnresolvedInput   = errors.New("input is neither valid notation nor a known formula")
	ErrEngineUnavailable = errors.New("descriptor engine unavailable and molecule not cached")
	ErrInvalidMolecule   = errors.New("notation rejected by descriptor engine")
	ErrBatchEmpty        = errors.New("batch contains no items")
	ErrBatchTooLarge     = errors.New("batch exceeds maximum size")
)

// ErrorKind is the stable error code carried in failed prediction results.
type ErrorKind string

const (
	ErrorKindEmptyInput        ErrorKind = "EMPTY_INPUT"
	ErrorKindInvalidInputType  ErrorKind = "INVALID_INPUT_TYPE"
	ErrorKindModelsNotLoaded   ErrorKind = "MODELS_NOT_LOADED"
	ErrorKindUnresolvedInput   ErrorKind = "UNRESOLVED_INPUT"
	ErrorKindEngineUnavailable ErrorKind = "ENGINE_UNAVAILABLE"
	ErrorKindInvalidMolecule   ErrorKind = "INVALID_MOLECULE"
	ErrorKindBatchTooLarge     ErrorKind = "BATCH_TOO_LARGE"
	ErrorKindBatchEmpty        ErrorKind = "BATCH_EMPTY"
	ErrorKindInternal          ErrorKind = "INTERNAL_ERROR"
)

// KindOf maps a pipeline error to its wire-level error kind. Unrecognized
// errors are reported as ErrorKindInternal.
func KindOf(err error) ErrorKind {
	switch {
	case errors.Is(err, ErrEmptyInput):
		return ErrorKindEmptyInput
	case errors.Is(err, ErrInvalidInputType):
		return ErrorKindInvalidInputType
	case errors.Is(err, ErrModelsNotLoaded):
		return ErrorKindModelsNotLoaded
	case errors.Is(err, ErrUnresolvedInput):
		return ErrorKindUnresolvedInput
	case errors.Is(err, ErrEngineUnavailable):
		return ErrorKindEngineUnavailable
	case errors.Is(err, ErrInvalidMolecule):
		return ErrorKindInvalidMolecule
	case errors.Is(err, ErrBatchTooLarge):
		return ErrorKindBatchTooLarge
	case errors.Is(err, ErrBatchEmpty):
		return ErrorKindBatchEmpty
	default:
		return ErrorKindInternal
	}
}
