package domain_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"molpredict/internal/domain"
)

func TestKindOf_SentinelErrors(t *testing.T) {
	cases := map[error]domain.ErrorKind{
		domain.ErrEmptyInput:        domain.ErrorKindEmptyInput,
		domain.ErrInvalidInputType:  domain.ErrorKindInvalidInputType,
		domain.ErrModelsNotLoaded:   domain.ErrorKindModelsNotLoaded,
		domain.ErrUnresolvedInput:   domain.ErrorKindUnresolvedInput,
		domain.ErrEngineUnavailable: domain.ErrorKindEngineUnavailable,
		domain.ErrInvalidMolecule:   domain.ErrorKindInvalidMolecule,
		domain.ErrBatchTooLarge:     domain.ErrorKindBatchTooLarge,
		domain.ErrBatchEmpty:        domain.ErrorKindBatchEmpty,
	}
	for err, want := range cases {
		assert.Equal(t, want, domain.KindOf(err), "for %v", err)
	}
}

func TestKindOf_WrappedError(t *testing.T) {
	err := fmt.Errorf("batch of 150: %w", domain.ErrBatchTooLarge)
	assert.Equal(t, domain.ErrorKindBatchTooLarge, domain.KindOf(err))
}

func TestKindOf_UnknownErrorIsInternal(t *testing.T) {
	assert.Equal(t, domain.ErrorKindInternal, domain.KindOf(errors.New("boom")))
}
