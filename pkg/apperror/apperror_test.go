package apperror

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindOf(t *testing.T) {
	notFound := NotFound("doctor not found")

	assert.Equal(t, KindNotFound, KindOf(notFound))
	assert.Equal(t, KindConcurrency, KindOf(Concurrency("slot not available")))
	assert.Equal(t, KindMismatch, KindOf(Mismatch("bad date")))
	assert.Equal(t, KindUnknown, KindOf(errors.New("connection reset")))
	assert.Equal(t, KindUnknown, KindOf(nil))

	wrapped := fmt.Errorf("lookup: %w", notFound)
	assert.True(t, IsNotFound(wrapped))
	assert.False(t, IsConcurrency(wrapped))
	assert.ErrorIs(t, wrapped, notFound)
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "not_found", KindNotFound.String())
	assert.Equal(t, "concurrency", KindConcurrency.String())
	assert.Equal(t, "mismatch", KindMismatch.String())
	assert.Equal(t, "unknown", Kind(42).String())
}
