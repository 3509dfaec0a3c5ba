package domain

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAnswerError_AlwaysStatus500(t *testing.T) {
	kinds := []ErrorKind{
		KindConfiguration,
		KindModelUnavailable,
		KindRateLimited,
		KindUpstream,
		KindMalformedResponse,
		KindInternal,
	}

	for _, kind := range kinds {
		err := NewAnswerError(kind, "boom")
		assert.Equal(t, http.StatusInternalServerError, err.Status, "kind %s", kind)
		assert.Equal(t, kind, err.Kind)
		assert.Equal(t, "boom", err.Error())
	}
}

func TestAsAnswerError(t *testing.T) {
	inner := NewAnswerError(KindRateLimited, "busy")
	wrapped := fmt.Errorf("handler: %w", inner)

	ae, ok := AsAnswerError(wrapped)
	require.True(t, ok)
	assert.Equal(t, KindRateLimited, ae.Kind)

	_, ok = AsAnswerError(errors.New("plain"))
	assert.False(t, ok)

	_, ok = AsAnswerError(nil)
	assert.False(t, ok)
}

func TestUpstreamStatusError_Message(t *testing.T) {
	err := &UpstreamStatusError{StatusCode: 503, Body: "overloaded"}
	assert.Equal(t, "API returned 503: overloaded", err.Error())
}
