package errors

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInvalidInput(t *testing.T) {
	err := InvalidInput()

	assert.Equal(t, ErrInvalidInput, err.Code)
	assert.Contains(t, err.Error(), "empty")
	assert.Contains(t, err.Hint, "--input")
}

func TestTokenLimitTooLow(t *testing.T) {
	err := TokenLimitTooLow(10, 50)

	assert.Equal(t, ErrInvalidConfig, err.Code)
	assert.Contains(t, err.Error(), "token limit 10 is below the minimum of 50")
	assert.Contains(t, err.Hint, "--token-limit 50")
}

func TestUnknownModel(t *testing.T) {
	err := UnknownModel("opus-99")

	assert.Equal(t, ErrInvalidConfig, err.Code)
	assert.Contains(t, err.Error(), "opus-99")
	assert.Contains(t, err.Hint, "burnish models")
}

func TestMissingCredential(t *testing.T) {
	err := MissingCredential()

	assert.Equal(t, ErrMissingCredential, err.Code)
	assert.Contains(t, err.Error(), "API key not found")
	assert.Contains(t, err.Hint, "ANTHROPIC_API_KEY")
}

func TestRemoteService(t *testing.T) {
	cause := errors.New("connection refused")
	err := RemoteService("enhancement request failed", cause)

	assert.Equal(t, ErrRemoteService, err.Code)
	assert.Contains(t, err.Error(), "enhancement request failed")
	assert.Contains(t, err.Error(), "connection refused")

	// Test error unwrapping
	unwrapped := err.Unwrap()
	require.NotNil(t, unwrapped)
	assert.Equal(t, cause, unwrapped)
}

func TestRemoteService_NilCause(t *testing.T) {
	err := RemoteService("empty response from service", nil)

	assert.Equal(t, ErrRemoteService, err.Code)
	assert.Contains(t, err.Error(), "empty response from service")
	assert.Nil(t, err.Unwrap())
}

func TestCompressionFailed(t *testing.T) {
	err := CompressionFailed(312, 200)

	assert.Equal(t, ErrCompressionFailed, err.Code)
	assert.Contains(t, err.Error(), "312 tokens")
	assert.Contains(t, err.Error(), "200 token limit")
	assert.Contains(t, err.Hint, "Raise the token limit")
}

func TestBurnishError_Error(t *testing.T) {
	t.Run("without cause", func(t *testing.T) {
		err := &BurnishError{
			Code:    ErrRemoteService,
			Message: "test message",
		}
		assert.Equal(t, "test message", err.Error())
	})

	t.Run("with cause", func(t *testing.T) {
		cause := errors.New("root cause")
		err := &BurnishError{
			Code:    ErrRemoteService,
			Message: "test message",
			Cause:   cause,
		}
		assert.Equal(t, "test message: root cause", err.Error())
	})
}

func TestNew(t *testing.T) {
	err := New(ErrInvalidInput, "test message", "test hint")

	assert.Equal(t, ErrInvalidInput, err.Code)
	assert.Equal(t, "test message", err.Message)
	assert.Equal(t, "test hint", err.Hint)
	assert.Nil(t, err.Cause)
}

func TestWrap(t *testing.T) {
	cause := errors.New("underlying error")
	err := Wrap(ErrRemoteService, "wrapper message", "wrapper hint", cause)

	assert.Equal(t, ErrRemoteService, err.Code)
	assert.Equal(t, "wrapper message", err.Message)
	assert.Equal(t, "wrapper hint", err.Hint)
	assert.Equal(t, cause, err.Cause)
}
