// Package errors provides typed errors for burnish.
package errors

import "fmt"

// ErrorCode identifies the type of error.
type ErrorCode string

const (
	ErrInvalidInput      ErrorCode = "INVALID_INPUT"
	ErrInvalidConfig     ErrorCode = "INVALID_CONFIG"
	ErrMissingCredential ErrorCode = "MISSING_CREDENTIAL"
	ErrRemoteService     ErrorCode = "REMOTE_SERVICE"
	ErrCompressionFailed ErrorCode = "COMPRESSION_FAILED"
)

// BurnishError represents a typed error with user-friendly hints.
type BurnishError struct {
	Code    ErrorCode
	Message string
	Hint    string
	Cause   error
}

func (e *BurnishError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *BurnishError) Unwrap() error {
	return e.Cause
}

// New creates a new BurnishError.
func New(code ErrorCode, message, hint string) *BurnishError {
	return &BurnishError{
		Code:    code,
		Message: message,
		Hint:    hint,
	}
}

// Wrap creates a new BurnishError wrapping an existing error.
func Wrap(code ErrorCode, message, hint string, cause error) *BurnishError {
	return &BurnishError{
		Code:    code,
		Message: message,
		Hint:    hint,
		Cause:   cause,
	}
}

// InvalidInput returns an error for an empty prompt.
func InvalidInput() *BurnishError {
	return &BurnishError{
		Code:    ErrInvalidInput,
		Message: "prompt is empty or contains only whitespace",
		Hint:    "Pass a prompt with --input <file> or pipe it on stdin",
	}
}

// TokenLimitTooLow returns an error for a token limit below the minimum.
func TokenLimitTooLow(limit, minimum int) *BurnishError {
	return &BurnishError{
		Code:    ErrInvalidConfig,
		Message: fmt.Sprintf("token limit %d is below the minimum of %d", limit, minimum),
		Hint:    fmt.Sprintf("Use --token-limit %d or higher", minimum),
	}
}

// UnknownModel returns an error for a model tier not in the table.
func UnknownModel(tier string) *BurnishError {
	return &BurnishError{
		Code:    ErrInvalidConfig,
		Message: fmt.Sprintf("unknown model: %s", tier),
		Hint:    "Run `burnish models` to list supported models",
	}
}

// MissingCredential returns an error when no API key can be resolved.
func MissingCredential() *BurnishError {
	return &BurnishError{
		Code:    ErrMissingCredential,
		Message: "Anthropic API key not found",
		Hint:    "Set ANTHROPIC_API_KEY, add it to .env, or pass --api-key",
	}
}

// RemoteService returns an error for transport or service failures.
func RemoteService(message string, cause error) *BurnishError {
	return &BurnishError{
		Code:    ErrRemoteService,
		Message: message,
		Hint:    "Check your network connection and API key, then try again",
		Cause:   cause,
	}
}

// CompressionFailed returns an error when compression could not reach the limit.
func CompressionFailed(tokens, limit int) *BurnishError {
	return &BurnishError{
		Code:    ErrCompressionFailed,
		Message: fmt.Sprintf("compressed prompt is %d tokens, still above the %d token limit", tokens, limit),
		Hint:    "Raise the token limit or shorten the original prompt",
	}
}
