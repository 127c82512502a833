package cli

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidationError(t *testing.T) {
	err := &ValidationError{Message: "--auth-key is required when stdin is not a terminal"}
	assert.Equal(t, "--auth-key is required when stdin is not a terminal", err.Error())
}

func TestEditError(t *testing.T) {
	cause := errors.New("unexpected end of JSON input")
	err := &EditError{Err: cause}

	assert.Equal(t, "edited addon list rejected: unexpected end of JSON input", err.Error())
	assert.ErrorIs(t, err, cause)
}

func TestFormatError(t *testing.T) {
	assert.Equal(t, "", FormatError(nil))
	assert.Equal(t, "error: something went wrong", FormatError(errors.New("something went wrong")))
	assert.Equal(t, "error: No auth key provided", FormatError(fmt.Errorf("%w", errors.New("No auth key provided"))))

	verr := &ValidationError{Message: "--auth-key is required when stdin is not a terminal"}
	assert.Equal(t, "error: --auth-key is required when stdin is not a terminal", FormatError(verr))
}
