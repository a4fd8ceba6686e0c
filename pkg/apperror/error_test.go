package apperror_test

import (
	"errors"
	"net/http"
	"testing"

	"monarch-web/pkg/apperror"

	"github.com/stretchr/testify/assert"
)

func TestAppErrorUnwrap(t *testing.T) {
	cause := errors.New("dial tcp: refused")
	err := apperror.BadGateway("Something went wrong. Please try again.", cause)

	assert.Equal(t, http.StatusBadGateway, err.Code)
	assert.Equal(t, "Something went wrong. Please try again.", err.Error())
	assert.ErrorIs(t, err, cause)
}

func TestAppErrorWithDetails(t *testing.T) {
	err := apperror.BadRequest("Invalid contact form").WithDetails([]string{"Email is required"})

	assert.Equal(t, []string{"Email is required"}, err.Details)
}
