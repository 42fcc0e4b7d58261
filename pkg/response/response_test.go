package response_test

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maxviazov/korfball-stats-service/internal/repository"
	"github.com/maxviazov/korfball-stats-service/internal/service"
	"github.com/maxviazov/korfball-stats-service/pkg/response"
)

func TestMapError(t *testing.T) {
	cases := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{"nil", nil, http.StatusOK, "ok"},
		{"invalid input", service.NewInvalidInputError([]service.FieldError{{Field: "name", Message: "must not be empty"}}), http.StatusBadRequest, "invalid_input"},
		{"not found", repository.ErrNotFound, http.StatusNotFound, "not_found"},
		{"already exists", repository.ErrAlreadyExists, http.StatusConflict, "already_exists"},
		{"conflict", repository.ErrConflict, http.StatusConflict, "conflict"},
		{"unknown", errors.New("boom"), http.StatusInternalServerError, "internal_error"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			status, payload := response.MapError(tc.err)
			assert.Equal(t, tc.wantStatus, status)
			assert.Equal(t, tc.wantCode, payload.Error)
		})
	}
}

func TestMapErrorCarriesFieldErrors(t *testing.T) {
	err := service.NewInvalidInputError([]service.FieldError{{Field: "date", Message: "must be an ISO-8601 date"}})
	_, payload := response.MapError(err)
	require.Len(t, payload.FieldErrors, 1)
	assert.Equal(t, "date", payload.FieldErrors[0].Field)
}
