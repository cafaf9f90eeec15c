package api

import (
	"alcyxob/fittrack/internal/service"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestRespondError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantBody   string
	}{
		{"wrapped invalid input", fmt.Errorf("%w: Hours failed on 'lte'", service.ErrInvalidInput), http.StatusBadRequest, "Hours failed"},
		{"not found", service.ErrWorkoutNotFound, http.StatusNotFound, service.ErrWorkoutNotFound.Error()},
		{"access denied", service.ErrMealAccessDenied, http.StatusForbidden, service.ErrMealAccessDenied.Error()},
		{"transition", service.ErrInvalidStatusTransition, http.StatusConflict, service.ErrInvalidStatusTransition.Error()},
		{"duplicate user", service.ErrUserAlreadyExists, http.StatusConflict, service.ErrUserAlreadyExists.Error()},
		{"unknown", errors.New("connection reset"), http.StatusInternalServerError, "Something failed."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := gin.New()
			r.GET("/e", func(c *gin.Context) { respondError(c, tt.err, "Something failed.") })
			w := do(r, http.MethodGet, "/e", "", nil)
			assert.Equal(t, tt.wantStatus, w.Code)
			assert.Contains(t, w.Body.String(), tt.wantBody)
		})
	}
}

func TestRespondError_HidesInternalDetails(t *testing.T) {
	r := gin.New()
	r.GET("/e", func(c *gin.Context) { respondError(c, errors.New("mongo: secret host"), "Failed.") })
	w := do(r, http.MethodGet, "/e", "", nil)
	assert.NotContains(t, w.Body.String(), "secret host")
}
