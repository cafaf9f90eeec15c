package api

import (
	"alcyxob/fittrack/internal/service"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

// serviceErrorStatus maps service sentinel errors onto HTTP status codes.
var serviceErrorStatus = []struct {
	err  error
	code int
}{
	{service.ErrInvalidInput, http.StatusBadRequest},
	{service.ErrAuthenticationFailed, http.StatusUnauthorized},
	{service.ErrExerciseAccessDenied, http.StatusForbidden},
	{service.ErrWorkoutAccessDenied, http.StatusForbidden},
	{service.ErrMealAccessDenied, http.StatusForbidden},
	{service.ErrPhotoAccessDenied, http.StatusForbidden},
	{service.ErrUserNotFound, http.StatusNotFound},
	{service.ErrExerciseNotFound, http.StatusNotFound},
	{service.ErrWorkoutNotFound, http.StatusNotFound},
	{service.ErrMealNotFound, http.StatusNotFound},
	{service.ErrPhotoNotFound, http.StatusNotFound},
	{service.ErrUploadNotFound, http.StatusNotFound},
	{service.ErrUserAlreadyExists, http.StatusConflict},
	{service.ErrExerciseExists, http.StatusConflict},
	{service.ErrInvalidStatusTransition, http.StatusConflict},
	{service.ErrWorkoutFinalized, http.StatusConflict},
}

// respondError answers with the status mapped from err. Unknown errors are
// logged and reported as 500 with fallback as the message.
func respondError(c *gin.Context, err error, fallback string) {
	for _, m := range serviceErrorStatus {
		if errors.Is(err, m.err) {
			abortWithError(c, m.code, err.Error())
			return
		}
	}
	abortInternal(c, err, fallback)
}
