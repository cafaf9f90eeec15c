package api

import (
	"alcyxob/fittrack/internal/domain"
	"alcyxob/fittrack/internal/service"
	"alcyxob/fittrack/internal/stats"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func newProgressRouter(ps service.ProgressService) *gin.Engine {
	r := gin.New()
	SetupRoutes(r, testSecret, Services{Progress: ps})
	return r
}

func TestProgressHandler_LogWater(t *testing.T) {
	ps := new(MockProgressService)
	userID := primitive.NewObjectID()
	day := time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)

	ps.On("LogWater", mock.Anything, userID, day, 250.0).Return(&domain.ProgressEntry{
		ID:           primitive.NewObjectID(),
		UserID:       userID,
		Date:         day,
		Measurements: domain.Measurements{domain.MeasureWaterML: 1750},
	}, nil).Once()

	w := do(newProgressRouter(ps), http.MethodPost, "/api/v1/progress/water", signToken(t, userID, domain.RoleMember, time.Hour), gin.H{
		"date": "2024-03-10",
		"ml":   250,
	})

	assert.Equal(t, http.StatusOK, w.Code)
	resp := decode[ProgressEntryResponse](t, w)
	assert.Equal(t, "2024-03-10", resp.Date)
	assert.Equal(t, 1750.0, resp.Measurements[domain.MeasureWaterML])
	ps.AssertExpectations(t)
}

func TestProgressHandler_LogSleep_DefaultsToToday(t *testing.T) {
	ps := new(MockProgressService)
	userID := primitive.NewObjectID()
	ps.On("LogSleep", mock.Anything, userID, time.Time{}, 7.5).Return(&domain.ProgressEntry{UserID: userID}, nil).Once()

	w := do(newProgressRouter(ps), http.MethodPost, "/api/v1/progress/sleep", signToken(t, userID, domain.RoleMember, time.Hour), gin.H{"hours": 7.5})

	assert.Equal(t, http.StatusOK, w.Code)
	ps.AssertExpectations(t)
}

func TestProgressHandler_LogSleep_Rejected(t *testing.T) {
	userID := primitive.NewObjectID()
	token := signToken(t, userID, domain.RoleMember, time.Hour)

	t.Run("missing hours", func(t *testing.T) {
		ps := new(MockProgressService)
		w := do(newProgressRouter(ps), http.MethodPost, "/api/v1/progress/sleep", token, gin.H{"date": "2024-03-10"})
		assert.Equal(t, http.StatusBadRequest, w.Code)
		ps.AssertNotCalled(t, "LogSleep", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("bad date", func(t *testing.T) {
		ps := new(MockProgressService)
		w := do(newProgressRouter(ps), http.MethodPost, "/api/v1/progress/sleep", token, gin.H{"date": "yesterday", "hours": 8})
		assert.Equal(t, http.StatusBadRequest, w.Code)
		ps.AssertNotCalled(t, "LogSleep", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("out of range", func(t *testing.T) {
		ps := new(MockProgressService)
		ps.On("LogSleep", mock.Anything, userID, time.Time{}, 30.0).
			Return(nil, fmt.Errorf("%w: sleep hours must be between 0 and 24", service.ErrInvalidInput)).Once()
		w := do(newProgressRouter(ps), http.MethodPost, "/api/v1/progress/sleep", token, gin.H{"hours": 30})
		assert.Equal(t, http.StatusBadRequest, w.Code)
		ps.AssertExpectations(t)
	})
}

func TestProgressHandler_MetricTrend(t *testing.T) {
	ps := new(MockProgressService)
	userID := primitive.NewObjectID()
	token := signToken(t, userID, domain.RoleMember, time.Hour)

	w := do(newProgressRouter(ps), http.MethodGet, "/api/v1/progress/trend", token, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	ps.On("MetricTrend", mock.Anything, userID, "weight").Return(stats.MetricSnapshot{
		Metric:    "weight",
		Value:     80,
		Trend:     stats.Down,
		Available: true,
	}, nil).Once()

	w = do(newProgressRouter(ps), http.MethodGet, "/api/v1/progress/trend?metric=weight", token, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	snap := decode[stats.MetricSnapshot](t, w)
	assert.Equal(t, stats.Down, snap.Trend)
	assert.True(t, snap.Available)
	ps.AssertExpectations(t)
}

func TestProgressHandler_DeletePhoto(t *testing.T) {
	userID := primitive.NewObjectID()
	photoID := primitive.NewObjectID()
	token := signToken(t, userID, domain.RoleMember, time.Hour)

	t.Run("deleted", func(t *testing.T) {
		photos := new(MockPhotoService)
		photos.On("DeletePhoto", mock.Anything, userID, photoID).Return(nil).Once()
		r := gin.New()
		SetupRoutes(r, testSecret, Services{Photo: photos})

		w := do(r, http.MethodDelete, "/api/v1/progress/photos/"+photoID.Hex(), token, nil)

		assert.Equal(t, http.StatusNoContent, w.Code)
		photos.AssertExpectations(t)
	})

	t.Run("not found", func(t *testing.T) {
		photos := new(MockPhotoService)
		photos.On("DeletePhoto", mock.Anything, userID, photoID).Return(service.ErrPhotoNotFound).Once()
		r := gin.New()
		SetupRoutes(r, testSecret, Services{Photo: photos})

		w := do(r, http.MethodDelete, "/api/v1/progress/photos/"+photoID.Hex(), token, nil)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("bad id", func(t *testing.T) {
		photos := new(MockPhotoService)
		r := gin.New()
		SetupRoutes(r, testSecret, Services{Photo: photos})

		w := do(r, http.MethodDelete, "/api/v1/progress/photos/nope", token, nil)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		photos.AssertNotCalled(t, "DeletePhoto", mock.Anything, mock.Anything, mock.Anything)
	})
}
