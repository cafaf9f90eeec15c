package api

import (
	"alcyxob/fittrack/internal/domain"
	"alcyxob/fittrack/internal/service"
	"alcyxob/fittrack/internal/stats"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func newDashboardRouter(ds service.DashboardService) *gin.Engine {
	r := gin.New()
	SetupRoutes(r, testSecret, Services{Dashboard: ds})
	return r
}

func TestDashboardHandler_GetDashboard(t *testing.T) {
	ds := new(MockDashboardService)
	userID := primitive.NewObjectID()
	token := signToken(t, userID, domain.RoleMember, time.Hour)
	day := time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)

	ds.On("GetDashboard", mock.Anything, userID, day).Return(&service.Dashboard{
		Date:    "2024-03-10",
		Streaks: stats.StreakSummary{Current: 3, Longest: 5},
	}, nil).Once()

	w := do(newDashboardRouter(ds), http.MethodGet, "/api/v1/dashboard?date=2024-03-10", token, nil)

	assert.Equal(t, http.StatusOK, w.Code)
	got := decode[service.Dashboard](t, w)
	assert.Equal(t, "2024-03-10", got.Date)
	assert.Equal(t, 3, got.Streaks.Current)
	ds.AssertExpectations(t)
}

func TestDashboardHandler_GetDashboard_Today(t *testing.T) {
	ds := new(MockDashboardService)
	userID := primitive.NewObjectID()
	ds.On("GetDashboard", mock.Anything, userID, time.Time{}).Return(&service.Dashboard{}, nil).Once()

	w := do(newDashboardRouter(ds), http.MethodGet, "/api/v1/dashboard", signToken(t, userID, domain.RoleMember, time.Hour), nil)

	assert.Equal(t, http.StatusOK, w.Code)
	ds.AssertExpectations(t)
}

func TestDashboardHandler_Errors(t *testing.T) {
	userID := primitive.NewObjectID()
	token := signToken(t, userID, domain.RoleMember, time.Hour)

	t.Run("bad date", func(t *testing.T) {
		ds := new(MockDashboardService)
		w := do(newDashboardRouter(ds), http.MethodGet, "/api/v1/dashboard?date=03-10-2024", token, nil)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		ds.AssertNotCalled(t, "GetDashboard", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("unknown user", func(t *testing.T) {
		ds := new(MockDashboardService)
		ds.On("GetDashboard", mock.Anything, userID, time.Time{}).Return(nil, service.ErrUserNotFound).Once()
		w := do(newDashboardRouter(ds), http.MethodGet, "/api/v1/dashboard", token, nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("store failure", func(t *testing.T) {
		ds := new(MockDashboardService)
		ds.On("WeeklyReport", mock.Anything, userID, time.Time{}).Return(nil, errors.New("timeout")).Once()
		w := do(newDashboardRouter(ds), http.MethodGet, "/api/v1/reports/weekly", token, nil)
		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Contains(t, w.Body.String(), "Failed to build weekly report.")
	})
}
