package api

import (
	"alcyxob/fittrack/internal/domain"
	"alcyxob/fittrack/internal/service"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type WorkoutHandler struct {
	workoutService service.WorkoutService
}

func NewWorkoutHandler(workoutService service.WorkoutService) *WorkoutHandler {
	return &WorkoutHandler{workoutService: workoutService}
}

// --- DTOs ---

type WorkoutRequest struct {
	Name          string    `json:"name" binding:"required"`
	ScheduledDate time.Time `json:"scheduledDate" binding:"required"`
	ExerciseIDs   []string  `json:"exerciseIds"`
	Notes         string    `json:"notes"`
}

// CompleteWorkoutRequest is optional; an empty body completes without a duration.
type CompleteWorkoutRequest struct {
	DurationMinutes *int `json:"durationMinutes" binding:"omitempty,gte=0"`
}

type WorkoutResponse struct {
	ID              string               `json:"id"`
	UserID          string               `json:"userId"`
	Name            string               `json:"name"`
	ExerciseIDs     []string             `json:"exerciseIds"`
	Status          domain.WorkoutStatus `json:"status"`
	ScheduledDate   time.Time            `json:"scheduledDate"`
	CompletedDate   *time.Time           `json:"completedDate,omitempty"`
	DurationMinutes *int                 `json:"durationMinutes,omitempty"`
	Notes           string               `json:"notes,omitempty"`
	CreatedAt       time.Time            `json:"createdAt"`
	UpdatedAt       time.Time            `json:"updatedAt"`
}

func MapWorkoutToResponse(w *domain.Workout) WorkoutResponse {
	if w == nil {
		return WorkoutResponse{}
	}
	ids := make([]string, len(w.ExerciseIDs))
	for i, id := range w.ExerciseIDs {
		ids[i] = id.Hex()
	}
	return WorkoutResponse{
		ID:              w.ID.Hex(),
		UserID:          w.UserID.Hex(),
		Name:            w.Name,
		ExerciseIDs:     ids,
		Status:          w.Status,
		ScheduledDate:   w.ScheduledDate,
		CompletedDate:   w.CompletedDate,
		DurationMinutes: w.DurationMinutes,
		Notes:           w.Notes,
		CreatedAt:       w.CreatedAt,
		UpdatedAt:       w.UpdatedAt,
	}
}

func MapWorkoutsToResponse(workouts []domain.Workout) []WorkoutResponse {
	responses := make([]WorkoutResponse, len(workouts))
	for i := range workouts {
		responses[i] = MapWorkoutToResponse(&workouts[i])
	}
	return responses
}

func (r WorkoutRequest) toInput(c *gin.Context) (service.WorkoutInput, bool) {
	ids := make([]primitive.ObjectID, 0, len(r.ExerciseIDs))
	for _, hex := range r.ExerciseIDs {
		id, err := primitive.ObjectIDFromHex(hex)
		if err != nil {
			abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Invalid exercise ID %q.", hex))
			return service.WorkoutInput{}, false
		}
		ids = append(ids, id)
	}
	return service.WorkoutInput{
		Name:          r.Name,
		ScheduledDate: r.ScheduledDate,
		ExerciseIDs:   ids,
		Notes:         r.Notes,
	}, true
}

// --- Handler Methods ---

// ScheduleWorkout godoc
// @Summary Schedule a workout
// @Tags Workouts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param workout body WorkoutRequest true "Workout"
// @Success 201 {object} WorkoutResponse
// @Failure 400 {object} gin.H "Invalid input"
// @Router /workouts [post]
func (h *WorkoutHandler) ScheduleWorkout(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	var req WorkoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}
	input, ok := req.toInput(c)
	if !ok {
		return
	}
	workout, err := h.workoutService.ScheduleWorkout(c.Request.Context(), userID, input)
	if err != nil {
		respondError(c, err, "Failed to schedule workout.")
		return
	}
	c.JSON(http.StatusCreated, MapWorkoutToResponse(workout))
}

// ListWorkouts godoc
// @Summary List my workouts
// @Tags Workouts
// @Produce json
// @Security BearerAuth
// @Param date query string false "Single day (YYYY-MM-DD)"
// @Param from query string false "First day (YYYY-MM-DD)"
// @Param to query string false "Last day, inclusive (YYYY-MM-DD)"
// @Success 200 {array} WorkoutResponse
// @Router /workouts [get]
func (h *WorkoutHandler) ListWorkouts(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	from, to, ok := queryRange(c)
	if !ok {
		return
	}
	workouts, err := h.workoutService.ListWorkouts(c.Request.Context(), userID, from, to)
	if err != nil {
		respondError(c, err, "Failed to retrieve workouts.")
		return
	}
	c.JSON(http.StatusOK, MapWorkoutsToResponse(workouts))
}

// GetWorkout godoc
// @Summary Get one workout
// @Tags Workouts
// @Produce json
// @Security BearerAuth
// @Param workoutId path string true "Workout ID"
// @Success 200 {object} WorkoutResponse
// @Router /workouts/{workoutId} [get]
func (h *WorkoutHandler) GetWorkout(c *gin.Context) {
	userID, workoutID, ok := h.ids(c)
	if !ok {
		return
	}
	workout, err := h.workoutService.GetWorkout(c.Request.Context(), userID, workoutID)
	if err != nil {
		respondError(c, err, "Failed to retrieve workout.")
		return
	}
	c.JSON(http.StatusOK, MapWorkoutToResponse(workout))
}

// UpdateWorkout godoc
// @Summary Edit a workout that is not finished
// @Tags Workouts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param workoutId path string true "Workout ID"
// @Param workout body WorkoutRequest true "Workout"
// @Success 200 {object} WorkoutResponse
// @Failure 409 {object} gin.H "Workout already completed or missed"
// @Router /workouts/{workoutId} [put]
func (h *WorkoutHandler) UpdateWorkout(c *gin.Context) {
	userID, workoutID, ok := h.ids(c)
	if !ok {
		return
	}
	var req WorkoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}
	input, ok := req.toInput(c)
	if !ok {
		return
	}
	workout, err := h.workoutService.UpdateWorkout(c.Request.Context(), userID, workoutID, input)
	if err != nil {
		respondError(c, err, "Failed to update workout.")
		return
	}
	c.JSON(http.StatusOK, MapWorkoutToResponse(workout))
}

// StartWorkout godoc
// @Summary Mark a workout as in progress
// @Tags Workouts
// @Security BearerAuth
// @Param workoutId path string true "Workout ID"
// @Success 200 {object} WorkoutResponse
// @Failure 409 {object} gin.H "Invalid status transition"
// @Router /workouts/{workoutId}/start [post]
func (h *WorkoutHandler) StartWorkout(c *gin.Context) {
	userID, workoutID, ok := h.ids(c)
	if !ok {
		return
	}
	workout, err := h.workoutService.StartWorkout(c.Request.Context(), userID, workoutID)
	if err != nil {
		respondError(c, err, "Failed to start workout.")
		return
	}
	c.JSON(http.StatusOK, MapWorkoutToResponse(workout))
}

// CompleteWorkout godoc
// @Summary Mark a workout as completed
// @Tags Workouts
// @Accept json
// @Security BearerAuth
// @Param workoutId path string true "Workout ID"
// @Param body body CompleteWorkoutRequest false "Duration"
// @Success 200 {object} WorkoutResponse
// @Failure 409 {object} gin.H "Invalid status transition"
// @Router /workouts/{workoutId}/complete [post]
func (h *WorkoutHandler) CompleteWorkout(c *gin.Context) {
	userID, workoutID, ok := h.ids(c)
	if !ok {
		return
	}
	var req CompleteWorkoutRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
			return
		}
	}
	workout, err := h.workoutService.CompleteWorkout(c.Request.Context(), userID, workoutID, req.DurationMinutes)
	if err != nil {
		respondError(c, err, "Failed to complete workout.")
		return
	}
	c.JSON(http.StatusOK, MapWorkoutToResponse(workout))
}

// MissWorkout godoc
// @Summary Mark a workout as missed
// @Tags Workouts
// @Security BearerAuth
// @Param workoutId path string true "Workout ID"
// @Success 200 {object} WorkoutResponse
// @Router /workouts/{workoutId}/miss [post]
func (h *WorkoutHandler) MissWorkout(c *gin.Context) {
	userID, workoutID, ok := h.ids(c)
	if !ok {
		return
	}
	workout, err := h.workoutService.MarkMissed(c.Request.Context(), userID, workoutID)
	if err != nil {
		respondError(c, err, "Failed to update workout.")
		return
	}
	c.JSON(http.StatusOK, MapWorkoutToResponse(workout))
}

// DeleteWorkout godoc
// @Summary Delete a workout
// @Tags Workouts
// @Security BearerAuth
// @Param workoutId path string true "Workout ID"
// @Success 204 "No Content"
// @Router /workouts/{workoutId} [delete]
func (h *WorkoutHandler) DeleteWorkout(c *gin.Context) {
	userID, workoutID, ok := h.ids(c)
	if !ok {
		return
	}
	if err := h.workoutService.DeleteWorkout(c.Request.Context(), userID, workoutID); err != nil {
		respondError(c, err, "Failed to delete workout.")
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *WorkoutHandler) ids(c *gin.Context) (userID, workoutID primitive.ObjectID, ok bool) {
	if userID, ok = currentUserID(c); !ok {
		return
	}
	workoutID, ok = pathObjectID(c, "workoutId")
	return
}
