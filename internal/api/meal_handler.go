package api

import (
	"alcyxob/fittrack/internal/domain"
	"alcyxob/fittrack/internal/service"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type MealHandler struct {
	mealService service.MealService
}

func NewMealHandler(mealService service.MealService) *MealHandler {
	return &MealHandler{mealService: mealService}
}

// MealRequest carries a meal. Macros are required; send 0 when unknown.
type MealRequest struct {
	Name       string    `json:"name"`
	MealType   string    `json:"mealType" binding:"required,max=50"`
	Date       time.Time `json:"date" binding:"required"`
	Calories   *float64  `json:"calories" binding:"required,gte=0"`
	Protein    *float64  `json:"protein" binding:"required,gte=0"`
	Carbs      *float64  `json:"carbs" binding:"required,gte=0"`
	Fat        *float64  `json:"fat" binding:"required,gte=0"`
	Completed  bool      `json:"completed"`
	DietPlanID string    `json:"dietPlanId"`
}

func (r MealRequest) toInput(c *gin.Context) (service.MealInput, bool) {
	var dietPlanID *primitive.ObjectID
	if r.DietPlanID != "" {
		id, err := primitive.ObjectIDFromHex(r.DietPlanID)
		if err != nil {
			abortWithError(c, http.StatusBadRequest, "Invalid dietPlanId format.")
			return service.MealInput{}, false
		}
		dietPlanID = &id
	}
	return service.MealInput{
		Name:       r.Name,
		MealType:   r.MealType,
		Date:       r.Date,
		Calories:   *r.Calories,
		Protein:    *r.Protein,
		Carbs:      *r.Carbs,
		Fat:        *r.Fat,
		Completed:  r.Completed,
		DietPlanID: dietPlanID,
	}, true
}

type MealResponse struct {
	ID         string    `json:"id"`
	Name       string    `json:"name,omitempty"`
	MealType   string    `json:"mealType"`
	Date       time.Time `json:"date"`
	Calories   float64   `json:"calories"`
	Protein    float64   `json:"protein"`
	Carbs      float64   `json:"carbs"`
	Fat        float64   `json:"fat"`
	Completed  bool      `json:"completed"`
	DietPlanID string    `json:"dietPlanId,omitempty"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

func MapMealToResponse(m *domain.Meal) MealResponse {
	if m == nil {
		return MealResponse{}
	}
	resp := MealResponse{
		ID:        m.ID.Hex(),
		Name:      m.Name,
		MealType:  m.MealType,
		Date:      m.Date,
		Calories:  m.Calories,
		Protein:   m.Protein,
		Carbs:     m.Carbs,
		Fat:       m.Fat,
		Completed: m.Completed,
		UpdatedAt: m.UpdatedAt,
	}
	if m.DietPlanID != nil {
		resp.DietPlanID = m.DietPlanID.Hex()
	}
	return resp
}

func MapMealsToResponse(meals []domain.Meal) []MealResponse {
	out := make([]MealResponse, len(meals))
	for i := range meals {
		out[i] = MapMealToResponse(&meals[i])
	}
	return out
}

// CreateMeal godoc
// @Summary Log or plan a meal
// @Tags Meals
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param meal body MealRequest true "Meal"
// @Success 201 {object} MealResponse
// @Router /meals [post]
func (h *MealHandler) CreateMeal(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	var req MealRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}
	input, ok := req.toInput(c)
	if !ok {
		return
	}
	meal, err := h.mealService.CreateMeal(c.Request.Context(), userID, input)
	if err != nil {
		respondError(c, err, "Failed to create meal.")
		return
	}
	c.JSON(http.StatusCreated, MapMealToResponse(meal))
}

// ListMeals godoc
// @Summary List my meals for a day or a range
// @Tags Meals
// @Produce json
// @Security BearerAuth
// @Param date query string false "Single day (YYYY-MM-DD)"
// @Param from query string false "First day (YYYY-MM-DD)"
// @Param to query string false "Last day, inclusive (YYYY-MM-DD)"
// @Success 200 {array} MealResponse
// @Router /meals [get]
func (h *MealHandler) ListMeals(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	from, to, ok := queryRange(c)
	if !ok {
		return
	}
	meals, err := h.mealService.ListMeals(c.Request.Context(), userID, from, to)
	if err != nil {
		respondError(c, err, "Failed to retrieve meals.")
		return
	}
	c.JSON(http.StatusOK, MapMealsToResponse(meals))
}

// GetMeal godoc
// @Summary Get one meal
// @Tags Meals
// @Produce json
// @Security BearerAuth
// @Param mealId path string true "Meal ID"
// @Success 200 {object} MealResponse
// @Router /meals/{mealId} [get]
func (h *MealHandler) GetMeal(c *gin.Context) {
	userID, mealID, ok := h.ids(c)
	if !ok {
		return
	}
	meal, err := h.mealService.GetMeal(c.Request.Context(), userID, mealID)
	if err != nil {
		respondError(c, err, "Failed to retrieve meal.")
		return
	}
	c.JSON(http.StatusOK, MapMealToResponse(meal))
}

// UpdateMeal godoc
// @Summary Replace a meal
// @Tags Meals
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param mealId path string true "Meal ID"
// @Param meal body MealRequest true "Meal"
// @Success 200 {object} MealResponse
// @Router /meals/{mealId} [put]
func (h *MealHandler) UpdateMeal(c *gin.Context) {
	userID, mealID, ok := h.ids(c)
	if !ok {
		return
	}
	var req MealRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}
	input, ok := req.toInput(c)
	if !ok {
		return
	}
	meal, err := h.mealService.UpdateMeal(c.Request.Context(), userID, mealID, input)
	if err != nil {
		respondError(c, err, "Failed to update meal.")
		return
	}
	c.JSON(http.StatusOK, MapMealToResponse(meal))
}

// ToggleMeal godoc
// @Summary Flip whether a meal was eaten
// @Tags Meals
// @Produce json
// @Security BearerAuth
// @Param mealId path string true "Meal ID"
// @Success 200 {object} MealResponse
// @Router /meals/{mealId}/toggle [post]
func (h *MealHandler) ToggleMeal(c *gin.Context) {
	userID, mealID, ok := h.ids(c)
	if !ok {
		return
	}
	meal, err := h.mealService.ToggleMealCompleted(c.Request.Context(), userID, mealID)
	if err != nil {
		respondError(c, err, "Failed to update meal.")
		return
	}
	c.JSON(http.StatusOK, MapMealToResponse(meal))
}

// DeleteMeal godoc
// @Summary Delete a meal
// @Tags Meals
// @Security BearerAuth
// @Param mealId path string true "Meal ID"
// @Success 204 "No Content"
// @Router /meals/{mealId} [delete]
func (h *MealHandler) DeleteMeal(c *gin.Context) {
	userID, mealID, ok := h.ids(c)
	if !ok {
		return
	}
	if err := h.mealService.DeleteMeal(c.Request.Context(), userID, mealID); err != nil {
		respondError(c, err, "Failed to delete meal.")
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *MealHandler) ids(c *gin.Context) (userID, mealID primitive.ObjectID, ok bool) {
	if userID, ok = currentUserID(c); !ok {
		return
	}
	mealID, ok = pathObjectID(c, "mealId")
	return
}
