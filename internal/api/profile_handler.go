package api

import (
	"alcyxob/fittrack/internal/domain"
	"alcyxob/fittrack/internal/service"
	"alcyxob/fittrack/internal/stats"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
)

type ProfileHandler struct {
	profileService service.ProfileService
}

func NewProfileHandler(profileService service.ProfileService) *ProfileHandler {
	return &ProfileHandler{profileService: profileService}
}

// UpdateProfileRequest replaces height and goals; omitted goals use the defaults.
type UpdateProfileRequest struct {
	HeightCm float64      `json:"heightCm" binding:"gte=0,lte=300"`
	Goals    domain.Goals `json:"goals"`
}

type ProfileResponse struct {
	User           UserResponse       `json:"user"`
	EffectiveGoals domain.Goals       `json:"effectiveGoals"`
	MacroTargets   stats.MacroTargets `json:"macroTargets"`
}

func mapProfileToResponse(p *service.Profile) ProfileResponse {
	return ProfileResponse{
		User:           MapUserToResponse(p.User),
		EffectiveGoals: p.EffectiveGoals,
		MacroTargets:   p.MacroTargets,
	}
}

// GetProfile godoc
// @Summary Get my profile
// @Tags Profile
// @Produce json
// @Security BearerAuth
// @Success 200 {object} ProfileResponse
// @Router /me/profile [get]
func (h *ProfileHandler) GetProfile(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	profile, err := h.profileService.GetProfile(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err, "Failed to retrieve profile.")
		return
	}
	c.JSON(http.StatusOK, mapProfileToResponse(profile))
}

// UpdateProfile godoc
// @Summary Update my height and goals
// @Tags Profile
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param profile body UpdateProfileRequest true "Profile"
// @Success 200 {object} ProfileResponse
// @Failure 400 {object} gin.H "Invalid input (validation error)"
// @Router /me/profile [put]
func (h *ProfileHandler) UpdateProfile(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}
	profile, err := h.profileService.UpdateProfile(c.Request.Context(), userID, service.UpdateProfileInput{
		HeightCm: req.HeightCm,
		Goals:    req.Goals,
	})
	if err != nil {
		respondError(c, err, "Failed to update profile.")
		return
	}
	c.JSON(http.StatusOK, mapProfileToResponse(profile))
}
