package api

import (
	"alcyxob/fittrack/internal/domain"
	"alcyxob/fittrack/internal/service"
	"alcyxob/fittrack/internal/stats"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

type ProgressHandler struct {
	progressService service.ProgressService
	photoService    service.PhotoService
}

func NewProgressHandler(progressService service.ProgressService, photoService service.PhotoService) *ProgressHandler {
	return &ProgressHandler{progressService: progressService, photoService: photoService}
}

// --- DTOs ---

// Every log request takes an optional "date" (YYYY-MM-DD); omitted means today.

type WeighInRequest struct {
	Date    string   `json:"date"`
	Weight  *float64 `json:"weight"`
	BodyFat *float64 `json:"bodyFat"`
}

type SleepRequest struct {
	Date  string   `json:"date"`
	Hours *float64 `json:"hours" binding:"required"`
}

type StepsRequest struct {
	Date  string `json:"date"`
	Steps *int   `json:"steps" binding:"required"`
}

type WaterRequest struct {
	Date string   `json:"date"`
	ML   *float64 `json:"ml" binding:"required"`
}

type MeasurementsRequest struct {
	Date   string             `json:"date"`
	Values map[string]float64 `json:"values" binding:"required,min=1"`
}

type PhotoUploadURLRequest struct {
	Date        string `json:"date"`
	FileName    string `json:"fileName" binding:"required"`
	ContentType string `json:"contentType" binding:"required"`
}

type ConfirmPhotoRequest struct {
	ObjectKey string `json:"objectKey" binding:"required"`
	FileName  string `json:"fileName" binding:"required"`
}

type ProgressEntryResponse struct {
	ID           string              `json:"id"`
	Date         string              `json:"date"`
	Weight       *float64            `json:"weight,omitempty"`
	BodyFat      *float64            `json:"bodyFat,omitempty"`
	Measurements domain.Measurements `json:"measurements,omitempty"`
	UpdatedAt    time.Time           `json:"updatedAt"`
}

type PhotoResponse struct {
	ID          string    `json:"id"`
	Date        string    `json:"date"`
	FileName    string    `json:"fileName"`
	ContentType string    `json:"contentType"`
	Size        int64     `json:"size"`
	UploadedAt  time.Time `json:"uploadedAt"`
	DownloadURL string    `json:"downloadUrl,omitempty"`
}

func MapProgressEntryToResponse(e *domain.ProgressEntry) ProgressEntryResponse {
	if e == nil {
		return ProgressEntryResponse{}
	}
	return ProgressEntryResponse{
		ID:           e.ID.Hex(),
		Date:         e.Date.Format(stats.DateFormat),
		Weight:       e.Weight,
		BodyFat:      e.BodyFat,
		Measurements: e.Measurements,
		UpdatedAt:    e.UpdatedAt,
	}
}

func MapPhotoToResponse(p *domain.ProgressPhoto, downloadURL string) PhotoResponse {
	return PhotoResponse{
		ID:          p.ID.Hex(),
		Date:        p.Date.Format(stats.DateFormat),
		FileName:    p.FileName,
		ContentType: p.ContentType,
		Size:        p.Size,
		UploadedAt:  p.UploadedAt,
		DownloadURL: downloadURL,
	}
}

// --- Logging ---

// LogWeighIn godoc
// @Summary Record weight and/or body fat for a day
// @Tags Progress
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body WeighInRequest true "Weigh-in"
// @Success 200 {object} ProgressEntryResponse
// @Router /progress/weigh-in [post]
func (h *ProgressHandler) LogWeighIn(c *gin.Context) {
	var req WeighInRequest
	h.logDay(c, &req, func() string { return req.Date }, func(day time.Time) (*domain.ProgressEntry, error) {
		userID, _ := currentUserID(c)
		return h.progressService.LogWeighIn(c.Request.Context(), userID, day, service.WeighIn{Weight: req.Weight, BodyFat: req.BodyFat})
	})
}

// LogSleep godoc
// @Summary Record hours slept
// @Tags Progress
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body SleepRequest true "Sleep"
// @Success 200 {object} ProgressEntryResponse
// @Router /progress/sleep [post]
func (h *ProgressHandler) LogSleep(c *gin.Context) {
	var req SleepRequest
	h.logDay(c, &req, func() string { return req.Date }, func(day time.Time) (*domain.ProgressEntry, error) {
		userID, _ := currentUserID(c)
		return h.progressService.LogSleep(c.Request.Context(), userID, day, *req.Hours)
	})
}

// LogSteps godoc
// @Summary Record the step count
// @Tags Progress
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body StepsRequest true "Steps"
// @Success 200 {object} ProgressEntryResponse
// @Router /progress/steps [post]
func (h *ProgressHandler) LogSteps(c *gin.Context) {
	var req StepsRequest
	h.logDay(c, &req, func() string { return req.Date }, func(day time.Time) (*domain.ProgressEntry, error) {
		userID, _ := currentUserID(c)
		return h.progressService.LogSteps(c.Request.Context(), userID, day, *req.Steps)
	})
}

// LogWater godoc
// @Summary Add water intake (ml) to a day
// @Tags Progress
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body WaterRequest true "Water"
// @Success 200 {object} ProgressEntryResponse
// @Router /progress/water [post]
func (h *ProgressHandler) LogWater(c *gin.Context) {
	var req WaterRequest
	h.logDay(c, &req, func() string { return req.Date }, func(day time.Time) (*domain.ProgressEntry, error) {
		userID, _ := currentUserID(c)
		return h.progressService.LogWater(c.Request.Context(), userID, day, *req.ML)
	})
}

// LogMeasurements godoc
// @Summary Record body measurements
// @Tags Progress
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body MeasurementsRequest true "Measurements"
// @Success 200 {object} ProgressEntryResponse
// @Router /progress/measurements [post]
func (h *ProgressHandler) LogMeasurements(c *gin.Context) {
	var req MeasurementsRequest
	h.logDay(c, &req, func() string { return req.Date }, func(day time.Time) (*domain.ProgressEntry, error) {
		userID, _ := currentUserID(c)
		return h.progressService.LogMeasurements(c.Request.Context(), userID, day, req.Values)
	})
}

// logDay binds req, resolves its date and answers with the upserted entry.
func (h *ProgressHandler) logDay(c *gin.Context, req any, date func() string, save func(day time.Time) (*domain.ProgressEntry, error)) {
	if _, ok := currentUserID(c); !ok {
		return
	}
	if err := c.ShouldBindJSON(req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}
	day, ok := bodyDate(c, date())
	if !ok {
		return
	}
	entry, err := save(day)
	if err != nil {
		respondError(c, err, "Failed to save progress.")
		return
	}
	c.JSON(http.StatusOK, MapProgressEntryToResponse(entry))
}

// --- Queries ---

// ListEntries godoc
// @Summary List progress entries, newest first
// @Tags Progress
// @Produce json
// @Security BearerAuth
// @Param from query string false "First day (YYYY-MM-DD)"
// @Param to query string false "Last day, inclusive (YYYY-MM-DD)"
// @Success 200 {array} ProgressEntryResponse
// @Router /progress [get]
func (h *ProgressHandler) ListEntries(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	from, to, ok := queryRange(c)
	if !ok {
		return
	}
	entries, err := h.progressService.ListEntries(c.Request.Context(), userID, from, to)
	if err != nil {
		respondError(c, err, "Failed to retrieve progress.")
		return
	}
	resp := make([]ProgressEntryResponse, len(entries))
	for i := range entries {
		resp[i] = MapProgressEntryToResponse(&entries[i])
	}
	c.JSON(http.StatusOK, resp)
}

// MetricSeries godoc
// @Summary Dated values of one metric, oldest first
// @Tags Progress
// @Produce json
// @Security BearerAuth
// @Param metric query string true "weight, bodyFat or a measurement key"
// @Param from query string false "First day (YYYY-MM-DD)"
// @Param to query string false "Last day, inclusive (YYYY-MM-DD)"
// @Success 200 {array} stats.Point
// @Router /progress/series [get]
func (h *ProgressHandler) MetricSeries(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	metric := c.Query("metric")
	if metric == "" {
		abortWithError(c, http.StatusBadRequest, "Query parameter 'metric' is required.")
		return
	}
	from, to, ok := queryRange(c)
	if !ok {
		return
	}
	points, err := h.progressService.MetricSeries(c.Request.Context(), userID, metric, from, to)
	if err != nil {
		respondError(c, err, "Failed to retrieve metric series.")
		return
	}
	c.JSON(http.StatusOK, points)
}

// MetricTrend godoc
// @Summary Latest value, trend and change of one metric
// @Tags Progress
// @Produce json
// @Security BearerAuth
// @Param metric query string true "weight, bodyFat or a measurement key"
// @Success 200 {object} stats.MetricSnapshot
// @Router /progress/trend [get]
func (h *ProgressHandler) MetricTrend(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	metric := c.Query("metric")
	if metric == "" {
		abortWithError(c, http.StatusBadRequest, "Query parameter 'metric' is required.")
		return
	}
	snap, err := h.progressService.MetricTrend(c.Request.Context(), userID, metric)
	if err != nil {
		respondError(c, err, "Failed to compute trend.")
		return
	}
	c.JSON(http.StatusOK, snap)
}

// --- Photos ---

// RequestPhotoUploadURL godoc
// @Summary Get a presigned URL to upload a progress photo
// @Tags Progress
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body PhotoUploadURLRequest true "Photo"
// @Success 200 {object} service.UploadURLResponse
// @Router /progress/photos/upload-url [post]
func (h *ProgressHandler) RequestPhotoUploadURL(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	var req PhotoUploadURLRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}
	day, ok := bodyDate(c, req.Date)
	if !ok {
		return
	}
	resp, err := h.photoService.RequestUploadURL(c.Request.Context(), userID, service.PhotoUploadRequest{
		Day:         day,
		FileName:    req.FileName,
		ContentType: req.ContentType,
	})
	if err != nil {
		respondError(c, err, "Failed to generate upload URL.")
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ConfirmPhotoUpload godoc
// @Summary Record a photo after it was uploaded
// @Tags Progress
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body ConfirmPhotoRequest true "Uploaded object"
// @Success 201 {object} PhotoResponse
// @Failure 404 {object} gin.H "Object not found in storage"
// @Router /progress/photos [post]
func (h *ProgressHandler) ConfirmPhotoUpload(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	var req ConfirmPhotoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}
	photo, err := h.photoService.ConfirmUpload(c.Request.Context(), userID, req.ObjectKey, req.FileName)
	if err != nil {
		respondError(c, err, "Failed to confirm upload.")
		return
	}
	c.JSON(http.StatusCreated, MapPhotoToResponse(photo, ""))
}

// ListPhotos godoc
// @Summary List my progress photos with download links
// @Tags Progress
// @Produce json
// @Security BearerAuth
// @Success 200 {array} PhotoResponse
// @Router /progress/photos [get]
func (h *ProgressHandler) ListPhotos(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	photos, err := h.photoService.ListPhotos(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err, "Failed to retrieve photos.")
		return
	}
	resp := make([]PhotoResponse, len(photos))
	for i := range photos {
		resp[i] = MapPhotoToResponse(&photos[i].ProgressPhoto, photos[i].DownloadURL)
	}
	c.JSON(http.StatusOK, resp)
}

// DeletePhoto godoc
// @Summary Delete a progress photo and its stored object
// @Tags Progress
// @Security BearerAuth
// @Param photoId path string true "Photo ID"
// @Success 204 "No Content"
// @Router /progress/photos/{photoId} [delete]
func (h *ProgressHandler) DeletePhoto(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	photoID, ok := pathObjectID(c, "photoId")
	if !ok {
		return
	}
	if err := h.photoService.DeletePhoto(c.Request.Context(), userID, photoID); err != nil {
		respondError(c, err, "Failed to delete photo.")
		return
	}
	c.Status(http.StatusNoContent)
}
