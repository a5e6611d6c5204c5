package http

import (
	"net/http"
	"time"

	"github.com/mototrack/mototrack_service/internal/core/domain"
	"github.com/mototrack/mototrack_service/internal/core/ports"
	"github.com/mototrack/mototrack_service/internal/core/services"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ReminderHandler struct {
	reminderService *services.ReminderService
	bikeService     *services.BikeService
	logger          ports.LoggerPort
	metrics         ports.MetricsPort
	urgencyConfig   domain.UrgencyConfig
}

func NewReminderHandler(
	reminderService *services.ReminderService,
	bikeService *services.BikeService,
	logger ports.LoggerPort,
	metrics ports.MetricsPort,
	urgencyConfig domain.UrgencyConfig,
) *ReminderHandler {
	return &ReminderHandler{
		reminderService: reminderService,
		bikeService:     bikeService,
		logger:          logger,
		metrics:         metrics,
		urgencyConfig:   urgencyConfig,
	}
}

type ReminderRequest struct {
	BikeID       uuid.UUID  `json:"bike_id" binding:"required"`
	ReminderType string     `json:"reminder_type" binding:"required" example:"Insurance"`
	Title        string     `json:"title" binding:"required" example:"Insurance renewal"`
	Description  string     `json:"description"`
	DueDate      *time.Time `json:"due_date,omitempty"`
	DueOdometer  *int       `json:"due_odometer,omitempty" example:"8000"`
	Priority     string     `json:"priority" example:"High"`
}

// ReminderResponse is a reminder with its urgency projection attached.
type ReminderResponse struct {
	*domain.Reminder
	Urgency  string `json:"urgency"`
	DaysLeft *int   `json:"days_left,omitempty"`
	KMLeft   *int   `json:"km_left,omitempty"`
}

type ReminderListResponse struct {
	Reminders []ReminderResponse `json:"reminders"`
	Count     int                `json:"count"`
}

func (r *ReminderRequest) toDomain(userID uuid.UUID) *domain.Reminder {
	priority := domain.Priority(r.Priority)
	if priority == "" {
		priority = domain.PriorityMedium
	}
	return &domain.Reminder{
		BikeID:       r.BikeID,
		UserID:       userID,
		ReminderType: domain.ReminderType(r.ReminderType),
		Title:        r.Title,
		Description:  r.Description,
		DueDate:      r.DueDate,
		DueOdometer:  r.DueOdometer,
		Priority:     priority,
	}
}

func (h *ReminderHandler) toResponse(reminder *domain.Reminder, currentOdometer int, now time.Time) ReminderResponse {
	resp := ReminderResponse{
		Reminder: reminder,
		Urgency:  reminder.Classify(now, currentOdometer, h.urgencyConfig).String(),
		DaysLeft: reminder.DaysLeft(now),
	}
	if reminder.DueOdometer != nil {
		kmLeft := *reminder.DueOdometer - currentOdometer
		resp.KMLeft = &kmLeft
	}
	return resp
}

// odometerByBike maps the user's bikes to their current odometer so a batch
// of reminders can be classified without a query per reminder.
func (h *ReminderHandler) odometerByBike(c *gin.Context, userID uuid.UUID) (map[uuid.UUID]int, error) {
	bikes, err := h.bikeService.GetBikesByUserID(c.Request.Context(), userID)
	if err != nil {
		return nil, err
	}
	odometers := make(map[uuid.UUID]int, len(bikes))
	for _, bike := range bikes {
		odometers[bike.BikeID] = bike.CurrentOdometer
	}
	return odometers, nil
}

// @Summary Create a reminder
// @Description Add a maintenance reminder with a due date, a due odometer, or both
// @Tags reminders
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body ReminderRequest true "Reminder data"
// @Success 201 {object} domain.Reminder "Reminder created"
// @Failure 400 {object} errorResponse "Invalid request"
// @Failure 401 {object} errorResponse "Unauthorized"
// @Failure 404 {object} errorResponse "Bike not found"
// @Router /reminders [post]
func (h *ReminderHandler) CreateReminder(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	payload, exists := getAuthPayload(c, authorizationPayloadKey)
	if !exists {
		newErrorResponse(c, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req ReminderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Error("Failed JSON parse in create reminder", map[string]interface{}{
			"error": err.Error(),
		})
		newErrorResponse(c, http.StatusBadRequest, "Invalid JSON format")
		return
	}

	createdReminder, err := h.reminderService.CreateReminder(c.Request.Context(), req.toDomain(payload.UserID))
	if err != nil {
		h.logger.Error("Failed to create reminder", map[string]interface{}{
			"error":   err.Error(),
			"bike_id": req.BikeID,
			"user_id": payload.UserID,
		})
		newErrorResponse(c, statusFromError(err), err.Error())
		return
	}

	h.logger.Info("Reminder created", map[string]interface{}{
		"reminder_id": createdReminder.ReminderID,
		"bike_id":     createdReminder.BikeID,
	})

	c.JSON(http.StatusCreated, createdReminder)
}

// @Summary Get a reminder
// @Description One reminder with its urgency projection
// @Tags reminders
// @Security BearerAuth
// @Produce json
// @Param id path string true "Reminder ID"
// @Success 200 {object} ReminderResponse "Reminder"
// @Failure 401 {object} errorResponse "Unauthorized"
// @Failure 404 {object} errorResponse "Reminder not found"
// @Router /reminders/{id} [get]
func (h *ReminderHandler) GetReminder(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	payload, exists := getAuthPayload(c, authorizationPayloadKey)
	if !exists {
		newErrorResponse(c, http.StatusUnauthorized, "Unauthorized")
		return
	}

	reminder, err := h.reminderService.GetReminderByID(c.Request.Context(), c.Param("id"), payload.UserID)
	if err != nil {
		newErrorResponse(c, statusFromError(err), "Reminder not found")
		return
	}

	currentOdometer := 0
	bike, err := h.bikeService.GetBikeByID(c.Request.Context(), reminder.BikeID.String(), payload.UserID)
	if err == nil {
		currentOdometer = bike.CurrentOdometer
	}

	c.JSON(http.StatusOK, h.toResponse(reminder, currentOdometer, time.Now()))
}

// @Summary List reminders
// @Description Reminders with urgency, incomplete first. Filter by bike and by status (pending, completed, all).
// @Tags reminders
// @Security BearerAuth
// @Produce json
// @Param bike_id query string false "Bike ID filter"
// @Param status query string false "pending | completed | all" default(all)
// @Success 200 {object} ReminderListResponse "Reminders"
// @Failure 400 {object} errorResponse "Invalid bike ID"
// @Failure 401 {object} errorResponse "Unauthorized"
// @Router /reminders [get]
func (h *ReminderHandler) ListReminders(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	payload, exists := getAuthPayload(c, authorizationPayloadKey)
	if !exists {
		newErrorResponse(c, http.StatusUnauthorized, "Unauthorized")
		return
	}

	bikeID, ok := parseBikeIDQuery(c)
	if !ok {
		newErrorResponse(c, http.StatusBadRequest, "Invalid bike ID")
		return
	}

	filter := ports.ReminderFilter(c.DefaultQuery("status", string(ports.FilterAll)))
	switch filter {
	case ports.FilterPending, ports.FilterCompleted, ports.FilterAll:
	default:
		newErrorResponse(c, http.StatusBadRequest, "Invalid status filter")
		return
	}

	reminders, err := h.reminderService.ListReminders(c.Request.Context(), payload.UserID, bikeID, filter)
	if err != nil {
		h.logger.Error("Failed to list reminders", map[string]interface{}{
			"error":   err.Error(),
			"user_id": payload.UserID,
		})
		newErrorResponse(c, statusFromError(err), "Failed to get reminders")
		return
	}

	odometers, err := h.odometerByBike(c, payload.UserID)
	if err != nil {
		h.logger.Error("Failed to load bike odometers", map[string]interface{}{
			"error":   err.Error(),
			"user_id": payload.UserID,
		})
		newErrorResponse(c, statusFromError(err), "Failed to get reminders")
		return
	}

	now := time.Now()
	responses := make([]ReminderResponse, len(reminders))
	for i, reminder := range reminders {
		responses[i] = h.toResponse(reminder, odometers[reminder.BikeID], now)
	}

	c.JSON(http.StatusOK, ReminderListResponse{
		Reminders: responses,
		Count:     len(responses),
	})
}

// @Summary Update a reminder
// @Tags reminders
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Reminder ID"
// @Param request body ReminderRequest true "Reminder data"
// @Success 200 {object} domain.Reminder "Reminder updated"
// @Failure 400 {object} errorResponse "Invalid request"
// @Failure 401 {object} errorResponse "Unauthorized"
// @Failure 404 {object} errorResponse "Reminder not found"
// @Router /reminders/{id} [put]
func (h *ReminderHandler) UpdateReminder(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	payload, exists := getAuthPayload(c, authorizationPayloadKey)
	if !exists {
		newErrorResponse(c, http.StatusUnauthorized, "Unauthorized")
		return
	}

	parsedID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		newErrorResponse(c, http.StatusBadRequest, "Invalid reminder ID")
		return
	}

	var req ReminderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		newErrorResponse(c, http.StatusBadRequest, "Invalid JSON format")
		return
	}

	reminder := req.toDomain(payload.UserID)
	reminder.ReminderID = parsedID

	updatedReminder, err := h.reminderService.UpdateReminder(c.Request.Context(), reminder)
	if err != nil {
		h.logger.Error("Failed to update reminder", map[string]interface{}{
			"error":       err.Error(),
			"reminder_id": parsedID,
		})
		newErrorResponse(c, statusFromError(err), err.Error())
		return
	}

	c.JSON(http.StatusOK, updatedReminder)
}

// @Summary Complete a reminder
// @Description Mark a reminder done; it keeps its completion date and stops being classified by due date or odometer
// @Tags reminders
// @Security BearerAuth
// @Produce json
// @Param id path string true "Reminder ID"
// @Success 200 {object} DeleteResponse "Reminder completed"
// @Failure 401 {object} errorResponse "Unauthorized"
// @Failure 404 {object} errorResponse "Reminder not found"
// @Router /reminders/{id}/complete [post]
func (h *ReminderHandler) CompleteReminder(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	payload, exists := getAuthPayload(c, authorizationPayloadKey)
	if !exists {
		newErrorResponse(c, http.StatusUnauthorized, "Unauthorized")
		return
	}

	if err := h.reminderService.CompleteReminder(c.Request.Context(), c.Param("id"), payload.UserID); err != nil {
		newErrorResponse(c, statusFromError(err), "Complete failed")
		return
	}

	h.logger.Info("Reminder completed", map[string]interface{}{
		"reminder_id": c.Param("id"),
	})

	c.JSON(http.StatusOK, DeleteResponse{
		Message: "Reminder marked as completed",
	})
}

// @Summary Delete a reminder
// @Tags reminders
// @Security BearerAuth
// @Produce json
// @Param id path string true "Reminder ID"
// @Success 200 {object} DeleteResponse "Reminder deleted"
// @Failure 401 {object} errorResponse "Unauthorized"
// @Failure 404 {object} errorResponse "Reminder not found"
// @Router /reminders/{id} [delete]
func (h *ReminderHandler) DeleteReminder(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	payload, exists := getAuthPayload(c, authorizationPayloadKey)
	if !exists {
		newErrorResponse(c, http.StatusUnauthorized, "Unauthorized")
		return
	}

	if err := h.reminderService.DeleteReminder(c.Request.Context(), c.Param("id"), payload.UserID); err != nil {
		newErrorResponse(c, statusFromError(err), "Delete failed")
		return
	}

	h.logger.Info("Reminder deleted", map[string]interface{}{
		"reminder_id": c.Param("id"),
	})

	c.JSON(http.StatusOK, DeleteResponse{
		Message: "Reminder deleted successfully",
	})
}
