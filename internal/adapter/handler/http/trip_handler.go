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

type TripHandler struct {
	tripService *services.TripService
	logger      ports.LoggerPort
	metrics     ports.MetricsPort
}

func NewTripHandler(
	tripService *services.TripService,
	logger ports.LoggerPort,
	metrics ports.MetricsPort,
) *TripHandler {
	return &TripHandler{
		tripService: tripService,
		logger:      logger,
		metrics:     metrics,
	}
}

type TripRequest struct {
	BikeID        uuid.UUID `json:"bike_id" binding:"required"`
	TripDate      time.Time `json:"trip_date" binding:"required"`
	StartOdometer int       `json:"start_odometer" example:"5000"`
	EndOdometer   int       `json:"end_odometer" example:"5180"`
	StartLocation string    `json:"start_location" example:"Bengaluru"`
	EndLocation   string    `json:"end_location" example:"Mysuru"`
	TripPurpose   string    `json:"trip_purpose" example:"Touring"`
	Notes         string    `json:"notes"`
}

type TripListResponse struct {
	Trips []*domain.Trip `json:"trips"`
	Count int            `json:"count"`
}

func (r *TripRequest) toDomain(userID uuid.UUID) *domain.Trip {
	purpose := domain.TripPurpose(r.TripPurpose)
	if purpose == "" {
		purpose = domain.Other
	}
	return &domain.Trip{
		BikeID:        r.BikeID,
		UserID:        userID,
		TripDate:      r.TripDate,
		StartOdometer: r.StartOdometer,
		EndOdometer:   r.EndOdometer,
		StartLocation: r.StartLocation,
		EndLocation:   r.EndLocation,
		TripPurpose:   purpose,
		Notes:         r.Notes,
	}
}

// @Summary Log a trip
// @Description Record a trip. The end odometer must advance past the start; the bike odometer advances when the end reading is ahead of it.
// @Tags trips
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body TripRequest true "Trip data"
// @Success 201 {object} domain.Trip "Trip created"
// @Failure 400 {object} errorResponse "Invalid request"
// @Failure 401 {object} errorResponse "Unauthorized"
// @Failure 404 {object} errorResponse "Bike not found"
// @Router /trips [post]
func (h *TripHandler) CreateTrip(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	payload, exists := getAuthPayload(c, authorizationPayloadKey)
	if !exists {
		newErrorResponse(c, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req TripRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Error("Failed JSON parse in create trip", map[string]interface{}{
			"error": err.Error(),
		})
		newErrorResponse(c, http.StatusBadRequest, "Invalid JSON format")
		return
	}

	createdTrip, err := h.tripService.CreateTrip(c.Request.Context(), req.toDomain(payload.UserID))
	if err != nil {
		h.logger.Error("Failed to create trip", map[string]interface{}{
			"error":   err.Error(),
			"bike_id": req.BikeID,
			"user_id": payload.UserID,
		})
		newErrorResponse(c, statusFromError(err), err.Error())
		return
	}

	h.logger.Info("Trip created", map[string]interface{}{
		"trip_id":  createdTrip.TripID,
		"bike_id":  createdTrip.BikeID,
		"distance": createdTrip.Distance,
	})

	c.JSON(http.StatusCreated, createdTrip)
}

// @Summary Get a trip
// @Tags trips
// @Security BearerAuth
// @Produce json
// @Param id path string true "Trip ID"
// @Success 200 {object} domain.Trip "Trip"
// @Failure 401 {object} errorResponse "Unauthorized"
// @Failure 404 {object} errorResponse "Trip not found"
// @Router /trips/{id} [get]
func (h *TripHandler) GetTrip(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	payload, exists := getAuthPayload(c, authorizationPayloadKey)
	if !exists {
		newErrorResponse(c, http.StatusUnauthorized, "Unauthorized")
		return
	}

	trip, err := h.tripService.GetTripByID(c.Request.Context(), c.Param("id"), payload.UserID)
	if err != nil {
		newErrorResponse(c, statusFromError(err), "Trip not found")
		return
	}

	c.JSON(http.StatusOK, trip)
}

// @Summary List trips
// @Description Trip history, newest first. Optionally filtered by bike.
// @Tags trips
// @Security BearerAuth
// @Produce json
// @Param bike_id query string false "Bike ID filter"
// @Success 200 {object} TripListResponse "Trips"
// @Failure 400 {object} errorResponse "Invalid bike ID"
// @Failure 401 {object} errorResponse "Unauthorized"
// @Router /trips [get]
func (h *TripHandler) ListTrips(c *gin.Context) {
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

	trips, err := h.tripService.ListTrips(c.Request.Context(), payload.UserID, bikeID)
	if err != nil {
		h.logger.Error("Failed to list trips", map[string]interface{}{
			"error":   err.Error(),
			"user_id": payload.UserID,
		})
		newErrorResponse(c, statusFromError(err), "Failed to get trips")
		return
	}

	c.JSON(http.StatusOK, TripListResponse{
		Trips: trips,
		Count: len(trips),
	})
}

// @Summary Update a trip
// @Tags trips
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Trip ID"
// @Param request body TripRequest true "Trip data"
// @Success 200 {object} domain.Trip "Trip updated"
// @Failure 400 {object} errorResponse "Invalid request"
// @Failure 401 {object} errorResponse "Unauthorized"
// @Failure 404 {object} errorResponse "Trip not found"
// @Router /trips/{id} [put]
func (h *TripHandler) UpdateTrip(c *gin.Context) {
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
		newErrorResponse(c, http.StatusBadRequest, "Invalid trip ID")
		return
	}

	var req TripRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		newErrorResponse(c, http.StatusBadRequest, "Invalid JSON format")
		return
	}

	trip := req.toDomain(payload.UserID)
	trip.TripID = parsedID

	updatedTrip, err := h.tripService.UpdateTrip(c.Request.Context(), trip)
	if err != nil {
		h.logger.Error("Failed to update trip", map[string]interface{}{
			"error":   err.Error(),
			"trip_id": parsedID,
		})
		newErrorResponse(c, statusFromError(err), err.Error())
		return
	}

	c.JSON(http.StatusOK, updatedTrip)
}

// @Summary Delete a trip
// @Tags trips
// @Security BearerAuth
// @Produce json
// @Param id path string true "Trip ID"
// @Success 200 {object} DeleteResponse "Trip deleted"
// @Failure 401 {object} errorResponse "Unauthorized"
// @Failure 404 {object} errorResponse "Trip not found"
// @Router /trips/{id} [delete]
func (h *TripHandler) DeleteTrip(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	payload, exists := getAuthPayload(c, authorizationPayloadKey)
	if !exists {
		newErrorResponse(c, http.StatusUnauthorized, "Unauthorized")
		return
	}

	if err := h.tripService.DeleteTrip(c.Request.Context(), c.Param("id"), payload.UserID); err != nil {
		newErrorResponse(c, statusFromError(err), "Delete failed")
		return
	}

	h.logger.Info("Trip deleted", map[string]interface{}{
		"trip_id": c.Param("id"),
	})

	c.JSON(http.StatusOK, DeleteResponse{
		Message: "Trip deleted successfully",
	})
}
