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

type BikeHandler struct {
	bikeService *services.BikeService
	logger      ports.LoggerPort
	metrics     ports.MetricsPort
}

func NewBikeHandler(
	bikeService *services.BikeService,
	logger ports.LoggerPort,
	metrics ports.MetricsPort,
) *BikeHandler {
	return &BikeHandler{
		bikeService: bikeService,
		logger:      logger,
		metrics:     metrics,
	}
}

type BikeRequest struct {
	BikeName           string     `json:"bike_name" binding:"required" example:"Royal Enfield Classic"`
	Manufacturer       string     `json:"manufacturer" example:"Royal Enfield"`
	Model              string     `json:"model" example:"Classic 350"`
	Year               int        `json:"year" example:"2022"`
	RegistrationNumber string     `json:"registration_number" example:"KA01AB1234"`
	EngineCapacity     int        `json:"engine_capacity" example:"349"`
	PurchaseDate       *time.Time `json:"purchase_date,omitempty"`
	PurchasePrice      float64    `json:"purchase_price" example:"210000"`
	CurrentOdometer    int        `json:"current_odometer" example:"5000"`
	InitialOdometer    int        `json:"initial_odometer" example:"0"`
	FuelTankCapacity   float64    `json:"fuel_tank_capacity" example:"13.5"`
}

type BikeListResponse struct {
	Bikes []*domain.Bike `json:"bikes"`
	Count int            `json:"count"`
}

type DeleteResponse struct {
	Message string `json:"message"`
}

func (r *BikeRequest) toDomain(userID uuid.UUID) *domain.Bike {
	return &domain.Bike{
		UserID:             userID,
		BikeName:           r.BikeName,
		Manufacturer:       r.Manufacturer,
		Model:              r.Model,
		Year:               r.Year,
		RegistrationNumber: r.RegistrationNumber,
		EngineCapacity:     r.EngineCapacity,
		PurchaseDate:       r.PurchaseDate,
		PurchasePrice:      r.PurchasePrice,
		CurrentOdometer:    r.CurrentOdometer,
		InitialOdometer:    r.InitialOdometer,
		FuelTankCapacity:   r.FuelTankCapacity,
	}
}

// @Summary Create a bike
// @Description Add a bike to the garage
// @Tags bikes
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body BikeRequest true "Bike data"
// @Success 201 {object} domain.Bike "Bike created"
// @Failure 400 {object} errorResponse "Invalid request"
// @Failure 401 {object} errorResponse "Unauthorized"
// @Router /bikes [post]
func (h *BikeHandler) CreateBike(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	payload, exists := getAuthPayload(c, authorizationPayloadKey)
	if !exists {
		newErrorResponse(c, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req BikeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Error("Failed JSON parse in create bike", map[string]interface{}{
			"error": err.Error(),
		})
		newErrorResponse(c, http.StatusBadRequest, "Invalid JSON format")
		return
	}

	createdBike, err := h.bikeService.CreateBike(c.Request.Context(), req.toDomain(payload.UserID))
	if err != nil {
		h.logger.Error("Failed to create bike", map[string]interface{}{
			"error":   err.Error(),
			"user_id": payload.UserID,
		})
		newErrorResponse(c, statusFromError(err), "Failed to create bike")
		return
	}

	h.logger.Info("Bike created", map[string]interface{}{
		"bike_id": createdBike.BikeID,
		"user_id": createdBike.UserID,
	})

	c.JSON(http.StatusCreated, createdBike)
}

// @Summary Get a bike
// @Description Fetch one bike by ID
// @Tags bikes
// @Security BearerAuth
// @Produce json
// @Param id path string true "Bike ID"
// @Success 200 {object} domain.Bike "Bike found"
// @Failure 401 {object} errorResponse "Unauthorized"
// @Failure 404 {object} errorResponse "Bike not found"
// @Router /bikes/{id} [get]
func (h *BikeHandler) GetBike(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	bikeID := c.Param("id")

	payload, exists := getAuthPayload(c, authorizationPayloadKey)
	if !exists {
		newErrorResponse(c, http.StatusUnauthorized, "Unauthorized")
		return
	}

	bike, err := h.bikeService.GetBikeByID(c.Request.Context(), bikeID, payload.UserID)
	if err != nil {
		h.logger.Error("Failed to get bike", map[string]interface{}{
			"error":   err.Error(),
			"bike_id": bikeID,
		})
		newErrorResponse(c, statusFromError(err), "Bike not found")
		return
	}

	c.JSON(http.StatusOK, bike)
}

// @Summary List my bikes
// @Description All bikes of the authorized user
// @Tags bikes
// @Security BearerAuth
// @Produce json
// @Success 200 {object} BikeListResponse "Bikes"
// @Failure 401 {object} errorResponse "Unauthorized"
// @Router /bikes [get]
func (h *BikeHandler) ListBikes(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	payload, exists := getAuthPayload(c, authorizationPayloadKey)
	if !exists {
		newErrorResponse(c, http.StatusUnauthorized, "Unauthorized")
		return
	}

	bikes, err := h.bikeService.GetBikesByUserID(c.Request.Context(), payload.UserID)
	if err != nil {
		h.logger.Error("Failed to list bikes", map[string]interface{}{
			"error":   err.Error(),
			"user_id": payload.UserID,
		})
		newErrorResponse(c, statusFromError(err), "Failed to get bikes")
		return
	}

	c.JSON(http.StatusOK, BikeListResponse{
		Bikes: bikes,
		Count: len(bikes),
	})
}

// @Summary Update a bike
// @Description Update bike details. The odometer only moves through fuel and trip logs.
// @Tags bikes
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Bike ID"
// @Param request body BikeRequest true "Bike data"
// @Success 200 {object} domain.Bike "Bike updated"
// @Failure 400 {object} errorResponse "Invalid request"
// @Failure 401 {object} errorResponse "Unauthorized"
// @Failure 404 {object} errorResponse "Bike not found"
// @Router /bikes/{id} [put]
func (h *BikeHandler) UpdateBike(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	bikeID := c.Param("id")

	payload, exists := getAuthPayload(c, authorizationPayloadKey)
	if !exists {
		newErrorResponse(c, http.StatusUnauthorized, "Unauthorized")
		return
	}

	parsedID, err := uuid.Parse(bikeID)
	if err != nil {
		newErrorResponse(c, http.StatusBadRequest, "Invalid bike ID")
		return
	}

	var req BikeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Error("Failed JSON parse in update bike", map[string]interface{}{
			"error": err.Error(),
		})
		newErrorResponse(c, http.StatusBadRequest, "Invalid JSON format")
		return
	}

	bike := req.toDomain(payload.UserID)
	bike.BikeID = parsedID

	updatedBike, err := h.bikeService.UpdateBike(c.Request.Context(), bike)
	if err != nil {
		h.logger.Error("Failed to update bike", map[string]interface{}{
			"error":   err.Error(),
			"bike_id": bikeID,
		})
		newErrorResponse(c, statusFromError(err), "Update failed")
		return
	}

	h.logger.Info("Bike updated", map[string]interface{}{
		"bike_id": bikeID,
	})

	c.JSON(http.StatusOK, updatedBike)
}

// @Summary Delete a bike
// @Description Remove a bike and all its history
// @Tags bikes
// @Security BearerAuth
// @Produce json
// @Param id path string true "Bike ID"
// @Success 200 {object} DeleteResponse "Bike deleted"
// @Failure 401 {object} errorResponse "Unauthorized"
// @Failure 404 {object} errorResponse "Bike not found"
// @Router /bikes/{id} [delete]
func (h *BikeHandler) DeleteBike(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	bikeID := c.Param("id")

	payload, exists := getAuthPayload(c, authorizationPayloadKey)
	if !exists {
		newErrorResponse(c, http.StatusUnauthorized, "Unauthorized")
		return
	}

	if err := h.bikeService.DeleteBike(c.Request.Context(), bikeID, payload.UserID); err != nil {
		h.logger.Error("Failed to delete bike", map[string]interface{}{
			"error":   err.Error(),
			"bike_id": bikeID,
		})
		newErrorResponse(c, statusFromError(err), "Delete failed")
		return
	}

	h.logger.Info("Bike deleted", map[string]interface{}{
		"bike_id": bikeID,
	})

	c.JSON(http.StatusOK, DeleteResponse{
		Message: "Bike deleted successfully",
	})
}
