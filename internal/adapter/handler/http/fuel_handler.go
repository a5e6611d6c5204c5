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

type FuelHandler struct {
	fuelService *services.FuelLogService
	logger      ports.LoggerPort
	metrics     ports.MetricsPort
}

func NewFuelHandler(
	fuelService *services.FuelLogService,
	logger ports.LoggerPort,
	metrics ports.MetricsPort,
) *FuelHandler {
	return &FuelHandler{
		fuelService: fuelService,
		logger:      logger,
		metrics:     metrics,
	}
}

type FuelLogRequest struct {
	BikeID          uuid.UUID `json:"bike_id" binding:"required"`
	FillDate        time.Time `json:"fill_date" binding:"required"`
	OdometerReading int       `json:"odometer_reading" example:"5150"`
	FuelQuantity    float64   `json:"fuel_quantity" binding:"required" example:"8.0"`
	FuelCost        float64   `json:"fuel_cost" example:"820.50"`
	PricePerLiter   float64   `json:"price_per_liter" example:"102.56"`
	FuelType        string    `json:"fuel_type" example:"Petrol"`
	IsFullTank      bool      `json:"is_full_tank"`
	FuelStation     string    `json:"fuel_station" example:"Indian Oil, MG Road"`
	Notes           string    `json:"notes"`
}

type FuelLogListResponse struct {
	FuelLogs []*domain.FuelLog `json:"fuel_logs"`
	Count    int               `json:"count"`
}

func (r *FuelLogRequest) toDomain(userID uuid.UUID) *domain.FuelLog {
	fuelType := domain.FuelType(r.FuelType)
	if fuelType == "" {
		fuelType = domain.Petrol
	}
	return &domain.FuelLog{
		BikeID:          r.BikeID,
		UserID:          userID,
		FillDate:        r.FillDate,
		OdometerReading: r.OdometerReading,
		FuelQuantity:    r.FuelQuantity,
		FuelCost:        r.FuelCost,
		PricePerLiter:   r.PricePerLiter,
		FuelType:        fuelType,
		IsFullTank:      r.IsFullTank,
		FuelStation:     r.FuelStation,
		Notes:           r.Notes,
	}
}

// parseBikeIDQuery reads the optional bike_id query parameter shared by the
// list endpoints. Second return is false when the value is present but not a
// UUID.
func parseBikeIDQuery(c *gin.Context) (*uuid.UUID, bool) {
	raw := c.Query("bike_id")
	if raw == "" {
		return nil, true
	}
	parsed, err := uuid.Parse(raw)
	if err != nil {
		return nil, false
	}
	return &parsed, true
}

// @Summary Log a fuel fill
// @Description Record a fill-up. Mileage for the previous fill is computed and the bike odometer advances when the reading is ahead of it.
// @Tags fuel
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body FuelLogRequest true "Fill data"
// @Success 201 {object} domain.FuelLog "Fuel log created"
// @Failure 400 {object} errorResponse "Invalid request"
// @Failure 401 {object} errorResponse "Unauthorized"
// @Failure 404 {object} errorResponse "Bike not found"
// @Router /fuel-logs [post]
func (h *FuelHandler) CreateFuelLog(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	payload, exists := getAuthPayload(c, authorizationPayloadKey)
	if !exists {
		newErrorResponse(c, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req FuelLogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Error("Failed JSON parse in create fuel log", map[string]interface{}{
			"error": err.Error(),
		})
		newErrorResponse(c, http.StatusBadRequest, "Invalid JSON format")
		return
	}

	createdLog, err := h.fuelService.CreateFuelLog(c.Request.Context(), req.toDomain(payload.UserID))
	if err != nil {
		h.logger.Error("Failed to create fuel log", map[string]interface{}{
			"error":   err.Error(),
			"bike_id": req.BikeID,
			"user_id": payload.UserID,
		})
		newErrorResponse(c, statusFromError(err), err.Error())
		return
	}

	h.logger.Info("Fuel log created", map[string]interface{}{
		"fuel_id": createdLog.FuelID,
		"bike_id": createdLog.BikeID,
	})

	c.JSON(http.StatusCreated, createdLog)
}

// @Summary Get a fuel log
// @Tags fuel
// @Security BearerAuth
// @Produce json
// @Param id path string true "Fuel log ID"
// @Success 200 {object} domain.FuelLog "Fuel log"
// @Failure 401 {object} errorResponse "Unauthorized"
// @Failure 404 {object} errorResponse "Fuel log not found"
// @Router /fuel-logs/{id} [get]
func (h *FuelHandler) GetFuelLog(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	payload, exists := getAuthPayload(c, authorizationPayloadKey)
	if !exists {
		newErrorResponse(c, http.StatusUnauthorized, "Unauthorized")
		return
	}

	fuelLog, err := h.fuelService.GetFuelLogByID(c.Request.Context(), c.Param("id"), payload.UserID)
	if err != nil {
		newErrorResponse(c, statusFromError(err), "Fuel log not found")
		return
	}

	c.JSON(http.StatusOK, fuelLog)
}

// @Summary List fuel logs
// @Description Fuel history, newest reading first. Optionally filtered by bike.
// @Tags fuel
// @Security BearerAuth
// @Produce json
// @Param bike_id query string false "Bike ID filter"
// @Success 200 {object} FuelLogListResponse "Fuel logs"
// @Failure 400 {object} errorResponse "Invalid bike ID"
// @Failure 401 {object} errorResponse "Unauthorized"
// @Router /fuel-logs [get]
func (h *FuelHandler) ListFuelLogs(c *gin.Context) {
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

	fuelLogs, err := h.fuelService.ListFuelLogs(c.Request.Context(), payload.UserID, bikeID)
	if err != nil {
		h.logger.Error("Failed to list fuel logs", map[string]interface{}{
			"error":   err.Error(),
			"user_id": payload.UserID,
		})
		newErrorResponse(c, statusFromError(err), "Failed to get fuel logs")
		return
	}

	c.JSON(http.StatusOK, FuelLogListResponse{
		FuelLogs: fuelLogs,
		Count:    len(fuelLogs),
	})
}

// @Summary Update a fuel log
// @Description Edit a fill. Mileage is recomputed against the previous fill.
// @Tags fuel
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Fuel log ID"
// @Param request body FuelLogRequest true "Fill data"
// @Success 200 {object} domain.FuelLog "Fuel log updated"
// @Failure 400 {object} errorResponse "Invalid request"
// @Failure 401 {object} errorResponse "Unauthorized"
// @Failure 404 {object} errorResponse "Fuel log not found"
// @Router /fuel-logs/{id} [put]
func (h *FuelHandler) UpdateFuelLog(c *gin.Context) {
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
		newErrorResponse(c, http.StatusBadRequest, "Invalid fuel log ID")
		return
	}

	var req FuelLogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		newErrorResponse(c, http.StatusBadRequest, "Invalid JSON format")
		return
	}

	fuelLog := req.toDomain(payload.UserID)
	fuelLog.FuelID = parsedID

	updatedLog, err := h.fuelService.UpdateFuelLog(c.Request.Context(), fuelLog)
	if err != nil {
		h.logger.Error("Failed to update fuel log", map[string]interface{}{
			"error":   err.Error(),
			"fuel_id": parsedID,
		})
		newErrorResponse(c, statusFromError(err), err.Error())
		return
	}

	c.JSON(http.StatusOK, updatedLog)
}

// @Summary Delete a fuel log
// @Tags fuel
// @Security BearerAuth
// @Produce json
// @Param id path string true "Fuel log ID"
// @Success 200 {object} DeleteResponse "Fuel log deleted"
// @Failure 401 {object} errorResponse "Unauthorized"
// @Failure 404 {object} errorResponse "Fuel log not found"
// @Router /fuel-logs/{id} [delete]
func (h *FuelHandler) DeleteFuelLog(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	payload, exists := getAuthPayload(c, authorizationPayloadKey)
	if !exists {
		newErrorResponse(c, http.StatusUnauthorized, "Unauthorized")
		return
	}

	if err := h.fuelService.DeleteFuelLog(c.Request.Context(), c.Param("id"), payload.UserID); err != nil {
		newErrorResponse(c, statusFromError(err), "Delete failed")
		return
	}

	h.logger.Info("Fuel log deleted", map[string]interface{}{
		"fuel_id": c.Param("id"),
	})

	c.JSON(http.StatusOK, DeleteResponse{
		Message: "Fuel log deleted successfully",
	})
}
