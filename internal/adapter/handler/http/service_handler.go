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

type ServiceHandler struct {
	serviceRecords *services.ServiceRecordService
	logger         ports.LoggerPort
	metrics        ports.MetricsPort
}

func NewServiceHandler(
	serviceRecords *services.ServiceRecordService,
	logger ports.LoggerPort,
	metrics ports.MetricsPort,
) *ServiceHandler {
	return &ServiceHandler{
		serviceRecords: serviceRecords,
		logger:         logger,
		metrics:        metrics,
	}
}

type ServiceRecordRequest struct {
	BikeID          uuid.UUID  `json:"bike_id" binding:"required"`
	ServiceDate     time.Time  `json:"service_date" binding:"required"`
	OdometerReading int        `json:"odometer_reading" example:"5200"`
	ServiceType     string     `json:"service_type" binding:"required" example:"General Service"`
	ServiceCenter   string     `json:"service_center" example:"RE Service Center, Koramangala"`
	ServiceCost     float64    `json:"service_cost" example:"1850"`
	PartsReplaced   string     `json:"parts_replaced" example:"Engine oil, oil filter"`
	NextServiceKM   *int       `json:"next_service_km,omitempty" example:"8200"`
	NextServiceDate *time.Time `json:"next_service_date,omitempty"`
	Description     string     `json:"description"`
	InvoiceNumber   string     `json:"invoice_number" example:"INV-2024-0042"`
}

type ServiceRecordListResponse struct {
	ServiceRecords []*domain.ServiceRecord `json:"service_records"`
	Count          int                     `json:"count"`
}

func (r *ServiceRecordRequest) toDomain(userID uuid.UUID) *domain.ServiceRecord {
	return &domain.ServiceRecord{
		BikeID:          r.BikeID,
		UserID:          userID,
		ServiceDate:     r.ServiceDate,
		OdometerReading: r.OdometerReading,
		ServiceType:     r.ServiceType,
		ServiceCenter:   r.ServiceCenter,
		ServiceCost:     r.ServiceCost,
		PartsReplaced:   r.PartsReplaced,
		NextServiceKM:   r.NextServiceKM,
		NextServiceDate: r.NextServiceDate,
		Description:     r.Description,
		InvoiceNumber:   r.InvoiceNumber,
	}
}

// @Summary Record a service visit
// @Description Add a maintenance record. When a next service date or odometer is given, a follow-up reminder is created. The bike odometer is not touched.
// @Tags services
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body ServiceRecordRequest true "Service data"
// @Success 201 {object} domain.ServiceRecord "Service record created"
// @Failure 400 {object} errorResponse "Invalid request"
// @Failure 401 {object} errorResponse "Unauthorized"
// @Failure 404 {object} errorResponse "Bike not found"
// @Router /services [post]
func (h *ServiceHandler) CreateServiceRecord(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	payload, exists := getAuthPayload(c, authorizationPayloadKey)
	if !exists {
		newErrorResponse(c, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req ServiceRecordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Error("Failed JSON parse in create service record", map[string]interface{}{
			"error": err.Error(),
		})
		newErrorResponse(c, http.StatusBadRequest, "Invalid JSON format")
		return
	}

	createdRecord, err := h.serviceRecords.CreateServiceRecord(c.Request.Context(), req.toDomain(payload.UserID))
	if err != nil {
		h.logger.Error("Failed to create service record", map[string]interface{}{
			"error":   err.Error(),
			"bike_id": req.BikeID,
			"user_id": payload.UserID,
		})
		newErrorResponse(c, statusFromError(err), err.Error())
		return
	}

	h.logger.Info("Service record created", map[string]interface{}{
		"service_id": createdRecord.ServiceID,
		"bike_id":    createdRecord.BikeID,
	})

	c.JSON(http.StatusCreated, createdRecord)
}

// @Summary Get a service record
// @Tags services
// @Security BearerAuth
// @Produce json
// @Param id path string true "Service record ID"
// @Success 200 {object} domain.ServiceRecord "Service record"
// @Failure 401 {object} errorResponse "Unauthorized"
// @Failure 404 {object} errorResponse "Service record not found"
// @Router /services/{id} [get]
func (h *ServiceHandler) GetServiceRecord(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	payload, exists := getAuthPayload(c, authorizationPayloadKey)
	if !exists {
		newErrorResponse(c, http.StatusUnauthorized, "Unauthorized")
		return
	}

	record, err := h.serviceRecords.GetServiceRecordByID(c.Request.Context(), c.Param("id"), payload.UserID)
	if err != nil {
		newErrorResponse(c, statusFromError(err), "Service record not found")
		return
	}

	c.JSON(http.StatusOK, record)
}

// @Summary List service records
// @Description Maintenance history, newest first. Optionally filtered by bike.
// @Tags services
// @Security BearerAuth
// @Produce json
// @Param bike_id query string false "Bike ID filter"
// @Success 200 {object} ServiceRecordListResponse "Service records"
// @Failure 400 {object} errorResponse "Invalid bike ID"
// @Failure 401 {object} errorResponse "Unauthorized"
// @Router /services [get]
func (h *ServiceHandler) ListServiceRecords(c *gin.Context) {
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

	records, err := h.serviceRecords.ListServiceRecords(c.Request.Context(), payload.UserID, bikeID)
	if err != nil {
		h.logger.Error("Failed to list service records", map[string]interface{}{
			"error":   err.Error(),
			"user_id": payload.UserID,
		})
		newErrorResponse(c, statusFromError(err), "Failed to get service records")
		return
	}

	c.JSON(http.StatusOK, ServiceRecordListResponse{
		ServiceRecords: records,
		Count:          len(records),
	})
}

// @Summary Update a service record
// @Tags services
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Service record ID"
// @Param request body ServiceRecordRequest true "Service data"
// @Success 200 {object} domain.ServiceRecord "Service record updated"
// @Failure 400 {object} errorResponse "Invalid request"
// @Failure 401 {object} errorResponse "Unauthorized"
// @Failure 404 {object} errorResponse "Service record not found"
// @Router /services/{id} [put]
func (h *ServiceHandler) UpdateServiceRecord(c *gin.Context) {
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
		newErrorResponse(c, http.StatusBadRequest, "Invalid service record ID")
		return
	}

	var req ServiceRecordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		newErrorResponse(c, http.StatusBadRequest, "Invalid JSON format")
		return
	}

	record := req.toDomain(payload.UserID)
	record.ServiceID = parsedID

	updatedRecord, err := h.serviceRecords.UpdateServiceRecord(c.Request.Context(), record)
	if err != nil {
		h.logger.Error("Failed to update service record", map[string]interface{}{
			"error":      err.Error(),
			"service_id": parsedID,
		})
		newErrorResponse(c, statusFromError(err), err.Error())
		return
	}

	c.JSON(http.StatusOK, updatedRecord)
}

// @Summary Delete a service record
// @Tags services
// @Security BearerAuth
// @Produce json
// @Param id path string true "Service record ID"
// @Success 200 {object} DeleteResponse "Service record deleted"
// @Failure 401 {object} errorResponse "Unauthorized"
// @Failure 404 {object} errorResponse "Service record not found"
// @Router /services/{id} [delete]
func (h *ServiceHandler) DeleteServiceRecord(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	payload, exists := getAuthPayload(c, authorizationPayloadKey)
	if !exists {
		newErrorResponse(c, http.StatusUnauthorized, "Unauthorized")
		return
	}

	if err := h.serviceRecords.DeleteServiceRecord(c.Request.Context(), c.Param("id"), payload.UserID); err != nil {
		newErrorResponse(c, statusFromError(err), "Delete failed")
		return
	}

	h.logger.Info("Service record deleted", map[string]interface{}{
		"service_id": c.Param("id"),
	})

	c.JSON(http.StatusOK, DeleteResponse{
		Message: "Service record deleted successfully",
	})
}
