package http

import (
	"net/http"
	"time"

	"github.com/mototrack/mototrack_service/internal/core/ports"
	"github.com/mototrack/mototrack_service/internal/core/services"

	"github.com/gin-gonic/gin"
)

type ReportHandler struct {
	reportService *services.ReportService
	logger        ports.LoggerPort
	metrics       ports.MetricsPort
}

func NewReportHandler(
	reportService *services.ReportService,
	logger ports.LoggerPort,
	metrics ports.MetricsPort,
) *ReportHandler {
	return &ReportHandler{
		reportService: reportService,
		logger:        logger,
		metrics:       metrics,
	}
}

// @Summary Bike report
// @Description Distance, fuel, service and trip aggregates for one bike or the whole garage
// @Tags reports
// @Security BearerAuth
// @Produce json
// @Param bike_id query string false "Bike ID; omit for all bikes"
// @Success 200 {object} domain.BikeReport "Report"
// @Failure 400 {object} errorResponse "Invalid bike ID"
// @Failure 401 {object} errorResponse "Unauthorized"
// @Failure 404 {object} errorResponse "Bike not found"
// @Router /reports [get]
func (h *ReportHandler) GetReport(c *gin.Context) {
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

	report, err := h.reportService.BikeReport(c.Request.Context(), payload.UserID, bikeID)
	if err != nil {
		h.logger.Error("Failed to build report", map[string]interface{}{
			"error":   err.Error(),
			"user_id": payload.UserID,
		})
		newErrorResponse(c, statusFromError(err), "Failed to build report")
		return
	}

	c.JSON(http.StatusOK, report)
}
