package handler

import (
	"errors"

	"dhl-tracker/internal/core/logger"
	adapter "dhl-tracker/internal/features/tracking/adapters"
	"dhl-tracker/internal/features/tracking/adapters/dhlpage"
	"dhl-tracker/internal/features/tracking/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// TrackingHandler handles HTTP requests for tracking operations.
type TrackingHandler struct {
	trackingService *service.TrackingService
}

// NewTrackingHandler creates a new TrackingHandler.
func NewTrackingHandler(trackingService *service.TrackingService) *TrackingHandler {
	return &TrackingHandler{
		trackingService: trackingService,
	}
}

// ErrorResponse represents an error response with Ray ID.
type ErrorResponse struct {
	// Message is the error description.
	Message string `json:"message"`
	// Stage is the parsing stage that failed, when the tracking page could not be read.
	Stage string `json:"stage,omitempty"`
	// RayID is the unique request identifier for tracing.
	RayID string `json:"ray_id,omitempty"`
}

func rayID(c *fiber.Ctx) string {
	id, _ := c.Locals("requestid").(string)
	return id
}

func errorJSON(c *fiber.Ctx, status int, message string, err error) error {
	resp := ErrorResponse{
		Message: message,
		RayID:   rayID(c),
	}
	var pageErr *dhlpage.PageError
	if errors.As(err, &pageErr) {
		resp.Stage = string(pageErr.Stage)
	}
	return c.Status(status).JSON(resp)
}

// GetTrackingStatus godoc
// @Summary Get tracking status for a shipment
// @Description Fetches the carrier tracking page for a code and returns the parsed status
// @Tags tracking
// @Produce json
// @Param code path string true "Tracking Code"
// @Param courier query string false "Courier name (default: dhl)"
// @Success 200 {object} domain.TrackingStatus
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 502 {object} ErrorResponse
// @Router /tracking/{code} [get]
func (h *TrackingHandler) GetTrackingStatus(c *fiber.Ctx) error {
	trackingCode := c.Params("code")
	if trackingCode == "" {
		return errorJSON(c, fiber.StatusBadRequest, "tracking code is required", nil)
	}

	courier := c.Query("courier", adapter.CourierDHL)

	status, err := h.trackingService.GetTrackingStatus(c.UserContext(), trackingCode, courier)
	if err != nil {
		if errors.Is(err, service.ErrCourierNotSupported) {
			return errorJSON(c, fiber.StatusNotFound, "courier not supported", err)
		}

		logger.Get().Error("Failed to get tracking status",
			zap.String("tracking_code", trackingCode),
			zap.String("courier", courier),
			zap.String("ray_id", rayID(c)),
			zap.Error(err),
		)
		return errorJSON(c, fiber.StatusBadGateway, err.Error(), err)
	}

	return c.JSON(status)
}

// ParseTrackingPage godoc
// @Summary Parse a tracking page
// @Description Parses a DHL tracking page supplied in the request body, without contacting DHL
// @Tags tracking
// @Accept html
// @Produce json
// @Param page body string true "Tracking page HTML"
// @Success 200 {object} domain.TrackingStatus
// @Failure 400 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse
// @Router /tracking/parse [post]
func (h *TrackingHandler) ParseTrackingPage(c *fiber.Ctx) error {
	body := c.Body()
	if len(body) == 0 {
		return errorJSON(c, fiber.StatusBadRequest, "request body is required", nil)
	}

	status, err := h.trackingService.ParsePage(string(body))
	if err != nil {
		return errorJSON(c, fiber.StatusUnprocessableEntity, err.Error(), err)
	}

	return c.JSON(status)
}
