package handler

import (
	"errors"
	"net/http"
	"time"

	orderservice "parcel-lookup/internal/features/orders/service"
	"parcel-lookup/internal/features/tracking/service"

	"github.com/gofiber/fiber/v2"
)

// TrackingHandler handles HTTP requests for delivery status summaries.
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
	// RayID is the unique request identifier for tracing.
	RayID string `json:"ray_id,omitempty"`
}

// GetStatus godoc
// @Summary Get delivery status for an order
// @Description Derives the canonical status, next action and explanation for every shipment behind an order number. ZIP gating matches the order lookup.
// @Tags tracking
// @Accept json
// @Produce json
// @Param orderNumber path string true "Order number"
// @Param zip query string false "Recipient ZIP code"
// @Success 200 {array} domain.ShipmentSummary
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /orders/{orderNumber}/status [get]
func (h *TrackingHandler) GetStatus(c *fiber.Ctx) error {
	orderNo := c.Params("orderNumber")

	rayID, ok := c.Locals("requestid").(string)
	if !ok {
		rayID = "unknown"
	}

	if orderNo == "" {
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Message: "Order number is required",
			RayID:   rayID,
		})
	}

	summaries, err := h.trackingService.Summarize(c.Context(), orderNo, c.Query("zip"), time.Now())
	if err != nil {
		switch {
		case errors.Is(err, orderservice.ErrOrderNotFound):
			return c.Status(http.StatusNotFound).JSON(ErrorResponse{
				Message: "Order not found",
				RayID:   rayID,
			})
		case errors.Is(err, orderservice.ErrZipMismatch):
			return c.Status(http.StatusForbidden).JSON(ErrorResponse{
				Message: "ZIP mismatch",
				RayID:   rayID,
			})
		}

		return c.Status(http.StatusInternalServerError).JSON(ErrorResponse{
			Message: err.Error(),
			RayID:   rayID,
		})
	}

	return c.JSON(summaries)
}
