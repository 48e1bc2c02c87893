package handler

import (
	"errors"
	"net/http"

	"parcel-lookup/internal/core/logger"
	"parcel-lookup/internal/core/metrics"
	"parcel-lookup/internal/features/orders/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// OrderHandler handles HTTP requests for shipment record lookups.
type OrderHandler struct {
	// service is the LookupService instance.
	service *service.LookupService
}

// NewOrderHandler creates a new instance of OrderHandler.
func NewOrderHandler(s *service.LookupService) *OrderHandler {
	return &OrderHandler{
		service: s,
	}
}

// ErrorResponse represents the structure of an error response.
type ErrorResponse struct {
	// Message is the error description.
	Message string `json:"message"`
	// RayID is the unique request identifier for debugging.
	RayID string `json:"ray_id"`
}

// GetOrders handles the request to retrieve the shipment records of an order.
// @Summary Look up an order
// @Description Returns all shipment records behind an order number. With a matching ZIP the full records are returned; without one, recipient details and package contents are stripped.
// @Tags orders
// @Accept json
// @Produce json
// @Param orderNumber path string true "Order number"
// @Param zip query string false "Recipient ZIP code"
// @Success 200 {array} domain.Order
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /orders/{orderNumber} [get]
func (h *OrderHandler) GetOrders(c *fiber.Ctx) error {
	orderNo := c.Params("orderNumber")
	zip := c.Query("zip")

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

	orders, err := h.service.Lookup(c.Context(), orderNo, zip)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrOrderNotFound):
			metrics.LookupsTotal.WithLabelValues(metrics.LookupOutcomeNotFound).Inc()
			return c.Status(http.StatusNotFound).JSON(ErrorResponse{
				Message: "Order not found",
				RayID:   rayID,
			})
		case errors.Is(err, service.ErrZipMismatch):
			metrics.LookupsTotal.WithLabelValues(metrics.LookupOutcomeZipMismatch).Inc()
			return c.Status(http.StatusForbidden).JSON(ErrorResponse{
				Message: "ZIP mismatch",
				RayID:   rayID,
			})
		}

		logger.Get().Error("Failed to look up order",
			zap.String("order_no", orderNo),
			zap.String("ray_id", rayID),
			zap.Error(err),
		)
		return c.Status(http.StatusInternalServerError).JSON(ErrorResponse{
			Message: "Internal Server Error",
			RayID:   rayID,
		})
	}

	metrics.LookupsTotal.WithLabelValues(metrics.LookupOutcomeFound).Inc()
	return c.Status(http.StatusOK).JSON(orders)
}
