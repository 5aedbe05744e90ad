package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"CardCheckout/internal/domain/checkout"
	"CardCheckout/internal/domain/order"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type OrderHandler struct {
	service  *order.OrderService
	pipeline *checkout.Pipeline
}

func NewOrderHandler(s *order.OrderService, p *checkout.Pipeline) *OrderHandler {
	return &OrderHandler{service: s, pipeline: p}
}

func (h *OrderHandler) Get(c *gin.Context) {
	orderID := c.Param("order_id")
	if orderID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Missing order_id"})
		return
	}

	res, err := h.service.GetDetails(c.Request.Context(), orderID)
	if err != nil {
		if errors.Is(err, order.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}

	c.JSON(http.StatusOK, res)
}

type RefundRequest struct {
	Amount decimal.Decimal `json:"amount"`
	Reason string          `json:"reason"`
}

func (h *OrderHandler) Refund(c *gin.Context) {
	orderID := c.Param("order_id")
	if orderID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Missing order_id"})
		return
	}

	var req RefundRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid refund request"})
		return
	}

	res, err := h.pipeline.Refund(c.Request.Context(), orderID, req.Amount, req.Reason)
	if err != nil {
		if errors.Is(err, order.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": err.Error()})
			return
		}

		switch checkout.KindOf(err) {
		case checkout.KindValidationFailed:
			c.JSON(http.StatusUnprocessableEntity, gin.H{"refunded": false, "message": err.Error()})
		case checkout.KindChargeNotFound:
			c.JSON(http.StatusConflict, gin.H{"refunded": false, "message": err.Error()})
		case checkout.KindGatewayRejected:
			c.JSON(http.StatusBadGateway, gin.H{"refunded": false, "message": err.Error()})
		case checkout.KindConfigurationMissing:
			c.JSON(http.StatusServiceUnavailable, gin.H{"refunded": false, "message": err.Error()})
		default:
			slog.ErrorContext(c.Request.Context(), "Refund failed", "order_id", orderID, "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"refunded": false, "message": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, res)
}
