package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	appordering "github.com/orderflow/backend/internal/application/ordering"
	"github.com/orderflow/backend/internal/domain/ordering"
	"github.com/orderflow/backend/internal/domain/shared"
	"github.com/orderflow/backend/internal/infrastructure/logger"
	"github.com/orderflow/backend/internal/interfaces/http/dto"
)

// OrderHandler handles order-taking API endpoints
type OrderHandler struct {
	placeOrderService *appordering.PlaceOrderService
}

// NewOrderHandler creates a new OrderHandler
func NewOrderHandler(placeOrderService *appordering.PlaceOrderService) *OrderHandler {
	return &OrderHandler{placeOrderService: placeOrderService}
}

// RegisterRoutes registers the order routes on the given router group
func (h *OrderHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/orders", h.PlaceOrder)
}

// PlaceOrder godoc
// @ID           placeOrder
// @Summary      Place an order
// @Description  Validates, prices and acknowledges an order form, returning the resulting events
// @Tags         orders
// @Accept       json
// @Produce      json
// @Param        order body dto.OrderFormRequest true "Order form"
// @Success      200 {array}  dto.EventResponse
// @Failure      400 {object} dto.ErrorInfo
// @Router       /orders [post]
func (h *OrderHandler) PlaceOrder(c *gin.Context) {
	var req dto.OrderFormRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.NewErrorInfo(dto.ErrCodeInvalidJSON, bindErrorMessage(err)))
		return
	}

	cmd := shared.NewCommand(req.ToUnvalidatedOrder(), c.GetHeader("X-User-ID"))

	events, err := h.placeOrderService.PlaceOrder(c.Request.Context(), cmd)
	if err != nil {
		if poErr, ok := err.(ordering.PlaceOrderError); ok {
			c.JSON(dto.GetHTTPStatus(poErr.Code()), dto.FromPlaceOrderError(poErr))
			return
		}
		logger.GetGinLogger(c).Error("place order failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, dto.NewErrorInfo(dto.ErrCodeInternal, "internal server error"))
		return
	}

	c.JSON(http.StatusOK, dto.FromDomainEvents(events))
}

// bindErrorMessage turns a binding failure into a readable message.
// Missing required fields are listed by name; anything else (malformed
// JSON, wrong types) keeps the decoder's message.
func bindErrorMessage(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err.Error()
	}
	parts := make([]string, len(verrs))
	for i, fe := range verrs {
		parts[i] = fe.Field() + " is " + fe.Tag()
	}
	return "invalid request body: " + strings.Join(parts, "; ")
}
