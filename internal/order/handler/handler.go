package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/stockroom/inventory-service/internal/order"
	"github.com/stockroom/inventory-service/internal/order/dto"
	"github.com/stockroom/inventory-service/pkg/logger"
	"go.uber.org/zap"
)

type OrderHandler struct {
	uc     order.UseCase
	logger logger.Logger
}

func NewOrderHandler(uc order.UseCase, log logger.Logger) *OrderHandler {
	return &OrderHandler{
		uc:     uc,
		logger: log,
	}
}

func (h *OrderHandler) RegisterRoutes(r *gin.Engine) {
	r.POST("/orders", h.CreateOrder)
	r.GET("/orders", h.ListOrders)
	r.GET("/orders/:id", h.GetOrder)
}

type createOrderRequest struct {
	Products []dto.BasketItem `json:"products"`
}

func (h *OrderHandler) CreateOrder(c *gin.Context) {
	var req createOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Products are required to create an order."})
		return
	}

	created, err := h.uc.CreateOrder(c.Request.Context(), &dto.CreateOrderInput{Products: req.Products})
	if err != nil {
		h.respondCreateError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Order created successfully.", "orderId": created.ID})
}

func (h *OrderHandler) respondCreateError(c *gin.Context, err error) {
	var stockErr *order.InsufficientStockError
	var notFoundErr *order.ProductNotFoundError

	switch {
	case errors.Is(err, order.ErrEmptyBasket):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Products are required to create an order."})
	case errors.Is(err, order.ErrInvalidQuantity):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Order quantities must be positive."})
	case errors.As(err, &stockErr):
		c.JSON(http.StatusBadRequest, gin.H{"error": stockErr.Error()})
	case errors.As(err, &notFoundErr):
		c.JSON(http.StatusNotFound, gin.H{"error": notFoundErr.Error()})
	default:
		h.logger.Error("order creation failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create order."})
	}
}

func (h *OrderHandler) GetOrder(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid order id."})
		return
	}

	rows, err := h.uc.GetOrder(c.Request.Context(), id)
	if err != nil {
		h.logger.Error("failed to fetch order details", zap.Int64("order_id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch order details."})
		return
	}

	// An unknown id yields an empty row set, not an error.
	c.JSON(http.StatusOK, gin.H{"order": rows})
}

func (h *OrderHandler) ListOrders(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))

	orders, err := h.uc.ListOrders(c.Request.Context(), &dto.OrderFilters{Page: page, Limit: limit})
	if err != nil {
		h.logger.Error("failed to list orders", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch orders."})
		return
	}

	c.JSON(http.StatusOK, gin.H{"orders": orders})
}
