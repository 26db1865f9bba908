package order

import (
	"errors"
	"net/http"
	"strconv"

	"petshop/internal/domain"
	"petshop/internal/pkg/response"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	orders := rg.Group("/orders")
	{
		orders.POST("", h.CreateOrder)
		orders.GET("/user/:id", h.GetUserOrders)
		orders.GET("/:id", h.GetOrder)
		orders.PUT("/:id/pay", h.PayOrder)
		orders.PUT("/:id/cancel", h.CancelOrder)
	}
}

func (h *Handler) CreateOrder(c *gin.Context) {
	var req CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_REQUEST", "user_id and items are required")
		return
	}

	result, err := h.service.CreateOrder(c.Request.Context(), req)
	if err != nil {
		handleOrderError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, result)
}

func (h *Handler) GetUserOrders(c *gin.Context) {
	userID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid user ID")
		return
	}

	orders, err := h.service.ListUserOrders(c.Request.Context(), userID)
	if err != nil {
		handleOrderError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"orders": orders})
}

func (h *Handler) GetOrder(c *gin.Context) {
	orderID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid order ID")
		return
	}

	o, err := h.service.GetOrder(c.Request.Context(), orderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.NotFound(c, "Order not found")
			return
		}
		handleOrderError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"order": o})
}

func (h *Handler) PayOrder(c *gin.Context) {
	orderID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid order ID")
		return
	}

	o, err := h.service.PayOrder(c.Request.Context(), orderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.NotFound(c, "Order not found")
			return
		}
		handleOrderError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"order_id": o.ID,
		"status":   o.Status,
	})
}

func (h *Handler) CancelOrder(c *gin.Context) {
	orderID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid order ID")
		return
	}

	var req CancelOrderRequest
	_ = c.ShouldBindJSON(&req) // body is optional

	o, err := h.service.CancelOrder(c.Request.Context(), orderID, req.Reason)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.NotFound(c, "Order not found")
			return
		}
		handleOrderError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"order_id":      o.ID,
		"status":        o.Status,
		"cancel_reason": o.CancelReason,
	})
}

func handleOrderError(c *gin.Context, err error) {
	var notFound *domain.ItemNotFoundError
	var noStock *domain.InsufficientStockError
	var badTransition *domain.InvalidTransitionError

	switch {
	case errors.Is(err, ErrInvalidRequest):
		response.Error(c, http.StatusBadRequest, "INVALID_REQUEST", "user_id and a non-empty items list are required")
	case errors.As(err, &notFound):
		response.Error(c, http.StatusNotFound, "ITEM_NOT_FOUND", notFound.Error())
	case errors.As(err, &noStock):
		response.Error(c, http.StatusBadRequest, "INSUFFICIENT_STOCK", noStock.Error())
	case errors.As(err, &badTransition):
		response.Error(c, http.StatusBadRequest, "INVALID_STATE_TRANSITION", badTransition.Error())
	default:
		response.ErrorWithDetails(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to process order", err.Error())
	}
}
