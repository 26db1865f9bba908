package admin

import (
	"errors"
	"net/http"
	"strconv"

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
	admin := rg.Group("/admin")
	{
		admin.GET("/stats", h.Stats)
		admin.GET("/orders", h.ListOrders)
		admin.GET("/bookings", h.ListBookings)
		admin.PUT("/orders/:id/status", h.OverrideOrderStatus)
		admin.PUT("/bookings/:id/status", h.OverrideBookingStatus)
	}
}

func (h *Handler) Stats(c *gin.Context) {
	stats, err := h.service.Stats(c.Request.Context())
	if err != nil {
		response.ErrorWithDetails(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to compute stats", err.Error())
		return
	}
	response.Success(c, http.StatusOK, stats)
}

func (h *Handler) ListOrders(c *gin.Context) {
	orders, err := h.service.ListAllOrders(c.Request.Context())
	if err != nil {
		response.ErrorWithDetails(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to list orders", err.Error())
		return
	}
	response.Success(c, http.StatusOK, gin.H{"orders": orders})
}

func (h *Handler) ListBookings(c *gin.Context) {
	bookings, err := h.service.ListAllBookings(c.Request.Context())
	if err != nil {
		response.ErrorWithDetails(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to list bookings", err.Error())
		return
	}
	response.Success(c, http.StatusOK, gin.H{"bookings": bookings})
}

func (h *Handler) OverrideOrderStatus(c *gin.Context) {
	orderID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid order ID")
		return
	}

	var req OverrideStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_REQUEST", "status is required")
		return
	}

	if err := h.service.OverrideOrderStatus(c.Request.Context(), orderID, req); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.NotFound(c, "Order not found")
			return
		}
		response.ErrorWithDetails(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to override status", err.Error())
		return
	}
	response.Success(c, http.StatusOK, gin.H{"order_id": orderID, "status": req.Status})
}

func (h *Handler) OverrideBookingStatus(c *gin.Context) {
	bookingID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid booking ID")
		return
	}

	var req OverrideStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_REQUEST", "status is required")
		return
	}

	if err := h.service.OverrideBookingStatus(c.Request.Context(), bookingID, req); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.NotFound(c, "Booking not found")
			return
		}
		response.ErrorWithDetails(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to override status", err.Error())
		return
	}
	response.Success(c, http.StatusOK, gin.H{"booking_id": bookingID, "status": req.Status})
}
