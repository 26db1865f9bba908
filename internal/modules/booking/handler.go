package booking

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
	bookings := rg.Group("/bookings")
	{
		bookings.POST("", h.CreateBooking)
		bookings.GET("/user/:id", h.GetUserBookings)
		bookings.PUT("/:id/pay", h.PayBooking)
		bookings.PUT("/:id/cancel", h.CancelBooking)
	}
}

func (h *Handler) CreateBooking(c *gin.Context) {
	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_REQUEST", "user_id, service_name, booking_date and booking_time are required")
		return
	}

	result, err := h.service.CreateBooking(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, ErrInvalidRequest) {
			response.Error(c, http.StatusBadRequest, "INVALID_REQUEST", "booking_date must be a valid date (YYYY-MM-DD)")
			return
		}
		response.ErrorWithDetails(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to create booking", err.Error())
		return
	}

	response.Success(c, http.StatusCreated, result)
}

func (h *Handler) GetUserBookings(c *gin.Context) {
	userID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid user ID")
		return
	}

	bookings, err := h.service.ListUserBookings(c.Request.Context(), userID)
	if err != nil {
		response.ErrorWithDetails(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to list bookings", err.Error())
		return
	}

	response.Success(c, http.StatusOK, gin.H{"bookings": bookings})
}

func (h *Handler) PayBooking(c *gin.Context) {
	bookingID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid booking ID")
		return
	}

	b, err := h.service.PayBooking(c.Request.Context(), bookingID)
	if err != nil {
		handleBookingError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"booking_id": b.ID,
		"status":     b.Status,
	})
}

func (h *Handler) CancelBooking(c *gin.Context) {
	bookingID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid booking ID")
		return
	}

	var req CancelBookingRequest
	_ = c.ShouldBindJSON(&req) // body is optional

	b, err := h.service.CancelBooking(c.Request.Context(), bookingID, req.Reason)
	if err != nil {
		handleBookingError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"booking_id":    b.ID,
		"status":        b.Status,
		"cancel_reason": b.CancelReason,
	})
}

func handleBookingError(c *gin.Context, err error) {
	var badTransition *domain.InvalidTransitionError

	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		response.NotFound(c, "Booking not found")
	case errors.As(err, &badTransition):
		response.Error(c, http.StatusBadRequest, "INVALID_STATE_TRANSITION", badTransition.Error())
	default:
		response.ErrorWithDetails(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to update booking", err.Error())
	}
}
