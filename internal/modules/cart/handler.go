package cart

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
	carts := rg.Group("/cart")
	{
		carts.POST("", h.AddToCart)
		carts.GET("/user/:id", h.GetCart)
		carts.DELETE("/user/:id/items/:itemId", h.RemoveFromCart)
	}
}

func (h *Handler) AddToCart(c *gin.Context) {
	var req AddToCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_REQUEST", "user_id and item_id are required")
		return
	}

	line, err := h.service.AddToCart(c.Request.Context(), req)
	if err != nil {
		var notFound *domain.ItemNotFoundError
		switch {
		case errors.Is(err, ErrInvalidRequest):
			response.Error(c, http.StatusBadRequest, "INVALID_REQUEST", "quantity must be positive")
		case errors.As(err, &notFound):
			response.NotFound(c, notFound.Error())
		default:
			response.ErrorWithDetails(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to add to cart", err.Error())
		}
		return
	}

	response.Success(c, http.StatusCreated, line)
}

func (h *Handler) GetCart(c *gin.Context) {
	userID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid user ID")
		return
	}

	cart, err := h.service.GetCart(c.Request.Context(), userID)
	if err != nil {
		response.ErrorWithDetails(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load cart", err.Error())
		return
	}
	response.Success(c, http.StatusOK, cart)
}

func (h *Handler) RemoveFromCart(c *gin.Context) {
	userID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid user ID")
		return
	}
	itemID, err := strconv.ParseInt(c.Param("itemId"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid item ID")
		return
	}

	if err := h.service.RemoveFromCart(c.Request.Context(), userID, itemID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.NotFound(c, "Cart line not found")
			return
		}
		response.ErrorWithDetails(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to remove cart line", err.Error())
		return
	}
	response.Success(c, http.StatusOK, gin.H{"removed": itemID})
}
