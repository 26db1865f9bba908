package catalog

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
	items := rg.Group("/items")
	{
		items.GET("", h.ListItems)
		items.GET("/:id", h.GetItem)
		items.POST("", h.CreateItem)
		items.PUT("/:id", h.UpdateItem)
		items.DELETE("/:id", h.DeleteItem)
	}
}

func (h *Handler) ListItems(c *gin.Context) {
	items, err := h.service.ListItems(c.Request.Context())
	if err != nil {
		response.ErrorWithDetails(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to list items", err.Error())
		return
	}
	response.Success(c, http.StatusOK, gin.H{"items": items})
}

func (h *Handler) GetItem(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid item ID")
		return
	}

	it, err := h.service.GetItem(c.Request.Context(), id)
	if err != nil {
		handleItemError(c, err)
		return
	}
	response.Success(c, http.StatusOK, it)
}

func (h *Handler) CreateItem(c *gin.Context) {
	var req CreateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_REQUEST", "name, category and price are required")
		return
	}

	it, err := h.service.CreateItem(c.Request.Context(), req)
	if err != nil {
		handleItemError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, it)
}

func (h *Handler) UpdateItem(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid item ID")
		return
	}

	var req UpdateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_REQUEST", "Malformed request body")
		return
	}

	it, err := h.service.UpdateItem(c.Request.Context(), id, req)
	if err != nil {
		handleItemError(c, err)
		return
	}
	response.Success(c, http.StatusOK, it)
}

func (h *Handler) DeleteItem(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid item ID")
		return
	}

	if err := h.service.DeleteItem(c.Request.Context(), id); err != nil {
		// Deleting an item referenced by order lines fails on the foreign key;
		// surface it rather than cascade.
		handleItemError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"deleted": id})
}

func handleItemError(c *gin.Context, err error) {
	var notFound *domain.ItemNotFoundError

	switch {
	case errors.As(err, &notFound):
		response.NotFound(c, notFound.Error())
	case errors.Is(err, gorm.ErrRecordNotFound):
		response.NotFound(c, "Item not found")
	case errors.Is(err, ErrInvalidCategory):
		response.Error(c, http.StatusBadRequest, "INVALID_CATEGORY", err.Error())
	default:
		response.ErrorWithDetails(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Item operation failed", err.Error())
	}
}
