package pet

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
	pets := rg.Group("/pets")
	{
		pets.POST("", h.CreatePet)
		pets.GET("/user/:id", h.GetUserPets)
		pets.PUT("/:id", h.UpdatePet)
		pets.DELETE("/:id", h.DeletePet)
	}
}

func (h *Handler) CreatePet(c *gin.Context) {
	var req CreatePetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_REQUEST", "user_id, name and species are required")
		return
	}

	p, err := h.service.CreatePet(c.Request.Context(), req)
	if err != nil {
		response.ErrorWithDetails(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to create pet", err.Error())
		return
	}
	response.Success(c, http.StatusCreated, p)
}

func (h *Handler) GetUserPets(c *gin.Context) {
	userID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid user ID")
		return
	}

	pets, err := h.service.ListUserPets(c.Request.Context(), userID)
	if err != nil {
		response.ErrorWithDetails(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to list pets", err.Error())
		return
	}
	response.Success(c, http.StatusOK, gin.H{"pets": pets})
}

func (h *Handler) UpdatePet(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid pet ID")
		return
	}

	var req UpdatePetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_REQUEST", "Malformed request body")
		return
	}

	p, err := h.service.UpdatePet(c.Request.Context(), id, req)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.NotFound(c, "Pet not found")
			return
		}
		response.ErrorWithDetails(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to update pet", err.Error())
		return
	}
	response.Success(c, http.StatusOK, p)
}

func (h *Handler) DeletePet(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid pet ID")
		return
	}

	if err := h.service.DeletePet(c.Request.Context(), id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.NotFound(c, "Pet not found")
			return
		}
		response.ErrorWithDetails(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to delete pet", err.Error())
		return
	}
	response.Success(c, http.StatusOK, gin.H{"deleted": id})
}
