package auth

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
	users := rg.Group("/users")
	{
		users.POST("/register", h.Register)
		users.POST("/login", h.Login)
		users.GET("/:id", h.Profile)
		users.PUT("/:id", h.UpdateProfile)
	}
}

func (h *Handler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_REQUEST", "full_name, email and password (min 6 chars) are required")
		return
	}

	u, err := h.service.Register(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, ErrEmailTaken) {
			response.Error(c, http.StatusBadRequest, "EMAIL_TAKEN", err.Error())
			return
		}
		response.ErrorWithDetails(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to register", err.Error())
		return
	}
	response.Success(c, http.StatusCreated, u)
}

func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_REQUEST", "email and password are required")
		return
	}

	resp, err := h.service.Login(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, ErrInvalidCredentials) {
			response.Error(c, http.StatusUnauthorized, "INVALID_CREDENTIALS", err.Error())
			return
		}
		response.ErrorWithDetails(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to log in", err.Error())
		return
	}
	response.Success(c, http.StatusOK, resp)
}

func (h *Handler) UpdateProfile(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid user ID")
		return
	}

	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_REQUEST", "Malformed request body")
		return
	}

	u, err := h.service.UpdateProfile(c.Request.Context(), id, req)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.NotFound(c, "User not found")
			return
		}
		response.ErrorWithDetails(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to update profile", err.Error())
		return
	}
	response.Success(c, http.StatusOK, u)
}

func (h *Handler) Profile(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid user ID")
		return
	}

	u, err := h.service.Profile(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.NotFound(c, "User not found")
			return
		}
		response.ErrorWithDetails(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load profile", err.Error())
		return
	}
	response.Success(c, http.StatusOK, u)
}
