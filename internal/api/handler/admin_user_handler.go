package handler

import (
	"errors"
	"net/http"

	"github.com/Malvezin/miglesMakeStore/internal/api/dto"
	"github.com/Malvezin/miglesMakeStore/internal/service"
	"github.com/gin-gonic/gin"
)

// AdminUserHandler gerencia quem tem papel de equipe (admin).
type AdminUserHandler struct {
	userSvc *service.UserService
}

func NewAdminUserHandler(userSvc *service.UserService) *AdminUserHandler {
	return &AdminUserHandler{userSvc: userSvc}
}

func (h *AdminUserHandler) ListAdmins(c *gin.Context) {
	admins, err := h.userSvc.ListAdmins(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, admins)
}

func (h *AdminUserHandler) GrantAdmin(c *gin.Context) {
	var req dto.GrantAdminRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	role, err := h.userSvc.GrantAdmin(c.Request.Context(), req.UserID)
	if err != nil {
		if errors.Is(err, service.ErrInvalidUserID) {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusCreated, role)
}

func (h *AdminUserHandler) RevokeAdmin(c *gin.Context) {
	if err := h.userSvc.RevokeAdmin(c.Request.Context(), c.Param("id")); err != nil {
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}
