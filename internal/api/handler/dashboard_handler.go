package handler

import (
	"net/http"

	"github.com/Malvezin/miglesMakeStore/internal/api/dto"
	"github.com/Malvezin/miglesMakeStore/internal/service"
	"github.com/gin-gonic/gin"
)

// DashboardHandler devolve os contadores do painel admin.
type DashboardHandler struct {
	dashboardSvc *service.DashboardService
}

func NewDashboardHandler(dashboardSvc *service.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboardSvc: dashboardSvc}
}

func (h *DashboardHandler) Stats(c *gin.Context) {
	stats, err := h.dashboardSvc.Stats(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, stats)
}
