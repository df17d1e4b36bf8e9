package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pageza/recipe-builder/backend/internal/service"
)

// DashboardHandler serves the user and admin dashboards.
type DashboardHandler struct {
	dashboard    service.IDashboardService
	admin        service.IAdminService
	requireAdmin gin.HandlerFunc
}

func NewDashboardHandler(dashboard service.IDashboardService, admin service.IAdminService, requireAdmin gin.HandlerFunc) *DashboardHandler {
	return &DashboardHandler{
		dashboard:    dashboard,
		admin:        admin,
		requireAdmin: requireAdmin,
	}
}

// RegisterRoutes registers the dashboard routes
func (h *DashboardHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/dashboard", h.GetDashboard)
	router.GET("/admin/stats", h.requireAdmin, h.GetAdminStats)
}

func (h *DashboardHandler) GetDashboard(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	dash, err := h.dashboard.Dashboard(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dash)
}

func (h *DashboardHandler) GetAdminStats(c *gin.Context) {
	stats, err := h.admin.Stats(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}
