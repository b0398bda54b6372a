package handler

import (
	"main/middleware"
	"main/usecase"
	"main/utils"

	"github.com/gin-gonic/gin"
)

func DashboardHandler(c *gin.Context, dashboardService *usecase.DashboardService) {
	view, err := dashboardService.Build(c.Request.Context())
	if err != nil {
		utils.WriteError(c, err)
		return
	}

	utils.Success(c, view)
}

func ListAlertsHandler(c *gin.Context, alertService *usecase.AlertService) {
	alerts, err := alertService.ListAll(c.Request.Context())
	if err != nil {
		utils.WriteError(c, err)
		return
	}

	utils.Success(c, alerts)
}

func ResolveAlertHandler(c *gin.Context, alertService *usecase.AlertService) {
	user := middleware.CurrentUser(c)
	if user == nil {
		utils.Unauthorized(c, "authentication rejected")
		return
	}

	alertID := c.Param("id")
	if alertID == "" {
		utils.BadRequest(c, "alert id required")
		return
	}

	if err := alertService.Resolve(c.Request.Context(), alertID, user.UserID); err != nil {
		utils.WriteError(c, err)
		return
	}

	utils.SuccessMessage(c, "Alert resolved successfully", nil)
}
