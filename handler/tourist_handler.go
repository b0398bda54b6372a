package handler

import (
	"time"

	"main/dto"
	"main/middleware"
	"main/model"
	"main/usecase"
	"main/utils"

	"github.com/gin-gonic/gin"
)

func GetTouristProfileHandler(c *gin.Context, authService *usecase.AuthService) {
	user := middleware.CurrentUser(c)
	if user == nil {
		utils.Unauthorized(c, "authentication rejected")
		return
	}

	profile, err := authService.GetTouristProfile(c.Request.Context(), user.UserID)
	if err != nil {
		utils.WriteError(c, err)
		return
	}

	utils.Success(c, profile)
}

func UpdateLocationHandler(c *gin.Context, trackerService *usecase.TrackerService) {
	user := middleware.CurrentUser(c)
	if user == nil {
		utils.Unauthorized(c, "authentication rejected")
		return
	}

	var req dto.LocationUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "invalid request")
		return
	}

	timestamp := time.Now().UTC()
	if req.Timestamp != nil {
		timestamp = *req.Timestamp
	}

	location := &model.Location{
		Latitude:  *req.Latitude,
		Longitude: *req.Longitude,
		Timestamp: timestamp,
	}

	if err := trackerService.UpdateLocation(c.Request.Context(), user, location); err != nil {
		utils.WriteError(c, err)
		return
	}

	utils.SuccessMessage(c, "Location updated successfully", nil)
}

func PanicHandler(c *gin.Context, alertService *usecase.AlertService) {
	user := middleware.CurrentUser(c)
	if user == nil {
		utils.Unauthorized(c, "authentication rejected")
		return
	}

	alert, err := alertService.TriggerPanic(c.Request.Context(), user)
	if err != nil {
		utils.WriteError(c, err)
		return
	}

	utils.SuccessMessage(c, "Panic alert sent successfully", gin.H{"alert_id": alert.AlertID})
}
