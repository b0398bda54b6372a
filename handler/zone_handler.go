package handler

import (
	"main/dto"
	"main/usecase"
	"main/utils"

	"github.com/gin-gonic/gin"
)

func ListZonesHandler(c *gin.Context, zoneService *usecase.ZoneService) {
	zones, err := zoneService.List(c.Request.Context())
	if err != nil {
		utils.WriteError(c, err)
		return
	}

	utils.Success(c, zones)
}

func CreateZoneHandler(c *gin.Context, zoneService *usecase.ZoneService) {
	var req dto.CreateZoneRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "invalid request")
		return
	}

	zone, err := zoneService.Create(c.Request.Context(), &req)
	if err != nil {
		utils.WriteError(c, err)
		return
	}

	utils.Success(c, zone)
}
