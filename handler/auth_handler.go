package handler

import (
	"main/dto"
	"main/usecase"
	"main/utils"

	"github.com/gin-gonic/gin"
)

func RegistrationHandler(c *gin.Context, authService *usecase.AuthService) {
	var req dto.RegisterRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "invalid request")
		return
	}

	tokenResp, err := authService.Register(c.Request.Context(), &req)
	if err != nil {
		utils.WriteError(c, err)
		return
	}

	utils.Success(c, tokenResp)
}

func LoginHandler(c *gin.Context, authService *usecase.AuthService) {
	var req dto.LoginRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "invalid request")
		return
	}

	tokenResp, err := authService.Login(c.Request.Context(), &req)
	if err != nil {
		utils.WriteError(c, err)
		return
	}

	utils.Success(c, tokenResp)
}
