package controller

import (
	"errors"

	"mathquest_backend/internal/middleware"
	"mathquest_backend/internal/service"
	"mathquest_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type UserController struct {
	UserService *service.UserService
}

func NewUserController(userService *service.UserService) *UserController {
	return &UserController{UserService: userService}
}

// @Summary 用户档案（统计 + 总体完成度）
// @Tags 用户
// @Produce json
// @Success 200 {object} util.Response
// @Router /api/users/profile [get]
func (c *UserController) GetProfile(ctx *gin.Context) {
	userID := middleware.CurrentUserID(ctx)

	profile, err := c.UserService.GetProfile(userID)
	if err != nil {
		if errors.Is(err, util.ErrUserNotFound) {
			util.NotFound(ctx, err.Error())
			return
		}
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, profile)
}
