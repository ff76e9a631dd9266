package controller

import (
	"nurvo_backend/internal/middleware"
	"nurvo_backend/internal/service"
	"nurvo_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type UserController struct {
	UserService *service.UserService
}

func NewUserController(userService *service.UserService) *UserController {
	return &UserController{UserService: userService}
}

// Me godoc
// @Summary Profile of the caller
// @Tags Users
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=model.User}
// @Failure 404 {object} util.Response
// @Router /api/user [get]
func (c *UserController) Me(ctx *gin.Context) {
	user, err := c.UserService.GetUser(ctx.Request.Context(), middleware.CurrentUserID(ctx))
	if err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.Success(ctx, user)
}

// List godoc
// @Summary All users
// @Tags Users
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=[]model.User}
// @Router /api/users [get]
func (c *UserController) List(ctx *gin.Context) {
	users, err := c.UserService.ListUsers(ctx.Request.Context())
	if err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.Success(ctx, users)
}

// UpdateProgress godoc
// @Summary Update the daily objective
// @Description Sets obj, obj_date or both. At least one is required.
// @Tags Users
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body service.ProgressRequest true "Fields to change"
// @Success 200 {object} util.Response{data=model.User}
// @Failure 400 {object} util.Response
// @Router /api/user/progress [patch]
func (c *UserController) UpdateProgress(ctx *gin.Context) {
	var req service.ProgressRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	user, err := c.UserService.UpdateProgress(ctx.Request.Context(), middleware.CurrentUserID(ctx), req)
	if err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.Success(ctx, user)
}
