package controller

import (
	"nurvo_backend/internal/middleware"
	"nurvo_backend/internal/service"
	"nurvo_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type AttendanceController struct {
	AttendanceService *service.AttendanceService
}

func NewAttendanceController(attendanceService *service.AttendanceService) *AttendanceController {
	return &AttendanceController{AttendanceService: attendanceService}
}

// List godoc
// @Summary Attendance log of the caller
// @Tags Attendance
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=[]model.Attendance}
// @Router /api/attendance [get]
func (c *AttendanceController) List(ctx *gin.Context) {
	rows, err := c.AttendanceService.List(ctx.Request.Context(), middleware.CurrentUserID(ctx))
	if err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.Success(ctx, rows)
}

// Record godoc
// @Summary Check in for today
// @Tags Attendance
// @Produce json
// @Security ApiKeyAuth
// @Success 201 {object} util.Response{data=model.Attendance}
// @Router /api/attendance [post]
func (c *AttendanceController) Record(ctx *gin.Context) {
	row, err := c.AttendanceService.Record(ctx.Request.Context(), middleware.CurrentUserID(ctx))
	if err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.Created(ctx, row)
}
