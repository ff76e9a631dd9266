package controller

import (
	"nurvo_backend/internal/middleware"
	"nurvo_backend/internal/service"
	"nurvo_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type EduController struct {
	EduService *service.EduService
}

func NewEduController(eduService *service.EduService) *EduController {
	return &EduController{EduService: eduService}
}

// Completed godoc
// @Summary Chapters the caller has progress on
// @Description Topic, chapter, step and date of every chapter the caller studied
// @Tags Edu
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=[]model.CompletedChapter}
// @Router /api/edu [get]
func (c *EduController) Completed(ctx *gin.Context) {
	rows, err := c.EduService.CompletedChapters(ctx.Request.Context(), middleware.CurrentUserID(ctx))
	if err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.Success(ctx, rows)
}

// Record godoc
// @Summary Record lesson progress
// @Description Stores the step reached on a chapter, replacing any earlier record
// @Tags Edu
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body service.CompletionRequest true "Progress"
// @Success 200 {object} util.Response{data=model.Edu}
// @Failure 400 {object} util.Response
// @Router /api/edu [post]
func (c *EduController) Record(ctx *gin.Context) {
	var req service.CompletionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	edu, err := c.EduService.RecordCompletion(ctx.Request.Context(), middleware.CurrentUserID(ctx), req)
	if err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.Success(ctx, edu)
}

// Today godoc
// @Summary Today's lessons
// @Description Chapters to study today, limited by the caller's daily objective
// @Tags Edu
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=[]model.TodayLesson}
// @Failure 404 {object} util.Response
// @Router /api/edu/today [get]
func (c *EduController) Today(ctx *gin.Context) {
	rows, err := c.EduService.TodayLessons(ctx.Request.Context(), middleware.CurrentUserID(ctx))
	if err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.Success(ctx, rows)
}

// Steps godoc
// @Summary Chapters with the step reached
// @Tags Edu
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=[]model.ChapterStep}
// @Router /api/edu/steps [get]
func (c *EduController) Steps(ctx *gin.Context) {
	rows, err := c.EduService.ChaptersWithStep(ctx.Request.Context(), middleware.CurrentUserID(ctx))
	if err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.Success(ctx, rows)
}
