package controller

import (
	"nurvo_backend/internal/middleware"
	"nurvo_backend/internal/service"
	"nurvo_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type BookmarkController struct {
	BookmarkService *service.BookmarkService
}

func NewBookmarkController(bookmarkService *service.BookmarkService) *BookmarkController {
	return &BookmarkController{BookmarkService: bookmarkService}
}

// List godoc
// @Summary Caller's bookmarks
// @Tags Bookmarks
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=[]model.Bookmark}
// @Failure 401 {object} util.Response
// @Router /api/bookmark [get]
func (c *BookmarkController) List(ctx *gin.Context) {
	bookmarks, err := c.BookmarkService.List(ctx.Request.Context(), middleware.CurrentUserID(ctx))
	if err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.Success(ctx, bookmarks)
}

// Save godoc
// @Summary Save a bookmark
// @Tags Bookmarks
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body BookmarkRequest true "Conversation to bookmark"
// @Success 201 {object} util.Response{data=model.Bookmark}
// @Failure 400 {object} util.Response
// @Router /api/bookmark [post]
func (c *BookmarkController) Save(ctx *gin.Context) {
	saveBookmark(ctx, c.BookmarkService)
}

// Delete godoc
// @Summary Delete a bookmark
// @Tags Bookmarks
// @Produce json
// @Security ApiKeyAuth
// @Param conversationId path int true "Conversation ID"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/bookmark/{conversationId} [delete]
func (c *BookmarkController) Delete(ctx *gin.Context) {
	conversationID, ok := util.ParseIDParam(ctx, "conversationId")
	if !ok {
		return
	}

	if err := c.BookmarkService.Delete(ctx.Request.Context(), middleware.CurrentUserID(ctx), conversationID); err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"conversation_id": conversationID})
}

func saveBookmark(ctx *gin.Context, svc *service.BookmarkService) {
	var req BookmarkRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	bookmark, err := svc.Save(ctx.Request.Context(), middleware.CurrentUserID(ctx), req.ConversationID)
	if err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.Created(ctx, bookmark)
}
