package controller

import (
	"nurvo_backend/internal/middleware"
	"nurvo_backend/internal/service"
	"nurvo_backend/internal/util"

	"github.com/gin-gonic/gin"
)

// DialogueController serves lesson content: topics, chapters and the
// conversations of a chapter.
type DialogueController struct {
	ContentService  *service.ContentService
	BookmarkService *service.BookmarkService
}

func NewDialogueController(contentService *service.ContentService, bookmarkService *service.BookmarkService) *DialogueController {
	return &DialogueController{
		ContentService:  contentService,
		BookmarkService: bookmarkService,
	}
}

// Overview godoc
// @Summary Lesson overview
// @Description All topics and chapters, plus the steps the caller reached
// @Tags Dialogues
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=service.Overview}
// @Failure 401 {object} util.Response
// @Router /api/dialogues [get]
func (c *DialogueController) Overview(ctx *gin.Context) {
	ov, err := c.ContentService.Overview(ctx.Request.Context(), middleware.CurrentUserID(ctx))
	if err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.Success(ctx, ov)
}

// Chapter godoc
// @Summary Conversations of a chapter
// @Tags Dialogues
// @Produce json
// @Security ApiKeyAuth
// @Param chapterId path int true "Chapter ID"
// @Success 200 {object} util.Response{data=[]model.Conversation}
// @Failure 400 {object} util.Response
// @Router /api/dialogues/{chapterId} [get]
func (c *DialogueController) Chapter(ctx *gin.Context) {
	chapterID, ok := util.ParseIDParam(ctx, "chapterId")
	if !ok {
		return
	}

	conversations, err := c.ContentService.Dialogues(ctx.Request.Context(), chapterID)
	if err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.Success(ctx, conversations)
}

// swagger:model BookmarkRequest
type BookmarkRequest struct {
	ConversationID uint `json:"conversation_id" binding:"required"`
}

// Bookmark godoc
// @Summary Bookmark a sentence
// @Description Saves a conversation of the chapter to the caller's bookmarks
// @Tags Dialogues
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param chapterId path int true "Chapter ID"
// @Param body body BookmarkRequest true "Conversation to bookmark"
// @Success 201 {object} util.Response{data=model.Bookmark}
// @Failure 400 {object} util.Response
// @Router /api/dialogues/{chapterId} [post]
func (c *DialogueController) Bookmark(ctx *gin.Context) {
	if _, ok := util.ParseIDParam(ctx, "chapterId"); !ok {
		return
	}
	saveBookmark(ctx, c.BookmarkService)
}

// Sentence godoc
// @Summary Sentence of a conversation
// @Tags Dialogues
// @Produce json
// @Security ApiKeyAuth
// @Param chapterId path int true "Chapter ID"
// @Param conversationId path int true "Conversation ID"
// @Success 200 {object} util.Response{data=object}
// @Failure 404 {object} util.Response
// @Router /api/dialogues/{chapterId}/{conversationId} [get]
func (c *DialogueController) Sentence(ctx *gin.Context) {
	conversationID, ok := util.ParseIDParam(ctx, "conversationId")
	if !ok {
		return
	}

	text, err := c.ContentService.Sentence(ctx.Request.Context(), conversationID)
	if err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"dialogue": text})
}

// SecondStep godoc
// @Summary Fill-in-the-blank text of a conversation
// @Tags Dialogues
// @Produce json
// @Security ApiKeyAuth
// @Param chapterId path int true "Chapter ID"
// @Param conversationId path int true "Conversation ID"
// @Success 200 {object} util.Response{data=object}
// @Failure 404 {object} util.Response
// @Router /api/dialogues/{chapterId}/{conversationId}/step2 [get]
func (c *DialogueController) SecondStep(ctx *gin.Context) {
	conversationID, ok := util.ParseIDParam(ctx, "conversationId")
	if !ok {
		return
	}

	text, err := c.ContentService.SecondStep(ctx.Request.Context(), conversationID)
	if err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"second_step": text})
}
