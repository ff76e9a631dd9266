package repository

import (
	"context"

	"nurvo_backend/internal/model"

	"gorm.io/gorm"
)

// ContentRepository reads the static lesson content: topics, chapters and
// their conversations.
type ContentRepository struct {
	DB *gorm.DB
}

func NewContentRepository(db *gorm.DB) *ContentRepository {
	return &ContentRepository{DB: db}
}

func (r *ContentRepository) FindTopics(ctx context.Context) ([]model.Topic, error) {
	topics := make([]model.Topic, 0)
	if err := r.DB.WithContext(ctx).Order("id ASC").Find(&topics).Error; err != nil {
		return nil, classify("content.FindTopics", err)
	}
	return topics, nil
}

func (r *ContentRepository) FindChapters(ctx context.Context) ([]model.Chapter, error) {
	chapters := make([]model.Chapter, 0)
	if err := r.DB.WithContext(ctx).Order("id ASC").Find(&chapters).Error; err != nil {
		return nil, classify("content.FindChapters", err)
	}
	return chapters, nil
}

// FindConversations returns the conversations of one chapter, or all of them
// when chapterID is nil.
func (r *ContentRepository) FindConversations(ctx context.Context, chapterID *uint) ([]model.Conversation, error) {
	conversations := make([]model.Conversation, 0)
	query := r.DB.WithContext(ctx).Order("id ASC")
	if chapterID != nil {
		query = query.Where("chapter_id = ?", *chapterID)
	}
	if err := query.Find(&conversations).Error; err != nil {
		return nil, classify("content.FindConversations", err)
	}
	return conversations, nil
}

func (r *ContentRepository) FindDialogue(ctx context.Context, conversationID uint) (string, error) {
	var conv model.Conversation
	err := r.DB.WithContext(ctx).Select("id", "dialogue").Where("id = ?", conversationID).Take(&conv).Error
	if err != nil {
		return "", classify("content.FindDialogue", err)
	}
	return conv.Dialogue, nil
}

func (r *ContentRepository) FindSecondStep(ctx context.Context, conversationID uint) (string, error) {
	var conv model.Conversation
	err := r.DB.WithContext(ctx).Select("id", "second_step").Where("id = ?", conversationID).Take(&conv).Error
	if err != nil {
		return "", classify("content.FindSecondStep", err)
	}
	return conv.SecondStep, nil
}
