package repository

import (
	"context"

	"nurvo_backend/internal/model"

	"gorm.io/gorm"
)

type BookmarkRepository struct {
	DB *gorm.DB
}

func NewBookmarkRepository(db *gorm.DB) *BookmarkRepository {
	return &BookmarkRepository{DB: db}
}

func (r *BookmarkRepository) Create(ctx context.Context, bookmark *model.Bookmark) error {
	return classify("bookmark.Create", r.DB.WithContext(ctx).Create(bookmark).Error)
}

func (r *BookmarkRepository) FindByUser(ctx context.Context, userID string) ([]model.Bookmark, error) {
	bookmarks := make([]model.Bookmark, 0)
	err := r.DB.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("date ASC, conversation_id ASC").
		Find(&bookmarks).Error
	if err != nil {
		return nil, classify("bookmark.FindByUser", err)
	}
	return bookmarks, nil
}

// Delete removes every bookmark the user holds on the conversation.
func (r *BookmarkRepository) Delete(ctx context.Context, userID string, conversationID uint) error {
	result := r.DB.WithContext(ctx).
		Where("user_id = ? AND conversation_id = ?", userID, conversationID).
		Delete(&model.Bookmark{})
	if result.Error != nil {
		return classify("bookmark.Delete", result.Error)
	}
	if result.RowsAffected == 0 {
		return classify("bookmark.Delete", gorm.ErrRecordNotFound)
	}
	return nil
}
