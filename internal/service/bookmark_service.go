package service

import (
	"context"
	"fmt"
	"time"

	"nurvo_backend/internal/model"
	"nurvo_backend/internal/repository"
	"nurvo_backend/internal/util"
	"nurvo_backend/pkg/tracing"
)

type BookmarkService struct {
	BookmarkRepo *repository.BookmarkRepository
	Loc          *time.Location
	Now          func() time.Time
}

func NewBookmarkService(bookmarkRepo *repository.BookmarkRepository, loc *time.Location) *BookmarkService {
	return &BookmarkService{
		BookmarkRepo: bookmarkRepo,
		Loc:          loc,
		Now:          time.Now,
	}
}

func (s *BookmarkService) Save(ctx context.Context, userID string, conversationID uint) (bookmark *model.Bookmark, err error) {
	ctx, span := tracing.StartSpan(ctx, "BookmarkService.Save", userID)
	defer func() { tracing.End(span, err) }()

	if userID == "" {
		return nil, util.ErrUnauthorized
	}
	if conversationID == 0 {
		return nil, fmt.Errorf("%w: conversation_id is required", util.ErrInvalidInput)
	}

	bookmark = &model.Bookmark{
		UserID:         userID,
		ConversationID: conversationID,
		Date:           util.Today(s.Now(), s.Loc),
	}
	if err := s.BookmarkRepo.Create(ctx, bookmark); err != nil {
		return nil, err
	}
	return bookmark, nil
}

func (s *BookmarkService) List(ctx context.Context, userID string) (bookmarks []model.Bookmark, err error) {
	ctx, span := tracing.StartSpan(ctx, "BookmarkService.List", userID)
	defer func() { tracing.End(span, err) }()

	if userID == "" {
		return nil, util.ErrUnauthorized
	}
	return s.BookmarkRepo.FindByUser(ctx, userID)
}

func (s *BookmarkService) Delete(ctx context.Context, userID string, conversationID uint) (err error) {
	ctx, span := tracing.StartSpan(ctx, "BookmarkService.Delete", userID)
	defer func() { tracing.End(span, err) }()

	if userID == "" {
		return util.ErrUnauthorized
	}
	return s.BookmarkRepo.Delete(ctx, userID, conversationID)
}
