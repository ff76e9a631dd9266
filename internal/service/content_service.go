package service

import (
	"context"
	"strconv"
	"time"

	"nurvo_backend/internal/model"
	"nurvo_backend/internal/repository"
	"nurvo_backend/pkg/logger"
	"nurvo_backend/pkg/tracing"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

type ContentService struct {
	ContentRepo *repository.ContentRepository
	EduRepo     *repository.EduRepository
	Cache       ContentCache
	TTL         time.Duration
}

// NewContentService builds the service. cache may be nil, in which case every
// read goes to the database.
func NewContentService(contentRepo *repository.ContentRepository, eduRepo *repository.EduRepository, cache ContentCache, ttl time.Duration) *ContentService {
	return &ContentService{
		ContentRepo: contentRepo,
		EduRepo:     eduRepo,
		Cache:       cache,
		TTL:         ttl,
	}
}

// Overview is what the lesson list screen needs in one call.
type Overview struct {
	Topics   []model.Topic       `json:"topics"`
	Chapters []model.Chapter     `json:"chapters"`
	Steps    []model.ChapterStep `json:"steps"`
}

// Overview loads topics, chapters and the user's progress concurrently.
func (s *ContentService) Overview(ctx context.Context, userID string) (ov *Overview, err error) {
	ctx, span := tracing.StartSpan(ctx, "ContentService.Overview", userID)
	defer func() { tracing.End(span, err) }()

	ov = &Overview{}
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		topics, err := s.Topics(gctx)
		ov.Topics = topics
		return err
	})
	g.Go(func() error {
		chapters, err := s.Chapters(gctx)
		ov.Chapters = chapters
		return err
	})
	g.Go(func() error {
		steps, err := s.EduRepo.FindChaptersWithStep(gctx, userID)
		ov.Steps = steps
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return ov, nil
}

func (s *ContentService) Topics(ctx context.Context) ([]model.Topic, error) {
	var topics []model.Topic
	err := s.cached(ctx, "topics", &topics, func() error {
		var err error
		topics, err = s.ContentRepo.FindTopics(ctx)
		return err
	})
	return topics, err
}

func (s *ContentService) Chapters(ctx context.Context) ([]model.Chapter, error) {
	var chapters []model.Chapter
	err := s.cached(ctx, "chapters", &chapters, func() error {
		var err error
		chapters, err = s.ContentRepo.FindChapters(ctx)
		return err
	})
	return chapters, err
}

// Dialogues returns the conversations of a chapter.
func (s *ContentService) Dialogues(ctx context.Context, chapterID uint) (conversations []model.Conversation, err error) {
	ctx, span := tracing.StartSpan(ctx, "ContentService.Dialogues", "")
	defer func() { tracing.End(span, err) }()

	key := "conversations:" + strconv.FormatUint(uint64(chapterID), 10)
	err = s.cached(ctx, key, &conversations, func() error {
		var err error
		conversations, err = s.ContentRepo.FindConversations(ctx, &chapterID)
		return err
	})
	return conversations, err
}

func (s *ContentService) Sentence(ctx context.Context, conversationID uint) (text string, err error) {
	ctx, span := tracing.StartSpan(ctx, "ContentService.Sentence", "")
	defer func() { tracing.End(span, err) }()

	return s.ContentRepo.FindDialogue(ctx, conversationID)
}

func (s *ContentService) SecondStep(ctx context.Context, conversationID uint) (text string, err error) {
	ctx, span := tracing.StartSpan(ctx, "ContentService.SecondStep", "")
	defer func() { tracing.End(span, err) }()

	return s.ContentRepo.FindSecondStep(ctx, conversationID)
}

// cached fills dest from the cache, or runs load and stores dest afterwards.
// Cache failures are logged and never fail the read.
// Invalidate drops the cached content so the next read goes to the database.
func (s *ContentService) Invalidate(ctx context.Context) error {
	if s.Cache == nil {
		return nil
	}
	return s.Cache.Clear(ctx)
}

func (s *ContentService) cached(ctx context.Context, key string, dest interface{}, load func() error) error {
	if s.Cache != nil {
		found, err := s.Cache.Get(ctx, key, dest)
		if err != nil {
			logger.Log.Warn("Content cache read failed", zap.String("key", key), zap.Error(err))
		} else if found {
			return nil
		}
	}

	if err := load(); err != nil {
		return err
	}

	if s.Cache != nil {
		if err := s.Cache.Set(ctx, key, dest, s.TTL); err != nil {
			logger.Log.Warn("Content cache write failed", zap.String("key", key), zap.Error(err))
		}
	}
	return nil
}
