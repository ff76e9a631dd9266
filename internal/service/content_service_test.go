package service

import (
	"context"
	"testing"

	"nurvo_backend/internal/model"
	"nurvo_backend/internal/repository"
	"nurvo_backend/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newContentService(db *gorm.DB, cache ContentCache) *ContentService {
	return NewContentService(repository.NewContentRepository(db), repository.NewEduRepository(db), cache, 0)
}

func TestContentService_Overview(t *testing.T) {
	db := setupTestDB(t)
	seedChapters(t, db, 3)
	require.NoError(t, db.Create(&model.Edu{UserID: "u1", ChapterID: 2, Step: 1, Date: model.NewDate(2024, 5, 1)}).Error)

	svc := newContentService(db, nil)
	ov, err := svc.Overview(context.Background(), "u1")
	require.NoError(t, err)
	assert.Len(t, ov.Topics, 1)
	assert.Len(t, ov.Chapters, 3)
	require.Len(t, ov.Steps, 1)
	assert.Equal(t, uint(2), ov.Steps[0].ID)

	ov, err = svc.Overview(context.Background(), "someone-else")
	require.NoError(t, err)
	assert.Empty(t, ov.Steps)
}

func TestContentService_ReadsThroughCache(t *testing.T) {
	db := setupTestDB(t)
	seedChapters(t, db, 2)
	cache := newMemoryCache()
	svc := newContentService(db, cache)
	ctx := context.Background()

	topics, err := svc.Topics(ctx)
	require.NoError(t, err)
	require.Len(t, topics, 1)
	assert.Equal(t, 1, cache.sets)

	require.NoError(t, db.Exec("DELETE FROM topic").Error)

	topics, err = svc.Topics(ctx)
	require.NoError(t, err)
	require.Len(t, topics, 1)
	assert.Equal(t, "Admission", topics[0].Name)
	assert.Equal(t, 1, cache.sets)
}

func TestContentService_InvalidateAfterContentChange(t *testing.T) {
	db := setupTestDB(t)
	seedChapters(t, db, 2)
	cache := newMemoryCache()
	svc := newContentService(db, cache)
	ctx := context.Background()

	_, err := svc.Topics(ctx)
	require.NoError(t, err)
	require.NoError(t, db.Create(&model.Topic{ID: 2, Name: "Discharge"}).Error)

	topics, err := svc.Topics(ctx)
	require.NoError(t, err)
	assert.Len(t, topics, 1)

	require.NoError(t, svc.Invalidate(ctx))

	topics, err = svc.Topics(ctx)
	require.NoError(t, err)
	assert.Len(t, topics, 2)
	assert.Equal(t, 2, cache.sets)
}

func TestContentService_InvalidateWithoutCache(t *testing.T) {
	svc := newContentService(setupTestDB(t), nil)
	assert.NoError(t, svc.Invalidate(context.Background()))
}

func TestContentService_Dialogues(t *testing.T) {
	db := setupTestDB(t)
	seedChapters(t, db, 2)
	require.NoError(t, db.Create(&model.Conversation{ID: 1, ChapterID: 1, Dialogue: "How are you feeling?", SecondStep: "How are you ____?"}).Error)
	require.NoError(t, db.Create(&model.Conversation{ID: 2, ChapterID: 2, Dialogue: "Any allergies?", SecondStep: "Any ____?"}).Error)

	cache := newMemoryCache()
	svc := newContentService(db, cache)
	ctx := context.Background()

	convs, err := svc.Dialogues(ctx, 1)
	require.NoError(t, err)
	require.Len(t, convs, 1)
	assert.Equal(t, uint(1), convs[0].ID)

	convs, err = svc.Dialogues(ctx, 2)
	require.NoError(t, err)
	require.Len(t, convs, 1)
	assert.Equal(t, uint(2), convs[0].ID)

	text, err := svc.Sentence(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, "Any allergies?", text)

	text, err = svc.SecondStep(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "How are you ____?", text)

	_, err = svc.Sentence(ctx, 42)
	assert.ErrorIs(t, err, util.ErrNotFound)
}
