package repository

import (
	"path/filepath"
	"testing"

	"nurvo_backend/internal/model"
	"nurvo_backend/pkg/database"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "test.db")
	db, err := gorm.Open(sqlite.Open(dbPath), database.NewGormConfig(logger.Silent))
	require.NoError(t, err)
	require.NoError(t, database.AutoMigrate(db))

	t.Cleanup(func() {
		database.Close(db)
	})
	return db
}

func intPtr(v int) *int {
	return &v
}

func createTestUser(t *testing.T, db *gorm.DB, id string, obj *int) *model.User {
	t.Helper()
	user := &model.User{
		ID:          id,
		Name:        "Name " + id,
		Nickname:    id,
		PhoneNumber: "010-0000-0000",
		Password:    "hashed",
		Obj:         obj,
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

// seedContent creates one topic per name and n chapters spread over them in
// order, with ids 1..n.
func seedContent(t *testing.T, db *gorm.DB, topics []string, chapters int) {
	t.Helper()
	for i, name := range topics {
		require.NoError(t, db.Create(&model.Topic{ID: uint(i + 1), Name: name}).Error)
	}
	for i := 1; i <= chapters; i++ {
		topicID := uint((i-1)%len(topics) + 1)
		require.NoError(t, db.Create(&model.Chapter{ID: uint(i), Name: "Chapter " + string(rune('A'+i-1)), TopicID: topicID}).Error)
	}
}

func createEdu(t *testing.T, db *gorm.DB, userID string, chapterID uint, step int, date model.Date) {
	t.Helper()
	require.NoError(t, db.Create(&model.Edu{UserID: userID, ChapterID: chapterID, Step: step, Date: date}).Error)
}
