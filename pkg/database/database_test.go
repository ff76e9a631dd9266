package database

import (
	"path/filepath"
	"testing"

	"nurvo_backend/internal/config"
	"nurvo_backend/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDialector_UnsupportedDriver(t *testing.T) {
	_, err := Dialector(&config.DatabaseConfig{Driver: "oracle"})
	assert.Error(t, err)
}

func TestDialector_Names(t *testing.T) {
	for _, driver := range []string{"postgres", "mysql", "sqlite"} {
		d, err := Dialector(&config.DatabaseConfig{Driver: driver, Path: "x.db", Charset: "utf8mb4"})
		require.NoError(t, err)
		assert.Equal(t, driver, d.Name())
	}
}

func TestInitDB_SQLiteAndMigrate(t *testing.T) {
	cfg := &config.DatabaseConfig{
		Driver:       "sqlite",
		Path:         filepath.Join(t.TempDir(), "nurvo.db"),
		MaxOpenConns: 1,
		MaxIdleConns: 1,
	}

	db, err := InitDB(cfg, "release")
	require.NoError(t, err)
	defer Close(db)

	require.NoError(t, AutoMigrate(db))

	for _, m := range []interface{}{&model.User{}, &model.Topic{}, &model.Chapter{}, &model.Conversation{}, &model.Edu{}, &model.Bookmark{}, &model.Attendance{}} {
		assert.True(t, db.Migrator().HasTable(m))
	}
	assert.True(t, db.Migrator().HasIndex(&model.Edu{}, "idx_edu_user_chapter"))
}
