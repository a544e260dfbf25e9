package repository

import (
	"fmt"
	"testing"

	"go_vocab_galaxy/internal/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB はテストごとに独立したインメモリSQLiteを返します。
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err, "failed to open sqlite")

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(
		&model.LexiconEntry{},
		&model.Translation{},
		&model.Example{},
		&model.Grammar{},
		&model.TranslationStats{},
		&model.UsageLogEntry{},
		&model.MediaPlatform{},
		&model.MediaContent{},
	), "failed to migrate")
	return db
}

func ptr[T any](v T) *T { return &v }
