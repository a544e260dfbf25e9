//go:generate mockery --name UsageRepository --output ./mocks --outpkg mocks --case=underscore
package repository

import (
	"context"
	"fmt"
	"time"

	"go_vocab_galaxy/internal/middleware"
	"go_vocab_galaxy/internal/model"

	"gorm.io/gorm"
)

type UsageRepository interface {
	Append(ctx context.Context, db *gorm.DB, entry *model.UsageLogEntry) error
	// CountSince は since 以降の件数を返します。userID が空なら全ユーザー分。
	CountSince(ctx context.Context, db *gorm.DB, kind model.UsageKind, userID string, since time.Time) (int64, error)
	FindByMonth(ctx context.Context, db *gorm.DB, kind model.UsageKind, month string) ([]model.UsageLogEntry, error)
}

type gormUsageRepository struct{}

func NewGormUsageRepository() UsageRepository {
	return &gormUsageRepository{}
}

func (r *gormUsageRepository) Append(ctx context.Context, db *gorm.DB, entry *model.UsageLogEntry) error {
	logger := middleware.GetLogger(ctx)
	if entry.Month == "" {
		entry.Month = entry.CreatedAt.UTC().Format(model.UsageMonthLayout)
	}
	if err := db.WithContext(ctx).Create(entry).Error; err != nil {
		logger.Error("Error appending usage log in DB", "error", err, "kind", entry.Kind, "user_id", entry.UserID)
		return fmt.Errorf("gormUsageRepository.Append: %w", err)
	}
	return nil
}

func (r *gormUsageRepository) CountSince(ctx context.Context, db *gorm.DB, kind model.UsageKind, userID string, since time.Time) (int64, error) {
	logger := middleware.GetLogger(ctx)
	q := db.WithContext(ctx).Model(&model.UsageLogEntry{}).Where("kind = ? AND created_at >= ?", kind, since)
	if userID != "" {
		q = q.Where("user_id = ?", userID)
	}
	var count int64
	if err := q.Count(&count).Error; err != nil {
		logger.Error("Error counting usage logs in DB", "error", err, "kind", kind, "user_id", userID)
		return 0, fmt.Errorf("gormUsageRepository.CountSince: %w", err)
	}
	return count, nil
}

func (r *gormUsageRepository) FindByMonth(ctx context.Context, db *gorm.DB, kind model.UsageKind, month string) ([]model.UsageLogEntry, error) {
	logger := middleware.GetLogger(ctx)
	var entries []model.UsageLogEntry
	if err := db.WithContext(ctx).Where("kind = ? AND month = ?", kind, month).Order("created_at ASC").Find(&entries).Error; err != nil {
		logger.Error("Error finding usage logs by month in DB", "error", err, "month", month)
		return nil, fmt.Errorf("gormUsageRepository.FindByMonth: %w", err)
	}
	return entries, nil
}
