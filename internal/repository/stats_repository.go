//go:generate mockery --name StatsRepository --output ./mocks --outpkg mocks --case=underscore
package repository

import (
	"context"
	"fmt"
	"time"

	"go_vocab_galaxy/internal/middleware"
	"go_vocab_galaxy/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type StatsRepository interface {
	Increment(ctx context.Context, db *gorm.DB, sourceLang, targetLang model.Lang, from model.ResolveSource) error
	FindAll(ctx context.Context, db *gorm.DB) ([]model.TranslationStats, error)
}

type gormStatsRepository struct{}

func NewGormStatsRepository() StatsRepository {
	return &gormStatsRepository{}
}

// Increment は (sourceLang, targetLang, from) の行を作成、または count を1増やします。
func (r *gormStatsRepository) Increment(ctx context.Context, db *gorm.DB, sourceLang, targetLang model.Lang, from model.ResolveSource) error {
	logger := middleware.GetLogger(ctx)
	now := time.Now()
	row := model.TranslationStats{
		ID:         uuid.New(),
		SourceLang: sourceLang,
		TargetLang: targetLang,
		From:       string(from),
		Count:      1,
		UpdatedAt:  now,
	}
	err := db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "source_lang"}, {Name: "target_lang"}, {Name: "from_source"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"count":      gorm.Expr("translation_stats.count + 1"),
			"updated_at": now,
		}),
	}).Create(&row).Error
	if err != nil {
		logger.Error("Error incrementing translation stats in DB", "error", err,
			"source_lang", sourceLang, "target_lang", targetLang, "from", from)
		return fmt.Errorf("gormStatsRepository.Increment: %w", err)
	}
	return nil
}

func (r *gormStatsRepository) FindAll(ctx context.Context, db *gorm.DB) ([]model.TranslationStats, error) {
	logger := middleware.GetLogger(ctx)
	var rows []model.TranslationStats
	if err := db.WithContext(ctx).Order("count DESC").Order("updated_at DESC").Find(&rows).Error; err != nil {
		logger.Error("Error listing translation stats in DB", "error", err)
		return nil, fmt.Errorf("gormStatsRepository.FindAll: %w", err)
	}
	return rows, nil
}
