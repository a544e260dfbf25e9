//go:generate mockery --name LexiconRepository --output ./mocks --outpkg mocks --case=underscore
package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go_vocab_galaxy/internal/middleware"
	"go_vocab_galaxy/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type LexiconRepository interface {
	Create(ctx context.Context, tx *gorm.DB, entry *model.LexiconEntry) error
	CreateBatch(ctx context.Context, tx *gorm.DB, entries []*model.LexiconEntry) error
	FindByID(ctx context.Context, db *gorm.DB, id uuid.UUID) (*model.LexiconEntry, error)
	FindByWord(ctx context.Context, db *gorm.DB, word, userID string) (*model.LexiconEntry, error)
	ListByTopic(ctx context.Context, db *gorm.DB, userID, galaxy, subtopic string) ([]*model.LexiconEntry, error)
	Update(ctx context.Context, tx *gorm.DB, id uuid.UUID, updates map[string]interface{}) error
	Delete(ctx context.Context, tx *gorm.DB, id uuid.UUID) error
	CountLearned(ctx context.Context, db *gorm.DB, userID string) (int64, error)
}

type gormLexiconRepository struct{}

func NewGormLexiconRepository() LexiconRepository {
	return &gormLexiconRepository{}
}

func (r *gormLexiconRepository) Create(ctx context.Context, tx *gorm.DB, entry *model.LexiconEntry) error {
	logger := middleware.GetLogger(ctx)
	if err := tx.WithContext(ctx).Omit("Grammar", "Translations").Create(entry).Error; err != nil {
		logger.Error("Error creating lexicon entry in DB", "error", err, "word", entry.Word)
		return fmt.Errorf("gormLexiconRepository.Create: %w", err)
	}
	return nil
}

func (r *gormLexiconRepository) CreateBatch(ctx context.Context, tx *gorm.DB, entries []*model.LexiconEntry) error {
	logger := middleware.GetLogger(ctx)
	if len(entries) == 0 {
		return nil
	}
	if err := tx.WithContext(ctx).Omit("Grammar", "Translations").CreateInBatches(entries, 100).Error; err != nil {
		logger.Error("Error creating lexicon entries in DB", "error", err, "count", len(entries))
		return fmt.Errorf("gormLexiconRepository.CreateBatch: %w", err)
	}
	return nil
}

func (r *gormLexiconRepository) FindByID(ctx context.Context, db *gorm.DB, id uuid.UUID) (*model.LexiconEntry, error) {
	logger := middleware.GetLogger(ctx)
	var entry model.LexiconEntry
	result := db.WithContext(ctx).Where("id = ?", id).First(&entry)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		logger.Error("Error finding lexicon entry by ID in DB", "error", result.Error, "lexicon_id", id.String())
		return nil, fmt.Errorf("gormLexiconRepository.FindByID: %w", result.Error)
	}
	return &entry, nil
}

// FindByWord は大文字小文字を無視した一致で最も古いエントリを返します。userID があればその所有分に限定。
func (r *gormLexiconRepository) FindByWord(ctx context.Context, db *gorm.DB, word, userID string) (*model.LexiconEntry, error) {
	logger := middleware.GetLogger(ctx)
	q := db.WithContext(ctx).Where("LOWER(word) = ?", strings.ToLower(strings.TrimSpace(word)))
	if userID != "" {
		q = q.Where("user_id = ?", userID)
	}
	var entry model.LexiconEntry
	if err := q.Order("created_at ASC").First(&entry).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		logger.Error("Error finding lexicon entry by word in DB", "error", err, "word", word)
		return nil, fmt.Errorf("gormLexiconRepository.FindByWord: %w", err)
	}
	return &entry, nil
}

func (r *gormLexiconRepository) ListByTopic(ctx context.Context, db *gorm.DB, userID, galaxy, subtopic string) ([]*model.LexiconEntry, error) {
	logger := middleware.GetLogger(ctx)
	q := db.WithContext(ctx).
		Preload("Grammar").
		Preload("Translations", func(db *gorm.DB) *gorm.DB { return db.Order("created_at ASC") }).
		Preload("Translations.Examples", func(db *gorm.DB) *gorm.DB { return db.Order("position ASC") }).
		Preload("Translations.Grammar").
		Where("galaxy = ? AND subtopic = ?", galaxy, subtopic)
	if userID != "" {
		q = q.Where("user_id = ?", userID)
	}

	var entries []*model.LexiconEntry
	if err := q.Order("created_at ASC").Find(&entries).Error; err != nil {
		logger.Error("Error listing lexicon entries in DB", "error", err, "galaxy", galaxy, "subtopic", subtopic)
		return nil, fmt.Errorf("gormLexiconRepository.ListByTopic: %w", err)
	}
	return entries, nil
}

func (r *gormLexiconRepository) Update(ctx context.Context, tx *gorm.DB, id uuid.UUID, updates map[string]interface{}) error {
	logger := middleware.GetLogger(ctx)
	result := tx.WithContext(ctx).Model(&model.LexiconEntry{}).Where("id = ?", id).Updates(updates)
	if result.Error != nil {
		logger.Error("Error updating lexicon entry in DB", "error", result.Error, "lexicon_id", id.String())
		return fmt.Errorf("gormLexiconRepository.Update: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return model.ErrNotFound
	}
	return nil
}

func (r *gormLexiconRepository) Delete(ctx context.Context, tx *gorm.DB, id uuid.UUID) error {
	logger := middleware.GetLogger(ctx)
	result := tx.WithContext(ctx).Where("id = ?", id).Delete(&model.LexiconEntry{})
	if result.Error != nil {
		logger.Error("Error deleting lexicon entry in DB", "error", result.Error, "lexicon_id", id.String())
		return fmt.Errorf("gormLexiconRepository.Delete: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return model.ErrNotFound
	}
	return nil
}

func (r *gormLexiconRepository) CountLearned(ctx context.Context, db *gorm.DB, userID string) (int64, error) {
	logger := middleware.GetLogger(ctx)
	var count int64
	q := db.WithContext(ctx).Model(&model.LexiconEntry{}).Where("status = ?", model.StatusLearned)
	if userID != "" {
		q = q.Where("user_id = ?", userID)
	}
	if err := q.Count(&count).Error; err != nil {
		logger.Error("Error counting learned entries in DB", "error", err)
		return 0, fmt.Errorf("gormLexiconRepository.CountLearned: %w", err)
	}
	return count, nil
}
