//go:generate mockery --name TranslationRepository --output ./mocks --outpkg mocks --case=underscore
package repository

import (
	"context"
	"errors"
	"fmt"

	"go_vocab_galaxy/internal/middleware"
	"go_vocab_galaxy/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type TranslationRepository interface {
	// FindCached はキャッシュ参照用。(source, sourceLang, targetLang) で最も古い行を返します。
	FindCached(ctx context.Context, db *gorm.DB, source string, sourceLang, targetLang model.Lang) (*model.Translation, error)
	FindByKey(ctx context.Context, db *gorm.DB, key model.TranslationKey) (*model.Translation, error)
	FindByID(ctx context.Context, db *gorm.DB, id uuid.UUID) (*model.Translation, error)
	Create(ctx context.Context, db *gorm.DB, t *model.Translation) error
	UpdateTarget(ctx context.Context, db *gorm.DB, id uuid.UUID, target string) error
	// LinkLexicon は未紐付けの行だけを単語へ紐付けます。紐付けた場合 true を返します。
	LinkLexicon(ctx context.Context, db *gorm.DB, id, lexiconID uuid.UUID) (bool, error)
	ReplaceExamples(ctx context.Context, tx *gorm.DB, id uuid.UUID, sentences []string) ([]model.Example, error)
	DeleteByLexicon(ctx context.Context, tx *gorm.DB, lexiconID uuid.UUID) error
}

type gormTranslationRepository struct{}

func NewGormTranslationRepository() TranslationRepository {
	return &gormTranslationRepository{}
}

func (r *gormTranslationRepository) FindCached(ctx context.Context, db *gorm.DB, source string, sourceLang, targetLang model.Lang) (*model.Translation, error) {
	logger := middleware.GetLogger(ctx)
	var t model.Translation
	err := db.WithContext(ctx).
		Preload("Grammar").
		Where("source = ? AND source_lang = ? AND target_lang = ?", source, sourceLang, targetLang).
		Order("created_at ASC").
		First(&t).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		logger.Error("Error finding cached translation in DB", "error", err, "source", source,
			"source_lang", sourceLang, "target_lang", targetLang)
		return nil, fmt.Errorf("gormTranslationRepository.FindCached: %w", err)
	}
	return &t, nil
}

func (r *gormTranslationRepository) FindByKey(ctx context.Context, db *gorm.DB, key model.TranslationKey) (*model.Translation, error) {
	logger := middleware.GetLogger(ctx)
	var t model.Translation
	err := db.WithContext(ctx).
		Where("source = ? AND target = ? AND source_lang = ? AND target_lang = ?",
			key.Source, key.Target, key.SourceLang, key.TargetLang).
		First(&t).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		logger.Error("Error finding translation by key in DB", "error", err, "source", key.Source, "target", key.Target)
		return nil, fmt.Errorf("gormTranslationRepository.FindByKey: %w", err)
	}
	return &t, nil
}

func (r *gormTranslationRepository) FindByID(ctx context.Context, db *gorm.DB, id uuid.UUID) (*model.Translation, error) {
	logger := middleware.GetLogger(ctx)
	var t model.Translation
	err := db.WithContext(ctx).
		Preload("Examples", func(db *gorm.DB) *gorm.DB { return db.Order("position ASC") }).
		Preload("Grammar").
		Where("id = ?", id).
		First(&t).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		logger.Error("Error finding translation by ID in DB", "error", err, "translation_id", id.String())
		return nil, fmt.Errorf("gormTranslationRepository.FindByID: %w", err)
	}
	return &t, nil
}

// Create は一意制約違反を model.ErrConflict として返します。
// PostgreSQL ではトランザクションが中断されるため、競合後の再読込はトランザクション外で行うこと。
func (r *gormTranslationRepository) Create(ctx context.Context, db *gorm.DB, t *model.Translation) error {
	logger := middleware.GetLogger(ctx)
	if err := db.WithContext(ctx).Omit("Examples", "Grammar").Create(t).Error; err != nil {
		if isUniqueViolation(err) {
			logger.Info("Translation already exists", "source", t.Source, "target", t.Target,
				"source_lang", t.SourceLang, "target_lang", t.TargetLang)
			return fmt.Errorf("gormTranslationRepository.Create: %w", model.ErrConflict)
		}
		logger.Error("Error creating translation in DB", "error", err, "source", t.Source, "target", t.Target)
		return fmt.Errorf("gormTranslationRepository.Create: %w", err)
	}
	return nil
}

func (r *gormTranslationRepository) UpdateTarget(ctx context.Context, db *gorm.DB, id uuid.UUID, target string) error {
	logger := middleware.GetLogger(ctx)
	result := db.WithContext(ctx).Model(&model.Translation{}).Where("id = ?", id).Update("target", target)
	if result.Error != nil {
		if isUniqueViolation(result.Error) {
			return fmt.Errorf("gormTranslationRepository.UpdateTarget: %w", model.ErrConflict)
		}
		logger.Error("Error updating translation in DB", "error", result.Error, "translation_id", id.String())
		return fmt.Errorf("gormTranslationRepository.UpdateTarget: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return model.ErrNotFound
	}
	return nil
}

func (r *gormTranslationRepository) LinkLexicon(ctx context.Context, db *gorm.DB, id, lexiconID uuid.UUID) (bool, error) {
	logger := middleware.GetLogger(ctx)
	result := db.WithContext(ctx).Model(&model.Translation{}).
		Where("id = ? AND lexicon_id IS NULL", id).
		Update("lexicon_id", lexiconID)
	if result.Error != nil {
		logger.Error("Error linking translation in DB", "error", result.Error, "translation_id", id.String(), "lexicon_id", lexiconID.String())
		return false, fmt.Errorf("gormTranslationRepository.LinkLexicon: %w", result.Error)
	}
	return result.RowsAffected > 0, nil
}

func (r *gormTranslationRepository) ReplaceExamples(ctx context.Context, tx *gorm.DB, id uuid.UUID, sentences []string) ([]model.Example, error) {
	logger := middleware.GetLogger(ctx)
	if err := tx.WithContext(ctx).Where("translation_id = ?", id).Delete(&model.Example{}).Error; err != nil {
		logger.Error("Error deleting examples in DB", "error", err, "translation_id", id.String())
		return nil, fmt.Errorf("gormTranslationRepository.ReplaceExamples: %w", err)
	}

	examples := make([]model.Example, 0, len(sentences))
	for i, s := range sentences {
		examples = append(examples, model.Example{
			ID:            uuid.New(),
			TranslationID: id,
			Sentence:      s,
			Position:      i,
		})
	}
	if len(examples) == 0 {
		return examples, nil
	}
	if err := tx.WithContext(ctx).Create(&examples).Error; err != nil {
		logger.Error("Error creating examples in DB", "error", err, "translation_id", id.String())
		return nil, fmt.Errorf("gormTranslationRepository.ReplaceExamples: %w", err)
	}
	return examples, nil
}

// DeleteByLexicon は単語に紐づく訳語を例文・文法ごと削除します。
func (r *gormTranslationRepository) DeleteByLexicon(ctx context.Context, tx *gorm.DB, lexiconID uuid.UUID) error {
	logger := middleware.GetLogger(ctx)
	ids := func() *gorm.DB {
		return tx.Model(&model.Translation{}).Select("id").Where("lexicon_id = ?", lexiconID)
	}

	if err := tx.WithContext(ctx).Where("translation_id IN (?)", ids()).Delete(&model.Example{}).Error; err != nil {
		logger.Error("Error deleting examples by lexicon in DB", "error", err, "lexicon_id", lexiconID.String())
		return fmt.Errorf("gormTranslationRepository.DeleteByLexicon: %w", err)
	}
	if err := tx.WithContext(ctx).Where("translation_id IN (?)", ids()).Delete(&model.Grammar{}).Error; err != nil {
		logger.Error("Error deleting translation grammar by lexicon in DB", "error", err, "lexicon_id", lexiconID.String())
		return fmt.Errorf("gormTranslationRepository.DeleteByLexicon: %w", err)
	}
	if err := tx.WithContext(ctx).Where("lexicon_id = ?", lexiconID).Delete(&model.Translation{}).Error; err != nil {
		logger.Error("Error deleting translations by lexicon in DB", "error", err, "lexicon_id", lexiconID.String())
		return fmt.Errorf("gormTranslationRepository.DeleteByLexicon: %w", err)
	}
	return nil
}
