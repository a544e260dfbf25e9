//go:generate mockery --name GrammarRepository --output ./mocks --outpkg mocks --case=underscore
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

type GrammarRepository interface {
	FindByLexicon(ctx context.Context, db *gorm.DB, lexiconID uuid.UUID) (*model.Grammar, error)
	UpsertForLexicon(ctx context.Context, tx *gorm.DB, lexiconID uuid.UUID, attrs model.GrammarAttrs) (*model.Grammar, error)
	CreateForTranslation(ctx context.Context, db *gorm.DB, translationID uuid.UUID, attrs model.GrammarAttrs) error
	DeleteByLexicon(ctx context.Context, tx *gorm.DB, lexiconID uuid.UUID) error
}

type gormGrammarRepository struct{}

func NewGormGrammarRepository() GrammarRepository {
	return &gormGrammarRepository{}
}

func (r *gormGrammarRepository) FindByLexicon(ctx context.Context, db *gorm.DB, lexiconID uuid.UUID) (*model.Grammar, error) {
	logger := middleware.GetLogger(ctx)
	var g model.Grammar
	if err := db.WithContext(ctx).Where("lexicon_id = ?", lexiconID).First(&g).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		logger.Error("Error finding grammar by lexicon in DB", "error", err, "lexicon_id", lexiconID.String())
		return nil, fmt.Errorf("gormGrammarRepository.FindByLexicon: %w", err)
	}
	return &g, nil
}

// UpsertForLexicon は単語の文法情報を丸ごと置き換えます。未指定の属性は NULL になります。
func (r *gormGrammarRepository) UpsertForLexicon(ctx context.Context, tx *gorm.DB, lexiconID uuid.UUID, attrs model.GrammarAttrs) (*model.Grammar, error) {
	logger := middleware.GetLogger(ctx)

	g, err := r.FindByLexicon(ctx, tx, lexiconID)
	switch {
	case errors.Is(err, model.ErrNotFound):
		g = &model.Grammar{ID: uuid.New(), LexiconID: &lexiconID, GrammarAttrs: attrs}
		if err := tx.WithContext(ctx).Create(g).Error; err != nil {
			logger.Error("Error creating grammar in DB", "error", err, "lexicon_id", lexiconID.String())
			return nil, fmt.Errorf("gormGrammarRepository.UpsertForLexicon: %w", err)
		}
		return g, nil
	case err != nil:
		return nil, err
	}

	g.GrammarAttrs = attrs
	// Save は nil のフィールドも含めて全カラムを更新する
	if err := tx.WithContext(ctx).Save(g).Error; err != nil {
		logger.Error("Error updating grammar in DB", "error", err, "lexicon_id", lexiconID.String())
		return nil, fmt.Errorf("gormGrammarRepository.UpsertForLexicon: %w", err)
	}
	return g, nil
}

func (r *gormGrammarRepository) CreateForTranslation(ctx context.Context, db *gorm.DB, translationID uuid.UUID, attrs model.GrammarAttrs) error {
	logger := middleware.GetLogger(ctx)
	g := &model.Grammar{ID: uuid.New(), TranslationID: &translationID, GrammarAttrs: attrs}
	if err := db.WithContext(ctx).Create(g).Error; err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("gormGrammarRepository.CreateForTranslation: %w", model.ErrConflict)
		}
		logger.Error("Error creating translation grammar in DB", "error", err, "translation_id", translationID.String())
		return fmt.Errorf("gormGrammarRepository.CreateForTranslation: %w", err)
	}
	return nil
}

func (r *gormGrammarRepository) DeleteByLexicon(ctx context.Context, tx *gorm.DB, lexiconID uuid.UUID) error {
	logger := middleware.GetLogger(ctx)
	if err := tx.WithContext(ctx).Where("lexicon_id = ?", lexiconID).Delete(&model.Grammar{}).Error; err != nil {
		logger.Error("Error deleting grammar by lexicon in DB", "error", err, "lexicon_id", lexiconID.String())
		return fmt.Errorf("gormGrammarRepository.DeleteByLexicon: %w", err)
	}
	return nil
}
