//go:generate mockery --name GrammarService --output ./mocks --outpkg mocks --case=underscore
package service

import (
	"context"
	"errors"

	"go_vocab_galaxy/internal/model"
	"go_vocab_galaxy/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type GrammarService interface {
	UpdateGrammar(ctx context.Context, userID string, lexiconID uuid.UUID, attrs model.GrammarAttrs) (*model.Grammar, error)
}

type grammarService struct {
	db          *gorm.DB
	lexRepo     repository.LexiconRepository
	grammarRepo repository.GrammarRepository
}

func NewGrammarService(db *gorm.DB, lexRepo repository.LexiconRepository, grammarRepo repository.GrammarRepository) GrammarService {
	return &grammarService{db: db, lexRepo: lexRepo, grammarRepo: grammarRepo}
}

// UpdateGrammar は入力を品詞ごとに厳格に検証し、単語の文法情報を置き換えます。
func (s *grammarService) UpdateGrammar(ctx context.Context, userID string, lexiconID uuid.UUID, attrs model.GrammarAttrs) (*model.Grammar, error) {
	data, err := model.DecodeGrammar(attrs)
	if err != nil {
		return nil, model.NewAppError("INVALID_GRAMMAR", err.Error(), "grammar", err)
	}
	// 品詞に属さない属性はここで落ちる
	normalized := data.Attrs()

	var saved *model.Grammar
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		entry, err := s.lexRepo.FindByID(ctx, tx, lexiconID)
		if err != nil {
			return err
		}
		if !entry.OwnedBy(userID) {
			return model.ErrUnauthorized
		}
		saved, err = s.grammarRepo.UpsertForLexicon(ctx, tx, lexiconID, normalized)
		return err
	})
	if err != nil {
		if errors.Is(err, model.ErrConflict) {
			return nil, model.NewAppError("GRAMMAR_CONFLICT", "文法情報が同時に更新されました。再試行してください。", "", err)
		}
		return nil, err
	}
	return saved, nil
}
