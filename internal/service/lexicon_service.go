//go:generate mockery --name LexiconService --output ./mocks --outpkg mocks --case=underscore
package service

import (
	"context"
	"strings"

	"go_vocab_galaxy/internal/middleware"
	"go_vocab_galaxy/internal/model"
	"go_vocab_galaxy/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type LexiconService interface {
	AddOne(ctx context.Context, userID string, req *model.CreateLexiconRequest) (*model.LexiconEntry, error)
	AddMany(ctx context.Context, userID string, reqs []model.CreateLexiconRequest) ([]*model.LexiconEntry, error)
	ListByGalaxyAndSubtopic(ctx context.Context, userID, galaxy, subtopic string) ([]*model.LexiconEntry, error)
	UpdateStatus(ctx context.Context, userID string, id uuid.UUID, status *model.ReviewStatus) (*model.LexiconEntry, error)
	UpdateRevealed(ctx context.Context, userID string, id uuid.UUID, revealed bool) (*model.LexiconEntry, error)
	UpdatePostponed(ctx context.Context, userID string, id uuid.UUID, postponed bool) (*model.LexiconEntry, error)
	MarkAsTranslated(ctx context.Context, userID string, id uuid.UUID) error
	Delete(ctx context.Context, userID string, id uuid.UUID) error
	CountLearned(ctx context.Context, userID string) (int64, error)
}

type lexiconService struct {
	db          *gorm.DB
	lexRepo     repository.LexiconRepository
	transRepo   repository.TranslationRepository
	grammarRepo repository.GrammarRepository
}

func NewLexiconService(db *gorm.DB, lexRepo repository.LexiconRepository, transRepo repository.TranslationRepository, grammarRepo repository.GrammarRepository) LexiconService {
	return &lexiconService{
		db:          db,
		lexRepo:     lexRepo,
		transRepo:   transRepo,
		grammarRepo: grammarRepo,
	}
}

func newLexiconEntry(userID string, req *model.CreateLexiconRequest) (*model.LexiconEntry, error) {
	word := strings.TrimSpace(req.Word)
	if word == "" || req.Galaxy == "" || req.Subtopic == "" {
		return nil, model.ErrInvalidInput
	}
	entryType := req.Type
	if entryType == "" {
		entryType = model.EntryTypeWord
	}
	entry := &model.LexiconEntry{
		ID:         uuid.New(),
		Word:       word,
		Type:       entryType,
		Galaxy:     req.Galaxy,
		Subtopic:   req.Subtopic,
		Translated: false,
		Season:     req.Season,
		Episode:    req.Episode,
		Timestamp:  req.Timestamp,
	}
	if userID != "" {
		entry.UserID = &userID
	}
	return entry, nil
}

func (s *lexiconService) AddOne(ctx context.Context, userID string, req *model.CreateLexiconRequest) (*model.LexiconEntry, error) {
	entry, err := newLexiconEntry(userID, req)
	if err != nil {
		return nil, err
	}
	if err := s.lexRepo.Create(ctx, s.db, entry); err != nil {
		return nil, err
	}
	return entry, nil
}

// AddMany は全件を1トランザクションで作成します。1件でも不正なら何も作りません。
func (s *lexiconService) AddMany(ctx context.Context, userID string, reqs []model.CreateLexiconRequest) ([]*model.LexiconEntry, error) {
	if len(reqs) == 0 {
		return nil, model.ErrInvalidInput
	}
	entries := make([]*model.LexiconEntry, 0, len(reqs))
	for i := range reqs {
		entry, err := newLexiconEntry(userID, &reqs[i])
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return s.lexRepo.CreateBatch(ctx, tx, entries)
	})
	if err != nil {
		return nil, err
	}
	return entries, nil
}

// ListByGalaxyAndSubtopic は保存済みの文法情報を検証し直してから返します。
func (s *lexiconService) ListByGalaxyAndSubtopic(ctx context.Context, userID, galaxy, subtopic string) ([]*model.LexiconEntry, error) {
	entries, err := s.lexRepo.ListByTopic(ctx, s.db, userID, galaxy, subtopic)
	if err != nil {
		return nil, err
	}
	for _, e := range entries {
		e.Grammar = sanitizeGrammarRow(e.Grammar)
		for i := range e.Translations {
			e.Translations[i].Grammar = sanitizeGrammarRow(e.Translations[i].Grammar)
		}
	}
	return entries, nil
}

// sanitizeGrammarRow は品詞が不明なら nil、不正な列挙値は落とした行を返します。
func sanitizeGrammarRow(g *model.Grammar) *model.Grammar {
	attrs := g.Sanitized()
	if attrs == nil {
		return nil
	}
	out := *g
	out.GrammarAttrs = *attrs
	return &out
}

func (s *lexiconService) UpdateStatus(ctx context.Context, userID string, id uuid.UUID, status *model.ReviewStatus) (*model.LexiconEntry, error) {
	entry, err := s.update(ctx, userID, id, map[string]interface{}{"status": status})
	if err != nil {
		return nil, err
	}
	entry.Status = status
	return entry, nil
}

func (s *lexiconService) UpdateRevealed(ctx context.Context, userID string, id uuid.UUID, revealed bool) (*model.LexiconEntry, error) {
	entry, err := s.update(ctx, userID, id, map[string]interface{}{"revealed": revealed})
	if err != nil {
		return nil, err
	}
	entry.Revealed = revealed
	return entry, nil
}

func (s *lexiconService) UpdatePostponed(ctx context.Context, userID string, id uuid.UUID, postponed bool) (*model.LexiconEntry, error) {
	entry, err := s.update(ctx, userID, id, map[string]interface{}{"postponed": postponed})
	if err != nil {
		return nil, err
	}
	entry.Postponed = postponed
	return entry, nil
}

func (s *lexiconService) MarkAsTranslated(ctx context.Context, userID string, id uuid.UUID) error {
	_, err := s.update(ctx, userID, id, map[string]interface{}{"translated": true})
	return err
}

func (s *lexiconService) update(ctx context.Context, userID string, id uuid.UUID, updates map[string]interface{}) (*model.LexiconEntry, error) {
	entry, err := s.lexRepo.FindByID(ctx, s.db, id)
	if err != nil {
		return nil, err
	}
	if !entry.OwnedBy(userID) {
		return nil, model.ErrUnauthorized
	}
	if err := s.lexRepo.Update(ctx, s.db, id, updates); err != nil {
		return nil, err
	}
	return entry, nil
}

// Delete は所有者を確認してから、例文・訳の文法・訳・単語の文法・単語の順に削除します。
func (s *lexiconService) Delete(ctx context.Context, userID string, id uuid.UUID) error {
	logger := middleware.GetLogger(ctx)

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		entry, err := s.lexRepo.FindByID(ctx, tx, id)
		if err != nil {
			return err
		}
		if !entry.OwnedBy(userID) {
			logger.Warn("Delete rejected: owner mismatch", "lexicon_id", id.String(), "user_id", userID)
			return model.ErrUnauthorized
		}

		if err := s.transRepo.DeleteByLexicon(ctx, tx, id); err != nil {
			return err
		}
		if err := s.grammarRepo.DeleteByLexicon(ctx, tx, id); err != nil {
			return err
		}
		return s.lexRepo.Delete(ctx, tx, id)
	})
}

func (s *lexiconService) CountLearned(ctx context.Context, userID string) (int64, error) {
	return s.lexRepo.CountLearned(ctx, s.db, userID)
}
