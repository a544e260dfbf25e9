package repository

import (
	"context"
	"testing"
	"time"

	"go_vocab_galaxy/internal/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

type LexiconRepositorySuite struct {
	suite.Suite
	db      *gorm.DB
	ctx     context.Context
	repo    LexiconRepository
	grammar GrammarRepository
}

func TestLexiconRepositorySuite(t *testing.T) {
	suite.Run(t, new(LexiconRepositorySuite))
}

func (s *LexiconRepositorySuite) SetupTest() {
	s.db = newTestDB(s.T())
	s.ctx = context.Background()
	s.repo = NewGormLexiconRepository()
	s.grammar = NewGormGrammarRepository()
}

func (s *LexiconRepositorySuite) create(userID *string, word string, createdAt time.Time) *model.LexiconEntry {
	e := &model.LexiconEntry{
		ID: uuid.New(), UserID: userID, Word: word, Type: model.EntryTypeWord,
		Galaxy: "animals", Subtopic: "pets", CreatedAt: createdAt,
	}
	s.Require().NoError(s.repo.Create(s.ctx, s.db, e))
	return e
}

func (s *LexiconRepositorySuite) TestFindByWordIgnoresCaseAndPrefersOldest() {
	now := time.Now()
	newer := s.create(ptr("user-1"), "Chat", now)
	older := s.create(ptr("user-1"), "chat", now.Add(-time.Hour))
	other := s.create(ptr("user-2"), "CHAT", now.Add(-2*time.Hour))

	got, err := s.repo.FindByWord(s.ctx, s.db, " CHAT ", "user-1")
	s.Require().NoError(err)
	s.Equal(older.ID, got.ID)
	s.NotEqual(newer.ID, got.ID)

	// 利用者指定なしなら全体で最古
	got, err = s.repo.FindByWord(s.ctx, s.db, "chat", "")
	s.Require().NoError(err)
	s.Equal(other.ID, got.ID)

	_, err = s.repo.FindByWord(s.ctx, s.db, "chien", "user-1")
	s.ErrorIs(err, model.ErrNotFound)
}

func (s *LexiconRepositorySuite) TestListByTopicPreloads() {
	e := s.create(ptr("user-1"), "chat", time.Now())
	s.create(ptr("user-2"), "chien", time.Now())

	tr := model.Translation{ID: uuid.New(), LexiconID: &e.ID, Source: "chat", Target: "cat", SourceLang: model.LangFR, TargetLang: model.LangEN, Meaning: model.ProvenanceManual}
	s.Require().NoError(s.db.Omit("Examples", "Grammar").Create(&tr).Error)
	s.Require().NoError(s.db.Create(&model.Example{ID: uuid.New(), TranslationID: tr.ID, Sentence: "Le chat.", Position: 0}).Error)
	_, err := s.grammar.UpsertForLexicon(s.ctx, s.db, e.ID, model.GrammarAttrs{PartOfSpeech: "noun", Gender: ptr("masculine")})
	s.Require().NoError(err)

	list, err := s.repo.ListByTopic(s.ctx, s.db, "user-1", "animals", "pets")
	s.Require().NoError(err)
	s.Require().Len(list, 1)
	s.Require().NotNil(list[0].Grammar)
	s.Equal("noun", list[0].Grammar.PartOfSpeech)
	s.Require().Len(list[0].Translations, 1)
	s.Require().Len(list[0].Translations[0].Examples, 1)
	s.Equal("Le chat.", list[0].Translations[0].Examples[0].Sentence)

	all, err := s.repo.ListByTopic(s.ctx, s.db, "", "animals", "pets")
	s.Require().NoError(err)
	s.Len(all, 2)
}

func (s *LexiconRepositorySuite) TestUpdateDeleteCount() {
	e := s.create(ptr("user-1"), "chat", time.Now())

	s.Require().NoError(s.repo.Update(s.ctx, s.db, e.ID, map[string]interface{}{"status": model.StatusLearned}))
	s.ErrorIs(s.repo.Update(s.ctx, s.db, uuid.New(), map[string]interface{}{"revealed": true}), model.ErrNotFound)

	n, err := s.repo.CountLearned(s.ctx, s.db, "user-1")
	s.Require().NoError(err)
	s.Equal(int64(1), n)
	n, err = s.repo.CountLearned(s.ctx, s.db, "user-2")
	s.Require().NoError(err)
	s.Zero(n)

	s.Require().NoError(s.repo.Delete(s.ctx, s.db, e.ID))
	s.ErrorIs(s.repo.Delete(s.ctx, s.db, e.ID), model.ErrNotFound)
}

func (s *LexiconRepositorySuite) TestGrammarUpsertClearsOmittedAttrs() {
	e := s.create(nil, "manger", time.Now())

	g1, err := s.grammar.UpsertForLexicon(s.ctx, s.db, e.ID, model.GrammarAttrs{PartOfSpeech: "verb", Transitivity: ptr("transitive")})
	s.Require().NoError(err)
	g2, err := s.grammar.UpsertForLexicon(s.ctx, s.db, e.ID, model.GrammarAttrs{PartOfSpeech: "verb", IsIrregular: ptr(true)})
	s.Require().NoError(err)
	s.Equal(g1.ID, g2.ID)

	got, err := s.grammar.FindByLexicon(s.ctx, s.db, e.ID)
	s.Require().NoError(err)
	s.Nil(got.Transitivity)
	s.Require().NotNil(got.IsIrregular)
	s.True(*got.IsIrregular)

	s.Require().NoError(s.grammar.DeleteByLexicon(s.ctx, s.db, e.ID))
	_, err = s.grammar.FindByLexicon(s.ctx, s.db, e.ID)
	s.ErrorIs(err, model.ErrNotFound)
}

func (s *LexiconRepositorySuite) TestCreateForTranslationIsUnique() {
	tr := model.Translation{ID: uuid.New(), Source: "vite", Target: "fast", SourceLang: model.LangFR, TargetLang: model.LangEN, Meaning: model.ProvenanceWiktionary}
	s.Require().NoError(s.db.Omit("Examples", "Grammar").Create(&tr).Error)

	s.Require().NoError(s.grammar.CreateForTranslation(s.ctx, s.db, tr.ID, model.GrammarAttrs{PartOfSpeech: "adverb"}))
	s.ErrorIs(s.grammar.CreateForTranslation(s.ctx, s.db, tr.ID, model.GrammarAttrs{PartOfSpeech: "adverb"}), model.ErrConflict)
}
