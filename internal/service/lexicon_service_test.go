package service

import (
	"context"
	"testing"

	"go_vocab_galaxy/internal/model"
	"go_vocab_galaxy/internal/repository"
	repomocks "go_vocab_galaxy/internal/repository/mocks"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

type LexiconServiceSuite struct {
	suite.Suite
	db  *gorm.DB
	svc LexiconService
	ctx context.Context
}

func TestLexiconServiceSuite(t *testing.T) {
	suite.Run(t, new(LexiconServiceSuite))
}

func (s *LexiconServiceSuite) SetupTest() {
	s.db = newTestDB(s.T())
	s.ctx = context.Background()
	s.svc = NewLexiconService(s.db,
		repository.NewGormLexiconRepository(),
		repository.NewGormTranslationRepository(),
		repository.NewGormGrammarRepository())
}

func (s *LexiconServiceSuite) addWord(userID, word string) *model.LexiconEntry {
	e, err := s.svc.AddOne(s.ctx, userID, &model.CreateLexiconRequest{Word: word, Galaxy: "animals", Subtopic: "pets"})
	s.Require().NoError(err)
	return e
}

func (s *LexiconServiceSuite) TestAddOneDefaults() {
	e, err := s.svc.AddOne(s.ctx, "user-1", &model.CreateLexiconRequest{
		Word: "  le chat ", Galaxy: "animals", Subtopic: "pets", Season: ptr(1), Episode: ptr(3), Timestamp: ptr("00:12:30"),
	})
	s.Require().NoError(err)
	s.Equal("le chat", e.Word)
	s.Equal(model.EntryTypeWord, e.Type)
	s.False(e.Translated)
	s.Require().NotNil(e.UserID)
	s.Equal("user-1", *e.UserID)

	anon := s.addWord("", "chien")
	s.Nil(anon.UserID)
}

func (s *LexiconServiceSuite) TestAddManyIsAtomic() {
	entries, err := s.svc.AddMany(s.ctx, "user-1", []model.CreateLexiconRequest{
		{Word: "chat", Galaxy: "animals", Subtopic: "pets"},
		{Word: "avoir le cafard", Type: model.EntryTypeExpression, Galaxy: "feelings", Subtopic: "idioms"},
	})
	s.Require().NoError(err)
	s.Len(entries, 2)

	_, err = s.svc.AddMany(s.ctx, "user-1", []model.CreateLexiconRequest{
		{Word: "lapin", Galaxy: "animals", Subtopic: "pets"},
		{Word: "", Galaxy: "animals", Subtopic: "pets"},
	})
	s.ErrorIs(err, model.ErrInvalidInput)

	var n int64
	s.Require().NoError(s.db.Model(&model.LexiconEntry{}).Count(&n).Error)
	s.Equal(int64(2), n)
}

func (s *LexiconServiceSuite) TestListSanitizesGrammarAndScopesUser() {
	mine := s.addWord("user-1", "chat")
	s.addWord("user-2", "chien")

	bad := model.Grammar{ID: uuid.New(), LexiconID: &mine.ID, GrammarAttrs: model.GrammarAttrs{
		PartOfSpeech: "noun", Gender: ptr("masculine"), Number: ptr("many"),
	}}
	s.Require().NoError(s.db.Create(&bad).Error)

	list, err := s.svc.ListByGalaxyAndSubtopic(s.ctx, "user-1", "animals", "pets")
	s.Require().NoError(err)
	s.Require().Len(list, 1)
	s.Equal(mine.ID, list[0].ID)
	s.Require().NotNil(list[0].Grammar)
	s.Equal("masculine", *list[0].Grammar.Gender)
	s.Nil(list[0].Grammar.Number)
}

func (s *LexiconServiceSuite) TestUpdatesEnforceOwnership() {
	e := s.addWord("user-1", "chat")

	_, err := s.svc.UpdateRevealed(s.ctx, "user-2", e.ID, true)
	s.ErrorIs(err, model.ErrUnauthorized)

	learned := model.StatusLearned
	got, err := s.svc.UpdateStatus(s.ctx, "user-1", e.ID, &learned)
	s.Require().NoError(err)
	s.Equal(&learned, got.Status)

	_, err = s.svc.UpdatePostponed(s.ctx, "", e.ID, true) // 利用者なしはチェックしない
	s.Require().NoError(err)
	s.Require().NoError(s.svc.MarkAsTranslated(s.ctx, "user-1", e.ID))

	var reloaded model.LexiconEntry
	s.Require().NoError(s.db.First(&reloaded, "id = ?", e.ID).Error)
	s.False(reloaded.Revealed)
	s.True(reloaded.Postponed)
	s.True(reloaded.Translated)
	s.Require().NotNil(reloaded.Status)
	s.Equal(model.StatusLearned, *reloaded.Status)

	count, err := s.svc.CountLearned(s.ctx, "user-1")
	s.Require().NoError(err)
	s.Equal(int64(1), count)

	// null でリセット
	_, err = s.svc.UpdateStatus(s.ctx, "user-1", e.ID, nil)
	s.Require().NoError(err)
	count, err = s.svc.CountLearned(s.ctx, "user-1")
	s.Require().NoError(err)
	s.Zero(count)

	_, err = s.svc.UpdateStatus(s.ctx, "user-1", uuid.New(), &learned)
	s.ErrorIs(err, model.ErrNotFound)
}

func (s *LexiconServiceSuite) TestDeleteCascades() {
	e := s.addWord("user-1", "maison")
	other := s.addWord("user-1", "chat")

	tr := model.Translation{ID: uuid.New(), LexiconID: &e.ID, Source: "maison", Target: "house", SourceLang: model.LangFR, TargetLang: model.LangEN, Meaning: model.ProvenanceManual}
	keep := model.Translation{ID: uuid.New(), LexiconID: &other.ID, Source: "chat", Target: "cat", SourceLang: model.LangFR, TargetLang: model.LangEN, Meaning: model.ProvenanceManual}
	s.Require().NoError(s.db.Omit("Examples", "Grammar").Create(&[]model.Translation{tr, keep}).Error)
	s.Require().NoError(s.db.Create(&model.Example{ID: uuid.New(), TranslationID: tr.ID, Sentence: "Une maison."}).Error)
	s.Require().NoError(s.db.Create(&model.Grammar{ID: uuid.New(), TranslationID: &tr.ID, GrammarAttrs: model.GrammarAttrs{PartOfSpeech: "noun"}}).Error)
	s.Require().NoError(s.db.Create(&model.Grammar{ID: uuid.New(), LexiconID: &e.ID, GrammarAttrs: model.GrammarAttrs{PartOfSpeech: "noun"}}).Error)

	err := s.svc.Delete(s.ctx, "user-2", e.ID)
	s.ErrorIs(err, model.ErrUnauthorized)
	s.Equal(int64(2), s.count(&model.Translation{}))
	s.Equal(int64(2), s.count(&model.Grammar{}))

	s.Require().NoError(s.svc.Delete(s.ctx, "user-1", e.ID))

	s.Equal(int64(1), s.count(&model.LexiconEntry{}))
	s.Equal(int64(1), s.count(&model.Translation{}))
	s.Zero(s.count(&model.Example{}))
	s.Zero(s.count(&model.Grammar{}))

	s.ErrorIs(s.svc.Delete(s.ctx, "user-1", e.ID), model.ErrNotFound)
}

func (s *LexiconServiceSuite) count(m interface{}) int64 {
	var n int64
	s.Require().NoError(s.db.Model(m).Count(&n).Error)
	return n
}

func TestLexiconService_Delete_UnauthorizedPerformsNoDeletion(t *testing.T) {
	lexRepo := repomocks.NewLexiconRepository(t)
	transRepo := repomocks.NewTranslationRepository(t)
	grammarRepo := repomocks.NewGrammarRepository(t)
	svc := NewLexiconService(newTestDB(t), lexRepo, transRepo, grammarRepo)

	owner := "owner"
	id := uuid.New()
	lexRepo.On("FindByID", mock.Anything, mock.AnythingOfType("*gorm.DB"), id).Return(&model.LexiconEntry{ID: id, UserID: &owner}, nil).Once()

	err := svc.Delete(context.Background(), "intruder", id)
	require.ErrorIs(t, err, model.ErrUnauthorized)

	transRepo.AssertNotCalled(t, "DeleteByLexicon", mock.Anything, mock.Anything, mock.Anything)
	grammarRepo.AssertNotCalled(t, "DeleteByLexicon", mock.Anything, mock.Anything, mock.Anything)
	lexRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything, mock.Anything)
}

func TestLexiconService_AddOne_Validation(t *testing.T) {
	svc := NewLexiconService(newTestDB(t), repomocks.NewLexiconRepository(t), repomocks.NewTranslationRepository(t), repomocks.NewGrammarRepository(t))

	_, err := svc.AddOne(context.Background(), "user-1", &model.CreateLexiconRequest{Word: " ", Galaxy: "g", Subtopic: "s"})
	assert.ErrorIs(t, err, model.ErrInvalidInput)
}
