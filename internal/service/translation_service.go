//go:generate mockery --name TranslationService --output ./mocks --outpkg mocks --case=underscore
package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go_vocab_galaxy/internal/dictionary"
	"go_vocab_galaxy/internal/middleware"
	"go_vocab_galaxy/internal/model"
	"go_vocab_galaxy/internal/repository"

	"github.com/google/uuid"
	"golang.org/x/sync/singleflight"
	"gorm.io/gorm"
)

// DictionaryReader はオフライン辞書の検索口です。
type DictionaryReader interface {
	Find(ctx context.Context, word string, targetLang model.Lang) ([]model.DictionaryEntry, error)
}

// TranslationClient は外部翻訳API (DeepL) です。訳がなければ空文字を返します。
type TranslationClient interface {
	Translate(ctx context.Context, text string, sourceLang, targetLang model.Lang) (string, error)
}

type TranslationService interface {
	Resolve(ctx context.Context, userID string, q *model.ResolveQuery) (*model.ResolveResult, error)
	AddTranslation(ctx context.Context, userID string, req *model.CreateTranslationRequest) (*model.Translation, error)
	AddManualTranslation(ctx context.Context, userID string, req *model.LexiconTranslationRequest) (*model.Translation, error)
	AddExtraTranslation(ctx context.Context, userID string, req *model.LexiconTranslationRequest) (*model.Translation, error)
	UpdateTranslation(ctx context.Context, userID string, id uuid.UUID, req *model.UpdateTranslationRequest) (*model.Translation, error)
	UpdateExamples(ctx context.Context, userID string, id uuid.UUID, req *model.UpdateExamplesRequest) ([]model.Example, error)
	GetStats(ctx context.Context) ([]model.StatLine, error)
}

type TranslationServiceOptions struct {
	// RateGate は外部APIの前段に置く任意の制限。nil なら制限なし
	RateGate *QuotaGate
	// PersistTimeout はキャッシュ保存に使う切り離したコンテキストの上限
	PersistTimeout time.Duration
	// ResolveTimeout は共有される解決処理1回の上限。呼び出し元の取り消しとは独立
	ResolveTimeout time.Duration
}

type translationService struct {
	db          *gorm.DB
	transRepo   repository.TranslationRepository
	lexRepo     repository.LexiconRepository
	grammarRepo repository.GrammarRepository
	statsRepo   repository.StatsRepository
	dict        DictionaryReader
	client      TranslationClient
	rateGate    *QuotaGate

	persistTimeout time.Duration
	resolveTimeout time.Duration
	group          singleflight.Group
}

func NewTranslationService(
	db *gorm.DB,
	transRepo repository.TranslationRepository,
	lexRepo repository.LexiconRepository,
	grammarRepo repository.GrammarRepository,
	statsRepo repository.StatsRepository,
	dict DictionaryReader,
	client TranslationClient,
	opts TranslationServiceOptions,
) TranslationService {
	if opts.PersistTimeout <= 0 {
		opts.PersistTimeout = 5 * time.Second
	}
	if opts.ResolveTimeout <= 0 {
		opts.ResolveTimeout = 30 * time.Second
	}
	return &translationService{
		db:             db,
		transRepo:      transRepo,
		lexRepo:        lexRepo,
		grammarRepo:    grammarRepo,
		statsRepo:      statsRepo,
		dict:           dict,
		client:         client,
		rateGate:       opts.RateGate,
		persistTimeout: opts.PersistTimeout,
		resolveTimeout: opts.ResolveTimeout,
	}
}

// Resolve はキャッシュ → 辞書 → 外部API の順に訳を探します。
// 同じ (原文, 言語対, 利用者) の同時リクエストは1回の実行を共有します。
// 共有される実行は先頭の呼び出し元の取り消しに引きずられず、各呼び出し元は自分の ctx で待ちを打ち切れます。
func (s *translationService) Resolve(ctx context.Context, userID string, q *model.ResolveQuery) (*model.ResolveResult, error) {
	source := model.NormalizeSource(q.Source)
	if source == "" || !q.SourceLang.Valid() || !q.TargetLang.Valid() || q.SourceLang == q.TargetLang {
		return nil, model.ErrInvalidInput
	}

	key := strings.Join([]string{source, string(q.SourceLang), string(q.TargetLang), userID}, "\x00")
	ch := s.group.DoChan(key, func() (interface{}, error) {
		rctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.resolveTimeout)
		defer cancel()
		return s.resolve(rctx, userID, source, q.SourceLang, q.TargetLang)
	})

	var r singleflight.Result
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case r = <-ch:
	}
	if r.Err != nil {
		return nil, r.Err
	}
	if r.Shared {
		middleware.GetLogger(ctx).Debug("Resolve result shared with concurrent request", "source", source)
	}

	res := *r.Val.(*model.ResolveResult)
	res.Translations = append([]string(nil), res.Translations...)
	return &res, nil
}

func (s *translationService) resolve(ctx context.Context, userID, source string, sourceLang, targetLang model.Lang) (*model.ResolveResult, error) {
	logger := middleware.GetLogger(ctx).With("source", source, "source_lang", sourceLang, "target_lang", targetLang)

	// 1. キャッシュ。読み取り失敗はミス扱いで続行
	cached, err := s.transRepo.FindCached(ctx, s.db, source, sourceLang, targetLang)
	switch {
	case err == nil:
		s.incrementStats(ctx, sourceLang, targetLang, model.FromCache)
		return &model.ResolveResult{
			Word:         source,
			Translations: []string{cached.Target},
			SourceLang:   sourceLang,
			TargetLang:   targetLang,
			From:         model.FromCache,
			Grammar:      cached.Grammar.Sanitized(),
		}, nil
	case errors.Is(err, model.ErrNotFound):
	default:
		logger.Warn("Cache lookup failed, treating as miss", "error", err)
	}

	// 2. 辞書。仏語見出しのみ
	if s.dict != nil && dictionarySupports(sourceLang, targetLang) {
		entries, err := s.dict.Find(ctx, source, targetLang)
		if err != nil {
			logger.Warn("Dictionary lookup failed, falling back to API", "error", err)
		} else if candidates := flattenCandidates(entries); len(candidates) > 0 {
			var grammar *model.GrammarAttrs
			if g, err := dictionary.ToGrammar(entries[0]); err != nil {
				logger.Warn("Dictionary entry has no usable grammar", "error", err, "pos", entries[0].PartOfSpeech)
			} else {
				attrs := g.Attrs()
				grammar = &attrs
			}

			s.persistResolved(ctx, userID, &model.Translation{
				Source:     source,
				Target:     candidates[0],
				SourceLang: sourceLang,
				TargetLang: targetLang,
				Meaning:    model.ProvenanceWiktionary,
			}, grammar)
			s.incrementStats(ctx, sourceLang, targetLang, model.FromWiktionary)

			return &model.ResolveResult{
				Word:         source,
				Translations: candidates,
				SourceLang:   sourceLang,
				TargetLang:   targetLang,
				From:         model.FromWiktionary,
				Grammar:      grammar,
			}, nil
		}
	}

	// 3. 外部API。失敗は致命的
	target, err := s.translateViaAPI(ctx, source, sourceLang, targetLang)
	if err != nil {
		return nil, err
	}
	if target == "" {
		return nil, model.NewAppError("TRANSLATION_NOT_FOUND", "翻訳が見つかりませんでした。", "source", model.ErrNotFound)
	}

	s.persistResolved(ctx, userID, &model.Translation{
		Source:     source,
		Target:     target,
		SourceLang: sourceLang,
		TargetLang: targetLang,
		Meaning:    model.ProvenanceDeepL,
	}, nil)
	s.incrementStats(ctx, sourceLang, targetLang, model.FromAPI)

	return &model.ResolveResult{
		Word:         source,
		Translations: []string{target},
		SourceLang:   sourceLang,
		TargetLang:   targetLang,
		From:         model.FromAPI,
	}, nil
}

func dictionarySupports(sourceLang, targetLang model.Lang) bool {
	return sourceLang == model.LangFR && (targetLang == model.LangRU || targetLang == model.LangEN)
}

// flattenCandidates は先頭エントリの訳語から順に並べます。
func flattenCandidates(entries []model.DictionaryEntry) []string {
	var out []string
	for _, e := range entries {
		for _, t := range e.Translations {
			if w := strings.TrimSpace(t.Word); w != "" {
				out = append(out, w)
			}
		}
	}
	return out
}

func (s *translationService) translateViaAPI(ctx context.Context, source string, sourceLang, targetLang model.Lang) (string, error) {
	logger := middleware.GetLogger(ctx)

	if s.client == nil {
		return "", &model.UpstreamError{Service: "deepl", Err: errors.New("translation client is not configured")}
	}

	if s.rateGate != nil {
		if err := s.rateGate.Check(ctx, ""); err != nil {
			if errors.Is(err, model.ErrQuotaExceeded) {
				return "", model.NewAppError("TRANSLATION_RATE_LIMITED", "翻訳APIの呼び出し回数が上限に達しました。しばらくしてから再試行してください。", "", model.ErrRateLimited)
			}
			// 制限の判定自体が失敗した場合は通す
			logger.Warn("Translation rate check failed, allowing call", "error", err)
		}
	}

	target, err := s.client.Translate(ctx, source, sourceLang, targetLang)

	if s.rateGate != nil {
		if rerr := s.rateGate.Record(ctx, "", model.TokenUsage{}); rerr != nil {
			logger.Warn("Failed to record translation API usage", "error", rerr)
		}
	}

	if err != nil {
		logger.Error("Translation API call failed", "error", err, "source", source)
		var upErr *model.UpstreamError
		if errors.As(err, &upErr) {
			return "", err
		}
		return "", &model.UpstreamError{Service: "deepl", Err: err}
	}
	return strings.TrimSpace(target), nil
}

// persistResolved は解決結果をキャッシュします。失敗はログのみで戻り値には影響しません。
func (s *translationService) persistResolved(ctx context.Context, userID string, t *model.Translation, grammar *model.GrammarAttrs) {
	pctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.persistTimeout)
	defer cancel()

	if err := s.cacheTranslation(pctx, userID, t, grammar); err != nil {
		middleware.GetLogger(ctx).Error("Failed to cache resolved translation",
			"error", err,
			"source", t.Source,
			"target", t.Target,
			"source_lang", t.SourceLang,
			"target_lang", t.TargetLang,
			"provenance", t.Meaning,
		)
	}
}

func (s *translationService) cacheTranslation(ctx context.Context, userID string, t *model.Translation, grammar *model.GrammarAttrs) error {
	entry, err := s.lexRepo.FindByWord(ctx, s.db, t.Source, userID)
	switch {
	case err == nil:
		t.LexiconID = &entry.ID
	case errors.Is(err, model.ErrNotFound):
	default:
		return fmt.Errorf("find lexicon entry: %w", err)
	}

	saved, created, err := s.insertIdempotent(ctx, t)
	if err != nil {
		return err
	}

	linked, err := s.attachToEntry(ctx, saved, created, entry)
	if err != nil {
		return err
	}
	// 別の単語に紐付いた既存行なら、この単語は訳済みにしない
	if linked && !entry.Translated {
		if err := s.lexRepo.Update(ctx, s.db, entry.ID, map[string]interface{}{"translated": true}); err != nil {
			return fmt.Errorf("mark lexicon translated: %w", err)
		}
	}

	if grammar != nil && created {
		if err := s.grammarRepo.CreateForTranslation(ctx, s.db, saved.ID, *grammar); err != nil && !errors.Is(err, model.ErrConflict) {
			return fmt.Errorf("create grammar: %w", err)
		}
	}
	return nil
}

// insertIdempotent は一意キーで既存行を探し、なければ作成します。
// 同時挿入で一意制約に負けた場合は勝った行を読み直して返します。
func (s *translationService) insertIdempotent(ctx context.Context, t *model.Translation) (*model.Translation, bool, error) {
	existing, err := s.transRepo.FindByKey(ctx, s.db, t.Key())
	if err == nil {
		return existing, false, nil
	}
	if !errors.Is(err, model.ErrNotFound) {
		return nil, false, err
	}

	t.ID = uuid.New()
	if err := s.transRepo.Create(ctx, s.db, t); err != nil {
		if !errors.Is(err, model.ErrConflict) {
			return nil, false, err
		}
		winner, ferr := s.transRepo.FindByKey(ctx, s.db, t.Key())
		if ferr != nil {
			return nil, false, fmt.Errorf("re-read after conflict: %w", ferr)
		}
		middleware.GetLogger(ctx).Debug("Translation insert lost race, using existing row", "id", winner.ID.String())
		return winner, false, nil
	}
	return t, true, nil
}

// attachToEntry は保存済みの行が entry に紐付いている状態にします。
// 未紐付けの既存行は紐付け、別の単語の行なら false を返します。
func (s *translationService) attachToEntry(ctx context.Context, saved *model.Translation, created bool, entry *model.LexiconEntry) (bool, error) {
	if entry == nil {
		return false, nil
	}
	if created {
		return true, nil
	}
	if saved.LexiconID != nil {
		return *saved.LexiconID == entry.ID, nil
	}
	linked, err := s.transRepo.LinkLexicon(ctx, s.db, saved.ID, entry.ID)
	if err != nil {
		return false, fmt.Errorf("link lexicon entry: %w", err)
	}
	if linked {
		saved.LexiconID = &entry.ID
	}
	return linked, nil
}

var errTranslationTaken = model.NewAppError("TRANSLATION_TAKEN", "この訳は別の単語に登録済みです。", "target", model.ErrConflict)

func (s *translationService) incrementStats(ctx context.Context, sourceLang, targetLang model.Lang, from model.ResolveSource) {
	if err := s.statsRepo.Increment(ctx, s.db, sourceLang, targetLang, from); err != nil {
		middleware.GetLogger(ctx).Warn("Failed to increment translation stats", "error", err, "from", from)
	}
}

func (s *translationService) AddTranslation(ctx context.Context, userID string, req *model.CreateTranslationRequest) (*model.Translation, error) {
	t := &model.Translation{
		Source:     model.NormalizeSource(req.Source),
		Target:     strings.TrimSpace(req.Target),
		SourceLang: req.SourceLang,
		TargetLang: req.TargetLang,
		Meaning:    req.Meaning,
	}
	if t.Source == "" || t.Target == "" {
		return nil, model.ErrInvalidInput
	}
	if t.Meaning == "" {
		t.Meaning = model.ProvenanceManual
	}

	var entry *model.LexiconEntry
	if req.LexiconID != nil {
		var err error
		if entry, err = s.ownedEntry(ctx, userID, *req.LexiconID); err != nil {
			return nil, err
		}
		t.LexiconID = &entry.ID
	}

	saved, created, err := s.insertIdempotent(ctx, t)
	if err != nil {
		return nil, err
	}
	if entry == nil {
		return saved, nil
	}
	linked, err := s.attachToEntry(ctx, saved, created, entry)
	if err != nil {
		return nil, err
	}
	if !linked {
		return nil, errTranslationTaken
	}
	if err := s.lexRepo.Update(ctx, s.db, entry.ID, map[string]interface{}{"translated": true}); err != nil {
		return nil, err
	}
	return saved, nil
}

func (s *translationService) AddManualTranslation(ctx context.Context, userID string, req *model.LexiconTranslationRequest) (*model.Translation, error) {
	return s.addLexiconTranslation(ctx, userID, req, model.ProvenanceManual)
}

func (s *translationService) AddExtraTranslation(ctx context.Context, userID string, req *model.LexiconTranslationRequest) (*model.Translation, error) {
	return s.addLexiconTranslation(ctx, userID, req, model.ProvenanceExtra)
}

func (s *translationService) addLexiconTranslation(ctx context.Context, userID string, req *model.LexiconTranslationRequest, provenance string) (*model.Translation, error) {
	entry, err := s.ownedEntry(ctx, userID, req.LexiconID)
	if err != nil {
		return nil, err
	}

	t := &model.Translation{
		Source:     model.NormalizeSource(entry.Word),
		Target:     strings.TrimSpace(req.Target),
		SourceLang: req.SourceLang,
		TargetLang: req.TargetLang,
		Meaning:    provenance,
		LexiconID:  &entry.ID,
	}
	if t.Target == "" {
		return nil, model.ErrInvalidInput
	}

	saved, created, err := s.insertIdempotent(ctx, t)
	if err != nil {
		return nil, err
	}
	linked, err := s.attachToEntry(ctx, saved, created, entry)
	if err != nil {
		return nil, err
	}
	if !linked {
		return nil, errTranslationTaken
	}
	if err := s.lexRepo.Update(ctx, s.db, entry.ID, map[string]interface{}{"translated": true}); err != nil {
		return nil, err
	}
	return saved, nil
}

func (s *translationService) UpdateTranslation(ctx context.Context, userID string, id uuid.UUID, req *model.UpdateTranslationRequest) (*model.Translation, error) {
	target := strings.TrimSpace(req.Target)
	if target == "" {
		return nil, model.ErrInvalidInput
	}

	t, err := s.ownedTranslation(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	if err := s.transRepo.UpdateTarget(ctx, s.db, id, target); err != nil {
		return nil, err
	}
	t.Target = target
	return t, nil
}

func (s *translationService) UpdateExamples(ctx context.Context, userID string, id uuid.UUID, req *model.UpdateExamplesRequest) ([]model.Example, error) {
	if _, err := s.ownedTranslation(ctx, userID, id); err != nil {
		return nil, err
	}

	var examples []model.Example
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var err error
		examples, err = s.transRepo.ReplaceExamples(ctx, tx, id, req.Examples)
		return err
	})
	if err != nil {
		return nil, err
	}
	return examples, nil
}

func (s *translationService) GetStats(ctx context.Context) ([]model.StatLine, error) {
	rows, err := s.statsRepo.FindAll(ctx, s.db)
	if err != nil {
		return nil, err
	}
	lines := make([]model.StatLine, 0, len(rows))
	for _, r := range rows {
		lines = append(lines, model.StatLine{Label: r.Label(), Count: r.Count})
	}
	return lines, nil
}

func (s *translationService) ownedEntry(ctx context.Context, userID string, id uuid.UUID) (*model.LexiconEntry, error) {
	entry, err := s.lexRepo.FindByID(ctx, s.db, id)
	if err != nil {
		return nil, err
	}
	if !entry.OwnedBy(userID) {
		return nil, model.ErrUnauthorized
	}
	return entry, nil
}

// ownedTranslation は紐づく単語の所有者で権限を判定します。単語に紐づかない訳は共有。
func (s *translationService) ownedTranslation(ctx context.Context, userID string, id uuid.UUID) (*model.Translation, error) {
	t, err := s.transRepo.FindByID(ctx, s.db, id)
	if err != nil {
		return nil, err
	}
	if t.LexiconID == nil {
		return t, nil
	}
	entry, err := s.lexRepo.FindByID(ctx, s.db, *t.LexiconID)
	if errors.Is(err, model.ErrNotFound) {
		return t, nil
	}
	if err != nil {
		return nil, err
	}
	if !entry.OwnedBy(userID) {
		return nil, model.ErrUnauthorized
	}
	return t, nil
}
