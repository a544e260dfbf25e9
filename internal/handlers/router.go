// internal/handlers/router.go
package handlers

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
)

// Pinger は *sql.DB を想定したヘルスチェック用インターフェースです。
type Pinger interface {
	PingContext(ctx context.Context) error
}

// HealthHandler は GET /health でDB疎通を確認します
func HealthHandler(db Pinger, logger *slog.Logger) http.HandlerFunc {
	if logger == nil {
		logger = slog.Default()
	}
	return func(w http.ResponseWriter, r *http.Request) {
		if err := db.PingContext(r.Context()); err != nil {
			logger.ErrorContext(r.Context(), "Health check failed: could not ping DB", slog.Any("error", err))
			http.Error(w, "Health check failed", http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	}
}

// API は /api/v1 配下のハンドラをまとめたものです。
type API struct {
	Translation    *TranslationHandler
	Classification *ClassificationHandler
	Lexicon        *LexiconHandler
	Grammar        *GrammarHandler
	Media          *MediaHandler
	Speech         *SpeechHandler
}

// Mount はルートを登録します。認証ミドルウェアは呼び出し側で r.Use しておくこと。
func (a *API) Mount(r chi.Router) {
	r.Route("/translation", func(r chi.Router) {
		r.Get("/", a.Translation.Resolve)
		r.Post("/", a.Translation.PostTranslation)
		r.Post("/manual", a.Translation.PostManualTranslation)
		r.Post("/extra", a.Translation.PostExtraTranslation)
		r.Get("/stats", a.Translation.GetStats)
		r.Patch("/{id}", a.Translation.PatchTranslation)
		r.Put("/{id}/examples", a.Translation.PutExamples)
	})

	r.Route("/gpt", func(r chi.Router) {
		r.Post("/classify", a.Classification.Classify)
		r.Get("/monthly-stats/{month}", a.Classification.GetMonthlyStats)
	})

	r.Route("/lexicon", func(r chi.Router) {
		r.Get("/", a.Lexicon.GetLexicon)
		r.Post("/", a.Lexicon.PostLexicon)
		r.Post("/bulk", a.Lexicon.PostLexiconBulk)
		r.Get("/learned/count", a.Lexicon.CountLearned)
		r.Patch("/{id}/status", a.Lexicon.PatchStatus)
		r.Patch("/{id}/revealed", a.Lexicon.PatchRevealed)
		r.Patch("/{id}/postponed", a.Lexicon.PatchPostponed)
		r.Patch("/{id}/translated", a.Lexicon.PatchTranslated)
		r.Put("/{id}/grammar", a.Grammar.PutGrammar)
		r.Delete("/{id}", a.Lexicon.DeleteLexicon)
	})

	r.Route("/media", func(r chi.Router) {
		r.Get("/platforms", a.Media.GetPlatforms)
		r.Post("/platforms", a.Media.PostPlatform)
		r.Delete("/platforms/{id}", a.Media.DeletePlatform)
		r.Get("/contents", a.Media.GetContents)
		r.Post("/contents", a.Media.PostContent)
		r.Delete("/contents/{id}", a.Media.DeleteContent)
	})

	r.Post("/speech/recognize", a.Speech.Recognize)
}
