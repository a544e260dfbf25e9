// internal/handlers/translation_handler.go
package handlers

import (
	"context"
	"log/slog"
	"net/http"

	"go_vocab_galaxy/internal/middleware"
	"go_vocab_galaxy/internal/model"
	"go_vocab_galaxy/internal/service"
	"go_vocab_galaxy/internal/webutil"
)

type TranslationHandler struct {
	service service.TranslationService
	logger  *slog.Logger
}

func NewTranslationHandler(s service.TranslationService, logger *slog.Logger) *TranslationHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &TranslationHandler{service: s, logger: logger}
}

// Resolve は GET /translation?source=&sourceLang=&targetLang= を処理します
func (h *TranslationHandler) Resolve(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "Resolve"))

	q := r.URL.Query()
	query := model.ResolveQuery{
		Source:     q.Get("source"),
		SourceLang: model.Lang(q.Get("sourceLang")),
		TargetLang: model.Lang(q.Get("targetLang")),
	}
	if err := webutil.ValidateStruct(query); err != nil {
		logger.Warn("Validation failed", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	result, err := h.service.Resolve(r.Context(), middleware.GetUserID(r.Context()), &query)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Translation resolved",
		slog.String("source", query.Source),
		slog.String("from", string(result.From)),
		slog.Int("count", len(result.Translations)))
	webutil.RespondWithJSON(w, http.StatusOK, result)
}

// PostTranslation は POST /translation を処理します。既存の組ならそれを返す
func (h *TranslationHandler) PostTranslation(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "PostTranslation"))

	var req model.CreateTranslationRequest
	if err := webutil.DecodeJSONBody(w, r, &req); err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	if err := webutil.ValidateStruct(req); err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	tr, err := h.service.AddTranslation(r.Context(), middleware.GetUserID(r.Context()), &req)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Translation saved", slog.String("translation_id", tr.ID.String()))
	webutil.RespondWithJSON(w, http.StatusCreated, tr)
}

func (h *TranslationHandler) PostManualTranslation(w http.ResponseWriter, r *http.Request) {
	h.postLexiconTranslation(w, r, "PostManualTranslation", h.service.AddManualTranslation)
}

func (h *TranslationHandler) PostExtraTranslation(w http.ResponseWriter, r *http.Request) {
	h.postLexiconTranslation(w, r, "PostExtraTranslation", h.service.AddExtraTranslation)
}

func (h *TranslationHandler) postLexiconTranslation(
	w http.ResponseWriter,
	r *http.Request,
	name string,
	add func(ctx context.Context, userID string, req *model.LexiconTranslationRequest) (*model.Translation, error),
) {
	logger := h.logger.With(slog.String("handler", name))

	var req model.LexiconTranslationRequest
	if err := webutil.DecodeJSONBody(w, r, &req); err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	if err := webutil.ValidateStruct(req); err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	tr, err := add(r.Context(), middleware.GetUserID(r.Context()), &req)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Lexicon translation saved",
		slog.String("translation_id", tr.ID.String()),
		slog.String("lexicon_id", req.LexiconID.String()))
	webutil.RespondWithJSON(w, http.StatusCreated, tr)
}

// PatchTranslation は PATCH /translation/{id} を処理します
func (h *TranslationHandler) PatchTranslation(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "PatchTranslation"))

	id, err := webutil.URLParamUUID(r, "id")
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	var req model.UpdateTranslationRequest
	if err := webutil.DecodeJSONBody(w, r, &req); err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	if err := webutil.ValidateStruct(req); err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	tr, err := h.service.UpdateTranslation(r.Context(), middleware.GetUserID(r.Context()), id, &req)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Translation updated", slog.String("translation_id", id.String()))
	webutil.RespondWithJSON(w, http.StatusOK, tr)
}

// PutExamples は PUT /translation/{id}/examples を処理します。例文は全置換
func (h *TranslationHandler) PutExamples(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "PutExamples"))

	id, err := webutil.URLParamUUID(r, "id")
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	var req model.UpdateExamplesRequest
	if err := webutil.DecodeJSONBody(w, r, &req); err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	if err := webutil.ValidateStruct(req); err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	examples, err := h.service.UpdateExamples(r.Context(), middleware.GetUserID(r.Context()), id, &req)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	if examples == nil {
		examples = []model.Example{}
	}

	logger.Info("Examples replaced", slog.String("translation_id", id.String()), slog.Int("count", len(examples)))
	webutil.RespondWithJSON(w, http.StatusOK, examples)
}

// GetStats は GET /translation/stats を処理します
func (h *TranslationHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetStats"))

	stats, err := h.service.GetStats(r.Context())
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	if stats == nil {
		stats = []model.StatLine{}
	}

	webutil.RespondWithJSON(w, http.StatusOK, stats)
}
