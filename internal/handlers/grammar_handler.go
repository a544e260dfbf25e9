// internal/handlers/grammar_handler.go
package handlers

import (
	"log/slog"
	"net/http"

	"go_vocab_galaxy/internal/middleware"
	"go_vocab_galaxy/internal/model"
	"go_vocab_galaxy/internal/service"
	"go_vocab_galaxy/internal/webutil"
)

type GrammarHandler struct {
	service service.GrammarService
	logger  *slog.Logger
}

func NewGrammarHandler(s service.GrammarService, logger *slog.Logger) *GrammarHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &GrammarHandler{service: s, logger: logger}
}

// PutGrammar は PUT /lexicon/{id}/grammar を処理します。
// 品詞ごとの検証はサービス側で行い、未知の品詞は 400 になる。
func (h *GrammarHandler) PutGrammar(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "PutGrammar"))

	id, err := webutil.URLParamUUID(r, "id")
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	var attrs model.GrammarAttrs
	if err := webutil.DecodeJSONBody(w, r, &attrs); err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	g, err := h.service.UpdateGrammar(r.Context(), middleware.GetUserID(r.Context()), id, attrs)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Grammar updated", slog.String("lexicon_id", id.String()), slog.String("pos", g.PartOfSpeech))
	webutil.RespondWithJSON(w, http.StatusOK, g)
}
