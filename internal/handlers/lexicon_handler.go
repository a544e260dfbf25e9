// internal/handlers/lexicon_handler.go
package handlers

import (
	"log/slog"
	"net/http"

	"go_vocab_galaxy/internal/middleware"
	"go_vocab_galaxy/internal/model"
	"go_vocab_galaxy/internal/service"
	"go_vocab_galaxy/internal/webutil"
)

type LexiconHandler struct {
	service service.LexiconService
	logger  *slog.Logger
}

func NewLexiconHandler(s service.LexiconService, logger *slog.Logger) *LexiconHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &LexiconHandler{service: s, logger: logger}
}

// GetLexicon は GET /lexicon?galaxy=&subtopic= を処理します
func (h *LexiconHandler) GetLexicon(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetLexicon"))

	query := model.ListLexiconQuery{
		Galaxy:   r.URL.Query().Get("galaxy"),
		Subtopic: r.URL.Query().Get("subtopic"),
	}
	if err := webutil.ValidateStruct(query); err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	entries, err := h.service.ListByGalaxyAndSubtopic(r.Context(), middleware.GetUserID(r.Context()), query.Galaxy, query.Subtopic)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	if entries == nil {
		entries = []*model.LexiconEntry{}
	}

	logger.Info("Lexicon listed", slog.String("galaxy", query.Galaxy), slog.Int("count", len(entries)))
	webutil.RespondWithJSON(w, http.StatusOK, entries)
}

func (h *LexiconHandler) PostLexicon(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "PostLexicon"))

	var req model.CreateLexiconRequest
	if err := webutil.DecodeJSONBody(w, r, &req); err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	if err := webutil.ValidateStruct(req); err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	entry, err := h.service.AddOne(r.Context(), middleware.GetUserID(r.Context()), &req)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Lexicon entry created", slog.String("lexicon_id", entry.ID.String()))
	webutil.RespondWithJSON(w, http.StatusCreated, entry)
}

// PostLexiconBulk は POST /lexicon/bulk を処理します。全件成功か全件失敗
func (h *LexiconHandler) PostLexiconBulk(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "PostLexiconBulk"))

	var req model.BulkCreateLexiconRequest
	if err := webutil.DecodeJSONBody(w, r, &req); err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	if err := webutil.ValidateStruct(req); err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	entries, err := h.service.AddMany(r.Context(), middleware.GetUserID(r.Context()), req.Entries)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Lexicon entries created", slog.Int("count", len(entries)))
	webutil.RespondWithJSON(w, http.StatusCreated, entries)
}

func (h *LexiconHandler) PatchStatus(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "PatchStatus"))

	id, err := webutil.URLParamUUID(r, "id")
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	var req model.UpdateStatusRequest
	if err := webutil.DecodeJSONBody(w, r, &req); err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	if err := webutil.ValidateStruct(req); err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	entry, err := h.service.UpdateStatus(r.Context(), middleware.GetUserID(r.Context()), id, req.Status)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusOK, entry)
}

func (h *LexiconHandler) PatchRevealed(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "PatchRevealed"))

	id, err := webutil.URLParamUUID(r, "id")
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	var req model.UpdateRevealedRequest
	if err := webutil.DecodeJSONBody(w, r, &req); err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	if err := webutil.ValidateStruct(req); err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	entry, err := h.service.UpdateRevealed(r.Context(), middleware.GetUserID(r.Context()), id, *req.Revealed)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusOK, entry)
}

func (h *LexiconHandler) PatchPostponed(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "PatchPostponed"))

	id, err := webutil.URLParamUUID(r, "id")
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	var req model.UpdatePostponedRequest
	if err := webutil.DecodeJSONBody(w, r, &req); err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	if err := webutil.ValidateStruct(req); err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	entry, err := h.service.UpdatePostponed(r.Context(), middleware.GetUserID(r.Context()), id, *req.Postponed)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusOK, entry)
}

func (h *LexiconHandler) PatchTranslated(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "PatchTranslated"))

	id, err := webutil.URLParamUUID(r, "id")
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	if err := h.service.MarkAsTranslated(r.Context(), middleware.GetUserID(r.Context()), id); err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// DeleteLexicon は訳語と文法情報もまとめて削除します
func (h *LexiconHandler) DeleteLexicon(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "DeleteLexicon"))

	id, err := webutil.URLParamUUID(r, "id")
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	if err := h.service.Delete(r.Context(), middleware.GetUserID(r.Context()), id); err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Lexicon entry deleted", slog.String("lexicon_id", id.String()))
	w.WriteHeader(http.StatusNoContent)
}

// CountLearned は GET /lexicon/learned/count を処理します。ログイン必須
func (h *LexiconHandler) CountLearned(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "CountLearned"))

	userID, err := middleware.RequireUserID(r.Context())
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	count, err := h.service.CountLearned(r.Context(), userID)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusOK, model.CountResponse{Count: count})
}
