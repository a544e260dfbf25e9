// internal/handlers/classification_handler.go
package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"go_vocab_galaxy/internal/middleware"
	"go_vocab_galaxy/internal/model"
	"go_vocab_galaxy/internal/service"
	"go_vocab_galaxy/internal/webutil"

	"github.com/go-chi/chi/v5"
)

type ClassificationHandler struct {
	service service.ClassificationService
	logger  *slog.Logger
	// trustBodyUserID が false なら匿名リクエストのボディ userId を無視する
	trustBodyUserID bool
}

// NewClassificationHandler の trustBodyUserID は認証を無効にした開発環境でだけ true にすること。
// true だと userId を変えるだけで月間上限を回避できる。
func NewClassificationHandler(s service.ClassificationService, logger *slog.Logger, trustBodyUserID bool) *ClassificationHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &ClassificationHandler{service: s, logger: logger, trustBodyUserID: trustBodyUserID}
}

// Classify は POST /gpt/classify を処理します。
// ユーザーIDは認証済みならコンテキストのもの。匿名なら trustBodyUserID のときだけボディの userId を使う。
func (h *ClassificationHandler) Classify(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "Classify"))

	var req model.ClassifyRequest
	if err := webutil.DecodeJSONBody(w, r, &req); err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	if err := webutil.ValidateStruct(req); err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	userID := middleware.GetUserID(r.Context())
	if userID == "" && h.trustBodyUserID {
		userID = req.UserID
	}

	content, err := h.service.Classify(r.Context(), userID, req.Input)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	var result model.ClassificationResult
	if err := json.Unmarshal([]byte(content), &result); err != nil {
		webutil.HandleError(w, logger, &model.UpstreamError{Service: "llm", Err: err})
		return
	}

	logger.Info("Word classified", slog.String("input", req.Input), slog.String("theme", result.Theme))
	webutil.RespondWithJSON(w, http.StatusOK, result)
}

// GetMonthlyStats は GET /gpt/monthly-stats/{month} を処理します (month は YYYY-MM)
func (h *ClassificationHandler) GetMonthlyStats(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetMonthlyStats"))

	month := chi.URLParam(r, "month")
	stats, err := h.service.GetMonthlyStats(r.Context(), month)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	if stats == nil {
		stats = map[string]model.MonthlyUsage{}
	}

	webutil.RespondWithJSON(w, http.StatusOK, stats)
}
