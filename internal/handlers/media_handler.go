// internal/handlers/media_handler.go
package handlers

import (
	"log/slog"
	"net/http"

	"go_vocab_galaxy/internal/middleware"
	"go_vocab_galaxy/internal/model"
	"go_vocab_galaxy/internal/service"
	"go_vocab_galaxy/internal/webutil"
)

// MediaHandler はプラットフォームと作品の管理を扱います。すべてログイン必須。
type MediaHandler struct {
	service service.MediaService
	logger  *slog.Logger
}

func NewMediaHandler(s service.MediaService, logger *slog.Logger) *MediaHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &MediaHandler{service: s, logger: logger}
}

func (h *MediaHandler) PostPlatform(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "PostPlatform"))

	userID, err := middleware.RequireUserID(r.Context())
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	var req model.CreateMediaPlatformRequest
	if err := webutil.DecodeJSONBody(w, r, &req); err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	if err := webutil.ValidateStruct(req); err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	p, err := h.service.CreatePlatform(r.Context(), userID, &req)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Media platform created", slog.String("platform_id", p.ID.String()))
	webutil.RespondWithJSON(w, http.StatusCreated, p)
}

func (h *MediaHandler) GetPlatforms(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetPlatforms"))

	userID, err := middleware.RequireUserID(r.Context())
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	platforms, err := h.service.ListPlatforms(r.Context(), userID)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	if platforms == nil {
		platforms = []*model.MediaPlatform{}
	}

	webutil.RespondWithJSON(w, http.StatusOK, platforms)
}

func (h *MediaHandler) DeletePlatform(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "DeletePlatform"))

	userID, err := middleware.RequireUserID(r.Context())
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	id, err := webutil.URLParamUUID(r, "id")
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	if err := h.service.DeletePlatform(r.Context(), userID, id); err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *MediaHandler) PostContent(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "PostContent"))

	userID, err := middleware.RequireUserID(r.Context())
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	var req model.CreateMediaContentRequest
	if err := webutil.DecodeJSONBody(w, r, &req); err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	if err := webutil.ValidateStruct(req); err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	c, err := h.service.CreateContent(r.Context(), userID, &req)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Media content created", slog.String("content_id", c.ID.String()))
	webutil.RespondWithJSON(w, http.StatusCreated, c)
}

func (h *MediaHandler) GetContents(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetContents"))

	userID, err := middleware.RequireUserID(r.Context())
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	contents, err := h.service.ListContents(r.Context(), userID)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	if contents == nil {
		contents = []*model.MediaContent{}
	}

	webutil.RespondWithJSON(w, http.StatusOK, contents)
}

func (h *MediaHandler) DeleteContent(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "DeleteContent"))

	userID, err := middleware.RequireUserID(r.Context())
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	id, err := webutil.URLParamUUID(r, "id")
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	if err := h.service.DeleteContent(r.Context(), userID, id); err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
