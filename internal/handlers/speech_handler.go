// internal/handlers/speech_handler.go
package handlers

import (
	"log/slog"
	"net/http"

	"go_vocab_galaxy/internal/model"
	"go_vocab_galaxy/internal/service"
	"go_vocab_galaxy/internal/webutil"
)

const speechFormField = "audio"

// SpeechHandler は発音練習の音声認識を扱います。ログイン不要。
type SpeechHandler struct {
	service service.SpeechService
	logger  *slog.Logger
}

func NewSpeechHandler(s service.SpeechService, logger *slog.Logger) *SpeechHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &SpeechHandler{service: s, logger: logger}
}

// Recognize は POST /speech/recognize。フィールド "audio" の音声を文字起こしします。
func (h *SpeechHandler) Recognize(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "Recognize"))

	file, header, err := webutil.FormFile(w, r, speechFormField)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	defer file.Close()

	contentType := header.Header.Get("Content-Type")
	text, err := h.service.Recognize(r.Context(), file, contentType)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Speech recognized", slog.Int64("size", header.Size), slog.String("content_type", contentType), slog.Int("text_length", len(text)))
	webutil.RespondWithJSON(w, http.StatusOK, model.SpeechResult{Text: text, Success: true})
}
