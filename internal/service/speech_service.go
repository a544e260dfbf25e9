//go:generate mockery --name SpeechService --output ./mocks --outpkg mocks --case=underscore
package service

import (
	"context"
	"io"
	"strings"

	"go_vocab_galaxy/internal/middleware"
)

// SpeechClient は音声認識API (Whisper 互換) です。
type SpeechClient interface {
	Transcribe(ctx context.Context, audio io.Reader, filename, contentType string) (string, error)
}

// SpeechService は発音練習用の音声を文字列にします。
// 認識できない場合や外部APIが使えない場合は空文字を返し、エラーにはしません。
type SpeechService interface {
	Recognize(ctx context.Context, audio io.Reader, contentType string) (string, error)
}

type speechService struct {
	client SpeechClient
}

func NewSpeechService(client SpeechClient) SpeechService {
	return &speechService{client: client}
}

func (s *speechService) Recognize(ctx context.Context, audio io.Reader, contentType string) (string, error) {
	logger := middleware.GetLogger(ctx)

	if s.client == nil {
		logger.Warn("Speech client is not configured, returning empty text")
		return "", nil
	}

	text, err := s.client.Transcribe(ctx, audio, "audio."+audioExtension(contentType), contentType)
	if err != nil {
		logger.Error("Speech recognition failed", "error", err, "content_type", contentType)
		return "", nil
	}
	return strings.TrimSpace(text), nil
}

// audioExtension は MIME タイプからファイル拡張子を決めます。API は拡張子で形式を判定する。
func audioExtension(contentType string) string {
	mime, _, _ := strings.Cut(strings.ToLower(strings.TrimSpace(contentType)), ";")
	switch strings.TrimSpace(mime) {
	case "audio/wav", "audio/x-wav", "audio/wave":
		return "wav"
	case "audio/m4a", "audio/mp4", "audio/x-m4a":
		return "m4a"
	case "audio/webm":
		return "webm"
	case "audio/ogg":
		return "ogg"
	default:
		return "mp3"
	}
}
