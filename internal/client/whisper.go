package client

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"go_vocab_galaxy/internal/model"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

const sttService = "stt"

type WhisperConfig struct {
	APIKey   string
	BaseURL  string // OpenAI 互換エンドポイント (Groq など)
	Model    string
	Language string
	Timeout  time.Duration
}

// WhisperClient は OpenAI 互換の音声認識APIで音声を文字起こしします。
type WhisperClient struct {
	client   openai.Client
	model    string
	language string
}

func NewWhisperClient(cfg WhisperConfig) (*WhisperClient, error) {
	if strings.TrimSpace(cfg.APIKey) == "" {
		return nil, errors.New("whisper: API key cannot be empty")
	}

	opts := []option.RequestOption{
		option.WithAPIKey(cfg.APIKey),
		option.WithMaxRetries(0),
	}
	if cfg.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(cfg.BaseURL))
	}
	if cfg.Timeout > 0 {
		opts = append(opts, option.WithRequestTimeout(cfg.Timeout))
	}

	return &WhisperClient{
		client:   openai.NewClient(opts...),
		model:    cfg.Model,
		language: cfg.Language,
	}, nil
}

// Transcribe は音声を送り、認識した文字列をそのまま返します。
func (c *WhisperClient) Transcribe(ctx context.Context, audio io.Reader, filename, contentType string) (string, error) {
	params := openai.AudioTranscriptionNewParams{
		File:           openai.File(audio, filename, contentType),
		Model:          openai.AudioModel(c.model),
		ResponseFormat: openai.AudioResponseFormatJSON,
	}
	if c.language != "" {
		params.Language = openai.String(c.language)
	}

	res, err := c.client.Audio.Transcriptions.New(ctx, params)
	if err != nil {
		var apiErr *openai.Error
		if errors.As(err, &apiErr) {
			return "", &model.UpstreamError{Service: sttService, StatusCode: apiErr.StatusCode, Err: err}
		}
		return "", &model.UpstreamError{Service: sttService, Err: fmt.Errorf("call transcriptions API: %w", err)}
	}
	return res.Text, nil
}
