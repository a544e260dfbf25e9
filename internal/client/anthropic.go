package client

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go_vocab_galaxy/internal/model"

	anthropic "github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
)

const llmService = "llm"

type AnthropicConfig struct {
	APIKey      string
	BaseURL     string // テスト用。空なら既定のエンドポイント
	Model       string
	MaxTokens   int64
	Temperature float64
	Timeout     time.Duration
}

// AnthropicClient は Messages API で1回の補完を行います。
// リトライは呼び出し側 (分類サービス) の責務なので SDK のリトライは無効にしています。
type AnthropicClient struct {
	client      anthropic.Client
	model       string
	maxTokens   int64
	temperature float64
}

func NewAnthropicClient(cfg AnthropicConfig) (*AnthropicClient, error) {
	if strings.TrimSpace(cfg.APIKey) == "" {
		return nil, errors.New("anthropic: API key cannot be empty")
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

	return &AnthropicClient{
		client:      anthropic.NewClient(opts...),
		model:       cfg.Model,
		maxTokens:   cfg.MaxTokens,
		temperature: cfg.Temperature,
	}, nil
}

func (c *AnthropicClient) Complete(ctx context.Context, systemPrompt, userPrompt string) (*model.Completion, error) {
	message, err := c.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:       anthropic.Model(c.model),
		MaxTokens:   c.maxTokens,
		Temperature: anthropic.Float(c.temperature),
		System:      []anthropic.TextBlockParam{{Text: systemPrompt}},
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(userPrompt)),
		},
	})
	if err != nil {
		var apiErr *anthropic.Error
		if errors.As(err, &apiErr) {
			return nil, &model.UpstreamError{Service: llmService, StatusCode: apiErr.StatusCode, Err: err}
		}
		return nil, &model.UpstreamError{Service: llmService, Err: fmt.Errorf("call messages API: %w", err)}
	}

	var b strings.Builder
	for _, block := range message.Content {
		if block.Type == "text" {
			b.WriteString(block.AsText().Text)
		}
	}

	in, out := int(message.Usage.InputTokens), int(message.Usage.OutputTokens)
	return &model.Completion{
		Content: b.String(),
		Usage: model.TokenUsage{
			PromptTokens:     in,
			CompletionTokens: out,
			TotalTokens:      in + out,
		},
	}, nil
}
