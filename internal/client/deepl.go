// Package client は外部API (DeepL, Anthropic) のアダプタです。
// 失敗はすべて *model.UpstreamError に変換して返します。
package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go_vocab_galaxy/internal/middleware"
	"go_vocab_galaxy/internal/model"
)

const deeplService = "deepl"

// DeepLClient は DeepL の /v2/translate を呼びます。
type DeepLClient struct {
	endpoint   string
	apiKey     string
	httpClient *http.Client
}

func NewDeepLClient(endpoint, apiKey string, timeout time.Duration) *DeepLClient {
	return &DeepLClient{
		endpoint:   endpoint,
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: timeout},
	}
}

type deeplResponse struct {
	Translations []struct {
		DetectedSourceLanguage string `json:"detected_source_language"`
		Text                   string `json:"text"`
	} `json:"translations"`
}

// Translate は最良の訳を1つ返します。訳がなければ空文字。
func (c *DeepLClient) Translate(ctx context.Context, text string, sourceLang, targetLang model.Lang) (string, error) {
	logger := middleware.GetLogger(ctx)

	form := url.Values{}
	form.Set("text", text)
	form.Set("source_lang", strings.ToUpper(string(sourceLang)))
	form.Set("target_lang", strings.ToUpper(string(targetLang)))

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return "", &model.UpstreamError{Service: deeplService, Err: err}
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Authorization", "DeepL-Auth-Key "+c.apiKey)

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		// タイムアウトも同じ分類で返す
		return "", &model.UpstreamError{Service: deeplService, Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return "", &model.UpstreamError{Service: deeplService, StatusCode: resp.StatusCode, Err: err}
	}

	logger.Debug("DeepL response", "status", resp.StatusCode, "latency_ms", time.Since(start).Milliseconds())

	if resp.StatusCode != http.StatusOK {
		return "", &model.UpstreamError{
			Service:    deeplService,
			StatusCode: resp.StatusCode,
			Err:        errors.New(strings.TrimSpace(string(body))),
		}
	}

	var out deeplResponse
	if err := json.Unmarshal(body, &out); err != nil {
		return "", &model.UpstreamError{Service: deeplService, StatusCode: resp.StatusCode, Err: fmt.Errorf("decode response: %w", err)}
	}
	if len(out.Translations) == 0 {
		return "", nil
	}
	return strings.TrimSpace(out.Translations[0].Text), nil
}
