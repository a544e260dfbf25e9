//go:generate mockery --name ClassificationService --output ./mocks --outpkg mocks --case=underscore
package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"go_vocab_galaxy/internal/middleware"
	"go_vocab_galaxy/internal/model"
	"go_vocab_galaxy/internal/repository"

	"gorm.io/gorm"
)

// LLMClient は補完APIです。レート制限時は ErrUpstreamRateLimited を満たすエラーを返します。
type LLMClient interface {
	Complete(ctx context.Context, systemPrompt, userPrompt string) (*model.Completion, error)
}

type ClassificationService interface {
	Classify(ctx context.Context, userID, input string) (string, error)
	GetMonthlyStats(ctx context.Context, month string) (map[string]model.MonthlyUsage, error)
}

const (
	classifySystemPrompt = `Tu es un dictionnaire visuel. Classifie le mot par thème et sous-thème de la liste, retourne uniquement JSON {"theme": "...", "subtheme": "..."}`

	// 利用者IDなしの呼び出しはまとめてこのIDで数える
	anonymousUserID = "anonymous"
)

type classificationService struct {
	db        *gorm.DB
	usageRepo repository.UsageRepository
	llm       LLMClient
	gate      *QuotaGate
	backoff   time.Duration
}

func NewClassificationService(db *gorm.DB, usageRepo repository.UsageRepository, llm LLMClient, monthlyQuota int, backoff time.Duration) ClassificationService {
	return &classificationService{
		db:        db,
		usageRepo: usageRepo,
		llm:       llm,
		gate:      NewQuotaGate(db, usageRepo, model.UsageClassification, monthlyQuota, CalendarMonth),
		backoff:   backoff,
	}
}

// Classify は単語をテーマ・サブテーマに分類し、LLMが返したJSONをそのまま返します。
func (s *classificationService) Classify(ctx context.Context, userID, input string) (string, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return "", model.ErrInvalidInput
	}
	if userID == "" {
		userID = anonymousUserID
	}
	logger := middleware.GetLogger(ctx).With("user_id", userID)

	if err := s.gate.Check(ctx, userID); err != nil {
		return "", err
	}
	if s.llm == nil {
		return "", &model.UpstreamError{Service: "llm", Err: errors.New("LLM client is not configured")}
	}

	userPrompt := fmt.Sprintf("Mot: %q", input)
	completion, err := s.llm.Complete(ctx, classifySystemPrompt, userPrompt)
	if errors.Is(err, model.ErrUpstreamRateLimited) {
		logger.Warn("LLM rate limited, retrying once", "backoff", s.backoff)
		if werr := wait(ctx, s.backoff); werr != nil {
			return "", werr
		}
		completion, err = s.llm.Complete(ctx, classifySystemPrompt, userPrompt)
		if err != nil {
			logger.Error("LLM retry failed", "error", err)
			return "", asUpstream(err)
		}
	} else if err != nil {
		logger.Error("LLM call failed", "error", err)
		return "", asUpstream(err)
	}

	// 応答が壊れていてもトークンは消費済みなので先に記録する
	if err := s.gate.Record(ctx, userID, completion.Usage); err != nil {
		logger.Error("Failed to append usage log", "error", err, "total_tokens", completion.Usage.TotalTokens)
	}

	content, err := extractJSONObject(completion.Content)
	if err != nil {
		logger.Warn("LLM returned malformed content", "content", completion.Content)
		return "", &model.UpstreamError{Service: "llm", Err: err}
	}
	logger.Info("Word classified", "total_tokens", completion.Usage.TotalTokens)

	return content, nil
}

// GetMonthlyStats は "YYYY-MM" の月について利用者ごとのトークン合計と回数を返します。
func (s *classificationService) GetMonthlyStats(ctx context.Context, month string) (map[string]model.MonthlyUsage, error) {
	if _, err := time.Parse(model.UsageMonthLayout, month); err != nil {
		return nil, model.NewAppError("INVALID_MONTH", "月は YYYY-MM 形式で指定してください。", "month", model.ErrInvalidInput)
	}

	entries, err := s.usageRepo.FindByMonth(ctx, s.db, model.UsageClassification, month)
	if err != nil {
		return nil, err
	}

	stats := make(map[string]model.MonthlyUsage)
	for _, e := range entries {
		u := stats[e.UserID]
		u.TotalTokens += int64(e.TotalTokens)
		u.Requests++
		stats[e.UserID] = u
	}
	return stats, nil
}

func wait(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

func asUpstream(err error) error {
	var upErr *model.UpstreamError
	if errors.As(err, &upErr) {
		return err
	}
	return &model.UpstreamError{Service: "llm", Err: err}
}

// extractJSONObject は前後の説明文やコードフェンスを除き、最も外側のJSONオブジェクトを返します。
func extractJSONObject(s string) (string, error) {
	start := strings.Index(s, "{")
	end := strings.LastIndex(s, "}")
	if start < 0 || end <= start {
		return "", fmt.Errorf("no JSON object in response: %q", s)
	}
	obj := s[start : end+1]
	if !json.Valid([]byte(obj)) {
		return "", fmt.Errorf("invalid JSON in response: %q", obj)
	}
	return obj, nil
}
