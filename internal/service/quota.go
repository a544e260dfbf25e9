// internal/service/quota.go
package service

import (
	"context"
	"fmt"
	"time"

	"go_vocab_galaxy/internal/middleware"
	"go_vocab_galaxy/internal/model"
	"go_vocab_galaxy/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// WindowFunc は現在時刻から集計開始時刻を返します。
type WindowFunc func(now time.Time) time.Time

// CalendarMonth は UTC の当月1日 00:00 を返します。
func CalendarMonth(now time.Time) time.Time {
	u := now.UTC()
	return time.Date(u.Year(), u.Month(), 1, 0, 0, 0, 0, time.UTC)
}

// Rolling は now - d からの移動窓です。
func Rolling(d time.Duration) WindowFunc {
	return func(now time.Time) time.Time { return now.Add(-d).UTC() }
}

// QuotaGate は usage_logs の件数で外部呼び出しを制限します。
//
// Check と Record は別々に実行されるため、同じ利用者の同時リクエストは
// 境界付近で上限を少し超えうる。ソフトリミットとして許容している。
type QuotaGate struct {
	db        *gorm.DB
	usageRepo repository.UsageRepository
	kind      model.UsageKind
	max       int
	window    WindowFunc
	now       func() time.Time
}

func NewQuotaGate(db *gorm.DB, usageRepo repository.UsageRepository, kind model.UsageKind, max int, window WindowFunc) *QuotaGate {
	return &QuotaGate{
		db:        db,
		usageRepo: usageRepo,
		kind:      kind,
		max:       max,
		window:    window,
		now:       time.Now,
	}
}

// Check は窓内の件数が max 未満なら nil を返します。
// userID が空の場合は全利用者の合計で判定します。
func (g *QuotaGate) Check(ctx context.Context, userID string) error {
	since := g.window(g.now())
	count, err := g.usageRepo.CountSince(ctx, g.db, g.kind, userID, since)
	if err != nil {
		return fmt.Errorf("QuotaGate.Check: %w", err)
	}
	if count >= int64(g.max) {
		middleware.GetLogger(ctx).Info("Quota exceeded", "kind", g.kind, "user_id", userID, "count", count, "limit", g.max)
		return &model.QuotaExceededError{UserID: userID, Limit: g.max}
	}
	return nil
}

// Record は成功した呼び出しを1件追記します。
func (g *QuotaGate) Record(ctx context.Context, userID string, usage model.TokenUsage) error {
	entry := &model.UsageLogEntry{
		ID:               uuid.New(),
		Kind:             g.kind,
		UserID:           userID,
		CreatedAt:        g.now().UTC(),
		PromptTokens:     usage.PromptTokens,
		CompletionTokens: usage.CompletionTokens,
		TotalTokens:      usage.TotalTokens,
	}
	if err := g.usageRepo.Append(ctx, g.db, entry); err != nil {
		return fmt.Errorf("QuotaGate.Record: %w", err)
	}
	return nil
}
