// internal/model/usage.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// UsageMonthLayout は UsageLogEntry.Month の書式です。
const UsageMonthLayout = "2006-01"

type UsageKind string

const (
	UsageClassification UsageKind = "classification"
	UsageTranslation    UsageKind = "translation"
)

// UsageLogEntry は外部API呼び出しの追記専用ログです。クォータ判定の唯一の状態。
type UsageLogEntry struct {
	ID               uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Kind             UsageKind `gorm:"type:varchar(20);not null;index:idx_usage_kind_user" json:"kind"`
	UserID           string    `gorm:"not null;index:idx_usage_kind_user" json:"userId"`
	Month            string    `gorm:"type:varchar(7);not null;index" json:"month"`
	CreatedAt        time.Time `gorm:"not null;index" json:"timestamp"`
	PromptTokens     int       `gorm:"not null;default:0" json:"promptTokens"`
	CompletionTokens int       `gorm:"not null;default:0" json:"completionTokens"`
	TotalTokens      int       `gorm:"not null;default:0" json:"totalTokens"`
}

func (UsageLogEntry) TableName() string {
	return "usage_logs"
}

// TokenUsage は外部呼び出し1回分のコストです。
type TokenUsage struct {
	PromptTokens     int `json:"promptTokens"`
	CompletionTokens int `json:"completionTokens"`
	TotalTokens      int `json:"totalTokens"`
}

// Completion はLLMの応答です。
type Completion struct {
	Content string
	Usage   TokenUsage
}

// MonthlyUsage はユーザーごとの月間集計です。
type MonthlyUsage struct {
	TotalTokens int64 `json:"totalTokens"`
	Requests    int64 `json:"requests"`
}

// 分類リクエストDTO
type ClassifyRequest struct {
	UserID string `json:"userId" validate:"omitempty,max=128"`
	Input  string `json:"input" validate:"required,max=200"`
}

// ClassificationResult はLLMが返すJSONの形です。
type ClassificationResult struct {
	Theme    string `json:"theme"`
	Subtheme string `json:"subtheme"`
}
