// internal/model/lexicon.go
package model

import (
	"time"

	"github.com/google/uuid"
)

type EntryType string

const (
	EntryTypeWord       EntryType = "word"
	EntryTypeExpression EntryType = "expression"
)

// ReviewStatus は学習者の復習状態です。nil は未評価。
type ReviewStatus string

const (
	StatusLearned ReviewStatus = "learned"
	StatusRepeat  ReviewStatus = "repeat"
	StatusError   ReviewStatus = "error"
)

// LexiconEntry は学習者が管理する単語・表現を表します
type LexiconEntry struct {
	ID         uuid.UUID     `gorm:"type:uuid;primaryKey" json:"id"`
	UserID     *string       `gorm:"index" json:"userId,omitempty"` // 旧データは所有者なし
	Word       string        `gorm:"not null;index" json:"word"`
	Type       EntryType     `gorm:"type:varchar(20);not null" json:"type"`
	Galaxy     string        `gorm:"not null;index:idx_lexicon_topic" json:"galaxy"`
	Subtopic   string        `gorm:"not null;index:idx_lexicon_topic" json:"subtopic"`
	Translated bool          `gorm:"not null;default:false" json:"translated"`
	Status     *ReviewStatus `gorm:"type:varchar(20)" json:"status"`
	Revealed   bool          `gorm:"not null;default:false" json:"revealed"`
	Postponed  bool          `gorm:"not null;default:false" json:"postponed"`

	// 動画・ドラマ中の出現位置
	Season    *int    `json:"season,omitempty"`
	Episode   *int    `json:"episode,omitempty"`
	Timestamp *string `gorm:"size:20" json:"timestamp,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	// 関連 (Preload用)
	Grammar      *Grammar      `gorm:"foreignKey:LexiconID" json:"grammar,omitempty"`
	Translations []Translation `gorm:"foreignKey:LexiconID" json:"translations,omitempty"`
}

func (LexiconEntry) TableName() string {
	return "lexicon_entries"
}

// OwnedBy は呼び出し元がこのエントリにアクセスできるか判定します。
// userID が空なら (匿名・旧クライアント) チェックしない。所有者なしの旧データは共有扱い。
func (e *LexiconEntry) OwnedBy(userID string) bool {
	if userID == "" || e.UserID == nil {
		return true
	}
	return *e.UserID == userID
}

// 単語作成リクエストDTO
type CreateLexiconRequest struct {
	Word      string    `json:"word" validate:"required,max=255"`
	Type      EntryType `json:"type" validate:"omitempty,oneof=word expression"`
	Galaxy    string    `json:"galaxy" validate:"required,max=100"`
	Subtopic  string    `json:"subtopic" validate:"required,max=100"`
	Season    *int      `json:"season,omitempty" validate:"omitempty,min=0"`
	Episode   *int      `json:"episode,omitempty" validate:"omitempty,min=0"`
	Timestamp *string   `json:"timestamp,omitempty" validate:"omitempty,max=20"`
}

// 一括作成リクエストDTO
type BulkCreateLexiconRequest struct {
	Entries []CreateLexiconRequest `json:"entries" validate:"required,min=1,max=500,dive"`
}

// 復習状態更新リクエストDTO (status: null でリセット)
type UpdateStatusRequest struct {
	Status *ReviewStatus `json:"status" validate:"omitempty,oneof=learned repeat error"`
}

type UpdateRevealedRequest struct {
	Revealed *bool `json:"revealed" validate:"required"`
}

type UpdatePostponedRequest struct {
	Postponed *bool `json:"postponed" validate:"required"`
}

// 一覧取得クエリ
type ListLexiconQuery struct {
	Galaxy   string `validate:"required,max=100"`
	Subtopic string `validate:"required,max=100"`
}

type CountResponse struct {
	Count int64 `json:"count"`
}
