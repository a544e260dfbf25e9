// internal/model/translation.go
package model

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Lang は対応言語です。
type Lang string

const (
	LangRU Lang = "ru"
	LangFR Lang = "fr"
	LangEN Lang = "en"
)

func (l Lang) Valid() bool {
	switch l {
	case LangRU, LangFR, LangEN:
		return true
	}
	return false
}

// 翻訳の出所 (Translation.Meaning に保存)
const (
	ProvenanceWiktionary = "wiktionary"
	ProvenanceDeepL      = "deepl"
	ProvenanceManual     = "manual"
	ProvenanceExtra      = "extra"
)

// ResolveSource は解決結果がどの段階から得られたかを示します。
type ResolveSource string

const (
	FromCache      ResolveSource = "cache"
	FromWiktionary ResolveSource = "wiktionary"
	FromAPI        ResolveSource = "api"
)

// NormalizeSource はキャッシュキー用に原文を正規化します。
func NormalizeSource(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// Translation はキャッシュ兼学習者の訳語です。
// (source, target, source_lang, target_lang) はDB側で一意。
type Translation struct {
	ID         uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	LexiconID  *uuid.UUID `gorm:"type:uuid;index" json:"lexiconId,omitempty"`
	Source     string     `gorm:"not null;uniqueIndex:uq_translation_key,priority:1" json:"source"`
	Target     string     `gorm:"not null;uniqueIndex:uq_translation_key,priority:2" json:"target"`
	SourceLang Lang       `gorm:"type:varchar(2);not null;uniqueIndex:uq_translation_key,priority:3" json:"sourceLang"`
	TargetLang Lang       `gorm:"type:varchar(2);not null;uniqueIndex:uq_translation_key,priority:4" json:"targetLang"`
	Meaning    string     `gorm:"not null" json:"meaning"`
	CreatedAt  time.Time  `json:"createdAt"`
	UpdatedAt  time.Time  `json:"updatedAt"`

	Examples []Example `gorm:"foreignKey:TranslationID" json:"examples,omitempty"`
	Grammar  *Grammar  `gorm:"foreignKey:TranslationID" json:"grammar,omitempty"`
}

func (Translation) TableName() string {
	return "translations"
}

// TranslationKey は一意制約と同じ組です。
type TranslationKey struct {
	Source     string
	Target     string
	SourceLang Lang
	TargetLang Lang
}

func (t *Translation) Key() TranslationKey {
	return TranslationKey{Source: t.Source, Target: t.Target, SourceLang: t.SourceLang, TargetLang: t.TargetLang}
}

// Example は訳語に紐づく例文です。
type Example struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	TranslationID uuid.UUID `gorm:"type:uuid;not null;index" json:"-"`
	Sentence      string    `gorm:"not null" json:"sentence"`
	Position      int       `gorm:"not null;default:0" json:"-"`
	CreatedAt     time.Time `json:"-"`
}

func (Example) TableName() string {
	return "examples"
}

// TranslationStats は解決元ごとの集計行です。ルーティングには使わない。
type TranslationStats struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey" json:"-"`
	SourceLang Lang      `gorm:"type:varchar(2);not null;uniqueIndex:uq_stats_key" json:"sourceLang"`
	TargetLang Lang      `gorm:"type:varchar(2);not null;uniqueIndex:uq_stats_key" json:"targetLang"`
	From       string    `gorm:"column:from_source;type:varchar(20);not null;uniqueIndex:uq_stats_key" json:"from"`
	Count      int64     `gorm:"not null;default:1" json:"count"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

func (TranslationStats) TableName() string {
	return "translation_stats"
}

// Label は "{src} → {tgt} [{from}]" 形式の表示名です。
func (s TranslationStats) Label() string {
	return fmt.Sprintf("%s → %s [%s]", s.SourceLang, s.TargetLang, s.From)
}

// ResolveResult は resolve の戻り値です。
type ResolveResult struct {
	Word         string        `json:"word"`
	Translations []string      `json:"translations"`
	SourceLang   Lang          `json:"sourceLang"`
	TargetLang   Lang          `json:"targetLang"`
	From         ResolveSource `json:"from"`
	Grammar      *GrammarAttrs `json:"grammar,omitempty"`
}

// StatLine は統計の一行です。
type StatLine struct {
	Label string `json:"label"`
	Count int64  `json:"count"`
}

// 翻訳解決クエリ (GET /translation)
type ResolveQuery struct {
	Source     string `validate:"required,max=200"`
	SourceLang Lang   `validate:"required,oneof=ru fr en"`
	TargetLang Lang   `validate:"required,oneof=ru fr en,nefield=SourceLang"`
}

// 翻訳追加リクエストDTO
type CreateTranslationRequest struct {
	Source     string     `json:"source" validate:"required,max=200"`
	Target     string     `json:"target" validate:"required,max=500"`
	SourceLang Lang       `json:"sourceLang" validate:"required,oneof=ru fr en"`
	TargetLang Lang       `json:"targetLang" validate:"required,oneof=ru fr en"`
	Meaning    string     `json:"meaning" validate:"omitempty,max=100"`
	LexiconID  *uuid.UUID `json:"lexiconId,omitempty"`
}

// 単語に紐づく手動・追加訳のリクエストDTO
type LexiconTranslationRequest struct {
	LexiconID  uuid.UUID `json:"lexiconId" validate:"required"`
	Target     string    `json:"target" validate:"required,max=500"`
	SourceLang Lang      `json:"sourceLang" validate:"required,oneof=ru fr en"`
	TargetLang Lang      `json:"targetLang" validate:"required,oneof=ru fr en"`
}

type UpdateTranslationRequest struct {
	Target string `json:"target" validate:"required,max=500"`
}

type UpdateExamplesRequest struct {
	Examples []string `json:"examples" validate:"max=50,dive,required,max=1000"`
}
