// internal/model/media.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// MediaPlatform は学習者が使う配信サービス等です。
type MediaPlatform struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID    string    `gorm:"not null;index" json:"userId"`
	MediaType string    `gorm:"type:varchar(50);not null" json:"mediaType"`
	Name      string    `gorm:"not null" json:"name"`
	Icon      string    `json:"icon,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

func (MediaPlatform) TableName() string {
	return "media_platforms"
}

// MediaContent は作品 (ドラマ、映画など) です。Metadata は自由形式のJSON。
type MediaContent struct {
	ID        uuid.UUID         `gorm:"type:uuid;primaryKey" json:"id"`
	UserID    string            `gorm:"not null;index" json:"userId"`
	MediaType string            `gorm:"type:varchar(50);not null" json:"mediaType"`
	Title     string            `gorm:"not null" json:"title"`
	Icon      string            `json:"icon,omitempty"`
	Metadata  datatypes.JSONMap `json:"metadata,omitempty"`
	CreatedAt time.Time         `json:"createdAt"`
}

func (MediaContent) TableName() string {
	return "media_contents"
}

type CreateMediaPlatformRequest struct {
	MediaType string `json:"mediaType" validate:"required,max=50"`
	Name      string `json:"name" validate:"required,max=100"`
	Icon      string `json:"icon" validate:"omitempty,max=255"`
}

type CreateMediaContentRequest struct {
	MediaType string         `json:"mediaType" validate:"required,max=50"`
	Title     string         `json:"title" validate:"required,max=255"`
	Icon      string         `json:"icon" validate:"omitempty,max=255"`
	Metadata  map[string]any `json:"metadata,omitempty"`
}
