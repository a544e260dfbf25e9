//go:generate mockery --name MediaRepository --output ./mocks --outpkg mocks --case=underscore
package repository

import (
	"context"
	"fmt"

	"go_vocab_galaxy/internal/middleware"
	"go_vocab_galaxy/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type MediaRepository interface {
	CreatePlatform(ctx context.Context, db *gorm.DB, p *model.MediaPlatform) error
	ListPlatforms(ctx context.Context, db *gorm.DB, userID string) ([]*model.MediaPlatform, error)
	DeletePlatform(ctx context.Context, db *gorm.DB, userID string, id uuid.UUID) error
	CreateContent(ctx context.Context, db *gorm.DB, c *model.MediaContent) error
	ListContents(ctx context.Context, db *gorm.DB, userID string) ([]*model.MediaContent, error)
	DeleteContent(ctx context.Context, db *gorm.DB, userID string, id uuid.UUID) error
}

type gormMediaRepository struct{}

func NewGormMediaRepository() MediaRepository {
	return &gormMediaRepository{}
}

func (r *gormMediaRepository) CreatePlatform(ctx context.Context, db *gorm.DB, p *model.MediaPlatform) error {
	if err := db.WithContext(ctx).Create(p).Error; err != nil {
		middleware.GetLogger(ctx).Error("Error creating media platform in DB", "error", err, "user_id", p.UserID)
		return fmt.Errorf("gormMediaRepository.CreatePlatform: %w", err)
	}
	return nil
}

func (r *gormMediaRepository) ListPlatforms(ctx context.Context, db *gorm.DB, userID string) ([]*model.MediaPlatform, error) {
	var platforms []*model.MediaPlatform
	if err := db.WithContext(ctx).Where("user_id = ?", userID).Order("created_at ASC").Find(&platforms).Error; err != nil {
		middleware.GetLogger(ctx).Error("Error listing media platforms in DB", "error", err, "user_id", userID)
		return nil, fmt.Errorf("gormMediaRepository.ListPlatforms: %w", err)
	}
	return platforms, nil
}

func (r *gormMediaRepository) DeletePlatform(ctx context.Context, db *gorm.DB, userID string, id uuid.UUID) error {
	result := db.WithContext(ctx).Where("id = ? AND user_id = ?", id, userID).Delete(&model.MediaPlatform{})
	if result.Error != nil {
		middleware.GetLogger(ctx).Error("Error deleting media platform in DB", "error", result.Error, "id", id.String())
		return fmt.Errorf("gormMediaRepository.DeletePlatform: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return model.ErrNotFound
	}
	return nil
}

func (r *gormMediaRepository) CreateContent(ctx context.Context, db *gorm.DB, c *model.MediaContent) error {
	if err := db.WithContext(ctx).Create(c).Error; err != nil {
		middleware.GetLogger(ctx).Error("Error creating media content in DB", "error", err, "user_id", c.UserID)
		return fmt.Errorf("gormMediaRepository.CreateContent: %w", err)
	}
	return nil
}

func (r *gormMediaRepository) ListContents(ctx context.Context, db *gorm.DB, userID string) ([]*model.MediaContent, error) {
	var contents []*model.MediaContent
	if err := db.WithContext(ctx).Where("user_id = ?", userID).Order("created_at DESC").Find(&contents).Error; err != nil {
		middleware.GetLogger(ctx).Error("Error listing media contents in DB", "error", err, "user_id", userID)
		return nil, fmt.Errorf("gormMediaRepository.ListContents: %w", err)
	}
	return contents, nil
}

func (r *gormMediaRepository) DeleteContent(ctx context.Context, db *gorm.DB, userID string, id uuid.UUID) error {
	result := db.WithContext(ctx).Where("id = ? AND user_id = ?", id, userID).Delete(&model.MediaContent{})
	if result.Error != nil {
		middleware.GetLogger(ctx).Error("Error deleting media content in DB", "error", result.Error, "id", id.String())
		return fmt.Errorf("gormMediaRepository.DeleteContent: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return model.ErrNotFound
	}
	return nil
}
