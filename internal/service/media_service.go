//go:generate mockery --name MediaService --output ./mocks --outpkg mocks --case=underscore
package service

import (
	"context"

	"go_vocab_galaxy/internal/model"
	"go_vocab_galaxy/internal/repository"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// MediaService は利用者ごとの配信サービス・作品の記録です。userID は必須。
type MediaService interface {
	CreatePlatform(ctx context.Context, userID string, req *model.CreateMediaPlatformRequest) (*model.MediaPlatform, error)
	ListPlatforms(ctx context.Context, userID string) ([]*model.MediaPlatform, error)
	DeletePlatform(ctx context.Context, userID string, id uuid.UUID) error
	CreateContent(ctx context.Context, userID string, req *model.CreateMediaContentRequest) (*model.MediaContent, error)
	ListContents(ctx context.Context, userID string) ([]*model.MediaContent, error)
	DeleteContent(ctx context.Context, userID string, id uuid.UUID) error
}

type mediaService struct {
	db        *gorm.DB
	mediaRepo repository.MediaRepository
}

func NewMediaService(db *gorm.DB, mediaRepo repository.MediaRepository) MediaService {
	return &mediaService{db: db, mediaRepo: mediaRepo}
}

func (s *mediaService) CreatePlatform(ctx context.Context, userID string, req *model.CreateMediaPlatformRequest) (*model.MediaPlatform, error) {
	if userID == "" {
		return nil, model.ErrUnauthenticated
	}
	p := &model.MediaPlatform{
		ID:        uuid.New(),
		UserID:    userID,
		MediaType: req.MediaType,
		Name:      req.Name,
		Icon:      req.Icon,
	}
	if err := s.mediaRepo.CreatePlatform(ctx, s.db, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *mediaService) ListPlatforms(ctx context.Context, userID string) ([]*model.MediaPlatform, error) {
	if userID == "" {
		return nil, model.ErrUnauthenticated
	}
	return s.mediaRepo.ListPlatforms(ctx, s.db, userID)
}

func (s *mediaService) DeletePlatform(ctx context.Context, userID string, id uuid.UUID) error {
	if userID == "" {
		return model.ErrUnauthenticated
	}
	return s.mediaRepo.DeletePlatform(ctx, s.db, userID, id)
}

func (s *mediaService) CreateContent(ctx context.Context, userID string, req *model.CreateMediaContentRequest) (*model.MediaContent, error) {
	if userID == "" {
		return nil, model.ErrUnauthenticated
	}
	c := &model.MediaContent{
		ID:        uuid.New(),
		UserID:    userID,
		MediaType: req.MediaType,
		Title:     req.Title,
		Icon:      req.Icon,
	}
	if req.Metadata != nil {
		c.Metadata = datatypes.JSONMap(req.Metadata)
	}
	if err := s.mediaRepo.CreateContent(ctx, s.db, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *mediaService) ListContents(ctx context.Context, userID string) ([]*model.MediaContent, error) {
	if userID == "" {
		return nil, model.ErrUnauthenticated
	}
	return s.mediaRepo.ListContents(ctx, s.db, userID)
}

func (s *mediaService) DeleteContent(ctx context.Context, userID string, id uuid.UUID) error {
	if userID == "" {
		return model.ErrUnauthenticated
	}
	return s.mediaRepo.DeleteContent(ctx, s.db, userID, id)
}
