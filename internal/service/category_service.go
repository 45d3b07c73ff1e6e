package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"fintrack-be/internal/cache"
	"fintrack-be/internal/entities"
	"fintrack-be/internal/models"
	"fintrack-be/internal/repository"
	"fintrack-be/internal/slug"
)

const categoryCacheTTL = 5 * time.Minute

// CategoryService defines the interface for category business logic
type CategoryService interface {
	CreateBatch(ctx context.Context, userID uuid.UUID, reqs []models.CreateCategoryRequest) ([]*entities.Category, error)
	List(ctx context.Context, userID uuid.UUID) ([]*entities.Category, error)
	Get(ctx context.Context, id, userID uuid.UUID) (*entities.Category, error)
	Delete(ctx context.Context, id, userID uuid.UUID) error
}

type categoryService struct {
	repo   repository.CategoryRepository
	cache  cache.Cache
	logger *logrus.Logger
}

// NewCategoryService creates a new category service
func NewCategoryService(repo repository.CategoryRepository, cacheClient cache.Cache, logger *logrus.Logger) CategoryService {
	return &categoryService{
		repo:   repo,
		cache:  cacheClient,
		logger: logger,
	}
}

// CreateBatch derives a slug for every category name and writes the whole
// batch atomically. A name that slugs to an existing slug for this user
// (or another name in the same batch) fails the entire batch.
func (s *categoryService) CreateBatch(ctx context.Context, userID uuid.UUID, reqs []models.CreateCategoryRequest) ([]*entities.Category, error) {
	rows := make([]repository.NewCategory, 0, len(reqs))
	for _, req := range reqs {
		rows = append(rows, repository.NewCategory{
			Name:      req.Name,
			Slug:      slug.Make(req.Name),
			Type:      entities.CategoryType(req.Type),
			IsSavings: req.IsSavings,
		})
	}

	created, err := s.repo.CreateBatch(ctx, userID, rows)
	if err != nil {
		return nil, err
	}

	s.invalidate(ctx, userID)
	return created, nil
}

// List returns the user's categories, served from cache when possible
func (s *categoryService) List(ctx context.Context, userID uuid.UUID) ([]*entities.Category, error) {
	key := categoryCacheKey(userID)

	if s.cache != nil {
		var cached []*entities.Category
		err := s.cache.GetJSON(ctx, key, &cached)
		if err == nil {
			return cached, nil
		}
		if !errors.Is(err, cache.ErrCacheMiss) {
			s.logger.WithError(err).Warn("category cache read failed")
		}
	}

	categories, err := s.repo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.SetJSON(ctx, key, categories, categoryCacheTTL); err != nil {
			s.logger.WithError(err).Warn("category cache write failed")
		}
	}

	return categories, nil
}

// Get fetches one category owned by the user
func (s *categoryService) Get(ctx context.Context, id, userID uuid.UUID) (*entities.Category, error) {
	return s.repo.FindByID(ctx, id, userID)
}

// Delete removes one category owned by the user
func (s *categoryService) Delete(ctx context.Context, id, userID uuid.UUID) error {
	if err := s.repo.Delete(ctx, id, userID); err != nil {
		return err
	}
	s.invalidate(ctx, userID)
	return nil
}

func (s *categoryService) invalidate(ctx context.Context, userID uuid.UUID) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Delete(ctx, categoryCacheKey(userID)); err != nil {
		s.logger.WithError(err).Warn("category cache invalidation failed")
	}
}

func categoryCacheKey(userID uuid.UUID) string {
	return fmt.Sprintf("categories:user:%s", userID)
}
