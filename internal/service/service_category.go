package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-stock-keeper/internal/logger"
	"github.com/MKhiriev/go-stock-keeper/internal/store"
	"github.com/MKhiriev/go-stock-keeper/models"
)

// categoryService is the concrete implementation of CategoryService.
type categoryService struct {
	categoryRepository store.CategoryRepository

	logger *logger.Logger
}

// NewCategoryService constructs a CategoryService wired to the given
// repository.
func NewCategoryService(categoryRepository store.CategoryRepository, logger *logger.Logger) CategoryService {
	return &categoryService{
		categoryRepository: categoryRepository,
		logger:             logger,
	}
}

// CreateCategory validates and persists a new category. The name is trimmed
// and must be non-empty.
func (s *categoryService) CreateCategory(ctx context.Context, category models.Category) (models.Category, error) {
	log := logger.FromContext(ctx)

	category.Name = strings.TrimSpace(category.Name)
	if category.Name == "" {
		log.Error().Msg("category name is empty")
		return models.Category{}, ErrValidationEmptyName
	}

	created, err := s.categoryRepository.CreateCategory(ctx, category)
	if err != nil {
		log.Err(err).Str("name", category.Name).Msg("category creation ended with error")
		return models.Category{}, fmt.Errorf("category creation ended with error: %w", err)
	}

	return created, nil
}

func (s *categoryService) GetCategory(ctx context.Context, id int64) (models.Category, error) {
	log := logger.FromContext(ctx)

	category, err := s.categoryRepository.GetCategory(ctx, id)
	if err != nil {
		log.Err(err).Int64("category_id", id).Msg("category lookup failed")
		return models.Category{}, fmt.Errorf("category lookup failed: %w", err)
	}

	return category, nil
}

func (s *categoryService) ListCategories(ctx context.Context) ([]models.Category, error) {
	log := logger.FromContext(ctx)

	categories, err := s.categoryRepository.ListCategories(ctx)
	if err != nil {
		log.Err(err).Msg("category listing failed")
		return nil, fmt.Errorf("category listing failed: %w", err)
	}

	return categories, nil
}

func (s *categoryService) UpdateCategory(ctx context.Context, category models.Category) (models.Category, error) {
	log := logger.FromContext(ctx)

	category.Name = strings.TrimSpace(category.Name)
	if category.Name == "" {
		log.Error().Int64("category_id", category.ID).Msg("category name is empty")
		return models.Category{}, ErrValidationEmptyName
	}

	updated, err := s.categoryRepository.UpdateCategory(ctx, category)
	if err != nil {
		log.Err(err).Int64("category_id", category.ID).Msg("category update ended with error")
		return models.Category{}, fmt.Errorf("category update ended with error: %w", err)
	}

	return updated, nil
}

func (s *categoryService) DeleteCategory(ctx context.Context, id int64) error {
	log := logger.FromContext(ctx)

	if err := s.categoryRepository.DeleteCategory(ctx, id); err != nil {
		log.Err(err).Int64("category_id", id).Msg("category deletion ended with error")
		return fmt.Errorf("category deletion ended with error: %w", err)
	}

	return nil
}
