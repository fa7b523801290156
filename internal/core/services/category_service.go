package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/SscSPs/fintrack/internal/apperrors"
	"github.com/SscSPs/fintrack/internal/core/domain"
	portsrepo "github.com/SscSPs/fintrack/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/fintrack/internal/core/ports/services"
	"github.com/SscSPs/fintrack/internal/dto"
	"github.com/google/uuid"
)

type categoryService struct {
	BaseService
	categoryRepo portsrepo.CategoryRepositoryFacade
}

// NewCategoryService creates the category service.
func NewCategoryService(categoryRepo portsrepo.CategoryRepositoryFacade) portssvc.CategorySvcFacade {
	return &categoryService{categoryRepo: categoryRepo}
}

var _ portssvc.CategorySvcFacade = (*categoryService)(nil)

func (s *categoryService) CreateCategory(ctx context.Context, userID string, req dto.CreateCategoryRequest) (*domain.Category, error) {
	color := req.Color
	if color == "" {
		color = domain.DefaultCategoryColor
	}

	category := domain.Category{
		CategoryID:  uuid.NewString(),
		UserID:      userID,
		Name:        strings.TrimSpace(req.Name),
		Type:        domain.CategoryType(strings.ToUpper(req.Type)),
		Color:       color,
		AuditFields: newAuditFields(userID, time.Now()),
	}
	if err := category.Validate(); err != nil {
		return nil, validationError(err)
	}

	if err := s.categoryRepo.SaveCategory(ctx, category); err != nil {
		s.LogError(ctx, err, "Failed to save category", slog.String("category_id", category.CategoryID))
		return nil, fmt.Errorf("failed to create category in service: %w", err)
	}

	s.LogInfo(ctx, "Category created successfully",
		slog.String("category_id", category.CategoryID),
		slog.String("type", string(category.Type)))
	return &category, nil
}

func (s *categoryService) GetCategoryByID(ctx context.Context, userID string, categoryID string) (*domain.Category, error) {
	category, err := s.categoryRepo.FindCategoryByID(ctx, categoryID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find category by ID", slog.String("category_id", categoryID))
		}
		return nil, err
	}
	if category.UserID != userID {
		return nil, apperrors.ErrNotFound
	}
	return category, nil
}

func (s *categoryService) ListCategories(ctx context.Context, userID string) ([]domain.Category, error) {
	categories, err := s.categoryRepo.ListCategoriesByUserID(ctx, userID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list categories")
		return nil, fmt.Errorf("failed to list categories for user %s: %w", userID, err)
	}
	if categories == nil {
		return []domain.Category{}, nil
	}
	return categories, nil
}

func (s *categoryService) UpdateCategory(ctx context.Context, userID string, categoryID string, req dto.UpdateCategoryRequest) (*domain.Category, error) {
	category, err := s.GetCategoryByID(ctx, userID, categoryID)
	if err != nil {
		return nil, err
	}

	updated := false
	if req.Name != nil && strings.TrimSpace(*req.Name) != category.Name {
		category.Name = strings.TrimSpace(*req.Name)
		updated = true
	}
	if req.Type != nil && domain.CategoryType(strings.ToUpper(*req.Type)) != category.Type {
		// Changing the type flips the sign of every transaction filed under it.
		category.Type = domain.CategoryType(strings.ToUpper(*req.Type))
		updated = true
	}
	if req.Color != nil && *req.Color != category.Color {
		category.Color = *req.Color
		updated = true
	}
	if !updated {
		return category, nil
	}
	if err := category.Validate(); err != nil {
		return nil, validationError(err)
	}

	category.LastUpdatedAt = time.Now()
	category.LastUpdatedBy = userID

	if err := s.categoryRepo.UpdateCategory(ctx, *category); err != nil {
		s.LogError(ctx, err, "Failed to update category", slog.String("category_id", categoryID))
		return nil, err
	}

	s.LogInfo(ctx, "Category updated successfully", slog.String("category_id", categoryID))
	return category, nil
}

func (s *categoryService) DeleteCategory(ctx context.Context, userID string, categoryID string) error {
	if _, err := s.GetCategoryByID(ctx, userID, categoryID); err != nil {
		return err
	}
	if err := s.categoryRepo.DeleteCategory(ctx, categoryID); err != nil {
		s.LogError(ctx, err, "Failed to delete category", slog.String("category_id", categoryID))
		return err
	}
	s.LogInfo(ctx, "Category deleted with its transactions", slog.String("category_id", categoryID))
	return nil
}
