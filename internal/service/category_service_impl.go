package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/felixgrant/punchcard/internal/domain"
	"github.com/felixgrant/punchcard/internal/repository"
	"github.com/google/uuid"
)

// Limits match the Discord command surface: names fit in choice labels,
// descriptions in an embed line.
const (
	maxCategoryNameLen = 50
	maxCategoryDescLen = 200
)

var ErrDuplicateCategory = errors.New("attendance type already exists")

type categoryService struct {
	categories repository.CategoryRepo
	logger     *slog.Logger
	now        func() time.Time
}

func NewCategoryService(categories repository.CategoryRepo, logger *slog.Logger) CategoryService {
	return &categoryService{
		categories: categories,
		logger:     logger,
		now:        func() time.Time { return time.Now().UTC() },
	}
}

func (s *categoryService) List(ctx context.Context, activeOnly bool) ([]*domain.Category, error) {
	return s.categories.List(ctx, activeOnly)
}

func (s *categoryService) GetByName(ctx context.Context, name string) (*domain.Category, error) {
	return s.categories.GetByName(ctx, name)
}

func (s *categoryService) Create(ctx context.Context, name, description string) (*domain.Category, error) {
	name = strings.TrimSpace(name)
	description = strings.TrimSpace(description)

	if name == "" {
		return nil, &ValidationError{Reason: "Attendance type name cannot be empty."}
	}
	if utf8.RuneCountInString(name) > maxCategoryNameLen {
		return nil, &ValidationError{Reason: fmt.Sprintf("Attendance type name must be %d characters or less.", maxCategoryNameLen)}
	}
	if utf8.RuneCountInString(description) > maxCategoryDescLen {
		return nil, &ValidationError{Reason: fmt.Sprintf("Description must be %d characters or less.", maxCategoryDescLen)}
	}

	if _, err := s.categories.GetByName(ctx, name); err == nil {
		return nil, fmt.Errorf("%q: %w", name, ErrDuplicateCategory)
	} else if !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}

	category := &domain.Category{
		ID:          uuid.New().String(),
		Name:        name,
		Description: description,
		Active:      true,
		CreatedAt:   s.now(),
	}
	if err := s.categories.Create(ctx, category); err != nil {
		return nil, err
	}
	s.logger.Info("attendance type added", "name", name)
	return category, nil
}
