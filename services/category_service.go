package services

import (
	"context"

	"github.com/akinalp/djchat/models"
	"github.com/akinalp/djchat/repository"
)

// CategoryService, kategori listesi için interface.
type CategoryService interface {
	GetAll(ctx context.Context) ([]models.Category, error)
}

type categoryService struct {
	categoryRepo repository.CategoryRepository
}

// NewCategoryService, constructor.
func NewCategoryService(categoryRepo repository.CategoryRepository) CategoryService {
	return &categoryService{categoryRepo: categoryRepo}
}

func (s *categoryService) GetAll(ctx context.Context) ([]models.Category, error) {
	return s.categoryRepo.GetAll(ctx)
}
