package repository

//go:generate mockgen -destination=mocks/mock_category_repository.go -package=mocks -source=category_repository.go CategoryRepository

import (
	"context"

	"github.com/akinalp/djchat/models"
)

// CategoryRepository, kategori veritabanı işlemleri için interface.
type CategoryRepository interface {
	Create(ctx context.Context, category *models.Category) error
	GetAll(ctx context.Context) ([]models.Category, error)
}
