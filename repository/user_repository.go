// Package repository, veritabanı erişim katmanını tanımlar.
//
// Service katmanı doğrudan SQL yazmaz — repository interface'leri üzerinden çalışır.
// Interface sayesinde service testleri gomock ile DB olmadan yazılabilir
// (bkz. repository/mocks).
package repository

//go:generate mockgen -destination=mocks/mock_user_repository.go -package=mocks -source=user_repository.go UserRepository

import (
	"context"

	"github.com/akinalp/djchat/models"
)

// UserRepository, kullanıcı veritabanı işlemleri için interface.
type UserRepository interface {
	// Create, kullanıcıyı ekler; ID (UUID) ve CreatedAt doldurulur.
	// Kullanıcı adı alınmışsa pkg.ErrAlreadyExists döner.
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id string) (*models.User, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
}
