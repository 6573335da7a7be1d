// Package services — ServerService: sunucu listesi sorgu mantığı.
//
// List, query parametrelerini sırayla bir ServerFilter'a çevirir:
//
//	category → by_user → with_num_members → by_serverid → qty
//
// Sıra önemlidir: by_serverid varlık kontrolü o ana kadar kurulmuş filtre
// üzerinde yapılır, qty ise her zaman en son (pozisyonel kesme olarak) uygulanır.
// Filtre her çağrıda sıfırdan kurulur; service struct'ında request'e ait durum tutulmaz.
package services

import (
	"context"
	"fmt"
	"strconv"

	"github.com/akinalp/djchat/models"
	"github.com/akinalp/djchat/pkg"
	"github.com/akinalp/djchat/repository"
)

// ErrAuthenticationRequired, kimlik gerektiren bir filtre (by_user, by_serverid)
// anonim bir istekte kullanıldığında döner. pkg.ErrUnauthorized'ı wrap eder → 401.
var ErrAuthenticationRequired = fmt.Errorf("%w: authentication credentials were not provided", pkg.ErrUnauthorized)

// Validation detay mesajları — client'lar bu metinleri birebir karşılaştırır.
const (
	msgServerValueError   = "Server value error"
	msgServerNotFoundFmt  = "Server with id %s not found"
	msgQuantityValueError = "Quantity value error"
)

// ServerService, sunucu listesi için interface.
type ServerService interface {
	// List, parametrelere göre filtrelenmiş sunucuları döner.
	// viewer nil ise istek anonimdir.
	List(ctx context.Context, params models.ServerListParams, viewer *models.User) ([]models.Server, error)
}

type serverService struct {
	serverRepo repository.ServerRepository
}

// NewServerService, constructor.
func NewServerService(serverRepo repository.ServerRepository) ServerService {
	return &serverService{serverRepo: serverRepo}
}

func (s *serverService) List(ctx context.Context, params models.ServerListParams, viewer *models.User) ([]models.Server, error) {
	filter := repository.ServerFilter{}

	// 1. Kategori — tam eşleşme
	if params.Category != "" {
		filter = filter.WithCategory(params.Category)
	}

	// 2. Kullanıcının üye olduğu sunucular — kimlik zorunlu, anonimse hemen dön
	if params.ByUser.On() {
		if viewer == nil {
			return nil, ErrAuthenticationRequired
		}
		filter = filter.WithMember(viewer.ID)
	}

	// 3. Üye sayısı annotation'ı
	if params.WithNumMembers.On() {
		filter = filter.WithMemberCount()
	}

	// 4. Tek sunucu — kimlik zorunlu, id o ana kadarki filtre içinde var olmalı
	if params.ByServerID != "" {
		if viewer == nil {
			return nil, ErrAuthenticationRequired
		}

		id, err := strconv.ParseInt(params.ByServerID, 10, 64)
		if err != nil {
			return nil, pkg.NewValidationError(msgServerValueError)
		}
		filter = filter.WithServerID(id)

		exists, err := s.serverRepo.Exists(ctx, filter)
		if err != nil {
			return nil, err
		}
		if !exists {
			// Mesajda client'ın gönderdiği ham değer kullanılır ("007" → "007")
			return nil, pkg.NewValidationError(fmt.Sprintf(msgServerNotFoundFmt, params.ByServerID))
		}
	}

	// 5. Adet — en son, doğal sıradaki ilk N
	if params.Qty != "" {
		n, err := strconv.Atoi(params.Qty)
		if err != nil || n < 0 {
			return nil, pkg.NewValidationError(msgQuantityValueError)
		}
		filter = filter.WithLimit(n)
	}

	return s.serverRepo.List(ctx, filter)
}
