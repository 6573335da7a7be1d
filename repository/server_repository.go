// Package repository — ServerRepository interface ve ServerFilter.
//
// ServerFilter bir değer tipidir (value type): builder method'ları filtreyi
// yerinde değiştirmez, değiştirilmiş bir kopya döner. Her request kendi
// filtresini sıfırdan kurar — request'ler arasında paylaşılan bir
// "queryset" alanı yoktur.
package repository

//go:generate mockgen -destination=mocks/mock_server_repository.go -package=mocks -source=server_repository.go ServerRepository

import (
	"context"

	"github.com/akinalp/djchat/models"
)

// ServerFilter, sunucu listesi için opsiyonel kriterler.
// nil alan = o boyutta filtre yok. Tüm kriterler AND ile birleşir.
type ServerFilter struct {
	CategoryName   *string // Kategori adı, tam ve büyük/küçük harf duyarlı eşleşme
	MemberID       *string // Sadece bu kullanıcının üye olduğu sunucular
	ServerID       *int64  // Tek bir sunucu
	WithNumMembers bool    // Her sunucuya NumMembers (distinct üye sayısı) ekle
	Limit          *int    // Doğal sıradaki (id ASC) ilk N kayıt
}

// WithCategory, kategori adı filtresi eklenmiş kopya döner.
func (f ServerFilter) WithCategory(name string) ServerFilter {
	f.CategoryName = &name
	return f
}

// WithMember, üyelik filtresi eklenmiş kopya döner.
func (f ServerFilter) WithMember(userID string) ServerFilter {
	f.MemberID = &userID
	return f
}

// WithServerID, id filtresi eklenmiş kopya döner.
func (f ServerFilter) WithServerID(id int64) ServerFilter {
	f.ServerID = &id
	return f
}

// WithMemberCount, üye sayısı annotation'ı açılmış kopya döner.
func (f ServerFilter) WithMemberCount() ServerFilter {
	f.WithNumMembers = true
	return f
}

// WithLimit, limit uygulanmış kopya döner.
func (f ServerFilter) WithLimit(n int) ServerFilter {
	f.Limit = &n
	return f
}

// ServerRepository, sunucu veritabanı işlemleri için interface.
type ServerRepository interface {
	// List, filtreye uyan sunucuları doğal sırada (id ASC) döner.
	// Sonuç yoksa boş slice döner, hata değil.
	List(ctx context.Context, filter ServerFilter) ([]models.Server, error)

	// Exists, filtreye uyan en az bir sunucu olup olmadığını döner.
	// Limit ve WithNumMembers yoksayılır.
	Exists(ctx context.Context, filter ServerFilter) (bool, error)

	// Create, yeni sunucu ekler; ID ve CreatedAt doldurulur.
	Create(ctx context.Context, server *models.Server) error

	// AddMember, kullanıcıyı sunucuya üye yapar. Zaten üyeyse no-op.
	AddMember(ctx context.Context, serverID int64, userID string) error

	// Count, toplam sunucu sayısı.
	Count(ctx context.Context) (int, error)
}
