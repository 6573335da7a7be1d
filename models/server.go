// Package models — Server domain modeli ve liste sorgu parametreleri.
package models

import (
	"net/url"
	"time"
)

// Server, bir sohbet sunucusunu temsil eder.
// DB'deki "servers" tablosu + kategori adı + üye listesi.
//
// NumMembers sadece with_num_members=true isteklerinde doldurulur;
// nil iken JSON'a hiç yazılmaz (omitempty), 0 iken "num_members": 0 yazılır.
type Server struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	OwnerID     string    `json:"owner"`
	CategoryID  int64     `json:"-"`
	Category    string    `json:"category"`
	Description *string   `json:"description"`
	Members     []string  `json:"member"`
	NumMembers  *int      `json:"num_members,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// QueryFlag, query string'deki boolean parametrelerin katı ayrıştırılmış hali.
//
// Sadece küçük harfli "true" literal'i FlagOn'dur. "True", "1", "yes",
// boş string ve parametrenin hiç olmaması FlagOff sayılır —
// strconv.ParseBool bilerek kullanılmaz.
type QueryFlag int

const (
	FlagOff QueryFlag = iota
	FlagOn
)

// ParseQueryFlag, ham query değerini QueryFlag'e çevirir.
func ParseQueryFlag(raw string) QueryFlag {
	if raw == "true" {
		return FlagOn
	}
	return FlagOff
}

// On, bayrağın açık olup olmadığını döner.
func (f QueryFlag) On() bool {
	return f == FlagOn
}

// ServerListParams, GET /api/server/select query parametreleri.
//
// String alanlar ham haliyle taşınır — sayısal ayrıştırma (qty, by_serverid)
// ve ona bağlı hata mesajları ServerService'in sorumluluğundadır.
// Boş string "parametre yok" ile aynı anlama gelir.
type ServerListParams struct {
	Category       string
	Qty            string
	ByUser         QueryFlag
	ByServerID     string
	WithNumMembers QueryFlag
}

// ParseServerListParams, URL query değerlerinden ServerListParams oluşturur.
// Aynı parametre birden fazla verilmişse ilk değer kullanılır (url.Values.Get).
func ParseServerListParams(q url.Values) ServerListParams {
	return ServerListParams{
		Category:       q.Get("category"),
		Qty:            q.Get("qty"),
		ByUser:         ParseQueryFlag(q.Get("by_user")),
		ByServerID:     q.Get("by_serverid"),
		WithNumMembers: ParseQueryFlag(q.Get("with_num_members")),
	}
}
