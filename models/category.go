package models

import "time"

// Category, sunucuları gruplayan isimli kategori (ör: "Gaming", "Education").
// Birçok sunucu tek bir kategoriye bağlıdır.
type Category struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description *string   `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}
