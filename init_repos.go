// Package main — Repository katmanı başlatma.
package main

import (
	"github.com/akinalp/djchat/database"
	"github.com/akinalp/djchat/repository"
)

// Repositories, tüm repository instance'larını tutan container struct.
type Repositories struct {
	User     repository.UserRepository
	Category repository.CategoryRepository
	Server   repository.ServerRepository
}

// initRepositories, SQLite implementasyonlarını oluşturur.
// db normalde *sql.DB'dir; testlerde de aynı bağlantı kullanılır.
func initRepositories(db database.TxQuerier) *Repositories {
	return &Repositories{
		User:     repository.NewSQLiteUserRepo(db),
		Category: repository.NewSQLiteCategoryRepo(db),
		Server:   repository.NewSQLiteServerRepo(db),
	}
}
