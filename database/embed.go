// Package database embed dosyası — migration SQL dosyalarını binary'ye gömer.
//
// Deploy edilen binary yanında migrations/ dizinine ihtiyaç duymaz.
package database

import (
	"embed"
	"io/fs"
)

//go:embed migrations/*.sql
var embeddedMigrations embed.FS

// Migrations, migrations/ alt dizinini kök olarak gösteren fs.FS döner.
// database.New(path, database.Migrations()) şeklinde kullanılır.
func Migrations() fs.FS {
	sub, err := fs.Sub(embeddedMigrations, "migrations")
	if err != nil {
		// "migrations" sabit ve derleme zamanında gömülü — buraya düşmek build hatasıdır.
		panic(err)
	}
	return sub
}
