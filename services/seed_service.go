package services

import (
	"context"
	"database/sql"
	"fmt"
	"log"

	"github.com/akinalp/djchat/database"
	"github.com/akinalp/djchat/models"
	"github.com/akinalp/djchat/repository"
	"golang.org/x/crypto/bcrypt"
)

// DemoPassword, seed edilen demo kullanıcıların şifresi. Sadece geliştirme içindir.
const DemoPassword = "demo-password"

// SeedService, geliştirme ortamı için örnek veri yükler.
type SeedService interface {
	// SeedDemo, servers tablosu boşsa demo veriyi tek transaction'da ekler.
	// Veri zaten varsa hiçbir şey yapmaz; seeded=false döner.
	SeedDemo(ctx context.Context) (seeded bool, err error)
}

type seedService struct {
	db *sql.DB
}

// NewSeedService, constructor. Repository'ler transaction içinde tx ile kurulur,
// bu yüzden service doğrudan *sql.DB alır.
func NewSeedService(db *sql.DB) SeedService {
	return &seedService{db: db}
}

type demoServer struct {
	name     string
	category string
	owner    string
	members  []string
}

// Demo senaryo:
//
//	alice, bob
//	Gaming, Education
//	"Retro Arcade" (Gaming)    üyeler: alice, bob
//	"Go Study Hall" (Education) üyeler: alice
var (
	demoUsers      = []string{"alice", "bob"}
	demoCategories = []string{"Gaming", "Education"}
	demoServers    = []demoServer{
		{name: "Retro Arcade", category: "Gaming", owner: "alice", members: []string{"alice", "bob"}},
		{name: "Go Study Hall", category: "Education", owner: "alice", members: []string{"alice"}},
	}
)

func (s *seedService) SeedDemo(ctx context.Context) (bool, error) {
	count, err := repository.NewSQLiteServerRepo(s.db).Count(ctx)
	if err != nil {
		return false, err
	}
	if count > 0 {
		log.Printf("[seed] %d servers already present, skipping demo data", count)
		return false, nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(DemoPassword), bcryptCost)
	if err != nil {
		return false, fmt.Errorf("failed to hash demo password: %w", err)
	}

	err = database.WithTx(ctx, s.db, func(tx *sql.Tx) error {
		users := repository.NewSQLiteUserRepo(tx)
		categories := repository.NewSQLiteCategoryRepo(tx)
		servers := repository.NewSQLiteServerRepo(tx)

		userIDs := make(map[string]string, len(demoUsers))
		for _, username := range demoUsers {
			u := &models.User{Username: username, PasswordHash: string(hash)}
			if err := users.Create(ctx, u); err != nil {
				return fmt.Errorf("seed user %s: %w", username, err)
			}
			userIDs[username] = u.ID
		}

		categoryIDs := make(map[string]int64, len(demoCategories))
		for _, name := range demoCategories {
			c := &models.Category{Name: name}
			if err := categories.Create(ctx, c); err != nil {
				return fmt.Errorf("seed category %s: %w", name, err)
			}
			categoryIDs[name] = c.ID
		}

		for _, ds := range demoServers {
			srv := &models.Server{
				Name:       ds.name,
				OwnerID:    userIDs[ds.owner],
				CategoryID: categoryIDs[ds.category],
			}
			if err := servers.Create(ctx, srv); err != nil {
				return fmt.Errorf("seed server %s: %w", ds.name, err)
			}
			for _, m := range ds.members {
				if err := servers.AddMember(ctx, srv.ID, userIDs[m]); err != nil {
					return fmt.Errorf("seed member %s → %s: %w", m, ds.name, err)
				}
			}
		}

		return nil
	})
	if err != nil {
		return false, err
	}

	log.Printf("[seed] demo data inserted (%d users, %d categories, %d servers)",
		len(demoUsers), len(demoCategories), len(demoServers))
	return true, nil
}
