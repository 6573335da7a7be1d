package services

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akinalp/djchat/database"
	"github.com/akinalp/djchat/models"
	"github.com/akinalp/djchat/repository"
)

func TestSeedService_SeedDemo(t *testing.T) {
	t.Parallel()

	db, err := database.New(filepath.Join(t.TempDir(), "seed.db"), database.Migrations())
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	ctx := context.Background()
	seed := NewSeedService(db.Conn)

	seeded, err := seed.SeedDemo(ctx)
	require.NoError(t, err)
	assert.True(t, seeded)

	// İkinci çağrı no-op
	seeded, err = seed.SeedDemo(ctx)
	require.NoError(t, err)
	assert.False(t, seeded)

	servers := NewServerService(repository.NewSQLiteServerRepo(db.Conn))

	all, err := servers.List(ctx, models.ServerListParams{WithNumMembers: models.FlagOn}, nil)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "Retro Arcade", all[0].Name)
	assert.Equal(t, "Gaming", all[0].Category)
	assert.Equal(t, 2, *all[0].NumMembers)
	assert.Equal(t, "Go Study Hall", all[1].Name)
	assert.Equal(t, 1, *all[1].NumMembers)

	bob, err := repository.NewSQLiteUserRepo(db.Conn).GetByUsername(ctx, "bob")
	require.NoError(t, err)

	mine, err := servers.List(ctx, models.ServerListParams{ByUser: models.FlagOn}, bob)
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, "Retro Arcade", mine[0].Name)

	auth := NewAuthService(repository.NewSQLiteUserRepo(db.Conn), testSecret, 15)
	_, err = auth.Login(ctx, &models.LoginRequest{Username: "alice", Password: DemoPassword})
	assert.NoError(t, err)
}
