// Package repository — ServerRepository'nin SQLite implementasyonu.
//
// servers + categories + server_members tabloları.
// Sorgular her çağrıda ServerFilter'dan yeniden üretilir (buildServerWhere).
package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/akinalp/djchat/database"
	"github.com/akinalp/djchat/models"
	"github.com/akinalp/djchat/pkg"
)

type sqliteServerRepo struct {
	db database.TxQuerier
}

// NewSQLiteServerRepo, constructor.
func NewSQLiteServerRepo(db database.TxQuerier) ServerRepository {
	return &sqliteServerRepo{db: db}
}

// buildServerWhere, filtreden WHERE clause'u ve argümanlarını üretir.
// Sorguda "s" servers, "c" categories alias'ıdır.
func buildServerWhere(f ServerFilter) (string, []any) {
	var conds []string
	var args []any

	if f.CategoryName != nil {
		// SQLite "=" operatörü TEXT için varsayılan BINARY collation ile
		// büyük/küçük harf duyarlıdır — "gaming" "Gaming" ile eşleşmez.
		conds = append(conds, "c.name = ?")
		args = append(args, *f.CategoryName)
	}
	if f.MemberID != nil {
		conds = append(conds, "EXISTS (SELECT 1 FROM server_members m WHERE m.server_id = s.id AND m.user_id = ?)")
		args = append(args, *f.MemberID)
	}
	if f.ServerID != nil {
		conds = append(conds, "s.id = ?")
		args = append(args, *f.ServerID)
	}

	if len(conds) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}

func (r *sqliteServerRepo) List(ctx context.Context, filter ServerFilter) ([]models.Server, error) {
	var query strings.Builder
	query.WriteString(`
		SELECT s.id, s.name, s.owner_id, s.category_id, c.name, s.description, s.created_at`)
	if filter.WithNumMembers {
		query.WriteString(`,
			(SELECT COUNT(DISTINCT sm.user_id) FROM server_members sm WHERE sm.server_id = s.id)`)
	}
	query.WriteString(`
		FROM servers s
		INNER JOIN categories c ON c.id = s.category_id`)

	where, args := buildServerWhere(filter)
	query.WriteString(where)
	query.WriteString(" ORDER BY s.id ASC")

	if filter.Limit != nil {
		if *filter.Limit < 0 {
			return nil, fmt.Errorf("%w: negative limit", pkg.ErrBadRequest)
		}
		query.WriteString(" LIMIT ?")
		args = append(args, *filter.Limit)
	}

	rows, err := r.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list servers: %w", err)
	}
	defer rows.Close()

	servers := []models.Server{}
	for rows.Next() {
		var s models.Server
		dest := []any{&s.ID, &s.Name, &s.OwnerID, &s.CategoryID, &s.Category, &s.Description, &s.CreatedAt}

		var numMembers int
		if filter.WithNumMembers {
			dest = append(dest, &numMembers)
		}

		if err := rows.Scan(dest...); err != nil {
			return nil, fmt.Errorf("failed to scan server row: %w", err)
		}
		if filter.WithNumMembers {
			n := numMembers
			s.NumMembers = &n
		}
		servers = append(servers, s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating server rows: %w", err)
	}

	if err := r.attachMembers(ctx, servers); err != nil {
		return nil, err
	}

	return servers, nil
}

// attachMembers, listelenen sunucuların üye id'lerini tek sorguyla doldurur.
// N sunucu için N ayrı sorgu yerine IN (...) kullanılır.
func (r *sqliteServerRepo) attachMembers(ctx context.Context, servers []models.Server) error {
	if len(servers) == 0 {
		return nil
	}

	index := make(map[int64]int, len(servers))
	placeholders := make([]string, len(servers))
	args := make([]any, len(servers))
	for i := range servers {
		servers[i].Members = []string{}
		index[servers[i].ID] = i
		placeholders[i] = "?"
		args[i] = servers[i].ID
	}

	query := `
		SELECT server_id, user_id FROM server_members
		WHERE server_id IN (` + strings.Join(placeholders, ", ") + `)
		ORDER BY joined_at ASC, user_id ASC`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to get server members: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var serverID int64
		var userID string
		if err := rows.Scan(&serverID, &userID); err != nil {
			return fmt.Errorf("failed to scan server member row: %w", err)
		}
		if i, ok := index[serverID]; ok {
			servers[i].Members = append(servers[i].Members, userID)
		}
	}

	if err := rows.Err(); err != nil {
		return fmt.Errorf("error iterating server member rows: %w", err)
	}

	return nil
}

func (r *sqliteServerRepo) Exists(ctx context.Context, filter ServerFilter) (bool, error) {
	where, args := buildServerWhere(filter)
	query := `
		SELECT EXISTS (
			SELECT 1 FROM servers s
			INNER JOIN categories c ON c.id = s.category_id` + where + `
		)`

	var exists bool
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check server existence: %w", err)
	}

	return exists, nil
}

func (r *sqliteServerRepo) Create(ctx context.Context, server *models.Server) error {
	query := `
		INSERT INTO servers (name, owner_id, category_id, description)
		VALUES (?, ?, ?, ?)
		RETURNING id, created_at`

	err := r.db.QueryRowContext(ctx, query,
		server.Name, server.OwnerID, server.CategoryID, server.Description,
	).Scan(&server.ID, &server.CreatedAt)

	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	return nil
}

func (r *sqliteServerRepo) AddMember(ctx context.Context, serverID int64, userID string) error {
	query := `INSERT OR IGNORE INTO server_members (server_id, user_id) VALUES (?, ?)`

	if _, err := r.db.ExecContext(ctx, query, serverID, userID); err != nil {
		return fmt.Errorf("failed to add server member: %w", err)
	}

	return nil
}

func (r *sqliteServerRepo) Count(ctx context.Context) (int, error) {
	var count int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM servers`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count servers: %w", err)
	}
	return count, nil
}
