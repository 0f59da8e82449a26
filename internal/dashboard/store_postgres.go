// Copyright (c) 2026 Alor Foundation. All rights reserved.

package dashboard

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/alorfdn/alor/internal/platform/database/schema"
	"github.com/alorfdn/alor/internal/platform/dberr"
	"github.com/alorfdn/alor/internal/platform/sec"
)

// PostgresRepository implements Repository over pgxpool.
type PostgresRepository struct {
	db *pgxpool.Pool
}

// NewPostgresRepository creates a new Postgres-backed dashboard Repository.
func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (repository *PostgresRepository) CountUsers(context context.Context) (int, error) {
	t := schema.UserAccount
	query := fmt.Sprintf("SELECT COUNT(*) FROM %s", t.Table)
	return repository.count(context, query)
}

func (repository *PostgresRepository) CountAdmins(context context.Context) (int, error) {
	t := schema.UserAccount
	query := fmt.Sprintf("SELECT COUNT(*) FROM %s WHERE %s = $1", t.Table, t.Role)
	return repository.count(context, query, string(sec.RoleAdmin))
}

func (repository *PostgresRepository) CountUsersActiveSince(context context.Context, since time.Time) (int, error) {
	t := schema.UserAccount
	query := fmt.Sprintf("SELECT COUNT(*) FROM %s WHERE %s >= $1", t.Table, t.LastLoginAt)
	return repository.count(context, query, since)
}

func (repository *PostgresRepository) CountUsersCreatedSince(context context.Context, since time.Time) (int, error) {
	t := schema.UserAccount
	query := fmt.Sprintf("SELECT COUNT(*) FROM %s WHERE %s >= $1", t.Table, t.CreatedAt)
	return repository.count(context, query, since)
}

func (repository *PostgresRepository) CountUnreadMessages(context context.Context) (int, error) {
	t := schema.ContactMessage
	query := fmt.Sprintf("SELECT COUNT(*) FROM %s WHERE %s = FALSE", t.Table, t.IsRead)
	return repository.count(context, query)
}

func (repository *PostgresRepository) count(context context.Context, query string, args ...any) (int, error) {
	var total int
	if err := repository.db.QueryRow(context, query, args...).Scan(&total); err != nil {
		return 0, dberr.Wrap(err, "dashboard_count")
	}
	return total, nil
}

func (repository *PostgresRepository) RecentUsers(context context.Context, limit int) ([]RecentUser, error) {
	t := schema.UserAccount
	query := fmt.Sprintf(`
		SELECT %s, %s, %s
		FROM %s
		ORDER BY %s DESC
		LIMIT $1
	`, t.Name, t.CreatedAt, t.LastLoginAt, t.Table, t.CreatedAt)

	rows, err := repository.db.Query(context, query, limit)
	if err != nil {
		return nil, dberr.Wrap(err, "dashboard_recent_users")
	}
	defer rows.Close()

	var users []RecentUser
	for rows.Next() {
		var user RecentUser
		if err := rows.Scan(&user.Name, &user.CreatedAt, &user.LastLoginAt); err != nil {
			return nil, dberr.Wrap(err, "scan_dashboard_recent_user")
		}
		users = append(users, user)
	}
	if err := rows.Err(); err != nil {
		return nil, dberr.Wrap(err, "dashboard_recent_users")
	}

	return users, nil
}
