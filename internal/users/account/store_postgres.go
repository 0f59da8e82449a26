// Copyright (c) 2026 Alor Foundation. All rights reserved.

package account

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/alorfdn/alor/internal/platform/database/schema"
	"github.com/alorfdn/alor/internal/platform/dberr"
	"github.com/alorfdn/alor/internal/platform/sec"
	"github.com/alorfdn/alor/internal/users/auth"
)

// PostgresRepository implements Repository over pgxpool.
type PostgresRepository struct {
	db *pgxpool.Pool
}

// NewPostgresRepository creates a new Postgres-backed account Repository.
func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Password hashes are never hydrated here; admin listings have no use for them.
func listColumns() string {
	t := schema.UserAccount
	return fmt.Sprintf(
		"%s, %s, %s, COALESCE(%s, ''), %s, %s, COALESCE(%s, ''), %s, %s, %s",
		t.ID, t.Name, t.Email, t.Image, t.Role,
		t.Provider, t.ProviderID, t.LastLoginAt, t.CreatedAt, t.UpdatedAt,
	)
}

func scanAccount(row interface{ Scan(...any) error }) (*auth.User, error) {
	user := &auth.User{}
	err := row.Scan(
		&user.ID, &user.Name, &user.Email, &user.Image, &user.Role,
		&user.Provider, &user.ProviderID, &user.LastLoginAt,
		&user.CreatedAt, &user.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return user, nil
}

/*
List returns a page of accounts ordered by creation time, newest first.

Parameters:
  - context: context.Context
  - limit: int
  - offset: int

Returns:
  - []*auth.User: Page of accounts
  - int: Total account count
  - error: Retrieval failures
*/
func (repository *PostgresRepository) List(context context.Context, limit, offset int) ([]*auth.User, int, error) {
	t := schema.UserAccount

	countQuery := fmt.Sprintf(`SELECT count(*) FROM %s`, t.Table)
	var total int
	if err := repository.db.QueryRow(context, countQuery).Scan(&total); err != nil {
		return nil, 0, dberr.Wrap(err, "count_users")
	}

	query := fmt.Sprintf(`
		SELECT %s
		FROM %s
		ORDER BY %s DESC
		LIMIT $1 OFFSET $2
	`, listColumns(), t.Table, t.CreatedAt)

	rows, err := repository.db.Query(context, query, limit, offset)
	if err != nil {
		return nil, 0, dberr.Wrap(err, "list_users")
	}
	defer rows.Close()

	var users []*auth.User
	for rows.Next() {
		user, err := scanAccount(rows)
		if err != nil {
			return nil, 0, dberr.Wrap(err, "scan_user")
		}
		users = append(users, user)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, dberr.Wrap(err, "list_users")
	}

	return users, total, nil
}

/*
UpdateRole replaces the role of the given account.

Parameters:
  - context: context.Context
  - userID: string
  - role: sec.UserRole

Returns:
  - *auth.User: Updated entity
  - error: NotFound or persistence failures
*/
func (repository *PostgresRepository) UpdateRole(context context.Context, userID string, role sec.UserRole) (*auth.User, error) {
	t := schema.UserAccount
	query := fmt.Sprintf(`
		UPDATE %s
		SET %s = $2, %s = NOW()
		WHERE %s = $1
		RETURNING %s
	`, t.Table, t.Role, t.UpdatedAt, t.ID, listColumns())

	user, err := scanAccount(repository.db.QueryRow(context, query, userID, role))
	if err != nil {
		return nil, dberr.Wrap(err, "update_user_role")
	}
	return user, nil
}
