// Copyright (c) 2026 Alor Foundation. All rights reserved.

package auth

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/alorfdn/alor/internal/platform/database/schema"
	"github.com/alorfdn/alor/internal/platform/dberr"
)

// PostgresRepository implements UserRepository over pgxpool.
type PostgresRepository struct {
	db *pgxpool.Pool
}

// NewPostgresRepository creates a new Postgres-backed UserRepository.
func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// selectColumns is the shared projection for hydrating a full User.
// passwordhash is coalesced so provider accounts scan as an empty string.
func selectColumns() string {
	t := schema.UserAccount
	return fmt.Sprintf(
		"%s, %s, %s, COALESCE(%s, ''), COALESCE(%s, ''), %s, %s, COALESCE(%s, ''), %s, %s, %s",
		t.ID, t.Name, t.Email, t.Password, t.Image, t.Role,
		t.Provider, t.ProviderID, t.LastLoginAt, t.CreatedAt, t.UpdatedAt,
	)
}

func scanUser(row interface{ Scan(...any) error }) (*User, error) {
	user := &User{}
	err := row.Scan(
		&user.ID, &user.Name, &user.Email, &user.PasswordHash, &user.Image,
		&user.Role, &user.Provider, &user.ProviderID, &user.LastLoginAt,
		&user.CreatedAt, &user.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return user, nil
}

/*
FindByID returns the account with the given ID.

Parameters:
  - context: context.Context
  - id: string

Returns:
  - *User: Hydrated entity
  - error: apperr.NotFound or retrieval failures
*/
func (repository *PostgresRepository) FindByID(context context.Context, id string) (*User, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1`,
		selectColumns(), schema.UserAccount.Table, schema.UserAccount.ID,
	)

	user, err := scanUser(repository.db.QueryRow(context, query, id))
	if err != nil {
		return nil, dberr.Wrap(err, "find_user_by_id")
	}
	return user, nil
}

/*
FindByEmail returns the account with the given email.

Parameters:
  - context: context.Context
  - email: string

Returns:
  - *User: Hydrated entity
  - error: apperr.NotFound or retrieval failures
*/
func (repository *PostgresRepository) FindByEmail(context context.Context, email string) (*User, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE lower(%s) = lower($1)`,
		selectColumns(), schema.UserAccount.Table, schema.UserAccount.Email,
	)

	user, err := scanUser(repository.db.QueryRow(context, query, email))
	if err != nil {
		return nil, dberr.Wrap(err, "find_user_by_email")
	}
	return user, nil
}

/*
Create persists a brand-new user account.

Parameters:
  - context: context.Context
  - user: *User

Returns:
  - error: apperr.Conflict on duplicate email, or persistence failures
*/
func (repository *PostgresRepository) Create(context context.Context, user *User) error {
	t := schema.UserAccount
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, NULLIF($4, ''), $5, $6, $7, $8, $9, NOW(), NOW())
		RETURNING %s, %s
	`,
		t.Table, t.ID, t.Name, t.Email, t.Password, t.Image, t.Role,
		t.Provider, t.ProviderID, t.LastLoginAt, t.CreatedAt, t.UpdatedAt,
		t.CreatedAt, t.UpdatedAt,
	)

	err := repository.db.QueryRow(context, query,
		user.ID, user.Name, user.Email, user.PasswordHash, user.Image,
		user.Role, user.Provider, user.ProviderID, user.LastLoginAt,
	).Scan(&user.CreatedAt, &user.UpdatedAt)

	return dberr.Wrap(err, "create_user")
}

/*
UpdateLastLogin records the time of a successful sign-in.

Parameters:
  - context: context.Context
  - userID: string
  - at: time.Time

Returns:
  - error: Persistence failures
*/
func (repository *PostgresRepository) UpdateLastLogin(context context.Context, userID string, at time.Time) error {
	t := schema.UserAccount
	query := fmt.Sprintf(`UPDATE %s SET %s = $2, %s = NOW() WHERE %s = $1`,
		t.Table, t.LastLoginAt, t.UpdatedAt, t.ID,
	)

	cmd, err := repository.db.Exec(context, query, userID, at)
	if err != nil {
		return dberr.Wrap(err, "update_last_login")
	}
	if cmd.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}

/*
UpdatePassword replaces only the user's password hash.

Parameters:
  - context: context.Context
  - userID: string
  - newHash: string

Returns:
  - error: Persistence failures
*/
func (repository *PostgresRepository) UpdatePassword(context context.Context, userID, newHash string) error {
	t := schema.UserAccount
	query := fmt.Sprintf(`UPDATE %s SET %s = $2, %s = NOW() WHERE %s = $1`,
		t.Table, t.Password, t.UpdatedAt, t.ID,
	)

	cmd, err := repository.db.Exec(context, query, userID, newHash)
	if err != nil {
		return dberr.Wrap(err, "update_password")
	}
	if cmd.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}

/*
IdentityExists reports whether the account row still exists.

Parameters:
  - context: context.Context
  - userID: string

Returns:
  - bool: Existence flag
  - error: Retrieval failures
*/
func (repository *PostgresRepository) IdentityExists(context context.Context, userID string) (bool, error) {
	query := fmt.Sprintf(`SELECT EXISTS(SELECT 1 FROM %s WHERE %s = $1)`,
		schema.UserAccount.Table, schema.UserAccount.ID,
	)

	var exists bool
	if err := repository.db.QueryRow(context, query, userID).Scan(&exists); err != nil {
		return false, dberr.Wrap(err, "identity_exists")
	}
	return exists, nil
}
