// Copyright (c) 2026 Alor Foundation. All rights reserved.

package team

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/alorfdn/alor/internal/platform/database/schema"
	"github.com/alorfdn/alor/internal/platform/dberr"
)

// PostgresRepository implements Repository over pgxpool.
type PostgresRepository struct {
	db *pgxpool.Pool
}

// NewPostgresRepository creates a new Postgres-backed team Repository.
func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// selectColumns returns the scan-ready column list for member rows.
func selectColumns() string {
	t := schema.ContentTeamMember
	return fmt.Sprintf(
		"%s, %s, %s, %s, COALESCE(%s, ''), COALESCE(%s, ''), COALESCE(%s, ''), %s, %s, %s, %s",
		t.ID, t.Name, t.Designation, t.Photo, t.Email, t.Phone, t.Bio,
		t.SortOrder, t.IsActive, t.CreatedAt, t.UpdatedAt,
	)
}

// scanMember scans one member row in selectColumns order.
func scanMember(row interface{ Scan(...any) error }) (*Member, error) {
	member := &Member{}
	err := row.Scan(
		&member.ID, &member.Name, &member.Designation, &member.Photo,
		&member.Email, &member.Phone, &member.Bio,
		&member.SortOrder, &member.IsActive, &member.CreatedAt, &member.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return member, nil
}

func (repository *PostgresRepository) Create(context context.Context, member *Member) error {
	t := schema.ContentTeamMember
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, NULLIF($5, ''), NULLIF($6, ''), NULLIF($7, ''), $8, $9, NOW(), NOW())
		RETURNING %s, %s
	`, t.Table, t.ID, t.Name, t.Designation, t.Photo, t.Email, t.Phone, t.Bio,
		t.SortOrder, t.IsActive, t.CreatedAt, t.UpdatedAt,
		t.CreatedAt, t.UpdatedAt)

	err := repository.db.QueryRow(context, query,
		member.ID, member.Name, member.Designation, member.Photo,
		member.Email, member.Phone, member.Bio, member.SortOrder, member.IsActive,
	).Scan(&member.CreatedAt, &member.UpdatedAt)
	return dberr.Wrap(err, "create_team_member")
}

func (repository *PostgresRepository) ListActive(context context.Context, limit, offset int) ([]*Member, int, error) {
	t := schema.ContentTeamMember
	where := fmt.Sprintf("WHERE %s = TRUE", t.IsActive)
	return repository.queryMembers(context, where, limit, offset)
}

func (repository *PostgresRepository) ListAll(context context.Context, limit, offset int) ([]*Member, int, error) {
	return repository.queryMembers(context, "", limit, offset)
}

func (repository *PostgresRepository) queryMembers(context context.Context, where string, limit, offset int) ([]*Member, int, error) {
	t := schema.ContentTeamMember

	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM %s %s", t.Table, where)
	var total int
	if err := repository.db.QueryRow(context, countQuery).Scan(&total); err != nil {
		return nil, 0, dberr.Wrap(err, "count_team_members")
	}

	query := fmt.Sprintf(`
		SELECT %s
		FROM %s
		%s
		ORDER BY %s ASC, %s DESC
		LIMIT $1 OFFSET $2
	`, selectColumns(), t.Table, where, t.SortOrder, t.CreatedAt)

	rows, err := repository.db.Query(context, query, limit, offset)
	if err != nil {
		return nil, 0, dberr.Wrap(err, "list_team_members")
	}
	defer rows.Close()

	var members []*Member
	for rows.Next() {
		member, err := scanMember(rows)
		if err != nil {
			return nil, 0, dberr.Wrap(err, "scan_team_member")
		}
		members = append(members, member)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, dberr.Wrap(err, "list_team_members")
	}

	return members, total, nil
}

func (repository *PostgresRepository) GetByID(context context.Context, id string) (*Member, error) {
	t := schema.ContentTeamMember
	query := fmt.Sprintf(`
		SELECT %s
		FROM %s
		WHERE %s = $1
	`, selectColumns(), t.Table, t.ID)

	member, err := scanMember(repository.db.QueryRow(context, query, id))
	if err != nil {
		return nil, dberr.Wrap(err, "get_team_member")
	}
	return member, nil
}

func (repository *PostgresRepository) Update(context context.Context, id string, input UpdateInput) (*Member, error) {
	t := schema.ContentTeamMember

	// COALESCE leaves columns untouched when the caller passes nil.
	query := fmt.Sprintf(`
		UPDATE %s
		SET %s = COALESCE($2, %s),
		    %s = COALESCE($3, %s),
		    %s = COALESCE($4, %s),
		    %s = COALESCE($5, %s),
		    %s = COALESCE($6, %s),
		    %s = COALESCE($7, %s),
		    %s = COALESCE($8, %s),
		    %s = COALESCE($9, %s),
		    %s = NOW()
		WHERE %s = $1
		RETURNING %s
	`, t.Table,
		t.Name, t.Name,
		t.Designation, t.Designation,
		t.Photo, t.Photo,
		t.Email, t.Email,
		t.Phone, t.Phone,
		t.Bio, t.Bio,
		t.SortOrder, t.SortOrder,
		t.IsActive, t.IsActive,
		t.UpdatedAt, t.ID, selectColumns())

	member, err := scanMember(repository.db.QueryRow(context, query, id,
		input.Name, input.Designation, input.Photo, input.Email,
		input.Phone, input.Bio, input.SortOrder, input.IsActive))
	if err != nil {
		return nil, dberr.Wrap(err, "update_team_member")
	}
	return member, nil
}

func (repository *PostgresRepository) Delete(context context.Context, id string) error {
	t := schema.ContentTeamMember
	query := fmt.Sprintf("DELETE FROM %s WHERE %s = $1", t.Table, t.ID)

	tag, err := repository.db.Exec(context, query, id)
	if err != nil {
		return dberr.Wrap(err, "delete_team_member")
	}
	if tag.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}
