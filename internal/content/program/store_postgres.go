// Copyright (c) 2026 Alor Foundation. All rights reserved.

package program

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

// NewPostgresRepository creates a new Postgres-backed program Repository.
func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// selectColumns returns the scan-ready column list for program rows.
func selectColumns() string {
	t := schema.ContentProgram
	return fmt.Sprintf(
		"%s, %s, %s, %s, COALESCE(%s, ''), %s, %s, %s, %s, COALESCE(%s, ''), COALESCE(%s, ''), %s, %s, %s, %s, %s",
		t.ID, t.Title, t.Description, t.Photo, t.YouTubeLink,
		t.Objectives, t.Beneficiaries, t.ExpenseCategories, t.Areas,
		t.Duration, t.Amount, t.GalleryImages, t.IsActive, t.SortOrder,
		t.CreatedAt, t.UpdatedAt,
	)
}

// scanProgram scans one program row in selectColumns order.
func scanProgram(row interface{ Scan(...any) error }) (*Program, error) {
	entity := &Program{}
	err := row.Scan(
		&entity.ID, &entity.Title, &entity.Description, &entity.Photo, &entity.YoutubeLink,
		&entity.Objectives, &entity.Beneficiaries, &entity.ExpenseCategories, &entity.Areas,
		&entity.Duration, &entity.Amount, &entity.GalleryImages,
		&entity.IsActive, &entity.SortOrder, &entity.CreatedAt, &entity.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	// API responses always carry arrays, never null.
	for _, list := range []*[]string{
		&entity.Objectives, &entity.Beneficiaries,
		&entity.ExpenseCategories, &entity.Areas, &entity.GalleryImages,
	} {
		if *list == nil {
			*list = []string{}
		}
	}
	return entity, nil
}

func (repository *PostgresRepository) Create(context context.Context, entity *Program) error {
	t := schema.ContentProgram
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, NULLIF($5, ''), $6, $7, $8, $9, NULLIF($10, ''), NULLIF($11, ''), $12, $13, $14, NOW(), NOW())
		RETURNING %s, %s
	`, t.Table, t.ID, t.Title, t.Description, t.Photo, t.YouTubeLink,
		t.Objectives, t.Beneficiaries, t.ExpenseCategories, t.Areas,
		t.Duration, t.Amount, t.GalleryImages, t.IsActive, t.SortOrder,
		t.CreatedAt, t.UpdatedAt,
		t.CreatedAt, t.UpdatedAt)

	err := repository.db.QueryRow(context, query,
		entity.ID, entity.Title, entity.Description, entity.Photo, entity.YoutubeLink,
		entity.Objectives, entity.Beneficiaries, entity.ExpenseCategories, entity.Areas,
		entity.Duration, entity.Amount, entity.GalleryImages, entity.IsActive, entity.SortOrder,
	).Scan(&entity.CreatedAt, &entity.UpdatedAt)
	return dberr.Wrap(err, "create_program")
}

func (repository *PostgresRepository) ListActive(context context.Context, limit, offset int) ([]*Program, int, error) {
	t := schema.ContentProgram
	where := fmt.Sprintf("WHERE %s = TRUE", t.IsActive)
	return repository.queryPrograms(context, where, limit, offset)
}

func (repository *PostgresRepository) ListAll(context context.Context, limit, offset int) ([]*Program, int, error) {
	return repository.queryPrograms(context, "", limit, offset)
}

func (repository *PostgresRepository) queryPrograms(context context.Context, where string, limit, offset int) ([]*Program, int, error) {
	t := schema.ContentProgram

	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM %s %s", t.Table, where)
	var total int
	if err := repository.db.QueryRow(context, countQuery).Scan(&total); err != nil {
		return nil, 0, dberr.Wrap(err, "count_programs")
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
		return nil, 0, dberr.Wrap(err, "list_programs")
	}
	defer rows.Close()

	var programs []*Program
	for rows.Next() {
		entity, err := scanProgram(rows)
		if err != nil {
			return nil, 0, dberr.Wrap(err, "scan_program")
		}
		programs = append(programs, entity)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, dberr.Wrap(err, "list_programs")
	}

	return programs, total, nil
}

func (repository *PostgresRepository) GetByID(context context.Context, id string) (*Program, error) {
	t := schema.ContentProgram
	query := fmt.Sprintf(`
		SELECT %s
		FROM %s
		WHERE %s = $1
	`, selectColumns(), t.Table, t.ID)

	entity, err := scanProgram(repository.db.QueryRow(context, query, id))
	if err != nil {
		return nil, dberr.Wrap(err, "get_program")
	}
	return entity, nil
}

func (repository *PostgresRepository) Update(context context.Context, id string, input UpdateInput) (*Program, error) {
	t := schema.ContentProgram

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
		    %s = COALESCE($10, %s),
		    %s = COALESCE($11, %s),
		    %s = COALESCE($12, %s),
		    %s = COALESCE($13, %s),
		    %s = COALESCE($14, %s),
		    %s = NOW()
		WHERE %s = $1
		RETURNING %s
	`, t.Table,
		t.Title, t.Title,
		t.Description, t.Description,
		t.Photo, t.Photo,
		t.YouTubeLink, t.YouTubeLink,
		t.Objectives, t.Objectives,
		t.Beneficiaries, t.Beneficiaries,
		t.ExpenseCategories, t.ExpenseCategories,
		t.Areas, t.Areas,
		t.Duration, t.Duration,
		t.Amount, t.Amount,
		t.GalleryImages, t.GalleryImages,
		t.IsActive, t.IsActive,
		t.SortOrder, t.SortOrder,
		t.UpdatedAt, t.ID, selectColumns())

	entity, err := scanProgram(repository.db.QueryRow(context, query, id,
		input.Title, input.Description, input.Photo, input.YoutubeLink,
		sliceParam(input.Objectives), sliceParam(input.Beneficiaries),
		sliceParam(input.ExpenseCategories), sliceParam(input.Areas),
		input.Duration, input.Amount, sliceParam(input.GalleryImages),
		input.IsActive, input.SortOrder))
	if err != nil {
		return nil, dberr.Wrap(err, "update_program")
	}
	return entity, nil
}

// sliceParam dereferences an optional string list for the driver; a nil
// pointer becomes SQL NULL so COALESCE keeps the stored value.
func sliceParam(values *[]string) any {
	if values == nil {
		return nil
	}
	return *values
}

func (repository *PostgresRepository) Delete(context context.Context, id string) error {
	t := schema.ContentProgram
	query := fmt.Sprintf("DELETE FROM %s WHERE %s = $1", t.Table, t.ID)

	tag, err := repository.db.Exec(context, query, id)
	if err != nil {
		return dberr.Wrap(err, "delete_program")
	}
	if tag.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}
