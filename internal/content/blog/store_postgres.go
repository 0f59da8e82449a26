// Copyright (c) 2026 Alor Foundation. All rights reserved.

package blog

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

// NewPostgresRepository creates a new Postgres-backed blog Repository.
func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// selectColumns returns the scan-ready column list for blog rows.
// Nullable columns are coalesced so rows scan into plain Go strings.
func selectColumns() string {
	t := schema.ContentBlog
	return fmt.Sprintf(
		"%s, %s, %s, %s, COALESCE(%s, ''), %s, COALESCE(%s::text, ''), %s, %s, %s, %s",
		t.ID, t.Title, t.Slug, t.Description, t.VideoURL, t.Images,
		t.AuthorID, t.Status, t.Views, t.CreatedAt, t.UpdatedAt,
	)
}

// scanBlog scans one blog row in selectColumns order.
func scanBlog(row interface{ Scan(...any) error }) (*Blog, error) {
	post := &Blog{}
	err := row.Scan(
		&post.ID, &post.Title, &post.Slug, &post.Description, &post.VideoURL,
		&post.Images, &post.AuthorID, &post.Status, &post.Views,
		&post.CreatedAt, &post.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if post.Images == nil {
		post.Images = []string{}
	}
	return post, nil
}

func (repository *PostgresRepository) Create(context context.Context, post *Blog) error {
	t := schema.ContentBlog
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, NULLIF($5, ''), $6, NULLIF($7, '')::uuid, $8, 0, NOW(), NOW())
		RETURNING %s, %s, %s
	`, t.Table, t.ID, t.Title, t.Slug, t.Description, t.VideoURL, t.Images,
		t.AuthorID, t.Status, t.Views, t.CreatedAt, t.UpdatedAt,
		t.Views, t.CreatedAt, t.UpdatedAt)

	err := repository.db.QueryRow(context, query,
		post.ID, post.Title, post.Slug, post.Description, post.VideoURL,
		post.Images, post.AuthorID, post.Status,
	).Scan(&post.Views, &post.CreatedAt, &post.UpdatedAt)
	return dberr.Wrap(err, "create_blog")
}

func (repository *PostgresRepository) List(context context.Context, filter Filter, limit, offset int) ([]*Blog, int, error) {
	t := schema.ContentBlog

	where := ""
	args := []any{}
	if filter.Status != "" {
		where = fmt.Sprintf("WHERE %s = $1", t.Status)
		args = append(args, filter.Status)
	}

	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM %s %s", t.Table, where)
	var total int
	if err := repository.db.QueryRow(context, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, dberr.Wrap(err, "count_blogs")
	}

	query := fmt.Sprintf(`
		SELECT %s
		FROM %s
		%s
		ORDER BY %s DESC
		LIMIT $%d OFFSET $%d
	`, selectColumns(), t.Table, where, t.CreatedAt, len(args)+1, len(args)+2)
	args = append(args, limit, offset)

	rows, err := repository.db.Query(context, query, args...)
	if err != nil {
		return nil, 0, dberr.Wrap(err, "list_blogs")
	}
	defer rows.Close()

	var posts []*Blog
	for rows.Next() {
		post, err := scanBlog(rows)
		if err != nil {
			return nil, 0, dberr.Wrap(err, "scan_blog")
		}
		posts = append(posts, post)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, dberr.Wrap(err, "list_blogs")
	}

	return posts, total, nil
}

func (repository *PostgresRepository) GetByID(context context.Context, id string) (*Blog, error) {
	t := schema.ContentBlog
	query := fmt.Sprintf(`
		SELECT %s
		FROM %s
		WHERE %s = $1
	`, selectColumns(), t.Table, t.ID)

	post, err := scanBlog(repository.db.QueryRow(context, query, id))
	if err != nil {
		return nil, dberr.Wrap(err, "get_blog")
	}
	return post, nil
}

func (repository *PostgresRepository) GetBySlug(context context.Context, slug string) (*Blog, error) {
	t := schema.ContentBlog
	query := fmt.Sprintf(`
		SELECT %s
		FROM %s
		WHERE %s = $1
	`, selectColumns(), t.Table, t.Slug)

	post, err := scanBlog(repository.db.QueryRow(context, query, slug))
	if err != nil {
		return nil, dberr.Wrap(err, "get_blog_by_slug")
	}
	return post, nil
}

func (repository *PostgresRepository) IncrementViews(context context.Context, id string) (int, error) {
	t := schema.ContentBlog
	query := fmt.Sprintf(`
		UPDATE %s
		SET %s = %s + 1
		WHERE %s = $1
		RETURNING %s
	`, t.Table, t.Views, t.Views, t.ID, t.Views)

	var views int
	if err := repository.db.QueryRow(context, query, id).Scan(&views); err != nil {
		return 0, dberr.Wrap(err, "increment_blog_views")
	}
	return views, nil
}

func (repository *PostgresRepository) Update(context context.Context, id string, input UpdateInput) (*Blog, error) {
	t := schema.ContentBlog

	// COALESCE leaves columns untouched when the caller passes nil.
	query := fmt.Sprintf(`
		UPDATE %s
		SET %s = COALESCE($2, %s),
		    %s = COALESCE($3, %s),
		    %s = COALESCE($4, %s),
		    %s = COALESCE($5, %s),
		    %s = COALESCE($6, %s),
		    %s = NOW()
		WHERE %s = $1
		RETURNING %s
	`, t.Table,
		t.Title, t.Title,
		t.Description, t.Description,
		t.VideoURL, t.VideoURL,
		t.Images, t.Images,
		t.Status, t.Status,
		t.UpdatedAt, t.ID, selectColumns())

	var images any
	if input.Images != nil {
		images = *input.Images
	}

	post, err := scanBlog(repository.db.QueryRow(context, query, id,
		input.Title, input.Description, input.VideoURL, images, input.Status))
	if err != nil {
		return nil, dberr.Wrap(err, "update_blog")
	}
	return post, nil
}

func (repository *PostgresRepository) ToggleStatus(context context.Context, id string) (*Blog, error) {
	t := schema.ContentBlog
	query := fmt.Sprintf(`
		UPDATE %s
		SET %s = CASE WHEN %s = '%s' THEN '%s' ELSE '%s' END,
		    %s = NOW()
		WHERE %s = $1
		RETURNING %s
	`, t.Table,
		t.Status, t.Status, StatusPublished, StatusDraft, StatusPublished,
		t.UpdatedAt, t.ID, selectColumns())

	post, err := scanBlog(repository.db.QueryRow(context, query, id))
	if err != nil {
		return nil, dberr.Wrap(err, "toggle_blog_status")
	}
	return post, nil
}

func (repository *PostgresRepository) Delete(context context.Context, id string) error {
	t := schema.ContentBlog
	query := fmt.Sprintf("DELETE FROM %s WHERE %s = $1", t.Table, t.ID)

	tag, err := repository.db.Exec(context, query, id)
	if err != nil {
		return dberr.Wrap(err, "delete_blog")
	}
	if tag.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}
