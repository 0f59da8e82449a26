// Copyright (c) 2026 Alor Foundation. All rights reserved.

package message

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

// NewPostgresRepository creates a new Postgres-backed contact Repository.
func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (repository *PostgresRepository) Create(context context.Context, message *Message) error {
	t := schema.ContactMessage
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5, false, NOW())
		RETURNING %s, %s
	`,
		t.Table, t.ID, t.Name, t.Email, t.Subject, t.Body, t.IsRead, t.CreatedAt,
		t.IsRead, t.CreatedAt,
	)

	err := repository.db.QueryRow(context, query,
		message.ID, message.Name, message.Email, message.Subject, message.Body,
	).Scan(&message.IsRead, &message.CreatedAt)

	return dberr.Wrap(err, "create_message")
}

func (repository *PostgresRepository) List(context context.Context, limit, offset int) ([]*Message, int, error) {
	t := schema.ContactMessage

	var total int
	countQuery := fmt.Sprintf(`SELECT count(*) FROM %s`, t.Table)
	if err := repository.db.QueryRow(context, countQuery).Scan(&total); err != nil {
		return nil, 0, dberr.Wrap(err, "count_messages")
	}

	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s, %s, %s, %s
		FROM %s
		ORDER BY %s DESC
		LIMIT $1 OFFSET $2
	`,
		t.ID, t.Name, t.Email, t.Subject, t.Body, t.IsRead, t.CreatedAt,
		t.Table, t.CreatedAt,
	)

	rows, err := repository.db.Query(context, query, limit, offset)
	if err != nil {
		return nil, 0, dberr.Wrap(err, "list_messages")
	}
	defer rows.Close()

	var messages []*Message
	for rows.Next() {
		m := &Message{}
		if err := rows.Scan(&m.ID, &m.Name, &m.Email, &m.Subject, &m.Body, &m.IsRead, &m.CreatedAt); err != nil {
			return nil, 0, dberr.Wrap(err, "scan_message")
		}
		messages = append(messages, m)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, dberr.Wrap(err, "list_messages")
	}

	return messages, total, nil
}

func (repository *PostgresRepository) MarkRead(context context.Context, id string) (*Message, error) {
	t := schema.ContactMessage
	query := fmt.Sprintf(`
		UPDATE %s
		SET %s = true
		WHERE %s = $1
		RETURNING %s, %s, %s, %s, %s, %s, %s
	`,
		t.Table, t.IsRead, t.ID,
		t.ID, t.Name, t.Email, t.Subject, t.Body, t.IsRead, t.CreatedAt,
	)

	m := &Message{}
	err := repository.db.QueryRow(context, query, id).Scan(
		&m.ID, &m.Name, &m.Email, &m.Subject, &m.Body, &m.IsRead, &m.CreatedAt,
	)
	if err != nil {
		return nil, dberr.Wrap(err, "mark_message_read")
	}
	return m, nil
}

func (repository *PostgresRepository) Delete(context context.Context, id string) error {
	t := schema.ContactMessage
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`, t.Table, t.ID)

	cmd, err := repository.db.Exec(context, query, id)
	if err != nil {
		return dberr.Wrap(err, "delete_message")
	}
	if cmd.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}

func (repository *PostgresRepository) DeleteWhere(context context.Context, selector Selector) (int64, error) {
	t := schema.ContactMessage

	query := fmt.Sprintf(`DELETE FROM %s`, t.Table)
	switch selector {
	case SelectRead:
		query += fmt.Sprintf(` WHERE %s = true`, t.IsRead)
	case SelectUnread:
		query += fmt.Sprintf(` WHERE %s = false`, t.IsRead)
	}

	cmd, err := repository.db.Exec(context, query)
	if err != nil {
		return 0, dberr.Wrap(err, "bulk_delete_messages")
	}
	return cmd.RowsAffected(), nil
}
