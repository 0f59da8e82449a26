// Copyright (c) 2026 Alor Foundation. All rights reserved.

package gallery

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

// NewPostgresRepository creates a new Postgres-backed gallery Repository.
func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// # Topics

func (repository *PostgresRepository) CreateTopic(context context.Context, topic *Topic) error {
	t := schema.GalleryTopic
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s)
		VALUES ($1, $2, $3, NOW())
		RETURNING %s
	`, t.Table, t.ID, t.Name, t.Description, t.CreatedAt, t.CreatedAt)

	err := repository.db.QueryRow(context, query, topic.ID, topic.Name, topic.Description).Scan(&topic.CreatedAt)
	return dberr.Wrap(err, "create_gallery_topic")
}

func (repository *PostgresRepository) ListTopics(context context.Context, limit, offset int) ([]*Topic, int, error) {
	t := schema.GalleryTopic

	var total int
	countQuery := fmt.Sprintf(`SELECT COUNT(*) FROM %s`, t.Table)
	if err := repository.db.QueryRow(context, countQuery).Scan(&total); err != nil {
		return nil, 0, dberr.Wrap(err, "count_gallery_topics")
	}

	query := fmt.Sprintf(`
		SELECT %s, %s, COALESCE(%s, ''), %s
		FROM %s
		ORDER BY %s DESC
		LIMIT $1 OFFSET $2
	`, t.ID, t.Name, t.Description, t.CreatedAt, t.Table, t.CreatedAt)

	rows, err := repository.db.Query(context, query, limit, offset)
	if err != nil {
		return nil, 0, dberr.Wrap(err, "list_gallery_topics")
	}
	defer rows.Close()

	var topics []*Topic
	for rows.Next() {
		topic := &Topic{}
		if err := rows.Scan(&topic.ID, &topic.Name, &topic.Description, &topic.CreatedAt); err != nil {
			return nil, 0, dberr.Wrap(err, "scan_gallery_topic")
		}
		topics = append(topics, topic)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, dberr.Wrap(err, "list_gallery_topics")
	}

	return topics, total, nil
}

func (repository *PostgresRepository) GetTopic(context context.Context, id string) (*Topic, error) {
	t := schema.GalleryTopic
	query := fmt.Sprintf(`
		SELECT %s, %s, COALESCE(%s, ''), %s
		FROM %s
		WHERE %s = $1
	`, t.ID, t.Name, t.Description, t.CreatedAt, t.Table, t.ID)

	topic := &Topic{}
	err := repository.db.QueryRow(context, query, id).Scan(
		&topic.ID, &topic.Name, &topic.Description, &topic.CreatedAt,
	)
	if err != nil {
		return nil, dberr.Wrap(err, "get_gallery_topic")
	}
	return topic, nil
}

func (repository *PostgresRepository) UpdateTopic(context context.Context, id string, input UpdateTopicInput) (*Topic, error) {
	t := schema.GalleryTopic
	query := fmt.Sprintf(`
		UPDATE %s
		SET %s = COALESCE($2, %s),
		    %s = COALESCE($3, %s)
		WHERE %s = $1
		RETURNING %s, %s, COALESCE(%s, ''), %s
	`,
		t.Table, t.Name, t.Name, t.Description, t.Description, t.ID,
		t.ID, t.Name, t.Description, t.CreatedAt,
	)

	topic := &Topic{}
	err := repository.db.QueryRow(context, query, id, input.Name, input.Description).Scan(
		&topic.ID, &topic.Name, &topic.Description, &topic.CreatedAt,
	)
	if err != nil {
		return nil, dberr.Wrap(err, "update_gallery_topic")
	}
	return topic, nil
}

func (repository *PostgresRepository) DeleteTopic(context context.Context, id string) error {
	t := schema.GalleryTopic
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`, t.Table, t.ID)

	cmd, err := repository.db.Exec(context, query, id)
	if err != nil {
		return dberr.Wrap(err, "delete_gallery_topic")
	}
	if cmd.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}

// # Images

// insertImageQuery builds the image insert. The uploader reference needs an
// explicit ::uuid cast: uploadedby is a uuid column and NULLIF over text
// parameters yields text, which Postgres will not assign to it.
func insertImageQuery() string {
	t := schema.GalleryImage
	return fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5, $6, NULLIF($7, '')::uuid, NOW())
		RETURNING %s
	`,
		t.Table, t.ID, t.TopicID, t.Title, t.ImageURL, t.ThumbnailURL,
		t.DeleteURL, t.UploadedBy, t.CreatedAt,
		t.CreatedAt,
	)
}

func (repository *PostgresRepository) CreateImage(context context.Context, image *Image) error {
	err := repository.db.QueryRow(context, insertImageQuery(),
		image.ID, image.TopicID, image.Title, image.ImageURL,
		image.ThumbnailURL, image.DeleteURL, image.UploadedBy,
	).Scan(&image.CreatedAt)

	return dberr.Wrap(err, "create_gallery_image")
}

func (repository *PostgresRepository) ListImages(context context.Context, topicID string, limit, offset int) ([]*Image, int, error) {
	t := schema.GalleryImage

	where := ""
	countArgs := []any{}
	args := []any{}
	if topicID != "" {
		where = fmt.Sprintf(` WHERE %s = $1`, t.TopicID)
		countArgs = append(countArgs, topicID)
		args = append(args, topicID)
	}

	var total int
	countQuery := fmt.Sprintf(`SELECT count(*) FROM %s`, t.Table) + where
	if err := repository.db.QueryRow(context, countQuery, countArgs...).Scan(&total); err != nil {
		return nil, 0, dberr.Wrap(err, "count_gallery_images")
	}

	query := fmt.Sprintf(`
		SELECT %s, %s, COALESCE(%s, ''), %s, %s, %s, COALESCE(%s::text, ''), %s
		FROM %s
	`,
		t.ID, t.TopicID, t.Title, t.ImageURL, t.ThumbnailURL, t.DeleteURL,
		t.UploadedBy, t.CreatedAt, t.Table,
	) + where + fmt.Sprintf(` ORDER BY %s DESC LIMIT $%d OFFSET $%d`, t.CreatedAt, len(args)+1, len(args)+2)
	args = append(args, limit, offset)

	rows, err := repository.db.Query(context, query, args...)
	if err != nil {
		return nil, 0, dberr.Wrap(err, "list_gallery_images")
	}
	defer rows.Close()

	var images []*Image
	for rows.Next() {
		image := &Image{}
		err := rows.Scan(
			&image.ID, &image.TopicID, &image.Title, &image.ImageURL,
			&image.ThumbnailURL, &image.DeleteURL, &image.UploadedBy, &image.CreatedAt,
		)
		if err != nil {
			return nil, 0, dberr.Wrap(err, "scan_gallery_image")
		}
		images = append(images, image)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, dberr.Wrap(err, "list_gallery_images")
	}

	return images, total, nil
}

func (repository *PostgresRepository) DeleteImage(context context.Context, id string) error {
	t := schema.GalleryImage
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`, t.Table, t.ID)

	cmd, err := repository.db.Exec(context, query, id)
	if err != nil {
		return dberr.Wrap(err, "delete_gallery_image")
	}
	if cmd.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}

func (repository *PostgresRepository) DeleteImagesByTopic(context context.Context, topicID string) (int64, error) {
	t := schema.GalleryImage
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`, t.Table, t.TopicID)

	cmd, err := repository.db.Exec(context, query, topicID)
	if err != nil {
		return 0, dberr.Wrap(err, "delete_gallery_images_by_topic")
	}
	return cmd.RowsAffected(), nil
}

// # Video Topics

func (repository *PostgresRepository) CreateVideoTopic(context context.Context, topic *VideoTopic) error {
	t := schema.GalleryVideoTopic
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s)
		VALUES ($1, $2, $3, NOW())
		RETURNING %s
	`, t.Table, t.ID, t.Name, t.Description, t.CreatedAt, t.CreatedAt)

	err := repository.db.QueryRow(context, query, topic.ID, topic.Name, topic.Description).Scan(&topic.CreatedAt)
	return dberr.Wrap(err, "create_video_topic")
}

func (repository *PostgresRepository) ListVideoTopics(context context.Context, limit, offset int) ([]*VideoTopic, int, error) {
	t := schema.GalleryVideoTopic

	var total int
	countQuery := fmt.Sprintf(`SELECT COUNT(*) FROM %s`, t.Table)
	if err := repository.db.QueryRow(context, countQuery).Scan(&total); err != nil {
		return nil, 0, dberr.Wrap(err, "count_video_topics")
	}

	query := fmt.Sprintf(`
		SELECT %s, %s, COALESCE(%s, ''), %s
		FROM %s
		ORDER BY %s DESC
		LIMIT $1 OFFSET $2
	`, t.ID, t.Name, t.Description, t.CreatedAt, t.Table, t.CreatedAt)

	rows, err := repository.db.Query(context, query, limit, offset)
	if err != nil {
		return nil, 0, dberr.Wrap(err, "list_video_topics")
	}
	defer rows.Close()

	var topics []*VideoTopic
	for rows.Next() {
		topic := &VideoTopic{}
		if err := rows.Scan(&topic.ID, &topic.Name, &topic.Description, &topic.CreatedAt); err != nil {
			return nil, 0, dberr.Wrap(err, "scan_video_topic")
		}
		topics = append(topics, topic)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, dberr.Wrap(err, "list_video_topics")
	}

	return topics, total, nil
}

func (repository *PostgresRepository) GetVideoTopic(context context.Context, id string) (*VideoTopic, error) {
	t := schema.GalleryVideoTopic
	query := fmt.Sprintf(`
		SELECT %s, %s, COALESCE(%s, ''), %s
		FROM %s
		WHERE %s = $1
	`, t.ID, t.Name, t.Description, t.CreatedAt, t.Table, t.ID)

	topic := &VideoTopic{}
	err := repository.db.QueryRow(context, query, id).Scan(
		&topic.ID, &topic.Name, &topic.Description, &topic.CreatedAt,
	)
	if err != nil {
		return nil, dberr.Wrap(err, "get_video_topic")
	}
	return topic, nil
}

func (repository *PostgresRepository) DeleteVideoTopic(context context.Context, id string) error {
	t := schema.GalleryVideoTopic
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`, t.Table, t.ID)

	cmd, err := repository.db.Exec(context, query, id)
	if err != nil {
		return dberr.Wrap(err, "delete_video_topic")
	}
	if cmd.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}

// # Videos

// insertVideoQuery builds the video insert; uploadedby takes the same ::uuid
// cast as the image insert.
func insertVideoQuery() string {
	t := schema.GalleryVideo
	return fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, NULLIF($5, '')::uuid, NOW())
		RETURNING %s
	`,
		t.Table, t.ID, t.TopicID, t.Title, t.VideoURL, t.UploadedBy, t.CreatedAt,
		t.CreatedAt,
	)
}

func (repository *PostgresRepository) CreateVideo(context context.Context, video *Video) error {
	err := repository.db.QueryRow(context, insertVideoQuery(),
		video.ID, video.TopicID, video.Title, video.VideoURL, video.UploadedBy,
	).Scan(&video.CreatedAt)

	return dberr.Wrap(err, "create_video")
}

func (repository *PostgresRepository) ListVideos(context context.Context, topicID string, limit, offset int) ([]*Video, int, error) {
	t := schema.GalleryVideo

	where := ""
	countArgs := []any{}
	args := []any{}
	if topicID != "" {
		where = fmt.Sprintf(` WHERE %s = $1`, t.TopicID)
		countArgs = append(countArgs, topicID)
		args = append(args, topicID)
	}

	var total int
	countQuery := fmt.Sprintf(`SELECT count(*) FROM %s`, t.Table) + where
	if err := repository.db.QueryRow(context, countQuery, countArgs...).Scan(&total); err != nil {
		return nil, 0, dberr.Wrap(err, "count_videos")
	}

	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s, COALESCE(%s::text, ''), %s
		FROM %s
	`,
		t.ID, t.TopicID, t.Title, t.VideoURL, t.UploadedBy, t.CreatedAt, t.Table,
	) + where + fmt.Sprintf(` ORDER BY %s DESC LIMIT $%d OFFSET $%d`, t.CreatedAt, len(args)+1, len(args)+2)
	args = append(args, limit, offset)

	rows, err := repository.db.Query(context, query, args...)
	if err != nil {
		return nil, 0, dberr.Wrap(err, "list_videos")
	}
	defer rows.Close()

	var videos []*Video
	for rows.Next() {
		video := &Video{}
		err := rows.Scan(
			&video.ID, &video.TopicID, &video.Title, &video.VideoURL,
			&video.UploadedBy, &video.CreatedAt,
		)
		if err != nil {
			return nil, 0, dberr.Wrap(err, "scan_video")
		}
		videos = append(videos, video)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, dberr.Wrap(err, "list_videos")
	}

	return videos, total, nil
}

func (repository *PostgresRepository) DeleteVideo(context context.Context, id string) error {
	t := schema.GalleryVideo
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`, t.Table, t.ID)

	cmd, err := repository.db.Exec(context, query, id)
	if err != nil {
		return dberr.Wrap(err, "delete_video")
	}
	if cmd.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}

func (repository *PostgresRepository) DeleteVideosByTopic(context context.Context, topicID string) (int64, error) {
	t := schema.GalleryVideo
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`, t.Table, t.TopicID)

	cmd, err := repository.db.Exec(context, query, topicID)
	if err != nil {
		return 0, dberr.Wrap(err, "delete_videos_by_topic")
	}
	return cmd.RowsAffected(), nil
}
