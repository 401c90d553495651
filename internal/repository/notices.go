package repository

import (
	"context"
	"time"

	"github.com/storelink-dev/backoffice/backend/internal/domain"
)

func (r *Repository) CreateNotice(notice *domain.Notice) error {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	query := `
		INSERT INTO notices (title, category, body, author, is_pinned)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at, version
	`

	args := []any{notice.Title, notice.Category, notice.Body, notice.Author, notice.IsPinned}
	if err := r.dbpool.QueryRowContext(ctx, query, args...).Scan(&notice.ID, &notice.CreatedAt, &notice.Version); err != nil {
		return err
	}

	return nil
}

func (r *Repository) GetNoticeByID(id int64) (*domain.Notice, error) {
	query := `
		SELECT title, category, body, author, is_pinned, created_at, version
		FROM notices WHERE id = $1
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	notice := &domain.Notice{
		ID: id,
	}

	dst := []any{&notice.Title, &notice.Category, &notice.Body, &notice.Author, &notice.IsPinned, &notice.CreatedAt, &notice.Version}
	if err := r.dbpool.QueryRowContext(ctx, query, id).Scan(dst...); err != nil {
		return nil, err
	}

	return notice, nil
}

// GetAllNotices 返回全部公告，置顶的在前，其余按创建时间倒序。
func (r *Repository) GetAllNotices() ([]*domain.Notice, error) {
	query := `
		SELECT id, title, category, body, author, is_pinned, created_at, version
		FROM notices ORDER BY is_pinned DESC, created_at DESC
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	rows, err := r.dbpool.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	notices := make([]*domain.Notice, 0)
	for rows.Next() {
		notice := &domain.Notice{}
		dst := []any{&notice.ID, &notice.Title, &notice.Category, &notice.Body, &notice.Author, &notice.IsPinned, &notice.CreatedAt, &notice.Version}
		if err := rows.Scan(dst...); err != nil {
			return nil, err
		}
		notices = append(notices, notice)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return notices, nil
}

func (r *Repository) UpdateNotice(notice *domain.Notice) error {
	query := `
		UPDATE notices
		SET
			title = $1,
			category = $2,
			body = $3,
			is_pinned = $4,
			version = version + 1
		WHERE id = $5 AND version = $6
		RETURNING created_at, version
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	args := []any{notice.Title, notice.Category, notice.Body, notice.IsPinned, notice.ID, notice.Version}
	if err := r.dbpool.QueryRowContext(ctx, query, args...).Scan(&notice.CreatedAt, &notice.Version); err != nil {
		return err
	}

	return nil
}

func (r *Repository) DeleteNotice(id int64) error {
	query := `
		DELETE FROM notices WHERE id = $1
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	_, err := r.dbpool.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}

	return nil
}
