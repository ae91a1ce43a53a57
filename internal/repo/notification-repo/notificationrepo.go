package notificationrepo

import (
	"context"
	"errors"

	"github.com/groupmart/groupmart/internal/domain"
	"github.com/groupmart/groupmart/internal/pg"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

const notificationColumns = `id, user_id, title, message, type, read, action_url, created_at`

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{db: db}
}

type row interface {
	Scan(dest ...any) error
}

func scanNotification(r row) (*domain.Notification, error) {
	var n domain.Notification
	err := r.Scan(
		&n.ID, &n.UserID, &n.Title, &n.Message, &n.Type, &n.Read,
		&n.ActionURL, &n.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &n, nil
}

func (r *Repository) Save(ctx context.Context, n *domain.Notification) error {
	query := `
        INSERT INTO notifications (id, user_id, title, message, type, read, action_url, created_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
    `
	_, err := r.db.Exec(ctx, query,
		n.ID, n.UserID, n.Title, n.Message, n.Type, n.Read, n.ActionURL, n.CreatedAt,
	)
	if err != nil {
		zap.L().Error("can't save notification", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) FindByUserID(ctx context.Context, userID string, limit int) ([]domain.Notification, error) {
	query := `
        SELECT ` + notificationColumns + `
        FROM notifications
        WHERE user_id = $1
        ORDER BY created_at DESC
        LIMIT $2
    `
	rows, err := r.db.Query(ctx, query, userID, limit)
	if err != nil {
		zap.L().Error("can't get notifications", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var notifications []domain.Notification
	for rows.Next() {
		n, err := scanNotification(rows)
		if err != nil {
			zap.L().Error("can't scan notification row", zap.Error(err))
			return nil, err
		}
		notifications = append(notifications, *n)
	}
	return notifications, nil
}

func (r *Repository) CountUnread(ctx context.Context, userID string) (int, error) {
	query := `
        SELECT count(*)
        FROM notifications
        WHERE user_id = $1 AND read = FALSE
    `
	var count int
	if err := r.db.QueryRow(ctx, query, userID).Scan(&count); err != nil {
		zap.L().Error("can't count unread notifications", zap.Error(err))
		return 0, err
	}
	return count, nil
}

func (r *Repository) MarkRead(ctx context.Context, id string) (*domain.Notification, error) {
	query := `
        UPDATE notifications
        SET read = TRUE
        WHERE id = $1
        RETURNING ` + notificationColumns + `
    `
	n, err := scanNotification(r.db.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't mark notification read", zap.Error(err))
		return nil, err
	}
	return n, nil
}

func (r *Repository) MarkAllRead(ctx context.Context, userID string) error {
	query := `
        UPDATE notifications
        SET read = TRUE
        WHERE user_id = $1 AND read = FALSE
    `
	if _, err := r.db.Exec(ctx, query, userID); err != nil {
		zap.L().Error("can't mark all notifications read", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) Delete(ctx context.Context, id string) error {
	query := `
        DELETE FROM notifications
        WHERE id = $1
    `
	if _, err := r.db.Exec(ctx, query, id); err != nil {
		zap.L().Error("can't delete notification", zap.Error(err))
		return err
	}
	return nil
}
