package notificationrepo

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
)

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	repo := New(mockDB)
	defer mockDB.Close()

	return repo, mockDB
}

var notificationColumnNames = []string{
	"id", "user_id", "title", "message", "type", "read", "action_url", "created_at",
}

func notificationRow(now time.Time, read bool) *pgxmock.Rows {
	return pgxmock.NewRows(notificationColumnNames).AddRow(
		"notif-1", "user-1", "Order deadline approaching", "Less than a day left", "warning",
		read, "/orders/order-1", now,
	)
}

func TestRepository_FindByUserID(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Now()

	mock.ExpectQuery("SELECT (.+) FROM notifications").
		WithArgs("user-1", 50).
		WillReturnRows(notificationRow(now, false))

	notifications, err := repo.FindByUserID(context.Background(), "user-1", 50)
	assert.NoError(t, err)
	assert.Len(t, notifications, 1)
	assert.Equal(t, "warning", notifications[0].Type)
	assert.False(t, notifications[0].Read)
}

func TestRepository_CountUnread(t *testing.T) {
	repo, mock := NewMock(t)

	mock.ExpectQuery("SELECT count(.+) FROM notifications").
		WithArgs("user-1").
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(3))

	count, err := repo.CountUnread(context.Background(), "user-1")
	assert.NoError(t, err)
	assert.Equal(t, 3, count)

	mock.ExpectQuery("SELECT count(.+) FROM notifications").
		WithArgs("user-1").
		WillReturnError(errors.New("database error"))

	_, err = repo.CountUnread(context.Background(), "user-1")
	assert.Error(t, err)
}

func TestRepository_MarkRead(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Now()

	mock.ExpectQuery("UPDATE notifications").
		WithArgs("notif-1").
		WillReturnRows(notificationRow(now, true))
	n, err := repo.MarkRead(context.Background(), "notif-1")
	assert.NoError(t, err)
	assert.True(t, n.Read)

	mock.ExpectQuery("UPDATE notifications").
		WithArgs("missing").
		WillReturnError(pgx.ErrNoRows)
	n, err = repo.MarkRead(context.Background(), "missing")
	assert.NoError(t, err)
	assert.Nil(t, n)
}

func TestRepository_MarkAllRead(t *testing.T) {
	repo, mock := NewMock(t)

	mock.ExpectExec("UPDATE notifications").
		WithArgs("user-1").
		WillReturnResult(pgxmock.NewResult("UPDATE", 3))

	assert.NoError(t, repo.MarkAllRead(context.Background(), "user-1"))
}

func TestRepository_Delete(t *testing.T) {
	repo, mock := NewMock(t)

	mock.ExpectExec("DELETE FROM notifications").
		WithArgs("notif-1").
		WillReturnResult(pgxmock.NewResult("DELETE", 1))

	assert.NoError(t, repo.Delete(context.Background(), "notif-1"))
}
