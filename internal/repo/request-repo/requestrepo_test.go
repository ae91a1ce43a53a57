package requestrepo

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/groupmart/groupmart/internal/pg"
	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface, *pg.MockTXManager) {
	ctrl := gomock.NewController(t)
	mockTxManager := pg.NewMockTXManager(ctrl)

	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	repo := New(mockDB, mockTxManager)
	defer mockDB.Close()
	defer ctrl.Finish()

	return repo, mockDB, mockTxManager
}

var requestColumnNames = []string{
	"id", "requester_id", "country", "product_name", "product_url", "description",
	"images", "me_too_count", "status", "created_at",
}

func requestRow(now time.Time) *pgxmock.Rows {
	return pgxmock.NewRows(requestColumnNames).AddRow(
		"req-1", "user-1", "JP", "Matcha Powder", "https://example.com/matcha", "ceremonial grade",
		[]byte(`[]`), 4, "open", now,
	)
}

func TestRepository_FindByID(t *testing.T) {
	repo, mock, _ := NewMock(t)
	now := time.Now()

	mock.ExpectQuery("SELECT (.+) FROM product_requests").
		WithArgs("req-1").
		WillReturnRows(requestRow(now))
	req, err := repo.FindByID(context.Background(), "req-1")
	assert.NoError(t, err)
	assert.Equal(t, "Matcha Powder", req.ProductName)
	assert.Equal(t, 4, req.MeTooCount)

	mock.ExpectQuery("SELECT (.+) FROM product_requests").
		WithArgs("missing").
		WillReturnError(pgx.ErrNoRows)
	req, err = repo.FindByID(context.Background(), "missing")
	assert.NoError(t, err)
	assert.Nil(t, req)
}

func TestRepository_List(t *testing.T) {
	repo, mock, _ := NewMock(t)
	now := time.Now()

	mock.ExpectQuery("SELECT (.+) FROM product_requests").
		WithArgs("JP", "open").
		WillReturnRows(requestRow(now))

	requests, err := repo.List(context.Background(), "JP", "open")
	assert.NoError(t, err)
	assert.Len(t, requests, 1)
	assert.Equal(t, []string{}, requests[0].Images)
}

func TestRepository_AddVote(t *testing.T) {
	tests := []struct {
		name      string
		mockSetup func(mock pgxmock.PgxPoolIface)
		expectErr bool
		voted     bool
	}{
		{
			name: "New vote bumps the tally",
			mockSetup: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectExec("INSERT INTO request_votes").
					WithArgs("req-1", "user-1").
					WillReturnResult(pgxmock.NewResult("INSERT", 1))
				mock.ExpectExec("UPDATE product_requests").
					WithArgs("req-1").
					WillReturnResult(pgxmock.NewResult("UPDATE", 1))
			},
			voted: true,
		},
		{
			name: "Duplicate vote leaves the tally untouched",
			mockSetup: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectExec("INSERT INTO request_votes").
					WithArgs("req-1", "user-1").
					WillReturnResult(pgxmock.NewResult("INSERT", 0))
			},
			voted: false,
		},
		{
			name: "Database error",
			mockSetup: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectExec("INSERT INTO request_votes").
					WithArgs("req-1", "user-1").
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock, txManager := NewMock(t)
			txManager.EXPECT().Begin(gomock.Any(), gomock.Any()).
				DoAndReturn(func(ctx context.Context, fn func(ctx context.Context) error) error {
					return fn(ctx)
				})
			tt.mockSetup(mock)

			voted, err := repo.AddVote(context.Background(), "req-1", "user-1")
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.voted, voted)
		})
	}
}
