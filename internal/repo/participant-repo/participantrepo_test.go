package participantrepo

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

var participantColumnNames = []string{
	"id", "order_id", "user_id", "payment_method", "payment_proof_url",
	"payment_status", "payment_amount", "joined_at", "paid_at", "verified_at", "verified_by",
}

func participantRow(now time.Time) *pgxmock.Rows {
	return pgxmock.NewRows(participantColumnNames).AddRow(
		"p-1", "order-1", "user-1", "paypal", "",
		"uploaded", 24.99, now, (*time.Time)(nil), (*time.Time)(nil), "",
	)
}

func TestRepository_FindByOrderAndUser(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Now()

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
		found     bool
	}{
		{
			name: "Participant exists",
			mockSetup: func() {
				mock.ExpectQuery("SELECT (.+) FROM order_participants").
					WithArgs("order-1", "user-1").
					WillReturnRows(participantRow(now))
			},
			found: true,
		},
		{
			name: "Participant does not exist",
			mockSetup: func() {
				mock.ExpectQuery("SELECT (.+) FROM order_participants").
					WithArgs("order-1", "user-1").
					WillReturnError(pgx.ErrNoRows)
			},
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectQuery("SELECT (.+) FROM order_participants").
					WithArgs("order-1", "user-1").
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			p, err := repo.FindByOrderAndUser(context.Background(), "order-1", "user-1")
			if tt.expectErr {
				assert.Error(t, err)
				assert.Nil(t, p)
				return
			}
			assert.NoError(t, err)
			if !tt.found {
				assert.Nil(t, p)
				return
			}
			assert.Equal(t, "p-1", p.ID)
			assert.Equal(t, "uploaded", p.PaymentStatus)
		})
	}
}

func TestRepository_FindByOrderID(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Now()

	mock.ExpectQuery("SELECT (.+) FROM order_participants").
		WithArgs("order-1").
		WillReturnRows(participantRow(now))

	participants, err := repo.FindByOrderID(context.Background(), "order-1")
	assert.NoError(t, err)
	assert.Len(t, participants, 1)
	assert.Equal(t, "user-1", participants[0].UserID)
}

func TestRepository_UpdateProof(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Now()

	mock.ExpectQuery("UPDATE order_participants").
		WithArgs("http://localhost:8080/uploads/payment-proofs/order-1/user-1/1-receipt.png", now, "p-1").
		WillReturnRows(participantRow(now))
	p, err := repo.UpdateProof(context.Background(), "p-1", "http://localhost:8080/uploads/payment-proofs/order-1/user-1/1-receipt.png", now)
	assert.NoError(t, err)
	assert.NotNil(t, p)

	mock.ExpectQuery("UPDATE order_participants").
		WithArgs("http://localhost:8080/uploads/proof.png", now, "missing").
		WillReturnError(pgx.ErrNoRows)
	p, err = repo.UpdateProof(context.Background(), "missing", "http://localhost:8080/uploads/proof.png", now)
	assert.NoError(t, err)
	assert.Nil(t, p)
}

func TestRepository_UpdateStatus(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Now()

	mock.ExpectQuery("UPDATE order_participants").
		WithArgs("verified", "manager-1", &now, "p-1").
		WillReturnRows(participantRow(now))
	p, err := repo.UpdateStatus(context.Background(), "p-1", "verified", "manager-1", &now)
	assert.NoError(t, err)
	assert.NotNil(t, p)

	mock.ExpectQuery("UPDATE order_participants").
		WithArgs("rejected", "manager-1", (*time.Time)(nil), "p-1").
		WillReturnRows(participantRow(now))
	p, err = repo.UpdateStatus(context.Background(), "p-1", "rejected", "manager-1", nil)
	assert.NoError(t, err)
	assert.NotNil(t, p)
}
