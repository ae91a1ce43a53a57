package participantrepo

import (
	"context"
	"errors"
	"time"

	"github.com/groupmart/groupmart/internal/domain"
	"github.com/groupmart/groupmart/internal/pg"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

const participantColumns = `id, order_id, user_id, payment_method, payment_proof_url,
        payment_status, payment_amount, joined_at, paid_at, verified_at, verified_by`

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{db: db}
}

type row interface {
	Scan(dest ...any) error
}

func scanParticipant(r row) (*domain.OrderParticipant, error) {
	var p domain.OrderParticipant
	err := r.Scan(
		&p.ID, &p.OrderID, &p.UserID, &p.PaymentMethod, &p.PaymentProofURL,
		&p.PaymentStatus, &p.PaymentAmount, &p.JoinedAt, &p.PaidAt,
		&p.VerifiedAt, &p.VerifiedBy,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *Repository) Save(ctx context.Context, p *domain.OrderParticipant) error {
	query := `
        INSERT INTO order_participants (id, order_id, user_id, payment_method, payment_proof_url,
            payment_status, payment_amount, joined_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
    `
	_, err := r.db.Exec(ctx, query,
		p.ID, p.OrderID, p.UserID, p.PaymentMethod, p.PaymentProofURL,
		p.PaymentStatus, p.PaymentAmount, p.JoinedAt,
	)
	if err != nil {
		zap.L().Error("can't save participant", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) FindByID(ctx context.Context, id string) (*domain.OrderParticipant, error) {
	query := `
        SELECT ` + participantColumns + `
        FROM order_participants
        WHERE id = $1
    `
	p, err := scanParticipant(r.db.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find participant", zap.Error(err))
		return nil, err
	}
	return p, nil
}

func (r *Repository) FindByOrderAndUser(ctx context.Context, orderID, userID string) (*domain.OrderParticipant, error) {
	query := `
        SELECT ` + participantColumns + `
        FROM order_participants
        WHERE order_id = $1 AND user_id = $2
    `
	p, err := scanParticipant(r.db.QueryRow(ctx, query, orderID, userID))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find participant by order and user", zap.Error(err))
		return nil, err
	}
	return p, nil
}

func (r *Repository) FindByOrderID(ctx context.Context, orderID string) ([]domain.OrderParticipant, error) {
	query := `
        SELECT ` + participantColumns + `
        FROM order_participants
        WHERE order_id = $1
        ORDER BY joined_at ASC
    `
	return r.findMany(ctx, query, orderID)
}

func (r *Repository) FindByUserID(ctx context.Context, userID string) ([]domain.OrderParticipant, error) {
	query := `
        SELECT ` + participantColumns + `
        FROM order_participants
        WHERE user_id = $1
        ORDER BY joined_at DESC
    `
	return r.findMany(ctx, query, userID)
}

func (r *Repository) findMany(ctx context.Context, query string, arg any) ([]domain.OrderParticipant, error) {
	rows, err := r.db.Query(ctx, query, arg)
	if err != nil {
		zap.L().Error("can't get participants", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var participants []domain.OrderParticipant
	for rows.Next() {
		p, err := scanParticipant(rows)
		if err != nil {
			zap.L().Error("can't scan participant row", zap.Error(err))
			return nil, err
		}
		participants = append(participants, *p)
	}
	return participants, nil
}

func (r *Repository) UpdateProof(ctx context.Context, id, proofURL string, paidAt time.Time) (*domain.OrderParticipant, error) {
	query := `
        UPDATE order_participants
        SET payment_proof_url = $1, paid_at = $2
        WHERE id = $3
        RETURNING ` + participantColumns + `
    `
	p, err := scanParticipant(r.db.QueryRow(ctx, query, proofURL, paidAt, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't update participant proof", zap.Error(err))
		return nil, err
	}
	return p, nil
}

func (r *Repository) UpdateStatus(ctx context.Context, id, status, verifiedBy string, verifiedAt *time.Time) (*domain.OrderParticipant, error) {
	query := `
        UPDATE order_participants
        SET payment_status = $1, verified_by = $2, verified_at = $3
        WHERE id = $4
        RETURNING ` + participantColumns + `
    `
	p, err := scanParticipant(r.db.QueryRow(ctx, query, status, verifiedBy, verifiedAt, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't update participant status", zap.Error(err))
		return nil, err
	}
	return p, nil
}
