package requestrepo

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/groupmart/groupmart/internal/domain"
	"github.com/groupmart/groupmart/internal/pg"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

const requestColumns = `id, requester_id, country, product_name, product_url, description,
        images, me_too_count, status, created_at`

type Repository struct {
	db        pg.Database
	txManager pg.TXManager
}

func New(db pg.Database, txManager pg.TXManager) *Repository {
	return &Repository{
		db:        db,
		txManager: txManager,
	}
}

type row interface {
	Scan(dest ...any) error
}

func scanRequest(r row) (*domain.ProductRequest, error) {
	var req domain.ProductRequest
	var images []byte
	err := r.Scan(
		&req.ID, &req.RequesterID, &req.Country, &req.ProductName, &req.ProductURL,
		&req.Description, &images, &req.MeTooCount, &req.Status, &req.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(images, &req.Images); err != nil {
		return nil, err
	}
	return &req, nil
}

func (r *Repository) Save(ctx context.Context, req *domain.ProductRequest) error {
	query := `
        INSERT INTO product_requests (id, requester_id, country, product_name, product_url,
            description, images, me_too_count, status, created_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
    `
	images, err := json.Marshal(req.Images)
	if err != nil {
		return err
	}
	_, err = r.db.Exec(ctx, query,
		req.ID, req.RequesterID, req.Country, req.ProductName, req.ProductURL,
		req.Description, images, req.MeTooCount, req.Status, req.CreatedAt,
	)
	if err != nil {
		zap.L().Error("can't save product request", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) FindByID(ctx context.Context, id string) (*domain.ProductRequest, error) {
	query := `
        SELECT ` + requestColumns + `
        FROM product_requests
        WHERE id = $1
    `
	req, err := scanRequest(r.db.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find product request", zap.Error(err))
		return nil, err
	}
	return req, nil
}

func (r *Repository) List(ctx context.Context, country, status string) ([]domain.ProductRequest, error) {
	query := `
        SELECT ` + requestColumns + `
        FROM product_requests
        WHERE ($1 = '' OR country = $1)
          AND ($2 = '' OR status = $2)
        ORDER BY created_at DESC
    `
	rows, err := r.db.Query(ctx, query, country, status)
	if err != nil {
		zap.L().Error("can't list product requests", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var requests []domain.ProductRequest
	for rows.Next() {
		req, err := scanRequest(rows)
		if err != nil {
			zap.L().Error("can't scan product request row", zap.Error(err))
			return nil, err
		}
		requests = append(requests, *req)
	}
	return requests, nil
}

// AddVote records a me-too vote and bumps the tally, in one transaction.
// A duplicate (request, user) vote is swallowed by ON CONFLICT and the tally
// is left untouched; returns whether the vote was new.
func (r *Repository) AddVote(ctx context.Context, requestID, userID string) (bool, error) {
	var voted bool
	err := r.txManager.Begin(ctx, func(ctx context.Context) error {
		insert := `
            INSERT INTO request_votes (request_id, user_id)
            VALUES ($1, $2)
            ON CONFLICT (request_id, user_id) DO NOTHING
        `
		tag, err := r.db.Exec(ctx, insert, requestID, userID)
		if err != nil {
			zap.L().Error("can't insert request vote", zap.Error(err))
			return err
		}
		if tag.RowsAffected() == 0 {
			return nil
		}

		bump := `
            UPDATE product_requests
            SET me_too_count = me_too_count + 1
            WHERE id = $1
        `
		if _, err := r.db.Exec(ctx, bump, requestID); err != nil {
			zap.L().Error("can't increment me_too_count", zap.Error(err))
			return err
		}
		voted = true
		return nil
	})
	if err != nil {
		return false, err
	}
	return voted, nil
}
