package userrepo

import (
	"context"
	"errors"

	"github.com/groupmart/groupmart/internal/domain"
	"github.com/groupmart/groupmart/internal/pg"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

const userColumns = `id, email, password_hash, name, country, account_type, rating,
        total_orders, referral_code, created_at`

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{db: db}
}

type row interface {
	Scan(dest ...any) error
}

func scanUser(r row) (*domain.User, error) {
	var user domain.User
	err := r.Scan(
		&user.ID, &user.Email, &user.PasswordHash, &user.Name, &user.Country,
		&user.AccountType, &user.Rating, &user.TotalOrders, &user.ReferralCode,
		&user.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *Repository) Save(ctx context.Context, user *domain.User) error {
	query := `
        INSERT INTO users (id, email, password_hash, name, country, account_type, rating,
            total_orders, referral_code, created_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
    `
	_, err := r.db.Exec(ctx, query,
		user.ID, user.Email, user.PasswordHash, user.Name, user.Country,
		user.AccountType, user.Rating, user.TotalOrders, user.ReferralCode,
		user.CreatedAt,
	)
	if err != nil {
		zap.L().Error("can't save user", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	query := `
        SELECT ` + userColumns + `
        FROM users
        WHERE email = $1
    `
	return r.findOne(ctx, query, email)
}

func (r *Repository) FindByID(ctx context.Context, id string) (*domain.User, error) {
	query := `
        SELECT ` + userColumns + `
        FROM users
        WHERE id = $1
    `
	return r.findOne(ctx, query, id)
}

func (r *Repository) FindByReferralCode(ctx context.Context, code string) (*domain.User, error) {
	query := `
        SELECT ` + userColumns + `
        FROM users
        WHERE referral_code = $1
    `
	return r.findOne(ctx, query, code)
}

func (r *Repository) findOne(ctx context.Context, query string, arg any) (*domain.User, error) {
	user, err := scanUser(r.db.QueryRow(ctx, query, arg))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find user", zap.Error(err))
		return nil, err
	}
	return user, nil
}

// Promote flips a buyer account to manager. One-way, a manager stays a manager.
func (r *Repository) Promote(ctx context.Context, id string) (*domain.User, error) {
	query := `
        UPDATE users
        SET account_type = 'manager'
        WHERE id = $1
        RETURNING ` + userColumns + `
    `
	user, err := scanUser(r.db.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't promote user", zap.Error(err))
		return nil, err
	}
	return user, nil
}
