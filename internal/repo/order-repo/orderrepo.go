package orderrepo

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/groupmart/groupmart/internal/domain"
	"github.com/groupmart/groupmart/internal/pg"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

const orderColumns = `id, slug, manager_id, country, title, description, images, category,
        individual_price, group_price, currency, min_orders, max_orders, current_orders,
        payment_methods, payment_deadline, deadline, status, deadline_notified_at, created_at, updated_at`

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

func scanOrder(r row) (*domain.GroupOrder, error) {
	var order domain.GroupOrder
	var images, methods []byte
	err := r.Scan(
		&order.ID, &order.Slug, &order.ManagerID, &order.Country, &order.Title,
		&order.Description, &images, &order.Category, &order.IndividualPrice,
		&order.GroupPrice, &order.Currency, &order.MinOrders, &order.MaxOrders,
		&order.CurrentOrders, &methods, &order.PaymentDeadline, &order.Deadline,
		&order.Status, &order.DeadlineNotifiedAt, &order.CreatedAt, &order.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(images, &order.Images); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(methods, &order.PaymentMethods); err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *Repository) Save(ctx context.Context, order *domain.GroupOrder) error {
	query := `
        INSERT INTO group_orders (id, slug, manager_id, country, title, description, images, category,
            individual_price, group_price, currency, min_orders, max_orders, current_orders,
            payment_methods, payment_deadline, deadline, status, created_at, updated_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20)
    `
	images, err := json.Marshal(order.Images)
	if err != nil {
		return err
	}
	methods, err := json.Marshal(order.PaymentMethods)
	if err != nil {
		return err
	}
	_, err = r.db.Exec(ctx, query,
		order.ID, order.Slug, order.ManagerID, order.Country, order.Title,
		order.Description, images, order.Category, order.IndividualPrice,
		order.GroupPrice, order.Currency, order.MinOrders, order.MaxOrders,
		order.CurrentOrders, methods, order.PaymentDeadline, order.Deadline,
		order.Status, order.CreatedAt, order.UpdatedAt,
	)
	if err != nil {
		zap.L().Error("can't save order", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) FindByID(ctx context.Context, id string) (*domain.GroupOrder, error) {
	query := `
        SELECT ` + orderColumns + `
        FROM group_orders
        WHERE id = $1
    `
	order, err := scanOrder(r.db.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find order", zap.Error(err))
		return nil, err
	}
	return order, nil
}

// ListFilters narrows the browse query; zero values mean "all".
type ListFilters struct {
	Country   string
	Category  string
	Status    string
	ManagerID string
}

func (r *Repository) List(ctx context.Context, filters ListFilters) ([]domain.GroupOrder, error) {
	query := `
        SELECT ` + orderColumns + `
        FROM group_orders
        WHERE ($1 = '' OR country = $1)
          AND ($2 = '' OR category = $2)
          AND ($3 = '' OR status = $3)
          AND ($4 = '' OR manager_id::text = $4)
        ORDER BY created_at DESC
    `
	rows, err := r.db.Query(ctx, query, filters.Country, filters.Category, filters.Status, filters.ManagerID)
	if err != nil {
		zap.L().Error("can't list orders", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var orders []domain.GroupOrder
	for rows.Next() {
		order, err := scanOrder(rows)
		if err != nil {
			zap.L().Error("can't scan order row", zap.Error(err))
			return nil, err
		}
		orders = append(orders, *order)
	}
	return orders, nil
}

func (r *Repository) ExistsSlug(ctx context.Context, slug, country string) (bool, error) {
	query := `
        SELECT EXISTS (SELECT 1 FROM group_orders WHERE slug = $1 AND country = $2)
    `
	var exists bool
	if err := r.db.QueryRow(ctx, query, slug, country).Scan(&exists); err != nil {
		zap.L().Error("can't check slug", zap.Error(err))
		return false, err
	}
	return exists, nil
}

func (r *Repository) UpdateStatus(ctx context.Context, id, status string) (*domain.GroupOrder, error) {
	query := `
        UPDATE group_orders
        SET status = $1, updated_at = $2
        WHERE id = $3
        RETURNING ` + orderColumns + `
    `
	order, err := scanOrder(r.db.QueryRow(ctx, query, status, time.Now(), id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("failed to update order status", zap.Error(err))
		return nil, err
	}
	return order, nil
}

// IncrementCurrentOrders bumps the participant counter only while capacity
// remains. Returns false when the order is already full; the guard and the
// increment are a single statement so concurrent joins cannot overshoot.
func (r *Repository) IncrementCurrentOrders(ctx context.Context, id string) (bool, error) {
	query := `
        UPDATE group_orders
        SET current_orders = current_orders + 1, updated_at = $1
        WHERE id = $2 AND current_orders < max_orders
    `
	tag, err := r.db.Exec(ctx, query, time.Now(), id)
	if err != nil {
		zap.L().Error("can't increment current_orders", zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}

func (r *Repository) FindDeadlineApproaching(ctx context.Context, within time.Duration, limit uint32) ([]domain.GroupOrder, error) {
	query := `
        SELECT ` + orderColumns + `
        FROM group_orders
        WHERE status = 'active'
          AND deadline_notified_at IS NULL
          AND deadline > now()
          AND deadline <= now() + $1
        ORDER BY deadline ASC
        LIMIT $2
    `
	rows, err := r.db.Query(ctx, query, within, int(limit))
	if err != nil {
		zap.L().Error("can't get orders with approaching deadline", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var orders []domain.GroupOrder
	for rows.Next() {
		order, err := scanOrder(rows)
		if err != nil {
			zap.L().Error("can't scan order row", zap.Error(err))
			return nil, err
		}
		orders = append(orders, *order)
	}
	return orders, nil
}

func (r *Repository) MarkDeadlineNotified(ctx context.Context, id string) error {
	query := `
        UPDATE group_orders
        SET deadline_notified_at = $1
        WHERE id = $2
    `
	if _, err := r.db.Exec(ctx, query, time.Now(), id); err != nil {
		zap.L().Error("can't mark deadline notified", zap.Error(err))
		return err
	}
	return nil
}
