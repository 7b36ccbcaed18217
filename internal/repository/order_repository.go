package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/ticket-billing/internal/domain"
)

// OrderRepository encapsulates hour-order persistence.
type OrderRepository interface {
	Create(ctx context.Context, order *domain.TicketOrder) error
	GetByID(ctx context.Context, id string) (*domain.TicketOrder, error)
	ListByCompany(ctx context.Context, companyID string) ([]domain.TicketOrder, error)
	Delete(ctx context.Context, id string) error
}

type orderRepository struct {
	pool *pgxpool.Pool
}

// NewOrderRepository instantiates repository.
func NewOrderRepository(pool *pgxpool.Pool) OrderRepository {
	return &orderRepository{pool: pool}
}

func (r *orderRepository) Create(ctx context.Context, order *domain.TicketOrder) error {
	const query = `
        INSERT INTO ticket_orders (company_id, hours, order_date)
        VALUES ($1,$2,$3)
        RETURNING id, created_at`
	return r.pool.QueryRow(ctx, query,
		order.CompanyID,
		order.Hours,
		order.Date,
	).Scan(&order.ID, &order.CreatedAt)
}

func (r *orderRepository) GetByID(ctx context.Context, id string) (*domain.TicketOrder, error) {
	const query = `
        SELECT id, company_id, hours, order_date, created_at
        FROM ticket_orders WHERE id=$1`
	var order domain.TicketOrder
	if err := r.pool.QueryRow(ctx, query, id).Scan(
		&order.ID,
		&order.CompanyID,
		&order.Hours,
		&order.Date,
		&order.CreatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrOrderNotFound
		}
		return nil, err
	}
	return &order, nil
}

func (r *orderRepository) ListByCompany(ctx context.Context, companyID string) ([]domain.TicketOrder, error) {
	const query = `
        SELECT id, company_id, hours, order_date, created_at
        FROM ticket_orders WHERE company_id=$1 ORDER BY order_date DESC`
	rows, err := r.pool.Query(ctx, query, companyID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.TicketOrder
	for rows.Next() {
		var order domain.TicketOrder
		if err := rows.Scan(
			&order.ID,
			&order.CompanyID,
			&order.Hours,
			&order.Date,
			&order.CreatedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, order)
	}
	return result, rows.Err()
}

func (r *orderRepository) Delete(ctx context.Context, id string) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM ticket_orders WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrOrderNotFound
	}
	return nil
}
