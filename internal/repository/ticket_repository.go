package repository

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/ticket-billing/internal/domain"
)

const ticketColumns = `id, company_id, title, description, start_time, paused,
               resume_time, duration_before_pause_ms, end_time, created_at, updated_at`

// TicketRepository encapsulates ticket persistence.
type TicketRepository interface {
	Create(ctx context.Context, ticket *domain.Ticket) error
	GetByID(ctx context.Context, id string) (*domain.Ticket, error)
	ListByCompany(ctx context.Context, companyID string) ([]domain.Ticket, error)
	Update(ctx context.Context, ticket *domain.Ticket) error
	Delete(ctx context.Context, id string) error
	// Mutate runs fn against the current row inside a transaction holding a
	// row lock, then writes the result back. This is the per-ticket
	// serialization point: concurrent toggles/closes on the same id queue on
	// the lock instead of losing an accrual interval.
	Mutate(ctx context.Context, id string, fn func(*domain.Ticket) error) (*domain.Ticket, error)
}

type ticketRepository struct {
	pool *pgxpool.Pool
}

// NewTicketRepository instantiates repository.
func NewTicketRepository(pool *pgxpool.Pool) TicketRepository {
	return &ticketRepository{pool: pool}
}

func (r *ticketRepository) Create(ctx context.Context, ticket *domain.Ticket) error {
	const query = `
        INSERT INTO tickets (company_id, title, description, start_time, paused, resume_time, duration_before_pause_ms, end_time)
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
        RETURNING id, created_at, updated_at`
	return r.pool.QueryRow(ctx, query,
		ticket.CompanyID,
		ticket.Title,
		ticket.Description,
		ticket.StartTime,
		ticket.Paused,
		ticket.ResumeTime,
		ticket.DurationBeforePause.Milliseconds(),
		ticket.EndTime,
	).Scan(&ticket.ID, &ticket.CreatedAt, &ticket.UpdatedAt)
}

func (r *ticketRepository) GetByID(ctx context.Context, id string) (*domain.Ticket, error) {
	const query = `SELECT ` + ticketColumns + ` FROM tickets WHERE id=$1`
	ticket, err := scanTicket(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrTicketNotFound
		}
		return nil, err
	}
	return ticket, nil
}

func (r *ticketRepository) ListByCompany(ctx context.Context, companyID string) ([]domain.Ticket, error) {
	const query = `SELECT ` + ticketColumns + ` FROM tickets WHERE company_id=$1 ORDER BY start_time DESC`
	rows, err := r.pool.Query(ctx, query, companyID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.Ticket
	for rows.Next() {
		ticket, err := scanTicket(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *ticket)
	}
	return result, rows.Err()
}

func (r *ticketRepository) Update(ctx context.Context, ticket *domain.Ticket) error {
	cmd, err := r.pool.Exec(ctx, updateTicketQuery, updateTicketArgs(ticket)...)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrTicketNotFound
	}
	return nil
}

func (r *ticketRepository) Delete(ctx context.Context, id string) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM tickets WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrTicketNotFound
	}
	return nil
}

func (r *ticketRepository) Mutate(ctx context.Context, id string, fn func(*domain.Ticket) error) (*domain.Ticket, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	const query = `SELECT ` + ticketColumns + ` FROM tickets WHERE id=$1 FOR UPDATE`
	ticket, err := scanTicket(tx.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrTicketNotFound
		}
		return nil, err
	}

	if err := fn(ticket); err != nil {
		return nil, err
	}

	if _, err := tx.Exec(ctx, updateTicketQuery, updateTicketArgs(ticket)...); err != nil {
		return nil, err
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}
	return ticket, nil
}

const updateTicketQuery = `
        UPDATE tickets SET title=$1, description=$2, start_time=$3, paused=$4,
            resume_time=$5, duration_before_pause_ms=$6, end_time=$7, updated_at=NOW()
        WHERE id=$8`

func updateTicketArgs(ticket *domain.Ticket) []any {
	return []any{
		ticket.Title,
		ticket.Description,
		ticket.StartTime,
		ticket.Paused,
		ticket.ResumeTime,
		ticket.DurationBeforePause.Milliseconds(),
		ticket.EndTime,
		ticket.ID,
	}
}

func scanTicket(row pgx.Row) (*domain.Ticket, error) {
	var ticket domain.Ticket
	var durationMs int64
	if err := row.Scan(
		&ticket.ID,
		&ticket.CompanyID,
		&ticket.Title,
		&ticket.Description,
		&ticket.StartTime,
		&ticket.Paused,
		&ticket.ResumeTime,
		&durationMs,
		&ticket.EndTime,
		&ticket.CreatedAt,
		&ticket.UpdatedAt,
	); err != nil {
		return nil, err
	}
	ticket.DurationBeforePause = time.Duration(durationMs) * time.Millisecond
	return &ticket, nil
}
