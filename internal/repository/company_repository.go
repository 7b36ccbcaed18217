package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/ticket-billing/internal/domain"
)

// CompanyRepository encapsulates billing-company persistence.
type CompanyRepository interface {
	Create(ctx context.Context, company *domain.TicketCompany) error
	GetByID(ctx context.Context, id string) (*domain.TicketCompany, error)
	List(ctx context.Context) ([]domain.TicketCompany, error)
	Update(ctx context.Context, company *domain.TicketCompany) error
	Delete(ctx context.Context, id string) error
}

type companyRepository struct {
	pool *pgxpool.Pool
}

// NewCompanyRepository instantiates repository.
func NewCompanyRepository(pool *pgxpool.Pool) CompanyRepository {
	return &companyRepository{pool: pool}
}

func (r *companyRepository) Create(ctx context.Context, company *domain.TicketCompany) error {
	const query = `
        INSERT INTO companies (name, email, contact)
        VALUES ($1,$2,$3)
        RETURNING id, created_at, updated_at`
	return r.pool.QueryRow(ctx, query,
		company.Name,
		company.Email,
		company.Contact,
	).Scan(&company.ID, &company.CreatedAt, &company.UpdatedAt)
}

func (r *companyRepository) GetByID(ctx context.Context, id string) (*domain.TicketCompany, error) {
	const query = `
        SELECT id, name, email, contact, created_at, updated_at
        FROM companies WHERE id=$1`
	var company domain.TicketCompany
	if err := r.pool.QueryRow(ctx, query, id).Scan(
		&company.ID,
		&company.Name,
		&company.Email,
		&company.Contact,
		&company.CreatedAt,
		&company.UpdatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrCompanyNotFound
		}
		return nil, err
	}
	return &company, nil
}

func (r *companyRepository) List(ctx context.Context) ([]domain.TicketCompany, error) {
	const query = `
        SELECT id, name, email, contact, created_at, updated_at
        FROM companies ORDER BY name`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.TicketCompany
	for rows.Next() {
		var company domain.TicketCompany
		if err := rows.Scan(
			&company.ID,
			&company.Name,
			&company.Email,
			&company.Contact,
			&company.CreatedAt,
			&company.UpdatedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, company)
	}
	return result, rows.Err()
}

func (r *companyRepository) Update(ctx context.Context, company *domain.TicketCompany) error {
	const query = `
        UPDATE companies SET name=$1, email=$2, contact=$3, updated_at=NOW()
        WHERE id=$4`
	cmd, err := r.pool.Exec(ctx, query,
		company.Name,
		company.Email,
		company.Contact,
		company.ID,
	)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrCompanyNotFound
	}
	return nil
}

func (r *companyRepository) Delete(ctx context.Context, id string) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM companies WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrCompanyNotFound
	}
	return nil
}
