package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/shopdesk/shopdesk/internal/domain"
)

// ProfileRepository implements usecase.ProfileRepository. The company
// profile is a single row; a missing row reads back as an empty
// profile so the resolver can fall through to its other sources.
type ProfileRepository struct {
	pool *pgxpool.Pool
}

// NewProfileRepository creates a new ProfileRepository.
func NewProfileRepository(pool *pgxpool.Pool) *ProfileRepository {
	return &ProfileRepository{pool: pool}
}

const selectProfileSQL = `
SELECT name, address, phone, email, tax_id
FROM company_profile
WHERE id = 1`

// Get retrieves the company profile.
func (r *ProfileRepository) Get(ctx context.Context) (domain.CompanyProfile, error) {
	var p domain.CompanyProfile

	err := r.pool.QueryRow(ctx, selectProfileSQL).Scan(
		&p.Name, &p.Address, &p.Phone, &p.Email, &p.TaxID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.CompanyProfile{}, nil
		}
		return domain.CompanyProfile{}, err
	}

	return p, nil
}
