package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/anyulbade/payment-fee-estimator/internal/model"
)

const paymentMethodColumns = `id, name, type, service, provider_type, currency, country, source_payment_method_id, created_at`

type PaymentMethodRepository struct {
	pool *pgxpool.Pool
}

func NewPaymentMethodRepository(pool *pgxpool.Pool) *PaymentMethodRepository {
	return &PaymentMethodRepository{pool: pool}
}

func scanPaymentMethod(row pgx.Row, pm *model.PaymentMethod) error {
	return row.Scan(
		&pm.ID, &pm.Name, &pm.Type, &pm.Service, &pm.ProviderType,
		&pm.Currency, &pm.Country, &pm.SourcePaymentMethodID, &pm.CreatedAt,
	)
}

func (r *PaymentMethodRepository) FindByID(ctx context.Context, id string) (*model.PaymentMethod, error) {
	pm := &model.PaymentMethod{}
	err := scanPaymentMethod(r.pool.QueryRow(ctx,
		`SELECT `+paymentMethodColumns+` FROM payment_methods WHERE id = $1`, id), pm)
	if err != nil {
		return nil, err
	}
	return pm, nil
}

func (r *PaymentMethodRepository) List(ctx context.Context, limit, offset int) ([]model.PaymentMethod, int, error) {
	var totalItems int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM payment_methods`).Scan(&totalItems); err != nil {
		return nil, 0, fmt.Errorf("count payment methods: %w", err)
	}

	rows, err := r.pool.Query(ctx,
		`SELECT `+paymentMethodColumns+` FROM payment_methods
		ORDER BY created_at, name
		LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("query payment methods: %w", err)
	}
	defer rows.Close()

	results := make([]model.PaymentMethod, 0, limit)
	for rows.Next() {
		var pm model.PaymentMethod
		if err := scanPaymentMethod(rows, &pm); err != nil {
			return nil, 0, fmt.Errorf("scan payment method: %w", err)
		}
		results = append(results, pm)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterate payment methods: %w", err)
	}

	return results, totalItems, nil
}

func (r *PaymentMethodRepository) Insert(ctx context.Context, pm *model.PaymentMethod) error {
	return r.pool.QueryRow(ctx,
		`INSERT INTO payment_methods (name, type, service, provider_type, currency, country, source_payment_method_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at`,
		pm.Name, pm.Type, pm.Service, pm.ProviderType, pm.Currency, pm.Country, pm.SourcePaymentMethodID,
	).Scan(&pm.ID, &pm.CreatedAt)
}
