package database

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog/log"

	"github.com/anyulbade/payment-fee-estimator/seeddata"
)

type seedEntry struct {
	Name         string `json:"name"`
	Type         string `json:"type"`
	Service      string `json:"service"`
	ProviderType string `json:"provider_type"`
	Currency     string `json:"currency"`
	Country      string `json:"country"`
	Source       string `json:"source"` // name of an earlier entry
}

func parseSeeds() ([]seedEntry, error) {
	var entries []seedEntry
	if err := json.Unmarshal(seeddata.PaymentMethodsJSON, &entries); err != nil {
		return nil, fmt.Errorf("parse seed JSON: %w", err)
	}
	return entries, nil
}

func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func SeedData(ctx context.Context, pool *pgxpool.Pool) error {
	entries, err := parseSeeds()
	if err != nil {
		return err
	}

	var count int
	err = pool.QueryRow(ctx, "SELECT COUNT(*) FROM payment_methods").Scan(&count)
	if err != nil {
		return fmt.Errorf("check existing data: %w", err)
	}
	if count > 0 {
		log.Info().Msg("seed data already exists, skipping")
		return nil
	}

	tx, err := pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	ids := make(map[string]string, len(entries))
	for _, e := range entries {
		var sourceID *string
		if e.Source != "" {
			id, ok := ids[e.Source]
			if !ok {
				return fmt.Errorf("seed %q references unknown source %q", e.Name, e.Source)
			}
			sourceID = &id
		}

		var id string
		err := tx.QueryRow(ctx,
			`INSERT INTO payment_methods (name, type, service, provider_type, currency, country, source_payment_method_id)
			VALUES ($1, $2, $3, $4, $5, $6, $7)
			RETURNING id`,
			e.Name, e.Type, e.Service, e.ProviderType, nullable(e.Currency), nullable(e.Country), sourceID,
		).Scan(&id)
		if err != nil {
			return fmt.Errorf("insert payment method %s: %w", e.Name, err)
		}
		ids[e.Name] = id
	}
	log.Info().Int("count", len(entries)).Msg("inserted payment methods")

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit seed data: %w", err)
	}

	log.Info().Msg("seed data generation complete")
	return nil
}
