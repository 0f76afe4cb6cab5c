package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/anyulbade/payment-fee-estimator/internal/dto"
	"github.com/anyulbade/payment-fee-estimator/internal/model"
)

type PaymentMethodRepository interface {
	PaymentMethodStore
	List(ctx context.Context, limit, offset int) ([]model.PaymentMethod, int, error)
	Insert(ctx context.Context, pm *model.PaymentMethod) error
}

type PaymentMethodService struct {
	repo PaymentMethodRepository
}

func NewPaymentMethodService(repo PaymentMethodRepository) *PaymentMethodService {
	return &PaymentMethodService{repo: repo}
}

func (s *PaymentMethodService) Get(ctx context.Context, id string) (*model.PaymentMethod, error) {
	pm, err := s.repo.FindByID(ctx, id)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", ErrPaymentMethodNotFound, id)
	}
	return pm, err
}

func (s *PaymentMethodService) List(ctx context.Context, p dto.PaginationParams) ([]model.PaymentMethod, int, error) {
	return s.repo.List(ctx, p.PageSize, p.Offset)
}

func (s *PaymentMethodService) Create(ctx context.Context, req *dto.CreatePaymentMethodRequest) (*model.PaymentMethod, error) {
	if req.Type == "" && req.Service == "" && req.ProviderType == "" {
		return nil, &validationErr{field: "type", message: "one of type, service or provider_type is required"}
	}

	if req.SourcePaymentMethodID != "" {
		if _, err := s.Get(ctx, req.SourcePaymentMethodID); err != nil {
			if errors.Is(err, ErrPaymentMethodNotFound) {
				return nil, &validationErr{
					field:   "source_payment_method_id",
					message: fmt.Sprintf("source payment method '%s' not found", req.SourcePaymentMethodID),
				}
			}
			return nil, fmt.Errorf("check source payment method: %w", err)
		}
	}

	pm := &model.PaymentMethod{
		Name:                  req.Name,
		Type:                  req.Type,
		Service:               req.Service,
		ProviderType:          req.ProviderType,
		Currency:              optional(req.Currency),
		Country:               optional(req.Country),
		SourcePaymentMethodID: optional(req.SourcePaymentMethodID),
	}

	if err := s.repo.Insert(ctx, pm); err != nil {
		return nil, err
	}

	return pm, nil
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func ToResponse(pm *model.PaymentMethod) dto.PaymentMethodResponse {
	resp := dto.PaymentMethodResponse{
		ID:           pm.ID,
		Name:         pm.Name,
		Type:         pm.Type,
		Service:      pm.Service,
		ProviderType: pm.ProviderType,
		CreatedAt:    pm.CreatedAt,
	}
	if pm.Currency != nil {
		resp.Currency = *pm.Currency
	}
	if pm.Country != nil {
		resp.Country = *pm.Country
	}
	if pm.SourcePaymentMethodID != nil {
		resp.SourcePaymentMethodID = *pm.SourcePaymentMethodID
	}
	return resp
}
