package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/anyulbade/payment-fee-estimator/internal/dto"
	"github.com/anyulbade/payment-fee-estimator/internal/fees"
	"github.com/anyulbade/payment-fee-estimator/internal/model"
)

var ErrPaymentMethodNotFound = errors.New("payment method not found")

type PaymentMethodStore interface {
	FindByID(ctx context.Context, id string) (*model.PaymentMethod, error)
}

type EstimateRecorder interface {
	RecordEstimate(category fees.Category, exact bool)
	RecordBatch(size int)
}

type FeeService struct {
	store       PaymentMethodStore
	estimator   *fees.Estimator
	recorder    EstimateRecorder
	concurrency int
}

func NewFeeService(store PaymentMethodStore, estimator *fees.Estimator, recorder EstimateRecorder, concurrency int) *FeeService {
	if concurrency < 1 {
		concurrency = 1
	}
	return &FeeService{store: store, estimator: estimator, recorder: recorder, concurrency: concurrency}
}

func (s *FeeService) Estimate(ctx context.Context, req *dto.EstimateRequest) (*dto.EstimateResponse, error) {
	resp, category, err := s.estimate(ctx, req)
	if err != nil {
		return nil, err
	}
	s.recorder.RecordEstimate(category, resp.IsExact)
	return resp, nil
}

// estimate computes a single estimate without recording metrics.
func (s *FeeService) estimate(ctx context.Context, req *dto.EstimateRequest) (*dto.EstimateResponse, fees.Category, error) {
	if req.PaymentMethod != nil && req.PaymentMethodID != "" {
		return nil, fees.CategoryOther, &validationErr{field: "payment_method", message: "set either payment_method or payment_method_id, not both"}
	}

	pm := req.PaymentMethod
	if req.PaymentMethodID != "" {
		var err error
		pm, err = s.Resolve(ctx, req.PaymentMethodID)
		if err != nil {
			return nil, fees.CategoryOther, err
		}
	}

	var amount int64
	if req.Amount != nil {
		amount = *req.Amount
	}

	est := s.estimator.Estimate(pm, amount, req.CollectiveCurrency)
	category := fees.Categorize(pm)

	log.Debug().
		Str("category", category.String()).
		Int64("amount", amount).
		Str("collective_currency", req.CollectiveCurrency).
		Float64("fee", est.Fee).
		Bool("exact", est.IsExact).
		Msg("fee estimated")

	return &dto.EstimateResponse{
		FeeEstimate:        est,
		Category:           category.String(),
		Amount:             amount,
		CollectiveCurrency: req.CollectiveCurrency,
		PaymentMethodID:    req.PaymentMethodID,
	}, category, nil
}

// EstimateBatch estimates every item, resolving stored payment methods
// concurrently. Results keep the request order. Per-item problems are
// returned as validation errors; only infrastructure failures abort.
// Estimates are recorded only when the whole batch succeeds.
func (s *FeeService) EstimateBatch(ctx context.Context, req *dto.BatchEstimateRequest) ([]dto.EstimateResponse, []dto.ValidationError, error) {
	s.recorder.RecordBatch(len(req.Items))

	results := make([]dto.EstimateResponse, len(req.Items))
	categories := make([]fees.Category, len(req.Items))
	itemErrs := make([]*validationErr, len(req.Items))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.concurrency)

	for i := range req.Items {
		g.Go(func() error {
			resp, category, err := s.estimate(gctx, &req.Items[i])
			var ve *validationErr
			switch {
			case errors.As(err, &ve):
				itemErrs[i] = ve
				return nil
			case errors.Is(err, ErrPaymentMethodNotFound):
				itemErrs[i] = &validationErr{field: "payment_method_id", message: err.Error()}
				return nil
			case err != nil:
				return fmt.Errorf("estimate item %d: %w", i, err)
			}
			results[i] = *resp
			categories[i] = category
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, nil, err
	}

	var validationErrors []dto.ValidationError
	for i, ve := range itemErrs {
		if ve != nil {
			validationErrors = append(validationErrors, dto.ValidationError{
				Index:   i,
				Field:   ve.field,
				Message: ve.message,
			})
		}
	}
	if len(validationErrors) > 0 {
		return nil, validationErrors, nil
	}

	for i := range results {
		s.recorder.RecordEstimate(categories[i], results[i].IsExact)
	}

	return results, nil, nil
}

// Resolve loads a stored payment method as a fee descriptor, including its
// funding source when it has one.
func (s *FeeService) Resolve(ctx context.Context, id string) (*fees.PaymentMethod, error) {
	row, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}

	pm := ToDescriptor(row)
	if row.SourcePaymentMethodID != nil {
		src, err := s.find(ctx, *row.SourcePaymentMethodID)
		switch {
		case errors.Is(err, ErrPaymentMethodNotFound):
			log.Warn().
				Str("payment_method_id", id).
				Str("source_payment_method_id", *row.SourcePaymentMethodID).
				Msg("source payment method missing, estimating without it")
		case err != nil:
			return nil, err
		default:
			pm.SourcePaymentMethod = ToDescriptor(src)
		}
	}

	return pm, nil
}

func (s *FeeService) find(ctx context.Context, id string) (*model.PaymentMethod, error) {
	row, err := s.store.FindByID(ctx, id)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", ErrPaymentMethodNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("find payment method %s: %w", id, err)
	}
	return row, nil
}

// ToDescriptor maps a stored row onto the shape the estimator reads. The
// source link is not followed.
func ToDescriptor(row *model.PaymentMethod) *fees.PaymentMethod {
	pm := &fees.PaymentMethod{
		Type:               fees.Type(row.Type),
		Service:            fees.Service(row.Service),
		LegacyProviderType: fees.LegacyType(row.ProviderType),
	}
	if row.Currency != nil && *row.Currency != "" {
		pm.Balance = &fees.Balance{Currency: *row.Currency}
	}
	if row.Country != nil && *row.Country != "" {
		pm.Data = &fees.Data{Country: *row.Country}
	}
	return pm
}

type validationErr struct {
	field   string
	message string
}

func (e *validationErr) Error() string {
	return fmt.Sprintf("%s: %s", e.field, e.message)
}

// ValidationField reports the offending field when err is a validation
// failure.
func ValidationField(err error) (string, bool) {
	var ve *validationErr
	if errors.As(err, &ve) {
		return ve.field, true
	}
	return "", false
}
