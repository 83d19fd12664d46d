// Package sales implements the trader's sale transaction: input validation,
// the profit or loss calculation and the last-transaction store.
package sales

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"billdesk/internal/logger"
	"billdesk/internal/store"
	"billdesk/pkg/models"
	"billdesk/pkg/services"
)

// Service keeps the last sale recorded at one till.
type Service struct {
	last store.Slot[models.Sale]
	now  func() time.Time
	log  zerolog.Logger
}

var _ services.SaleService = (*Service)(nil)

// NewService creates a sales service with no transaction stored.
func NewService() *Service {
	return &Service{
		now: time.Now,
		log: logger.WithComponent("sales"),
	}
}

// Create validates input, computes profit or loss and stores the sale.
func (s *Service) Create(ctx context.Context, input models.SaleInput) (*models.Sale, error) {
	const op = "Create"
	log := logger.FromContext(ctx, s.log)

	if err := Validate(input); err != nil {
		log.Debug().Err(err).Str("invoice_no", input.InvoiceNo).Msg("Sale input rejected")
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	sale := models.Sale{
		InvoiceNo:      input.InvoiceNo,
		CustomerName:   input.CustomerName,
		ItemName:       input.ItemName,
		Quantity:       input.Quantity,
		PurchaseAmount: input.PurchaseAmount,
		SellingAmount:  input.SellingAmount,
		CreatedAt:      s.now(),
	}
	Calculate(&sale)

	s.last.Set(sale)

	log.Info().
		Str("invoice_no", sale.InvoiceNo).
		Int("quantity", sale.Quantity).
		Str("status", string(sale.Status)).
		Str("amount", sale.ProfitOrLossAmount.StringFixed(2)).
		Str("margin_pct", sale.ProfitMarginPercent.StringFixed(2)).
		Msg("Sale recorded")

	return &sale, nil
}

// Last returns a copy of the last sale, or ErrNoRecord.
func (s *Service) Last(ctx context.Context) (*models.Sale, error) {
	sale, ok := s.last.Get()
	if !ok {
		return nil, ErrNoRecord
	}
	return &sale, nil
}

// Recalculate reruns the profit or loss calculation on the stored sale.
// The stored inputs were validated on creation and are not checked again.
func (s *Service) Recalculate(ctx context.Context) (*models.Sale, error) {
	sale, ok := s.last.Get()
	if !ok {
		return nil, ErrNoRecord
	}

	Calculate(&sale)
	s.last.Set(sale)

	log := logger.FromContext(ctx, s.log)
	log.Debug().
		Str("invoice_no", sale.InvoiceNo).
		Str("status", string(sale.Status)).
		Msg("Profit/loss recalculated")

	return &sale, nil
}
