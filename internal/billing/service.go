// Package billing implements the clinic desk patient bill: validation of the
// entered charges, the insurance discount calculation and the last-bill store.
//
// Billing rules:
//   - Gross amount is consultation fee + lab charges + medicine charges
//   - Insured patients receive a 10% discount on the gross amount
//   - Final payable is gross amount minus discount
//   - Consultation fee must be greater than zero, lab and medicine charges may be zero
package billing

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

// Service keeps the last bill created at one clinic desk.
type Service struct {
	last store.Slot[models.Bill]
	now  func() time.Time
	log  zerolog.Logger
}

var _ services.BillService = (*Service)(nil)

// NewService creates a billing service with an empty desk.
func NewService() *Service {
	return &Service{
		now: time.Now,
		log: logger.WithComponent("billing"),
	}
}

// Create validates input, calculates the bill and stores it as the last bill.
func (s *Service) Create(ctx context.Context, input models.BillInput) (*models.Bill, error) {
	const op = "Create"
	log := logger.FromContext(ctx, s.log)

	if err := Validate(input); err != nil {
		log.Debug().Err(err).Str("bill_id", input.ID).Msg("Bill input rejected")
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	insured, err := ParseInsurance(input.InsuranceAnswer)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	bill := models.Bill{
		ID:              input.ID,
		PatientName:     input.PatientName,
		HasInsurance:    insured,
		ConsultationFee: input.ConsultationFee,
		LabCharges:      input.LabCharges,
		MedicineCharges: input.MedicineCharges,
		CreatedAt:       s.now(),
	}
	Calculate(&bill)

	s.last.Set(bill)

	log.Info().
		Str("bill_id", bill.ID).
		Bool("insured", bill.HasInsurance).
		Str("gross", bill.GrossAmount.StringFixed(2)).
		Str("discount", bill.DiscountAmount.StringFixed(2)).
		Str("final_payable", bill.FinalPayable.StringFixed(2)).
		Msg("Bill created")

	return &bill, nil
}

// Last returns a copy of the last bill, or ErrNoRecord.
func (s *Service) Last(ctx context.Context) (*models.Bill, error) {
	bill, ok := s.last.Get()
	if !ok {
		return nil, ErrNoRecord
	}
	return &bill, nil
}

// Clear forgets the last bill.
func (s *Service) Clear(ctx context.Context) error {
	log := logger.FromContext(ctx, s.log)

	if !s.last.Has() {
		log.Debug().Msg("Clear requested with no bill stored")
	}
	s.last.Clear()

	log.Info().Msg("Last bill cleared")
	return nil
}
