package console

import (
	"context"
	"errors"
	"io"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"billdesk/internal/billing"
	"billdesk/internal/logger"
	"billdesk/internal/validation"
	"billdesk/pkg/models"
	"billdesk/pkg/services"
)

const (
	billOptionCreate = iota + 1
	billOptionView
	billOptionClear
	billOptionExit
)

// BillSession is the clinic desk menu: create, view and clear the last bill.
type BillSession struct {
	title   string
	service services.BillService
	prompt  *Prompter
	log     zerolog.Logger
}

// NewBillSession creates a billing menu reading from in and writing to out.
func NewBillSession(title string, service services.BillService, in io.Reader, out io.Writer) *BillSession {
	return &BillSession{
		title:   title,
		service: service,
		prompt:  NewPrompter(in, out),
		log:     logger.WithComponent("bill-session"),
	}
}

// Run shows the menu until the operator exits. It returns an error only when
// input can no longer be read.
func (s *BillSession) Run(ctx context.Context) error {
	return run(ctx, s.prompt, "bill-session", menu{
		title: s.title,
		options: []string{
			"Create New Bill (Enter Patient Details)",
			"View Last Bill",
			"Clear Last Bill",
			"Exit",
		},
		invalidText: "Invalid input. Please choose from choices Above.",
		handle:      s.handle,
	})
}

func (s *BillSession) handle(ctx context.Context, option int) (bool, error) {
	switch option {
	case billOptionCreate:
		return true, s.create(ctx)
	case billOptionView:
		return true, s.view(ctx)
	case billOptionClear:
		return true, s.clear(ctx)
	case billOptionExit:
		return false, nil
	}
	return true, nil
}

func (s *BillSession) create(ctx context.Context) error {
	p := s.prompt
	log := logger.FromContext(ctx, s.log)
	var input models.BillInput
	var err error

	if input.ID, err = p.Ask("Enter Bill Id: "); err != nil {
		return err
	}
	if err := billing.ValidateFields(input, billing.FieldID); err != nil {
		return reject(p, log, err)
	}

	if input.PatientName, err = p.Ask("Enter Patient Name: "); err != nil {
		return err
	}

	if input.InsuranceAnswer, err = p.Ask("Is the patient insured? (Y/N): "); err != nil {
		return err
	}
	if err := billing.ValidateFields(input, billing.FieldInsuranceAnswer); err != nil {
		return reject(p, log, err)
	}

	amounts := []struct {
		field  string
		label  string
		target *decimal.Decimal
	}{
		{billing.FieldConsultationFee, "Consultation Fee", &input.ConsultationFee},
		{billing.FieldLabCharges, "Lab Charges", &input.LabCharges},
		{billing.FieldMedicineCharges, "Medicine Charges", &input.MedicineCharges},
	}
	for _, a := range amounts {
		raw, err := p.Ask("Enter " + a.label + ": ")
		if err != nil {
			return err
		}
		if *a.target, err = validation.ParseAmount(a.field, a.label, raw); err != nil {
			return reject(p, log, err)
		}
	}
	if err := billing.ValidateFields(input, billing.FeeFields...); err != nil {
		return reject(p, log, err)
	}

	bill, err := s.service.Create(ctx, input)
	if err != nil {
		return reject(p, log, err)
	}

	p.Println("Bill created successfully.")
	printBillTotals(p, bill)
	return nil
}

func (s *BillSession) view(ctx context.Context) error {
	s.prompt.Println("----------- Last Bill -----------")

	bill, err := s.service.Last(ctx)
	if errors.Is(err, billing.ErrNoRecord) {
		s.prompt.Println("No bill available. Please create a new bill first.")
		return nil
	}
	if err != nil {
		return err
	}

	printBill(s.prompt, bill)
	return nil
}

func (s *BillSession) clear(ctx context.Context) error {
	if err := s.service.Clear(ctx); err != nil {
		return err
	}
	s.prompt.Println("Last bill cleared.")
	s.prompt.Println()
	return nil
}
