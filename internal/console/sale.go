package console

import (
	"context"
	"errors"
	"io"

	"github.com/rs/zerolog"

	"billdesk/internal/logger"
	"billdesk/internal/sales"
	"billdesk/internal/validation"
	"billdesk/pkg/models"
	"billdesk/pkg/services"
)

const (
	saleOptionCreate = iota + 1
	saleOptionView
	saleOptionRecalculate
	saleOptionExit
)

const noTransaction = "No transaction available. Please create a new transaction first."

// SaleSession is the trader's menu: record, view and recalculate the last sale.
type SaleSession struct {
	title   string
	service services.SaleService
	prompt  *Prompter
	log     zerolog.Logger
}

// NewSaleSession creates a sale tracker menu reading from in and writing to out.
func NewSaleSession(title string, service services.SaleService, in io.Reader, out io.Writer) *SaleSession {
	return &SaleSession{
		title:   title,
		service: service,
		prompt:  NewPrompter(in, out),
		log:     logger.WithComponent("sale-session"),
	}
}

// Run shows the menu until the operator exits. It returns an error only when
// input can no longer be read.
func (s *SaleSession) Run(ctx context.Context) error {
	return run(ctx, s.prompt, "sale-session", menu{
		title: s.title,
		options: []string{
			"Create New Transaction (Enter Purchase & Selling Details)",
			"View Last Transaction",
			"Calculate Profit/Loss (Recompute & Print)",
			"Exit",
		},
		invalidText: "Invalid option. Please choose a valid menu option.",
		handle:      s.handle,
	})
}

func (s *SaleSession) handle(ctx context.Context, option int) (bool, error) {
	switch option {
	case saleOptionCreate:
		return true, s.create(ctx)
	case saleOptionView:
		return true, s.view(ctx)
	case saleOptionRecalculate:
		return true, s.recalculate(ctx)
	case saleOptionExit:
		return false, nil
	}
	return true, nil
}

func (s *SaleSession) create(ctx context.Context) error {
	p := s.prompt
	log := logger.FromContext(ctx, s.log)
	var input models.SaleInput
	var err error

	if input.InvoiceNo, err = p.Ask("Enter Invoice No: "); err != nil {
		return err
	}
	if err := sales.ValidateFields(input, sales.FieldInvoiceNo); err != nil {
		return reject(p, log, err)
	}

	if input.CustomerName, err = p.Ask("Enter Customer Name: "); err != nil {
		return err
	}
	if input.ItemName, err = p.Ask("Enter Item Name: "); err != nil {
		return err
	}

	raw, err := p.Ask("Enter Quantity: ")
	if err != nil {
		return err
	}
	if input.Quantity, err = validation.ParseQuantity(sales.FieldQuantity, "Quantity", raw); err != nil {
		return reject(p, log, err)
	}
	if err := sales.ValidateFields(input, sales.FieldQuantity); err != nil {
		return reject(p, log, err)
	}

	if raw, err = p.Ask("Enter Purchase Amount (total): "); err != nil {
		return err
	}
	if input.PurchaseAmount, err = validation.ParseAmount(sales.FieldPurchaseAmount, "Purchase Amount", raw); err != nil {
		return reject(p, log, err)
	}
	if err := sales.ValidateFields(input, sales.FieldPurchaseAmount); err != nil {
		return reject(p, log, err)
	}

	if raw, err = p.Ask("Enter Selling Amount (total): "); err != nil {
		return err
	}
	if input.SellingAmount, err = validation.ParseAmount(sales.FieldSellingAmount, "Selling Amount", raw); err != nil {
		return reject(p, log, err)
	}

	sale, err := s.service.Create(ctx, input)
	if err != nil {
		return reject(p, log, err)
	}

	p.Println()
	p.Println("Transaction saved successfully.")
	printSaleResult(p, sale)
	p.Println(saleRule)
	return nil
}

func (s *SaleSession) view(ctx context.Context) error {
	sale, err := s.service.Last(ctx)
	if errors.Is(err, sales.ErrNoRecord) {
		s.prompt.Println(noTransaction)
		return nil
	}
	if err != nil {
		return err
	}

	printSale(s.prompt, sale)
	return nil
}

func (s *SaleSession) recalculate(ctx context.Context) error {
	sale, err := s.service.Recalculate(ctx)
	if errors.Is(err, sales.ErrNoRecord) {
		s.prompt.Println(noTransaction)
		return nil
	}
	if err != nil {
		return err
	}

	printSaleResult(s.prompt, sale)
	s.prompt.Println(saleRule)
	return nil
}
