package services

import (
	"context"

	"billdesk/pkg/models"
)

// BillService manages the last patient bill created at the clinic desk
type BillService interface {
	// Create validates input, calculates the bill and makes it the last bill.
	// On validation failure the previously stored bill is left untouched.
	Create(ctx context.Context, input models.BillInput) (*models.Bill, error)

	// Last returns the most recently created bill
	Last(ctx context.Context) (*models.Bill, error)

	// Clear forgets the last bill. Clearing an empty desk is not an error.
	Clear(ctx context.Context) error
}

// SaleService manages the last sale transaction recorded at the till
type SaleService interface {
	// Create validates input, computes profit or loss and makes it the last sale.
	// On validation failure the previously stored sale is left untouched.
	Create(ctx context.Context, input models.SaleInput) (*models.Sale, error)

	// Last returns the most recently recorded sale
	Last(ctx context.Context) (*models.Sale, error)

	// Recalculate recomputes profit or loss for the stored sale in place
	Recalculate(ctx context.Context) (*models.Sale, error)
}
