package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// SaleStatus is the outcome of comparing selling and purchase amounts.
type SaleStatus string

const (
	StatusProfit    SaleStatus = "PROFIT"
	StatusLoss      SaleStatus = "LOSS"
	StatusBreakEven SaleStatus = "BREAK-EVEN"
)

// SaleInput is what the operator types when recording a sale.
type SaleInput struct {
	InvoiceNo      string `validate:"notblank"`
	CustomerName   string
	ItemName       string
	Quantity       int             `validate:"gt=0"`
	PurchaseAmount decimal.Decimal `validate:"dgt0"`  // Total cost of the goods
	SellingAmount  decimal.Decimal `validate:"dgte0"` // Total received from the customer
}

type Sale struct {
	// Inputs
	InvoiceNo      string
	CustomerName   string
	ItemName       string
	Quantity       int
	PurchaseAmount decimal.Decimal
	SellingAmount  decimal.Decimal

	// Derived
	Status              SaleStatus
	ProfitOrLossAmount  decimal.Decimal // Absolute difference between selling and purchase
	ProfitMarginPercent decimal.Decimal // ProfitOrLossAmount / PurchaseAmount * 100

	CreatedAt time.Time
}
