package sales

import (
	"billdesk/internal/validation"
	"billdesk/pkg/models"
)

// Field names of models.SaleInput, used for checking input as it is typed.
const (
	FieldInvoiceNo      = "InvoiceNo"
	FieldQuantity       = "Quantity"
	FieldPurchaseAmount = "PurchaseAmount"
	FieldSellingAmount  = "SellingAmount"
)

var inputValidator = validation.New(validation.Messages{
	FieldInvoiceNo:      "Invoice No cannot be empty.",
	FieldQuantity:       "Quantity must be greater than zero.",
	FieldPurchaseAmount: "Purchase Amount must be greater than zero.",
	FieldSellingAmount:  "Selling Amount cannot be negative.",
})

// Validate checks every field of input.
func Validate(input models.SaleInput) error {
	return inputValidator.Struct(input)
}

// ValidateFields checks only the named fields of input.
func ValidateFields(input models.SaleInput, fields ...string) error {
	return inputValidator.Fields(input, fields...)
}
