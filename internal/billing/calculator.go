package billing

import (
	"github.com/shopspring/decimal"

	"billdesk/pkg/models"
)

// insuranceDiscountRate is the share of the gross amount waived for insured patients.
var insuranceDiscountRate = decimal.RequireFromString("0.10")

// Calculate fills the derived amounts of bill from its charges and insurance flag.
// Gross, discount and final payable are always written together.
func Calculate(bill *models.Bill) {
	gross := bill.ConsultationFee.Add(bill.LabCharges).Add(bill.MedicineCharges)

	discount := decimal.Zero
	if bill.HasInsurance {
		discount = gross.Mul(insuranceDiscountRate)
	}

	bill.GrossAmount = gross
	bill.DiscountAmount = discount
	bill.FinalPayable = gross.Sub(discount)
}
