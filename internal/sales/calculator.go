package sales

import (
	"github.com/shopspring/decimal"

	"billdesk/pkg/models"
)

var hundred = decimal.NewFromInt(100)

// Calculate sets status, profit or loss amount and margin of sale from its
// purchase and selling amounts. PurchaseAmount must be greater than zero;
// callers validate before calculating.
func Calculate(sale *models.Sale) {
	switch sale.SellingAmount.Cmp(sale.PurchaseAmount) {
	case 1:
		sale.Status = models.StatusProfit
		sale.ProfitOrLossAmount = sale.SellingAmount.Sub(sale.PurchaseAmount)
	case -1:
		sale.Status = models.StatusLoss
		sale.ProfitOrLossAmount = sale.PurchaseAmount.Sub(sale.SellingAmount)
	default:
		sale.Status = models.StatusBreakEven
		sale.ProfitOrLossAmount = decimal.Zero
	}

	sale.ProfitMarginPercent = sale.ProfitOrLossAmount.Div(sale.PurchaseAmount).Mul(hundred)
}
