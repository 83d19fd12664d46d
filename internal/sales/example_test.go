package sales_test

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"billdesk/internal/sales"
	"billdesk/pkg/models"
)

func Example() {
	ctx := context.Background()
	service := sales.NewService()

	sale, err := service.Create(ctx, models.SaleInput{
		InvoiceNo:      "Q-100",
		CustomerName:   "Lakshmi",
		ItemName:       "Sugar",
		Quantity:       10,
		PurchaseAmount: decimal.NewFromInt(100),
		SellingAmount:  decimal.NewFromInt(60),
	})
	if err != nil {
		fmt.Println(err)
		return
	}

	fmt.Printf("%s %s (%s%%)\n", sale.Status, sale.ProfitOrLossAmount.StringFixed(2), sale.ProfitMarginPercent.StringFixed(2))

	// Output:
	// LOSS 40.00 (40.00%)
}
