package console

import (
	"billdesk/pkg/models"
)

const saleRule = "------------------------------------------------------"

func yesNo(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}

// printBillTotals shows the amounts calculated for a freshly created bill.
func printBillTotals(p *Prompter, bill *models.Bill) {
	p.Printf("GrossAmount: %s\n", bill.GrossAmount.StringFixed(2))
	p.Printf("DiscountAmount: %s\n", bill.DiscountAmount.StringFixed(2))
	p.Printf("FinalPayable: %s\n", bill.FinalPayable.StringFixed(2))
	p.Println("----------------------------------------------------------")
	p.Println()
}

func printBill(p *Prompter, bill *models.Bill) {
	p.Printf("BillId: %s\n", bill.ID)
	p.Printf("Patient: %s\n", bill.PatientName)
	p.Printf("Insured: %s\n", yesNo(bill.HasInsurance))
	p.Printf("ConsultationFee: %s\n", bill.ConsultationFee.StringFixed(2))
	p.Printf("Lab Charges: %s\n", bill.LabCharges.StringFixed(2))
	p.Printf("Medicine Charges: %s\n", bill.MedicineCharges.StringFixed(2))
	p.Printf("Gross Amount: %s\n", bill.GrossAmount.StringFixed(2))
	p.Printf("Discount Amount: %s\n", bill.DiscountAmount.StringFixed(2))
	p.Printf("Final Payable: %s\n", bill.FinalPayable.StringFixed(2))
	p.Println("--------------------------------")
	p.Println()
}

// printSaleResult shows the profit or loss lines of a sale.
func printSaleResult(p *Prompter, sale *models.Sale) {
	p.Printf("Status: %s\n", sale.Status)
	p.Printf("Profit/Loss Amount: %s\n", sale.ProfitOrLossAmount.StringFixed(2))
	p.Printf("Profit Margin (%%): %s\n", sale.ProfitMarginPercent.StringFixed(2))
}

func printSale(p *Prompter, sale *models.Sale) {
	p.Println()
	p.Println("-------------- Last Transaction --------------")
	p.Printf("InvoiceNo: %s\n", sale.InvoiceNo)
	p.Printf("Customer: %s\n", sale.CustomerName)
	p.Printf("Item: %s\n", sale.ItemName)
	p.Printf("Quantity: %d\n", sale.Quantity)
	p.Printf("Purchase Amount: %s\n", sale.PurchaseAmount.StringFixed(2))
	p.Printf("Selling Amount: %s\n", sale.SellingAmount.StringFixed(2))
	printSaleResult(p, sale)
	p.Println("--------------------------------------------")
	p.Println(saleRule)
}
