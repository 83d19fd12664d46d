package console

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"billdesk/internal/sales"
)

func runSaleDesk(t *testing.T, input string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	session := NewSaleSession("QuickMart Traders", sales.NewService(), strings.NewReader(input), &out)
	err := session.Run(context.Background())
	return out.String(), err
}

func TestSaleSession_CreateAndView(t *testing.T) {
	out, err := runSaleDesk(t, lines("1", "INV-1", "Meera", "Rice", "2", "100", "150", "2", "4"))
	require.NoError(t, err)

	assert.Contains(t, out, "================== QuickMart Traders ==================\n")
	assert.Contains(t, out, "\nTransaction saved successfully.\nStatus: PROFIT\nProfit/Loss Amount: 50.00\nProfit Margin (%): 50.00\n")
	assert.Contains(t, out, "-------------- Last Transaction --------------\nInvoiceNo: INV-1\nCustomer: Meera\nItem: Rice\nQuantity: 2\n")
	assert.Contains(t, out, "Purchase Amount: 100.00\nSelling Amount: 150.00\n")
	assert.True(t, strings.HasSuffix(out, closingMessage+"\n"))
}

func TestSaleSession_Outcomes(t *testing.T) {
	tests := []struct {
		purchase, selling string
		want              string
	}{
		{"200", "200", "Status: BREAK-EVEN\nProfit/Loss Amount: 0.00\nProfit Margin (%): 0.00\n"},
		{"100", "60", "Status: LOSS\nProfit/Loss Amount: 40.00\nProfit Margin (%): 40.00\n"},
	}

	for _, tt := range tests {
		out, err := runSaleDesk(t, lines("1", "INV", "C", "I", "1", tt.purchase, tt.selling, "4"))
		require.NoError(t, err)
		assert.Contains(t, out, tt.want)
	}
}

func TestSaleSession_RecalculateIsRepeatable(t *testing.T) {
	out, err := runSaleDesk(t, lines("1", "INV-1", "Meera", "Rice", "2", "100", "150", "3", "3", "4"))
	require.NoError(t, err)

	result := "Status: PROFIT\nProfit/Loss Amount: 50.00\nProfit Margin (%): 50.00\n" + saleRule + "\n"
	assert.Equal(t, 3, strings.Count(out, result))
}

func TestSaleSession_EmptyStore(t *testing.T) {
	out, err := runSaleDesk(t, lines("2", "3", "4"))
	require.NoError(t, err)

	assert.Equal(t, 2, strings.Count(out, noTransaction+"\n"))
}

func TestSaleSession_RejectedInput(t *testing.T) {
	tests := []struct {
		name        string
		answers     []string
		wantMessage string
		notAsked    string
	}{
		{"empty invoice", []string{"1", ""}, "Invoice No cannot be empty.", "Enter Customer Name: "},
		{"zero quantity", []string{"1", "INV", "C", "I", "0"}, "Quantity must be greater than zero.", "Enter Purchase Amount (total): "},
		{"quantity not a number", []string{"1", "INV", "C", "I", "two"}, "Quantity must be a whole number.", "Enter Purchase Amount (total): "},
		{"zero purchase", []string{"1", "INV", "C", "I", "1", "0"}, "Purchase Amount must be greater than zero.", "Enter Selling Amount (total): "},
		{"negative selling", []string{"1", "INV", "C", "I", "1", "10", "-1"}, "Selling Amount cannot be negative.", ""},
		{"selling not a number", []string{"1", "INV", "C", "I", "1", "10", "ten"}, "Selling Amount must be a number.", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			answers := append(tt.answers, "2", "4")
			out, err := runSaleDesk(t, lines(answers...))
			require.NoError(t, err)

			assert.Contains(t, out, tt.wantMessage+"\n")
			if tt.notAsked != "" {
				assert.NotContains(t, out, tt.notAsked)
			}
			assert.NotContains(t, out, "Transaction saved successfully.")
			assert.Contains(t, out, noTransaction)
		})
	}
}

func TestSaleSession_NewSaleReplacesOld(t *testing.T) {
	out, err := runSaleDesk(t, lines(
		"1", "INV-1", "Meera", "Rice", "2", "100", "150",
		"1", "INV-2", "", "", "1", "100", "60",
		"2", "4"))
	require.NoError(t, err)

	view := out[strings.LastIndex(out, "-------------- Last Transaction"):]
	assert.Contains(t, view, "InvoiceNo: INV-2\nCustomer: \nItem: \nQuantity: 1\n")
	assert.Contains(t, view, "Status: LOSS\n")
}

func TestSaleSession_InvalidMenuOptionAndClosedInput(t *testing.T) {
	out, err := runSaleDesk(t, lines("5", "x"))

	assert.ErrorIs(t, err, ErrInputClosed)
	assert.Equal(t, 2, strings.Count(out, "Invalid option. Please choose a valid menu option.\n"))
}
