package cmd

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"billdesk/internal/console"
)

func execute(t *testing.T, input string, args ...string) (string, error) {
	t.Helper()
	if args == nil {
		args = []string{}
	}
	var out bytes.Buffer
	rootCmd.SetArgs(args)
	rootCmd.SetIn(strings.NewReader(input))
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestRoot_Welcome(t *testing.T) {
	out, err := execute(t, "")
	require.NoError(t, err)
	assert.Contains(t, out, "Welcome to Billdesk!")
}

func TestBillCommand(t *testing.T) {
	t.Setenv("CLINIC_NAME", "Riverside Clinic")

	out, err := execute(t, "1\nB1\nAsha\nY\n500\n200\n100\n4\n", "bill")
	require.NoError(t, err)

	assert.Contains(t, out, "================== Riverside Clinic ==================")
	assert.Contains(t, out, "FinalPayable: 720.00")
	assert.Contains(t, out, "Thank you. Application closed normally.")
}

func TestSaleCommand(t *testing.T) {
	out, err := execute(t, "1\nINV-1\nMeera\nRice\n2\n100\n150\n4\n", "sale")
	require.NoError(t, err)

	assert.Contains(t, out, "Status: PROFIT")
	assert.Contains(t, out, "Profit Margin (%): 50.00")
}

func TestCommands_ClosedInputFails(t *testing.T) {
	_, err := execute(t, "1\n", "sale")
	assert.ErrorIs(t, err, console.ErrInputClosed)

	_, err = execute(t, "", "bill")
	assert.ErrorIs(t, err, console.ErrInputClosed)
}

func TestCommands_RejectArguments(t *testing.T) {
	_, err := execute(t, "", "bill", "extra")
	assert.Error(t, err)
}
