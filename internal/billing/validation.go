package billing

import (
	"billdesk/internal/validation"
	"billdesk/pkg/models"
)

// Field names of models.BillInput, used for checking input as it is typed.
const (
	FieldID              = "ID"
	FieldInsuranceAnswer = "InsuranceAnswer"
	FieldConsultationFee = "ConsultationFee"
	FieldLabCharges      = "LabCharges"
	FieldMedicineCharges = "MedicineCharges"
)

// FeeFields are checked together once all three charges have been entered.
var FeeFields = []string{FieldConsultationFee, FieldLabCharges, FieldMedicineCharges}

const invalidFees = "Invalid fee values entered."

var inputValidator = validation.New(validation.Messages{
	FieldID:              "Bill Id cannot be empty.",
	FieldInsuranceAnswer: "Invalid insurance option.",
	FieldConsultationFee: invalidFees,
	FieldLabCharges:      invalidFees,
	FieldMedicineCharges: invalidFees,
})

// Validate checks every field of input.
func Validate(input models.BillInput) error {
	return inputValidator.Struct(input)
}

// ValidateFields checks only the named fields of input.
func ValidateFields(input models.BillInput, fields ...string) error {
	return inputValidator.Fields(input, fields...)
}

// ParseInsurance maps a Y/N answer to the insurance flag.
func ParseInsurance(answer string) (bool, error) {
	switch answer {
	case "Y", "y":
		return true, nil
	case "N", "n":
		return false, nil
	default:
		return false, validation.NewValidationError(FieldInsuranceAnswer, answer,
			"Invalid insurance option.", validation.ErrInvalidOption)
	}
}
