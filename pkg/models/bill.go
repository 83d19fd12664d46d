package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// BillInput is what the operator types when creating a patient bill.
type BillInput struct {
	ID              string `validate:"notblank"`
	PatientName     string
	InsuranceAnswer string          `validate:"oneof=Y y N n"` // Y/y = insured, N/n = not insured
	ConsultationFee decimal.Decimal `validate:"dgt0"`
	LabCharges      decimal.Decimal `validate:"dgte0"`
	MedicineCharges decimal.Decimal `validate:"dgte0"`
}

type Bill struct {
	// Inputs
	ID              string
	PatientName     string
	HasInsurance    bool
	ConsultationFee decimal.Decimal
	LabCharges      decimal.Decimal
	MedicineCharges decimal.Decimal

	// Derived, always written together by the calculator
	GrossAmount    decimal.Decimal // Consultation + lab + medicine
	DiscountAmount decimal.Decimal // Insurance discount on gross, zero if uninsured
	FinalPayable   decimal.Decimal // Gross - discount

	CreatedAt time.Time
}
