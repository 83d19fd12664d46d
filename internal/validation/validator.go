// Package validation checks console input against struct tag rules and turns
// rule failures into ValidationError values carrying operator-facing messages.
//
// Input structs use go-playground/validator tags. Extras registered here:
//   - notblank: string must contain something other than whitespace
//   - dgt0, dgte0: decimal.Decimal must be greater than, or at least, zero
package validation

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
	"github.com/shopspring/decimal"
)

var validate = newValidate()

func newValidate() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	rules := map[string]validator.Func{
		"notblank": validators.NotBlank,
		"dgt0":     decimalSign(func(sign int) bool { return sign > 0 }),
		"dgte0":    decimalSign(func(sign int) bool { return sign >= 0 }),
	}
	for tag, fn := range rules {
		if err := v.RegisterValidation(tag, fn); err != nil {
			panic(fmt.Sprintf("validation: register %s: %v", tag, err))
		}
	}
	return v
}

// decimalSign checks the sign of a decimal.Decimal field exactly.
func decimalSign(ok func(sign int) bool) validator.Func {
	return func(fl validator.FieldLevel) bool {
		d, isDecimal := fl.Field().Interface().(decimal.Decimal)
		return isDecimal && ok(d.Sign())
	}
}

// Messages maps a struct field name to the text shown when that field fails.
type Messages map[string]string

// Validator validates one input type with its own set of messages.
type Validator struct {
	messages Messages
}

// New creates a validator that reports failures using messages.
func New(messages Messages) *Validator {
	return &Validator{messages: messages}
}

// Struct validates every tagged field of input and returns the first failure.
func (v *Validator) Struct(input interface{}) error {
	return v.translate(validate.Struct(input))
}

// Fields validates only the named fields of input, in struct order.
func (v *Validator) Fields(input interface{}, fields ...string) error {
	return v.translate(validate.StructPartial(input, fields...))
}

func (v *Validator) translate(err error) error {
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return fmt.Errorf("validation: %w", err)
	}

	fe := fieldErrs[0]
	field := fe.StructField()
	message, ok := v.messages[field]
	if !ok {
		message = fmt.Sprintf("%s is invalid.", field)
	}
	return NewValidationError(field, fe.Value(), message, sentinelFor(fe.Tag()))
}

func sentinelFor(tag string) error {
	switch tag {
	case "required", "notblank":
		return ErrRequired
	case "oneof":
		return ErrInvalidOption
	default:
		return ErrOutOfRange
	}
}

// ParseAmount reads a decimal amount typed by the operator.
func ParseAmount(field, label, raw string) (decimal.Decimal, error) {
	trimmed := strings.TrimSpace(raw)
	amount, err := decimal.NewFromString(trimmed)
	if err != nil {
		return decimal.Zero, NewValidationError(field, raw,
			fmt.Sprintf("%s must be a number.", label), ErrInvalidNumber)
	}
	return amount, nil
}

// ParseQuantity reads a whole number typed by the operator.
func ParseQuantity(field, label, raw string) (int, error) {
	trimmed := strings.TrimSpace(raw)
	n, err := strconv.Atoi(trimmed)
	if err != nil {
		return 0, NewValidationError(field, raw,
			fmt.Sprintf("%s must be a whole number.", label), ErrInvalidNumber)
	}
	return n, nil
}
