package dto

import (
	"reflect"
	"strings"

	"banking-core/internal/core/domain"
	"banking-core/pkg/money"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// A digitable line has 47 or 48 digits, a barcode 44.
const (
	minBoletoCodeDigits = 44
	maxBoletoCodeDigits = 48
)

func init() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterCustomTypeFunc(amountValue, money.Amount{})
		_ = v.RegisterValidation("positive_amount", validatePositiveAmount)
		_ = v.RegisterValidation("boleto_code", validateBoletoCode)
	}
}

// amountValue lets tags see money.Amount as its decimal string.
func amountValue(field reflect.Value) interface{} {
	if a, ok := field.Interface().(money.Amount); ok {
		return a.String()
	}
	return nil
}

func validatePositiveAmount(fl validator.FieldLevel) bool {
	a, err := money.Parse(fl.Field().String())
	return err == nil && a.IsPositive()
}

// validateBoletoCode accepts a digitable line or barcode, punctuation allowed.
func validateBoletoCode(fl validator.FieldLevel) bool {
	raw := fl.Field().String()
	for _, r := range raw {
		if !strings.ContainsRune("0123456789. ", r) {
			return false
		}
	}
	n := len(domain.DigitsOnly(raw))
	return n >= minBoletoCodeDigits && n <= maxBoletoCodeDigits
}

// SanitizeStruct trims whitespace from every exported string field
// (including *string) of a struct pointer. Values are otherwise left as sent:
// they travel to the remote ledger, and escaping belongs to output encoding.
func SanitizeStruct(v interface{}) {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Ptr || rv.Elem().Kind() != reflect.Struct {
		return
	}
	sanitizeFields(rv.Elem())
}

func sanitizeFields(rv reflect.Value) {
	for i := 0; i < rv.NumField(); i++ {
		f := rv.Field(i)
		if !f.CanSet() {
			continue
		}
		switch f.Kind() {
		case reflect.String:
			f.SetString(sanitize(f.String()))
		case reflect.Ptr:
			if f.IsNil() {
				continue
			}
			elem := f.Elem()
			if elem.Kind() == reflect.String {
				elem.SetString(sanitize(elem.String()))
			}
		}
	}
}

func sanitize(s string) string {
	return strings.TrimSpace(s)
}
