package validator

import (
	"github.com/go-playground/validator/v10"
)

// ErrorResponse detalle de un campo que falló la validación.
type ErrorResponse struct {
	FailedField string `json:"field"`
	Tag         string `json:"tag"`
	Value       string `json:"param"`
}

var validate = validator.New()

func init() {
	// Método de pago permitido en ventas y gastos.
	validate.RegisterValidation("payment_method", func(fl validator.FieldLevel) bool {
		switch fl.Field().String() {
		case "cash", "card", "e-wallet", "bank_transfer":
			return true
		}
		return false
	})
}

// ValidateStruct valida los tags `validate` de un DTO y devuelve los campos fallidos.
func ValidateStruct(data interface{}) []*ErrorResponse {
	var errs []*ErrorResponse
	err := validate.Struct(data)
	if err != nil {
		for _, err := range err.(validator.ValidationErrors) {
			errs = append(errs, &ErrorResponse{
				FailedField: err.StructNamespace(),
				Tag:         err.Tag(),
				Value:       err.Param(),
			})
		}
	}
	return errs
}
