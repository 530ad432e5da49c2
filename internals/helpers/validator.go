package helper

import (
	"github.com/go-playground/validator/v10"
)

// Validator instance
var validate = validator.New()

// ValidateStruct menjalankan tag validasi dan mengubah hasilnya jadi
// map field → pesan, siap dikirim lewat JsonValidationError.
func ValidateStruct(s any) map[string][]string {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	validationErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return map[string][]string{"_": {"Format tidak valid."}}
	}

	fieldErrors := make(map[string][]string, len(validationErrs))
	for _, fieldErr := range validationErrs {
		var msg string
		switch fieldErr.Tag() {
		case "required":
			msg = fieldErr.Field() + " wajib diisi."
		case "email":
			msg = "Format email tidak valid."
		case "min":
			msg = fieldErr.Field() + " harus minimal " + fieldErr.Param() + " karakter."
		case "max":
			msg = fieldErr.Field() + " harus kurang dari " + fieldErr.Param() + " karakter."
		case "oneof":
			msg = fieldErr.Field() + " harus salah satu dari " + fieldErr.Param() + "."
		case "datetime":
			msg = fieldErr.Field() + " harus berformat " + fieldErr.Param() + "."
		default:
			msg = "Format tidak valid."
		}
		fieldErrors[fieldErr.Field()] = append(fieldErrors[fieldErr.Field()], msg)
	}
	return fieldErrors
}
