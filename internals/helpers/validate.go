// file: internals/helpers/validate.go
package helper

import (
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var Validate = validator.New()

// ValidateStruct menjalankan validator.v10 dan, jika gagal, langsung menulis
// response 422 dengan map field → pesan. Return nil artinya lolos.
func ValidateStruct(c *fiber.Ctx, s any) error {
	if err := Validate.Struct(s); err != nil {
		ve, ok := err.(validator.ValidationErrors)
		if !ok {
			return JsonError(c, fiber.StatusBadRequest, "Input tidak valid")
		}
		fieldErrors := map[string][]string{}
		for _, fe := range ve {
			field := strings.ToLower(fe.Field())
			fieldErrors[field] = append(fieldErrors[field], fe.Tag())
		}
		return JsonValidationError(c, fieldErrors)
	}
	return nil
}
