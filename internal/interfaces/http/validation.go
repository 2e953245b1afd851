package http

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/product-management/internal/domain"
)

// newValidator usa los nombres JSON (o query) de los campos en los errores.
func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name == "" {
			name = strings.SplitN(fld.Tag.Get("query"), ",", 2)[0]
		}
		return name
	})
	return v
}

var validate = newValidator()

// bindBody decodifica el JSON y valida las etiquetas validate.
// El error se pasa tal cual a writeError.
func bindBody(c *fiber.Ctx, out any) error {
	if err := c.BodyParser(out); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "cuerpo inválido")
	}
	if err := validate.Struct(out); err != nil {
		return toValidationError(err)
	}
	return nil
}

// bindQuery decodifica la query string y la valida.
func bindQuery(c *fiber.Ctx, out any) error {
	if err := c.QueryParser(out); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "parámetros inválidos")
	}
	if err := validate.Struct(out); err != nil {
		return toValidationError(err)
	}
	return nil
}

// toValidationError convierte los errores del validador a mensajes por campo.
// El campo usa la ruta sin el nombre del struct: "items[0].quantity".
func toValidationError(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return domain.NewValidationError("body", err.Error())
	}
	out := &domain.ValidationError{}
	for _, fe := range verrs {
		field := fe.Namespace()
		if i := strings.Index(field, "."); i >= 0 {
			field = field[i+1:]
		}
		out.Add(field, validationMessage(fe))
	}
	return out
}

func validationMessage(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return "campo requerido"
	case "email":
		return "email inválido"
	case "min":
		if e.Kind() == reflect.String {
			return "mínimo " + e.Param() + " caracteres"
		}
		if e.Kind() == reflect.Slice {
			return "se requiere al menos " + e.Param() + " elemento(s)"
		}
		return "debe ser mayor o igual que " + e.Param()
	case "max":
		if e.Kind() == reflect.String {
			return "máximo " + e.Param() + " caracteres"
		}
		return "debe ser menor o igual que " + e.Param()
	case "gt":
		return "debe ser mayor que " + e.Param()
	case "oneof":
		return "debe ser uno de: " + e.Param()
	default:
		return "valor inválido"
	}
}
