package sede

import (
	"errors"
	"regexp"
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"
)

// Celular colombiano: 10 dígitos comenzando con 3.
var telefonoRe = regexp.MustCompile(`^3[0-9]{9}$`)

var validate = func() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("telefono_co", func(fl validator.FieldLevel) bool {
		return telefonoRe.MatchString(fl.Field().String())
	})
	return v
}()

// SedeInput lleva los campos ya normalizados (trim, teléfono sin espacios)
// listos para validar.
type SedeInput struct {
	Nombre    string `validate:"required,min=2,max=20"`
	Telefono  string `validate:"required,telefono_co"`
	Direccion string `validate:"required,min=5,max=20"`
}

// LimpiarTelefono elimina todo espacio en blanco del número.
func LimpiarTelefono(t string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, t)
}

// Validar aplica las reglas de sede y devuelve un error cuyo mensaje
// identifica la regla violada. Las violaciones nunca llegan a la base.
func Validar(in SedeInput) error {
	err := validate.Struct(in)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return errors.New("Datos de sede inválidos")
	}

	fe := fieldErrs[0]
	if fe.Tag() == "required" {
		return errors.New("Faltan campos requeridos: nombre, telefono y direccion son obligatorios")
	}

	switch fe.Field() {
	case "Nombre":
		return errors.New("El nombre debe tener entre 2 y 20 caracteres")
	case "Direccion":
		return errors.New("La dirección debe tener entre 5 y 20 caracteres")
	case "Telefono":
		return errors.New("Teléfono inválido. Debe ser un número colombiano de 10 dígitos comenzando con 3")
	}
	return errors.New("Datos de sede inválidos")
}
