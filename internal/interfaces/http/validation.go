package http

import (
	"errors"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

// Formatos aceitos por isodatetime, além de uma data pura.
var dateTimeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05",
	time.DateOnly,
}

// Validator validação declarativa das entradas. Erros saem por campo, com o nome JSON.
type Validator struct {
	v *validator.Validate
}

// NewValidator configura o validator com nomes JSON e as tags isodate e isodatetime.
func NewValidator() *Validator {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	_ = v.RegisterValidation("isodate", func(fl validator.FieldLevel) bool {
		_, err := time.Parse(time.DateOnly, fl.Field().String())
		return err == nil
	})
	_ = v.RegisterValidation("isodatetime", func(fl validator.FieldLevel) bool {
		s := fl.Field().String()
		for _, layout := range dateTimeLayouts {
			if _, err := time.Parse(layout, s); err == nil {
				return true
			}
		}
		return false
	})
	return &Validator{v: v}
}

// Struct valida s e devolve o motivo de cada campo inválido; nil se tudo estiver certo.
func (v *Validator) Struct(s any) map[string]string {
	err := v.v.Struct(s)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return map[string]string{"_": err.Error()}
	}
	campos := make(map[string]string, len(verrs))
	for _, e := range verrs {
		campos[fieldPath(e)] = validationMessage(e)
	}
	return campos
}

// fieldPath caminho do campo sem o nome do tipo raiz ("produtos[0].quantidade").
func fieldPath(e validator.FieldError) string {
	ns := e.Namespace()
	if _, rest, ok := strings.Cut(ns, "."); ok {
		return rest
	}
	return e.Field()
}

func validationMessage(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return "campo obrigatório"
	case "email":
		return "email inválido"
	case "isodate":
		return "data inválida, use AAAA-MM-DD"
	case "isodatetime":
		return "data/hora inválida, use AAAA-MM-DD ou AAAA-MM-DDTHH:MM:SS"
	case "min":
		if e.Kind() == reflect.String {
			return "mínimo de " + e.Param() + " caracteres"
		}
		return "mínimo " + e.Param()
	case "max":
		if e.Kind() == reflect.String {
			return "máximo de " + e.Param() + " caracteres"
		}
		return "máximo " + e.Param()
	case "oneof":
		return "deve ser um de: " + e.Param()
	case "gt":
		return "deve ser maior que " + e.Param()
	case "gte":
		return "deve ser maior ou igual a " + e.Param()
	default:
		return "valor inválido"
	}
}
