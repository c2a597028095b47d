package dto

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/BruksfildServices01/ponto-inteligente/internal/password"
	"github.com/BruksfildServices01/ponto-inteligente/internal/validators"
)

var registerOnce sync.Once

// RegisterValidations liga as tags cpf, cnpj e senha ao validador do gin e faz os erros
// usarem o nome json do campo.
func RegisterValidations() {
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}

		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})

		_ = v.RegisterValidation("cpf", func(fl validator.FieldLevel) bool {
			return validators.IsValidCPF(fl.Field().String())
		})
		_ = v.RegisterValidation("cnpj", func(fl validator.FieldLevel) bool {
			return validators.IsValidCNPJ(fl.Field().String())
		})
		_ = v.RegisterValidation("senha", func(fl validator.FieldLevel) bool {
			return len(fl.Field().String()) <= password.MaxBytes
		})
	})
}

// messages mapeia "campo.tag" para a mensagem exibida ao usuário.
type messages map[string]string

type validatable interface {
	validationMessages() messages
}

// Validate aplica as regras de binding e devolve as mensagens na ordem dos campos.
func Validate(req validatable) []string {
	RegisterValidations()
	return Messages(binding.Validator.ValidateStruct(req), req.validationMessages())
}

// IsValidationError diz se err veio das regras de campo e não de um JSON malformado.
func IsValidationError(err error) bool {
	var verrs validator.ValidationErrors
	return errors.As(err, &verrs)
}

func Messages(err error, table messages) []string {
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []string{err.Error()}
	}

	out := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		if msg, ok := table[fe.Field()+"."+fe.Tag()]; ok {
			out = append(out, msg)
			continue
		}
		out = append(out, fmt.Sprintf("Campo %s inválido.", fe.Field()))
	}
	return out
}
