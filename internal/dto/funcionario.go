package dto

import "github.com/BruksfildServices01/ponto-inteligente/internal/models"

// FuncionarioUpdateRequest altera os dados cadastrais; CPF, perfil e empresa não mudam por aqui.
type FuncionarioUpdateRequest struct {
	Nome  string  `json:"nome" binding:"required,min=3,max=200"`
	Email string  `json:"email" binding:"required,min=5,max=200,email"`
	Senha *string `json:"senha" binding:"omitempty,senha"`

	ValorHora           *string `json:"valorHora"`
	QtdHorasTrabalhoDia *string `json:"qtdHorasTrabalhoDia"`
	QtdHorasAlmoco      *string `json:"qtdHorasAlmoco"`
}

var funcionarioMessages = messages{
	"nome.required":  "Nome não pode ser vazio",
	"nome.min":       "Nome deve conter entre 3 e 200 caracteres",
	"nome.max":       "Nome deve conter entre 3 e 200 caracteres",
	"email.required": "E-mail não pode ser vazio",
	"email.min":      "E-mail deve conter entre 5 e 200 caracteres",
	"email.max":      "E-mail deve conter entre 5 e 200 caracteres",
	"email.email":    "E-mail inválido.",
	"senha.senha":    "Senha deve conter no máximo 72 bytes",
}

func (FuncionarioUpdateRequest) validationMessages() messages {
	return funcionarioMessages
}

// ApplyTo copia os campos para o funcionário. Opcionais ausentes ficam como estão;
// a senha é tratada por quem chama.
func (r FuncionarioUpdateRequest) ApplyTo(e *models.Employee) []string {
	e.Nome = r.Nome
	e.Email = r.Email

	var errs []string
	if r.ValorHora != nil {
		if v, ok := parseDecimal(r.ValorHora); ok {
			e.ValorHora = v
		} else {
			errs = append(errs, MsgValorHoraInvalido)
		}
	}
	if r.QtdHorasTrabalhoDia != nil {
		if v, ok := parseFloat32(r.QtdHorasTrabalhoDia); ok {
			e.QtdHorasTrabalhoDia = v
		} else {
			errs = append(errs, MsgQtdHorasTrabalhoInvalida)
		}
	}
	if r.QtdHorasAlmoco != nil {
		if v, ok := parseFloat32(r.QtdHorasAlmoco); ok {
			e.QtdHorasAlmoco = v
		} else {
			errs = append(errs, MsgQtdHorasAlmocoInvalida)
		}
	}
	return errs
}

type FuncionarioResponse struct {
	ID                  uint    `json:"id"`
	Nome                string  `json:"nome"`
	Email               string  `json:"email"`
	Senha               *string `json:"senha"`
	ValorHora           *string `json:"valorHora"`
	QtdHorasTrabalhoDia *string `json:"qtdHorasTrabalhoDia"`
	QtdHorasAlmoco      *string `json:"qtdHorasAlmoco"`
}

func NewFuncionarioResponse(e *models.Employee) FuncionarioResponse {
	return FuncionarioResponse{
		ID:                  e.ID,
		Nome:                e.Nome,
		Email:               e.Email,
		ValorHora:           formatDecimal(e.ValorHora),
		QtdHorasTrabalhoDia: formatFloat32(e.QtdHorasTrabalhoDia),
		QtdHorasAlmoco:      formatFloat32(e.QtdHorasAlmoco),
	}
}
