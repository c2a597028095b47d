package dto

import "github.com/BruksfildServices01/ponto-inteligente/internal/models"

type CadastroPFRequest struct {
	Nome  string `json:"nome" binding:"required,min=3,max=200"`
	Email string `json:"email" binding:"required,min=5,max=200"`
	Senha string `json:"senha" binding:"required,senha"`
	Cpf   string `json:"cpf" binding:"required,cpf"`
	Cnpj  string `json:"cnpj" binding:"required,cnpj"`

	ValorHora              *string `json:"valorHora"`
	QtdHorasTrabalhadasDia *string `json:"qtdHorasTrabalhadasDia"`
	QtdHorasAlmoco         *string `json:"qtdHorasAlmoco"`
}

var cadastroPFMessages = messages{
	"nome.required":  "Nome não pode ser vazio",
	"nome.min":       "Nome deve conter entre 3 e 200 caracteres",
	"nome.max":       "Nome deve conter entre 3 e 200 caracteres",
	"email.required": "E-mail não pode ser vazio",
	"email.min":      "E-mail deve conter entre 5 e 200 caracteres",
	"email.max":      "E-mail deve conter entre 5 e 200 caracteres",
	"senha.required": "Senha não pode ser vazia",
	"senha.senha":    "Senha deve conter no máximo 72 bytes",
	"cpf.required":   "CPF não pode ser vazio",
	"cpf.cpf":        "CPF inválido",
	"cnpj.required":  "CNPJ não pode ser vazio",
	"cnpj.cnpj":      "CNPJ inválido",
}

func (CadastroPFRequest) validationMessages() messages {
	return cadastroPFMessages
}

// ToEmployee monta o funcionário sem senha, perfil nem empresa; quem chama decide esses campos.
// Os opcionais só são convertidos quando presentes.
func (r CadastroPFRequest) ToEmployee() (*models.Employee, []string) {
	employee := &models.Employee{
		Nome:  r.Nome,
		Email: r.Email,
		Cpf:   r.Cpf,
	}

	var errs []string
	var ok bool
	if employee.ValorHora, ok = parseDecimal(r.ValorHora); !ok {
		errs = append(errs, MsgValorHoraInvalido)
	}
	if employee.QtdHorasTrabalhoDia, ok = parseFloat32(r.QtdHorasTrabalhadasDia); !ok {
		errs = append(errs, MsgQtdHorasTrabalhoInvalida)
	}
	if employee.QtdHorasAlmoco, ok = parseFloat32(r.QtdHorasAlmoco); !ok {
		errs = append(errs, MsgQtdHorasAlmocoInvalida)
	}
	return employee, errs
}

type CadastroPFResponse struct {
	ID                     uint    `json:"id"`
	Nome                   string  `json:"nome"`
	Email                  string  `json:"email"`
	Senha                  *string `json:"senha"`
	Cpf                    string  `json:"cpf"`
	ValorHora              *string `json:"valorHora"`
	QtdHorasTrabalhadasDia *string `json:"qtdHorasTrabalhadasDia"`
	QtdHorasAlmoco         *string `json:"qtdHorasAlmoco"`
	Cnpj                   string  `json:"cnpj"`
}

func NewCadastroPFResponse(e *models.Employee, c *models.Company) CadastroPFResponse {
	return CadastroPFResponse{
		ID:                     e.ID,
		Nome:                   e.Nome,
		Email:                  e.Email,
		Cpf:                    e.Cpf,
		ValorHora:              formatDecimal(e.ValorHora),
		QtdHorasTrabalhadasDia: formatFloat32(e.QtdHorasTrabalhoDia),
		QtdHorasAlmoco:         formatFloat32(e.QtdHorasAlmoco),
		Cnpj:                   c.Cnpj,
	}
}
