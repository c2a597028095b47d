package dto

import "github.com/BruksfildServices01/ponto-inteligente/internal/models"

type CadastroPJRequest struct {
	Nome        string `json:"nome" binding:"required,min=3,max=200"`
	Email       string `json:"email" binding:"required,min=5,max=200,email"`
	Senha       string `json:"senha" binding:"required,senha"`
	Cpf         string `json:"cpf" binding:"required,cpf"`
	RazaoSocial string `json:"razaoSocial" binding:"required,min=5,max=200"`
	Cnpj        string `json:"cnpj" binding:"required,cnpj"`
}

var cadastroPJMessages = messages{
	"nome.required":        "Nome não pode ser vazio",
	"nome.min":             "Nome deve conter entre 3 e 200 caracteres",
	"nome.max":             "Nome deve conter entre 3 e 200 caracteres",
	"email.required":       "E-mail não pode ser vazio",
	"email.min":            "E-mail deve conter entre 5 e 200 caracteres",
	"email.max":            "E-mail deve conter entre 5 e 200 caracteres",
	"email.email":          "Email inválido",
	"senha.required":       "Senha não pode ser vazia",
	"senha.senha":          "Senha deve conter no máximo 72 bytes",
	"cpf.required":         "CPF não pode ser vazio",
	"cpf.cpf":              "CPF inválido",
	"razaoSocial.required": "Razão Social não pode ser vazia",
	"razaoSocial.min":      "Razão Social deve conter entre 5 e 200 caracteres",
	"razaoSocial.max":      "Razão Social deve conter entre 5 e 200 caracteres",
	"cnpj.required":        "CNPJ não pode ser vazio",
	"cnpj.cnpj":            "CNPJ inválido",
}

func (CadastroPJRequest) validationMessages() messages {
	return cadastroPJMessages
}

func (r CadastroPJRequest) ToCompany() *models.Company {
	return &models.Company{
		RazaoSocial: r.RazaoSocial,
		Cnpj:        r.Cnpj,
	}
}

func (r CadastroPJRequest) ToEmployee() *models.Employee {
	return &models.Employee{
		Nome:  r.Nome,
		Email: r.Email,
		Cpf:   r.Cpf,
	}
}

type CadastroPJResponse struct {
	ID          uint    `json:"id"`
	Nome        string  `json:"nome"`
	Email       string  `json:"email"`
	Senha       *string `json:"senha"`
	Cpf         string  `json:"cpf"`
	RazaoSocial string  `json:"razaoSocial"`
	Cnpj        string  `json:"cnpj"`
}

func NewCadastroPJResponse(e *models.Employee, c *models.Company) CadastroPJResponse {
	return CadastroPJResponse{
		ID:          e.ID,
		Nome:        e.Nome,
		Email:       e.Email,
		Cpf:         e.Cpf,
		RazaoSocial: c.RazaoSocial,
		Cnpj:        c.Cnpj,
	}
}
