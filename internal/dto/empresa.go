package dto

import "github.com/BruksfildServices01/ponto-inteligente/internal/models"

type EmpresaResponse struct {
	ID          uint   `json:"id"`
	RazaoSocial string `json:"razaoSocial"`
	Cnpj        string `json:"cnpj"`
}

func NewEmpresaResponse(c *models.Company) EmpresaResponse {
	return EmpresaResponse{
		ID:          c.ID,
		RazaoSocial: c.RazaoSocial,
		Cnpj:        c.Cnpj,
	}
}
