package dto

import (
	"github.com/BruksfildServices01/ponto-inteligente/internal/domain/ponto"
	"github.com/BruksfildServices01/ponto-inteligente/internal/models"
	"github.com/BruksfildServices01/ponto-inteligente/internal/timezone"
)

type LancamentoRequest struct {
	Data          string `json:"data" binding:"required"`
	Tipo          string `json:"tipo"`
	Descricao     string `json:"descricao"`
	Localizacao   string `json:"localizacao"`
	FuncionarioID *uint  `json:"funcionarioId"`
}

var lancamentoMessages = messages{
	"data.required": MsgDataVazia,
}

func (LancamentoRequest) validationMessages() messages {
	return lancamentoMessages
}

// ApplyTo converte data e tipo para o lançamento. O funcionário é resolvido por quem chama.
func (r LancamentoRequest) ApplyTo(e *models.TimeEntry) []string {
	var errs []string

	if r.Data != "" {
		if data, err := timezone.Parse(r.Data); err != nil {
			errs = append(errs, MsgDataInvalida)
		} else {
			e.Data = data
		}
	}

	if tipo, ok := ponto.ParseTimeEntryType(r.Tipo); ok {
		e.Tipo = tipo
	} else {
		errs = append(errs, MsgTipoInvalido)
	}

	e.Descricao = r.Descricao
	e.Localizacao = r.Localizacao
	return errs
}

type LancamentoResponse struct {
	ID            uint   `json:"id"`
	Data          string `json:"data"`
	Tipo          string `json:"tipo"`
	Descricao     string `json:"descricao"`
	Localizacao   string `json:"localizacao"`
	FuncionarioID uint   `json:"funcionarioId"`
}

func NewLancamentoResponse(e models.TimeEntry) LancamentoResponse {
	return LancamentoResponse{
		ID:            e.ID,
		Data:          timezone.Format(e.Data),
		Tipo:          string(e.Tipo),
		Descricao:     e.Descricao,
		Localizacao:   e.Localizacao,
		FuncionarioID: e.EmployeeID,
	}
}
