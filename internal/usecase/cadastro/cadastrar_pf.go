package cadastro

import (
	"context"

	"go.uber.org/zap"

	"github.com/BruksfildServices01/ponto-inteligente/internal/audit"
	"github.com/BruksfildServices01/ponto-inteligente/internal/dto"
	"github.com/BruksfildServices01/ponto-inteligente/internal/httperr"
	"github.com/BruksfildServices01/ponto-inteligente/internal/models"
	"github.com/BruksfildServices01/ponto-inteligente/internal/password"
	"github.com/BruksfildServices01/ponto-inteligente/internal/requestid"
	"github.com/BruksfildServices01/ponto-inteligente/internal/service"
)

type Auditor interface {
	Dispatch(ev audit.Event)
}

// CadastrarPF cadastra um funcionário (ROLE_USUARIO) numa empresa já existente.
type CadastrarPF struct {
	companies *service.CompanyService
	employees *service.EmployeeService
	audit     Auditor
	logger    *zap.Logger
}

func NewCadastrarPF(
	companies *service.CompanyService,
	employees *service.EmployeeService,
	auditor Auditor,
	logger *zap.Logger,
) *CadastrarPF {
	return &CadastrarPF{
		companies: companies,
		employees: employees,
		audit:     auditor,
		logger:    logger.Named("cadastro_pf"),
	}
}

func (uc *CadastrarPF) Execute(ctx context.Context, req dto.CadastroPFRequest) (*dto.CadastroPFResponse, error) {
	log := uc.logger.With(requestid.Field(ctx))
	log.Info("cadastrando PF", zap.String("cpf", req.Cpf), zap.String("cnpj", req.Cnpj))

	errs := dto.Validate(req)
	employee, convErrs := req.ToEmployee()
	errs = append(errs, convErrs...)

	company, err := uc.companies.FindByCnpj(ctx, req.Cnpj)
	if err != nil {
		return nil, err
	}
	if company == nil {
		errs = append(errs, dto.MsgEmpresaNaoCadastrada)
	}

	existing, err := uc.employees.FindByCpf(ctx, req.Cpf)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		errs = append(errs, dto.MsgCpfExistente)
	}

	existing, err = uc.employees.FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		errs = append(errs, dto.MsgEmailExistente)
	}

	if len(errs) > 0 {
		log.Info("erro validando dados de cadastro PF", zap.Strings("errors", errs))
		return nil, httperr.Validation(errs...)
	}

	hashed, err := password.Hash(&req.Senha)
	if err != nil {
		return nil, err
	}
	employee.Senha = *hashed
	employee.Role = models.RoleUsuario
	employee.CompanyID = company.ID

	if _, err := uc.employees.Persist(ctx, employee); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		CompanyID:  &company.ID,
		EmployeeID: &employee.ID,
		Action:     audit.ActionEmployeeRegistered,
		Entity:     "funcionario",
		EntityID:   &employee.ID,
		Metadata:   map[string]string{"perfil": string(employee.Role)},
	})

	resp := dto.NewCadastroPFResponse(employee, company)
	return &resp, nil
}
