package cadastro

import (
	"context"

	"go.uber.org/zap"

	"github.com/BruksfildServices01/ponto-inteligente/internal/audit"
	"github.com/BruksfildServices01/ponto-inteligente/internal/domain/ponto"
	"github.com/BruksfildServices01/ponto-inteligente/internal/dto"
	"github.com/BruksfildServices01/ponto-inteligente/internal/httperr"
	"github.com/BruksfildServices01/ponto-inteligente/internal/models"
	"github.com/BruksfildServices01/ponto-inteligente/internal/password"
	"github.com/BruksfildServices01/ponto-inteligente/internal/requestid"
	"github.com/BruksfildServices01/ponto-inteligente/internal/service"
)

// CadastrarPJ cria a empresa e o seu primeiro funcionário (ROLE_ADMIN) na mesma transação.
// As consultas prévias usam os serviços recebidos; a gravação usa serviços presos à transação.
type CadastrarPJ struct {
	store     ponto.Store
	companies *service.CompanyService
	employees *service.EmployeeService
	audit     Auditor
	logger    *zap.Logger
}

func NewCadastrarPJ(
	store ponto.Store,
	companies *service.CompanyService,
	employees *service.EmployeeService,
	auditor Auditor,
	logger *zap.Logger,
) *CadastrarPJ {
	return &CadastrarPJ{
		store:     store,
		companies: companies,
		employees: employees,
		audit:     auditor,
		logger:    logger.Named("cadastro_pj"),
	}
}

func (uc *CadastrarPJ) Execute(ctx context.Context, req dto.CadastroPJRequest) (*dto.CadastroPJResponse, error) {
	log := uc.logger.With(requestid.Field(ctx))
	log.Info("cadastrando PJ", zap.String("cpf", req.Cpf), zap.String("cnpj", req.Cnpj))

	errs := dto.Validate(req)

	company, err := uc.companies.FindByCnpj(ctx, req.Cnpj)
	if err != nil {
		return nil, err
	}
	if company != nil {
		errs = append(errs, dto.MsgEmpresaExistente)
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
		log.Info("erro validando dados de cadastro PJ", zap.Strings("errors", errs))
		return nil, httperr.Validation(errs...)
	}

	hashed, err := password.Hash(&req.Senha)
	if err != nil {
		return nil, err
	}

	company = req.ToCompany()
	employee := req.ToEmployee()
	employee.Senha = *hashed
	employee.Role = models.RoleAdmin

	err = uc.store.WithTransaction(ctx, func(tx ponto.Store) error {
		if _, err := service.NewCompanyService(tx.Companies(), uc.logger).Persist(ctx, company); err != nil {
			return err
		}
		employee.CompanyID = company.ID
		_, err := service.NewEmployeeService(tx.Employees(), uc.logger).Persist(ctx, employee)
		return err
	})
	if err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		CompanyID: &company.ID,
		Action:    audit.ActionCompanyRegistered,
		Entity:    "empresa",
		EntityID:  &company.ID,
		Metadata:  map[string]string{"cnpj": company.Cnpj},
	})
	uc.audit.Dispatch(audit.Event{
		CompanyID:  &company.ID,
		EmployeeID: &employee.ID,
		Action:     audit.ActionEmployeeRegistered,
		Entity:     "funcionario",
		EntityID:   &employee.ID,
		Metadata:   map[string]string{"perfil": string(employee.Role)},
	})

	resp := dto.NewCadastroPJResponse(employee, company)
	return &resp, nil
}
