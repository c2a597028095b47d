package routes

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/ponto-inteligente/internal/audit"
	"github.com/BruksfildServices01/ponto-inteligente/internal/config"
	"github.com/BruksfildServices01/ponto-inteligente/internal/dto"
	"github.com/BruksfildServices01/ponto-inteligente/internal/handlers"
	infraRepo "github.com/BruksfildServices01/ponto-inteligente/internal/infra/repository"
	"github.com/BruksfildServices01/ponto-inteligente/internal/middleware"
	"github.com/BruksfildServices01/ponto-inteligente/internal/service"
	ucCadastro "github.com/BruksfildServices01/ponto-inteligente/internal/usecase/cadastro"
	ucFuncionario "github.com/BruksfildServices01/ponto-inteligente/internal/usecase/funcionario"
	ucLancamento "github.com/BruksfildServices01/ponto-inteligente/internal/usecase/lancamento"
)

// Deps reúne o que main constrói uma única vez. EntryCache pode ser nil (cache desligado).
type Deps struct {
	DB         *gorm.DB
	Config     *config.Config
	EntryCache service.TimeEntryCache
	Audit      *audit.Dispatcher
	Logger     *zap.Logger
}

func RegisterRoutes(r *gin.Engine, deps Deps) {
	dto.RegisterValidations()

	// ======================================================
	// MIDDLEWARE GLOBAL
	// ======================================================
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(deps.Logger))
	r.Use(middleware.CORSMiddleware(deps.Config.CORSOrigins))

	// ======================================================
	// INFRA
	// ======================================================
	store := infraRepo.NewGormStore(deps.DB)

	companyService := service.NewCompanyService(store.Companies(), deps.Logger)
	employeeService := service.NewEmployeeService(store.Employees(), deps.Logger)
	entryService := service.NewTimeEntryService(store.TimeEntries(), deps.EntryCache, deps.Logger)

	// ======================================================
	// USE CASES
	// ======================================================
	cadastrarPF := ucCadastro.NewCadastrarPF(companyService, employeeService, deps.Audit, deps.Logger)
	cadastrarPJ := ucCadastro.NewCadastrarPJ(store, companyService, employeeService, deps.Audit, deps.Logger)

	consultar := ucLancamento.NewConsultar(entryService, employeeService, deps.Logger)
	registrar := ucLancamento.NewRegistrar(entryService, employeeService, deps.Logger)
	remover := ucLancamento.NewRemover(entryService, employeeService, deps.Audit, deps.Logger)

	atualizarFuncionario := ucFuncionario.NewAtualizar(employeeService, deps.Audit, deps.Logger)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(employeeService, deps.Config, deps.Logger)
	meHandler := handlers.NewMeHandler(employeeService, deps.Logger)
	cadastroPFHandler := handlers.NewCadastroPFHandler(cadastrarPF, deps.Logger)
	cadastroPJHandler := handlers.NewCadastroPJHandler(cadastrarPJ, deps.Logger)
	empresaHandler := handlers.NewEmpresaHandler(companyService, deps.Logger)
	funcionarioHandler := handlers.NewFuncionarioHandler(employeeService, atualizarFuncionario, deps.Logger)
	lancamentoHandler := handlers.NewLancamentoHandler(
		consultar,
		registrar,
		remover,
		deps.Config.PageSize,
		deps.Logger,
	)
	auditLogsHandler := handlers.NewAuditLogsHandler(deps.DB, deps.Logger)

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// 5 tentativas por segundo por IP, rajada de 10
	r.POST("/auth", middleware.RateLimitByIP(rate.Every(200*time.Millisecond), 10), authHandler.Login)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// PÚBLICA
		// ------------------------------
		api.POST("/cadastrar-pf", cadastroPFHandler.Cadastrar)
		api.POST("/cadastrar-pj", cadastroPJHandler.Cadastrar)
		api.GET("/empresas/cnpj/:cnpj", empresaHandler.BuscarPorCnpj)

		// ------------------------------
		// PRIVADA
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(deps.Config))
		{
			secured.GET("/me", meHandler.GetMe)

			secured.GET("/funcionarios/:id", funcionarioHandler.BuscarPorID)
			secured.PUT("/funcionarios/:id", funcionarioHandler.Atualizar)

			secured.GET("/lancamentos/funcionario/:funcionarioId", lancamentoHandler.ListarPorFuncionario)
			secured.GET("/lancamentos/:id", lancamentoHandler.BuscarPorID)
			secured.POST("/lancamentos", lancamentoHandler.Adicionar)
			secured.PUT("/lancamentos/:id", lancamentoHandler.Atualizar)
			secured.DELETE("/lancamentos/:id", middleware.RequireAdmin(), lancamentoHandler.Remover)

			secured.GET("/auditoria", middleware.RequireAdmin(), auditLogsHandler.List)
		}
	}
}
