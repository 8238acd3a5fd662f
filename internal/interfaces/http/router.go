package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/fazenda-api/internal/application/auth"
	"github.com/jhoicas/fazenda-api/internal/application/dto"
	"github.com/jhoicas/fazenda-api/internal/application/report"
	"github.com/jhoicas/fazenda-api/internal/application/usecase"
)

// RouterDeps dependências do router.
type RouterDeps struct {
	AuthUC        *auth.AuthUseCase
	UsuarioUC     *usecase.UsuarioUseCase
	FuncionarioUC *usecase.FuncionarioUseCase
	ClienteUC     *usecase.ClienteUseCase
	ProdutoUC     *usecase.ProdutoUseCase
	VendaUC       *usecase.VendaUseCase
	DespesaUC     *usecase.DespesaUseCase
	PlantioUC     *usecase.PlantioUseCase
	ReportUC      *report.FinancialUseCase
	JWTSecret     string
}

// Router registra as rotas da API.
func Router(app *fiber.App, deps RouterDeps) {
	v := NewValidator()

	// Auth (público)
	authHandler := NewAuthHandler(deps.AuthUC, v)
	authGroup := app.Group("/auth")
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rotas protegidas (Bearer Token)
	protected := app.Group("", AuthMiddleware(deps.JWTSecret))
	protected.Get("/auth/me", authHandler.Me)

	NewResourceHandler[struct{}, dto.UpdateUsuarioRequest, dto.UsuarioResponse](deps.UsuarioUC, nil, v, Messages{
		NotFound: "Usuário não encontrado", Deleted: "Usuário excluído com sucesso",
	}).Mount(protected.Group("/usuarios"))

	NewResourceHandler[dto.CreateFuncionarioRequest, dto.UpdateFuncionarioRequest, dto.FuncionarioResponse](deps.FuncionarioUC, deps.FuncionarioUC, v, Messages{
		NotFound: "Funcionário não encontrado", Deleted: "Funcionário excluído com sucesso",
	}).Mount(protected.Group("/funcionarios"))

	NewResourceHandler[dto.CreateClienteRequest, dto.UpdateClienteRequest, dto.ClienteResponse](deps.ClienteUC, deps.ClienteUC, v, Messages{
		NotFound: "Cliente não encontrado", Deleted: "Cliente excluído com sucesso",
	}).Mount(protected.Group("/clientes"))

	NewResourceHandler[dto.CreateProdutoRequest, dto.UpdateProdutoRequest, dto.ProdutoResponse](deps.ProdutoUC, deps.ProdutoUC, v, Messages{
		NotFound: "Produto não encontrado", Deleted: "Produto excluído com sucesso",
	}).Mount(protected.Group("/produtos"))

	NewResourceHandler[dto.CreateVendaRequest, dto.UpdateVendaRequest, dto.VendaResponse](deps.VendaUC, deps.VendaUC, v, Messages{
		NotFound: "Venda não encontrada", Deleted: "Venda excluída com sucesso",
	}).Mount(protected.Group("/vendas"))

	NewResourceHandler[dto.CreateDespesaRequest, dto.UpdateDespesaRequest, dto.DespesaResponse](deps.DespesaUC, deps.DespesaUC, v, Messages{
		NotFound: "Despesa não encontrada", Deleted: "Despesa excluída com sucesso",
	}).Mount(protected.Group("/despesas"))

	NewResourceHandler[dto.CreatePlantioRequest, dto.UpdatePlantioRequest, dto.PlantioResponse](deps.PlantioUC, deps.PlantioUC, v, Messages{
		NotFound: "Plantio não encontrado", Deleted: "Plantio excluído com sucesso",
	}).Mount(protected.Group("/plantios"))

	// Relatórios (protegido)
	reportHandler := NewReportHandler(deps.ReportUC)
	relatorios := protected.Group("/relatorios")
	relatorios.Get("/financeiro", reportHandler.Financeiro)
	relatorios.Get("/financeiro/pdf", reportHandler.FinanceiroPDF)
}
