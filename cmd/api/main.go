package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/jhoicas/fazenda-api/internal/application/auth"
	"github.com/jhoicas/fazenda-api/internal/application/report"
	"github.com/jhoicas/fazenda-api/internal/application/usecase"
	"github.com/jhoicas/fazenda-api/internal/infrastructure/lock"
	infrapdf "github.com/jhoicas/fazenda-api/internal/infrastructure/pdf"
	"github.com/jhoicas/fazenda-api/internal/infrastructure/sheets"
	httpRouter "github.com/jhoicas/fazenda-api/internal/interfaces/http"
	"github.com/jhoicas/fazenda-api/pkg/config"
	"github.com/jhoicas/fazenda-api/pkg/logger"
	"github.com/jhoicas/fazenda-api/pkg/metrics"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("carregar configuração: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("row_store", cfg.Sheets.Backend).
		Msg("iniciando aplicação")

	ctx := context.Background()
	store, err := newRowStore(ctx, cfg.Sheets)
	if err != nil {
		log.Fatal().Err(err).Msg("conexão com a planilha")
	}

	var locker sheets.Locker = lock.NewLocalLocker()
	if cfg.Redis.Enabled() {
		redisLocker, err := lock.NewRedisLocker(lock.RedisConfig{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		}, cfg.Redis.LockTTL)
		if err != nil {
			log.Fatal().Err(err).Msg("conexão com o Redis")
		}
		defer redisLocker.Close()
		locker = redisLocker
		log.Info().Str("addr", cfg.Redis.Addr).Msg("escritas serializadas via Redis")
	}

	usuarioRepo := sheets.NewUsuarioRepository(store, locker, log)
	funcionarioRepo := sheets.NewFuncionarioRepository(store, locker, log)
	clienteRepo := sheets.NewClienteRepository(store, locker, log)
	produtoRepo := sheets.NewProdutoRepository(store, locker, log)
	vendaRepo := sheets.NewVendaRepository(store, locker, log)
	despesaRepo := sheets.NewDespesaRepository(store, locker, log)
	plantioRepo := sheets.NewPlantioRepository(store, locker, log)

	ids := usecase.NewClockIDs()
	authUC := auth.NewAuthUseCase(usuarioRepo, ids, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	reportUC := report.NewFinancialUseCase(vendaRepo, despesaRepo, infrapdf.NewMarotoPDFGenerator(cfg.App.Name+" - Relatório Financeiro"))

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(httpRouter.RequestLogger(log))
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.HTTP.CORSOrigins,
		AllowHeaders: "Origin, Content-Type, Accept, Authorization, " + httpRouter.HeaderRequestID,
	}))

	// Swagger UI em /docs quando o arquivo existe
	if _, err := os.Stat(cfg.App.DocsPath); err == nil {
		app.Use(swagger.New(swagger.Config{
			BasePath: "/",
			FilePath: cfg.App.DocsPath,
			Path:     "docs",
			Title:    cfg.App.Name,
		}))
	}

	// registradas antes do grupo protegido
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})
	app.Get("/metrics", adaptor.HTTPHandler(metrics.Handler()))

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:        authUC,
		UsuarioUC:     usecase.NewUsuarioUseCase(usuarioRepo),
		FuncionarioUC: usecase.NewFuncionarioUseCase(funcionarioRepo, ids),
		ClienteUC:     usecase.NewClienteUseCase(clienteRepo, ids),
		ProdutoUC:     usecase.NewProdutoUseCase(produtoRepo, ids),
		VendaUC:       usecase.NewVendaUseCase(vendaRepo, ids),
		DespesaUC:     usecase.NewDespesaUseCase(despesaRepo, ids),
		PlantioUC:     usecase.NewPlantioUseCase(plantioRepo, ids),
		ReportUC:      reportUC,
		JWTSecret:     cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("sinal de desligamento recebido, encerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("desligamento do servidor")
	}

	log.Info().Msg("aplicação encerrada")
}

func newRowStore(ctx context.Context, cfg config.SheetsConfig) (sheets.RowStore, error) {
	switch cfg.Backend {
	case config.RowStoreMemory:
		return sheets.NewMemoryStore(sheets.SheetNames()...), nil
	case config.RowStoreSheets:
		return sheets.NewSheetsClient(ctx, cfg.SpreadsheetID, cfg.CredentialsFile)
	default:
		return nil, errors.New("ROW_STORE desconhecido: " + cfg.Backend)
	}
}
