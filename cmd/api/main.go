package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/tu-usuario/vetclinic-pro/internal/application/auth"
	appbilling "github.com/tu-usuario/vetclinic-pro/internal/application/billing"
	"github.com/tu-usuario/vetclinic-pro/internal/application/usecase"
	infrapdf "github.com/tu-usuario/vetclinic-pro/internal/infrastructure/pdf"
	"github.com/tu-usuario/vetclinic-pro/internal/infrastructure/postgres"
	"github.com/tu-usuario/vetclinic-pro/internal/infrastructure/receipt"
	httpRouter "github.com/tu-usuario/vetclinic-pro/internal/interfaces/http"
	"github.com/tu-usuario/vetclinic-pro/pkg/config"
	"github.com/tu-usuario/vetclinic-pro/pkg/logger"
)

// swaggerSpecPath ruta del spec servido por el middleware de Swagger,
// relativa al directorio de trabajo del proceso (la raíz del repo).
// El middleware hace panic en el arranque si el archivo no existe.
const swaggerSpecPath = "./docs/swagger.json"

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Options{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	ownerRepo := postgres.NewOwnerRepository(pool)
	petRepo := postgres.NewPetRepository(pool)
	serviceRepo := postgres.NewServiceDefRepository(pool)
	productRepo := postgres.NewProductDefRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	invoiceRepo := postgres.NewInvoiceRepository(pool)
	txRunner := postgres.NewTxRunner(pool)
	catalogReader := postgres.NewCatalogReader(serviceRepo, productRepo)

	biz := appbilling.BusinessInfo{
		Name:    cfg.Billing.BusinessName,
		TaxID:   cfg.Billing.BusinessTaxID,
		Address: cfg.Billing.BusinessAddress,
		Phone:   cfg.Billing.BusinessPhone,
	}
	invoiceUC := appbilling.NewInvoiceUseCase(
		txRunner, invoiceRepo, ownerRepo, catalogReader,
		receipt.NewTextRenderer(), infrapdf.NewMarotoReceiptGenerator(),
		biz, cfg.Billing.Prefix,
	)

	ownerUC := usecase.NewOwnerUseCase(ownerRepo)
	petUC := usecase.NewPetUseCase(petRepo, ownerRepo)
	catalogUC := usecase.NewCatalogUseCase(serviceRepo, productRepo)
	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: swaggerSpecPath,
		Path:     "docs",
		Title:    "VetClinic Pro API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		OwnerUC:   ownerUC,
		PetUC:     petUC,
		CatalogUC: catalogUC,
		InvoiceUC: invoiceUC,
		AuthUC:    authUC,
		JWTSecret: cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
