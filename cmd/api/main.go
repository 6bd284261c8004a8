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

	"github.com/jhoicas/erp-pyme/internal/application/auth"
	"github.com/jhoicas/erp-pyme/internal/application/purchases"
	"github.com/jhoicas/erp-pyme/internal/application/quotation"
	"github.com/jhoicas/erp-pyme/internal/application/sales"
	"github.com/jhoicas/erp-pyme/internal/application/usecase"
	infrapdf "github.com/jhoicas/erp-pyme/internal/infrastructure/pdf"
	"github.com/jhoicas/erp-pyme/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/erp-pyme/internal/interfaces/http"
	"github.com/jhoicas/erp-pyme/pkg/config"
	"github.com/jhoicas/erp-pyme/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.Log.Level,
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

	permissionRepo := postgres.NewPermissionRepository(pool)
	roleRepo := postgres.NewRoleRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	clientRepo := postgres.NewClientRepository(pool)
	supplierRepo := postgres.NewSupplierRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	quotationRepo := postgres.NewQuotationRepository(pool)
	saleRepo := postgres.NewSaleRepository(pool)
	commissionRepo := postgres.NewCommissionRepository(pool)
	purchaseRepo := postgres.NewPurchaseRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	roleUC := usecase.NewRoleUseCase(roleRepo, permissionRepo)
	permissionUC := usecase.NewPermissionUseCase(permissionRepo)
	accessSvc := usecase.NewAccessService(roleRepo, permissionRepo)
	userUC := usecase.NewUserUseCase(userRepo, roleRepo)
	productUC := usecase.NewProductUseCase(productRepo)
	clientUC := usecase.NewClientUseCase(clientRepo)
	supplierUC := usecase.NewSupplierUseCase(supplierRepo)
	commissionUC := usecase.NewCommissionUseCase(commissionRepo)

	createSaleUC := sales.NewCreateSaleUseCase(txRunner, clientRepo, userRepo, productRepo, saleRepo)
	quotationUC := quotation.NewUseCase(txRunner, quotationRepo, clientRepo, productRepo, userRepo)
	purchaseUC := purchases.NewUseCase(txRunner, supplierRepo, productRepo, purchaseRepo)

	// PDF: documento imprimible de la cotización para enviar al cliente
	pdfGenerator := infrapdf.NewMarotoPDFGenerator()
	quotationPDFUC := quotation.NewPDFUseCase(quotationRepo, clientRepo, userRepo, productRepo, pdfGenerator)

	authUC := auth.NewAuthUseCase(userRepo, userUC, auth.JWTConfig{
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
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "ERP Pyme API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:       authUC,
		RoleUC:       roleUC,
		PermissionUC: permissionUC,
		AccessSvc:    accessSvc,
		UserUC:       userUC,
		ProductUC:    productUC,
		ClientUC:     clientUC,
		SupplierUC:   supplierUC,
		QuotationUC:  quotationUC,
		QuotationPDF: quotationPDFUC,
		CreateSale:   createSaleUC,
		CommissionUC: commissionUC,
		PurchaseUC:   purchaseUC,
		JWTSecret:    cfg.JWT.Secret,
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
