package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/erp-pyme/internal/application/auth"
	"github.com/jhoicas/erp-pyme/internal/application/purchases"
	"github.com/jhoicas/erp-pyme/internal/application/quotation"
	"github.com/jhoicas/erp-pyme/internal/application/sales"
	"github.com/jhoicas/erp-pyme/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC       *auth.AuthUseCase
	RoleUC       *usecase.RoleUseCase
	PermissionUC *usecase.PermissionUseCase
	AccessSvc    *usecase.AccessService
	UserUC       *usecase.UserUseCase
	ProductUC    *usecase.ProductUseCase
	ClientUC     *usecase.ClientUseCase
	SupplierUC   *usecase.SupplierUseCase
	QuotationUC  *quotation.UseCase
	QuotationPDF *quotation.PDFUseCase
	CreateSale   *sales.CreateSaleUseCase
	CommissionUC *usecase.CommissionUseCase
	PurchaseUC   *purchases.UseCase
	JWTSecret    string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Navegación (protegido, sin guardia de módulo: todo usuario ve su menú)
	navigationHandler := NewNavigationHandler(deps.AccessSvc)
	protected.Get("/navigation", navigationHandler.Get)

	// Roles (protegido, módulo roles)
	roles := protected.Group("/roles", RequireModule("roles", deps.AccessSvc))
	roleHandler := NewRoleHandler(deps.RoleUC)
	roles.Post("/", roleHandler.Create)
	roles.Get("/", roleHandler.List)
	roles.Get("/:id", roleHandler.GetByID)
	roles.Put("/:id", roleHandler.Update)
	roles.Delete("/:id", roleHandler.Delete)

	// Permissions (protegido, mismo módulo que roles)
	permissions := protected.Group("/permissions", RequireModule("roles", deps.AccessSvc))
	permissionHandler := NewPermissionHandler(deps.PermissionUC)
	permissions.Post("/", permissionHandler.Create)
	permissions.Get("/", permissionHandler.List)
	permissions.Get("/:id", permissionHandler.GetByID)
	permissions.Put("/:id", permissionHandler.Update)
	permissions.Delete("/:id", permissionHandler.Delete)

	// Users (protegido, módulo users)
	users := protected.Group("/users", RequireModule("users", deps.AccessSvc))
	userHandler := NewUserHandler(deps.UserUC)
	users.Post("/", userHandler.Create)
	users.Get("/", userHandler.List)
	users.Get("/:id", userHandler.GetByID)
	users.Put("/:id", userHandler.Update)
	users.Delete("/:id", userHandler.Delete)

	// Products (protegido, módulo inventory)
	products := protected.Group("/products", RequireModule("inventory", deps.AccessSvc))
	productHandler := NewProductHandler(deps.ProductUC)
	products.Post("/", productHandler.Create)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", productHandler.Update)
	products.Delete("/:id", productHandler.Delete)

	// Clients (protegido, módulo clients)
	clients := protected.Group("/clients", RequireModule("clients", deps.AccessSvc))
	clientHandler := NewClientHandler(deps.ClientUC)
	clients.Post("/", clientHandler.Create)
	clients.Get("/", clientHandler.List)
	clients.Get("/:id", clientHandler.GetByID)
	clients.Put("/:id", clientHandler.Update)
	clients.Delete("/:id", clientHandler.Delete)

	// Suppliers (protegido, módulo suppliers)
	suppliers := protected.Group("/suppliers", RequireModule("suppliers", deps.AccessSvc))
	supplierHandler := NewSupplierHandler(deps.SupplierUC)
	suppliers.Post("/", supplierHandler.Create)
	suppliers.Get("/", supplierHandler.List)
	suppliers.Get("/:id", supplierHandler.GetByID)
	suppliers.Put("/:id", supplierHandler.Update)
	suppliers.Delete("/:id", supplierHandler.Delete)

	// Quotations (protegido, módulo quotations)
	quotations := protected.Group("/quotations", RequireModule("quotations", deps.AccessSvc))
	quotationHandler := NewQuotationHandler(deps.QuotationUC, deps.QuotationPDF)
	quotations.Post("/", quotationHandler.Create)
	quotations.Get("/", quotationHandler.List)
	quotations.Get("/:id", quotationHandler.GetByID)
	quotations.Post("/:id/approve", quotationHandler.Approve)
	quotations.Post("/:id/reject", quotationHandler.Reject)
	quotations.Post("/:id/convert", quotationHandler.Convert)
	quotations.Get("/:id/pdf", quotationHandler.DownloadPDF)

	// Sales (protegido, módulo sales)
	salesGroup := protected.Group("/sales", RequireModule("sales", deps.AccessSvc))
	saleHandler := NewSaleHandler(deps.CreateSale)
	salesGroup.Post("/", saleHandler.Create)
	salesGroup.Get("/", saleHandler.List)
	salesGroup.Get("/:id", saleHandler.GetByID)

	// Commissions (protegido, módulo commissions)
	commissions := protected.Group("/commissions", RequireModule("commissions", deps.AccessSvc))
	commissionHandler := NewCommissionHandler(deps.CommissionUC)
	commissions.Get("/", commissionHandler.List)
	commissions.Get("/:id", commissionHandler.GetByID)
	commissions.Post("/:id/pay", commissionHandler.Pay)

	// Purchases (protegido, módulo purchases)
	purchasesGroup := protected.Group("/purchases", RequireModule("purchases", deps.AccessSvc))
	purchaseHandler := NewPurchaseHandler(deps.PurchaseUC)
	purchasesGroup.Post("/", purchaseHandler.Create)
	purchasesGroup.Get("/", purchaseHandler.List)
	purchasesGroup.Get("/:id", purchaseHandler.GetByID)
}
