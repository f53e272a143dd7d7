package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/vetclinic-pro/internal/application/auth"
	appbilling "github.com/tu-usuario/vetclinic-pro/internal/application/billing"
	"github.com/tu-usuario/vetclinic-pro/internal/application/usecase"
	"github.com/tu-usuario/vetclinic-pro/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	OwnerUC   *usecase.OwnerUseCase
	PetUC     *usecase.PetUseCase
	CatalogUC *usecase.CatalogUseCase
	InvoiceUC *appbilling.InvoiceUseCase
	AuthUC    *auth.AuthUseCase
	JWTSecret string
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

	// Owners (protegido)
	owners := protected.Group("/owners")
	ownerHandler := NewOwnerHandler(deps.OwnerUC)
	owners.Post("/", ownerHandler.Create)
	owners.Get("/", ownerHandler.List)
	owners.Get("/:id", ownerHandler.GetByID)
	owners.Put("/:id", ownerHandler.Update)
	owners.Delete("/:id", RequireRole(entity.RoleAdmin), ownerHandler.Deactivate)

	// Pets (protegido)
	pets := protected.Group("/pets")
	petHandler := NewPetHandler(deps.PetUC)
	pets.Post("/", petHandler.Create)
	pets.Get("/", petHandler.ListByOwner)
	pets.Get("/:id", petHandler.GetByID)
	pets.Put("/:id", petHandler.Update)
	pets.Delete("/:id", RequireRole(entity.RoleAdmin), petHandler.Deactivate)

	// Catalog (protegido; altas y bajas solo admin)
	catalog := protected.Group("/catalog")
	catalogHandler := NewCatalogHandler(deps.CatalogUC)
	catalog.Post("/services", RequireRole(entity.RoleAdmin), catalogHandler.CreateService)
	catalog.Get("/services", catalogHandler.ListServices)
	catalog.Get("/services/:id", catalogHandler.GetService)
	catalog.Delete("/services/:id", RequireRole(entity.RoleAdmin), catalogHandler.DeactivateService)
	catalog.Post("/products", RequireRole(entity.RoleAdmin), catalogHandler.CreateProduct)
	catalog.Get("/products", catalogHandler.ListProducts)
	catalog.Get("/products/:id", catalogHandler.GetProduct)
	catalog.Delete("/products/:id", RequireRole(entity.RoleAdmin), catalogHandler.DeactivateProduct)

	// Invoices (protegido)
	invoices := protected.Group("/invoices")
	invoiceHandler := NewInvoiceHandler(deps.InvoiceUC)
	invoices.Post("/", invoiceHandler.Create)
	invoices.Get("/", invoiceHandler.List)
	invoices.Get("/:id", invoiceHandler.GetByID)
	invoices.Patch("/:id/status", invoiceHandler.SetStatus)
	invoices.Get("/:id/receipt", invoiceHandler.Receipt)
	invoices.Get("/:id/pdf", invoiceHandler.ReceiptPDF)
}
