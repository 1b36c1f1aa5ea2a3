package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/rightchoice/medicare-api/internal/application/analytics"
	"github.com/rightchoice/medicare-api/internal/application/auth"
	"github.com/rightchoice/medicare-api/internal/application/ledger"
	"github.com/rightchoice/medicare-api/internal/application/payments"
	"github.com/rightchoice/medicare-api/internal/application/procurement"
	"github.com/rightchoice/medicare-api/internal/application/sales"
	"github.com/rightchoice/medicare-api/internal/application/usecase"
	"github.com/rightchoice/medicare-api/internal/domain/entity"
)

// RouterDeps carries the use cases the router wires up.
type RouterDeps struct {
	AuthUC      *auth.UseCase
	CatalogUC   *usecase.CatalogUseCase
	InventoryUC *usecase.InventoryQueryUseCase
	Ledger      *ledger.Engine
	Procurement *procurement.UseCase
	Sales       *sales.UseCase
	Payments    *payments.UseCase
	GSTReturnUC *usecase.GSTReturnUseCase
	Analytics   *analytics.UseCase
	JWTSecret   string
}

// Router registers the API routes. Everything except /auth and /health
// requires a bearer token; mutating catalog and inventory routes are further
// restricted by role.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (public)
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup := api.Group("/auth")
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))
	authGroup.Get("/me", AuthMiddleware(deps.JWTSecret), authHandler.Me)

	manageRoles := RequireRole(entity.RoleSuperAdmin, entity.RoleAdmin, entity.RoleManager)
	financeRoles := RequireRole(entity.RoleSuperAdmin, entity.RoleAdmin, entity.RoleManager, entity.RoleAccountant)

	// Companies (tenant administration)
	catalogHandler := NewCatalogHandler(deps.CatalogUC)
	companies := protected.Group("/companies")
	companies.Post("/", RequireRole(entity.RoleSuperAdmin), catalogHandler.CreateCompany)
	companies.Get("/", RequireRole(entity.RoleSuperAdmin), catalogHandler.ListCompanies)
	companies.Get("/:id", catalogHandler.GetCompany)

	locations := protected.Group("/locations")
	locations.Post("/", manageRoles, catalogHandler.CreateLocation)
	locations.Get("/", catalogHandler.ListLocations)

	categories := protected.Group("/categories")
	categories.Post("/", manageRoles, catalogHandler.CreateCategory)
	categories.Get("/", catalogHandler.ListCategories)

	items := protected.Group("/items")
	items.Post("/", manageRoles, catalogHandler.CreateItem)
	items.Get("/", catalogHandler.ListItems)
	items.Get("/:id", catalogHandler.GetItem)
	items.Put("/:id", manageRoles, catalogHandler.UpdateItem)

	customers := protected.Group("/customers")
	customers.Post("/", catalogHandler.CreateCustomer)
	customers.Get("/", catalogHandler.ListCustomers)
	customers.Get("/:id", catalogHandler.GetCustomer)

	suppliers := protected.Group("/suppliers")
	suppliers.Post("/", manageRoles, catalogHandler.CreateSupplier)
	suppliers.Get("/", catalogHandler.ListSuppliers)

	// Stock queries + manual corrections
	inventoryHandler := NewInventoryHandler(deps.Ledger, deps.InventoryUC)
	stock := protected.Group("/stock")
	stock.Get("/", inventoryHandler.ListStock)
	stock.Post("/adjust", manageRoles, inventoryHandler.Adjust)
	stock.Post("/transfer", manageRoles, inventoryHandler.Transfer)
	protected.Get("/batches", inventoryHandler.ListBatches)
	protected.Get("/stock-movements", inventoryHandler.ListMovements)

	// Procurement
	purchaseHandler := NewPurchaseHandler(deps.Procurement)
	pos := protected.Group("/purchase-orders")
	pos.Post("/", manageRoles, purchaseHandler.CreatePO)
	pos.Get("/", purchaseHandler.ListPOs)
	pos.Get("/:id", purchaseHandler.GetPO)
	pos.Post("/:id/transition", manageRoles, purchaseHandler.TransitionPO)

	grns := protected.Group("/grn")
	grns.Post("/", manageRoles, purchaseHandler.CreateGRN)
	grns.Get("/", purchaseHandler.ListGRNs)
	grns.Get("/:id", purchaseHandler.GetGRN)

	// Sales
	salesHandler := NewSalesHandler(deps.Sales)
	sos := protected.Group("/sales-orders")
	sos.Post("/", salesHandler.CreateSO)
	sos.Get("/", salesHandler.ListSOs)
	sos.Get("/:id", salesHandler.GetSO)
	sos.Post("/:id/transition", manageRoles, salesHandler.TransitionSO)

	invoices := protected.Group("/invoices")
	invoices.Post("/", salesHandler.CreateInvoice)
	invoices.Get("/", salesHandler.ListInvoices)
	invoices.Get("/:id", salesHandler.GetInvoice)

	// Payments
	paymentHandler := NewPaymentHandler(deps.Payments)
	pay := protected.Group("/payments")
	pay.Post("/", financeRoles, paymentHandler.Record)
	pay.Get("/", paymentHandler.List)
	pay.Post("/create-order", financeRoles, paymentHandler.CreateOrder)

	// GST returns
	gstHandler := NewGSTReturnHandler(deps.GSTReturnUC)
	gst := protected.Group("/gst-returns")
	gst.Post("/", financeRoles, gstHandler.Save)
	gst.Get("/", gstHandler.List)
	gst.Get("/period", gstHandler.GetByPeriod)

	// Dashboard
	dashboardHandler := NewDashboardHandler(deps.Analytics)
	protected.Get("/dashboard/summary", dashboardHandler.Summary)
}
