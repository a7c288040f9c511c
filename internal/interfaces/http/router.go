package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/almacen-api/internal/application/auth"
	"github.com/jhoicas/almacen-api/internal/application/ledger"
	"github.com/jhoicas/almacen-api/internal/application/planning"
	"github.com/jhoicas/almacen-api/internal/application/purchasing"
	"github.com/jhoicas/almacen-api/internal/application/receiving"
	"github.com/jhoicas/almacen-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC      *auth.UseCase
	ItemUC      *usecase.ItemUseCase
	MasterUC    *usecase.MasterUseCase
	ReportUC    *usecase.ReportUseCase
	LedgerUC    *ledger.UseCase
	ReceivingUC *receiving.UseCase
	PlanningUC  *planning.UseCase
	PurchaseUC  *purchasing.UseCase
	StockPDF    StockReportPDFGenerator
	JWTSecret   string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth: login público; register y me requieren token (register solo admin).
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup := api.Group("/auth")
	authGroup.Post("/login", authHandler.Login)
	authGroup.Post("/register", AuthMiddleware(deps.JWTSecret), RequireRole("admin"), authHandler.Register)
	authGroup.Get("/me", AuthMiddleware(deps.JWTSecret), authHandler.Me)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Items (protegido)
	items := protected.Group("/items")
	itemHandler := NewItemHandler(deps.ItemUC)
	items.Post("/", itemHandler.Create)
	items.Get("/", itemHandler.List)
	items.Get("/:id", itemHandler.GetByID)
	items.Put("/:id", itemHandler.Update)
	items.Delete("/:id", itemHandler.Delete)

	// Stock movements (protegido, append-only)
	movementHandler := NewMovementHandler(deps.LedgerUC)
	movements := protected.Group("/stock-movements")
	movements.Post("/", movementHandler.Register)
	movements.Get("/", movementHandler.List)
	movements.Get("/:id", movementHandler.GetByID)
	items.Get("/:itemId/movements", movementHandler.ListByItem)

	// Receipts (protegido)
	receipts := protected.Group("/receipts")
	receiptHandler := NewReceiptHandler(deps.ReceivingUC)
	receipts.Post("/", receiptHandler.Create)
	receipts.Get("/", receiptHandler.List)
	receipts.Get("/:id", receiptHandler.GetByID)
	receipts.Put("/:id", receiptHandler.Update)
	receipts.Delete("/:id", receiptHandler.Delete)

	// Purchase orders (protegido)
	orders := protected.Group("/purchase-orders")
	orderHandler := NewPurchaseOrderHandler(deps.PurchaseUC)
	orders.Post("/", orderHandler.Create)
	orders.Get("/", orderHandler.List)
	orders.Get("/:id", orderHandler.GetByID)
	orders.Put("/:id", orderHandler.Update)
	orders.Delete("/:id", orderHandler.Delete)

	// Calculations EOQ/JIT (protegido). Las rutas fijas van antes de :id.
	calcs := protected.Group("/calculations")
	calcHandler := NewCalculationHandler(deps.PlanningUC)
	calcs.Post("/eoq", calcHandler.CalculateEOQ)
	calcs.Post("/jit", calcHandler.CalculateJIT)
	calcs.Get("/historical-data/:itemId", calcHandler.HistoricalData)
	calcs.Get("/eoq/item/:itemId", calcHandler.ListEOQ)
	calcs.Get("/eoq/:id", calcHandler.GetEOQ)
	calcs.Delete("/eoq/:id", calcHandler.DeleteEOQ)
	calcs.Get("/jit/item/:itemId", calcHandler.ListJIT)
	calcs.Get("/jit/:id", calcHandler.GetJIT)
	calcs.Delete("/jit/:id", calcHandler.DeleteJIT)

	// Master data (protegido)
	masterHandler := NewMasterHandler(deps.MasterUC)
	categories := protected.Group("/categories")
	categories.Post("/", masterHandler.CreateCategory)
	categories.Get("/", masterHandler.ListCategories)
	categories.Put("/:id", masterHandler.UpdateCategory)
	categories.Delete("/:id", masterHandler.DeleteCategory)

	suppliers := protected.Group("/suppliers")
	suppliers.Post("/", masterHandler.CreateSupplier)
	suppliers.Get("/", masterHandler.ListSuppliers)
	suppliers.Put("/:id", masterHandler.UpdateSupplier)
	suppliers.Delete("/:id", masterHandler.DeleteSupplier)

	units := protected.Group("/units")
	units.Post("/", masterHandler.CreateUnit)
	units.Get("/", masterHandler.ListUnits)
	units.Put("/:id", masterHandler.UpdateUnit)
	units.Delete("/:id", masterHandler.DeleteUnit)

	// Dashboard y reportes (protegido)
	reportHandler := NewReportHandler(deps.ReportUC, deps.StockPDF)
	protected.Get("/dashboard", reportHandler.Dashboard)
	reports := protected.Group("/reports")
	reports.Get("/usage", reportHandler.Usage)
	reports.Get("/stock", reportHandler.Stock)
	reports.Get("/stock/pdf", reportHandler.StockPDF)
	reports.Get("/purchases", reportHandler.Purchases)
}
