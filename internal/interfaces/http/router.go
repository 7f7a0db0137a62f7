package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/alexsagar/teantea-api/internal/application/auth"
	"github.com/alexsagar/teantea-api/internal/application/inventory"
	"github.com/alexsagar/teantea-api/internal/application/order"
	"github.com/alexsagar/teantea-api/internal/application/usecase"
	"github.com/alexsagar/teantea-api/internal/domain/repository"
)

// Permission modules checked by the route gates.
const (
	ModuleMenu          = "menu"
	ModuleOrders        = "orders"
	ModuleInventory     = "inventory"
	ModuleStaff         = "staff"
	ModuleCustomers     = "customers"
	ModuleTables        = "tables"
	ModuleSuppliers     = "suppliers"
	ModuleStockIn       = "stockin"
	ModuleSettings      = "settings"
	ModuleReports       = "reports"
	ModuleNotifications = "notifications"
)

// Permission actions checked by the route gates.
const (
	ActionCreate = "create"
	ActionRead   = "read"
	ActionUpdate = "update"
	ActionDelete = "delete"
)

// RouterDeps dependencies for the router.
type RouterDeps struct {
	AuthUC      *auth.AuthUseCase
	StaffUC     *usecase.StaffUseCase
	MenuUC      *usecase.MenuUseCase
	OrderUC     *order.UseCase
	InventoryUC *inventory.UseCase
	CustomerUC  *usecase.CustomerUseCase
	TableUC     *usecase.TableUseCase
	SupplierUC  *usecase.SupplierUseCase
	SettingUC   *usecase.SettingUseCase
	ReportUC    *usecase.ReportUseCase

	ShopRepo     repository.ShopRepository
	CustomerRepo repository.CustomerRepository
	UserRepo     repository.UserRepository
	Receipts     ReceiptGenerator
	JWTSecret    string
}

// Router registers the API routes.
func Router(app *fiber.App, deps RouterDeps) {
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	api := app.Group("/api")

	// Auth (signup and login are public; the rest rides the auth middleware)
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup := api.Group("/auth")
	authGroup.Post("/signup-shop", authHandler.Signup)
	authGroup.Post("/login", authHandler.Login)

	authn := AuthMiddleware(deps.JWTSecret, deps.UserRepo)

	authPriv := authGroup.Group("/", authn)
	// Staff registration hands out roles and permission sets, so only an
	// admin may call it.
	authPriv.Post("/register", RequireAdmin(), authHandler.Register)
	authPriv.Get("/me", authHandler.Me)
	authPriv.Put("/profile", authHandler.UpdateProfile)
	authPriv.Put("/password", authHandler.ChangePassword)

	protected := api.Group("/", authn)

	menu := protected.Group("/menu")
	menuHandler := NewMenuHandler(deps.MenuUC)
	menu.Post("/", RequirePermission(ModuleMenu, ActionCreate), menuHandler.Create)
	menu.Get("/", RequirePermission(ModuleMenu, ActionRead), menuHandler.List)
	menu.Get("/:id", RequirePermission(ModuleMenu, ActionRead), menuHandler.Get)
	menu.Put("/:id", RequirePermission(ModuleMenu, ActionUpdate), menuHandler.Update)
	menu.Patch("/:id/availability", RequirePermission(ModuleMenu, ActionUpdate), menuHandler.SetAvailability)
	menu.Delete("/:id", RequirePermission(ModuleMenu, ActionDelete), menuHandler.Delete)

	orders := protected.Group("/orders")
	orderHandler := NewOrderHandler(deps.OrderUC, deps.ShopRepo, deps.CustomerRepo, deps.Receipts)
	orders.Post("/", RequirePermission(ModuleOrders, ActionCreate), orderHandler.Create)
	orders.Get("/", RequirePermission(ModuleOrders, ActionRead), orderHandler.List)
	orders.Get("/:id", RequirePermission(ModuleOrders, ActionRead), orderHandler.Get)
	orders.Get("/:id/receipt", RequirePermission(ModuleOrders, ActionRead), orderHandler.Receipt)
	orders.Put("/:id", RequirePermission(ModuleOrders, ActionUpdate), orderHandler.Update)
	orders.Patch("/:id/status", RequirePermission(ModuleOrders, ActionUpdate), orderHandler.UpdateStatus)
	orders.Delete("/:id", RequirePermission(ModuleOrders, ActionDelete), orderHandler.Cancel)
	orders.Delete("/:id/permanent", RequirePermission(ModuleOrders, ActionDelete), orderHandler.PermanentDelete)

	inv := protected.Group("/inventory")
	inventoryHandler := NewInventoryHandler(deps.InventoryUC)
	inv.Post("/", RequirePermission(ModuleInventory, ActionCreate), inventoryHandler.Create)
	inv.Get("/", RequirePermission(ModuleInventory, ActionRead), inventoryHandler.List)
	inv.Get("/alerts/low-stock", RequirePermission(ModuleInventory, ActionRead), inventoryHandler.LowStock)
	inv.Get("/:id", RequirePermission(ModuleInventory, ActionRead), inventoryHandler.Get)
	inv.Put("/:id", RequirePermission(ModuleInventory, ActionUpdate), inventoryHandler.Update)
	inv.Patch("/:id/stock", RequirePermission(ModuleInventory, ActionUpdate), inventoryHandler.AdjustStock)
	inv.Delete("/:id", RequirePermission(ModuleInventory, ActionDelete), inventoryHandler.Delete)

	stockIn := protected.Group("/stockin")
	stockIn.Post("/", RequirePermission(ModuleStockIn, ActionCreate), inventoryHandler.StockIn)
	stockIn.Get("/", RequirePermission(ModuleStockIn, ActionRead), inventoryHandler.ListStockIns)
	stockIn.Get("/:id", RequirePermission(ModuleStockIn, ActionRead), inventoryHandler.GetStockIn)

	staff := protected.Group("/staff")
	staffHandler := NewStaffHandler(deps.StaffUC)
	staff.Get("/", RequirePermission(ModuleStaff, ActionRead), staffHandler.List)
	staff.Get("/:id", RequirePermission(ModuleStaff, ActionRead), staffHandler.Get)
	staff.Put("/:id", RequirePermission(ModuleStaff, ActionUpdate), staffHandler.Update)
	staff.Patch("/:id/permissions", RequirePermission(ModuleStaff, ActionUpdate), staffHandler.UpdatePermissions)
	staff.Delete("/:id", RequirePermission(ModuleStaff, ActionDelete), staffHandler.Deactivate)

	customers := protected.Group("/customers")
	customerHandler := NewCustomerHandler(deps.CustomerUC)
	customers.Post("/", RequirePermission(ModuleCustomers, ActionCreate), customerHandler.Create)
	customers.Get("/", RequirePermission(ModuleCustomers, ActionRead), customerHandler.List)
	customers.Get("/:id", RequirePermission(ModuleCustomers, ActionRead), customerHandler.Get)
	customers.Put("/:id", RequirePermission(ModuleCustomers, ActionUpdate), customerHandler.Update)
	customers.Patch("/:id/loyalty", RequirePermission(ModuleCustomers, ActionUpdate), customerHandler.AdjustLoyalty)
	customers.Delete("/:id", RequirePermission(ModuleCustomers, ActionDelete), customerHandler.Delete)

	tables := protected.Group("/tables")
	tableHandler := NewTableHandler(deps.TableUC)
	tables.Post("/", RequirePermission(ModuleTables, ActionCreate), tableHandler.Create)
	tables.Get("/", RequirePermission(ModuleTables, ActionRead), tableHandler.List)
	tables.Get("/:id", RequirePermission(ModuleTables, ActionRead), tableHandler.Get)
	tables.Put("/:id", RequirePermission(ModuleTables, ActionUpdate), tableHandler.Update)
	tables.Patch("/:id/status", RequirePermission(ModuleTables, ActionUpdate), tableHandler.SetStatus)
	tables.Post("/:id/reservation", RequirePermission(ModuleTables, ActionUpdate), tableHandler.Reserve)
	tables.Delete("/:id/reservation", RequirePermission(ModuleTables, ActionUpdate), tableHandler.ClearReservation)
	tables.Delete("/:id", RequirePermission(ModuleTables, ActionDelete), tableHandler.Delete)

	suppliers := protected.Group("/suppliers")
	supplierHandler := NewSupplierHandler(deps.SupplierUC)
	suppliers.Post("/", RequirePermission(ModuleSuppliers, ActionCreate), supplierHandler.Create)
	suppliers.Get("/", RequirePermission(ModuleSuppliers, ActionRead), supplierHandler.List)
	suppliers.Get("/:id", RequirePermission(ModuleSuppliers, ActionRead), supplierHandler.Get)
	suppliers.Put("/:id", RequirePermission(ModuleSuppliers, ActionUpdate), supplierHandler.Update)
	suppliers.Delete("/:id", RequirePermission(ModuleSuppliers, ActionDelete), supplierHandler.Delete)

	settingHandler := NewSettingHandler(deps.SettingUC)
	settings := protected.Group("/settings")
	settings.Get("/", RequirePermission(ModuleSettings, ActionRead), settingHandler.Get)
	settings.Patch("/:section", RequirePermission(ModuleSettings, ActionUpdate), settingHandler.PatchSection)

	notifications := protected.Group("/notifications")
	notifications.Get("/templates", RequirePermission(ModuleNotifications, ActionRead), settingHandler.GetTemplates)
	notifications.Put("/templates", RequirePermission(ModuleNotifications, ActionUpdate), settingHandler.PatchTemplates)

	reports := protected.Group("/reports")
	reportHandler := NewReportHandler(deps.ReportUC)
	reports.Get("/sales", RequirePermission(ModuleReports, ActionRead), reportHandler.Sales)
	reports.Get("/products", RequirePermission(ModuleReports, ActionRead), reportHandler.Products)
	reports.Get("/customers", RequirePermission(ModuleReports, ActionRead), reportHandler.Customers)
	reports.Get("/inventory", RequirePermission(ModuleReports, ActionRead), reportHandler.Inventory)
	reports.Get("/financial", RequirePermission(ModuleReports, ActionRead), reportHandler.Financial)
}
