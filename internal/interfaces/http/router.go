package http

import (
	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"

	"github.com/jrfmotorparts/pos-backend/internal/application/auth"
	"github.com/jrfmotorparts/pos-backend/internal/application/inventory"
	"github.com/jrfmotorparts/pos-backend/internal/application/reports"
	"github.com/jrfmotorparts/pos-backend/internal/application/sales"
	"github.com/jrfmotorparts/pos-backend/internal/application/usecase"
	"github.com/jrfmotorparts/pos-backend/internal/domain/authz"
	"github.com/jrfmotorparts/pos-backend/internal/domain/repository"
	"github.com/jrfmotorparts/pos-backend/internal/interfaces/ws"
	"github.com/jrfmotorparts/pos-backend/pkg/jwt"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC         *auth.AuthUseCase
	StaffUC        *usecase.StaffUseCase
	InventoryUC    *inventory.UseCase
	CreateSale     *sales.CreateSaleUseCase
	ReceiptUC      *sales.ReceiptUseCase
	SupplierUC     *usecase.SupplierUseCase
	CustomerUC     *usecase.CustomerUseCase
	SettingsUC     *usecase.SettingsUseCase
	NotificationUC *usecase.NotificationUseCase
	ExpenseUC      *usecase.ExpenseUseCase
	ReportsUC      *reports.UseCase
	AuditRepo      repository.AuditRepository
	Hub            *ws.Hub
	JWTSecret      string
}

// Router registra las rutas de la API. Cada grupo mutante lleva el permiso
// que exige la matriz de roles.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Post("/logout", AuthMiddleware(deps.JWTSecret), authHandler.Logout)
	authGroup.Post("/register",
		AuthMiddleware(deps.JWTSecret), RequirePermission(authz.PermManageStaff),
		authHandler.RegisterStaff)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Staff (solo admin)
	staff := protected.Group("/staff", RequirePermission(authz.PermManageStaff))
	staffHandler := NewStaffHandler(deps.StaffUC)
	staff.Get("/", staffHandler.List)
	staff.Get("/:id", staffHandler.Get)
	staff.Put("/:id", staffHandler.Update)
	staff.Delete("/:id", staffHandler.Delete)

	// Parts: lectura con view-inventory, escritura con manage-inventory.
	// El permiso va por ruta porque el mismo prefijo mezcla ambos niveles.
	partHandler := NewPartHandler(deps.InventoryUC)
	parts := protected.Group("/parts")
	canView := RequirePermission(authz.PermViewInventory)
	canManage := RequirePermission(authz.PermManageInventory)
	parts.Get("/", canView, partHandler.List)
	parts.Get("/:id", canView, partHandler.Get)
	parts.Get("/:id/ledger", canView, partHandler.Ledger)
	parts.Post("/", canManage, partHandler.Create)
	parts.Put("/:id", canManage, partHandler.Update)
	parts.Delete("/:id", canManage, partHandler.Delete)
	parts.Post("/:id/stock", canManage, partHandler.AdjustStock)

	// Sales (process-sale)
	salesGroup := protected.Group("/sales", RequirePermission(authz.PermProcessSale))
	saleHandler := NewSaleHandler(deps.CreateSale, deps.ReceiptUC)
	salesGroup.Post("/", saleHandler.Create)
	salesGroup.Get("/", saleHandler.List)
	salesGroup.Get("/:id", saleHandler.Get)
	salesGroup.Get("/:id/receipt", saleHandler.Receipt)
	salesGroup.Delete("/:id", RequirePermission(authz.PermManageInventory), saleHandler.Delete)

	// Suppliers (manage-suppliers)
	suppliers := protected.Group("/suppliers", RequirePermission(authz.PermManageSuppliers))
	supplierHandler := NewSupplierHandler(deps.SupplierUC)
	suppliers.Post("/", supplierHandler.Create)
	suppliers.Get("/", supplierHandler.List)
	suppliers.Put("/:id", supplierHandler.Update)
	suppliers.Delete("/:id", supplierHandler.Delete)
	suppliers.Get("/:id/parts", supplierHandler.ListParts)
	suppliers.Post("/:id/parts/:partId", supplierHandler.LinkPart)
	suppliers.Delete("/:id/parts/:partId", supplierHandler.UnlinkPart)

	// Customers (process-sale: quien vende registra clientes)
	customers := protected.Group("/customers", RequirePermission(authz.PermProcessSale))
	customerHandler := NewCustomerHandler(deps.CustomerUC)
	customers.Post("/", customerHandler.Create)
	customers.Get("/", customerHandler.List)
	customers.Get("/:id", customerHandler.Get)
	customers.Put("/:id", customerHandler.Update)
	customers.Delete("/:id", customerHandler.Deactivate)

	// Settings: lectura con view-reports, escritura con manage-inventory
	settingHandler := NewSettingHandler(deps.SettingsUC)
	protected.Get("/settings", RequirePermission(authz.PermViewReports), settingHandler.List)
	protected.Put("/settings/:category/:key", RequirePermission(authz.PermManageInventory), settingHandler.Update)

	// Notifications (propias del empleado autenticado, sin permiso extra)
	notifications := protected.Group("/notifications")
	notificationHandler := NewNotificationHandler(deps.NotificationUC)
	notifications.Get("/", notificationHandler.List)
	notifications.Get("/unread-count", notificationHandler.UnreadCount)
	notifications.Post("/read-all", notificationHandler.MarkAllRead)
	notifications.Post("/:id/read", notificationHandler.MarkRead)
	notifications.Delete("/", notificationHandler.DeleteAll)
	notifications.Delete("/:id", notificationHandler.Delete)

	// Expenses (view-reports)
	expenses := protected.Group("/expenses", RequirePermission(authz.PermViewReports))
	expenseHandler := NewExpenseHandler(deps.ExpenseUC)
	expenses.Post("/", expenseHandler.Create)
	expenses.Get("/", expenseHandler.List)
	expenses.Get("/:id", expenseHandler.Get)
	expenses.Put("/:id", expenseHandler.Update)
	expenses.Delete("/:id", expenseHandler.Delete)

	// Reports (view-reports)
	reportsGroup := protected.Group("/reports", RequirePermission(authz.PermViewReports))
	reportHandler := NewReportHandler(deps.ReportsUC)
	reportsGroup.Get("/dashboard", reportHandler.Dashboard)
	reportsGroup.Get("/monthly-sales", reportHandler.MonthlySales)
	reportsGroup.Get("/sales-by-staff", reportHandler.SalesByStaff)
	reportsGroup.Get("/low-stock", reportHandler.LowStock)

	// Audit logs (manage-staff)
	auditHandler := NewAuditHandler(deps.AuditRepo)
	protected.Get("/audit-logs", RequirePermission(authz.PermManageStaff), auditHandler.List)

	// WebSocket de notificaciones en tiempo real. El navegador no puede mandar
	// headers en el upgrade, así que el token viaja en ?token=.
	app.Use("/ws", func(c *fiber.Ctx) error {
		if !websocket.IsWebSocketUpgrade(c) {
			return c.SendStatus(fiber.StatusUpgradeRequired)
		}
		staffID, _, err := jwt.Parse(deps.JWTSecret, c.Query("token"))
		if err != nil {
			return c.SendStatus(fiber.StatusUnauthorized)
		}
		c.Locals(LocalStaffID, staffID)
		return c.Next()
	})
	app.Get("/ws", websocket.New(func(conn *websocket.Conn) {
		staffID, _ := conn.Locals(LocalStaffID).(string)
		deps.Hub.Register(conn, staffID)
		defer deps.Hub.Unregister(conn)

		for {
			// Keep alive; no se esperan mensajes del cliente.
			if _, _, err := conn.ReadMessage(); err != nil {
				break
			}
		}
	}))
}
