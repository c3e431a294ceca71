// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"trinity/internal/delivery/api/middleware"
	"trinity/internal/delivery/api/router/handler"
	"trinity/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler     *handler.AuthHandler
	UserHandler     *handler.UserHandler
	ProductHandler  *handler.ProductHandler
	CartHandler     *handler.CartHandler
	CheckoutHandler *handler.CheckoutHandler
	InvoiceHandler  *handler.InvoiceHandler
	ReportHandler   *handler.ReportHandler
	DeviceHandler   *handler.DeviceHandler
	SessionHandler  *handler.SessionHandler
	AuthMiddleware  *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	auth     *handler.AuthHandler
	user     *handler.UserHandler
	product  *handler.ProductHandler
	cart     *handler.CartHandler
	checkout *handler.CheckoutHandler
	invoice  *handler.InvoiceHandler
	report   *handler.ReportHandler
	device   *handler.DeviceHandler
	session  *handler.SessionHandler
	authMW   *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		auth:     params.AuthHandler,
		user:     params.UserHandler,
		product:  params.ProductHandler,
		cart:     params.CartHandler,
		checkout: params.CheckoutHandler,
		invoice:  params.InvoiceHandler,
		report:   params.ReportHandler,
		device:   params.DeviceHandler,
		session:  params.SessionHandler,
		authMW:   params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	api := e.Group("/api")

	// Public
	// Registration is public; a signed-in user manager may also assign roles here.
	api.POST("/users", r.auth.Register, r.authMW.OptionalAuthenticate)
	api.POST("/auth/signup", r.auth.Register, r.authMW.OptionalAuthenticate)
	api.POST("/auth/signin", r.auth.SignIn)
	api.POST("/auth/signout", r.auth.SignOut)

	// Everything below requires an access token
	authed := api.Group("", r.authMW.Authenticate)
	can := r.authMW.RequireCapability

	authed.GET("/auth/session", r.session.Session)

	// Users
	authed.GET("/users/me", r.user.GetMe)
	authed.GET("/user/:id", r.user.GetUser)
	authed.GET("/users", r.user.ListUsers)
	authed.PUT("/users", r.user.UpdateProfile)
	authed.PUT("/users/role/:id", r.user.SetRoles, can(entity.CapUserManage))
	authed.DELETE("/users/:id", r.user.DeleteUser, can(entity.CapUserManage))

	// Catalog
	authed.GET("/products", r.product.ListProducts, can(entity.CapCatalogRead))
	authed.GET("/products/:id", r.product.GetProduct, can(entity.CapCatalogRead))
	authed.GET("/products/:id/qrcode", r.product.ProductLabel, can(entity.CapCatalogRead))
	authed.POST("/products", r.product.CreateProduct, can(entity.CapCatalogManage))
	authed.POST("/products/:barcode", r.product.AddFromBarcode, can(entity.CapCatalogManage))
	authed.PUT("/products/:id", r.product.UpdateProduct, can(entity.CapCatalogManage))
	authed.DELETE("/products/:id", r.product.DeleteProduct, can(entity.CapCatalogManage))
	authed.GET("/off", r.product.SearchCatalog, can(entity.CapCatalogRead))

	// Carts
	carts := authed.Group("/cart", can(entity.CapCartManage))
	carts.POST("", r.cart.CreateCart)
	carts.GET("", r.cart.ListCarts)
	carts.GET("/:id", r.cart.GetCart)
	carts.PUT("/add/:id", r.cart.AddProduct)
	carts.PUT("/remove/:id", r.cart.RemoveProduct)
	carts.DELETE("/:id", r.cart.DeleteCart)

	// Checkout
	paypal := authed.Group("/paypal", can(entity.CapCheckout))
	paypal.POST("/create-order", r.checkout.CreateOrder)
	paypal.POST("/capture-payment", r.checkout.CapturePayment)

	// Invoices
	authed.GET("/invoices", r.invoice.ListInvoices, can(entity.CapInvoiceReadOwn))
	authed.GET("/invoices/:id", r.invoice.GetInvoice, can(entity.CapInvoiceReadOwn))
	authed.POST("/invoices", r.invoice.CreateInvoice, can(entity.CapInvoiceManage))
	authed.PUT("/invoices/:id", r.invoice.UpdateInvoice, can(entity.CapInvoiceManage))
	authed.DELETE("/invoices/:id", r.invoice.DeleteInvoice, can(entity.CapInvoiceManage))

	// Reports
	reports := authed.Group("/reports", can(entity.CapReportGenerate))
	reports.GET("", r.report.ListReports)
	reports.GET("/:types/:userId", r.report.GenerateReport)

	// Devices
	devices := authed.Group("/devices", can(entity.CapDeviceManage))
	devices.POST("", r.device.RegisterDevice)
	devices.GET("", r.device.GetUserDevices)
	devices.PUT("/:id/token", r.device.UpdateFCMToken)
	devices.DELETE("/:id", r.device.DeactivateDevice)
}
