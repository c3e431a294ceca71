package entity

// Capability is a named permission checked by route guards and services.
type Capability string

const (
	CapCatalogRead     Capability = "catalog:read"
	CapCatalogManage   Capability = "catalog:manage"
	CapCartManage      Capability = "cart:manage"
	CapCartReadAny     Capability = "cart:read:any"
	CapCartManageAny   Capability = "cart:manage:any"
	CapCheckout        Capability = "checkout:perform"
	CapInvoiceReadOwn  Capability = "invoice:read:own"
	CapInvoiceReadAny  Capability = "invoice:read:any"
	CapInvoiceManage   Capability = "invoice:manage"
	CapReportGenerate  Capability = "report:generate"
	CapUserManage      Capability = "user:manage"
	CapDeviceManage    Capability = "device:manage"
	CapCheckoutMonitor Capability = "checkout:monitor"
)

var customerCapabilities = []Capability{
	CapCatalogRead,
	CapCartManage,
	CapCheckout,
	CapInvoiceReadOwn,
	CapDeviceManage,
}

// RoleCapabilities is the single role to capability table.
var RoleCapabilities = map[Role][]Capability{
	RoleUser:      customerCapabilities,
	RoleModerator: append(append([]Capability{}, customerCapabilities...), CapCatalogManage),
	RoleAdmin: append(append([]Capability{}, customerCapabilities...),
		CapCatalogManage,
		CapCartReadAny,
		CapCartManageAny,
		CapInvoiceReadAny,
		CapInvoiceManage,
		CapReportGenerate,
		CapUserManage,
		CapCheckoutMonitor,
	),
}
