// Package model holds the GORM table mappings.
package model

// All lists every model for schema migration, parents first.
func All() []any {
	return []any{
		&RoleModel{},
		&UserModel{},
		&ProductModel{},
		&CartModel{},
		&InvoiceModel{},
		&ReportModel{},
		&CheckoutIntentModel{},
		&UserDeviceModel{},
	}
}
