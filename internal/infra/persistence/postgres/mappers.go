package postgres

import (
	"trinity/internal/domain/entity"
	"trinity/internal/infra/persistence/model"

	"gorm.io/datatypes"
)

func fromLineItemsDomain(items entity.LineItems) datatypes.JSONSlice[model.LineItemRecord] {
	records := make(datatypes.JSONSlice[model.LineItemRecord], 0, len(items))
	for _, li := range items {
		records = append(records, model.LineItemRecord{
			ProductID: li.ProductID,
			Name:      li.Name,
			Brand:     li.Brand,
			Category:  li.Category,
			Price:     li.Price,
			Quantity:  li.Quantity,
		})
	}

	return records
}

func toLineItemsDomain(records datatypes.JSONSlice[model.LineItemRecord]) entity.LineItems {
	items := make(entity.LineItems, 0, len(records))
	for _, r := range records {
		items = append(items, entity.LineItem{
			ProductID: r.ProductID,
			Name:      r.Name,
			Brand:     r.Brand,
			Category:  r.Category,
			Price:     r.Price,
			Quantity:  r.Quantity,
		})
	}

	return items
}

func fromCustomerDomain(c entity.Customer) datatypes.JSONType[model.CustomerRecord] {
	return datatypes.NewJSONType(model.CustomerRecord{
		UserID:      c.UserID,
		FirstName:   c.FirstName,
		LastName:    c.LastName,
		PhoneNumber: c.PhoneNumber,
		Address:     c.BillingAddress.Address,
		ZipCode:     c.BillingAddress.ZipCode,
		City:        c.BillingAddress.City,
		Country:     c.BillingAddress.Country,
	})
}

func toCustomerDomain(data datatypes.JSONType[model.CustomerRecord]) entity.Customer {
	r := data.Data()

	return entity.Customer{
		UserID:      r.UserID,
		FirstName:   r.FirstName,
		LastName:    r.LastName,
		PhoneNumber: r.PhoneNumber,
		BillingAddress: entity.BillingAddress{
			Address: r.Address,
			ZipCode: r.ZipCode,
			City:    r.City,
			Country: r.Country,
		},
	}
}

func nullableString(s string) *string {
	if s == "" {
		return nil
	}

	return &s
}

func derefString(s *string) string {
	if s == nil {
		return ""
	}

	return *s
}
