package validator

import (
	"testing"

	domainerrors "trinity/internal/domain/errors"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type priceRequest struct {
	Name     string          `json:"name" validate:"required"`
	Price    decimal.Decimal `json:"price" validate:"gte=0"`
	Platform string          `json:"platform" validate:"omitempty,oneof=ios android web"`
}

func TestRequestValidator_Validate(t *testing.T) {
	v := New()

	require.NoError(t, v.Validate(&priceRequest{Name: "Tea", Price: decimal.RequireFromString("3.50")}))

	err := v.Validate(&priceRequest{Price: decimal.NewFromInt(-1), Platform: "symbian"})
	require.Error(t, err)

	var validationErr *ValidationError
	require.True(t, errors.As(err, &validationErr))
	assert.ElementsMatch(t, []FieldError{
		{Field: "name", Rule: "required"},
		{Field: "price", Rule: "gte", Param: "0"},
		{Field: "platform", Rule: "oneof", Param: "ios android web"},
	}, validationErr.Fields)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
	assert.Contains(t, err.Error(), "price (gte)")
}
