package sales_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/jrfmotorparts/pos-backend/internal/domain/entity"
	"github.com/jrfmotorparts/pos-backend/internal/domain/sales"
)

func d(s string) decimal.Decimal {
	v, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return v
}

func TestTotal_SumaLineas(t *testing.T) {
	details := []entity.SaleDetail{
		{Quantity: 2, PriceAtSale: d("100.00")}, // 200.00
		{Quantity: 1, PriceAtSale: d("49.99")},  // 49.99
		{Quantity: 3, PriceAtSale: d("0.10")},   // 0.30
	}
	assert.True(t, sales.Total(details).Equal(d("250.29")),
		"total = %s, esperado 250.29", sales.Total(details))
}

func TestTotal_SinLineas(t *testing.T) {
	assert.True(t, sales.Total(nil).IsZero())
}

// Aritmética decimal exacta: 0.1 + 0.2 jamás debe dar 0.30000000000000004.
func TestTotal_SinErrorDeFlotante(t *testing.T) {
	details := []entity.SaleDetail{
		{Quantity: 1, PriceAtSale: d("0.1")},
		{Quantity: 1, PriceAtSale: d("0.2")},
	}
	assert.True(t, sales.Total(details).Equal(d("0.3")))
}

func TestDiscount(t *testing.T) {
	cases := []struct {
		amount  string
		percent string
		want    string
	}{
		{"1000.00", "10", "900.00"},
		{"1000.00", "0", "1000.00"},
		{"1000.00", "100", "0.00"},
		{"99.99", "50", "50.00"},  // redondeo half-up a 2 decimales
		{"1000.00", "-5", "1000.00"},  // fuera de rango: sin descuento
		{"1000.00", "150", "1000.00"}, // fuera de rango: sin descuento
	}
	for _, tc := range cases {
		got := sales.Discount(d(tc.amount), d(tc.percent))
		assert.True(t, got.Equal(d(tc.want)),
			"Discount(%s, %s%%) = %s, esperado %s", tc.amount, tc.percent, got, tc.want)
	}
}

func TestStockStatus(t *testing.T) {
	const threshold = 5
	assert.Equal(t, sales.StockStatusOut, sales.StockStatus(0, threshold))
	assert.Equal(t, sales.StockStatusOut, sales.StockStatus(-1, threshold))
	assert.Equal(t, sales.StockStatusLow, sales.StockStatus(1, threshold))
	assert.Equal(t, sales.StockStatusLow, sales.StockStatus(4, threshold))
	assert.Equal(t, sales.StockStatusOK, sales.StockStatus(5, threshold))
	assert.Equal(t, sales.StockStatusOK, sales.StockStatus(100, threshold))
}
