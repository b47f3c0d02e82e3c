package store

import (
	"context"

	"github.com/shopspring/decimal"

	"pricecompare/internal/model"
)

var (
	mockWalmartPrice = decimal.RequireFromString("9.99")
	mockTargetPrice  = decimal.RequireFromString("10.49")
)

// MockSource devolve sempre os mesmos dois registros por SKU, sem rede.
type MockSource struct{}

func (MockSource) Name() string { return "mock" }

func (MockSource) Prices(_ context.Context, sku model.SKU) []model.PriceRecord {
	return []model.PriceRecord{
		{
			Store: StoreWalmart,
			Name:  sku.Name + " - Walmart mock",
			Price: decimal.NewNullDecimal(mockWalmartPrice),
			URL:   "https://example.com/walmart",
		},
		{
			Store: StoreTarget,
			Name:  sku.Name + " - Target mock",
			Price: decimal.NewNullDecimal(mockTargetPrice),
			URL:   "https://example.com/target",
		},
	}
}
