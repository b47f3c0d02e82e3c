package model

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestOutputRowRecord(t *testing.T) {
	date := time.Date(2026, 10, 17, 15, 4, 5, 0, time.UTC)
	sku := SKU{ID: "1", Name: "milk"}
	rec := PriceRecord{
		Store: "Walmart",
		Name:  "milk - Walmart mock",
		Price: decimal.NewNullDecimal(decimal.RequireFromString("9.99")),
		URL:   "https://example.com/walmart",
	}

	got := NewOutputRow(sku, rec, "USD", date).Record()

	assert.Equal(t, []string{"1", "milk", "Walmart", "milk - Walmart mock", "9.99", "USD", "2026-10-17", "https://example.com/walmart"}, got)
	assert.Len(t, got, len(OutputHeader))
}

func TestOutputRowNullPrice(t *testing.T) {
	row := NewOutputRow(SKU{ID: "2", Name: "eggs"}, PriceRecord{Store: "Target", Name: "Eggs"}, "USD", time.Now())

	assert.Equal(t, "", row.Record()[4])
	assert.Equal(t, "", row.Record()[7])
}
