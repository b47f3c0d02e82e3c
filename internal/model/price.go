package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// SKU é uma linha do arquivo mestre. Colunas além de sku_id/sku_name ficam em Extra.
type SKU struct {
	ID    string
	Name  string
	Extra map[string]string
}

// PriceRecord é o resultado normalizado de uma loja para um termo de busca.
// Price inválido (Valid=false) representa preço nulo.
type PriceRecord struct {
	Store string
	Name  string
	Price decimal.NullDecimal
	URL   string
}

type OutputRow struct {
	SKUID          string
	SKUName        string
	Store          string
	ProductName    string
	Price          decimal.NullDecimal
	Currency       string
	CollectionDate time.Time
	SourceURL      string
}

var OutputHeader = []string{
	"sku_id", "sku_name", "store", "product_name", "price", "currency", "collection_date", "source_url",
}

func NewOutputRow(sku SKU, rec PriceRecord, currency string, date time.Time) OutputRow {
	return OutputRow{
		SKUID:          sku.ID,
		SKUName:        sku.Name,
		Store:          rec.Store,
		ProductName:    rec.Name,
		Price:          rec.Price,
		Currency:       currency,
		CollectionDate: date,
		SourceURL:      rec.URL,
	}
}

// Record devolve a linha na ordem de OutputHeader.
func (r OutputRow) Record() []string {
	price := ""
	if r.Price.Valid {
		price = r.Price.Decimal.String()
	}
	return []string{
		r.SKUID,
		r.SKUName,
		r.Store,
		r.ProductName,
		price,
		r.Currency,
		r.CollectionDate.Format(time.DateOnly),
		r.SourceURL,
	}
}
