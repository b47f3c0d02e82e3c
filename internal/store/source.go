package store

import (
	"context"

	"pricecompare/internal/model"
)

// Source produz os registros de preço de um SKU. O coletor não sabe se vieram
// da rede ou de dados fixos.
type Source interface {
	Name() string
	Prices(ctx context.Context, sku model.SKU) []model.PriceRecord
}

// LiveSource consulta cada adaptador em ordem, pelo nome do SKU.
type LiveSource struct {
	Adapters []Adapter
}

func NewLiveSource(adapters ...Adapter) *LiveSource {
	return &LiveSource{Adapters: adapters}
}

func (s *LiveSource) Name() string { return "live" }

func (s *LiveSource) Prices(ctx context.Context, sku model.SKU) []model.PriceRecord {
	var out []model.PriceRecord
	for _, a := range s.Adapters {
		if rec, ok := a.Search(ctx, sku.Name); ok {
			out = append(out, rec)
		}
	}
	return out
}
