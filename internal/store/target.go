package store

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"

	"go.uber.org/zap"

	"pricecompare/internal/model"
)

type targetResponse struct {
	Data *struct {
		Search *struct {
			Products []targetProduct `json:"products"`
		} `json:"search"`
	} `json:"data"`
}

type targetProduct struct {
	Item *struct {
		ProductDescription *struct {
			Title *string `json:"title"`
		} `json:"product_description"`
		Enrichment *struct {
			BuyURL *string `json:"buy_url"`
		} `json:"enrichment"`
	} `json:"item"`
	Price *struct {
		CurrentRetail Amount `json:"current_retail"`
	} `json:"price"`
}

type Target struct {
	endpoint
}

func NewTarget(client Fetcher, baseURL, host, apiKey string, log *zap.Logger) *Target {
	return &Target{endpoint{Client: client, BaseURL: baseURL, Host: host, APIKey: apiKey, Log: log}}
}

func (t *Target) Store() string { return StoreTarget }

func (t *Target) Search(ctx context.Context, term string) (model.PriceRecord, bool) {
	return t.lookup(ctx, StoreTarget, term, url.Values{"q": {term}}, extractTarget)
}

// extractTarget usa data.search.products[0]. Título, objeto price e buy_url são
// obrigatórios; current_retail nulo vira preço nulo.
func extractTarget(body []byte) (model.PriceRecord, error) {
	var resp targetResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return model.PriceRecord{}, fmt.Errorf("%s: decode: %w", StoreTarget, err)
	}
	switch {
	case resp.Data == nil:
		return model.PriceRecord{}, absent(StoreTarget, "data")
	case resp.Data.Search == nil:
		return model.PriceRecord{}, absent(StoreTarget, "data.search")
	case len(resp.Data.Search.Products) == 0:
		return model.PriceRecord{}, absent(StoreTarget, "data.search.products[0]")
	}

	p := resp.Data.Search.Products[0]
	switch {
	case p.Item == nil:
		return model.PriceRecord{}, absent(StoreTarget, "item")
	case p.Item.ProductDescription == nil || p.Item.ProductDescription.Title == nil:
		return model.PriceRecord{}, absent(StoreTarget, "item.product_description.title")
	case p.Price == nil:
		return model.PriceRecord{}, absent(StoreTarget, "price")
	case p.Item.Enrichment == nil || p.Item.Enrichment.BuyURL == nil:
		return model.PriceRecord{}, absent(StoreTarget, "item.enrichment.buy_url")
	}

	return model.PriceRecord{
		Store: StoreTarget,
		Name:  cleanTitle(*p.Item.ProductDescription.Title),
		Price: p.Price.CurrentRetail.NullDecimal,
		URL:   *p.Item.Enrichment.BuyURL,
	}, nil
}
