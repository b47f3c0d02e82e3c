package store

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/url"

	"go.uber.org/zap"

	"pricecompare/internal/model"
)

type walmartResponse struct {
	Items *[]walmartItem `json:"items"`
}

type walmartItem struct {
	Title          *string      `json:"title"`
	Price          walmartPrice `json:"price"`
	SalePrice      Amount       `json:"salePrice"`
	ProductPageURL string       `json:"product_page_url"`
	Link           string       `json:"link"`
}

// walmartPrice normalmente é {"current_price": ...}, mas alguns resultados
// trazem o preço direto como número ou string.
type walmartPrice struct {
	Current Amount
}

func (p *walmartPrice) UnmarshalJSON(b []byte) error {
	if b = bytes.TrimSpace(b); len(b) > 0 && b[0] == '{' {
		var obj struct {
			CurrentPrice Amount `json:"current_price"`
		}
		if err := json.Unmarshal(b, &obj); err != nil {
			return err
		}
		p.Current = obj.CurrentPrice
		return nil
	}
	return p.Current.UnmarshalJSON(b)
}

type Walmart struct {
	endpoint
}

func NewWalmart(client Fetcher, baseURL, host, apiKey string, log *zap.Logger) *Walmart {
	return &Walmart{endpoint{Client: client, BaseURL: baseURL, Host: host, APIKey: apiKey, Log: log}}
}

func (w *Walmart) Store() string { return StoreWalmart }

func (w *Walmart) Search(ctx context.Context, term string) (model.PriceRecord, bool) {
	params := url.Values{"query": {term}, "page": {"1"}}
	return w.lookup(ctx, StoreWalmart, term, params, extractWalmart)
}

// extractWalmart usa items[0]. Preço: price.current_price, ou salePrice quando
// aquele falta ou é zero. URL: product_page_url, ou link.
func extractWalmart(body []byte) (model.PriceRecord, error) {
	var resp walmartResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return model.PriceRecord{}, fmt.Errorf("%s: decode: %w", StoreWalmart, err)
	}
	if resp.Items == nil {
		return model.PriceRecord{}, absent(StoreWalmart, "items")
	}
	if len(*resp.Items) == 0 {
		return model.PriceRecord{}, absent(StoreWalmart, "items[0]")
	}
	item := (*resp.Items)[0]
	if item.Title == nil {
		return model.PriceRecord{}, absent(StoreWalmart, "items[0].title")
	}

	price := item.Price.Current
	if !price.truthy() {
		price = item.SalePrice
	}
	link := item.ProductPageURL
	if link == "" {
		link = item.Link
	}

	return model.PriceRecord{
		Store: StoreWalmart,
		Name:  cleanTitle(*item.Title),
		Price: price.NullDecimal,
		URL:   link,
	}, nil
}
