package store

import (
	"context"
	"encoding/json"
	"net/url"
	"strings"

	"go.uber.org/zap"

	"pricecompare/internal/model"
	"pricecompare/internal/observability"
)

const (
	StoreWalmart = "Walmart"
	StoreTarget  = "Target"
)

// Fetcher é o transporte dos adaptadores; *crawler.Client satisfaz.
type Fetcher interface {
	GetJSON(ctx context.Context, rawURL string, headers map[string]string, params url.Values) (json.RawMessage, error)
}

// Adapter busca um termo numa loja e normaliza o primeiro item.
// Ausência (false) é o único sinal de falha.
type Adapter interface {
	Store() string
	Search(ctx context.Context, term string) (model.PriceRecord, bool)
}

type endpoint struct {
	Client  Fetcher
	BaseURL string
	Host    string
	APIKey  string
	Log     *zap.Logger
}

func (e endpoint) headers() map[string]string {
	h := map[string]string{"X-RapidAPI-Host": e.Host}
	if e.APIKey != "" {
		h["X-RapidAPI-Key"] = e.APIKey
	}
	return h
}

func (e endpoint) searchURL() string {
	return strings.TrimRight(e.BaseURL, "/") + "/search"
}

func (e endpoint) lookup(
	ctx context.Context,
	store, term string,
	params url.Values,
	extract func([]byte) (model.PriceRecord, error),
) (model.PriceRecord, bool) {
	body, err := e.Client.GetJSON(ctx, e.searchURL(), e.headers(), params)
	if err == nil {
		var rec model.PriceRecord
		if rec, err = extract(body); err == nil {
			observability.PriceLookups.WithLabelValues(store, "found").Inc()
			return rec, true
		}
	}
	observability.PriceLookups.WithLabelValues(store, "absent").Inc()
	e.Log.Info("no "+store+" data", zap.String("query", term), zap.String("reason", err.Error()))
	return model.PriceRecord{}, false
}
