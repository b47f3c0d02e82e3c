package crawler

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"go.uber.org/zap"

	"pricecompare/internal/config"
	"pricecompare/internal/observability"
)

// Cache guarda corpos JSON já validados, indexados pela URL completa.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool)
	Set(ctx context.Context, key string, body []byte)
}

// DefaultMaxBody limita o corpo lido de uma resposta de busca.
const DefaultMaxBody = 8 << 20

// Client faz GETs JSON com retry limitado. Uma requisição por vez.
type Client struct {
	HTTP    *http.Client
	Retries int
	Delay   time.Duration
	Policy  RetryPolicy
	Cache   Cache
	Log     *zap.Logger
	MaxBody int64 // zero usa DefaultMaxBody
}

func NewClient(cfg *config.Config, log *zap.Logger) *Client {
	return &Client{
		HTTP:    &http.Client{Timeout: cfg.HTTPTimeout},
		Retries: cfg.FetchRetries,
		Delay:   cfg.FetchRetryDelay,
		Policy:  RetryPolicy{RetryClientErrors: cfg.RetryClientErrors},
		Log:     log,
	}
}

// GetJSON devolve o corpo de uma resposta 2xx, ou *FetchError quando a política
// de retry desiste. JSON inválido em 2xx nunca é repetido.
func (c *Client) GetJSON(ctx context.Context, rawURL string, headers map[string]string, params url.Values) (json.RawMessage, error) {
	full := rawURL
	if len(params) > 0 {
		full += "?" + params.Encode()
	}

	if c.Cache != nil {
		if body, ok := c.Cache.Get(ctx, full); ok {
			c.Log.Debug("cache hit", zap.String("url", full))
			return body, nil
		}
	}

	attempts := c.Retries
	if attempts < 1 {
		attempts = 1
	}

	var last *FetchError
	for i := 1; i <= attempts; i++ {
		body, ferr := c.do(ctx, full, headers)
		if ferr == nil {
			if !json.Valid(body) {
				observability.FetchAttempts.WithLabelValues(string(KindMalformed)).Inc()
				c.Log.Warn("invalid JSON response",
					zap.String("attempt", fmt.Sprintf("%d/%d", i, attempts)),
					zap.String("url", full),
				)
				return nil, &FetchError{Kind: KindMalformed, Attempts: i, URL: rawURL}
			}
			observability.FetchAttempts.WithLabelValues("ok").Inc()
			if c.Cache != nil {
				c.Cache.Set(ctx, full, body)
			}
			return body, nil
		}

		ferr.Attempts = i
		ferr.URL = rawURL
		last = ferr
		observability.FetchAttempts.WithLabelValues(string(ferr.Kind)).Inc()
		c.Log.Warn("request error",
			zap.String("attempt", fmt.Sprintf("%d/%d", i, attempts)),
			zap.String("kind", string(ferr.Kind)),
			zap.Int("status", ferr.Status),
			zap.String("url", rawURL),
			zap.NamedError("cause", ferr.cause),
		)

		if i == attempts || !c.Policy.ShouldRetry(ferr.Kind) {
			break
		}
		if err := sleepCtx(ctx, c.Delay); err != nil {
			last.Kind = KindCanceled
			break
		}
	}
	return nil, last
}

func (c *Client) do(ctx context.Context, full string, headers map[string]string) ([]byte, *FetchError) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, full, nil)
	if err != nil {
		return nil, &FetchError{Kind: KindNetwork, cause: err}
	}
	req.Header.Set("User-Agent", "Mozilla/5.0")
	req.Header.Set("Accept", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return nil, &FetchError{Kind: classifyTransport(ctx, err), cause: err}
	}
	defer resp.Body.Close()

	limit := c.MaxBody
	if limit <= 0 {
		limit = DefaultMaxBody
	}
	body, err := io.ReadAll(io.LimitReader(resp.Body, limit+1))
	if err != nil {
		return nil, &FetchError{Kind: classifyTransport(ctx, err), cause: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &FetchError{
			Kind:   classifyStatus(resp.StatusCode),
			Status: resp.StatusCode,
			cause:  fmt.Errorf("status %d", resp.StatusCode),
		}
	}
	if int64(len(body)) > limit {
		return nil, &FetchError{
			Kind:   KindMalformed,
			Status: resp.StatusCode,
			cause:  fmt.Errorf("body exceeds %d bytes", limit),
		}
	}
	return body, nil
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
