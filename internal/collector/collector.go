package collector

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"pricecompare/internal/model"
	"pricecompare/internal/observability"
	"pricecompare/internal/store"
)

// RowWriter é o destino das linhas; *report.Writer satisfaz.
type RowWriter interface {
	WriteHeader() error
	Write(model.OutputRow) error
}

type Summary struct {
	SKUs  int
	Rows  int
	Empty int
}

// Collector percorre os SKUs em ordem e grava uma linha por registro encontrado.
type Collector struct {
	Source   store.Source
	Out      RowWriter
	Currency string
	Log      *zap.Logger
	Clock    func() time.Time
}

func New(src store.Source, out RowWriter, currency string, log *zap.Logger) *Collector {
	return &Collector{Source: src, Out: out, Currency: currency, Log: log, Clock: time.Now}
}

// Run grava o cabeçalho e depois as linhas. Só um erro de escrita ou o contexto
// cancelado interrompem; falhas por loja já foram absorvidas pela Source.
func (c *Collector) Run(ctx context.Context, skus []model.SKU) (Summary, error) {
	var sum Summary
	today := c.Clock()

	if err := c.Out.WriteHeader(); err != nil {
		return sum, fmt.Errorf("write header: %w", err)
	}

	for _, sku := range skus {
		if err := ctx.Err(); err != nil {
			return sum, err
		}
		sum.SKUs++

		records := c.Source.Prices(ctx, sku)
		if len(records) == 0 {
			sum.Empty++
			c.Log.Info("no store data for sku", zap.String("sku_id", sku.ID), zap.String("sku_name", sku.Name))
			continue
		}

		for _, rec := range records {
			if err := c.Out.Write(model.NewOutputRow(sku, rec, c.Currency, today)); err != nil {
				return sum, fmt.Errorf("write row for sku %s: %w", sku.ID, err)
			}
			observability.ReportRows.WithLabelValues(rec.Store).Inc()
			sum.Rows++
		}
	}

	c.Log.Info("collection finished",
		zap.String("source", c.Source.Name()),
		zap.Int("skus", sum.SKUs),
		zap.Int("rows", sum.Rows),
		zap.Int("empty", sum.Empty),
	)
	return sum, nil
}
