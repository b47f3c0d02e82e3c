package repository

import (
	"context"
	"database/sql"
	"fmt"

	"pricecompare/internal/model"
)

// SKURepository lê a lista mestre de SKUs da tabela sku_master.
type SKURepository struct {
	DB *sql.DB
}

func (r *SKURepository) List(ctx context.Context) ([]model.SKU, error) {
	rows, err := r.DB.QueryContext(ctx, `
		SELECT sku_id, sku_name
		FROM sku_master
		ORDER BY sku_id
	`)
	if err != nil {
		return nil, fmt.Errorf("query sku_master: %w", err)
	}
	defer rows.Close()

	var list []model.SKU
	for rows.Next() {
		var s model.SKU
		if err := rows.Scan(&s.ID, &s.Name); err != nil {
			return nil, fmt.Errorf("scan sku: %w", err)
		}
		list = append(list, s)
	}
	return list, rows.Err()
}
