package report

import (
	"bufio"
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"pricecompare/internal/model"
)

var ErrMissingColumn = errors.New("missing required column")

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// ReadSKUs lê o arquivo mestre de SKUs. Precisa de cabeçalho com sku_id e sku_name;
// outras colunas são preservadas em SKU.Extra.
func ReadSKUs(path string) ([]model.SKU, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open sku list: %w", err)
	}
	defer f.Close()

	skus, err := DecodeSKUs(f)
	if err != nil {
		return nil, fmt.Errorf("read sku list %s: %w", path, err)
	}
	return skus, nil
}

func DecodeSKUs(r io.Reader) ([]model.SKU, error) {
	br := bufio.NewReader(r)
	if head, _ := br.Peek(len(utf8BOM)); bytes.Equal(head, utf8BOM) {
		br.Discard(len(utf8BOM))
	}

	cr := csv.NewReader(br)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("empty file: %w", ErrMissingColumn)
		}
		return nil, err
	}
	idx := make(map[string]int, len(header))
	for i, h := range header {
		idx[strings.TrimSpace(h)] = i
	}
	for _, col := range []string{"sku_id", "sku_name"} {
		if _, ok := idx[col]; !ok {
			return nil, fmt.Errorf("%w: %s", ErrMissingColumn, col)
		}
	}

	var skus []model.SKU
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}

		sku := model.SKU{}
		for i, h := range header {
			v := ""
			if i < len(rec) {
				v = rec[i]
			}
			switch i {
			case idx["sku_id"]:
				sku.ID = v
			case idx["sku_name"]:
				sku.Name = v
			default:
				if sku.Extra == nil {
					sku.Extra = make(map[string]string)
				}
				sku.Extra[strings.TrimSpace(h)] = v
			}
		}
		skus = append(skus, sku)
	}
	return skus, nil
}
