package store

import (
	"bytes"
	"encoding/json"
	"strings"

	"github.com/shopspring/decimal"
)

// Amount aceita número JSON, string numérica ("$3.49", "1,299.00") ou null.
// Valores que não parseiam viram preço nulo em vez de derrubar o decode.
type Amount struct {
	decimal.NullDecimal
}

func (a *Amount) UnmarshalJSON(b []byte) error {
	a.Valid = false
	b = bytes.TrimSpace(b)
	if len(b) == 0 || bytes.Equal(b, []byte("null")) {
		return nil
	}

	var raw string
	if b[0] == '"' {
		if err := json.Unmarshal(b, &raw); err != nil {
			return nil
		}
		raw = strings.NewReplacer("$", "", ",", "", " ", "").Replace(raw)
	} else {
		raw = string(b)
	}

	d, err := decimal.NewFromString(raw)
	if err != nil {
		return nil
	}
	a.NullDecimal = decimal.NewNullDecimal(d)
	return nil
}

// truthy: preço presente e diferente de zero (negativos contam).
func (a Amount) truthy() bool {
	return a.Valid && !a.Decimal.IsZero()
}
