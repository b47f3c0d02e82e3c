package store

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractWalmart(t *testing.T) {
	tests := []struct {
		name      string
		body      string
		wantName  string
		wantPrice string
		wantURL   string
	}{
		{
			name:      "current price",
			body:      `{"items":[{"title":"Great Value Milk","price":{"current_price":3.48},"salePrice":3.1,"product_page_url":"https://walmart.com/ip/1","link":"https://x"}]}`,
			wantName:  "Great Value Milk",
			wantPrice: "3.48",
			wantURL:   "https://walmart.com/ip/1",
		},
		{
			name:      "falls back to salePrice when price missing",
			body:      `{"items":[{"title":"Milk","salePrice":2.97,"link":"https://walmart.com/ip/2"}]}`,
			wantName:  "Milk",
			wantPrice: "2.97",
			wantURL:   "https://walmart.com/ip/2",
		},
		{
			name:      "falls back when current price is zero",
			body:      `{"items":[{"title":"Milk","price":{"current_price":0},"salePrice":"$1,002.50"}]}`,
			wantName:  "Milk",
			wantPrice: "1002.5",
		},
		{
			name:      "flat price value",
			body:      `{"items":[{"title":"Milk","price":"4.25"}]}`,
			wantName:  "Milk",
			wantPrice: "4.25",
		},
		{
			name:     "no price at all",
			body:     `{"items":[{"title":"Milk  &amp; Cream"}]}`,
			wantName: "Milk & Cream",
		},
		{
			name:      "only the first item is used",
			body:      `{"items":[{"title":"First","salePrice":1},{"title":"Second","salePrice":2}]}`,
			wantName:  "First",
			wantPrice: "1",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, err := extractWalmart([]byte(tt.body))
			require.NoError(t, err)
			assert.Equal(t, StoreWalmart, rec.Store)
			assert.Equal(t, tt.wantName, rec.Name)
			assert.Equal(t, tt.wantURL, rec.URL)
			if tt.wantPrice == "" {
				assert.False(t, rec.Price.Valid)
			} else {
				require.True(t, rec.Price.Valid)
				assert.Equal(t, tt.wantPrice, rec.Price.Decimal.String())
			}
		})
	}
}

func TestExtractWalmartAbsent(t *testing.T) {
	for body, path := range map[string]string{
		`{}`:                          "items",
		`{"items":[]}`:                "items[0]",
		`{"items":[{"salePrice":1}]}`: "items[0].title",
	} {
		_, err := extractWalmart([]byte(body))
		var fa *ErrFieldAbsent
		require.True(t, errors.As(err, &fa), body)
		assert.Equal(t, path, fa.Path)
	}

	_, err := extractWalmart([]byte(`{"items":"nope"}`))
	assert.Error(t, err)
}

func TestExtractTarget(t *testing.T) {
	body := `{"data":{"search":{"products":[
		{"item":{"product_description":{"title":"Good &#38; Gather Milk"},"enrichment":{"buy_url":"https://target.com/p/1"}},"price":{"current_retail":3.79}},
		{"item":{"product_description":{"title":"Other"},"enrichment":{"buy_url":"https://target.com/p/2"}},"price":{"current_retail":1}}
	]}}}`

	rec, err := extractTarget([]byte(body))

	require.NoError(t, err)
	assert.Equal(t, StoreTarget, rec.Store)
	assert.Equal(t, "Good & Gather Milk", rec.Name)
	assert.Equal(t, "3.79", rec.Price.Decimal.String())
	assert.Equal(t, "https://target.com/p/1", rec.URL)
}

func TestExtractTargetNullPrice(t *testing.T) {
	body := `{"data":{"search":{"products":[{"item":{"product_description":{"title":"Milk"},"enrichment":{"buy_url":"u"}},"price":{"current_retail":null}}]}}}`

	rec, err := extractTarget([]byte(body))

	require.NoError(t, err)
	assert.False(t, rec.Price.Valid)
}

func TestExtractTargetAbsent(t *testing.T) {
	cases := map[string]string{
		`{}`:                                   "data",
		`{"data":{}}`:                          "data.search",
		`{"data":{"search":{"products":[]}}}`:  "data.search.products[0]",
		`{"data":{"search":{"products":[{}]}}}`: "item",
		`{"data":{"search":{"products":[{"item":{"enrichment":{"buy_url":"u"}},"price":{}}]}}}`:                          "item.product_description.title",
		`{"data":{"search":{"products":[{"item":{"product_description":{"title":"t"},"enrichment":{"buy_url":"u"}}}]}}}`: "price",
		`{"data":{"search":{"products":[{"item":{"product_description":{"title":"t"}},"price":{"current_retail":1}}]}}}`:  "item.enrichment.buy_url",
	}
	for body, path := range cases {
		_, err := extractTarget([]byte(body))
		var fa *ErrFieldAbsent
		require.True(t, errors.As(err, &fa), body)
		assert.Equal(t, path, fa.Path, body)
	}
}

func TestCleanTitle(t *testing.T) {
	assert.Equal(t, "Milk & Cream", cleanTitle("Milk &amp; Cream"))
	assert.Equal(t, "Bold Milk 1 gal", cleanTitle("<b>Bold</b> Milk\n 1 gal"))
	assert.Equal(t, "plain", cleanTitle("  plain "))
	assert.Equal(t, "Kids Juice Box <Apple Flavor> 8ct", cleanTitle("Kids Juice Box <Apple Flavor> 8ct"))
	assert.Equal(t, "Size <1 gal> & up", cleanTitle("Size <1 gal> &amp; up"))
	assert.Equal(t, "Milk Organic", cleanTitle("Milk <br/>Organic"))
}

func TestExtractWalmartKeepsBracketedTitle(t *testing.T) {
	rec, err := extractWalmart([]byte(`{"items":[{"title":"Kids Juice Box <Apple Flavor> 8ct","salePrice":2}]}`))

	require.NoError(t, err)
	assert.Equal(t, "Kids Juice Box <Apple Flavor> 8ct", rec.Name)
}

func TestAmount(t *testing.T) {
	for in, want := range map[string]string{
		`3.5`:        "3.5",
		`"$12.00"`:   "12",
		`"1,299.99"`: "1299.99",
	} {
		var a Amount
		require.NoError(t, a.UnmarshalJSON([]byte(in)))
		require.True(t, a.Valid, in)
		assert.Equal(t, want, a.Decimal.String())
	}
	for _, in := range []string{`null`, `"n/a"`, `true`} {
		var a Amount
		require.NoError(t, a.UnmarshalJSON([]byte(in)))
		assert.False(t, a.Valid, in)
	}

	var neg Amount
	require.NoError(t, neg.UnmarshalJSON([]byte(`-1`)))
	assert.True(t, neg.truthy())
	var zero Amount
	require.NoError(t, zero.UnmarshalJSON([]byte(`0`)))
	assert.False(t, zero.truthy())
}
