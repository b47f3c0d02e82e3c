package store

import (
	"html"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Só trata como HTML quando há tag de fechamento ou um elemento conhecido;
// "<Apple Flavor>" num título comum é texto e fica.
var markupRe = regexp.MustCompile(`(?i)</|<(b|i|u|em|strong|span|br|sup|sub|p|div|font|a)(\s[^>]*)?/?>`)

// cleanTitle decodifica entidades (Target devolve "&#38;" etc.), remove markup
// real e colapsa espaços.
func cleanTitle(s string) string {
	if markupRe.MatchString(s) {
		if doc, err := goquery.NewDocumentFromReader(strings.NewReader(s)); err == nil {
			s = doc.Text()
		}
	} else {
		s = html.UnescapeString(s)
	}
	return strings.Join(strings.Fields(s), " ")
}
