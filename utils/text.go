package utils

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var upper = cases.Upper(language.English)

// UpperCode normalizes a currency or symbol code received from a client.
func UpperCode(s string) string {
	return upper.String(strings.TrimSpace(s))
}
