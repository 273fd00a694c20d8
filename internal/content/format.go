package content

import (
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.English)

// FormatPrice renders whole dollars with grouping, e.g. 750000 -> "$750,000".
func FormatPrice(dollars int) string {
	return printer.Sprintf("$%d", dollars)
}

// TelURI turns a display phone number into a tel: URI, keeping only digits and a leading '+'.
func TelURI(phone string) string {
	var sb strings.Builder
	sb.WriteString("tel:")
	for i, r := range strings.TrimSpace(phone) {
		switch {
		case r >= '0' && r <= '9':
			sb.WriteRune(r)
		case r == '+' && i == 0:
			sb.WriteRune(r)
		}
	}
	return sb.String()
}
